// Functional options for the builder package. Option constructors
// validate and panic on meaningless inputs; the generators themselves
// never panic.

package builder

import (
	"math/rand"

	"github.com/graphina/graphina/core"
)

// Option customizes a generator run.
type Option func(*config)

type config struct {
	directed bool
	seed     int64
	weightFn func(*rand.Rand) float64
}

func defaultConfig() config {
	return config{
		seed:     1,
		weightFn: func(*rand.Rand) float64 { return 1 },
	}
}

// WithDirected makes the generated graph directed. Star and Cycle emit
// each edge as a single forward arc in generation order; Complete emits
// both arcs of every pair.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithSeed fixes the RNG seed for the stochastic generators. Equal
// seeds give identical graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the seeded RNG so weights stay deterministic. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic(ErrNilWeightFn.Error())
	}
	return func(c *config) { c.weightFn = fn }
}

func buildConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// newGraph allocates the target graph for a generator run.
func (c config) newGraph() *core.Graph[uint32, float64] {
	if c.directed {
		return core.NewGraph[uint32, float64](core.WithDirected())
	}
	return core.NewGraph[uint32, float64]()
}

// rng builds the seeded source shared by one generator invocation.
func (c config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}

// addNodes inserts n nodes attributed with their generation index.
func addNodes(g *core.Graph[uint32, float64], n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(uint32(i))
	}
	return ids
}
