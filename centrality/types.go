// Package centrality implements node-importance measures over a
// core.Graph: degree variants, betweenness (node and edge, Brandes),
// PageRank and its personalized form, eigenvector, Katz, closeness,
// and harmonic centrality.
//
// Every kernel snapshots the live node set onto a compact index, works
// on dense slices, and translates back to stable handles in the
// returned maps. Scores are float64 regardless of the graph's weight
// type.
//
// Complexity:
//
//	– Degree/InDegree/OutDegree: O(V + E).
//	– Betweenness (unweighted):  O(V · E) via Brandes.
//	– Betweenness (weighted):    O(V · (E + V log V)).
//	– PageRank / Eigenvector / Katz: O(iter · (V + E)).
//	– Closeness / Harmonic:      O(V · (V + E)), weighted adds log V.
//
// Options:
//
//	– WithRaw():            report raw scores, skip normalization.
//	– WithWeighted():       respect edge weights where it matters.
//	– WithDamping(d):       PageRank damping factor, default 0.85.
//	– WithTolerance(tol):   convergence threshold, default 1e-6.
//	– WithMaxIterations(n): iteration cap, default 100.
//	– WithAlpha(a) / WithBeta(b): Katz attenuation and base weight.
//	– WithLogger(l):        zerolog sink for the iterative kernels.
//	– WithContext(ctx):     cancellation for the V·E kernels.
//
// Errors (sentinel):
//
//	– ErrNilGraph                 if the provided graph pointer is nil.
//	– core.ErrNegativeWeight      if a weighted kernel sees one.
//	– core.ErrConvergenceFailed   if an iterative kernel exhausts its
//	                              budget; inspect core.ConvergenceError
//	                              for the iteration count.
//	– core.ErrInvalidArgument     for an empty seed set.
//	– core.ErrNodeNotFound        for a seed that is not in the graph.
package centrality

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/graphina/graphina/core"
)

// ErrNilGraph indicates a nil graph pointer was passed.
var ErrNilGraph = errors.New("centrality: graph is nil")

// Sentinel errors raised by option constructors. They surface as
// panics: misconfigured options are programming errors.
var (
	ErrBadDamping    = errors.New("centrality: damping must be in (0, 1)")
	ErrBadTolerance  = errors.New("centrality: tolerance must be positive")
	ErrBadIterations = errors.New("centrality: iteration cap must be positive")
)

// Options configures the centrality kernels. Not every field matters
// to every kernel; irrelevant ones are ignored.
type Options struct {
	// Ctx is consulted for cancellation once per source or iteration.
	Ctx context.Context

	// Normalized rescales scores into comparable ranges. On by default.
	Normalized bool

	// Weighted makes betweenness, closeness, and harmonic respect edge
	// weights; PageRank distributes rank proportionally to weight.
	Weighted bool

	// Damping is the PageRank damping factor.
	Damping float64

	// Tol is the convergence threshold for the iterative kernels.
	Tol float64

	// MaxIter caps the iterative kernels.
	MaxIter int

	// Alpha and Beta parameterize Katz centrality.
	Alpha float64
	Beta  float64

	// Logger receives per-iteration progress at debug level.
	Logger zerolog.Logger
}

// Option is a functional option for the centrality kernels.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Normalized: true,
		Damping:    0.85,
		Tol:        1e-6,
		MaxIter:    100,
		Alpha:      0.1,
		Beta:       1.0,
		Logger:     zerolog.Nop(),
	}
}

// WithRaw disables normalization.
func WithRaw() Option {
	return func(o *Options) { o.Normalized = false }
}

// WithWeighted makes the distance-based kernels respect edge weights.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithDamping sets the PageRank damping factor. Panics outside (0, 1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			panic(ErrBadDamping.Error())
		}
		o.Damping = d
	}
}

// WithTolerance sets the convergence threshold. Panics when tol <= 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tol = tol
	}
}

// WithMaxIterations caps the iterative kernels. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.MaxIter = n
	}
}

// WithAlpha sets the Katz attenuation factor.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithBeta sets the Katz base weight.
func WithBeta(b float64) Option {
	return func(o *Options) { o.Beta = b }
}

// WithLogger installs a zerolog sink for iteration progress.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithContext installs ctx for cancellation checks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// zeroScores returns a map with every live node present at 0.
func zeroScores[A any, W core.Numeric](g *core.Graph[A, W]) core.NodeMap[float64] {
	out := core.NewNodeMap[float64](g.NodeCount())
	for _, id := range g.NodeIDs() {
		out[id] = 0
	}
	return out
}
