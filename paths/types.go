// Package paths implements single-source and all-pairs shortest-path
// algorithms over a core.Graph: Dijkstra, Bellman-Ford, A*,
// Floyd-Warshall, and Johnson.
//
// Distances are computed in float64 regardless of the graph's weight
// type; unreachable nodes are simply absent from result maps.
//
// Complexity:
//
//	– Dijkstra:        O((V + E) log V) with a lazy decrease-key heap.
//	– Bellman-Ford:    O(V · E), early exit on a quiescent pass.
//	– A*:              O((V + E) log V) with an admissible heuristic.
//	– Floyd-Warshall:  O(V³) time, O(V²) space on a compact index.
//	– Johnson:         O(V · E + V · (V + E) log V).
//
// Options:
//
//	– WithPredecessors(): also return the predecessor map for path
//	                      reconstruction (see PathTo).
//	– WithMaxDistance(d): stop exploring past distance d (Dijkstra).
//	– WithContext(ctx):   cancellation for the larger kernels.
//
// Errors (sentinel):
//
//	– ErrNilGraph            if the provided graph pointer is nil.
//	– core.ErrNodeNotFound   if a source or target is absent.
//	– core.ErrNegativeWeight if Dijkstra or A* sees a negative edge.
//	– core.ErrNegativeCycle  if Bellman-Ford, Floyd-Warshall, or
//	                         Johnson detects one.
//	– core.ErrNoPath         if A* exhausts the frontier.
//	– ErrBadMaxDistance      (panic in WithMaxDistance) for d < 0.
package paths

import (
	"context"
	"errors"
	"math"

	"github.com/graphina/graphina/core"
)

// Sentinel errors for the paths package.
var (
	// ErrNilGraph indicates a nil graph pointer was passed.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative
	// cap.
	ErrBadMaxDistance = errors.New("paths: MaxDistance must be non-negative")

	// ErrNilHeuristic indicates AStar was called without a heuristic.
	ErrNilHeuristic = errors.New("paths: heuristic is nil")
)

// Options configures the shortest-path kernels.
type Options struct {
	// Ctx is consulted for cancellation in the V² and V³ kernels.
	Ctx context.Context

	// ReturnPredecessors controls whether the predecessor map is built.
	ReturnPredecessors bool

	// MaxDistance caps exploration; nodes farther than this are not
	// settled. Default is +Inf.
	MaxDistance float64
}

// Option is a functional option for the paths kernels.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
	}
}

// WithPredecessors enables predecessor-map output.
func WithPredecessors() Option {
	return func(o *Options) { o.ReturnPredecessors = true }
}

// WithMaxDistance caps the explored distance. Panics on a negative
// cap: that is a programming error, not a runtime condition.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = d
	}
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

// PathTo reconstructs the node sequence from src to dst out of a
// predecessor map produced with WithPredecessors. Returns nil when dst
// was not reached.
func PathTo(prev core.NodeMap[core.NodeID], src, dst core.NodeID) []core.NodeID {
	if src == dst {
		return []core.NodeID{src}
	}
	if _, ok := prev[dst]; !ok {
		return nil
	}
	var rev []core.NodeID
	for at := dst; ; {
		rev = append(rev, at)
		if at == src {
			break
		}
		p, ok := prev[at]
		if !ok {
			return nil
		}
		at = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// arc is one directed adjacency entry used by the kernels.
type arc struct {
	to core.NodeID
	w  float64
}

// outArcs builds the weighted out-adjacency of g once per invocation.
// Undirected edges appear in both directions; parallel edges all
// appear and the relaxation picks the cheapest naturally.
func outArcs[A any, W core.Numeric](g *core.Graph[A, W]) core.NodeMap[[]arc] {
	adj := core.NewNodeMap[[]arc](g.NodeCount())
	for _, id := range g.NodeIDs() {
		adj[id] = nil
	}
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		adj[e.From] = append(adj[e.From], arc{to: e.To, w: w})
		if !g.Directed() && e.From != e.To {
			adj[e.To] = append(adj[e.To], arc{to: e.From, w: w})
		}
	}
	return adj
}
