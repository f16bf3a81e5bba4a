// Package traverse provides the four uninformed search strategies over
// a core.Graph: breadth-first, depth-first, iterative-deepening DFS,
// and bidirectional BFS.
//
// All entry points share one functional-option set:
//
//	– WithContext(ctx):       cancel a long traversal; checked once per
//	                          loop iteration and per neighbor batch.
//	– WithMaxDepth(d):        stop expanding beyond depth d (> 0).
//	– WithFilterNeighbor(f):  skip neighbors for which f returns false.
//	– WithOnEnqueue / WithOnDequeue / WithOnVisit: observation hooks.
//
// Complexity:
//
//	– BFS / DFS:        O(V + E) time, O(V) space.
//	– IDDFS:            O(b^d) time with branching factor b and depth
//	                    cap d, O(d) space on the search path.
//	– Bidirectional:    O(b^(d/2)) expansions per side on typical
//	                    inputs, O(V) space worst case.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrOptionViolation   if an option value is out of range.
//	– core.ErrNodeNotFound if start or target is absent.
//	– core.ErrNoPath       if IDDFS or Bidirectional finds no route.
package traverse

import (
	"context"
	"errors"

	"github.com/graphina/graphina/core"
)

// Sentinel errors for traversal entry points.
var (
	// ErrNilGraph indicates a nil graph pointer was passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrOptionViolation indicates an option carried an invalid value.
	ErrOptionViolation = errors.New("traverse: invalid option")
)

// Result holds the output of BFS or DFS.
type Result struct {
	// Order lists nodes in visit order, starting with the root.
	Order []core.NodeID

	// Depth maps each visited node to its hop distance from the root.
	Depth core.NodeMap[int]

	// Parent maps each visited node (except the root) to its discovery
	// predecessor.
	Parent core.NodeMap[core.NodeID]
}

// Options carries the shared traversal configuration. Construct via
// DefaultOptions and apply Option values on top.
type Options struct {
	// Ctx is consulted for cancellation. Defaults to
	// context.Background().
	Ctx context.Context

	// MaxDepth limits expansion depth when > 0; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor, when non-nil, is asked before following an edge
	// from -> to. Returning false skips the neighbor.
	FilterNeighbor func(from, to core.NodeID) bool

	// OnEnqueue fires when a node is first discovered at a depth.
	OnEnqueue func(id core.NodeID, depth int)

	// OnDequeue fires when a node is taken off the frontier.
	OnDequeue func(id core.NodeID, depth int)

	// OnVisit fires when a node is visited. A non-nil return aborts the
	// traversal and is propagated to the caller.
	OnVisit func(id core.NodeID, depth int) error

	err error
}

// Option mutates Options; invalid values are reported when the
// traversal starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background
// context, no depth cap, no filtering, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(core.NodeID, core.NodeID) bool { return true },
		OnEnqueue:      func(core.NodeID, int) {},
		OnDequeue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
	}
}

// WithContext installs ctx for cancellation checks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = errors.Join(o.err, errors.New("traverse: nil context"))
			return
		}
		o.Ctx = ctx
	}
}

// WithMaxDepth caps expansion at depth d. d must be positive.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = errors.Join(o.err, ErrOptionViolation)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a neighbor predicate.
func WithFilterNeighbor(f func(from, to core.NodeID) bool) Option {
	return func(o *Options) {
		if f == nil {
			o.err = errors.Join(o.err, ErrOptionViolation)
			return
		}
		o.FilterNeighbor = f
	}
}

// WithOnEnqueue installs a discovery hook.
func WithOnEnqueue(f func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if f != nil {
			o.OnEnqueue = f
		}
	}
}

// WithOnDequeue installs a frontier-pop hook.
func WithOnDequeue(f func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if f != nil {
			o.OnDequeue = f
		}
	}
}

// WithOnVisit installs a visit hook; its error aborts the traversal.
func WithOnVisit(f func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if f != nil {
			o.OnVisit = f
		}
	}
}

// buildOptions folds opts over the defaults and surfaces any deferred
// option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
