// Package mst computes minimum spanning trees of undirected weighted
// graphs with Kruskal, Prim, and Boruvka.
//
// Complexity:
//   - Kruskal: O(E log E) sort plus near-constant union-find.
//   - Prim:    O(E log V) with a lazy binary heap.
//   - Boruvka: O(E log V) over component-merge rounds.
//
// All three return the tree edges in discovery order together with the
// summed weight. Self-loops can never join a spanning tree and are
// skipped. Equal-weight ties resolve by edge insertion order, so equal
// inputs give equal trees.
//
// Errors:
//   - ErrNilGraph for a nil graph value.
//   - core.ErrInvalidGraph for directed or empty input.
//   - core.ErrUnfeasible when the graph is disconnected and no
//     spanning tree exists.
package mst

import (
	"context"
	"errors"
	"fmt"

	"github.com/graphina/graphina/core"
)

// ErrNilGraph reports a nil *core.Graph argument.
var ErrNilGraph = errors.New("mst: nil graph")

// ErrUnknownMethod reports a Compute dispatch on a method name this
// package does not implement.
var ErrUnknownMethod = errors.New("mst: unknown method")

// Method names accepted by Compute.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
	MethodBoruvka = "boruvka"
)

// Options carries the shared knobs for the package entry points.
type Options struct {
	// Ctx cancels long runs between edge-relaxation rounds.
	Ctx context.Context

	// Root seeds Prim's growth. Zero means the first node in
	// insertion order. Ignored by Kruskal and Boruvka.
	Root core.NodeID
}

// Option mutates Options.
type Option func(*Options)

// WithContext attaches ctx for cancellation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("mst: nil context")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithRoot sets Prim's starting node.
func WithRoot(id core.NodeID) Option {
	return func(o *Options) { o.Root = id }
}

func buildOptions(opts []Option) Options {
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compute dispatches to the named algorithm. Kruskal, Prim, and
// Boruvka remain directly callable; Compute exists for callers that
// select the method at runtime.
func Compute[A any, W core.Numeric](g *core.Graph[A, W], method string, opts ...Option) ([]core.Edge[W], W, error) {
	switch method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	case MethodBoruvka:
		return Boruvka(g, opts...)
	default:
		var zero W
		return nil, zero, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// validate rejects the shapes no spanning tree can exist for.
func validate[A any, W core.Numeric](g *core.Graph[A, W]) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return fmt.Errorf("mst: directed graph: %w", core.ErrInvalidGraph)
	}
	if g.NodeCount() == 0 {
		return fmt.Errorf("mst: empty graph: %w", core.ErrInvalidGraph)
	}
	return nil
}

// unionFind is a disjoint-set forest with path compression and union
// by rank over compact indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

// union merges the sets of i and j and reports whether they were
// distinct.
func (uf *unionFind) union(i, j int) bool {
	ri, rj := uf.find(i), uf.find(j)
	if ri == rj {
		return false
	}
	switch {
	case uf.rank[ri] < uf.rank[rj]:
		uf.parent[ri] = rj
	case uf.rank[ri] > uf.rank[rj]:
		uf.parent[rj] = ri
	default:
		uf.parent[rj] = ri
		uf.rank[ri]++
	}
	return true
}
