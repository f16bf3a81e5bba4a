// graphbuilder.go - a fluent builder for hand-assembled graphs.
//
// Contract:
//   - Edges reference nodes by insertion index.
//   - Build validates every edge before constructing anything: an
//     out-of-range endpoint, a disallowed self-loop, or a disallowed
//     parallel edge fails the whole build and the builder is left
//     untouched and reusable.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// EdgeSpec is one edge of a hand-assembled graph, endpoints given as
// node insertion indices.
type EdgeSpec struct {
	From   int
	To     int
	Weight float64
}

// GraphBuilder accumulates nodes and index-addressed edges and turns
// them into a graph in one validated step.
type GraphBuilder struct {
	attrs         []uint32
	edges         []EdgeSpec
	directed      bool
	selfLoops     bool
	parallelEdges bool
}

// NewGraphBuilder returns an empty undirected builder that rejects
// self-loops and parallel edges.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{}
}

// Directed switches the builder to directed output.
func (b *GraphBuilder) Directed() *GraphBuilder {
	b.directed = true
	return b
}

// AllowSelfLoops permits edges whose endpoints coincide.
func (b *GraphBuilder) AllowSelfLoops() *GraphBuilder {
	b.selfLoops = true
	return b
}

// AllowParallelEdges permits repeated endpoint pairs.
func (b *GraphBuilder) AllowParallelEdges() *GraphBuilder {
	b.parallelEdges = true
	return b
}

// AddNode appends a node carrying attr. Its index is the number of
// nodes added before it.
func (b *GraphBuilder) AddNode(attr uint32) *GraphBuilder {
	b.attrs = append(b.attrs, attr)
	return b
}

// AddNodes appends n nodes attributed with their insertion index.
func (b *GraphBuilder) AddNodes(n int) *GraphBuilder {
	for i := 0; i < n; i++ {
		b.attrs = append(b.attrs, uint32(len(b.attrs)))
	}
	return b
}

// AddEdge records an edge between the nodes at indices from and to.
func (b *GraphBuilder) AddEdge(from, to int, w float64) *GraphBuilder {
	b.edges = append(b.edges, EdgeSpec{From: from, To: to, Weight: w})
	return b
}

// Build validates the recorded edges and constructs the graph. On
// error nothing is constructed and the builder keeps its state.
func (b *GraphBuilder) Build() (*core.Graph[uint32, float64], error) {
	n := len(b.attrs)
	type pair struct{ u, v int }
	seen := make(map[pair]struct{}, len(b.edges))
	for _, e := range b.edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("builder: edge (%d, %d) references a node outside 0..%d: %w",
				e.From, e.To, n-1, core.ErrInvalidArgument)
		}
		if !b.selfLoops && e.From == e.To {
			return nil, fmt.Errorf("builder: self-loop at %d not allowed: %w",
				e.From, core.ErrInvalidArgument)
		}
		if !b.parallelEdges {
			p := pair{e.From, e.To}
			if !b.directed && p.u > p.v {
				p.u, p.v = p.v, p.u
			}
			if _, dup := seen[p]; dup {
				return nil, fmt.Errorf("builder: parallel edge (%d, %d) not allowed: %w",
					e.From, e.To, core.ErrInvalidArgument)
			}
			seen[p] = struct{}{}
		}
	}

	var g *core.Graph[uint32, float64]
	if b.directed {
		g = core.NewGraph[uint32, float64](core.WithDirected())
	} else {
		g = core.NewGraph[uint32, float64]()
	}
	ids := make([]core.NodeID, n)
	for i, attr := range b.attrs {
		ids[i] = g.AddNode(attr)
	}
	for _, e := range b.edges {
		g.AddEdge(ids[e.From], ids[e.To], e.Weight)
	}
	return g, nil
}

// FromEdges assembles a graph over n index-attributed nodes from an
// edge list, validating every endpoint before construction.
func FromEdges(n int, edges []EdgeSpec, opts ...Option) (*core.Graph[uint32, float64], error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrTooFewNodes)
	}
	c := buildConfig(opts)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("FromEdges: edge (%d, %d) references a node outside 0..%d: %w",
				e.From, e.To, n-1, core.ErrInvalidArgument)
		}
	}
	g := c.newGraph()
	ids := addNodes(g, n)
	for _, e := range edges {
		g.AddEdge(ids[e.From], ids[e.To], e.Weight)
	}
	return g, nil
}
