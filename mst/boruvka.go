// Boruvka: every component picks its cheapest outgoing edge, the
// picks merge, repeat until one component remains.

package mst

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Boruvka computes a minimum spanning tree in component-merge rounds.
// Each round scans the edge list once per the classic formulation, so
// ties resolve to the earliest-inserted edge.
func Boruvka[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) ([]core.Edge[W], W, error) {
	var zero W
	if err := validate(g); err != nil {
		return nil, zero, err
	}
	o := buildOptions(opts)

	ix := core.NewIndex(g)
	n := ix.Len()
	if n == 1 {
		return []core.Edge[W]{}, zero, nil
	}

	edges := make([]core.Edge[W], 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	uf := newUnionFind(n)
	tree := make([]core.Edge[W], 0, n-1)
	total := zero
	components := n
	for components > 1 {
		if err := o.Ctx.Err(); err != nil {
			return nil, zero, err
		}

		// cheapest[c] is the best edge leaving component c this round;
		// -1 means none found yet.
		cheapest := make([]int, n)
		for i := range cheapest {
			cheapest[i] = -1
		}
		for i, e := range edges {
			ui, _ := ix.Of(e.From)
			vi, _ := ix.Of(e.To)
			cu, cv := uf.find(ui), uf.find(vi)
			if cu == cv {
				continue
			}
			if cheapest[cu] < 0 || e.Weight < edges[cheapest[cu]].Weight {
				cheapest[cu] = i
			}
			if cheapest[cv] < 0 || e.Weight < edges[cheapest[cv]].Weight {
				cheapest[cv] = i
			}
		}

		merged := false
		for _, idx := range cheapest {
			if idx < 0 {
				continue
			}
			e := edges[idx]
			ui, _ := ix.Of(e.From)
			vi, _ := ix.Of(e.To)
			if uf.union(ui, vi) {
				tree = append(tree, e)
				total += e.Weight
				components--
				merged = true
			}
		}
		if !merged {
			return nil, zero, fmt.Errorf("mst: disconnected graph: %w", core.ErrUnfeasible)
		}
	}
	return tree, total, nil
}
