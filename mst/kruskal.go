// Kruskal: globally sorted edges filtered through union-find.

package mst

import (
	"fmt"
	"sort"

	"github.com/graphina/graphina/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in
// ascending weight order and keeping those that join two components.
func Kruskal[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) ([]core.Edge[W], W, error) {
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
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	// Stable sort keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := newUnionFind(n)
	tree := make([]core.Edge[W], 0, n-1)
	total := zero
	for _, e := range edges {
		if err := o.Ctx.Err(); err != nil {
			return nil, zero, err
		}
		ui, _ := ix.Of(e.From)
		vi, _ := ix.Of(e.To)
		if uf.union(ui, vi) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == n-1 {
				break
			}
		}
	}
	if len(tree) < n-1 {
		return nil, zero, fmt.Errorf("mst: disconnected graph: %w", core.ErrUnfeasible)
	}
	return tree, total, nil
}
