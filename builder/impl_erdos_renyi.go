// impl_erdos_renyi.go - ErdosRenyi(n, p): the G(n, p) model.
//
// Contract:
//   - n >= 1, else ErrTooFewNodes.
//   - p in [0, 1], else ErrInvalidProbability.
//   - Undirected: each unordered pair drawn once in (i, j) order.
//   - Directed: every ordered pair drawn independently.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// ErdosRenyi builds a G(n, p) random graph.
func ErdosRenyi(n int, p float64, opts ...Option) (*core.Graph[uint32, float64], error) {
	if n < 1 {
		return nil, fmt.Errorf("ErdosRenyi: n=%d: %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("ErdosRenyi: p=%v: %w", p, ErrInvalidProbability)
	}
	c := buildConfig(opts)
	g := c.newGraph()
	ids := addNodes(g, n)
	rng := c.rng()
	if c.directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < p {
					g.AddEdge(ids[i], ids[j], c.weightFn(rng))
				}
			}
		}
		return g, nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(ids[i], ids[j], c.weightFn(rng))
			}
		}
	}
	return g, nil
}
