// impl_bipartite.go - Bipartite(n1, n2, p): random bipartite graph.
//
// Contract:
//   - n1 >= 1 and n2 >= 1, else ErrTooFewNodes.
//   - p in [0, 1], else ErrInvalidProbability.
//   - Left partition holds indices 0..n1-1, right partition the rest.
//   - Each cross pair is drawn once in (left, right) order.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Bipartite builds a random bipartite graph: every left-right pair is
// joined independently with probability p.
func Bipartite(n1, n2 int, p float64, opts ...Option) (*core.Graph[uint32, float64], error) {
	if n1 < 1 || n2 < 1 {
		return nil, fmt.Errorf("Bipartite: partitions %d/%d: %w", n1, n2, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Bipartite: p=%v: %w", p, ErrInvalidProbability)
	}
	c := buildConfig(opts)
	g := c.newGraph()
	ids := addNodes(g, n1+n2)
	rng := c.rng()
	for i := 0; i < n1; i++ {
		for j := n1; j < n1+n2; j++ {
			if rng.Float64() < p {
				g.AddEdge(ids[i], ids[j], c.weightFn(rng))
			}
		}
	}
	return g, nil
}
