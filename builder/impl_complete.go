// impl_complete.go - Complete(n): every pair of distinct nodes joined.
//
// Contract:
//   - n >= 1, else ErrTooFewNodes.
//   - Undirected: one edge per unordered pair in (i, j) order, i < j.
//   - Directed: both arcs for every ordered pair.
//   - Deterministic for equal options.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Complete builds the complete graph K_n.
func Complete(n int, opts ...Option) (*core.Graph[uint32, float64], error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewNodes)
	}
	c := buildConfig(opts)
	g := c.newGraph()
	ids := addNodes(g, n)
	rng := c.rng()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(ids[i], ids[j], c.weightFn(rng))
			if c.directed {
				g.AddEdge(ids[j], ids[i], c.weightFn(rng))
			}
		}
	}
	return g, nil
}
