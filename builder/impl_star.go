// impl_star.go - Star(n): one hub, n-1 leaves.
//
// Contract:
//   - n >= 1, else ErrTooFewNodes. n = 1 is a bare hub.
//   - Node 0 is the hub; spokes emitted hub -> leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Star builds a star with node 0 as the hub.
func Star(n int, opts ...Option) (*core.Graph[uint32, float64], error) {
	if n < 1 {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewNodes)
	}
	c := buildConfig(opts)
	g := c.newGraph()
	ids := addNodes(g, n)
	rng := c.rng()
	for i := 1; i < n; i++ {
		g.AddEdge(ids[0], ids[i], c.weightFn(rng))
	}
	return g, nil
}
