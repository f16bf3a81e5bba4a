// impl_cycle.go - Cycle(n): a single ring.
//
// Contract:
//   - n >= 3, else ErrTooFewNodes.
//   - Edges emitted i -> (i+1) mod n in ascending i.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Cycle builds the cycle graph C_n.
func Cycle(n int, opts ...Option) (*core.Graph[uint32, float64], error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewNodes)
	}
	c := buildConfig(opts)
	g := c.newGraph()
	ids := addNodes(g, n)
	rng := c.rng()
	for i := 0; i < n; i++ {
		g.AddEdge(ids[i], ids[(i+1)%n], c.weightFn(rng))
	}
	return g, nil
}
