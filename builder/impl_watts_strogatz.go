// impl_watts_strogatz.go - WattsStrogatz(n, k, beta): small-world rings.
//
// Contract:
//   - k even, 2 <= k < n, else ErrInvalidDegree.
//   - beta in [0, 1], else ErrInvalidProbability.
//   - Start from a ring lattice: i joined to its k/2 forward neighbors.
//   - Each lattice edge is rewired with probability beta to a fresh
//     endpoint drawn uniformly. A draw that would produce a self-loop
//     or a parallel edge is retried; after n failed draws the original
//     edge is kept.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// WattsStrogatz builds a small-world graph by rewiring a ring lattice.
func WattsStrogatz(n, k int, beta float64, opts ...Option) (*core.Graph[uint32, float64], error) {
	if k < 2 || k%2 != 0 || k >= n {
		return nil, fmt.Errorf("WattsStrogatz: n=%d k=%d: %w", n, k, ErrInvalidDegree)
	}
	if beta < 0 || beta > 1 {
		return nil, fmt.Errorf("WattsStrogatz: beta=%v: %w", beta, ErrInvalidProbability)
	}
	c := buildConfig(opts)
	rng := c.rng()

	type pair struct{ u, v int }
	key := func(a, b int) pair {
		if a > b {
			a, b = b, a
		}
		return pair{a, b}
	}

	half := k / 2
	edges := make([]pair, 0, n*half)
	present := make(map[pair]struct{}, n*half)
	for i := 0; i < n; i++ {
		for j := 1; j <= half; j++ {
			e := pair{i, (i + j) % n}
			edges = append(edges, e)
			present[key(e.u, e.v)] = struct{}{}
		}
	}

	for idx, e := range edges {
		if rng.Float64() >= beta {
			continue
		}
		for attempt := 0; attempt < n; attempt++ {
			t := rng.Intn(n)
			if t == e.u {
				continue
			}
			if _, dup := present[key(e.u, t)]; dup {
				continue
			}
			delete(present, key(e.u, e.v))
			present[key(e.u, t)] = struct{}{}
			edges[idx] = pair{e.u, t}
			break
		}
	}

	g := c.newGraph()
	ids := addNodes(g, n)
	for _, e := range edges {
		g.AddEdge(ids[e.u], ids[e.v], c.weightFn(rng))
	}
	return g, nil
}
