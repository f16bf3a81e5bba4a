// impl_barabasi_albert.go - BarabasiAlbert(n, m): preferential attachment.
//
// Contract:
//   - m >= 1 and n >= m, else ErrInvalidDegree.
//   - Seed graph is the complete graph on the first m nodes.
//   - Each later node attaches to m distinct earlier nodes, drawn
//     proportionally to current degree without replacement. When
//     repeated draws keep landing on already-chosen targets, the
//     remaining slots are filled greedily from the lowest unchosen
//     indices, so every new node contributes exactly m edges.

package builder

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// BarabasiAlbert builds a scale-free graph by preferential attachment.
// The result has m*(m-1)/2 + (n-m)*m edges.
func BarabasiAlbert(n, m int, opts ...Option) (*core.Graph[uint32, float64], error) {
	if m < 1 || n < m {
		return nil, fmt.Errorf("BarabasiAlbert: n=%d m=%d: %w", n, m, ErrInvalidDegree)
	}
	c := buildConfig(opts)
	g := c.newGraph()
	ids := addNodes(g, n)
	rng := c.rng()

	deg := make([]int, n)
	total := 0
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			g.AddEdge(ids[i], ids[j], c.weightFn(rng))
			deg[i]++
			deg[j]++
			total += 2
		}
	}

	// total counts the degrees of nodes before v only, so a draw can
	// never select v itself.
	for v := m; v < n; v++ {
		chosen := make(map[int]struct{}, m)
		for len(chosen) < m {
			t := -1
			if total > 0 {
				for attempt := 0; attempt < 2*v; attempt++ {
					r := rng.Intn(total)
					cand := 0
					for r >= deg[cand] {
						r -= deg[cand]
						cand++
					}
					if _, dup := chosen[cand]; !dup {
						t = cand
						break
					}
				}
			}
			if t < 0 {
				for cand := 0; cand < v; cand++ {
					if _, dup := chosen[cand]; !dup {
						t = cand
						break
					}
				}
			}
			chosen[t] = struct{}{}
			g.AddEdge(ids[v], ids[t], c.weightFn(rng))
			deg[v]++
			deg[t]++
			total++
		}
		total += deg[v]
	}
	return g, nil
}
