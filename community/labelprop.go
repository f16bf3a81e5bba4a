package community

import (
	"math/rand"

	"github.com/graphina/graphina/core"
)

// LabelPropagation detects communities by majority vote: every node
// starts with its own label and, in a seeded shuffled order, adopts
// the label most frequent among its neighbors, smallest label winning
// ties. Updates are in place, so a sweep sees labels already changed
// earlier in the same sweep. Stops on a quiet sweep or at the sweep
// cap.
//
// Directed edges vote in both directions; parallel edges vote once
// per edge. Final labels are renumbered 0..k-1 by first appearance.
func LabelPropagation[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[int], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	ix := core.NewIndex(g)
	n := ix.Len()
	out := core.NewNodeMap[int](n)
	if n == 0 {
		return out, nil
	}

	adj := make([][]int, n)
	for _, e := range g.Edges() {
		i, _ := ix.Of(e.From)
		j, _ := ix.Of(e.To)
		if i == j {
			continue
		}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	rng := rand.New(rand.NewSource(o.Seed))
	order := rng.Perm(n)
	for sweep := 0; sweep < o.MaxIter; sweep++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		changed := false
		for _, i := range order {
			if len(adj[i]) == 0 {
				continue
			}
			freq := map[int]int{}
			for _, j := range adj[i] {
				freq[labels[j]]++
			}
			best := labels[i]
			bestCount := 0
			for l, c := range freq {
				if c > bestCount || (c == bestCount && l < best) {
					best = l
					bestCount = c
				}
			}
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
	}

	relabel := make([]int, n)
	for i := range relabel {
		relabel[i] = -1
	}
	next := 0
	for i := 0; i < n; i++ {
		if relabel[labels[i]] < 0 {
			relabel[labels[i]] = next
			next++
		}
		out[ix.ID(i)] = relabel[labels[i]]
	}
	return out, nil
}
