// Package paths: Johnson's all-pairs shortest paths.
//
// Bellman-Ford potentials from a virtual source make every edge
// non-negative, then one Dijkstra per node runs on the reweighted
// graph. Suits sparse graphs where V³ is too much.

package paths

import (
	"container/heap"
	"fmt"

	"github.com/graphina/graphina/core"
)

// Johnson computes all-pairs shortest distances, tolerating negative
// edge weights on directed graphs. The result maps each source to its
// distance map; unreachable targets are absent.
// Returns ErrNilGraph and core.ErrNegativeCycle when one exists.
func Johnson[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[core.NodeMap[float64]], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	ids := g.NodeIDs()
	n := len(ids)
	result := core.NewNodeMap[core.NodeMap[float64]](n)
	if n == 0 {
		return result, nil
	}

	type rel struct {
		from, to core.NodeID
		w        float64
	}
	var arcs []rel
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		arcs = append(arcs, rel{from: e.From, to: e.To, w: w})
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, rel{from: e.To, to: e.From, w: w})
		}
	}

	// Potentials: a virtual source with zero-weight edges to every node
	// is equivalent to starting h at all zeros and relaxing n passes.
	h := core.NewNodeMap[float64](n)
	for _, id := range ids {
		h[id] = 0
	}
	for pass := 0; pass < n; pass++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		changed := false
		for _, a := range arcs {
			if cand := h[a.from] + a.w; cand < h[a.to] {
				h[a.to] = cand
				changed = true
			}
		}
		if !changed {
			break
		}
		if pass == n-1 {
			return nil, fmt.Errorf("%w: detected by johnson potentials", core.ErrNegativeCycle)
		}
	}

	// Reweighted adjacency: w' = w + h[u] - h[v] >= 0.
	adj := core.NewNodeMap[[]arc](n)
	for _, id := range ids {
		adj[id] = nil
	}
	for _, a := range arcs {
		adj[a.from] = append(adj[a.from], arc{to: a.to, w: a.w + h[a.from] - h[a.to]})
	}

	for _, src := range ids {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		dist := dijkstraOnArcs(adj, src, n)
		// Undo the reweighting: d = d' - h[src] + h[v].
		for v, d := range dist {
			dist[v] = d - h[src] + h[v]
		}
		result[src] = dist
	}
	return result, nil
}

// dijkstraOnArcs runs the heap loop over a prebuilt adjacency.
func dijkstraOnArcs(adj core.NodeMap[[]arc], src core.NodeID, hint int) core.NodeMap[float64] {
	dist := core.NodeMap[float64]{src: 0}
	settled := make(map[core.NodeID]struct{}, hint)
	hp := &distHeap{{id: src, dist: 0}}
	for hp.Len() > 0 {
		item := heap.Pop(hp).(heapItem)
		if _, done := settled[item.id]; done {
			continue
		}
		settled[item.id] = struct{}{}
		for _, a := range adj[item.id] {
			cand := item.dist + a.w
			if cur, seen := dist[a.to]; !seen || cand < cur {
				dist[a.to] = cand
				heap.Push(hp, heapItem{id: a.to, dist: cand})
			}
		}
	}
	return dist
}
