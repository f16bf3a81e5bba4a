// Package paths: Dijkstra's algorithm.
//
// Lazy decrease-key: relaxations push fresh heap entries and stale
// ones are skipped on pop by comparing against the settled distance.

package paths

import (
	"container/heap"
	"fmt"

	"github.com/graphina/graphina/core"
)

// heapItem is one priority-queue entry.
type heapItem struct {
	id   core.NodeID
	dist float64
}

// distHeap is a binary min-heap over heapItem.
type distHeap []heapItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Dijkstra computes shortest distances from src to every reachable
// node. Unreachable nodes are absent from the returned map. The
// predecessor map is nil unless WithPredecessors is set.
// Returns ErrNilGraph, core.ErrNodeNotFound for a missing source, or
// core.ErrNegativeWeight if any edge weight is below zero.
func Dijkstra[A any, W core.Numeric](g *core.Graph[A, W], src core.NodeID, opts ...Option) (core.NodeMap[float64], core.NodeMap[core.NodeID], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if !g.HasNode(src) {
		return nil, nil, fmt.Errorf("%w: source %v", core.ErrNodeNotFound, src)
	}
	if err := core.RequireNonNegative(g, "dijkstra"); err != nil {
		return nil, nil, err
	}

	adj := outArcs(g)
	dist := core.NewNodeMap[float64](g.NodeCount())
	var prev core.NodeMap[core.NodeID]
	if o.ReturnPredecessors {
		prev = core.NewNodeMap[core.NodeID](g.NodeCount())
	}

	h := &distHeap{{id: src, dist: 0}}
	dist[src] = 0
	settled := make(map[core.NodeID]struct{}, g.NodeCount())

	for h.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, nil, o.Ctx.Err()
		default:
		}
		item := heap.Pop(h).(heapItem)
		if _, done := settled[item.id]; done {
			continue // stale entry
		}
		if item.dist > o.MaxDistance {
			continue
		}
		settled[item.id] = struct{}{}

		for _, a := range adj[item.id] {
			cand := item.dist + a.w
			if cur, seen := dist[a.to]; !seen || cand < cur {
				dist[a.to] = cand
				if prev != nil {
					prev[a.to] = item.id
				}
				heap.Push(h, heapItem{id: a.to, dist: cand})
			}
		}
	}

	// Nodes tentatively relaxed past the cap never settled; drop them.
	for id, d := range dist {
		if d > o.MaxDistance {
			delete(dist, id)
			if prev != nil {
				delete(prev, id)
			}
		}
	}
	return dist, prev, nil
}
