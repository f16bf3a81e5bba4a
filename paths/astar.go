// Package paths: A* search.

package paths

import (
	"container/heap"
	"fmt"

	"github.com/graphina/graphina/core"
)

// Heuristic estimates the remaining cost from a node to the goal. It
// must be non-negative; admissibility (never overestimating) is the
// caller's contract and determines optimality.
type Heuristic func(core.NodeID) float64

// fringeItem is one A* frontier entry ordered by f = g + h.
type fringeItem struct {
	id core.NodeID
	f  float64
	g  float64
}

type fringeHeap []fringeItem

func (h fringeHeap) Len() int            { return len(h) }
func (h fringeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h fringeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *fringeHeap) Push(x interface{}) { *h = append(*h, x.(fringeItem)) }
func (h *fringeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// AStar finds a minimum-cost path from src to dst guided by h,
// returning the node sequence (endpoints inclusive) and its cost.
// Returns ErrNilGraph, ErrNilHeuristic, core.ErrNodeNotFound for
// missing endpoints, core.ErrNegativeWeight for negative edges, and
// core.ErrNoPath when dst is unreachable.
func AStar[A any, W core.Numeric](g *core.Graph[A, W], src, dst core.NodeID, h Heuristic, opts ...Option) ([]core.NodeID, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if h == nil {
		return nil, 0, ErrNilHeuristic
	}
	o := buildOptions(opts)
	if !g.HasNode(src) {
		return nil, 0, fmt.Errorf("%w: source %v", core.ErrNodeNotFound, src)
	}
	if !g.HasNode(dst) {
		return nil, 0, fmt.Errorf("%w: target %v", core.ErrNodeNotFound, dst)
	}
	if err := core.RequireNonNegative(g, "a*"); err != nil {
		return nil, 0, err
	}

	adj := outArcs(g)
	gScore := core.NodeMap[float64]{src: 0}
	prev := core.NewNodeMap[core.NodeID](16)
	settled := make(map[core.NodeID]struct{})
	fringe := &fringeHeap{{id: src, f: h(src), g: 0}}

	for fringe.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, 0, o.Ctx.Err()
		default:
		}

		item := heap.Pop(fringe).(fringeItem)
		if _, done := settled[item.id]; done {
			continue
		}
		settled[item.id] = struct{}{}

		if item.id == dst {
			return PathTo(prev, src, dst), item.g, nil
		}
		for _, a := range adj[item.id] {
			cand := item.g + a.w
			if cur, seen := gScore[a.to]; !seen || cand < cur {
				gScore[a.to] = cand
				prev[a.to] = item.id
				heap.Push(fringe, fringeItem{id: a.to, f: cand + h(a.to), g: cand})
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: from %v to %v", core.ErrNoPath, src, dst)
}
