// Prim: grow one tree from a root with a lazy min-heap of frontier
// edges.

package mst

import (
	"container/heap"
	"fmt"

	"github.com/graphina/graphina/core"
)

// frontierEdge is a heap entry: a candidate edge out of the grown
// tree. seq preserves insertion order among equal weights.
type frontierEdge[W core.Numeric] struct {
	edge core.Edge[W]
	into core.NodeID
	seq  int
}

type frontierHeap[W core.Numeric] []frontierEdge[W]

func (h frontierHeap[W]) Len() int { return len(h) }
func (h frontierHeap[W]) Less(i, j int) bool {
	if h[i].edge.Weight != h[j].edge.Weight {
		return h[i].edge.Weight < h[j].edge.Weight
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap[W]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap[W]) Push(x interface{}) { *h = append(*h, x.(frontierEdge[W])) }
func (h *frontierHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Prim computes a minimum spanning tree by repeatedly adding the
// cheapest edge leaving the tree grown so far. The tree starts at
// WithRoot, or the first node in insertion order.
func Prim[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) ([]core.Edge[W], W, error) {
	var zero W
	if err := validate(g); err != nil {
		return nil, zero, err
	}
	o := buildOptions(opts)

	root := o.Root
	if root.IsZero() {
		root = g.NodeIDs()[0]
	}
	if !g.HasNode(root) {
		return nil, zero, fmt.Errorf("mst: root %v: %w", root, core.ErrNodeNotFound)
	}

	n := g.NodeCount()
	if n == 1 {
		return []core.Edge[W]{}, zero, nil
	}

	inTree := make(map[core.NodeID]struct{}, n)
	h := &frontierHeap[W]{}
	seq := 0
	grow := func(id core.NodeID) {
		inTree[id] = struct{}{}
		for _, e := range g.OutEdges(id) {
			other := e.To
			if other == id {
				other = e.From
			}
			if other == id {
				continue // self-loop
			}
			if _, ok := inTree[other]; !ok {
				heap.Push(h, frontierEdge[W]{edge: e, into: other, seq: seq})
				seq++
			}
		}
	}
	grow(root)

	tree := make([]core.Edge[W], 0, n-1)
	total := zero
	for h.Len() > 0 && len(tree) < n-1 {
		if err := o.Ctx.Err(); err != nil {
			return nil, zero, err
		}
		item := heap.Pop(h).(frontierEdge[W])
		if _, ok := inTree[item.into]; ok {
			continue // lazy deletion: endpoint joined meanwhile
		}
		tree = append(tree, item.edge)
		total += item.edge.Weight
		grow(item.into)
	}
	if len(tree) < n-1 {
		return nil, zero, fmt.Errorf("mst: disconnected graph: %w", core.ErrUnfeasible)
	}
	return tree, total, nil
}
