// Package traverse: depth-first search.
//
// Iterative preorder with an explicit stack. Neighbors are pushed in
// reverse sorted order so the smallest handle is explored first,
// matching the recursive formulation.

package traverse

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// stackItem mirrors queueItem for the DFS stack.
type stackItem struct {
	id     core.NodeID
	depth  int
	parent core.NodeID
}

// DFS runs depth-first search on g from start, applying any number of
// functional Options. Returns the preorder visit sequence plus depth
// and parent maps.
// Returns ErrNilGraph, core.ErrNodeNotFound for a missing start,
// ErrOptionViolation for bad options, or any hook error.
func DFS[A any, W core.Numeric](g *core.Graph[A, W], start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrNodeNotFound, start)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]core.NodeID, 0, n),
		Depth:  core.NewNodeMap[int](n),
		Parent: core.NewNodeMap[core.NodeID](n),
	}
	visited := make(map[core.NodeID]struct{}, n)
	stack := []stackItem{{id: start, depth: 0}}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[top.id]; seen {
			continue
		}
		visited[top.id] = struct{}{}
		o.OnDequeue(top.id, top.depth)

		res.Order = append(res.Order, top.id)
		res.Depth[top.id] = top.depth
		if !top.parent.IsZero() {
			res.Parent[top.id] = top.parent
		}
		if err := o.OnVisit(top.id, top.depth); err != nil {
			return res, fmt.Errorf("traverse: OnVisit error at %v: %w", top.id, err)
		}

		nextDepth := top.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}
		nbrs := g.Neighbors(top.id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if !o.FilterNeighbor(top.id, nbr) {
				continue
			}
			if _, seen := visited[nbr]; seen {
				continue
			}
			o.OnEnqueue(nbr, nextDepth)
			stack = append(stack, stackItem{id: nbr, depth: nextDepth, parent: top.id})
		}
	}
	return res, nil
}
