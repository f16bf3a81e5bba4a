// Package traverse: bidirectional breadth-first search.
//
// Two frontiers grow alternately from start and target until they
// touch. The backward wave follows in-edges on directed graphs, so the
// concatenated result is a valid forward path. Meeting nodes are
// checked frontier-against-frontier before frontier-against-visited,
// and ties resolve to the smallest handle for determinism.

package traverse

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Bidirectional returns a shortest unweighted path from start to
// target, endpoints inclusive.
// Returns ErrNilGraph, core.ErrNodeNotFound for missing endpoints, and
// core.ErrNoPath when the nodes are not connected.
func Bidirectional[A any, W core.Numeric](g *core.Graph[A, W], start, target core.NodeID, opts ...Option) ([]core.NodeID, error) {
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
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: target %v", core.ErrNodeNotFound, target)
	}
	if start == target {
		return []core.NodeID{start}, nil
	}

	// parent maps double as visited sets; roots map to the zero ID.
	fwdParent := core.NodeMap[core.NodeID]{start: {}}
	bwdParent := core.NodeMap[core.NodeID]{target: {}}
	fwdFrontier := []core.NodeID{start}
	bwdFrontier := []core.NodeID{target}

	forward := true
	for len(fwdFrontier) > 0 && len(bwdFrontier) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		var meet core.NodeID
		var ok bool
		if forward {
			fwdFrontier, meet, ok = expandWave(g, fwdFrontier, fwdParent, bwdFrontier, bwdParent, o, false)
		} else {
			bwdFrontier, meet, ok = expandWave(g, bwdFrontier, bwdParent, fwdFrontier, fwdParent, o, true)
		}
		if ok {
			return stitch(fwdParent, bwdParent, start, target, meet), nil
		}
		forward = !forward
	}
	return nil, fmt.Errorf("%w: from %v to %v", core.ErrNoPath, start, target)
}

// expandWave advances one frontier a single level and reports the best
// meeting node with the other side, if any.
func expandWave[A any, W core.Numeric](
	g *core.Graph[A, W],
	frontier []core.NodeID,
	parent core.NodeMap[core.NodeID],
	otherFrontier []core.NodeID,
	otherParent core.NodeMap[core.NodeID],
	o Options,
	backward bool,
) (next []core.NodeID, meet core.NodeID, ok bool) {
	otherOnFrontier := make(map[core.NodeID]struct{}, len(otherFrontier))
	for _, id := range otherFrontier {
		otherOnFrontier[id] = struct{}{}
	}

	for _, u := range frontier {
		var nbrs []core.NodeID
		if backward {
			nbrs = g.InNeighbors(u)
		} else {
			nbrs = g.Neighbors(u)
		}
		for _, v := range nbrs {
			if !o.FilterNeighbor(u, v) {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			next = append(next, v)
		}
	}

	// Prefer a meeting node sitting on the opposite frontier, then fall
	// back to anything the opposite side has visited.
	for _, v := range next {
		if _, hit := otherOnFrontier[v]; hit {
			if !ok || v.Less(meet) {
				meet, ok = v, true
			}
		}
	}
	if !ok {
		for _, v := range next {
			if _, hit := otherParent[v]; hit {
				if !ok || v.Less(meet) {
					meet, ok = v, true
				}
			}
		}
	}
	return next, meet, ok
}

// stitch joins the two parent chains at meet into one start..target
// path.
func stitch(fwdParent, bwdParent core.NodeMap[core.NodeID], start, target, meet core.NodeID) []core.NodeID {
	var head []core.NodeID
	for at := meet; ; {
		head = append(head, at)
		if at == start {
			break
		}
		at = fwdParent[at]
	}
	// head is meet..start; reverse in place.
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}

	for at := meet; at != target; {
		at = bwdParent[at]
		head = append(head, at)
	}
	return head
}
