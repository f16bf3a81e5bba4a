// Package paths: Bellman-Ford.

package paths

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// BellmanFord computes shortest distances from src, tolerating
// negative edge weights. Undirected edges are relaxed in both
// directions, so a negative undirected edge is itself a negative
// cycle. Unreachable nodes are absent from the returned map.
// Returns ErrNilGraph, core.ErrNodeNotFound for a missing source, or
// core.ErrNegativeCycle when one is reachable from src.
func BellmanFord[A any, W core.Numeric](g *core.Graph[A, W], src core.NodeID, opts ...Option) (core.NodeMap[float64], core.NodeMap[core.NodeID], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if !g.HasNode(src) {
		return nil, nil, fmt.Errorf("%w: source %v", core.ErrNodeNotFound, src)
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

	n := g.NodeCount()
	dist := core.NewNodeMap[float64](n)
	dist[src] = 0
	var prev core.NodeMap[core.NodeID]
	if o.ReturnPredecessors {
		prev = core.NewNodeMap[core.NodeID](n)
	}

	for pass := 0; pass < n-1; pass++ {
		select {
		case <-o.Ctx.Done():
			return nil, nil, o.Ctx.Err()
		default:
		}
		changed := false
		for _, a := range arcs {
			du, ok := dist[a.from]
			if !ok {
				continue
			}
			cand := du + a.w
			if dv, seen := dist[a.to]; !seen || cand < dv {
				dist[a.to] = cand
				if prev != nil {
					prev[a.to] = a.from
				}
				changed = true
			}
		}
		if !changed {
			break // quiescent: no shorter paths remain
		}
	}

	// Detection pass: any further improvement means a negative cycle.
	for _, a := range arcs {
		du, ok := dist[a.from]
		if !ok {
			continue
		}
		if dv, seen := dist[a.to]; !seen || du+a.w < dv {
			return nil, nil, fmt.Errorf("%w: reachable from %v", core.ErrNegativeCycle, src)
		}
	}
	return dist, prev, nil
}
