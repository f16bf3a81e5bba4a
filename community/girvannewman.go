package community

import (
	"fmt"

	"github.com/graphina/graphina/centrality"
	"github.com/graphina/graphina/core"
)

// GirvanNewman splits the graph into at least target components by
// repeatedly removing the edge with the highest betweenness. Direction
// is ignored. Returns the resulting components as node groups, ordered
// by first-seen node, and core.ErrUnfeasible when the edges run out
// before the target is met.
func GirvanNewman[A any, W core.Numeric](g *core.Graph[A, W], target int, opts ...Option) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if target < 1 {
		return nil, fmt.Errorf("%w: component target %d", core.ErrInvalidArgument, target)
	}
	if target > g.NodeCount() {
		return nil, fmt.Errorf("%w: component target %d exceeds %d nodes", core.ErrInvalidArgument, target, g.NodeCount())
	}
	o := buildOptions(opts)

	work, toOrig := undirectedCopy(g)
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		labels, count, err := ConnectedComponents(work)
		if err != nil {
			return nil, err
		}
		if count >= target {
			groups := Groups(labels)
			for _, grp := range groups {
				for i, id := range grp {
					grp[i] = toOrig[id]
				}
			}
			return groups, nil
		}
		if work.EdgeCount() == 0 {
			return nil, fmt.Errorf("%w: no edges left before reaching %d components", core.ErrUnfeasible, target)
		}

		scores, err := centrality.EdgeBetweenness(work, centrality.WithRaw(), centrality.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		var victim core.EdgeID
		best := -1.0
		for _, id := range work.EdgeIDs() {
			v := scores[id]
			if v > best {
				best = v
				victim = id
			}
		}
		work.RemoveEdge(victim)
	}
}

// undirectedCopy rebuilds g as an undirected graph. The handle map
// translates copy handles back to the originals; for an already
// undirected graph the copy shares handles via Clone.
func undirectedCopy[A any, W core.Numeric](g *core.Graph[A, W]) (*core.Graph[A, W], core.NodeMap[core.NodeID]) {
	toOrig := core.NewNodeMap[core.NodeID](g.NodeCount())
	if !g.Directed() {
		c := g.Clone()
		for _, id := range c.NodeIDs() {
			toOrig[id] = id
		}
		return c, toOrig
	}
	c := core.NewGraph[A, W]()
	fromOrig := core.NewNodeMap[core.NodeID](g.NodeCount())
	for _, n := range g.Nodes() {
		nid := c.AddNode(n.Attr)
		fromOrig[n.ID] = nid
		toOrig[nid] = n.ID
	}
	for _, e := range g.Edges() {
		c.AddEdge(fromOrig[e.From], fromOrig[e.To], e.Weight)
	}
	return c, toOrig
}
