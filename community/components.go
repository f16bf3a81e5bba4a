package community

import "github.com/graphina/graphina/core"

// ConnectedComponents labels every node with its component, ignoring
// edge direction. Components are numbered 0..count-1 in insertion
// order of their first-seen node. Returns the labeling and the count.
func ConnectedComponents[A any, W core.Numeric](g *core.Graph[A, W]) (core.NodeMap[int], int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	labels := core.NewNodeMap[int](g.NodeCount())
	count := 0
	for _, root := range g.NodeIDs() {
		if _, seen := labels[root]; seen {
			continue
		}
		labels[root] = count
		queue := []core.NodeID{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range undirectedNeighbors(g, u) {
				if _, seen := labels[v]; !seen {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}
	return labels, count, nil
}

// undirectedNeighbors joins out- and in-neighbors so traversal ignores
// direction.
func undirectedNeighbors[A any, W core.Numeric](g *core.Graph[A, W], u core.NodeID) []core.NodeID {
	out := g.Neighbors(u)
	if !g.Directed() {
		return out
	}
	return append(out, g.InNeighbors(u)...)
}
