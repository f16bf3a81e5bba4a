// Package core: subgraph extraction.
//
// Extraction always produces a fresh graph with fresh handles; the
// result does not alias the source. All variants preserve the
// directedness of the source.

package core

import "fmt"

// Subgraph returns the subgraph induced by nodes. Every listed node
// must exist; the first missing one aborts with ErrNodeNotFound.
// Duplicate entries are collapsed.
func (g *Graph[A, W]) Subgraph(nodes []NodeID) (*Graph[A, W], error) {
	keep := make(map[NodeID]struct{}, len(nodes))
	for _, id := range nodes {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: subgraph: %v", ErrNodeNotFound, id)
		}
		keep[id] = struct{}{}
	}
	return g.induce(keep), nil
}

// InducedSubgraph returns the subgraph over the given node set.
// Missing IDs are ignored.
func (g *Graph[A, W]) InducedSubgraph(nodes map[NodeID]struct{}) *Graph[A, W] {
	keep := make(map[NodeID]struct{}, len(nodes))
	for id := range nodes {
		if g.HasNode(id) {
			keep[id] = struct{}{}
		}
	}
	return g.induce(keep)
}

// EgoGraph returns the subgraph induced by center and every node
// within radius hops of it (following out-edges on directed graphs).
func (g *Graph[A, W]) EgoGraph(center NodeID, radius int) (*Graph[A, W], error) {
	if !g.HasNode(center) {
		return nil, fmt.Errorf("%w: ego graph center %v", ErrNodeNotFound, center)
	}
	keep := make(map[NodeID]struct{})
	for _, id := range g.KHopNeighbors(center, radius) {
		keep[id] = struct{}{}
	}
	keep[center] = struct{}{}
	return g.induce(keep), nil
}

// FilterNodes returns the subgraph of nodes satisfying pred.
func (g *Graph[A, W]) FilterNodes(pred func(NodeID, A) bool) *Graph[A, W] {
	keep := make(map[NodeID]struct{})
	for _, n := range g.Nodes() {
		if pred(n.ID, n.Attr) {
			keep[n.ID] = struct{}{}
		}
	}
	return g.induce(keep)
}

// FilterEdges returns a copy with all nodes but only the edges
// satisfying pred.
func (g *Graph[A, W]) FilterEdges(pred func(Edge[W]) bool) *Graph[A, W] {
	var sub *Graph[A, W]
	if g.Directed() {
		sub = NewGraph[A, W](WithDirected())
	} else {
		sub = NewGraph[A, W]()
	}
	remap := make(map[NodeID]NodeID, g.NodeCount())
	for _, n := range g.Nodes() {
		remap[n.ID] = sub.AddNode(n.Attr)
	}
	for _, e := range g.Edges() {
		if pred(e) {
			sub.AddEdge(remap[e.From], remap[e.To], e.Weight)
		}
	}
	return sub
}

// KHopNeighbors returns every node at most k hops from start,
// excluding start itself, in BFS discovery order. Returns nil when
// start is absent or k < 1.
func (g *Graph[A, W]) KHopNeighbors(start NodeID, k int) []NodeID {
	if k < 1 || !g.HasNode(start) {
		return nil
	}
	visited := GetVisited()
	defer PutVisited(visited)
	visited[start] = struct{}{}

	var out []NodeID
	frontier := []NodeID{start}
	for depth := 0; depth < k && len(frontier) > 0; depth++ {
		var next []NodeID
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if _, ok := visited[v]; ok {
					continue
				}
				visited[v] = struct{}{}
				out = append(out, v)
				next = append(next, v)
			}
		}
		frontier = next
	}
	return out
}

// ComponentOf returns every node in the weakly connected component of
// start (direction ignored), including start, in discovery order.
// Returns nil when start is absent.
func (g *Graph[A, W]) ComponentOf(start NodeID) []NodeID {
	if !g.HasNode(start) {
		return nil
	}
	visited := GetVisited()
	defer PutVisited(visited)
	visited[start] = struct{}{}

	out := []NodeID{start}
	queue := []NodeID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs := g.Neighbors(u)
		if g.Directed() {
			nbrs = append(nbrs, g.InNeighbors(u)...)
		}
		for _, v := range nbrs {
			if _, ok := visited[v]; ok {
				continue
			}
			visited[v] = struct{}{}
			out = append(out, v)
			queue = append(queue, v)
		}
	}
	return out
}

// ComponentSubgraph returns the subgraph induced by the component of
// start.
func (g *Graph[A, W]) ComponentSubgraph(start NodeID) (*Graph[A, W], error) {
	members := g.ComponentOf(start)
	if members == nil {
		return nil, fmt.Errorf("%w: component of %v", ErrNodeNotFound, start)
	}
	keep := make(map[NodeID]struct{}, len(members))
	for _, id := range members {
		keep[id] = struct{}{}
	}
	return g.induce(keep), nil
}

// induce copies the nodes in keep and every edge whose endpoints are
// both kept into a fresh graph with fresh handles.
func (g *Graph[A, W]) induce(keep map[NodeID]struct{}) *Graph[A, W] {
	var sub *Graph[A, W]
	if g.Directed() {
		sub = NewGraph[A, W](WithDirected())
	} else {
		sub = NewGraph[A, W]()
	}
	remap := make(map[NodeID]NodeID, len(keep))
	for _, n := range g.Nodes() {
		if _, ok := keep[n.ID]; ok {
			remap[n.ID] = sub.AddNode(n.Attr)
		}
	}
	for _, e := range g.Edges() {
		fu, okU := remap[e.From]
		fv, okV := remap[e.To]
		if okU && okV {
			sub.AddEdge(fu, fv, e.Weight)
		}
	}
	return sub
}
