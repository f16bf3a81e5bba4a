// Package core: node and edge lifecycle.
//
// Handles are allocated from monotone counters and never reused.
// Adjacency is a nested map out[u][v][edgeID] = struct{}{}, giving
// constant-time existence, insertion, and deletion even with parallel
// edges.

package core

import "fmt"

// AddNode inserts a new node carrying attr and returns its handle.
// Complexity: O(1) amortized.
func (g *Graph[A, W]) AddNode(attr A) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextNode++
	id := NodeID{seq: g.nextNode}
	g.nodes[id] = &node[A]{id: id, attr: attr}
	g.nodeOrder = append(g.nodeOrder, id)
	g.out[id] = make(map[NodeID]map[EdgeID]struct{})
	if g.directed {
		g.in[id] = make(map[NodeID]map[EdgeID]struct{})
	}
	return id
}

// UpdateNode replaces the attribute stored at id.
// Returns ErrNodeNotFound if the node does not exist.
func (g *Graph[A, W]) UpdateNode(id NodeID, attr A) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	n.attr = attr
	return nil
}

// RemoveNode deletes the node and every incident edge. It returns the
// removed attribute and true, or the zero attribute and false when the
// node was absent.
// Complexity: O(deg(v)) plus amortized order compaction.
func (g *Graph[A, W]) RemoveNode(id NodeID) (A, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		var zero A
		return zero, false
	}

	// Collect incident edge IDs before mutating adjacency.
	var incident []EdgeID
	for _, bucket := range g.out[id] {
		for eid := range bucket {
			incident = append(incident, eid)
		}
	}
	if g.directed {
		for _, bucket := range g.in[id] {
			for eid := range bucket {
				incident = append(incident, eid)
			}
		}
	}
	for _, eid := range incident {
		g.removeEdgeLocked(eid)
	}

	delete(g.nodes, id)
	delete(g.out, id)
	if g.directed {
		delete(g.in, id)
	}
	g.deadNodes++
	g.compactNodeOrderLocked()
	return n.attr, true
}

// AddEdge inserts an edge from u to v with weight w and returns its
// handle. Both endpoints must already exist; otherwise
// ErrEndpointMissing is returned and the graph is unchanged.
// Self-loops and parallel edges are permitted.
// Complexity: O(1) amortized.
func (g *Graph[A, W]) AddEdge(u, v NodeID, w W) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return EdgeID{}, fmt.Errorf("%w: source %v", ErrEndpointMissing, u)
	}
	if _, ok := g.nodes[v]; !ok {
		return EdgeID{}, fmt.Errorf("%w: target %v", ErrEndpointMissing, v)
	}

	g.nextEdge++
	id := EdgeID{seq: g.nextEdge}
	g.edges[id] = &edge[W]{id: id, from: u, to: v, weight: w}
	g.edgeOrder = append(g.edgeOrder, id)

	g.linkLocked(g.out, u, v, id)
	if g.directed {
		g.linkLocked(g.in, v, u, id)
	} else if u != v {
		// Mirror so out alone answers Neighbors for undirected graphs.
		g.linkLocked(g.out, v, u, id)
	}
	return id, nil
}

// UpdateEdge replaces the weight stored at id.
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph[A, W]) UpdateEdge(id EdgeID, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrEdgeNotFound, id)
	}
	e.weight = w
	return nil
}

// RemoveEdge deletes the edge. It returns the removed weight and true,
// or zero and false when the edge was absent.
// Complexity: O(1) amortized.
func (g *Graph[A, W]) RemoveEdge(id EdgeID) (W, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		var zero W
		return zero, false
	}
	g.removeEdgeLocked(id)
	return e.weight, true
}

// removeEdgeLocked unlinks id from adjacency and the edge table.
// Caller holds the write lock.
func (g *Graph[A, W]) removeEdgeLocked(id EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	g.unlinkLocked(g.out, e.from, e.to, id)
	if g.directed {
		g.unlinkLocked(g.in, e.to, e.from, id)
	} else if e.from != e.to {
		g.unlinkLocked(g.out, e.to, e.from, id)
	}
	delete(g.edges, id)
	g.deadEdges++
	g.compactEdgeOrderLocked()
}

// linkLocked records id in adj[a][b].
func (g *Graph[A, W]) linkLocked(adj map[NodeID]map[NodeID]map[EdgeID]struct{}, a, b NodeID, id EdgeID) {
	bucket, ok := adj[a][b]
	if !ok {
		bucket = make(map[EdgeID]struct{}, 1)
		adj[a][b] = bucket
	}
	bucket[id] = struct{}{}
}

// unlinkLocked removes id from adj[a][b], dropping empty buckets.
func (g *Graph[A, W]) unlinkLocked(adj map[NodeID]map[NodeID]map[EdgeID]struct{}, a, b NodeID, id EdgeID) {
	bucket, ok := adj[a][b]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(adj[a], b)
	}
}

// compactNodeOrderLocked rebuilds nodeOrder once dead entries dominate,
// keeping iteration O(live) amortized.
func (g *Graph[A, W]) compactNodeOrderLocked() {
	if g.deadNodes*2 < len(g.nodeOrder) {
		return
	}
	live := g.nodeOrder[:0]
	for _, id := range g.nodeOrder {
		if _, ok := g.nodes[id]; ok {
			live = append(live, id)
		}
	}
	g.nodeOrder = live
	g.deadNodes = 0
}

// compactEdgeOrderLocked mirrors compactNodeOrderLocked for edges.
func (g *Graph[A, W]) compactEdgeOrderLocked() {
	if g.deadEdges*2 < len(g.edgeOrder) {
		return
	}
	live := g.edgeOrder[:0]
	for _, id := range g.edgeOrder {
		if _, ok := g.edges[id]; ok {
			live = append(live, id)
		}
	}
	g.edgeOrder = live
	g.deadEdges = 0
}
