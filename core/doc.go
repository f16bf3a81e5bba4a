// Package core provides a thread-safe, generic in-memory multigraph
// with stable opaque identities and the support services shared by
// every algorithm package in graphina.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Arbitrary node attributes A and numeric edge weights W
//   - Parallel edges and self-loops (always permitted)
//   - Stable NodeID/EdgeID handles that survive unrelated removals and
//     are never reused
//   - A single sync.RWMutex guarding all state: concurrent readers,
//     exclusive writers
//
// Why opaque identities?
//
// NodeID and EdgeID wrap an unexported sequence number. They are
// comparable and usable as map keys, but they are NOT dense array
// indices: after removals the live IDs have gaps. Any kernel that
// needs vectors or matrices must first build an Index (see index.go),
// which maps the current live node set onto 0..n-1 for the duration of
// one invocation.
//
// Core method groups:
//
//	// Node lifecycle
//	AddNode(attr A) NodeID                       // O(1)
//	UpdateNode(id, attr) error                   // O(1)
//	RemoveNode(id) (A, bool)                     // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID, w W) (EdgeID, error)    // O(1)
//	UpdateEdge(id, w) error                      // O(1)
//	RemoveEdge(id) (W, bool)                     // O(1)
//
//	// Query
//	NodeAttr, EdgeWeight, EdgeEndpoints, HasNode, HasEdge, FindEdge
//	Neighbors(id) []NodeID                       // unique, ascending
//	InNeighbors(id) []NodeID
//	Degree / InDegree / OutDegree                // self-loop counts 1
//
//	// Iteration (insertion order)
//	Nodes() []Node[A], Edges() []Edge[W], NodeIDs(), EdgeIDs()
//
//	// Bulk
//	RetainNodes, RetainEdges, Clone, Clear, Subgraph, EgoGraph, ...
//
// Errors follow the graphina taxonomy declared in errors.go: sentinel
// values matched with errors.Is, wrapped with %w where call sites add
// context, plus ConvergenceError for iterative kernels that carry an
// iteration count.
package core
