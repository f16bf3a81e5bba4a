// Package graphina is an in-memory graph data-science toolkit: a
// generic, concurrency-safe graph store with algorithm packages for
// traversal, shortest paths, centrality, community detection,
// structural metrics, spanning trees, generation, serialization, and
// parallel whole-graph computation.
//
// 🚀 What is graphina?
//
// The core package holds Graph[A, W], a store addressed by opaque
// NodeID/EdgeID handles that stay valid across unrelated mutations and
// are never reused. Everything else consumes that store through its
// public API:
//
//   - traverse:   BFS, DFS, IDDFS, bidirectional search with hooks.
//   - paths:      Dijkstra, Bellman-Ford, A*, Floyd-Warshall, Johnson.
//   - centrality: degree, betweenness (node and edge), closeness,
//     harmonic, PageRank, personalized PageRank, eigenvector, Katz.
//   - community:  Louvain, label propagation, Girvan-Newman,
//     connected components, modularity.
//   - metrics:    diameter, radius, average path length, clustering,
//     transitivity, triangles, degree assortativity.
//   - mst:        Kruskal, Prim, Boruvka behind one Compute dispatch.
//   - builder:    deterministic topologies, random generators, and a
//     position-addressed GraphBuilder.
//   - graphio:    edge lists, adjacency lists, GraphML, JSON, and a
//     compact binary codec.
//   - parallel:   multi-source BFS, per-node statistics, PageRank,
//     and component labeling fanned out over bounded workers.
//
// ⚙️ Conventions
//
// Algorithms accept functional options, return explicit errors wrapped
// around the sentinel taxonomy in core, and take context through
// WithContext where work is long-running. Nothing logs and continues;
// failures surface to the caller.
//
// Start with core.NewGraph, wire nodes and edges, and reach for the
// algorithm package you need.
package graphina
