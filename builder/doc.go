// Package builder generates graphs: deterministic topologies
// (complete, star, cycle), random families (bipartite, Erdos-Renyi,
// Watts-Strogatz, Barabasi-Albert), and a validating batch builder for
// positional edge lists.
//
// Every generator is deterministic for a fixed seed: equal parameters
// and equal seeds produce identical graphs, edge for edge. Node
// attributes are the generation index (uint32), weights default to 1
// and can be drawn from a custom weight function.
//
// One constructor per impl_*.go file; options and sentinels live in
// options.go and errors.go.
package builder
