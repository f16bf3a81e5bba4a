// Package metrics computes whole-graph statistics: eccentricity-based
// measures, clustering, triangle counts, path-length averages, and
// degree assortativity.
//
// Complexity:
//   - Diameter, Radius, AveragePathLength: O(V * (V + E)) via repeated
//     BFS over hop counts.
//   - ClusteringCoefficient, Triangles: O(d^2) for a node of degree d.
//   - AverageClustering, Transitivity: O(V * d^2).
//   - DegreeAssortativity: O(E).
//
// Distances are hop counts; edge weights do not participate. Directed
// graphs are measured along out-edges.
//
// Errors:
//   - ErrNilGraph for a nil graph value.
//   - core.ErrInvalidGraph when a measure needs a connected graph and
//     the graph is empty or disconnected.
//   - core.ErrNodeNotFound for per-node measures on unknown handles.
package metrics

import (
	"context"
	"errors"
)

// ErrNilGraph reports a nil *core.Graph argument.
var ErrNilGraph = errors.New("metrics: nil graph")

// Options carries the shared knobs for the package entry points.
type Options struct {
	// Ctx cancels long sweeps between per-source passes.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithContext attaches ctx for cancellation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("metrics: nil context")
	}
	return func(o *Options) { o.Ctx = ctx }
}

func buildOptions(opts []Option) Options {
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
