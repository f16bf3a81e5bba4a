// Hop-count distance measures: eccentricities and the all-pairs
// average. Each runs one BFS per node and demands a connected graph.

package metrics

import (
	"fmt"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/traverse"
)

// Diameter returns the longest shortest path, in hops, over all node
// pairs. Fails with core.ErrInvalidGraph on empty or disconnected
// graphs.
func Diameter[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (int, error) {
	ecc, err := eccentricities(g, opts)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, e := range ecc {
		if e > max {
			max = e
		}
	}
	return max, nil
}

// Radius returns the minimum eccentricity over all nodes. Fails with
// core.ErrInvalidGraph on empty or disconnected graphs.
func Radius[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (int, error) {
	ecc, err := eccentricities(g, opts)
	if err != nil {
		return 0, err
	}
	min := ecc[0]
	for _, e := range ecc[1:] {
		if e < min {
			min = e
		}
	}
	return min, nil
}

// AveragePathLength returns the mean shortest-path length, in hops,
// over all ordered reachable pairs. A single-node graph averages to 0.
// Fails with core.ErrInvalidGraph on empty or disconnected graphs.
func AveragePathLength[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o := buildOptions(opts)
	n := g.NodeCount()
	if n == 0 {
		return 0, fmt.Errorf("metrics: empty graph: %w", core.ErrInvalidGraph)
	}
	total := 0.0
	pairs := 0
	for _, src := range g.NodeIDs() {
		res, err := traverse.BFS(g, src, traverse.WithContext(o.Ctx))
		if err != nil {
			return 0, err
		}
		if len(res.Depth) != n {
			return 0, fmt.Errorf("metrics: disconnected graph: %w", core.ErrInvalidGraph)
		}
		for _, d := range res.Depth {
			if d > 0 {
				total += float64(d)
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0, nil
	}
	return total / float64(pairs), nil
}

// eccentricities runs a BFS per node and returns each node's maximum
// hop distance.
func eccentricities[A any, W core.Numeric](g *core.Graph[A, W], opts []Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	n := g.NodeCount()
	if n == 0 {
		return nil, fmt.Errorf("metrics: empty graph: %w", core.ErrInvalidGraph)
	}
	ecc := make([]int, 0, n)
	for _, src := range g.NodeIDs() {
		res, err := traverse.BFS(g, src, traverse.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		if len(res.Depth) != n {
			return nil, fmt.Errorf("metrics: disconnected graph: %w", core.ErrInvalidGraph)
		}
		far := 0
		for _, d := range res.Depth {
			if d > far {
				far = d
			}
		}
		ecc = append(ecc, far)
	}
	return ecc, nil
}
