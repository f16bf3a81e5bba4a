package centrality

import "github.com/graphina/graphina/core"

// Degree returns degree centrality for every node. Normalized scores
// divide by n-1, so a node adjacent to everything else scores 1.
// Self-loops count once.
func Degree[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	return degreeBy(g, opts, func(id core.NodeID) int {
		return g.Degree(id)
	})
}

// InDegree returns in-degree centrality. On undirected graphs it
// coincides with Degree.
func InDegree[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	return degreeBy(g, opts, func(id core.NodeID) int {
		return g.InDegree(id)
	})
}

// OutDegree returns out-degree centrality. On undirected graphs it
// coincides with Degree.
func OutDegree[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	return degreeBy(g, opts, func(id core.NodeID) int {
		return g.OutDegree(id)
	})
}

func degreeBy[A any, W core.Numeric](g *core.Graph[A, W], opts []Option, deg func(core.NodeID) int) (core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	n := g.NodeCount()
	out := core.NewNodeMap[float64](n)
	scale := 1.0
	if o.Normalized && n > 1 {
		scale = 1 / float64(n-1)
	}
	for _, id := range g.NodeIDs() {
		out[id] = float64(deg(id)) * scale
	}
	return out, nil
}
