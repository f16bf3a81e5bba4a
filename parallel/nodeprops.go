package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/metrics"
)

// Degrees returns the degree of every node, computed over contiguous
// node chunks.
func Degrees[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[int], error) {
	return perNode(g, opts, func(g *core.Graph[A, W], id core.NodeID) (int, error) {
		return g.Degree(id), nil
	})
}

// ClusteringCoefficients returns the local clustering coefficient of
// every node. Matches metrics.ClusteringCoefficient node by node.
func ClusteringCoefficients[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	return perNode(g, opts, metrics.ClusteringCoefficient[A, W])
}

// Triangles returns the number of triangles through every node.
// Matches metrics.Triangles node by node.
func Triangles[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[int], error) {
	return perNode(g, opts, metrics.Triangles[A, W])
}

// perNode evaluates fn for every node, one chunk of the node list per
// worker, and merges the chunk slices into a NodeMap afterwards.
func perNode[A any, W core.Numeric, T any](
	g *core.Graph[A, W],
	opts []Option,
	fn func(*core.Graph[A, W], core.NodeID) (T, error),
) (core.NodeMap[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	ids := g.NodeIDs()
	vals := make([]T, len(ids))
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)
	for _, c := range chunks(len(ids), o.Workers) {
		c := c
		grp.Go(func() error {
			for i := c[0]; i < c[1]; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				v, err := fn(g, ids[i])
				if err != nil {
					return err
				}
				vals[i] = v
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	out := core.NewNodeMap[T](len(ids))
	for i, id := range ids {
		out[id] = vals[i]
	}
	return out, nil
}
