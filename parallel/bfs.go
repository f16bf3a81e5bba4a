package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/paths"
	"github.com/graphina/graphina/traverse"
)

// MultiBFS runs one breadth-first traversal per source and returns the
// results in source order. Each traversal is an independent unit of
// work; the graph is only read.
//
// Returns ErrNoSources for an empty source list and
// core.ErrNodeNotFound if any source is absent from the graph.
func MultiBFS[A any, W core.Numeric](g *core.Graph[A, W], sources []core.NodeID, opts ...Option) ([]*traverse.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	o := buildOptions(opts)

	results := make([]*traverse.Result, len(sources))
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)
	for i, src := range sources {
		i, src := i, src
		grp.Go(func() error {
			res, err := traverse.BFS(g, src, traverse.WithContext(ctx))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ShortestPaths runs Dijkstra from each source and returns the
// weighted distance maps in source order. Nodes a source cannot reach
// are absent from its map.
//
// Returns ErrNoSources for an empty source list,
// core.ErrNodeNotFound for an unknown source, and
// core.ErrNegativeWeight if any edge weight is below zero.
func ShortestPaths[A any, W core.Numeric](g *core.Graph[A, W], sources []core.NodeID, opts ...Option) ([]core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	o := buildOptions(opts)

	dists := make([]core.NodeMap[float64], len(sources))
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)
	for i, src := range sources {
		i, src := i, src
		grp.Go(func() error {
			dist, _, err := paths.Dijkstra(g, src, paths.WithContext(ctx))
			if err != nil {
				return err
			}
			dists[i] = dist
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return dists, nil
}
