package centrality

import (
	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/paths"
	"github.com/graphina/graphina/traverse"
)

// Closeness returns closeness centrality: the reciprocal of the mean
// shortest-path distance from each node, computed over the nodes it
// can actually reach. Normalized scores carry the Wasserman-Faust
// correction r/(n-1), so nodes in small components are not rewarded
// for their short horizons.
//
// Unweighted runs use breadth-first distances; WithWeighted switches
// to Dijkstra and requires non-negative weights.
func Closeness[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	return distanceScores(g, opts, false, func(sum float64, reached, n int, normalized bool) float64 {
		if reached == 0 || sum == 0 {
			return 0
		}
		score := float64(reached) / sum
		if normalized && n > 1 {
			score *= float64(reached) / float64(n-1)
		}
		return score
	})
}

// Harmonic returns harmonic centrality: the sum of reciprocal
// distances to every reachable node. Unreachable nodes contribute 0,
// which keeps the measure finite on disconnected graphs. Normalized
// scores divide by n-1.
func Harmonic[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	return distanceScores(g, opts, true, func(invSum float64, _, n int, normalized bool) float64 {
		if normalized && n > 1 {
			return invSum / float64(n-1)
		}
		return invSum
	})
}

// distanceScores runs one single-source sweep per node and folds the
// distances through finalize. Closeness folds plain sums, Harmonic
// folds reciprocal sums; the shape of the sweep is identical.
func distanceScores[A any, W core.Numeric](g *core.Graph[A, W], opts []Option, harmonic bool, finalize func(sum float64, reached, n int, normalized bool) float64) (core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if o.Weighted {
		if err := core.RequireNonNegative(g, "closeness"); err != nil {
			return nil, err
		}
	}
	n := g.NodeCount()
	out := core.NewNodeMap[float64](n)
	for _, src := range g.NodeIDs() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		sum, reached, err := foldDistances(g, src, o, harmonic)
		if err != nil {
			return nil, err
		}
		out[src] = finalize(sum, reached, n, o.Normalized)
	}
	return out, nil
}

func foldDistances[A any, W core.Numeric](g *core.Graph[A, W], src core.NodeID, o Options, harmonic bool) (float64, int, error) {
	sum := 0.0
	reached := 0
	add := func(d float64) {
		if d <= 0 {
			return
		}
		reached++
		if harmonic {
			sum += 1 / d
		} else {
			sum += d
		}
	}
	if o.Weighted {
		dist, _, err := paths.Dijkstra(g, src, paths.WithContext(o.Ctx))
		if err != nil {
			return 0, 0, err
		}
		for v, d := range dist {
			if v != src {
				add(d)
			}
		}
		return sum, reached, nil
	}
	res, err := traverse.BFS(g, src, traverse.WithContext(o.Ctx))
	if err != nil {
		return 0, 0, err
	}
	for v, depth := range res.Depth {
		if v != src {
			add(float64(depth))
		}
	}
	return sum, reached, nil
}
