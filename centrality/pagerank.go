package centrality

import (
	"fmt"
	"math"

	"github.com/graphina/graphina/core"
)

// PageRank returns the stationary rank of a random surfer that follows
// out-edges with probability Damping and teleports uniformly
// otherwise. Dangling mass is redistributed uniformly each sweep;
// scores always sum to 1. On undirected graphs every edge is walkable
// both ways.
//
// Convergence is the L1 distance between sweeps against Tol; running
// out of MaxIter returns a core.ConvergenceError.
func PageRank[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	return pageRank(g, o, nil)
}

// PersonalizedPageRank biases teleportation onto the seed set: instead
// of restarting uniformly, the surfer restarts uniformly over seeds.
// Dangling mass flows back to the seeds as well.
// Returns core.ErrInvalidArgument for an empty seed set and
// core.ErrNodeNotFound for an unknown seed.
func PersonalizedPageRank[A any, W core.Numeric](g *core.Graph[A, W], seeds []core.NodeID, opts ...Option) (core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: empty seed set", core.ErrInvalidArgument)
	}
	o := buildOptions(opts)
	return pageRank(g, o, seeds)
}

func pageRank[A any, W core.Numeric](g *core.Graph[A, W], o Options, seeds []core.NodeID) (core.NodeMap[float64], error) {
	ix := core.NewIndex(g)
	n := ix.Len()
	out := core.NewNodeMap[float64](n)
	if n == 0 {
		return out, nil
	}

	// Teleport distribution: uniform, or uniform over seeds.
	restart := make([]float64, n)
	if seeds == nil {
		for i := range restart {
			restart[i] = 1 / float64(n)
		}
	} else {
		share := 1 / float64(len(seeds))
		for _, s := range seeds {
			i, ok := ix.Of(s)
			if !ok {
				return nil, fmt.Errorf("%w: seed %v", core.ErrNodeNotFound, s)
			}
			restart[i] += share
		}
	}

	// Out-adjacency with per-arc shares, built once.
	arcs := make([][]link, n)
	outWeight := make([]float64, n)
	for _, e := range g.Edges() {
		i, _ := ix.Of(e.From)
		j, _ := ix.Of(e.To)
		w := 1.0
		if o.Weighted {
			w = float64(e.Weight)
		}
		arcs[i] = append(arcs[i], link{to: j, w: w})
		outWeight[i] += w
		if !g.Directed() && i != j {
			arcs[j] = append(arcs[j], link{to: i, w: w})
			outWeight[j] += w
		}
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}

	for it := 1; it <= o.MaxIter; it++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		dangling := 0.0
		for i := 0; i < n; i++ {
			next[i] = 0
			if outWeight[i] == 0 {
				dangling += rank[i]
			}
		}
		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				continue
			}
			share := o.Damping * rank[i] / outWeight[i]
			for _, a := range arcs[i] {
				next[a.to] += share * a.w
			}
		}
		for i := 0; i < n; i++ {
			next[i] += (1 - o.Damping + o.Damping*dangling) * restart[i]
		}

		diff := 0.0
		for i := 0; i < n; i++ {
			diff += math.Abs(next[i] - rank[i])
		}
		rank, next = next, rank
		o.Logger.Debug().Int("iteration", it).Float64("delta", diff).Msg("pagerank sweep")
		if diff < o.Tol {
			for i, v := range rank {
				out[ix.ID(i)] = v
			}
			return out, nil
		}
	}
	return nil, core.NewConvergenceError(o.MaxIter, "pagerank delta above %g", o.Tol)
}
