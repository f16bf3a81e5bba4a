package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/graphina/graphina/core"
)

// Eigenvector returns eigenvector centrality by power iteration: each
// sweep replaces a node's score with the weighted sum of the scores
// pointing at it, then renormalizes to unit L2 length. Parallel edges
// accumulate into one coefficient.
//
// Running out of MaxIter returns a core.ConvergenceError.
func Eigenvector[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	ix := core.NewIndex(g)
	n := ix.Len()
	out := core.NewNodeMap[float64](n)
	if n == 0 {
		return out, nil
	}

	in := inArcs(g, ix, o.Weighted)
	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}

	for it := 1; it <= o.MaxIter; it++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		for i := 0; i < n; i++ {
			next[i] = 0
			for _, a := range in[i] {
				next[i] += a.w * x[a.to]
			}
		}
		norm := floats.Norm(next, 2)
		if norm == 0 {
			// Nothing feeds anything: the fixed point is all zeros.
			for i := range x {
				x[i] = 0
			}
			break
		}
		floats.Scale(1/norm, next)
		diff := 0.0
		for i := 0; i < n; i++ {
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		o.Logger.Debug().Int("iteration", it).Float64("delta", diff).Msg("eigenvector sweep")
		if diff < o.Tol {
			break
		}
		if it == o.MaxIter {
			return nil, core.NewConvergenceError(o.MaxIter, "eigenvector delta above %g", o.Tol)
		}
	}
	for i, v := range x {
		out[ix.ID(i)] = v
	}
	return out, nil
}

// inArcs builds the incoming adjacency on compact indices; the link.to
// field holds the arc's source. Parallel edges stay separate entries
// and collapse by summation in the sweep.
func inArcs[A any, W core.Numeric](g *core.Graph[A, W], ix *core.Index, weighted bool) [][]link {
	in := make([][]link, ix.Len())
	for _, e := range g.Edges() {
		i, _ := ix.Of(e.From)
		j, _ := ix.Of(e.To)
		w := 1.0
		if weighted {
			w = float64(e.Weight)
		}
		in[j] = append(in[j], link{to: i, w: w})
		if !g.Directed() && i != j {
			in[i] = append(in[i], link{to: j, w: w})
		}
	}
	return in
}
