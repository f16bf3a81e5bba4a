package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/graphina/graphina/core"
)

// Katz returns Katz centrality: the fixed point of
// x = Alpha·Aᵀx + Beta, where walks of length k contribute Alpha^k.
// Alpha must stay below the reciprocal of the largest eigenvalue for
// the series to converge; the iteration reports a
// core.ConvergenceError when it does not settle within MaxIter.
//
// Normalized results are scaled to unit L2 length.
func Katz[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
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

	for it := 1; it <= o.MaxIter; it++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, a := range in[i] {
				sum += a.w * x[a.to]
			}
			next[i] = o.Alpha*sum + o.Beta
		}
		diff := 0.0
		for i := 0; i < n; i++ {
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		o.Logger.Debug().Int("iteration", it).Float64("delta", diff).Msg("katz sweep")
		if diff < float64(n)*o.Tol {
			break
		}
		if it == o.MaxIter {
			return nil, core.NewConvergenceError(o.MaxIter, "katz delta above %g", o.Tol)
		}
	}

	if o.Normalized {
		if norm := floats.Norm(x, 2); norm > 0 {
			floats.Scale(1/norm, x)
		}
	}
	for i, v := range x {
		out[ix.ID(i)] = v
	}
	return out, nil
}
