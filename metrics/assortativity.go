// Degree assortativity: Pearson correlation of endpoint degrees over
// the edge list.

package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/graphina/graphina/core"
)

// DegreeAssortativity returns the Pearson correlation between the
// degrees of edge endpoints, in [-1, 1]. Graphs with no edges or with
// degree-constant endpoints (zero variance on either side) score 0.
func DegreeAssortativity[A any, W core.Numeric](g *core.Graph[A, W]) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, nil
	}
	xs := make([]float64, len(edges))
	ys := make([]float64, len(edges))
	for i, e := range edges {
		xs[i] = float64(g.Degree(e.From))
		ys[i] = float64(g.Degree(e.To))
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, nil
	}
	return r, nil
}
