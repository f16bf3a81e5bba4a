// Package paths: Floyd-Warshall all-pairs shortest paths.
//
// Works on a compact index snapshot; the dense matrix never addresses
// stable handles directly.

package paths

import (
	"fmt"
	"math"

	"github.com/graphina/graphina/core"
)

// AllPairs holds a dense all-pairs distance matrix together with the
// index that maps handles onto its rows and columns.
type AllPairs struct {
	// Index positions the live node set onto 0..n-1.
	Index *core.Index

	// Dist[i][j] is the shortest distance from Index.ID(i) to
	// Index.ID(j); +Inf where no path exists.
	Dist [][]float64
}

// Between returns the distance from u to v, or false when either
// handle is unknown or no path exists.
func (ap *AllPairs) Between(u, v core.NodeID) (float64, bool) {
	i, okU := ap.Index.Of(u)
	j, okV := ap.Index.Of(v)
	if !okU || !okV {
		return 0, false
	}
	d := ap.Dist[i][j]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// FloydWarshall computes all-pairs shortest distances, tolerating
// negative edge weights.
// Returns ErrNilGraph for nil input and core.ErrNegativeCycle when a
// negative cycle exists (detected as a negative diagonal entry).
func FloydWarshall[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	ix := core.NewIndex(g)
	n := ix.Len()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}

	for _, e := range g.Edges() {
		i, _ := ix.Of(e.From)
		j, _ := ix.Of(e.To)
		w := float64(e.Weight)
		if w < dist[i][j] {
			dist[i][j] = w
		}
		if !g.Directed() && w < dist[j][i] {
			dist[j][i] = w
		}
	}

	for k := 0; k < n; k++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		dk := dist[k]
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			di := dist[i]
			for j := 0; j < n; j++ {
				if cand := dik + dk[j]; cand < di[j] {
					di[j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %v", core.ErrNegativeCycle, ix.ID(i))
		}
	}
	return &AllPairs{Index: ix, Dist: dist}, nil
}
