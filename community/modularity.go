package community

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// Modularity scores a partition: the fraction of weight falling inside
// communities minus the fraction expected under a random rewiring with
// the same degrees. Directed edges are treated as undirected. Every
// node must carry a label; an edgeless graph scores 0.
func Modularity[A any, W core.Numeric](g *core.Graph[A, W], membership core.NodeMap[int]) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	for _, id := range g.NodeIDs() {
		if _, ok := membership[id]; !ok {
			return 0, fmt.Errorf("%w: node %v has no community label", core.ErrInvalidArgument, id)
		}
	}

	m2 := 0.0
	in := map[int]float64{}
	tot := map[int]float64{}
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		cu := membership[e.From]
		cv := membership[e.To]
		if e.From == e.To {
			m2 += 2 * w
			tot[cu] += 2 * w
			in[cu] += 2 * w
			continue
		}
		m2 += 2 * w
		tot[cu] += w
		tot[cv] += w
		if cu == cv {
			in[cu] += 2 * w
		}
	}
	if m2 == 0 {
		return 0, nil
	}

	q := 0.0
	for c, t := range tot {
		q += in[c]/m2 - (t/m2)*(t/m2)
	}
	return q, nil
}
