// Local and global clustering measures. Neighbor pairs are probed
// through the store's adjacency index, so each node costs O(d^2).

package metrics

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// ClusteringCoefficient returns the fraction of a node's neighbor
// pairs that are themselves adjacent. Nodes with fewer than two
// neighbors score 0.
func ClusteringCoefficient[A any, W core.Numeric](g *core.Graph[A, W], id core.NodeID) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasNode(id) {
		return 0, fmt.Errorf("metrics: %v: %w", id, core.ErrNodeNotFound)
	}
	closed, possible := neighborLinks(g, id)
	if possible == 0 {
		return 0, nil
	}
	return float64(closed) / float64(possible), nil
}

// AverageClustering returns the mean local clustering coefficient
// over all nodes. An empty graph averages to 0.
func AverageClustering[A any, W core.Numeric](g *core.Graph[A, W]) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, id := range ids {
		closed, possible := neighborLinks(g, id)
		if possible > 0 {
			sum += float64(closed) / float64(possible)
		}
	}
	return sum / float64(len(ids)), nil
}

// Transitivity returns the global clustering coefficient: the ratio
// of closed neighbor pairs to connected triples over the whole graph.
// A graph without triples scores 0.
func Transitivity[A any, W core.Numeric](g *core.Graph[A, W]) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	closedTotal, triples := 0, 0
	for _, id := range g.NodeIDs() {
		closed, possible := neighborLinks(g, id)
		closedTotal += closed
		triples += possible
	}
	if triples == 0 {
		return 0, nil
	}
	return float64(closedTotal) / float64(triples), nil
}

// Triangles counts the triangles through a node.
func Triangles[A any, W core.Numeric](g *core.Graph[A, W], id core.NodeID) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasNode(id) {
		return 0, fmt.Errorf("metrics: %v: %w", id, core.ErrNodeNotFound)
	}
	closed, _ := neighborLinks(g, id)
	return closed, nil
}

// neighborLinks counts the adjacent pairs among id's neighbors and the
// number of pairs overall. Self-loops are not neighbors of themselves
// and drop out of the pair set.
func neighborLinks[A any, W core.Numeric](g *core.Graph[A, W], id core.NodeID) (closed, possible int) {
	nbrs := neighborSet(g, id)
	k := len(nbrs)
	if k < 2 {
		return 0, 0
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdgeBetween(nbrs[i], nbrs[j]) {
				closed++
			}
		}
	}
	return closed, k * (k - 1) / 2
}

// neighborSet returns the distinct neighbors of id, excluding id
// itself, ordered by handle.
func neighborSet[A any, W core.Numeric](g *core.Graph[A, W], id core.NodeID) []core.NodeID {
	raw := g.Neighbors(id)
	out := raw[:0]
	for _, n := range raw {
		if n != id {
			out = append(out, n)
		}
	}
	return out
}
