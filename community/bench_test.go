package community_test

import (
	"testing"

	"github.com/graphina/graphina/community"
	"github.com/graphina/graphina/core"
)

// benchClusters builds k cliques of size s chained by single bridges.
func benchClusters(k, s int) *core.Graph[int, float64] {
	g := core.NewGraph[int, float64]()
	var first, prev core.NodeID
	for c := 0; c < k; c++ {
		ids := make([]core.NodeID, s)
		for i := range ids {
			ids[i] = g.AddNode(c*s + i)
		}
		for i := 0; i < s; i++ {
			for j := i + 1; j < s; j++ {
				g.AddEdge(ids[i], ids[j], 1)
			}
		}
		first = ids[0]
		if c > 0 {
			g.AddEdge(prev, first, 1)
		}
		prev = first
	}
	return g
}

func BenchmarkLouvain(b *testing.B) {
	g := benchClusters(32, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Louvain(g, community.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLabelPropagation(b *testing.B) {
	g := benchClusters(32, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.LabelPropagation(g, community.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
