package parallel_test

import (
	"testing"

	"github.com/graphina/graphina/builder"
	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/parallel"
)

func benchGraph(b *testing.B) *core.Graph[uint32, float64] {
	b.Helper()
	g, err := builder.WattsStrogatz(2000, 10, 0.1, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkMultiBFS(b *testing.B) {
	g := benchGraph(b)
	sources := g.NodeIDs()[:32]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parallel.MultiBFS(g, sources); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClusteringCoefficients(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parallel.ClusteringCoefficients(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPageRank(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parallel.PageRank(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConnectedComponents(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := parallel.ConnectedComponents(g); err != nil {
			b.Fatal(err)
		}
	}
}
