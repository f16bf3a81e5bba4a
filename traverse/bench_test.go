package traverse_test

import (
	"testing"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/traverse"
)

func benchRing(n int) (*core.Graph[int, int], []core.NodeID) {
	g := core.NewGraph[int, int]()
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(ids[i], ids[(i+1)%n], 1)
		g.AddEdge(ids[i], ids[(i+5)%n], 1)
	}
	return g, ids
}

func BenchmarkBFS(b *testing.B) {
	g, ids := benchRing(2048)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.BFS(g, ids[0]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS(b *testing.B) {
	g, ids := benchRing(2048)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.DFS(g, ids[0]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBidirectional(b *testing.B) {
	g, ids := benchRing(2048)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Bidirectional(g, ids[0], ids[1024]); err != nil {
			b.Fatal(err)
		}
	}
}
