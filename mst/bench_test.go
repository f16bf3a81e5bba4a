package mst_test

import (
	"math/rand"
	"testing"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/mst"
)

// benchMesh builds a connected random-weight graph: a ring for
// connectivity plus chords.
func benchMesh(b *testing.B, n int) *core.Graph[uint32, float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	g := core.NewGraph[uint32, float64]()
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(uint32(i))
	}
	for i := 0; i < n; i++ {
		g.AddEdge(ids[i], ids[(i+1)%n], rng.Float64())
		g.AddEdge(ids[i], ids[(i+17)%n], rng.Float64())
	}
	return g
}

func BenchmarkKruskal(b *testing.B) {
	g := benchMesh(b, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrim(b *testing.B) {
	g := benchMesh(b, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Prim(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBoruvka(b *testing.B) {
	g := benchMesh(b, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Boruvka(g); err != nil {
			b.Fatal(err)
		}
	}
}
