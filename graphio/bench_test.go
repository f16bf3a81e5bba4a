package graphio_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/graphio"
)

func benchEdgeListText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%d,%d,%d.5\n", i, (i+1)%n, i%9)
	}
	return sb.String()
}

func BenchmarkReadEdgeList(b *testing.B) {
	text := benchEdgeListText(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := graphio.ReadEdgeList(strings.NewReader(text)); err != nil {
			b.Fatal(err)
		}
	}
}

func benchGraph(b *testing.B, n int) *core.Graph[int64, float64] {
	b.Helper()
	g, err := graphio.ReadEdgeList(strings.NewReader(benchEdgeListText(n)))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkWriteJSON(b *testing.B) {
	g := benchGraph(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := graphio.WriteJSON(&buf, g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBinaryRoundTrip(b *testing.B) {
	g := benchGraph(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := graphio.WriteBinary(&buf, g); err != nil {
			b.Fatal(err)
		}
		if _, err := graphio.ReadBinary[int64, float64](&buf); err != nil {
			b.Fatal(err)
		}
	}
}
