package builder_test

import (
	"testing"

	"github.com/graphina/graphina/builder"
)

func BenchmarkErdosRenyi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.ErdosRenyi(1000, 0.01, builder.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWattsStrogatz(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.WattsStrogatz(1000, 10, 0.1, builder.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBarabasiAlbert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.BarabasiAlbert(1000, 4, builder.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
