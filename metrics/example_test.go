package metrics_test

import (
	"fmt"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/metrics"
)

// Measure a five-node path.
func ExampleDiameter() {
	g := core.NewGraph[string, float64]()
	prev := g.AddNode("v0")
	for i := 1; i < 5; i++ {
		next := g.AddNode(fmt.Sprintf("v%d", i))
		g.AddEdge(prev, next, 1)
		prev = next
	}

	diam, _ := metrics.Diameter(g)
	rad, _ := metrics.Radius(g)
	fmt.Printf("diameter=%d radius=%d\n", diam, rad)
	// Output:
	// diameter=4 radius=2
}

// A triangle is perfectly clustered.
func ExampleTransitivity() {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, a, 1)

	tr, _ := metrics.Transitivity(g)
	fmt.Printf("transitivity=%.1f\n", tr)
	// Output:
	// transitivity=1.0
}
