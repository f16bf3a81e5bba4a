package builder_test

import (
	"fmt"

	"github.com/graphina/graphina/builder"
)

// Generate the complete graph on four nodes.
func ExampleComplete() {
	g, _ := builder.Complete(4)
	fmt.Printf("nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
	// Output:
	// nodes=4 edges=6
}

// Equal seeds reproduce the same random graph.
func ExampleErdosRenyi() {
	a, _ := builder.ErdosRenyi(12, 0.4, builder.WithSeed(42))
	b, _ := builder.ErdosRenyi(12, 0.4, builder.WithSeed(42))
	fmt.Println(a.EdgeCount() == b.EdgeCount())
	// Output:
	// true
}

// Assemble a small graph by hand with the fluent builder.
func ExampleGraphBuilder() {
	g, err := builder.NewGraphBuilder().
		AddNodes(3).
		AddEdge(0, 1, 1.0).
		AddEdge(1, 2, 0.5).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	fmt.Printf("nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
	// Output:
	// nodes=3 edges=2
}
