package core_test

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// ExampleGraph_AddEdge builds a small undirected triangle and inspects
// it.
func ExampleGraph_AddEdge() {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 1.0)
	g.AddEdge(b, c, 2.0)
	g.AddEdge(c, a, 3.0)

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("deg(a):", g.Degree(a))
	// Output:
	// nodes: 3
	// edges: 3
	// deg(a): 2
}

// ExampleNewIndex shows the compact mapping used by dense kernels.
func ExampleNewIndex() {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddNode("c")
	g.RemoveNode(b)

	ix := core.NewIndex(g)
	pos, _ := ix.Of(a)
	fmt.Println("len:", ix.Len())
	fmt.Println("pos(a):", pos)
	// Output:
	// len: 2
	// pos(a): 0
}
