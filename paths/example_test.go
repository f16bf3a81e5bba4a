package paths_test

import (
	"fmt"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/paths"
)

// ExampleDijkstra computes distances over a weighted triangle.
func ExampleDijkstra() {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 10)

	dist, _, _ := paths.Dijkstra(g, a)
	fmt.Printf("a->c: %.0f\n", dist[c])
	// Output:
	// a->c: 3
}

// ExampleAStar uses a trivially admissible heuristic.
func ExampleAStar() {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 2)
	g.AddEdge(b, c, 2)

	path, cost, _ := paths.AStar(g, a, c, func(core.NodeID) float64 { return 0 })
	fmt.Println("hops:", len(path)-1, "cost:", cost)
	// Output:
	// hops: 2 cost: 4
}
