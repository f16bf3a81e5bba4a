package paths_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/paths"
)

// diamond builds a weighted directed diamond:
//
//	a -1-> b -1-> d
//	a -4-> c -1-> d
func diamond() (*core.Graph[string, float64], map[string]core.NodeID) {
	g := core.NewGraph[string, float64](core.WithDirected())
	ids := map[string]core.NodeID{
		"a": g.AddNode("a"),
		"b": g.AddNode("b"),
		"c": g.AddNode("c"),
		"d": g.AddNode("d"),
	}
	g.AddEdge(ids["a"], ids["b"], 1)
	g.AddEdge(ids["a"], ids["c"], 4)
	g.AddEdge(ids["b"], ids["d"], 1)
	g.AddEdge(ids["c"], ids["d"], 1)
	return g, ids
}

func TestDijkstraDistances(t *testing.T) {
	g, ids := diamond()
	dist, prev, err := paths.Dijkstra(g, ids["a"], paths.WithPredecessors())
	require.NoError(t, err)

	assert.InDelta(t, 0, dist[ids["a"]], 1e-12)
	assert.InDelta(t, 1, dist[ids["b"]], 1e-12)
	assert.InDelta(t, 4, dist[ids["c"]], 1e-12)
	assert.InDelta(t, 2, dist[ids["d"]], 1e-12)

	assert.Equal(t, []core.NodeID{ids["a"], ids["b"], ids["d"]},
		paths.PathTo(prev, ids["a"], ids["d"]))
}

func TestDijkstraIsolatedNodeAbsent(t *testing.T) {
	g, ids := diamond()
	lone := g.AddNode("lone")
	dist, _, err := paths.Dijkstra(g, ids["a"])
	require.NoError(t, err)
	_, reached := dist[lone]
	assert.False(t, reached, "unreachable nodes are absent, not zero")
	assert.Len(t, dist, 4)
}

func TestDijkstraRejectsNegativeWeights(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, -2)
	_, _, err := paths.Dijkstra(g, a)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestDijkstraMaxDistance(t *testing.T) {
	g, ids := diamond()
	dist, _, err := paths.Dijkstra(g, ids["a"], paths.WithMaxDistance(1.5))
	require.NoError(t, err)
	_, hasD := dist[ids["d"]]
	assert.False(t, hasD)
	assert.InDelta(t, 1, dist[ids["b"]], 1e-12)
}

func TestDijkstraUndirectedParallelEdges(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 5)
	g.AddEdge(a, b, 2) // cheaper parallel edge wins

	dist, _, err := paths.Dijkstra(g, a)
	require.NoError(t, err)
	assert.InDelta(t, 2, dist[b], 1e-12)
	// symmetric in the other direction
	dist, _, err = paths.Dijkstra(g, b)
	require.NoError(t, err)
	assert.InDelta(t, 2, dist[a], 1e-12)
}

func TestBellmanFordNegativeEdges(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 4)
	g.AddEdge(a, c, 2)
	g.AddEdge(c, b, -3)

	dist, prev, err := paths.BellmanFord(g, a, paths.WithPredecessors())
	require.NoError(t, err)
	assert.InDelta(t, -1, dist[b], 1e-12)
	assert.Equal(t, []core.NodeID{a, c, b}, paths.PathTo(prev, a, b))
}

func TestBellmanFordNegativeCycle(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, a, -2)
	_, _, err := paths.BellmanFord(g, a)
	assert.ErrorIs(t, err, core.ErrNegativeCycle)
}

func TestBellmanFordUndirectedNegativeEdgeIsACycle(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, -1)
	_, _, err := paths.BellmanFord(g, a)
	assert.ErrorIs(t, err, core.ErrNegativeCycle)
}

func TestAStarMatchesDijkstraWithZeroHeuristic(t *testing.T) {
	g, ids := diamond()
	path, cost, err := paths.AStar(g, ids["a"], ids["d"], func(core.NodeID) float64 { return 0 })
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids["a"], ids["b"], ids["d"]}, path)
	assert.InDelta(t, 2, cost, 1e-12)
}

func TestAStarNoPath(t *testing.T) {
	g, ids := diamond()
	lone := g.AddNode("lone")
	_, _, err := paths.AStar(g, ids["a"], lone, func(core.NodeID) float64 { return 0 })
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestAStarNilHeuristic(t *testing.T) {
	g, ids := diamond()
	_, _, err := paths.AStar(g, ids["a"], ids["d"], nil)
	assert.ErrorIs(t, err, paths.ErrNilHeuristic)
}

func TestFloydWarshallSmall(t *testing.T) {
	g, ids := diamond()
	ap, err := paths.FloydWarshall(g)
	require.NoError(t, err)

	d, ok := ap.Between(ids["a"], ids["d"])
	require.True(t, ok)
	assert.InDelta(t, 2, d, 1e-12)

	_, ok = ap.Between(ids["d"], ids["a"])
	assert.False(t, ok, "no backward route in the directed diamond")

	i, _ := ap.Index.Of(ids["a"])
	assert.InDelta(t, 0, ap.Dist[i][i], 1e-12)
	j, _ := ap.Index.Of(ids["d"])
	assert.True(t, math.IsInf(ap.Dist[j][i], 1))
}

func TestFloydWarshallNegativeCycle(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, a, -3)
	_, err := paths.FloydWarshall(g)
	assert.ErrorIs(t, err, core.ErrNegativeCycle)
}

func TestJohnsonMatchesFloydWarshall(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddEdge(a, b, 3)
	g.AddEdge(a, c, 8)
	g.AddEdge(b, c, -2)
	g.AddEdge(c, d, 1)
	g.AddEdge(b, d, 7)

	all, err := paths.Johnson(g)
	require.NoError(t, err)
	ap, err := paths.FloydWarshall(g)
	require.NoError(t, err)

	for _, u := range g.NodeIDs() {
		for _, v := range g.NodeIDs() {
			want, reachable := ap.Between(u, v)
			got, ok := all[u][v]
			if reachable || u == v {
				require.True(t, ok, "johnson missing %v->%v", u, v)
				if u == v {
					want = 0
				}
				assert.InDelta(t, want, got, 1e-9, "%v->%v", u, v)
			} else {
				assert.False(t, ok, "johnson has phantom %v->%v", u, v)
			}
		}
	}
}

func TestJohnsonNegativeCycle(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, -1)
	g.AddEdge(b, a, -1)
	_, err := paths.Johnson(g)
	assert.ErrorIs(t, err, core.ErrNegativeCycle)
}

func TestPathToUnreached(t *testing.T) {
	prev := core.NodeMap[core.NodeID]{}
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	assert.Nil(t, paths.PathTo(prev, a, b))
	assert.Equal(t, []core.NodeID{a}, paths.PathTo(prev, a, a))
}
