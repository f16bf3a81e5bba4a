package mst_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/mst"
)

// diamond builds a graph whose unique MST is a-b, b-c, c-d with total
// weight 6.
func diamond() *core.Graph[string, float64] {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(c, d, 3)
	g.AddEdge(a, d, 4)
	g.AddEdge(a, c, 5)
	return g
}

func edgeIDs(edges []core.Edge[float64]) []core.EdgeID {
	ids := make([]core.EdgeID, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

func TestAlgorithmsAgreeOnDiamond(t *testing.T) {
	g := diamond()
	want := edgeIDs(g.Edges()[:3])

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim, mst.MethodBoruvka} {
		tree, total, err := mst.Compute(g, method)
		require.NoError(t, err, method)
		assert.Equal(t, 6.0, total, method)
		assert.Equal(t, want, edgeIDs(tree), method)
	}
}

func TestEqualWeightsStillSpan(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, d, 1)
	g.AddEdge(d, a, 1)

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim, mst.MethodBoruvka} {
		tree, total, err := mst.Compute(g, method)
		require.NoError(t, err, method)
		assert.Equal(t, 3.0, total, method)
		assert.Len(t, tree, 3, method)
	}
}

func TestDeterministicAcrossRuns(t *testing.T) {
	first, _, err := mst.Kruskal(diamond())
	require.NoError(t, err)
	second, _, err := mst.Kruskal(diamond())
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Weight, second[i].Weight)
	}
}

func TestIntegerWeights(t *testing.T) {
	g := core.NewGraph[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 2)
	g.AddEdge(b, c, 3)
	g.AddEdge(a, c, 10)

	tree, total, err := mst.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, tree, 2)
}

func TestSelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, a, 0.1)
	g.AddEdge(a, b, 2)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, total)
	assert.Len(t, tree, 1)
}

func TestSingleNode(t *testing.T) {
	g := core.NewGraph[string, float64]()
	g.AddNode("only")

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim, mst.MethodBoruvka} {
		tree, total, err := mst.Compute(g, method)
		require.NoError(t, err, method)
		assert.Empty(t, tree, method)
		assert.Equal(t, 0.0, total, method)
	}
}

func TestDirectedRejected(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 1)

	_, _, err := mst.Kruskal(g)
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestEmptyRejected(t *testing.T) {
	g := core.NewGraph[string, float64]()
	_, _, err := mst.Prim(g)
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestDisconnected(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddNode("island")
	g.AddEdge(a, b, 1)

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim, mst.MethodBoruvka} {
		_, _, err := mst.Compute(g, method)
		require.ErrorIs(t, err, core.ErrUnfeasible, method)
	}
}

func TestPrimRoot(t *testing.T) {
	g := diamond()
	ids := g.NodeIDs()

	tree, total, err := mst.Prim(g, mst.WithRoot(ids[3]))
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)
	assert.Len(t, tree, 3)
}

func TestPrimUnknownRoot(t *testing.T) {
	g := diamond()
	extra := g.AddNode("extra")
	g.RemoveNode(extra)

	_, _, err := mst.Prim(g, mst.WithRoot(extra))
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestComputeUnknownMethod(t *testing.T) {
	_, _, err := mst.Compute(diamond(), "reverse-delete")
	require.ErrorIs(t, err, mst.ErrUnknownMethod)
}

func TestNilGraph(t *testing.T) {
	_, _, err := mst.Kruskal[string, float64](nil)
	require.ErrorIs(t, err, mst.ErrNilGraph)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { mst.WithContext(nil) })
}
