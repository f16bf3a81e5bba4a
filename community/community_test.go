package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphina/graphina/community"
	"github.com/graphina/graphina/core"
)

// twoTriangles builds a pair of triangles, optionally joined by one
// bridge edge between their first corners.
func twoTriangles(bridge bool) (*core.Graph[string, float64], [6]core.NodeID) {
	g := core.NewGraph[string, float64]()
	var ids [6]core.NodeID
	names := []string{"a", "b", "c", "x", "y", "z"}
	for i, name := range names {
		ids[i] = g.AddNode(name)
	}
	g.AddEdge(ids[0], ids[1], 1)
	g.AddEdge(ids[1], ids[2], 1)
	g.AddEdge(ids[2], ids[0], 1)
	g.AddEdge(ids[3], ids[4], 1)
	g.AddEdge(ids[4], ids[5], 1)
	g.AddEdge(ids[5], ids[3], 1)
	if bridge {
		g.AddEdge(ids[0], ids[3], 1)
	}
	return g, ids
}

func TestLouvainAfterNodeRemoval(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	for _, pair := range [][2]core.NodeID{{a, b}, {a, c}, {a, d}, {b, c}, {b, d}, {c, d}} {
		g.AddEdge(pair[0], pair[1], 1)
	}
	g.RemoveNode(b)

	p, err := community.Louvain(g, community.WithSeed(42))
	require.NoError(t, err)
	groups := p.Communities()
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []core.NodeID{a, c, d}, groups[0])
}

func TestLouvainSeparatesTriangles(t *testing.T) {
	g, ids := twoTriangles(true)
	p, err := community.Louvain(g, community.WithSeed(7))
	require.NoError(t, err)

	m := p.Membership
	assert.Equal(t, m[ids[0]], m[ids[1]])
	assert.Equal(t, m[ids[1]], m[ids[2]])
	assert.Equal(t, m[ids[3]], m[ids[4]])
	assert.Equal(t, m[ids[4]], m[ids[5]])
	assert.NotEqual(t, m[ids[0]], m[ids[3]])
}

func TestLouvainDeterministicForEqualSeeds(t *testing.T) {
	g, _ := twoTriangles(true)
	p1, err := community.Louvain(g, community.WithSeed(3))
	require.NoError(t, err)
	p2, err := community.Louvain(g, community.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, p1.Membership, p2.Membership)
}

func TestLouvainDegenerateInputs(t *testing.T) {
	empty := core.NewGraph[int, float64]()
	p, err := community.Louvain(empty)
	require.NoError(t, err)
	assert.Empty(t, p.Membership)

	single := core.NewGraph[int, float64]()
	only := single.AddNode(0)
	p, err = community.Louvain(single)
	require.NoError(t, err)
	assert.Equal(t, core.NodeMap[int]{only: 0}, p.Membership)

	edgeless := core.NewGraph[int, float64]()
	x := edgeless.AddNode(0)
	y := edgeless.AddNode(1)
	p, err = community.Louvain(edgeless)
	require.NoError(t, err)
	assert.NotEqual(t, p.Membership[x], p.Membership[y], "no edges means singleton communities")
}

func TestLouvainAtLeastComponentCount(t *testing.T) {
	g, _ := twoTriangles(false)
	p, err := community.Louvain(g, community.WithSeed(1))
	require.NoError(t, err)
	_, count, err := community.ConnectedComponents(g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(p.Communities()), count)
}

func TestLabelPropagationTwoComponents(t *testing.T) {
	g, ids := twoTriangles(false)
	labels, err := community.LabelPropagation(g, community.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, labels[ids[0]], labels[ids[1]])
	assert.Equal(t, labels[ids[1]], labels[ids[2]])
	assert.Equal(t, labels[ids[3]], labels[ids[4]])
	assert.Equal(t, labels[ids[4]], labels[ids[5]])
	assert.NotEqual(t, labels[ids[0]], labels[ids[3]], "components never share labels")
}

func TestLabelPropagationEmptyGraph(t *testing.T) {
	g := core.NewGraph[int, float64]()
	labels, err := community.LabelPropagation(g)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestConnectedComponentsDirectionIgnored(t *testing.T) {
	g := core.NewGraph[string, int](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	lone := g.AddNode("lone")
	g.AddEdge(a, b, 1)
	g.AddEdge(c, b, 1) // reaches b only against the arrow

	labels, count, err := community.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, labels[a], labels[b])
	assert.Equal(t, labels[b], labels[c])
	assert.NotEqual(t, labels[a], labels[lone])
}

func TestConnectedComponentsAfterRemoval(t *testing.T) {
	g := core.NewGraph[int, float64]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.RemoveNode(b)

	labels, count, err := community.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, labels, 2)
	assert.NotEqual(t, labels[a], labels[c])
}

func TestGirvanNewmanCutsBridge(t *testing.T) {
	g, ids := twoTriangles(true)
	groups, err := community.GirvanNewman(g, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	find := func(id core.NodeID) int {
		for gi, grp := range groups {
			for _, v := range grp {
				if v == id {
					return gi
				}
			}
		}
		return -1
	}
	assert.Equal(t, find(ids[0]), find(ids[1]))
	assert.Equal(t, find(ids[0]), find(ids[2]))
	assert.Equal(t, find(ids[3]), find(ids[4]))
	assert.Equal(t, find(ids[3]), find(ids[5]))
	assert.NotEqual(t, find(ids[0]), find(ids[3]))
}

func TestGirvanNewmanArgumentChecks(t *testing.T) {
	g, _ := twoTriangles(false)
	_, err := community.GirvanNewman(g, 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = community.GirvanNewman(g, 100)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	groups, err := community.GirvanNewman(g, 1)
	require.NoError(t, err)
	assert.Len(t, groups, 2, "already past the target, nothing removed")
}

func TestGirvanNewmanLeavesInputIntact(t *testing.T) {
	g, _ := twoTriangles(true)
	before := g.EdgeCount()
	_, err := community.GirvanNewman(g, 2)
	require.NoError(t, err)
	assert.Equal(t, before, g.EdgeCount())
}

func TestModularityTwoTriangles(t *testing.T) {
	g, _ := twoTriangles(false)
	labels, _, err := community.ConnectedComponents(g)
	require.NoError(t, err)
	q, err := community.Modularity(g, labels)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, q, 1e-12)
}

func TestModularityMissingLabel(t *testing.T) {
	g := core.NewGraph[int, float64]()
	g.AddNode(0)
	_, err := community.Modularity(g, core.NodeMap[int]{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestModularityEdgeless(t *testing.T) {
	g := core.NewGraph[int, float64]()
	a := g.AddNode(0)
	q, err := community.Modularity(g, core.NodeMap[int]{a: 0})
	require.NoError(t, err)
	assert.Zero(t, q)
}

func TestNilGraphRejected(t *testing.T) {
	var g *core.Graph[int, float64]
	_, err := community.Louvain(g)
	assert.ErrorIs(t, err, community.ErrNilGraph)
	_, err = community.LabelPropagation(g)
	assert.ErrorIs(t, err, community.ErrNilGraph)
	_, _, err = community.ConnectedComponents(g)
	assert.ErrorIs(t, err, community.ErrNilGraph)
	_, err = community.GirvanNewman(g, 2)
	assert.ErrorIs(t, err, community.ErrNilGraph)
}
