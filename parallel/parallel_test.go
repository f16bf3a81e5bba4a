package parallel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphina/graphina/builder"
	"github.com/graphina/graphina/centrality"
	"github.com/graphina/graphina/community"
	"github.com/graphina/graphina/core"
	"github.com/graphina/graphina/metrics"
	"github.com/graphina/graphina/parallel"
	"github.com/graphina/graphina/traverse"
)

func smallWorld(t testing.TB) *core.Graph[uint32, float64] {
	t.Helper()
	g, err := builder.WattsStrogatz(60, 4, 0.2, builder.WithSeed(3))
	require.NoError(t, err)
	return g
}

func TestMultiBFSMatchesSequential(t *testing.T) {
	g := smallWorld(t)
	sources := g.NodeIDs()[:5]

	results, err := parallel.MultiBFS(g, sources, parallel.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	for i, src := range sources {
		want, err := traverse.BFS(g, src)
		require.NoError(t, err)
		assert.Equal(t, want.Order, results[i].Order)
		assert.Equal(t, want.Depth, results[i].Depth)
	}
}

func TestMultiBFSErrors(t *testing.T) {
	g := smallWorld(t)

	_, err := parallel.MultiBFS[uint32, float64](nil, g.NodeIDs()[:1])
	require.ErrorIs(t, err, parallel.ErrNilGraph)

	_, err = parallel.MultiBFS(g, nil)
	require.ErrorIs(t, err, parallel.ErrNoSources)

	_, err = parallel.MultiBFS(g, []core.NodeID{{}})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestShortestPaths(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(c, d, 0.5)

	dists, err := parallel.ShortestPaths(g, []core.NodeID{a, d})
	require.NoError(t, err)
	require.Len(t, dists, 2)
	assert.Equal(t, 3.5, dists[0][d])
	assert.Equal(t, 3.5, dists[1][a])
	assert.Equal(t, 0.0, dists[0][a])
}

func TestShortestPathsNegativeWeight(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, -1)

	_, err := parallel.ShortestPaths(g, []core.NodeID{a})
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestShortestPathsUnreachable(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	lone := g.AddNode("island")

	dists, err := parallel.ShortestPaths(g, []core.NodeID{a})
	require.NoError(t, err)
	_, reached := dists[0][lone]
	assert.False(t, reached)
}

func TestDegreesMatchesSequential(t *testing.T) {
	g := smallWorld(t)

	degs, err := parallel.Degrees(g, parallel.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, degs, g.NodeCount())
	for _, id := range g.NodeIDs() {
		assert.Equal(t, g.Degree(id), degs[id])
	}
}

func TestClusteringCoefficientsMatchesSequential(t *testing.T) {
	g := smallWorld(t)

	ccs, err := parallel.ClusteringCoefficients(g, parallel.WithWorkers(5))
	require.NoError(t, err)
	for _, id := range g.NodeIDs() {
		want, err := metrics.ClusteringCoefficient(g, id)
		require.NoError(t, err)
		assert.Equal(t, want, ccs[id])
	}
}

func TestTrianglesMatchesSequential(t *testing.T) {
	g := smallWorld(t)

	tris, err := parallel.Triangles(g)
	require.NoError(t, err)
	for _, id := range g.NodeIDs() {
		want, err := metrics.Triangles(g, id)
		require.NoError(t, err)
		assert.Equal(t, want, tris[id])
	}
}

func TestPageRankMatchesSequential(t *testing.T) {
	g := smallWorld(t)

	got, err := parallel.PageRank(g, parallel.WithWorkers(4))
	require.NoError(t, err)
	want, err := centrality.PageRank(g)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	sum := 0.0
	for id, w := range want {
		assert.InDelta(t, w, got[id], 1e-9)
		sum += got[id]
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPageRankWorkerInvariance(t *testing.T) {
	g := smallWorld(t)

	one, err := parallel.PageRank(g, parallel.WithWorkers(1))
	require.NoError(t, err)
	many, err := parallel.PageRank(g, parallel.WithWorkers(8))
	require.NoError(t, err)

	for id, v := range one {
		assert.InDelta(t, v, many[id], 1e-12)
	}
}

func TestPageRankDangling(t *testing.T) {
	g := core.NewGraph[string, float64](core.WithDirected())
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 1)

	ranks, err := parallel.PageRank(g)
	require.NoError(t, err)
	assert.Greater(t, ranks[b], ranks[a])
	assert.InDelta(t, 1.0, ranks[a]+ranks[b], 1e-9)
}

func TestPageRankConvergenceError(t *testing.T) {
	g := smallWorld(t)

	_, err := parallel.PageRank(g, parallel.WithMaxIterations(1), parallel.WithTolerance(1e-15))
	var ce *core.ConvergenceError
	require.ErrorAs(t, err, &ce)
}

func TestConnectedComponentsMatchesSequential(t *testing.T) {
	g := core.NewGraph[string, float64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddNode("island")
	g.AddEdge(a, b, 1)
	g.AddEdge(c, d, 1)

	got, gotCount, err := parallel.ConnectedComponents(g, parallel.WithWorkers(4))
	require.NoError(t, err)
	want, wantCount, err := community.ConnectedComponents(g)
	require.NoError(t, err)

	assert.Equal(t, wantCount, gotCount)
	assert.Equal(t, want, got)
}

func TestConnectedComponentsWorkerInvariance(t *testing.T) {
	g := smallWorld(t)

	one, n1, err := parallel.ConnectedComponents(g, parallel.WithWorkers(1))
	require.NoError(t, err)
	many, n2, err := parallel.ConnectedComponents(g, parallel.WithWorkers(7))
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, one, many)
}

func TestCancellation(t *testing.T) {
	g := smallWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parallel.MultiBFS(g, g.NodeIDs()[:2], parallel.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = parallel.ShortestPaths(g, g.NodeIDs()[:2], parallel.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = parallel.Degrees(g, parallel.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = parallel.PageRank(g, parallel.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, _, err = parallel.ConnectedComponents(g, parallel.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNilGraphRejected(t *testing.T) {
	_, err := parallel.Degrees[uint32, float64](nil)
	require.ErrorIs(t, err, parallel.ErrNilGraph)

	_, err = parallel.PageRank[uint32, float64](nil)
	require.ErrorIs(t, err, parallel.ErrNilGraph)

	_, _, err = parallel.ConnectedComponents[uint32, float64](nil)
	require.ErrorIs(t, err, parallel.ErrNilGraph)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { parallel.WithWorkers(0) })
	assert.Panics(t, func() { parallel.WithContext(nil) })
	assert.Panics(t, func() { parallel.WithDamping(1) })
	assert.Panics(t, func() { parallel.WithTolerance(0) })
	assert.Panics(t, func() { parallel.WithMaxIterations(0) })
}
