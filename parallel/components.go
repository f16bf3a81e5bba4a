package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/graphina/graphina/core"
)

// ConnectedComponents labels every node with its component, ignoring
// edge direction. Labels run 0..count-1 in insertion order of each
// component's first node, matching the sequential community labeling.
//
// Workers union disjoint edge chunks into private forests; the
// forests are then folded into one, so no worker ever shares mutable
// state with another.
func ConnectedComponents[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[int], int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	o := buildOptions(opts)

	ix := core.NewIndex(g)
	n := ix.Len()
	edges := g.Edges()

	ranges := chunks(len(edges), o.Workers)
	forests := make([]*forest, len(ranges))
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)
	for ci, c := range ranges {
		ci, c := ci, c
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			f := newForest(n)
			for _, e := range edges[c[0]:c[1]] {
				i, _ := ix.Of(e.From)
				j, _ := ix.Of(e.To)
				f.union(i, j)
			}
			forests[ci] = f
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, 0, err
	}

	global := newForest(n)
	for _, f := range forests {
		for i := 0; i < n; i++ {
			global.union(i, f.find(i))
		}
	}

	labels := core.NewNodeMap[int](n)
	byRoot := make(map[int]int, n)
	count := 0
	for i := 0; i < n; i++ {
		root := global.find(i)
		label, ok := byRoot[root]
		if !ok {
			label = count
			byRoot[root] = label
			count++
		}
		labels[ix.ID(i)] = label
	}
	return labels, count, nil
}

// forest is a union-find over 0..n-1 with rank union and path halving.
type forest struct {
	parent []int
	rank   []int
}

func newForest(n int) *forest {
	f := &forest{parent: make([]int, n), rank: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f
}

func (f *forest) find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}
	return x
}

func (f *forest) union(a, b int) {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return
	}
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
}
