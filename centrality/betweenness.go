package centrality

import (
	"container/heap"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/graphina/graphina/core"
)

// Betweenness returns Brandes betweenness centrality: the share of
// all-pairs shortest paths passing through each node, endpoints
// excluded. On undirected graphs each unordered pair counts once.
//
// Normalized scores multiply by 1/((n-1)(n-2)) on directed graphs and
// 2/((n-1)(n-2)) on undirected ones; with n <= 2 every score is 0.
// Weighted runs require non-negative weights.
func Betweenness[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.NodeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	b, err := newBrandes(g, o)
	if err != nil {
		return nil, err
	}
	n := b.ix.Len()
	score := make([]float64, n)
	for s := 0; s < n; s++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		delta := b.dependencies(s, nil)
		for w := 0; w < n; w++ {
			if w != s {
				score[w] += delta[w]
			}
		}
	}

	if !g.Directed() {
		for i := range score {
			score[i] /= 2
		}
	}
	if o.Normalized {
		norm := 0.0
		if n > 2 {
			norm = 1 / float64((n-1)*(n-2))
			if !g.Directed() {
				norm *= 2
			}
		}
		for i := range score {
			score[i] *= norm
		}
	}

	out := core.NewNodeMap[float64](n)
	for i, v := range score {
		out[b.ix.ID(i)] = v
	}
	return out, nil
}

// EdgeBetweenness returns Brandes betweenness accumulated per edge:
// the share of all-pairs shortest paths traversing each edge. Keys are
// stable edge handles, so parallel edges are scored individually.
//
// Normalized scores multiply by 1/(n(n-1)) on directed graphs and
// 2/(n(n-1)) on undirected ones.
func EdgeBetweenness[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (core.EdgeMap[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	b, err := newBrandes(g, o)
	if err != nil {
		return nil, err
	}
	n := b.ix.Len()
	edgeScore := make(core.EdgeMap[float64], g.EdgeCount())
	for _, id := range g.EdgeIDs() {
		edgeScore[id] = 0
	}
	for s := 0; s < n; s++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		b.dependencies(s, edgeScore)
	}

	if !g.Directed() {
		for id := range edgeScore {
			edgeScore[id] /= 2
		}
	}
	if o.Normalized {
		norm := 0.0
		if n > 1 {
			norm = 1 / float64(n*(n-1))
			if !g.Directed() {
				norm *= 2
			}
		}
		for id := range edgeScore {
			edgeScore[id] *= norm
		}
	}
	return edgeScore, nil
}

// link is one compact adjacency entry carrying the edge handle so the
// edge variant can attribute flow.
type link struct {
	to  int
	w   float64
	eid core.EdgeID
}

// pred records how a node was reached on some shortest path.
type pred struct {
	from int
	eid  core.EdgeID
}

// brandes carries the per-run state shared by the node and edge
// variants: the compact snapshot, adjacency, and scratch slices reused
// across sources.
type brandes struct {
	ix       *core.Index
	adj      [][]link
	weighted bool

	dist  []float64
	sigma []float64
	preds [][]pred
	order []int
	delta []float64
}

func newBrandes[A any, W core.Numeric](g *core.Graph[A, W], o Options) (*brandes, error) {
	if o.Weighted {
		if err := core.RequireNonNegative(g, "betweenness"); err != nil {
			return nil, err
		}
	}
	ix := core.NewIndex(g)
	n := ix.Len()
	adj := make([][]link, n)
	for _, e := range g.Edges() {
		i, _ := ix.Of(e.From)
		j, _ := ix.Of(e.To)
		w := 1.0
		if o.Weighted {
			w = float64(e.Weight)
		}
		adj[i] = append(adj[i], link{to: j, w: w, eid: e.ID})
		if !g.Directed() && i != j {
			adj[j] = append(adj[j], link{to: i, w: w, eid: e.ID})
		}
	}
	return &brandes{
		ix:       ix,
		adj:      adj,
		weighted: o.Weighted,
		dist:     make([]float64, n),
		sigma:    make([]float64, n),
		preds:    make([][]pred, n),
		order:    make([]int, 0, n),
		delta:    make([]float64, n),
	}, nil
}

// dependencies runs one source of Brandes and returns the dependency
// vector. When edgeScore is non-nil, per-edge flow is accumulated into
// it during the backward sweep.
func (b *brandes) dependencies(s int, edgeScore core.EdgeMap[float64]) []float64 {
	n := len(b.adj)
	for i := 0; i < n; i++ {
		b.dist[i] = math.Inf(1)
		b.sigma[i] = 0
		b.preds[i] = b.preds[i][:0]
		b.delta[i] = 0
	}
	b.order = b.order[:0]
	b.dist[s] = 0
	b.sigma[s] = 1

	if b.weighted {
		b.forwardWeighted(s)
	} else {
		b.forwardBFS(s)
	}

	for k := len(b.order) - 1; k >= 0; k-- {
		w := b.order[k]
		coeff := (1 + b.delta[w]) / b.sigma[w]
		for _, p := range b.preds[w] {
			c := b.sigma[p.from] * coeff
			b.delta[p.from] += c
			if edgeScore != nil {
				edgeScore[p.eid] += c
			}
		}
	}
	return b.delta
}

// forwardBFS counts shortest paths by breadth-first levels. The level
// of a neighbor is read again after the possible assignment, so the
// first touch and the equal-level touch share one branch.
func (b *brandes) forwardBFS(s int) {
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		b.order = append(b.order, v)
		next := b.dist[v] + 1
		for _, l := range b.adj[v] {
			if math.IsInf(b.dist[l.to], 1) {
				b.dist[l.to] = next
				queue = append(queue, l.to)
			}
			if b.dist[l.to] == next {
				b.sigma[l.to] += b.sigma[v]
				b.preds[l.to] = append(b.preds[l.to], pred{from: v, eid: l.eid})
			}
		}
	}
}

const pathEps = 1e-12

// forwardWeighted counts shortest paths in distance order with a lazy
// heap; ties within pathEps merge path counts.
func (b *brandes) forwardWeighted(s int) {
	settled := bitset.New(uint(len(b.adj)))
	hp := &idxHeap{{idx: s, dist: 0}}
	for hp.Len() > 0 {
		item := heap.Pop(hp).(idxItem)
		if settled.Test(uint(item.idx)) {
			continue
		}
		settled.Set(uint(item.idx))
		b.order = append(b.order, item.idx)
		for _, l := range b.adj[item.idx] {
			cand := b.dist[item.idx] + l.w
			switch {
			case cand < b.dist[l.to]-pathEps:
				b.dist[l.to] = cand
				b.sigma[l.to] = b.sigma[item.idx]
				b.preds[l.to] = append(b.preds[l.to][:0], pred{from: item.idx, eid: l.eid})
				heap.Push(hp, idxItem{idx: l.to, dist: cand})
			case cand <= b.dist[l.to]+pathEps && !settled.Test(uint(l.to)):
				b.sigma[l.to] += b.sigma[item.idx]
				b.preds[l.to] = append(b.preds[l.to], pred{from: item.idx, eid: l.eid})
			}
		}
	}
}

// idxItem and idxHeap form the min-heap over compact indices.
type idxItem struct {
	idx  int
	dist float64
}

type idxHeap []idxItem

func (h idxHeap) Len() int            { return len(h) }
func (h idxHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h idxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idxHeap) Push(x interface{}) { *h = append(*h, x.(idxItem)) }
func (h *idxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
