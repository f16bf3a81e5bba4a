// Louvain community detection: greedy modularity optimization with
// graph aggregation between levels.

package community

import (
	"math/rand"

	"github.com/graphina/graphina/core"
)

// Partition is the result of a hierarchical community detection run.
type Partition struct {
	// Membership labels every node with its final community, numbered
	// 0..k-1 in order of first appearance.
	Membership core.NodeMap[int]

	// Levels holds the membership after each aggregation level, coarsest
	// last. Levels[len-1] equals Membership.
	Levels []core.NodeMap[int]
}

// Communities groups the final membership into explicit node sets.
func (p *Partition) Communities() [][]core.NodeID {
	return Groups(p.Membership)
}

// deltaEps is the modularity-gain threshold below which a move does
// not count as an improvement.
const deltaEps = 1e-10

// Louvain detects communities by repeated local moving and
// aggregation. Each sweep visits nodes in a seeded shuffle and moves a
// node into the neighboring community with the best modularity gain;
// once a level stops improving, communities collapse into super-nodes
// and the process repeats on the smaller graph.
//
// Directed edges are treated as undirected. An edgeless graph yields
// singleton communities. Equal seeds give equal partitions.
func Louvain[A any, W core.Numeric](g *core.Graph[A, W], opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	ix := core.NewIndex(g)
	n := ix.Len()
	p := &Partition{Membership: core.NewNodeMap[int](n)}
	if n == 0 {
		return p, nil
	}

	lv := levelFromGraph(g, ix)
	if lv.m2 == 0 {
		for i := 0; i < n; i++ {
			p.Membership[ix.ID(i)] = i
		}
		p.Levels = []core.NodeMap[int]{p.Membership}
		return p, nil
	}

	rng := rand.New(rand.NewSource(o.Seed))
	// nodeComm[i] is the super-node currently holding original node i.
	nodeComm := make([]int, n)
	for i := range nodeComm {
		nodeComm[i] = i
	}

	for levelNum := 0; ; levelNum++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		comm, communities, improved := lv.localMoving(rng, o)

		// Re-express original nodes in the renumbered communities.
		for i := range nodeComm {
			nodeComm[i] = comm[nodeComm[i]]
		}
		membership := core.NewNodeMap[int](n)
		for i, c := range nodeComm {
			membership[ix.ID(i)] = c
		}
		p.Levels = append(p.Levels, membership)
		p.Membership = membership
		o.Logger.Debug().Int("level", levelNum).Int("communities", communities).Msg("louvain level")

		if !improved || communities == lv.n {
			return p, nil
		}
		lv = lv.aggregate(comm, communities)
	}
}

// wlink is one weighted adjacency entry on compact indices.
type wlink struct {
	to int
	w  float64
}

// level is one aggregation level: a mirrored weighted adjacency with
// self-loops kept aside.
type level struct {
	n     int
	adj   [][]wlink
	selfW []float64
	k     []float64
	m2    float64
}

func levelFromGraph[A any, W core.Numeric](g *core.Graph[A, W], ix *core.Index) *level {
	n := ix.Len()
	lv := &level{
		n:     n,
		adj:   make([][]wlink, n),
		selfW: make([]float64, n),
		k:     make([]float64, n),
	}
	for _, e := range g.Edges() {
		i, _ := ix.Of(e.From)
		j, _ := ix.Of(e.To)
		w := float64(e.Weight)
		if i == j {
			lv.selfW[i] += w
			continue
		}
		lv.adj[i] = append(lv.adj[i], wlink{to: j, w: w})
		lv.adj[j] = append(lv.adj[j], wlink{to: i, w: w})
	}
	lv.refreshDegrees()
	return lv
}

func (lv *level) refreshDegrees() {
	lv.m2 = 0
	for i := 0; i < lv.n; i++ {
		k := 2 * lv.selfW[i]
		for _, a := range lv.adj[i] {
			k += a.w
		}
		lv.k[i] = k
		lv.m2 += k
	}
}

// localMoving runs shuffled sweeps until quiescence or the sweep cap,
// then renumbers the surviving communities by first appearance.
// Returns the per-node community, the community count, and whether any
// move happened.
func (lv *level) localMoving(rng *rand.Rand, o Options) ([]int, int, bool) {
	comm := make([]int, lv.n)
	sumTot := make([]float64, lv.n)
	for i := range comm {
		comm[i] = i
		sumTot[i] = lv.k[i]
	}

	order := rng.Perm(lv.n)
	improvedEver := false
	for sweep := 0; sweep < o.MaxIter; sweep++ {
		changed := false
		for _, i := range order {
			c0 := comm[i]
			wTo := map[int]float64{c0: 0}
			for _, a := range lv.adj[i] {
				wTo[comm[a.to]] += a.w
			}

			sumTot[c0] -= lv.k[i]
			best := c0
			bestGain := wTo[c0] - sumTot[c0]*lv.k[i]/lv.m2
			for c, w := range wTo {
				if c == c0 {
					continue
				}
				gain := w - sumTot[c]*lv.k[i]/lv.m2
				if gain > bestGain+deltaEps || (gain > bestGain-deltaEps && c < best) {
					bestGain = gain
					best = c
				}
			}
			sumTot[best] += lv.k[i]
			if best != c0 {
				comm[i] = best
				changed = true
				improvedEver = true
			}
		}
		if !changed {
			break
		}
		rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
	}

	relabel := make([]int, lv.n)
	for i := range relabel {
		relabel[i] = -1
	}
	next := 0
	for i := 0; i < lv.n; i++ {
		if relabel[comm[i]] < 0 {
			relabel[comm[i]] = next
			next++
		}
		comm[i] = relabel[comm[i]]
	}
	return comm, next, improvedEver
}

// aggregate collapses communities into super-nodes, folding intra-
// community weight into self-loops.
func (lv *level) aggregate(comm []int, communities int) *level {
	next := &level{
		n:     communities,
		adj:   make([][]wlink, communities),
		selfW: make([]float64, communities),
		k:     make([]float64, communities),
	}
	between := make([]map[int]float64, communities)
	for i := 0; i < lv.n; i++ {
		ci := comm[i]
		next.selfW[ci] += lv.selfW[i]
		for _, a := range lv.adj[i] {
			cj := comm[a.to]
			if ci == cj {
				// Mirrored arcs visit each intra edge twice.
				next.selfW[ci] += a.w / 2
				continue
			}
			if between[ci] == nil {
				between[ci] = map[int]float64{}
			}
			between[ci][cj] += a.w
		}
	}
	for ci, row := range between {
		for cj, w := range row {
			next.adj[ci] = append(next.adj[ci], wlink{to: cj, w: w})
		}
	}
	next.refreshDegrees()
	return next
}
