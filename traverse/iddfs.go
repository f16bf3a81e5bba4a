// Package traverse: iterative-deepening depth-first search.

package traverse

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// IDDFS searches for target by running depth-limited DFS with limits
// 0, 1, ..., maxDepth and returns the first path found, start and
// target inclusive. Memory stays O(depth); nodes may be re-expanded
// across rounds.
// Returns ErrNilGraph, ErrOptionViolation for maxDepth < 0,
// core.ErrNodeNotFound for missing endpoints, and core.ErrNoPath when
// no route exists within maxDepth.
func IDDFS[A any, W core.Numeric](g *core.Graph[A, W], start, target core.NodeID, maxDepth int, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: maxDepth %d", ErrOptionViolation, maxDepth)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrNodeNotFound, start)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: target %v", core.ErrNodeNotFound, target)
	}

	d := dls[A, W]{graph: g, opts: o, target: target}
	for limit := 0; limit <= maxDepth; limit++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		d.path = d.path[:0]
		d.onPath = map[core.NodeID]struct{}{}
		found, err := d.search(start, limit)
		if err != nil {
			return nil, err
		}
		if found {
			out := make([]core.NodeID, len(d.path))
			copy(out, d.path)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: from %v to %v within depth %d", core.ErrNoPath, start, target, maxDepth)
}

// dls holds depth-limited search state for one deepening round.
type dls[A any, W core.Numeric] struct {
	graph  *core.Graph[A, W]
	opts   Options
	target core.NodeID
	path   []core.NodeID
	onPath map[core.NodeID]struct{}
}

// search extends the current path with id and recurses up to limit.
// Nodes leave onPath on backtrack so alternate routes through them
// remain discoverable.
func (d *dls[A, W]) search(id core.NodeID, limit int) (bool, error) {
	select {
	case <-d.opts.Ctx.Done():
		return false, d.opts.Ctx.Err()
	default:
	}

	d.path = append(d.path, id)
	d.onPath[id] = struct{}{}
	if id == d.target {
		return true, nil
	}
	if limit > 0 {
		for _, nbr := range d.graph.Neighbors(id) {
			if !d.opts.FilterNeighbor(id, nbr) {
				continue
			}
			if _, cyc := d.onPath[nbr]; cyc {
				continue
			}
			found, err := d.search(nbr, limit-1)
			if err != nil || found {
				return found, err
			}
		}
	}
	// backtrack
	d.path = d.path[:len(d.path)-1]
	delete(d.onPath, id)
	return false, nil
}
