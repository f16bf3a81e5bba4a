// Package traverse: breadth-first search.

package traverse

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// queueItem pairs a node with its depth and discovery parent.
type queueItem struct {
	id     core.NodeID
	depth  int
	parent core.NodeID // zero for the root
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker[A any, W core.Numeric] struct {
	graph   *core.Graph[A, W]
	opts    Options
	queue   []queueItem
	visited map[core.NodeID]struct{}
	res     *Result
}

// BFS runs breadth-first search on g from start, applying any number
// of functional Options. Nodes are visited in increasing hop distance;
// ties resolve in ascending handle order because Neighbors is sorted.
// Returns ErrNilGraph, core.ErrNodeNotFound for a missing start,
// ErrOptionViolation for bad options, or any hook error.
func BFS[A any, W core.Numeric](g *core.Graph[A, W], start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &bfsWalker[A, W]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]struct{}, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  core.NewNodeMap[int](n),
			Parent: core.NewNodeMap[core.NodeID](n),
		},
	}

	w.enqueue(start, 0, core.NodeID{})
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, fires
// OnEnqueue, and appends it to the queue.
func (w *bfsWalker[A, W]) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = struct{}{}
	w.res.Depth[id] = d
	if !parent.IsZero() {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *bfsWalker[A, W]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand applies filtering and MaxDepth, then enqueues each unseen
// neighbor of item.
func (w *bfsWalker[A, W]) expand(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.visited[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}
