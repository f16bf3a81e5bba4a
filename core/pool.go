// Package core: scratch pools.
//
// Traversals and kernels allocate the same shapes over and over:
// visited sets, handle queues, score maps. Pools recycle them so tight
// loops and the parallel package stay off the allocator. Everything
// handed back is cleared before reuse.

package core

import "sync"

var (
	visitedPool = sync.Pool{New: func() any { return make(map[NodeID]struct{}, 64) }}
	queuePool   = sync.Pool{New: func() any { s := make([]NodeID, 0, 64); return &s }}
	scorePool   = sync.Pool{New: func() any { return make(map[NodeID]float64, 64) }}
)

// GetVisited returns an empty scratch set.
func GetVisited() map[NodeID]struct{} {
	return visitedPool.Get().(map[NodeID]struct{})
}

// PutVisited clears the set and returns it to the pool.
func PutVisited(s map[NodeID]struct{}) {
	clear(s)
	visitedPool.Put(s)
}

// GetQueue returns an empty scratch slice for BFS/DFS frontiers.
func GetQueue() *[]NodeID {
	return queuePool.Get().(*[]NodeID)
}

// PutQueue empties the slice and returns it to the pool.
func PutQueue(q *[]NodeID) {
	*q = (*q)[:0]
	queuePool.Put(q)
}

// GetScores returns an empty scratch map for per-node float values.
func GetScores() map[NodeID]float64 {
	return scorePool.Get().(map[NodeID]float64)
}

// PutScores clears the map and returns it to the pool.
func PutScores(m map[NodeID]float64) {
	clear(m)
	scorePool.Put(m)
}
