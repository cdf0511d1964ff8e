package kdtree

import (
	"container/heap"
	"math"
)

// BoundedHeap is a max-heap bounded to k entries keyed by a float64
// distance, used by NearestNeighbors (spec §4.10's Q). It is the
// exported, generalized form of the teacher's knnItem/knnHeap
// (kdtree.go) — same container/heap-backed design, generalized from
// fixed tree-node pointers to any payload type, and equivalent to the
// source's n_best<Iter,Key> bounded collector (SPEC_FULL.md).
type BoundedHeap[E any] struct {
	items innerHeap[E]
	k     int
}

type heapEntry[E any] struct {
	value E
	dist  float64
}

type innerHeap[E any] []heapEntry[E]

func (h innerHeap[E]) Len() int            { return len(h) }
func (h innerHeap[E]) Less(i, j int) bool  { return h[i].dist > h[j].dist } // max-heap: worst on top
func (h innerHeap[E]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap[E]) Push(x interface{}) { *h = append(*h, x.(heapEntry[E])) }
func (h *innerHeap[E]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NewBoundedHeap returns an empty heap bounded to at most k entries.
func NewBoundedHeap[E any](k int) *BoundedHeap[E] {
	return &BoundedHeap[E]{k: k}
}

// MaxKey returns the current worst (largest) distance held, or +Inf if
// the heap has not yet reached capacity k.
func (b *BoundedHeap[E]) MaxKey() float64 {
	if len(b.items) < b.k {
		return math.Inf(1)
	}
	return b.items[0].dist
}

// Add inserts (dist, value) and evicts the current worst entry if the
// heap now exceeds capacity k.
func (b *BoundedHeap[E]) Add(dist float64, value E) {
	heap.Push(&b.items, heapEntry[E]{value: value, dist: dist})
	for len(b.items) > b.k {
		heap.Pop(&b.items)
	}
}

// Len reports the number of entries currently held.
func (b *BoundedHeap[E]) Len() int { return len(b.items) }

// Drain pops every remaining entry in heap-extraction order (worst
// distance first) and returns the values, emptying the heap. Because each
// pop removes the current maximum, the result is ordered by non-increasing
// distance.
func (b *BoundedHeap[E]) Drain() []E {
	out := make([]E, 0, len(b.items))
	for len(b.items) > 0 {
		entry := heap.Pop(&b.items).(heapEntry[E])
		out = append(out, entry.value)
	}
	return out
}
