package engine

import "container/heap"

// HeapStats instruments a priority queue's lifetime activity (§6).
type HeapStats struct {
	Pushes  uint64
	Pops    uint64
	MaxSize uint64
}

// heapItem is a (distance, vertex) pair stored in the binary min-heap.
// Keys are never updated in place (§4.1); a superseded entry is left in
// place and discarded on pop when its distance no longer matches dist[v].
type heapItem struct {
	dist   float32
	vertex int32
}

// minHeap implements container/heap.Interface over heapItem, min-ordered
// by distance.
type minHeap []heapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)         { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// pqueue is an instrumented binary min-heap of (distance, vertex) pairs.
type pqueue struct {
	items minHeap
	stats HeapStats
}

func newPQueue(capacityHint int) *pqueue {
	return &pqueue{items: make(minHeap, 0, capacityHint)}
}

func (q *pqueue) push(d float32, v int32) {
	heap.Push(&q.items, heapItem{dist: d, vertex: v})
	q.stats.Pushes++
	if size := uint64(len(q.items)); size > q.stats.MaxSize {
		q.stats.MaxSize = size
	}
}

// pop removes and returns the minimum item. ok is false when the queue is
// empty.
func (q *pqueue) pop() (item heapItem, ok bool) {
	if len(q.items) == 0 {
		return heapItem{}, false
	}
	item = heap.Pop(&q.items).(heapItem)
	q.stats.Pops++
	return item, true
}

func (q *pqueue) empty() bool { return len(q.items) == 0 }
