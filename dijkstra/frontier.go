package dijkstra

import "container/heap"

// entry is one frontier element: a state and the accumulated cost of the
// path that discovered it. seq records push order and breaks cost ties, so
// identical inputs always pop in the same order.
type entry struct {
	cost  int64
	state State
	seq   uint64
}

// entryHeap is a min-heap of entries ordered by (cost, seq) ascending.
// We use the “lazy-decrease-key” approach: when a cheaper path to a state
// is found we push a new entry; the outdated one stays in the heap and is
// discarded on pop by comparing against the dominance table.
type entryHeap []entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less defines the comparison: smaller cost → higher priority, then FIFO.
func (h entryHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop after it has moved the minimum there.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier is the priority frontier of one search. Duplicate states at
// different costs are allowed.
type frontier struct {
	h   entryHeap
	seq uint64
}

func newFrontier(capHint int) *frontier {
	return &frontier{h: make(entryHeap, 0, capHint)}
}

// push inserts (cost, s). O(log n).
func (f *frontier) push(cost int64, s State) {
	heap.Push(&f.h, entry{cost: cost, state: s, seq: f.seq})
	f.seq++
}

// popMin removes the cheapest entry; ok is false when the frontier is empty.
// O(log n).
func (f *frontier) popMin() (e entry, ok bool) {
	if len(f.h) == 0 {
		return entry{}, false
	}

	return heap.Pop(&f.h).(entry), true
}

func (f *frontier) len() int { return len(f.h) }
