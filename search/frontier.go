// Package search: frontier abstraction shared by the non-deepening
// strategies. DFS, BFS, UCS, Greedy, and A* run the same expansion loop
// (see bestfirst.go) and differ only in the order a frontier yields its
// entries.
package search

import "container/heap"

// entry is one frontier element: a node together with the accumulated
// cost and path that reached it, and the heuristic estimate to the goal.
// Entries are created on expansion and discarded once dequeued, never
// mutated in place.
type entry struct {
	node string
	cost float64  // g: accumulated miles from start
	est  float64  // h: heuristic estimate to goal (0 for uninformed)
	path []string // start … node, inclusive
	seq  uint64   // insertion order, final tie-break
}

// frontier is the ordering/selection rule of a strategy.
type frontier interface {
	push(*entry)
	pop() *entry
	empty() bool
}

// lifoFrontier yields entries in reverse insertion order (DFS).
type lifoFrontier struct{ items []*entry }

func (f *lifoFrontier) push(e *entry) { f.items = append(f.items, e) }
func (f *lifoFrontier) empty() bool   { return len(f.items) == 0 }
func (f *lifoFrontier) pop() *entry {
	n := len(f.items) - 1
	e := f.items[n]
	f.items = f.items[:n]

	return e
}

// fifoFrontier yields entries in insertion order (BFS).
type fifoFrontier struct{ items []*entry }

func (f *fifoFrontier) push(e *entry) { f.items = append(f.items, e) }
func (f *fifoFrontier) empty() bool   { return len(f.items) == 0 }
func (f *fifoFrontier) pop() *entry {
	e := f.items[0]
	f.items = f.items[1:]

	return e
}

// lessFunc orders two entries; true means a has strictly higher priority.
type lessFunc func(a, b *entry) bool

// byCost orders by accumulated cost ascending, ties by insertion order.
// This is the UCS ordering.
func byCost(a, b *entry) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.seq < b.seq
}

// byEstimate orders by heuristic estimate alone (Greedy best-first).
func byEstimate(a, b *entry) bool {
	if a.est != b.est {
		return a.est < b.est
	}

	return a.seq < b.seq
}

// byF orders by f = cost + estimate, ties by lower estimate, then
// insertion order. This is the A* ordering.
func byF(a, b *entry) bool {
	fa, fb := a.cost+a.est, b.cost+b.est
	if fa != fb {
		return fa < fb
	}
	if a.est != b.est {
		return a.est < b.est
	}

	return a.seq < b.seq
}

// heapFrontier is a min-heap priority frontier parameterized by a
// lessFunc. Ordering uses the "lazy decrease-key" pattern: shorter
// rediscoveries push duplicate entries, and stale ones are skipped by
// the expansion loop's closed-set check when popped.
type heapFrontier struct {
	items []*entry
	less  lessFunc
}

func newHeapFrontier(less lessFunc) *heapFrontier {
	return &heapFrontier{less: less}
}

func (f *heapFrontier) push(e *entry) { heap.Push((*entryHeap)(f), e) }
func (f *heapFrontier) empty() bool   { return len(f.items) == 0 }
func (f *heapFrontier) pop() *entry   { return heap.Pop((*entryHeap)(f)).(*entry) }

// entryHeap adapts heapFrontier to container/heap.
type entryHeap heapFrontier

func (h entryHeap) Len() int            { return len(h.items) }
func (h entryHeap) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h entryHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *entryHeap) Push(x interface{}) { h.items = append(h.items, x.(*entry)) }
func (h *entryHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]

	return e
}
