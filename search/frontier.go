package search

import "container/heap"

// Discipline selects the frontier ordering of a walk.
type Discipline int

const (
	// Priority pops the node with the smallest heuristic key;
	// equal keys pop in insertion order.
	Priority Discipline = iota
	// FIFO pops nodes in insertion order.
	FIFO
)

// frontier holds node handles awaiting expansion.
type frontier interface {
	push(handle, key int)
	pop() int
	Len() int
}

func newFrontier(d Discipline) frontier {
	if d == FIFO {
		return &fifoFrontier{}
	}
	pq := &priorityFrontier{}
	heap.Init(pq)

	return pq
}

// fifoFrontier is a slice-backed queue.
type fifoFrontier struct {
	queue []int
}

func (f *fifoFrontier) push(handle, _ int) { f.queue = append(f.queue, handle) }

func (f *fifoFrontier) pop() int {
	h := f.queue[0]
	f.queue = f.queue[1:]

	return h
}

func (f *fifoFrontier) Len() int { return len(f.queue) }

// frontierItem is a node handle with its heuristic key and insertion sequence.
type frontierItem struct {
	handle int
	key    int
	seq    int
}

// priorityFrontier is a min-heap ordered by (key, seq).
type priorityFrontier struct {
	items []frontierItem
	seq   int
}

func (pq *priorityFrontier) push(handle, key int) {
	heap.Push(pq, frontierItem{handle: handle, key: key, seq: pq.seq})
	pq.seq++
}

func (pq *priorityFrontier) pop() int {
	return heap.Pop(pq).(frontierItem).handle
}

// Len returns the number of items in the heap.
func (pq *priorityFrontier) Len() int { return len(pq.items) }

// Less orders by key, then by insertion sequence.
func (pq *priorityFrontier) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.key != b.key {
		return a.key < b.key
	}

	return a.seq < b.seq
}

func (pq *priorityFrontier) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push is used by container/heap; call push instead.
func (pq *priorityFrontier) Push(x any) { pq.items = append(pq.items, x.(frontierItem)) }

// Pop is used by container/heap; call pop instead.
func (pq *priorityFrontier) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
