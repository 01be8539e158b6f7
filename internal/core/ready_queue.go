package core

import "container/heap"

// Ordering is a total order over processes in the style of cmp.Compare:
// negative when a goes first, positive when b goes first.
type Ordering func(a, b *Process) int

type queued struct {
	process *Process
	seq     uint64
}

type queuedHeap struct {
	items []queued
	order Ordering
}

func (h queuedHeap) Len() int { return len(h.items) }

func (h queuedHeap) Less(i, j int) bool {
	if c := h.order(h.items[i].process, h.items[j].process); c != 0 {
		return c < 0
	}
	return h.items[i].seq < h.items[j].seq
}

func (h queuedHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *queuedHeap) Push(x any) {
	h.items = append(h.items, x.(queued))
}

func (h *queuedHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = queued{}
	h.items = old[:n-1]
	return item
}

// ReadyQueue is a min-heap of processes. Ties under its ordering are broken
// by insertion order, so a re-inserted process queues behind earlier ones.
// Processes are keyed at insertion time; a process whose remaining burst
// changes must be popped and pushed again.
type ReadyQueue struct {
	h   queuedHeap
	seq uint64
}

func NewReadyQueue(order Ordering) *ReadyQueue {
	return &ReadyQueue{h: queuedHeap{order: order}}
}

func (q *ReadyQueue) Push(p *Process) {
	heap.Push(&q.h, queued{process: p, seq: q.seq})
	q.seq++
}

func (q *ReadyQueue) Pop() *Process {
	return heap.Pop(&q.h).(queued).process
}

func (q *ReadyQueue) Peek() *Process {
	return q.h.items[0].process
}

func (q *ReadyQueue) Len() int {
	return q.h.Len()
}
