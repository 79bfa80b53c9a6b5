package aoc

import (
	"container/heap"
	"fmt"
	"iter"
)

// Queue is a FIFO queue. The zero value is empty and ready to use.
type Queue[T any] struct {
	q    []T
	head int
}

func NewQueue[T any](in ...T) *Queue[T] {
	return &Queue[T]{q: in}
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	if q.head == len(q.q) {
		q.q, q.head = q.q[:0], 0
	}
	return v, true
}

// Drain pops values until the queue is empty. Values pushed while ranging
// are visited too.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Item is a value queued in a PQ with priority P.
type Item[T any] struct {
	V  T
	P  int
	ix int
}

func (i *Item[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Queued reports whether the item is still waiting in its queue.
func (i *Item[T]) Queued() bool {
	return i.ix >= 0
}

// PQ is a priority queue. The zero PQ pops the highest priority first.
// Priorities may change while queued as long as Update is called after.
type PQ[T any] struct {
	items  []*Item[T]
	lowest bool
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{lowest: true}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

// PushValue queues v with priority p and returns its item.
func (pq *PQ[T]) PushValue(v T, p int) *Item[T] {
	i := &Item[T]{V: v, P: p}
	pq.PushItem(i)
	return i
}

func (pq *PQ[T]) PushItem(i *Item[T]) {
	heap.Push((*pqHeap[T])(pq), i)
}

func (pq *PQ[T]) Pop() *Item[T] {
	return heap.Pop((*pqHeap[T])(pq)).(*Item[T])
}

func (pq *PQ[T]) Update(i *Item[T]) {
	heap.Fix((*pqHeap[T])(pq), i.ix)
}

func (pq *PQ[T]) Peek() *Item[T] {
	return pq.items[0]
}

func (pq *PQ[T]) Len() int {
	return len(pq.items)
}

// pqHeap is the heap.Interface view of a PQ.
type pqHeap[T any] PQ[T]

func (h *pqHeap[T]) Len() int { return len(h.items) }

func (h *pqHeap[T]) Less(i, j int) bool {
	a, b := h.items[i].P, h.items[j].P
	if h.lowest {
		return a < b
	}
	return a > b
}

func (h *pqHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].ix = i
	h.items[j].ix = j
}

func (h *pqHeap[T]) Push(x any) {
	i := x.(*Item[T])
	i.ix = len(h.items)
	h.items = append(h.items, i)
}

func (h *pqHeap[T]) Pop() any {
	n := len(h.items) - 1
	i := h.items[n]
	h.items[n] = nil
	h.items = h.items[:n]
	i.ix = -1
	return i
}
