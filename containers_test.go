package aoc

import (
	"slices"
	"testing"
)

func drain(q *PQ[string]) []string {
	var out []string
	for q.Len() > 0 {
		out = append(out, q.Pop().V)
	}
	return out
}

func TestPQ(t *testing.T) {
	push := func(q *PQ[string]) *Item[string] {
		q.PushValue("b", 2)
		q.PushValue("c", 3)
		return q.PushValue("a", 1)
	}

	minQ := MinQueue[string]()
	push(minQ)
	if got := drain(minQ); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("MinQueue order = %v", got)
	}

	maxQ := MaxQueue[string]()
	push(maxQ)
	if got := drain(maxQ); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("MaxQueue order = %v", got)
	}

	var zero PQ[string]
	a := push(&zero)
	a.P = 10
	zero.Update(a)
	if got := zero.Peek().V; got != "a" {
		t.Errorf("Peek after Update = %q, want a", got)
	}
	if p := zero.Pop(); p.Queued() {
		t.Errorf("popped item %v still queued", p)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(0, 1)
	q.Push(2)
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	var got []int
	for v := range q.Drain() {
		got = append(got, v)
		if v < 4 {
			q.Push(v + 3)
		}
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("drained %v", got)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue")
	}

	var zero Queue[string]
	zero.Push("a")
	for range zero.Drain() {
		break
	}
	if zero.Len() != 0 {
		t.Errorf("Len after break = %d", zero.Len())
	}
	zero.Push("b")
	if v, ok := zero.Pop(); !ok || v != "b" {
		t.Errorf("Pop = %q, %v", v, ok)
	}
}
