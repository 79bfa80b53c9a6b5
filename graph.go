package aoc

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph. Edges[a][b] is the weight of the arc a→b;
// undirected edges are stored in both directions.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}


func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	for v := range q.Drain() {
		if visited[v] {
			continue
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
	}
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds the one-way arc a→b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// AddEdge adds the undirected edge a–b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// LongestPath returns the length of the longest simple path from start to
// end. ok is false if end is unreachable. The search is exhaustive, so the
// graph should be small (it panics past 64 nodes); Collapse it first.
func (g *Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	nodes := maps.Keys(g.Nodes)
	if len(nodes) > 64 {
		panic(fmt.Sprintf("LongestPath: %d nodes; max 64", len(nodes)))
	}
	idx := make(map[K]int, len(nodes))
	for i, k := range nodes {
		idx[k] = i
	}
	si, ok1 := idx[start]
	ei, ok2 := idx[end]
	if !ok1 || !ok2 {
		return 0, false
	}
	type arc struct{ to, w int }
	adj := make([][]arc, len(nodes))
	for a, e := range g.Edges {
		for b, w := range e {
			adj[idx[a]] = append(adj[idx[a]], arc{idx[b], w})
		}
	}

	best := -1
	var walk func(n int, visited uint64, dist int)
	walk = func(n int, visited uint64, dist int) {
		if n == ei {
			best = max(best, dist)
			return
		}
		visited |= 1 << n
		for _, a := range adj[n] {
			if visited&(1<<a.to) == 0 {
				walk(a.to, visited, dist+a.w)
			}
		}
	}
	walk(si, 0, 0)
	if best == -1 {
		return 0, false
	}
	return best, true
}

// Collapse collapses the graph by removing any nodes with only two
// neighbors and merging the two edges into one. When the merged edge
// duplicates an existing one, the longer is kept. Only meaningful for
// undirected graphs.
func (g *Graph[K]) Collapse() {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 {
				continue
			}
			ks := maps.Keys(e)
			k2, k3 := ks[0], ks[1]
			d := e[k2] + e[k3]
			if old, ok := g.Edges[k2][k3]; ok && old > d {
				d = old
			}
			g.RemoveNode(k1)
			g.AddEdge(k2, k3, d)
			trimmed = true
		}
		if !trimmed {
			return
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("bad")
}

// MinCut calculates the minimum cut of an undirected graph using the
// Stoer–Wagner algorithm. It returns the weight of the cut and the nodes on
// one side of it.
func (g *Graph[T]) MinCut() (weight int, side []T) {
	if len(g.Nodes) < 2 {
		panic("MinCut: need at least two nodes")
	}
	var (
		g2 = g.Clone() // copy of graph to mutate

		start = AnyKey(g2.Nodes) // any node

		// members of each merged super node
		set = map[T][]T{}
	)
	for k := range g2.Nodes {
		set[k] = []T{k}
	}
	weight = math.MaxInt
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < weight {
			weight = w
			side = slices.Clone(set[t])
		}
		set[s] = append(set[s], set[t]...)
		delete(set, t)
		g2.merge(s, t)
	}
	return weight, side
}

// CutEdges returns the edges of g that cross from side to the rest.
func (g *Graph[T]) CutEdges(side []T) []Edge[T] {
	in := make(map[T]bool, len(side))
	for _, v := range side {
		in[v] = true
	}
	var cuts []Edge[T]
	for _, v := range side {
		for e := range g.Edges[v] {
			if !in[e] {
				cuts = append(cuts, Edge[T]{v, e})
			}
		}
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int) {
	var pq PQ[T]
	pris := make(map[T]*Item[T], len(g.Nodes))
	for k := range g.Nodes {
		p := 0
		if k == start {
			p = math.MaxInt / 2
		}
		pris[k] = pq.PushValue(k, p)
	}

	for pq.Len() > 0 {
		next := pq.Pop()

		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if p.Queued() {
				p.P += v
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

// merge folds t into s.
func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		if k == s {
			continue
		}
		svk := g.Edges[s][k]
		g.AddEdge(s, k, svk+tvk)
	}
	g.RemoveNode(t)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
