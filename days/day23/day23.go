// Package day23 solves "A Long Walk".
package day23

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day23.go
var source []byte

func init() {
	aoc.Register(23, source, input, Part1, Part2)
}

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

type trails struct {
	g          aoc.Grid[byte]
	start, end aoc.Pt
}

func parse(input string) trails {
	g := aoc.ByteGrid(input)
	if len(g) < 2 {
		aoc.Fatalf("map too small")
	}
	t := trails{g: g}
	var ok bool
	if t.start, ok = rowOpening(g, 0); !ok {
		aoc.Fatalf("no start in the top row")
	}
	if t.end, ok = rowOpening(g, len(g)-1); !ok {
		aoc.Fatalf("no end in the bottom row")
	}
	return t
}

func rowOpening(g aoc.Grid[byte], y int) (aoc.Pt, bool) {
	for x, b := range g[y] {
		if b == '.' {
			return aoc.Pt{X: x, Y: y}, true
		}
	}
	return aoc.Pt{}, false
}

func (t trails) open(p aoc.Pt) bool {
	b, ok := t.g.AtOk(p)
	return ok && b != '#'
}

func (t trails) junction(p aoc.Pt) bool {
	if p == t.start || p == t.end {
		return true
	}
	n := 0
	p.ForImmediateNeighbors(func(q aoc.Pt) bool {
		if t.open(q) {
			n++
		}
		return true
	})
	return n > 2
}

// slopeGraph returns the one-way hikes between junctions that never climb
// an icy slope.
func (t trails) slopeGraph() *aoc.Graph[aoc.Pt] {
	var g aoc.Graph[aoc.Pt]
	var junctions []aoc.Pt
	t.g.ForEach(func(p aoc.Pt, b byte) {
		if b != '#' && t.junction(p) {
			junctions = append(junctions, p)
		}
	})
	for _, j := range junctions {
		g.AddNode(j)
		for _, d := range aoc.Directions {
			if to, n, ok := t.follow(j, d); ok {
				g.AddArc(j, to, n)
			}
		}
	}
	return &g
}

// follow walks the corridor leaving from in direction d until the next
// junction. It reports false if the corridor is a dead end or a slope
// forces the walk back.
func (t trails) follow(from aoc.Pt, d aoc.Direction) (to aoc.Pt, steps int, ok bool) {
	prev, cur := from, from.Add(d.Delta())
	if !t.open(cur) {
		return aoc.Pt{}, 0, false
	}
	if s, ok := slopes[t.g.At(cur)]; ok && s == d.Reverse() {
		return aoc.Pt{}, 0, false
	}
	steps = 1
	for !t.junction(cur) {
		next, found := aoc.Pt{}, false
		if s, ok := slopes[t.g.At(cur)]; ok {
			next, found = cur.Add(s.Delta()), true
			if next == prev || !t.open(next) {
				return aoc.Pt{}, 0, false
			}
		} else {
			cur.ForImmediateNeighbors(func(q aoc.Pt) bool {
				if q != prev && t.open(q) {
					if s, ok := slopes[t.g.At(q)]; ok && q.Add(s.Delta()) == cur {
						return true
					}
					next, found = q, true
					return false
				}
				return true
			})
		}
		if !found {
			return aoc.Pt{}, 0, false
		}
		prev, cur = cur, next
		steps++
	}
	return cur, steps, true
}

// Part1 returns the longest hike that goes down the slopes.
/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func Part1(input string) int {
	t := parse(input)
	n, ok := t.slopeGraph().LongestPath(t.start, t.end)
	if !ok {
		aoc.Fatalf("no hike reaches %v", t.end)
	}
	return n
}

// Part2 returns the longest hike when slopes can be climbed.
//
// want=154
func Part2(input string) int {
	t := parse(input)
	g := t.g.ToGraph(t.start, false, func(b byte) bool { return b == '#' })
	n, ok := g.LongestPath(t.start, t.end)
	if !ok {
		aoc.Fatalf("no hike reaches %v", t.end)
	}
	return n
}
