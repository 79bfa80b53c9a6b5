// Package day10 solves "Pipe Maze".
package day10

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day10.go
var source []byte

func init() {
	aoc.Register(10, source, input, Part1, Part2)
}

var pipes = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
}

func connects(b byte, d aoc.Direction) bool {
	ds, ok := pipes[b]
	return ok && (ds[0] == d || ds[1] == d)
}

// loop returns the cells of the loop through S in walking order, starting
// at S.
func loop(input string) []aoc.Pt {
	g := aoc.ByteGrid(input)
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		aoc.Fatalf("no start tile")
	}
	var exits []aoc.Direction
	for _, d := range aoc.Directions {
		if b, ok := g.AtOk(start.Add(d.Delta())); ok && connects(b, d.Reverse()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		aoc.Fatalf("start connects to %d pipes", len(exits))
	}

	cells := []aoc.Pt{start}
	p, d := start, exits[0]
	for {
		p = p.Add(d.Delta())
		if p == start {
			return cells
		}
		b, ok := g.AtOk(p)
		if !ok || !connects(b, d.Reverse()) {
			aoc.Fatalf("loop broken at %v", p)
		}
		cells = append(cells, p)
		ds := pipes[b]
		if ds[0] == d.Reverse() {
			d = ds[1]
		} else {
			d = ds[0]
		}
	}
}

// Part1 returns the number of steps to the point of the loop farthest
// from the start.
/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func Part1(input string) int {
	return len(loop(input)) / 2
}

// Part2 counts the tiles enclosed by the loop.
/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func Part2(input string) int {
	return aoc.PolygonInteriorPoints(loop(input))
}
