// Package day11 solves "Cosmic Expansion".
package day11

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day11.go
var source []byte

func init() {
	aoc.Register(11, source, input, Part1, Part2)
}

// galaxies returns the galaxy positions after every empty row and column
// has grown to factor rows or columns.
func galaxies(input string, factor int) []aoc.Pt {
	g := aoc.ByteGrid(input)
	size := g.Size()
	rowUsed := make([]bool, size.Y)
	colUsed := make([]bool, size.X)
	var pts []aoc.Pt
	g.ForEach(func(p aoc.Pt, b byte) {
		if b == '#' {
			pts = append(pts, p)
			rowUsed[p.Y] = true
			colUsed[p.X] = true
		}
	})

	// offsets(used)[i] is where row or column i lands after expansion.
	offsets := func(used []bool) []int {
		out := make([]int, len(used))
		at := 0
		for i, u := range used {
			out[i] = at
			if u {
				at++
			} else {
				at += factor
			}
		}
		return out
	}
	ys, xs := offsets(rowUsed), offsets(colUsed)
	for i, p := range pts {
		pts[i] = aoc.Pt{X: xs[p.X], Y: ys[p.Y]}
	}
	return pts
}

// SumDistances returns the sum of the shortest paths between every pair of
// galaxies when each empty row and column is replaced by factor of them.
func SumDistances(input string, factor int) int {
	pts := galaxies(input, factor)
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	return aoc.ParallelSum(idx, func(i int) int {
		sum := 0
		for _, q := range pts[i+1:] {
			sum += pts[i].MDist(q)
		}
		return sum
	})
}

// Part1 sums the galaxy distances with empty space doubled.
/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func Part1(input string) int {
	return SumDistances(input, 2)
}

// Part2 sums the galaxy distances with empty space a million times larger.
//
// want=82000210
func Part2(input string) int {
	return SumDistances(input, 1_000_000)
}
