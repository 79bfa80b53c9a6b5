// Package day13 solves "Point of Incidence".
package day13

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day13.go
var source []byte

func init() {
	aoc.Register(13, source, input, Part1, Part2)
}

// mirrorRow returns the number of rows above a horizontal line of
// reflection for which exactly smudges cells differ, or 0 if there is none.
func mirrorRow(g aoc.Grid[byte], smudges int) int {
	for r := 1; r < len(g); r++ {
		diff := 0
		for a, b := r-1, r; a >= 0 && b < len(g) && diff <= smudges; a, b = a-1, b+1 {
			for x := range g[a] {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return r
		}
	}
	return 0
}

func summarize(input string, smudges int) int {
	sum := 0
	for _, b := range aoc.Blocks(input) {
		g := aoc.ByteGrid(b)
		if r := mirrorRow(g, smudges); r > 0 {
			sum += 100 * r
			continue
		}
		c := mirrorRow(g.Transpose(), smudges)
		if c == 0 {
			aoc.Fatalf("no reflection in pattern:\n%s", b)
		}
		sum += c
	}
	return sum
}

// Part1 summarizes the line of reflection of every pattern.
/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func Part1(input string) int {
	return summarize(input, 0)
}

// Part2 summarizes the reflections once the single smudge in each pattern
// is fixed.
//
// want=400
func Part2(input string) int {
	return summarize(input, 1)
}
