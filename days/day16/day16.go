// Package day16 solves "The Floor Will Be Lava".
package day16

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day16.go
var source []byte

func init() {
	aoc.Register(16, source, input, Part1, Part2)
}

func horizontal(d aoc.Direction) bool {
	return d == aoc.Left || d == aoc.Right
}

// outgoing returns the directions a beam travelling in d leaves tile b in.
func outgoing(b byte, d aoc.Direction) []aoc.Direction {
	switch b {
	case '.':
		return []aoc.Direction{d}
	case '/':
		// Right turns Up, Up turns Right.
		return []aoc.Direction{d.Turn(!horizontal(d))}
	case '\\':
		return []aoc.Direction{d.Turn(horizontal(d))}
	case '|':
		if horizontal(d) {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
		return []aoc.Direction{d}
	case '-':
		if !horizontal(d) {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
		return []aoc.Direction{d}
	}
	aoc.Fatalf("bad tile %q", b)
	return nil
}

// energized counts the tiles a beam entering at start passes through.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := map[aoc.Path]bool{}
	tiles := map[aoc.Pt]bool{}
	q := aoc.NewQueue(start)
	for p := range q.Drain() {
		if seen[p] {
			continue
		}
		seen[p] = true
		tiles[p.Pt] = true
		for _, d := range outgoing(g.At(p.Pt), p.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok {
				q.Push(next)
			}
		}
	}
	return len(tiles)
}

// Part1 counts the energized tiles for a beam entering the top-left corner
// heading right.
/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func Part1(input string) int {
	return energized(aoc.ByteGrid(input), aoc.Path{Dir: aoc.Right})
}

// Part2 returns the most tiles any beam entering from the edge can
// energize.
//
// want=51
func Part2(input string) int {
	g := aoc.ByteGrid(input)
	return aoc.ParallelMax(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	})
}
