// Package day21 solves "Step Counter".
package day21

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day21.go
var source []byte

func init() {
	aoc.Register(21, source, input, Part1, Part2)
}

func parse(input string) (aoc.Grid[byte], aoc.Pt) {
	g := aoc.ByteGrid(input)
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		aoc.Fatalf("no start")
	}
	return g, start
}

// Plots counts the garden plots the elf can stand on after exactly steps
// steps. If tiled, the map repeats infinitely in every direction.
func Plots(input string, steps int, tiled bool) int {
	g, start := parse(input)
	return plots(g, start, steps, tiled)
}

func plots(g aoc.Grid[byte], start aoc.Pt, steps int, tiled bool) int {
	size := g.Size()
	open := func(p aoc.Pt) bool {
		if tiled {
			p = aoc.StandardizePt(p, size)
		} else if !g.In(p) {
			return false
		}
		return g.At(p) != '#'
	}

	// Any plot reached in d <= steps with matching parity can be revisited
	// by stepping back and forth.
	count := 0
	for _, d := range aoc.Distances(start, steps, open) {
		if d%2 == steps%2 {
			count++
		}
	}
	return count
}

// Tiled counts the plots reachable in exactly steps on the infinitely
// tiled map. The map must be square with the start in the middle, and steps
// must leave the elf half a tile past a whole number of tiles. The reachable
// count then grows quadratically in the number of tiles crossed, so three
// brute force samples determine it.
func Tiled(input string, steps int) int {
	g, start := parse(input)
	size := g.Size()
	half := size.X / 2
	if size.X != size.Y || start != (aoc.Pt{X: half, Y: half}) || steps%size.X != half {
		aoc.Fatalf("want a square map with centered start and steps = %d (mod %d)", half, size.X)
	}
	var f [3]int
	for i := range f {
		f[i] = plots(g, start, half+i*size.X, true)
	}
	aoc.Debugf("plots after %d, %d, %d steps: %v", half, half+size.X, half+2*size.X, f)
	n := steps / size.X
	d1 := f[1] - f[0]
	d2 := f[2] - 2*f[1] + f[0]
	return f[0] + n*d1 + n*(n-1)/2*d2
}

// Part1 counts the plots reachable in exactly 64 steps.
func Part1(input string) int {
	return Plots(input, 64, false)
}

// Part2 counts the plots reachable in exactly 26501365 steps on the
// infinite map.
func Part2(input string) int {
	return Tiled(input, 26501365)
}
