// Package day14 solves "Parabolic Reflector Dish".
package day14

import (
	_ "embed"

	"github.com/maisem/aoc"
	"tailscale.com/util/deephash"
)

//go:embed input.txt
var input string

//go:embed day14.go
var source []byte

func init() {
	aoc.Register(14, source, input, Part1, Part2)
}

// tiltNorth rolls every round rock up until it hits a cube rock, another
// round rock or the edge.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

func load(g aoc.Grid[byte]) int {
	total := 0
	g.ForEach(func(p aoc.Pt, b byte) {
		if b == 'O' {
			total += len(g) - p.Y
		}
	})
	return total
}

// spin tilts north, west, south, then east. It returns the grid in its
// original orientation.
func spin(g aoc.Grid[byte]) aoc.Grid[byte] {
	for range 4 {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

// Spin returns the north load after n spin cycles.
func Spin(input string, n int) int {
	g := aoc.ByteGrid(input)
	seen := map[deephash.Sum]int{}
	for i := 0; i < n; i++ {
		h := g.Hash()
		if first, ok := seen[h]; ok {
			period := i - first
			aoc.Debugf("spin cycle repeats after %d with period %d", first, period)
			for range (n - i) % period {
				g = spin(g)
			}
			return load(g)
		}
		seen[h] = i
		g = spin(g)
	}
	return load(g)
}

// Part1 returns the load on the north beams after tilting north.
/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func Part1(input string) int {
	g := aoc.ByteGrid(input)
	tiltNorth(g)
	return load(g)
}

// Part2 returns the north load after a billion spin cycles.
//
// want=64
func Part2(input string) int {
	return Spin(input, 1_000_000_000)
}
