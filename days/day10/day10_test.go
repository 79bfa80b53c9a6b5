package day10

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
)

const (
	simple = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`
	winding = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`
	squeezed = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`
	larger = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`
	junk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`
)

func TestPart1(t *testing.T) {
	assert.Equal(t, 4, Part1(simple))
	assert.Equal(t, 8, Part1(winding))
	assert.Equal(t, 8, Part1(daytest.Sample(t, 10, "Part1")))
}

func TestPart2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"simple", simple, 1},
		{"squeezed", squeezed, 4},
		{"larger", larger, 8},
		{"junk", junk, 10},
		{"doc", daytest.Sample(t, 10, "Part2"), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Part2(tt.input))
		})
	}
}

func TestLoopStartsAtS(t *testing.T) {
	cells := loop(simple)
	assert.Len(t, cells, 8)
	assert.Equal(t, 1, cells[0].X)
	assert.Equal(t, 1, cells[0].Y)
}
