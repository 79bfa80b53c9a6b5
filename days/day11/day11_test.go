package day11

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
)

const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestSumDistances(t *testing.T) {
	tests := []struct {
		factor, want int
	}{
		{2, 374},
		{10, 1030},
		{100, 8410},
		{1_000_000, 82000210},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SumDistances(sample, tt.factor), "factor %d", tt.factor)
	}
}

func TestGalaxies(t *testing.T) {
	pts := galaxies(sample, 2)
	assert.Len(t, pts, 9)
	// Galaxies 5 and 9 are 9 apart once expanded.
	assert.Equal(t, 9, pts[4].MDist(pts[8]))
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 11, "Part1", sample)
	daytest.SameSample(t, 11, "Part2", sample)
}
