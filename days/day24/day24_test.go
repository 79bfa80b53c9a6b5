package day24

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
`

func TestCrossXY(t *testing.T) {
	hs := parse(sample)
	x, y, ok := crossXY(hs[0], hs[1])
	require.True(t, ok)
	assert.Equal(t, "43/3", x.RatString())
	assert.Equal(t, "46/3", y.RatString())

	// Parallel.
	_, _, ok = crossXY(hs[1], hs[2])
	assert.False(t, ok)
	// In the past for the first hailstone.
	_, _, ok = crossXY(hs[0], hs[4])
	assert.False(t, ok)
}

func TestCrossings(t *testing.T) {
	assert.Equal(t, 2, Crossings(sample, 7, 27))
}

func TestThrow(t *testing.T) {
	pos, vel := Throw(sample)
	assert.Equal(t, [3]int64{24, 13, 10}, pos)
	assert.Equal(t, [3]int64{-3, 1, 2}, vel)
	assert.Equal(t, 47, Part2(sample))
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 24, "Part2", sample)
}
