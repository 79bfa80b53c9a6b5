package day22

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
)

const sample = `1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
`

func TestSettle(t *testing.T) {
	s := settle(parse(sample))
	// A holds B and C, which both hold D and E, which both hold F, which
	// holds G.
	assert.Equal(t, [][]int{nil, {0}, {0}, {1, 2}, {1, 2}, {3, 4}, {5}}, s.below)
	assert.ElementsMatch(t, []int{1, 2}, s.above[0])
	assert.Empty(t, s.above[6])
}

func TestFalls(t *testing.T) {
	s := settle(parse(sample))
	var got []int
	for i := range s.below {
		got = append(got, s.falls(i))
	}
	assert.Equal(t, []int{6, 0, 0, 0, 0, 1, 0}, got)
}

func TestParts(t *testing.T) {
	assert.Equal(t, 5, Part1(sample))
	assert.Equal(t, 7, Part2(sample))
}

func TestReversedEnds(t *testing.T) {
	b := parse("2,2,5~0,2,3\n")
	assert.Equal(t, brick{lo: [3]int{0, 2, 3}, hi: [3]int{2, 2, 5}}, b[0])
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 22, "Part1", sample)
	daytest.SameSample(t, 22, "Part2", sample)
}
