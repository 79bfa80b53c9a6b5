package day05

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestParse(t *testing.T) {
	a := parse(sample)
	assert.Equal(t, []int{79, 14, 55, 13}, a.seeds)
	require.Len(t, a.maps, 7)
	assert.Equal(t, []entry{{50, 98, 2}, {52, 50, 48}}, a.maps[0])
}

func TestApplySplits(t *testing.T) {
	// [95,100) straddles the end of the 52..99 entry and both halves of
	// the 98..99 entry.
	got := apply([]span{{95, 100}}, []entry{{50, 98, 2}, {52, 50, 48}})
	assert.ElementsMatch(t, []span{{50, 52}, {97, 100}}, got)

	// Unmapped values pass through.
	assert.Equal(t, []span{{0, 10}}, apply([]span{{0, 10}}, []entry{{50, 98, 2}}))
}

func TestParts(t *testing.T) {
	assert.Equal(t, 35, Part1(sample))
	assert.Equal(t, 46, Part2(sample))
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 5, "Part1", sample)
	daytest.SameSample(t, 5, "Part2", sample)
}
