package day23

import (
	"testing"

	"github.com/maisem/aoc"
	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
`

func TestParse(t *testing.T) {
	tr := parse(sample)
	assert.Equal(t, aoc.Pt{X: 1, Y: 0}, tr.start)
	assert.Equal(t, aoc.Pt{X: 21, Y: 22}, tr.end)
}

func TestSlopeGraph(t *testing.T) {
	tr := parse(sample)
	g := tr.slopeGraph()
	// Start, end and the seven junctions.
	require.Len(t, g.Nodes, 9)
	first := aoc.Pt{X: 3, Y: 5}
	assert.Equal(t, map[aoc.Pt]int{first: 15}, g.Edges[tr.start])
	// Slopes only lead away from the first junction.
	_, back := g.Edges[first][tr.start]
	assert.False(t, back)
}

func TestParts(t *testing.T) {
	assert.Equal(t, 94, Part1(sample))
	assert.Equal(t, 154, Part2(sample))
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 23, "Part1", sample)
	daytest.SameSample(t, 23, "Part2", sample)
}
