package daytest

import (
	"testing"

	"github.com/maisem/aoc"
	"github.com/stretchr/testify/assert"
)

var src = []byte(`package fake

// Part1 sums.
/*
want=6

1
2
3
*/
func Part1(input string) int { return 0 }

// want=-4
func Part2(input string) int { return 0 }
`)

func Part1(input string) int { return 0 }
func Part2(input string) int { return 0 }

func init() {
	aoc.Register(2001, src, "", Part1, Part2)
}

func TestSample(t *testing.T) {
	assert.Equal(t, "1\n2\n3\n", Sample(t, 2001, "Part1"))
	assert.Equal(t, "1\n2\n3\n", Sample(t, 2001, "Part2"))
	SameSample(t, 2001, "Part2", "\n1\n2\n3")
}
