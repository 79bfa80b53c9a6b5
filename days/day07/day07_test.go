package day07

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestHandKind(t *testing.T) {
	const normal = "_23456789TJQKA"
	const jokers = "J23456789TQKA"
	tests := []struct {
		hand  string
		order string
		want  kind
	}{
		{"AAAAA", normal, fiveOfAKind},
		{"AA8AA", normal, fourOfAKind},
		{"23332", normal, fullHouse},
		{"TTT98", normal, threeOfAKind},
		{"23432", normal, twoPair},
		{"A23A4", normal, onePair},
		{"23456", normal, highCard},
		{"KTJJT", normal, twoPair},
		{"KTJJT", jokers, fourOfAKind},
		{"JJJJJ", jokers, fiveOfAKind},
		{"2345J", jokers, onePair},
		{"22J33", jokers, fullHouse},
	}
	for _, tt := range tests {
		h := parse(tt.hand+" 1", tt.order)[0]
		assert.Equal(t, tt.want, h.kind, tt.hand)
	}
}

func TestParts(t *testing.T) {
	assert.Equal(t, 6440, Part1(sample))
	assert.Equal(t, 5905, Part2(sample))
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 7, "Part1", sample)
	daytest.SameSample(t, 7, "Part2", sample)
}
