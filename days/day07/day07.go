// Package day07 solves "Camel Cards".
package day07

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day07.go
var source []byte

func init() {
	aoc.Register(7, source, input, Part1, Part2)
}

type kind int

const (
	highCard kind = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	cards [5]int // card strengths
	kind  kind
	bid   int
}

// handKind classifies cards. Card strength 0 is a joker and joins the
// largest group.
func handKind(cards [5]int) kind {
	counts := map[int]int{}
	jokers := 0
	for _, c := range cards {
		if c == 0 {
			jokers++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		return fiveOfAKind
	}
	groups[0] += jokers
	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func parse(input, order string) []hand {
	var hands []hand
	for _, l := range aoc.Lines(input) {
		cs, bid := aoc.Cut(l, " ")
		if len(cs) != 5 {
			aoc.Fatalf("bad hand %q", l)
		}
		var h hand
		for i := 0; i < 5; i++ {
			s := strings.IndexByte(order, cs[i])
			if s < 0 {
				aoc.Fatalf("bad card %q in %q", cs[i], l)
			}
			h.cards[i] = s
		}
		h.kind = handKind(h.cards)
		h.bid = aoc.Int(bid)
		hands = append(hands, h)
	}
	return hands
}

func winnings(hands []hand) int {
	slices.SortFunc(hands, func(a, b hand) int {
		if a.kind != b.kind {
			return int(a.kind - b.kind)
		}
		return slices.Compare(a.cards[:], b.cards[:])
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}

// Part1 returns the total winnings with hands ranked by type, then by card.
/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func Part1(input string) int {
	// Index 0 is unused so that no card is a joker.
	return winnings(parse(input, "_23456789TJQKA"))
}

// Part2 makes J a joker: wild for the hand type, weakest for ties.
//
// want=5905
func Part2(input string) int {
	return winnings(parse(input, "J23456789TQKA"))
}
