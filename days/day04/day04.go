// Package day04 solves "Scratchcards".
package day04

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day04.go
var source []byte

func init() {
	aoc.Register(4, source, input, Part1, Part2)
}

// matches returns, per card, how many of its numbers are winning numbers.
func matches(input string) []int {
	var out []int
	for _, l := range aoc.Lines(input) {
		_, nums := aoc.Cut(l, ": ")
		winning, have := aoc.Cut(nums, " | ")
		win := map[int]bool{}
		for _, n := range aoc.Fields(winning) {
			win[n] = true
		}
		m := 0
		for _, n := range aoc.Fields(have) {
			if win[n] {
				m++
			}
		}
		out = append(out, m)
	}
	return out
}

// Part1 scores each card 2^(matches-1).
/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 84 92 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func Part1(input string) int {
	sum := 0
	for _, m := range matches(input) {
		if m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return sum
}

// Part2 counts cards once every card wins copies of the cards after it.
//
// want=30
func Part2(input string) int {
	ms := matches(input)
	copies := make([]int, len(ms))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range ms {
		for j := i + 1; j <= i+m && j < len(ms); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

