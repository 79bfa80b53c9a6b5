// Package day09 solves "Mirage Maintenance".
package day09

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day09.go
var source []byte

func init() {
	aoc.Register(9, source, input, Part1, Part2)
}

func extrapolateAll(input string, forward bool) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		sum += aoc.Extrapolate(aoc.Fields(l), forward)
	}
	return sum
}

// Part1 sums the next value of every history.
/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func Part1(input string) int {
	return extrapolateAll(input, true)
}

// Part2 sums the value before the start of every history.
//
// want=2
func Part2(input string) int {
	return extrapolateAll(input, false)
}
