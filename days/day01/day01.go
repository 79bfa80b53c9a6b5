// Package day01 solves "Trebuchet?!".
package day01

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day01.go
var source []byte

func init() {
	aoc.Register(1, source, input, Part1, Part2)
}

// Part1 sums the two-digit values made of the first and last digit of
// each line.
/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func Part1(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		sum += calibration(l, false)
	}
	return sum
}

// Part2 is Part1, but digits may also be spelled out.
/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func Part2(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		sum += calibration(l, true)
	}
	return sum
}

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i]. Spelled digits may overlap,
// as in "eightwo".
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

func calibration(line string, spelled bool) int {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		aoc.Fatalf("no digits in %q", line)
	}
	return first*10 + last
}
