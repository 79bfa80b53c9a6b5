// Package day06 solves "Wait For It".
package day06

import (
	_ "embed"
	"math"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day06.go
var source []byte

func init() {
	aoc.Register(6, source, input, Part1, Part2)
}

type race struct {
	time, record int
}

func (r race) beats(hold int) bool {
	return hold*(r.time-hold) > r.record
}

// ways returns how many hold times beat the record. Those are the integers
// strictly between the roots of hold^2 - time*hold + record = 0; the float
// roots are nudged onto exact integer bounds.
func (r race) ways() int {
	if r.time*r.time < 4*r.record {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -r.time, r.record)
	a := int(math.Floor(lo)) + 1
	b := int(math.Ceil(hi)) - 1
	for a > 1 && r.beats(a-1) {
		a--
	}
	for a <= b && !r.beats(a) {
		a++
	}
	for b < r.time-1 && r.beats(b+1) {
		b++
	}
	for b >= a && !r.beats(b) {
		b--
	}
	if b < a {
		return 0
	}
	return b - a + 1
}

func parse(input string) (times, records []string) {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		aoc.Fatalf("want 2 lines, got %d", len(lines))
	}
	return strings.Fields(aoc.TrimPrefix(lines[0], "Time:")),
		strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))
}

// Part1 multiplies the number of winning hold times of every race.
/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func Part1(input string) int {
	times, records := parse(input)
	if len(times) != len(records) {
		aoc.Fatalf("%d times but %d distances", len(times), len(records))
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{aoc.Int(times[i]), aoc.Int(records[i])}
	}
	ways := aoc.Parallel(races, race.ways)
	return aoc.Fold(ways, func(acc, n int) int { return acc * n }, 1)
}

// Part2 reads the numbers as one race with the spaces removed.
//
// want=71503
func Part2(input string) int {
	times, records := parse(input)
	r := race{aoc.Int(strings.Join(times, "")), aoc.Int(strings.Join(records, ""))}
	return r.ways()
}
