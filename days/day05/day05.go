// Package day05 solves "If You Give A Seed A Fertilizer".
package day05

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day05.go
var source []byte

func init() {
	aoc.Register(5, source, input, Part1, Part2)
}

// span is the half-open interval [lo, hi).
type span struct {
	lo, hi int
}

// entry maps [src, src+n) onto [dst, dst+n).
type entry struct {
	dst, src, n int
}

type almanac struct {
	seeds []int
	maps  [][]entry // seed-to-soil ... humidity-to-location, in order
}

func parse(input string) almanac {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		aoc.Fatalf("empty almanac")
	}
	a := almanac{seeds: aoc.Fields(aoc.TrimPrefix(blocks[0], "seeds:"))}
	for _, b := range blocks[1:] {
		lines := aoc.Lines(b)
		if !strings.HasSuffix(lines[0], " map:") {
			aoc.Fatalf("bad map header %q", lines[0])
		}
		var m []entry
		for _, l := range lines[1:] {
			f := aoc.Fields(l)
			if len(f) != 3 {
				aoc.Fatalf("bad map line %q", l)
			}
			m = append(m, entry{dst: f[0], src: f[1], n: f[2]})
		}
		a.maps = append(a.maps, m)
	}
	return a
}

// apply pushes every span through one map. Parts of a span covered by an
// entry are shifted; the rest pass through unchanged.
func apply(spans []span, m []entry) []span {
	var out []span
	for _, e := range m {
		lo, hi, off := e.src, e.src+e.n, e.dst-e.src
		var rest []span
		for _, s := range spans {
			// Part before and after the entry stay unmapped for now.
			if s.lo < min(s.hi, lo) {
				rest = append(rest, span{s.lo, min(s.hi, lo)})
			}
			if max(s.lo, hi) < s.hi {
				rest = append(rest, span{max(s.lo, hi), s.hi})
			}
			if l, h := max(s.lo, lo), min(s.hi, hi); l < h {
				out = append(out, span{l + off, h + off})
			}
		}
		spans = rest
	}
	return append(out, spans...)
}

func lowest(a almanac, spans []span) int {
	for _, m := range a.maps {
		spans = apply(spans, m)
	}
	if len(spans) == 0 {
		aoc.Fatalf("no seeds")
	}
	return slices.MinFunc(spans, func(a, b span) int { return a.lo - b.lo }).lo
}

// Part1 returns the lowest location of any listed seed.
/*
want=35

seeds: 79 14 55 13

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
*/
func Part1(input string) int {
	a := parse(input)
	var spans []span
	for _, s := range a.seeds {
		spans = append(spans, span{s, s + 1})
	}
	return lowest(a, spans)
}

// Part2 treats the seeds as (start, length) pairs.
//
// want=46
func Part2(input string) int {
	a := parse(input)
	if len(a.seeds)%2 != 0 {
		aoc.Fatalf("odd number of seed values")
	}
	var spans []span
	for i := 0; i < len(a.seeds); i += 2 {
		spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	return lowest(a, spans)
}
