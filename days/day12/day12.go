// Package day12 solves "Hot Springs".
package day12

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day12.go
var source []byte

func init() {
	aoc.Register(12, source, input, Part1, Part2)
}

type record struct {
	springs string
	groups  []int
}

func parse(line string) record {
	springs, groups := aoc.Cut(line, " ")
	for _, c := range springs {
		if c != '.' && c != '#' && c != '?' {
			aoc.Fatalf("bad spring %q in %q", c, line)
		}
	}
	return record{springs, aoc.Ints(strings.Split(groups, ",")...)}
}

func (r record) unfold(n int) record {
	out := record{springs: strings.Repeat("?"+r.springs, n)[1:]}
	for range n {
		out.groups = append(out.groups, r.groups...)
	}
	return out
}

// arrangements counts the ways the unknown springs can be filled in so
// that the damaged runs match the groups.
func (r record) arrangements() int {
	s, gs := r.springs, r.groups
	// ways[i][j] counts arrangements of s[i:] matching gs[j:].
	ways := make([][]int, len(s)+2)
	for i := range ways {
		ways[i] = make([]int, len(gs)+1)
	}
	ways[len(s)][len(gs)] = 1
	ways[len(s)+1][len(gs)] = 1

	// fits reports whether a run of n damaged springs can start at i.
	fits := func(i, n int) bool {
		if i+n > len(s) || strings.ContainsRune(s[i:i+n], '.') {
			return false
		}
		return i+n == len(s) || s[i+n] != '#'
	}

	for i := len(s) - 1; i >= 0; i-- {
		for j := len(gs); j >= 0; j-- {
			n := 0
			if s[i] != '#' {
				n += ways[i+1][j]
			}
			if s[i] != '.' && j < len(gs) && fits(i, gs[j]) {
				// The run plus its trailing operational spring.
				n += ways[min(i+gs[j]+1, len(s)+1)][j+1]
			}
			ways[i][j] = n
		}
	}
	return ways[0][0]
}

// Part1 sums the possible arrangements of every row.
/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func Part1(input string) int {
	return aoc.ParallelSum(aoc.Lines(input), func(l string) int {
		return parse(l).arrangements()
	})
}

// Part2 sums the arrangements of every row unfolded five times.
//
// want=525152
func Part2(input string) int {
	return aoc.ParallelSum(aoc.Lines(input), func(l string) int {
		return parse(l).unfold(5).arrangements()
	})
}
