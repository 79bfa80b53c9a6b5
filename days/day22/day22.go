// Package day22 solves "Sand Slabs".
package day22

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day22.go
var source []byte

func init() {
	aoc.Register(22, source, input, Part1, Part2)
}

type brick struct {
	lo, hi [3]int // x, y, z
}

func parse(input string) []brick {
	var out []brick
	for _, l := range aoc.Lines(input) {
		a, b := aoc.Cut(l, "~")
		var br brick
		for i, end := range []string{a, b} {
			c := aoc.Ints(strings.Split(end, ",")...)
			if len(c) != 3 {
				aoc.Fatalf("bad brick end %q", end)
			}
			if i == 0 {
				br.lo = [3]int(c)
			} else {
				br.hi = [3]int(c)
			}
		}
		for k := range 3 {
			if br.lo[k] > br.hi[k] {
				br.lo[k], br.hi[k] = br.hi[k], br.lo[k]
			}
		}
		out = append(out, br)
	}
	return out
}

// stack lets every brick fall as far as it can. below[i] lists the bricks
// directly under brick i, and above[i] the bricks resting on it. Bricks are
// returned in settling order, so supporters always precede what they hold.
type stack struct {
	below, above [][]int
}

func settle(bricks []brick) stack {
	slices.SortFunc(bricks, func(a, b brick) int { return a.lo[2] - b.lo[2] })

	type cell struct {
		top   int
		brick int // -1 for the ground
	}
	heights := map[[2]int]cell{}
	s := stack{
		below: make([][]int, len(bricks)),
		above: make([][]int, len(bricks)),
	}
	for i, b := range bricks {
		floor := 0
		var under []int
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				c, ok := heights[[2]int{x, y}]
				if !ok {
					continue
				}
				switch {
				case c.top > floor:
					floor = c.top
					under = []int{c.brick}
				case c.top == floor && !slices.Contains(under, c.brick):
					under = append(under, c.brick)
				}
			}
		}
		s.below[i] = under
		for _, u := range under {
			s.above[u] = append(s.above[u], i)
		}
		top := floor + 1 + b.hi[2] - b.lo[2]
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				heights[[2]int{x, y}] = cell{top, i}
			}
		}
	}
	return s
}

// Part1 counts the bricks that can be disintegrated without anything
// falling.
/*
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func Part1(input string) int {
	s := settle(parse(input))
	safe := 0
	for i := range s.above {
		ok := true
		for _, a := range s.above[i] {
			if len(s.below[a]) < 2 {
				ok = false
				break
			}
		}
		if ok {
			safe++
		}
	}
	return safe
}

// falls counts the other bricks that fall when brick i is removed.
func (s stack) falls(i int) int {
	falling := map[int]bool{i: true}
	for j := i + 1; j < len(s.below); j++ {
		if len(s.below[j]) == 0 {
			continue
		}
		all := true
		for _, b := range s.below[j] {
			if !falling[b] {
				all = false
				break
			}
		}
		if all {
			falling[j] = true
		}
	}
	return len(falling) - 1
}

// Part2 sums, over every brick, how many others would fall if it were
// disintegrated.
//
// want=7
func Part2(input string) int {
	s := settle(parse(input))
	idx := make([]int, len(s.below))
	for i := range idx {
		idx[i] = i
	}
	return aoc.ParallelSum(idx, s.falls)
}
