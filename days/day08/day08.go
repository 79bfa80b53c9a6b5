// Package day08 solves "Haunted Wasteland".
package day08

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day08.go
var source []byte

func init() {
	aoc.Register(8, source, input, Part1, Part2)
}

type network struct {
	turns string
	nodes map[string][2]string // left, right
}

func parse(input string) network {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		aoc.Fatalf("want instructions and nodes, got %d blocks", len(blocks))
	}
	n := network{turns: strings.TrimSpace(blocks[0]), nodes: map[string][2]string{}}
	for _, l := range aoc.Lines(blocks[1]) {
		name, next := aoc.Cut(l, " = ")
		next = strings.TrimSuffix(aoc.TrimPrefix(next, "("), ")")
		left, right := aoc.Cut(next, ", ")
		n.nodes[name] = [2]string{left, right}
	}
	return n
}

// steps follows the instructions from start until done reports true.
func (n network) steps(start string, done func(string) bool) int {
	cur := start
	for i := 0; ; i++ {
		if i > 0 && done(cur) {
			return i
		}
		next, ok := n.nodes[cur]
		if !ok {
			aoc.Fatalf("unknown node %q", cur)
		}
		switch n.turns[i%len(n.turns)] {
		case 'L':
			cur = next[0]
		case 'R':
			cur = next[1]
		default:
			aoc.Fatalf("bad instruction %q", n.turns[i%len(n.turns)])
		}
	}
}

// Part1 counts the steps from AAA to ZZZ.
/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func Part1(input string) int {
	return parse(input).steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks from every node ending in A at once until all of them end in
// Z. Each ghost cycles with the period of its first Z, so the answer is
// the LCM of those.
/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func Part2(input string) int {
	n := parse(input)
	var periods []int
	for name := range n.nodes {
		if strings.HasSuffix(name, "A") {
			periods = append(periods, n.steps(name, func(s string) bool {
				return strings.HasSuffix(s, "Z")
			}))
		}
	}
	aoc.Debugf("day 8 periods: %v", periods)
	return aoc.LCM(periods...)
}
