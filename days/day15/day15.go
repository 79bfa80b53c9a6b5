// Package day15 solves "Lens Library".
package day15

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day15.go
var source []byte

func init() {
	aoc.Register(15, source, input, Part1, Part2)
}

// Hash is the Holiday ASCII String Helper algorithm.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

func steps(input string) []string {
	return strings.Split(strings.ReplaceAll(strings.TrimSpace(input), "\n", ""), ",")
}

// Part1 sums the hash of every initialization step.
/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func Part1(input string) int {
	sum := 0
	for _, s := range steps(input) {
		sum += Hash(s)
	}
	return sum
}

type lens struct {
	label string
	focal int
}

type boxes [256][]lens

func (b *boxes) apply(step string) {
	i := strings.IndexAny(step, "=-")
	if i < 1 {
		aoc.Fatalf("bad step %q", step)
	}
	label := step[:i]
	box := &b[Hash(label)]
	at := slices.IndexFunc(*box, func(l lens) bool { return l.label == label })
	if step[i] == '-' {
		if at >= 0 {
			*box = slices.Delete(*box, at, at+1)
		}
		return
	}
	l := lens{label, aoc.Int(step[i+1:])}
	if at >= 0 {
		(*box)[at] = l
	} else {
		*box = append(*box, l)
	}
}

func (b *boxes) power() int {
	total := 0
	for i, box := range b {
		for slot, l := range box {
			total += (i + 1) * (slot + 1) * l.focal
		}
	}
	return total
}

// Part2 returns the focusing power of the lens configuration.
//
// want=145
func Part2(input string) int {
	var b boxes
	for _, s := range steps(input) {
		b.apply(s)
	}
	return b.power()
}
