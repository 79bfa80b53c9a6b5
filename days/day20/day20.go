// Package day20 solves "Pulse Propagation".
package day20

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day20.go
var source []byte

func init() {
	aoc.Register(20, source, input, Part1, Part2)
}

const (
	broadcaster = "broadcaster"
	flipFlop    = '%'
	conjunction = '&'
)

type module struct {
	kind    byte // flipFlop, conjunction, or 0 for the broadcaster
	targets []string

	on     bool            // flip-flop state
	memory map[string]bool // conjunction: last pulse from each input
}

type pulse struct {
	from, to string
	high     bool
}

type circuit map[string]*module

func parse(input string) circuit {
	c := circuit{}
	for _, l := range aoc.Lines(input) {
		name, targets := aoc.Cut(l, " -> ")
		m := &module{targets: strings.Split(targets, ", ")}
		switch {
		case name == broadcaster:
		case name[0] == flipFlop:
			m.kind, name = flipFlop, name[1:]
		case name[0] == conjunction:
			m.kind, name = conjunction, name[1:]
			m.memory = map[string]bool{}
		default:
			aoc.Fatalf("bad module %q", name)
		}
		c[name] = m
	}
	if c[broadcaster] == nil {
		aoc.Fatalf("no broadcaster")
	}
	for name, m := range c {
		for _, t := range m.targets {
			if tm := c[t]; tm != nil && tm.kind == conjunction {
				tm.memory[name] = false
			}
		}
	}
	return c
}

// inputs returns the modules that send to name.
func (c circuit) inputs(name string) []string {
	var out []string
	for n, m := range c {
		for _, t := range m.targets {
			if t == name {
				out = append(out, n)
			}
		}
	}
	return out
}

// press pushes the button once, calling observe for every pulse sent.
func (c circuit) press(observe func(pulse)) {
	q := aoc.NewQueue(pulse{from: "button", to: broadcaster})
	for p := range q.Drain() {
		observe(p)
		m := c[p.to]
		if m == nil {
			continue
		}
		out := p.high
		switch m.kind {
		case flipFlop:
			if p.high {
				continue
			}
			m.on = !m.on
			out = m.on
		case conjunction:
			m.memory[p.from] = p.high
			out = false
			for _, h := range m.memory {
				if !h {
					out = true
					break
				}
			}
		}
		for _, t := range m.targets {
			q.Push(pulse{from: p.to, to: t, high: out})
		}
	}
}

// Part1 multiplies the low and high pulse counts after 1000 presses.
/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func Part1(input string) int {
	c := parse(input)
	var low, high int
	for range 1000 {
		c.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return low * high
}

const maxPresses = 1 << 20

// Part2 returns the presses needed before rx receives a low pulse. rx is fed
// by a single conjunction, which sends low once every one of its inputs has
// sent it high during the same press. Each input does so periodically, so
// the answer is the LCM of their first high presses.
func Part2(input string) int {
	c := parse(input)
	feeders := c.inputs("rx")
	if len(feeders) != 1 || c[feeders[0]].kind != conjunction {
		aoc.Fatalf("rx must be fed by a single conjunction, got %q", feeders)
	}
	hub := feeders[0]
	first := map[string]int{}
	for _, in := range c.inputs(hub) {
		first[in] = 0
	}
	remaining := len(first)
	for n := 1; remaining > 0; n++ {
		if n > maxPresses {
			aoc.Fatalf("no cycle after %d presses", maxPresses)
		}
		c.press(func(p pulse) {
			if p.to == hub && p.high && first[p.from] == 0 {
				first[p.from] = n
				remaining--
			}
		})
	}
	aoc.Debugf("inputs of %s first send high at %v", hub, first)
	var periods []int
	for _, n := range first {
		periods = append(periods, n)
	}
	return aoc.LCM(periods...)
}
