// Package day19 solves "Aplenty".
package day19

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day19.go
var source []byte

func init() {
	aoc.Register(19, source, input, Part1, Part2)
}

// part holds the x, m, a and s ratings.
type part [4]int

const categories = "xmas"

type rule struct {
	cat  int  // index into part; -1 for the fallback rule
	less bool // < rather than >
	val  int
	next string
}

type system struct {
	flows map[string][]rule
	parts []part
}

func parseRule(s string) rule {
	cond, next, ok := strings.Cut(s, ":")
	if !ok {
		return rule{cat: -1, next: s}
	}
	if len(cond) < 3 {
		aoc.Fatalf("bad rule %q", s)
	}
	r := rule{
		cat:  strings.IndexByte(categories, cond[0]),
		less: cond[1] == '<',
		val:  aoc.Int(cond[2:]),
		next: next,
	}
	if r.cat < 0 || (cond[1] != '<' && cond[1] != '>') {
		aoc.Fatalf("bad condition %q", cond)
	}
	return r
}

func parse(input string) system {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		aoc.Fatalf("want workflows and parts, got %d blocks", len(blocks))
	}
	sys := system{flows: map[string][]rule{}}
	for _, l := range aoc.Lines(blocks[0]) {
		name, body := aoc.Cut(strings.TrimSuffix(l, "}"), "{")
		var rules []rule
		for _, r := range strings.Split(body, ",") {
			rules = append(rules, parseRule(r))
		}
		sys.flows[name] = rules
	}
	for _, l := range aoc.Lines(blocks[1]) {
		l = strings.TrimSuffix(aoc.TrimPrefix(l, "{"), "}")
		var p part
		for i, kv := range strings.Split(l, ",") {
			if i >= len(p) {
				aoc.Fatalf("too many ratings in %q", l)
			}
			k, v := aoc.Cut(kv, "=")
			if k != categories[i:i+1] {
				aoc.Fatalf("want rating %c, got %q", categories[i], k)
			}
			p[i] = aoc.Int(v)
		}
		sys.parts = append(sys.parts, p)
	}
	return sys
}

func (r rule) matches(p part) bool {
	switch {
	case r.cat < 0:
		return true
	case r.less:
		return p[r.cat] < r.val
	default:
		return p[r.cat] > r.val
	}
}

func (s system) accepted(p part) bool {
	flow := "in"
	for {
		switch flow {
		case "A":
			return true
		case "R":
			return false
		}
		rules, ok := s.flows[flow]
		if !ok {
			aoc.Fatalf("unknown workflow %q", flow)
		}
		i := slices.IndexFunc(rules, func(r rule) bool { return r.matches(p) })
		if i < 0 {
			aoc.Fatalf("workflow %q has no rule for %v", flow, p)
		}
		flow = rules[i].next
	}
}

// Part1 sums the ratings of every accepted part.
/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func Part1(input string) int {
	s := parse(input)
	sum := 0
	for _, p := range s.parts {
		if s.accepted(p) {
			sum += aoc.Sum(p[:]...)
		}
	}
	return sum
}

// span is the half-open rating range [lo, hi) of each category.
type span [4][2]int

func (s span) size() int {
	n := 1
	for _, r := range s {
		n *= max(0, r[1]-r[0])
	}
	return n
}

// split divides s into the ratings that satisfy r and those that don't.
func (r rule) split(s span) (in, out span) {
	in, out = s, s
	lo, hi := s[r.cat][0], s[r.cat][1]
	if r.less {
		in[r.cat] = [2]int{lo, min(hi, r.val)}
		out[r.cat] = [2]int{max(lo, r.val), hi}
	} else {
		in[r.cat] = [2]int{max(lo, r.val+1), hi}
		out[r.cat] = [2]int{lo, min(hi, r.val+1)}
	}
	return in, out
}

func (s system) combinations(flow string, sp span) int {
	if sp.size() == 0 {
		return 0
	}
	switch flow {
	case "A":
		return sp.size()
	case "R":
		return 0
	}
	total := 0
	for _, r := range s.flows[flow] {
		if r.cat < 0 {
			return total + s.combinations(r.next, sp)
		}
		in, out := r.split(sp)
		total += s.combinations(r.next, in)
		sp = out
	}
	aoc.Fatalf("workflow %q has no fallback rule", flow)
	return 0
}

// Part2 counts the distinct rating combinations, each from 1 to 4000, that
// the workflows accept.
//
// want=167409079868000
func Part2(input string) int {
	s := parse(input)
	all := span{{1, 4001}, {1, 4001}, {1, 4001}, {1, 4001}}
	return s.combinations("in", all)
}
