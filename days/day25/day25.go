// Package day25 solves "Snowverload".
package day25

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day25.go
var source []byte

func init() {
	aoc.Register(25, source, input, Part1)
}

func parse(input string) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, l := range aoc.Lines(input) {
		from, to := aoc.Cut(l, ": ")
		for _, t := range strings.Fields(to) {
			g.AddEdge(from, t, 1)
		}
	}
	return &g
}

// Part1 cuts the three wires that split the components into two groups
// and multiplies the group sizes.
/*
want=54

jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
*/
func Part1(input string) int {
	g := parse(input)
	n := len(g.Nodes)
	weight, side := g.MinCut()
	if weight != 3 {
		aoc.Fatalf("minimum cut has %d wires, want 3", weight)
	}
	cuts := g.CutEdges(side)
	aoc.Debugf("cutting %v", cuts)
	for _, e := range cuts {
		g.RemoveEdge(e.A, e.B)
	}
	group := len(g.ReachableNodes(side[0]))
	if group != len(side) {
		aoc.Fatalf("cut leaves %d nodes with %s, want %d", group, side[0], len(side))
	}
	return group * (n - group)
}
