// Package day18 solves "Lavaduct Lagoon".
package day18

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day18.go
var source []byte

func init() {
	aoc.Register(18, source, input, Part1, Part2)
}

type step struct {
	dir aoc.Direction
	n   int
}

var letters = map[byte]aoc.Direction{
	'U': aoc.Up,
	'R': aoc.Right,
	'D': aoc.Down,
	'L': aoc.Left,
}

// fromColor decodes the instruction hidden in a "(#hhhhhd)" colour: five
// hex digits of distance then the direction R, D, L, U as 0-3.
func fromColor(c string) step {
	c = strings.TrimSuffix(aoc.TrimPrefix(c, "(#"), ")")
	if len(c) != 6 {
		aoc.Fatalf("bad colour %q", c)
	}
	n := aoc.MustGet(strconv.ParseInt(c[:5], 16, 64))
	dirs := [...]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}
	d := aoc.Digit(rune(c[5]))
	if d >= len(dirs) {
		aoc.Fatalf("bad direction in colour %q", c)
	}
	return step{dirs[d], int(n)}
}

func parse(input string, hex bool) []step {
	var out []step
	for _, l := range aoc.Lines(input) {
		f := strings.Fields(l)
		if len(f) != 3 {
			aoc.Fatalf("bad line %q", l)
		}
		if hex {
			out = append(out, fromColor(f[2]))
			continue
		}
		d, ok := letters[f[0][0]]
		if !ok || len(f[0]) != 1 {
			aoc.Fatalf("bad direction %q", f[0])
		}
		out = append(out, step{d, aoc.Int(f[1])})
	}
	return out
}

// volume returns the cubic metres of the dug trench and its interior.
func volume(steps []step) int {
	var p aoc.Pt
	corners := make([]aoc.Pt, 0, len(steps))
	for _, s := range steps {
		p = p.Add(s.dir.Delta().Scale(s.n))
		corners = append(corners, p)
	}
	return aoc.PolygonBoundedPoints(corners)
}

// Part1 returns how much lava the lagoon can hold.
/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func Part1(input string) int {
	return volume(parse(input, false))
}

// Part2 returns the lagoon volume using the instructions encoded in the
// colours.
//
// want=952408144115
func Part2(input string) int {
	return volume(parse(input, true))
}
