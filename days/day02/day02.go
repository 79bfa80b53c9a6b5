// Package day02 solves "Cube Conundrum".
package day02

import (
	_ "embed"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day02.go
var source []byte

func init() {
	aoc.Register(2, source, input, Part1, Part2)
}

// cubes counts cubes by colour.
type cubes struct {
	red, green, blue int
}

func (c cubes) max(o cubes) cubes {
	return cubes{max(c.red, o.red), max(c.green, o.green), max(c.blue, o.blue)}
}

type game struct {
	id    int
	draws []cubes
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(line string) game {
	head, rest := aoc.Cut(line, ": ")
	g := game{id: aoc.Int(aoc.TrimPrefix(head, "Game "))}
	for _, draw := range strings.Split(rest, "; ") {
		var c cubes
		for _, item := range strings.Split(draw, ", ") {
			n, colour := aoc.Cut(item, " ")
			switch colour {
			case "red":
				c.red += aoc.Int(n)
			case "green":
				c.green += aoc.Int(n)
			case "blue":
				c.blue += aoc.Int(n)
			default:
				aoc.Fatalf("bad colour %q in %q", colour, line)
			}
		}
		g.draws = append(g.draws, c)
	}
	return g
}

// fewest returns the smallest bag that makes every draw possible.
func (g game) fewest() cubes {
	var m cubes
	for _, d := range g.draws {
		m = m.max(d)
	}
	return m
}

var bag = cubes{red: 12, green: 13, blue: 14}

// Part1 sums the ids of the games possible with 12 red, 13 green and 14
// blue cubes.
/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func Part1(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		g := parseGame(l)
		if f := g.fewest(); f.red <= bag.red && f.green <= bag.green && f.blue <= bag.blue {
			sum += g.id
		}
	}
	return sum
}

// Part2 sums the power of the fewest cubes for each game.
//
// want=2286
func Part2(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		f := parseGame(l).fewest()
		sum += f.red * f.green * f.blue
	}
	return sum
}
