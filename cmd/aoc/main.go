// Command aoc runs the Advent of Code solutions.
package main

import (
	"os"

	_ "github.com/maisem/aoc/days/day01"
	_ "github.com/maisem/aoc/days/day02"
	_ "github.com/maisem/aoc/days/day03"
	_ "github.com/maisem/aoc/days/day04"
	_ "github.com/maisem/aoc/days/day05"
	_ "github.com/maisem/aoc/days/day06"
	_ "github.com/maisem/aoc/days/day07"
	_ "github.com/maisem/aoc/days/day08"
	_ "github.com/maisem/aoc/days/day09"
	_ "github.com/maisem/aoc/days/day10"
	_ "github.com/maisem/aoc/days/day11"
	_ "github.com/maisem/aoc/days/day12"
	_ "github.com/maisem/aoc/days/day13"
	_ "github.com/maisem/aoc/days/day14"
	_ "github.com/maisem/aoc/days/day15"
	_ "github.com/maisem/aoc/days/day16"
	_ "github.com/maisem/aoc/days/day17"
	_ "github.com/maisem/aoc/days/day18"
	_ "github.com/maisem/aoc/days/day19"
	_ "github.com/maisem/aoc/days/day20"
	_ "github.com/maisem/aoc/days/day21"
	_ "github.com/maisem/aoc/days/day22"
	_ "github.com/maisem/aoc/days/day23"
	_ "github.com/maisem/aoc/days/day24"
	_ "github.com/maisem/aoc/days/day25"
)

func main() {
	if err := execute(os.Stdout, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
