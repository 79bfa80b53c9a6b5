// Package day17 solves "Clumsy Crucible".
package day17

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day17.go
var source []byte

func init() {
	aoc.Register(17, source, input, Part1, Part2)
}

type state struct {
	aoc.Path
	run int // blocks moved in Dir so far
}

// minHeatLoss returns the least heat lost moving a crucible from the top
// left to the bottom right block. The crucible moves at most maxRun blocks
// in a straight line and must move at least minRun before turning or
// stopping.
func minHeatLoss(input string, minRun, maxRun int) int {
	g := aoc.ParseGrid(input, func(b byte) int { return aoc.Digit(rune(b)) })
	size := g.Size()
	goal := aoc.Pt{X: size.X - 1, Y: size.Y - 1}

	best := map[state]int{}
	q := aoc.MinQueue[state]()
	for _, d := range []aoc.Direction{aoc.Right, aoc.Down} {
		s := state{Path: aoc.Path{Dir: d}}
		best[s] = 0
		q.PushValue(s, 0)
	}
	for q.Len() > 0 {
		it := q.Pop()
		s, loss := it.V, it.P
		if loss > best[s] {
			continue
		}
		if s.Pt == goal && s.run >= minRun {
			return loss
		}
		for _, d := range []aoc.Direction{s.Dir, s.Dir.Turn(true), s.Dir.Turn(false)} {
			next := state{Path: aoc.Path{Pt: s.Pt, Dir: d}, run: 1}
			if d == s.Dir {
				if s.run >= maxRun {
					continue
				}
				next.run = s.run + 1
			} else if s.run < minRun {
				continue
			}
			p, ok := g.Move(next.Path)
			if !ok {
				continue
			}
			next.Path = p
			nl := loss + g.At(p.Pt)
			if old, ok := best[next]; ok && old <= nl {
				continue
			}
			best[next] = nl
			q.PushValue(next, nl)
		}
	}
	aoc.Fatalf("no path to %v", goal)
	return 0
}

// Part1 returns the least heat loss for a crucible that turns at least
// every three blocks.
/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func Part1(input string) int {
	return minHeatLoss(input, 1, 3)
}

// Part2 returns the least heat loss for an ultra crucible, which moves
// four to ten blocks before turning.
//
// want=94
func Part2(input string) int {
	return minHeatLoss(input, 4, 10)
}
