// Package day03 solves "Gear Ratios".
package day03

import (
	_ "embed"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day03.go
var source []byte

func init() {
	aoc.Register(3, source, input, Part1, Part2)
}

// number is a part number on the schematic, spanning x0..x1 on row y.
type number struct {
	val    int
	y      int
	x0, x1 int
}

// neighbors calls f for every cell around n.
func (n number) neighbors(f func(aoc.Pt)) {
	for y := n.y - 1; y <= n.y+1; y++ {
		for x := n.x0 - 1; x <= n.x1+1; x++ {
			if y == n.y && x >= n.x0 && x <= n.x1 {
				continue
			}
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

func numbers(g aoc.Grid[byte]) []number {
	var out []number
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !isDigit(row[x]) {
				continue
			}
			n := number{y: y, x0: x}
			for ; x < len(row) && isDigit(row[x]); x++ {
				n.val = n.val*10 + int(row[x]-'0')
			}
			n.x1 = x - 1
			out = append(out, n)
		}
	}
	return out
}

// Part1 sums the numbers adjacent, even diagonally, to a symbol.
/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func Part1(input string) int {
	g := aoc.ByteGrid(input)
	sum := 0
	for _, n := range numbers(g) {
		part := false
		n.neighbors(func(p aoc.Pt) {
			if v, ok := g.AtOk(p); ok && isSymbol(v) {
				part = true
			}
		})
		if part {
			sum += n.val
		}
	}
	return sum
}

// Part2 sums the gear ratios of every '*' next to exactly two numbers.
//
// want=467835
func Part2(input string) int {
	g := aoc.ByteGrid(input)
	gears := map[aoc.Pt][]int{}
	for _, n := range numbers(g) {
		n.neighbors(func(p aoc.Pt) {
			if v, ok := g.AtOk(p); ok && v == '*' {
				gears[p] = append(gears[p], n.val)
			}
		})
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}
