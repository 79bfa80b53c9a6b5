// Package day24 solves "Never Tell Me The Odds".
package day24

import (
	_ "embed"
	"math/big"
	"strings"

	"github.com/maisem/aoc"
)

//go:embed input.txt
var input string

//go:embed day24.go
var source []byte

func init() {
	aoc.Register(24, source, input, Part1, Part2)
}

type hailstone struct {
	p, v [3]int64
}

func parseVec(s string) [3]int64 {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		aoc.Fatalf("bad vector %q", s)
	}
	var out [3]int64
	for i, c := range f {
		out[i] = int64(aoc.Int(c))
	}
	return out
}

func parse(input string) []hailstone {
	var out []hailstone
	for _, l := range aoc.Lines(input) {
		p, v := aoc.Cut(l, "@")
		out = append(out, hailstone{parseVec(p), parseVec(v)})
	}
	return out
}

func rat(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// crossXY reports where the XY paths of a and b cross, ignoring Z. ok is
// false if the paths are parallel or crossed in the past for either.
func crossXY(a, b hailstone) (x, y *big.Rat, ok bool) {
	det := a.v[0]*b.v[1] - a.v[1]*b.v[0]
	if det == 0 {
		return nil, nil, false
	}
	dx, dy := b.p[0]-a.p[0], b.p[1]-a.p[1]
	// a.p + t*a.v = b.p + s*b.v, solved by Cramer's rule.
	t := new(big.Rat).SetFrac(
		new(big.Int).Sub(new(big.Int).Mul(big.NewInt(dx), big.NewInt(b.v[1])), new(big.Int).Mul(big.NewInt(dy), big.NewInt(b.v[0]))),
		big.NewInt(det),
	)
	s := new(big.Rat).SetFrac(
		new(big.Int).Sub(new(big.Int).Mul(big.NewInt(dx), big.NewInt(a.v[1])), new(big.Int).Mul(big.NewInt(dy), big.NewInt(a.v[0]))),
		big.NewInt(det),
	)
	if t.Sign() < 0 || s.Sign() < 0 {
		return nil, nil, false
	}
	x = new(big.Rat).Add(rat(a.p[0]), new(big.Rat).Mul(t, rat(a.v[0])))
	y = new(big.Rat).Add(rat(a.p[1]), new(big.Rat).Mul(t, rat(a.v[1])))
	return x, y, true
}

// Crossings counts the pairs of hailstones whose future XY paths cross
// inside the square test area [lo, hi]².
func Crossings(input string, lo, hi int64) int {
	hs := parse(input)
	rlo, rhi := rat(lo), rat(hi)
	inside := func(r *big.Rat) bool { return r.Cmp(rlo) >= 0 && r.Cmp(rhi) <= 0 }
	n := 0
	for i, a := range hs {
		for _, b := range hs[i+1:] {
			if x, y, ok := crossXY(a, b); ok && inside(x) && inside(y) {
				n++
			}
		}
	}
	return n
}

// Part1 counts future XY path crossings inside the real test area.
func Part1(input string) int {
	return Crossings(input, 200000000000000, 400000000000000)
}

// planeRows returns the linear equations in [P_a, P_b, V_a, V_b] for the
// rock, using coordinates a and b of each pair of hailstones. Each
// hailstone gives (P-p)×(V-v) = 0; the term in P×V is shared by all of
// them and cancels between pairs.
func planeRows(hs []hailstone, a, b int) [][]*big.Rat {
	var rows [][]*big.Rat
	for i, h := range hs {
		for _, k := range hs[i+1:] {
			rows = append(rows, []*big.Rat{
				rat(h.v[b] - k.v[b]),
				rat(k.v[a] - h.v[a]),
				rat(k.p[b] - h.p[b]),
				rat(h.p[a] - k.p[a]),
				rat(h.p[a]*h.v[b] - h.p[b]*h.v[a] - k.p[a]*k.v[b] + k.p[b]*k.v[a]),
			})
		}
	}
	return rows
}

// solve performs Gauss-Jordan elimination on the augmented rows and returns
// the unique solution.
func solve(rows [][]*big.Rat) []*big.Rat {
	n := len(rows[0]) - 1
	used := make([]bool, len(rows))
	pivots := make([]int, n)
	for col := range n {
		pr := -1
		for r, row := range rows {
			if !used[r] && row[col].Sign() != 0 {
				pr = r
				break
			}
		}
		if pr < 0 {
			aoc.Fatalf("system is singular in column %d", col)
		}
		used[pr] = true
		pivots[col] = pr
		inv := new(big.Rat).Inv(rows[pr][col])
		for c := range rows[pr] {
			rows[pr][c].Mul(rows[pr][c], inv)
		}
		for r, row := range rows {
			if r == pr || row[col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(row[col])
			for c := range row {
				row[c].Sub(row[c], new(big.Rat).Mul(f, rows[pr][c]))
			}
		}
	}
	out := make([]*big.Rat, n)
	for col, r := range pivots {
		out[col] = rows[r][n]
	}
	return out
}

// Throw returns the position and velocity of a rock thrown so that it hits
// every hailstone.
func Throw(input string) (pos, vel [3]int64) {
	hs := parse(input)
	if len(hs) < 3 {
		aoc.Fatalf("need at least 3 hailstones, got %d", len(hs))
	}
	// A handful of hailstones is plenty; more only adds redundant rows.
	hs = hs[:min(len(hs), 6)]
	set := func(i int, r *big.Rat, out *[3]int64) {
		if !r.IsInt() {
			aoc.Fatalf("non-integer solution %v", r)
		}
		out[i] = r.Num().Int64()
	}
	xy := solve(planeRows(hs, 0, 1))
	xz := solve(planeRows(hs, 0, 2))
	set(0, xy[0], &pos)
	set(1, xy[1], &pos)
	set(2, xz[1], &pos)
	set(0, xy[2], &vel)
	set(1, xy[3], &vel)
	set(2, xz[3], &vel)
	return pos, vel
}

// Part2 sums the starting coordinates of the rock.
/*
want=47

19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
*/
func Part2(input string) int {
	pos, _ := Throw(input)
	return int(pos[0] + pos[1] + pos[2])
}
