package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

// ParseGrid parses one row per line of s, converting each byte with f.
func ParseGrid[T any](s string, f func(byte) T) Grid[T] {
	lines := Lines(s)
	g := make(Grid[T], len(lines))
	for y, l := range lines {
		g[y] = make([]T, len(l))
		for x := 0; x < len(l); x++ {
			g[y][x] = f(l[x])
		}
	}
	return g
}

// ByteGrid parses s into a grid of its raw bytes.
func ByteGrid(s string) Grid[byte] {
	return ParseGrid(s, func(b byte) byte { return b })
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) In(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Find returns the first cell for which match is true.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

var (
	hashMu  sync.Mutex
	hashers = map[reflect.Type]any{} // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// RotateClockwiseInto writes g rotated a quarter turn clockwise into out,
// which must be size.Y wide and size.X tall.
func (g Grid[T]) RotateClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateClockwiseInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// EdgePaths returns a path entering the grid from every border cell,
// pointing inward.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Distances returns the BFS step count from start to every point within
// limit steps, moving in the four cardinal directions onto points for which
// open returns true. A negative limit means no limit.
func Distances(start Pt, limit int, open func(Pt) bool) map[Pt]int {
	dist := map[Pt]int{start: 0}
	q := NewQueue(start)
	for p := range q.Drain() {
		d := dist[p]
		if d == limit {
			continue
		}
		p.ForImmediateNeighbors(func(n Pt) bool {
			if _, seen := dist[n]; !seen && open(n) {
				dist[n] = d + 1
				q.Push(n)
			}
			return true
		})
	}
	return dist
}

// ToGraph converts the grid into a graph. If allowDiagonals is true, then
// diagonal neighbors are included. If disallowed is not nil, it is additionally
// called on each cell, and if it returns true, that cell is not included in the
// graph. Corridors of degree-2 cells are collapsed into weighted edges.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.Nodes = make(map[Pt]bool)
	g.Edges = make(map[Pt]map[Pt]int)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	q := NewQueue(start)
	for p1 := range q.Drain() {
		if _, ok := g.Nodes[p1]; ok {
			continue
		}
		g.Nodes[p1] = true
		fn(p1, func(p2 Pt) (keepGoing bool) {
			v, ok := grid.AtOk(p2)
			if !ok || (disallowed != nil && disallowed(v)) {
				return true
			}
			if _, ok := g.Nodes[p2]; ok {
				return true // already visited
			}
			q.Push(p2)
			if g.Edges[p2] == nil {
				g.Edges[p2] = make(map[Pt]int)
			}
			if g.Edges[p1] == nil {
				g.Edges[p1] = make(map[Pt]int)
			}
			g.Edges[p1][p2] = 1
			g.Edges[p2][p1] = 1
			return true
		})
	}
	g.Collapse()
	return g
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four cardinal directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step for d, with Y growing downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// Scale multiplies both coordinates by n.
func (p Pt2[T]) Scale(n T) Pt2[T] {
	return Pt2[T]{p.X * n, p.Y * n}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt maps p on an infinitely tiled grid back into the base tile.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
