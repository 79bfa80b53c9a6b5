package aoc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		Fatalf("no real roots for %vx^2 + %vx + %v", a, b, c)
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	if len(integers) == 1 {
		return integers[0]
	}

	lcm := func(a, b int) int {
		return a * b / GCD(a, b)
	}

	result := 1
	for i := 0; i < len(integers); i++ {
		result = lcm(result, integers[i])
	}

	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Extrapolate returns the next value in the sequence x.
// If forward is true, it extrapolates the next value, otherwise
// it extrapolates the previous value in the sequence.
func Extrapolate[T Number](x []T, forward bool) (y T) {
	diffs := make([]T, 0, len(x))
	allZero := true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	val := x[ix]
	diff := Extrapolate(diffs, forward)
	if forward {
		return val + diff
	}
	return val - diff
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// PolygonArea returns the area of the polygon defined by the points, using
// the shoelace formula. The polygon is closed implicitly if the last point
// differs from the first. Either winding order works.
func PolygonArea(pts []Pt) int {
	var area int

	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the rectilinear polygon defined
// by the points, closing it implicitly.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int

	for i := range pts {
		perimeter += pts[i].MDist(pts[(i+1)%len(pts)])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of points with integer coordinates
// inside the polygon defined by the points.
func PolygonBoundedPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  Bounded points = i + b

	  i = A - b/2 + 1
	  i + b = A + b/2 + 1
	*/
	A := PolygonArea(pts)
	b_2 := PolygonPerimeter(pts) >> 1
	return A + b_2 + 1
}

// PolygonInteriorPoints returns the number of points with integer
// coordinates strictly inside the polygon, by Pick's theorem.
func PolygonInteriorPoints(pts []Pt) int {
	A := PolygonArea(pts)
	b_2 := PolygonPerimeter(pts) >> 1
	return A - b_2 + 1
}
