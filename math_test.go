package aoc

import "testing"

func TestPolygon(t *testing.T) {
	square := []Pt{{0, 0}, {5, 0}, {5, 5}, {0, 5}}
	closed := append(square, Pt{0, 0})
	for name, pts := range map[string][]Pt{"open": square, "closed": closed} {
		if got := PolygonArea(pts); got != 25 {
			t.Errorf("%s: PolygonArea = %d, want 25", name, got)
		}
		if got := PolygonPerimeter(pts); got != 20 {
			t.Errorf("%s: PolygonPerimeter = %d, want 20", name, got)
		}
		if got := PolygonInteriorPoints(pts); got != 16 {
			t.Errorf("%s: PolygonInteriorPoints = %d, want 16", name, got)
		}
		if got := PolygonBoundedPoints(pts); got != 36 {
			t.Errorf("%s: PolygonBoundedPoints = %d, want 36", name, got)
		}
	}

	// Counter-clockwise winding gives the same area.
	rev := []Pt{{0, 5}, {5, 5}, {5, 0}, {0, 0}}
	if got := PolygonArea(rev); got != 25 {
		t.Errorf("reversed PolygonArea = %d, want 25", got)
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in         []int
		next, prev int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.next {
			t.Errorf("Extrapolate(%v, true) = %d, want %d", tt.in, got, tt.next)
		}
		if got := Extrapolate(tt.in, false); got != tt.prev {
			t.Errorf("Extrapolate(%v, false) = %d, want %d", tt.in, got, tt.prev)
		}
	}
}

func TestNumbers(t *testing.T) {
	if got := LCM(4, 6, 10); got != 60 {
		t.Errorf("LCM = %d", got)
	}
	if got := GCD(48, 18); got != 6 {
		t.Errorf("GCD = %d", got)
	}
	if got := Sum(1.5, 2.5); got != 4 {
		t.Errorf("Sum = %v", got)
	}
	if got := AbsDiff(3, 10); got != 7 {
		t.Errorf("AbsDiff = %d", got)
	}
	a, b := SolveQuad(1, -3, 2)
	if a != 2 || b != 1 {
		t.Errorf("SolveQuad = %v, %v", a, b)
	}
}
