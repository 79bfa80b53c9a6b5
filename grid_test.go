package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRotate(t *testing.T) {
	g := ByteGrid("abc\ndef\n")
	tests := []struct {
		name string
		got  Grid[byte]
		want string
	}{
		{"transpose", g.Transpose(), "ad\nbe\ncf\n"},
		{"clockwise", g.RotateClockwise(), "da\neb\nfc\n"},
		{"half turn", g.RotateClockwise().RotateClockwise(), "fed\ncba\n"},
		{"full turn", g.RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise(), "abc\ndef\n"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(ByteGrid(tt.want), tt.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestHash(t *testing.T) {
	a := ByteGrid("#.\n.#\n")
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Fatal("equal grids hash differently")
	}
	b.Set(Pt{0, 0}, '.')
	if a.Hash() == b.Hash() {
		t.Error("different grids hash the same")
	}
	if a.At(Pt{0, 0}) != '#' {
		t.Error("Clone shares storage")
	}
}

func TestDistances(t *testing.T) {
	g := ByteGrid("S.#\n..#\n#..\n")
	open := func(p Pt) bool {
		v, ok := g.AtOk(p)
		return ok && v != '#'
	}
	got := Distances(Pt{0, 0}, -1, open)
	want := map[Pt]int{
		{0, 0}: 0, {1, 0}: 1,
		{0, 1}: 1, {1, 1}: 2,
		{1, 2}: 3, {2, 2}: 4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Distances mismatch (-want +got):\n%s", diff)
	}
	delete(want, Pt{1, 2})
	delete(want, Pt{2, 2})
	if diff := cmp.Diff(want, Distances(Pt{0, 0}, 2, open)); diff != "" {
		t.Errorf("Distances with limit mismatch (-want +got):\n%s", diff)
	}
}

func TestToGraph(t *testing.T) {
	// A corridor with one side branch collapses to three edges around the
	// junction at (2, 0).
	g := ByteGrid(".....\n##.##\n##.##\n")
	gr := g.ToGraph(Pt{0, 0}, false, func(b byte) bool { return b == '#' })
	junction := Pt{2, 0}
	want := map[Pt]int{{0, 0}: 2, {4, 0}: 2, {2, 2}: 2}
	if diff := cmp.Diff(want, gr.Edges[junction]); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	if len(gr.Nodes) != 4 {
		t.Errorf("got %d nodes, want 4", len(gr.Nodes))
	}
}

func TestMove(t *testing.T) {
	g := MakeGrid[int](3, 2)
	p, ok := g.Move(Path{Pt{0, 0}, Right})
	if !ok || p.Pt != (Pt{1, 0}) {
		t.Errorf("Move right = %v, %v", p, ok)
	}
	if _, ok := g.Move(Path{Pt{0, 0}, Up}); ok {
		t.Error("Move left the grid")
	}
	if got := len(g.EdgePaths()); got != 2*3+2*2 {
		t.Errorf("EdgePaths = %d paths", got)
	}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if d.Turn(true).Turn(false) != d {
			t.Errorf("%v: turning right then left changed direction", d)
		}
		if d.Reverse().Reverse() != d || d.Reverse() == d {
			t.Errorf("%v: bad reverse %v", d, d.Reverse())
		}
		if got := d.Delta().Add(d.Reverse().Delta()); got != (Pt{}) {
			t.Errorf("%v: delta and reverse sum to %v", d, got)
		}
	}
	if Up.Turn(true) != Right || Up.Turn(false) != Left {
		t.Error("turns are not clockwise from Up")
	}
}

func TestStandardizePt(t *testing.T) {
	size := Pt{5, 3}
	tests := []struct{ in, want Pt }{
		{Pt{2, 1}, Pt{2, 1}},
		{Pt{5, 3}, Pt{0, 0}},
		{Pt{-1, -1}, Pt{4, 2}},
		{Pt{-10, 7}, Pt{0, 1}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
