package fractal

import (
	"image"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 || len(g.Values()) != 12 {
		t.Fatalf("NewGrid(4, 3) = %dx%d with %d values", g.Width(), g.Height(), len(g.Values()))
	}
	if g.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", g.Bounds())
	}

	if g := NewGrid(-1, 5); g.Width() != 0 || len(g.Values()) != 0 {
		t.Errorf("NewGrid(-1, 5) = %dx%d, want an empty grid", g.Width(), g.Height())
	}
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(0, 1, InSet)

	if got := g.At(2, 1); got != 7 {
		t.Errorf("At(2, 1) = %v, want 7", got)
	}
	if got := g.Values()[5]; got != 7 {
		t.Errorf("Values()[5] = %v, want 7 (row major)", got)
	}
	if !g.In(2, 1) || g.In(3, 1) || g.In(0, -1) {
		t.Errorf("In() disagrees with the bounds")
	}
}

func TestGridRowsRoundTrip(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2},
		{3, InSet, 5},
	}
	g := NewGridFromRows(rows)
	got := g.Rows()

	for y := range rows {
		for x := range rows[y] {
			if got[y][x] != rows[y][x] {
				t.Errorf("Rows()[%d][%d] = %v, want %v", y, x, got[y][x], rows[y][x])
			}
		}
	}

	got[0][0] = 99
	if g.At(0, 0) != 0 {
		t.Errorf("Rows() shares memory with the grid")
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, 3)

	clone := g.Clone()
	clone.Set(1, 1, 4)
	if g.At(1, 1) != 3 {
		t.Errorf("Clone() shares memory with the original")
	}
}
