package filter

import (
	"testing"

	"FractalExplorer/fractal"
)

func uniform(width int, height int, value float64) *fractal.Grid {
	g := fractal.NewGrid(width, height)
	for i := range g.Values() {
		g.Values()[i] = value
	}
	return g
}

func sum(g *fractal.Grid) float64 {
	total := 0.0
	for _, v := range g.Values() {
		total += v
	}
	return total
}

func TestEdgesUniformGridIsZero(t *testing.T) {
	for _, value := range []float64{0, 7, fractal.InSet} {
		edges := Edges(uniform(12, 9, value), 1)
		if got := sum(edges); got != 0 {
			t.Errorf("Edges(uniform %v) sum = %v, want 0", value, got)
		}
	}
}

func TestEdgesMarksBoundary(t *testing.T) {
	// Left half 1, right half 2: columns 3 and 4 sit on the boundary.
	g := fractal.NewGrid(8, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				g.Set(x, y, 1)
			} else {
				g.Set(x, y, 2)
			}
		}
	}

	edges := Edges(g, 1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			want := 0.0
			if (x == 3 || x == 4) && y >= 1 && y <= 3 {
				want = 1
			}
			if got := edges.At(x, y); got != want {
				t.Errorf("Edges().At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEdgesCheckRadiusWidensMargin(t *testing.T) {
	g := fractal.NewGrid(9, 9)
	for i := range g.Values() {
		g.Values()[i] = float64(i)
	}

	edges := Edges(g, 3)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := 0.0
			if x >= 3 && x < 6 && y >= 3 && y < 6 {
				want = 1
			}
			if got := edges.At(x, y); got != want {
				t.Errorf("Edges(r=3).At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// A radius of 0 still keeps the neighbours in range.
	if got := sum(Edges(g, 0)); got != 7*7 {
		t.Errorf("Edges(r=0) sum = %v, want %v", got, 7*7)
	}
}

func TestRingsSmallRadiusReturnsEdges(t *testing.T) {
	g := fractal.NewGrid(6, 6)
	g.Set(2, 2, 5)
	edges := Edges(g, 1)

	for _, radius := range []int{0, -2} {
		rings := Rings(g, radius, 1, true)
		for i, v := range rings.Values() {
			if v != edges.Values()[i] {
				t.Fatalf("Rings(radius=%d) differs from Edges at %d", radius, i)
			}
		}
	}
}

func TestDiscSum(t *testing.T) {
	edges := fractal.NewGrid(7, 7)
	edges.Set(3, 3, 1)
	original := uniform(7, 7, 4)

	summed := DiscSum(edges, original, 2, true)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			dx, dy := x-3, y-3
			want := 0.0
			if dx*dx+dy*dy <= 4 {
				want = 1
			}
			if got := summed.At(x, y); got != want {
				t.Errorf("DiscSum().At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDiscSumClipsAtBorder(t *testing.T) {
	edges := uniform(4, 4, 1)
	original := uniform(4, 4, 0)

	summed := DiscSum(edges, original, 1, true)
	// corner: itself plus two neighbours, edge: four, interior: five
	if got := summed.At(0, 0); got != 3 {
		t.Errorf("corner = %v, want 3", got)
	}
	if got := summed.At(1, 0); got != 4 {
		t.Errorf("border = %v, want 4", got)
	}
	if got := summed.At(1, 1); got != 5 {
		t.Errorf("interior = %v, want 5", got)
	}
}

func TestDiscSumSkipsInSet(t *testing.T) {
	edges := uniform(5, 5, 1)
	original := uniform(5, 5, 2)
	original.Set(2, 2, fractal.InSet)

	if got := DiscSum(edges, original, 1, true).At(2, 2); got != 0 {
		t.Errorf("DiscSum(skip).At(2, 2) = %v, want 0", got)
	}
	if got := DiscSum(edges, original, 1, false).At(2, 2); got != 5 {
		t.Errorf("DiscSum(no skip).At(2, 2) = %v, want 5", got)
	}
}
