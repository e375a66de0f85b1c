package fractal

import (
	"math"
	"testing"

	"FractalExplorer/complexnum"
)

func TestPixelToComplexCorners(t *testing.T) {
	m := NewMapper(300, 200)
	center := complexnum.New(-0.5, 0)

	topLeft := m.PixelToComplex(0, 0, 1, center)
	if topLeft.Real() != -2 || topLeft.Imaginary() != 1 {
		t.Errorf("PixelToComplex(0, 0) = %v, want (-2, 1)", topLeft)
	}

	middle := m.PixelToComplex(150, 100, 1, center)
	if math.Abs(middle.Real()+0.5) > 1e-12 || math.Abs(middle.Imaginary()) > 1e-12 {
		t.Errorf("PixelToComplex(150, 100) = %v, want %v", middle, center)
	}
}

func TestPixelToComplexFlipsY(t *testing.T) {
	m := NewMapper(100, 100)

	top := m.PixelToComplex(50, 10, 1, origin)
	bottom := m.PixelToComplex(50, 90, 1, origin)
	if top.Imaginary() <= bottom.Imaginary() {
		t.Errorf("imaginary part at row 10 (%v) should exceed row 90 (%v)", top.Imaginary(), bottom.Imaginary())
	}
}

func TestZoomNarrowsView(t *testing.T) {
	m := NewMapper(100, 100)

	for _, zoom := range []float64{0.5, 1, 2, 10} {
		left := m.PixelToComplex(0, 50, zoom, origin)
		right := m.PixelToComplex(100, 50, zoom, origin)
		if got, want := right.Real()-left.Real(), BaseViewWidth/zoom; math.Abs(got-want) > 1e-12 {
			t.Errorf("view width at zoom %v = %v, want %v", zoom, got, want)
		}
	}
}

func TestMapperRoundTrip(t *testing.T) {
	surfaces := []Mapper{NewMapper(80, 60), NewMapper(64, 64), NewMapper(33, 97)}
	zooms := []float64{0.5, 1, 5, 1e3}
	center := complexnum.New(-0.743, 0.131)

	for _, m := range surfaces {
		for _, zoom := range zooms {
			for y := 0; y < m.Height(); y += 7 {
				for x := 0; x < m.Width(); x += 5 {
					c := m.PixelToComplex(x, y, zoom, center)
					gotX, gotY := m.ComplexToPixel(c, zoom, center)
					if abs(gotX-x) > 1 || abs(gotY-y) > 1 {
						t.Fatalf("%dx%d zoom %v: (%d, %d) -> %v -> (%d, %d)",
							m.Width(), m.Height(), zoom, x, y, c, gotX, gotY)
					}
				}
			}
		}
	}
}

func TestComplexToPixelCenter(t *testing.T) {
	m := NewMapper(80, 60)
	center := complexnum.New(0.25, -0.1)

	x, y := m.ComplexToPixel(center, 3, center)
	if x != 40 || y != 30 {
		t.Errorf("ComplexToPixel(center) = (%d, %d), want (40, 30)", x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
