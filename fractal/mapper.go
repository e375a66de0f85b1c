package fractal

import (
	"math"

	"FractalExplorer/complexnum"
)

// BaseViewWidth is the width of the complex plane shown at zoom 1.
const BaseViewWidth = 3.0

// Mapper converts between pixel coordinates of a width x height surface and
// points on the complex plane.
type Mapper struct {
	width  int
	height int
}

func NewMapper(width int, height int) Mapper {
	return Mapper{width: width, height: height}
}

func (m Mapper) Width() int  { return m.width }
func (m Mapper) Height() int { return m.height }

// view returns the rectangle of the complex plane that is on screen. The
// height of the view follows the aspect ratio of the surface.
func (m Mapper) view(zoom float64, center complexnum.Number) (realMin, realMax, imagMin, imagMax float64) {
	aspectRatio := float64(m.height) / float64(m.width)

	viewWidth := BaseViewWidth / zoom
	viewHeight := viewWidth * aspectRatio

	realMin = center.Real() - viewWidth/2
	realMax = center.Real() + viewWidth/2
	imagMin = center.Imaginary() - viewHeight/2
	imagMax = center.Imaginary() + viewHeight/2
	return realMin, realMax, imagMin, imagMax
}

// PixelToComplex returns the point under pixel (x, y). Pixel rows grow
// downwards while the imaginary axis grows upwards, so y is flipped.
func (m Mapper) PixelToComplex(x int, y int, zoom float64, center complexnum.Number) complexnum.Number {
	realMin, realMax, imagMin, imagMax := m.view(zoom, center)

	re := realMin + (float64(x)/float64(m.width))*(realMax-realMin)
	im := imagMax - (float64(y)/float64(m.height))*(imagMax-imagMin)

	return complexnum.New(re, im)
}

// ComplexToPixel is the inverse of PixelToComplex, rounded to the nearest
// pixel. The result may lie outside the surface.
func (m Mapper) ComplexToPixel(c complexnum.Number, zoom float64, center complexnum.Number) (int, int) {
	realMin, realMax, imagMin, imagMax := m.view(zoom, center)

	x := ((c.Real() - realMin) / (realMax - realMin)) * float64(m.width)
	y := ((imagMax - c.Imaginary()) / (imagMax - imagMin)) * float64(m.height)

	return int(math.Round(x)), int(math.Round(y))
}
