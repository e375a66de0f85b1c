package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"FractalExplorer/misc"
)

var (
	ErrMismatchedStops = errors.New("colors and stops differ in length")
	ErrNoColors        = errors.New("gradient has no colors")
	ErrInvalidSize     = errors.New("palette size must be positive")
)

// Black is the fallback color of an empty or degenerate palette.
var Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Gradient interpolates between colors anchored at stops in [0, 1] and
// samples itself into a palette for fast lookup.
//
// A Gradient is rebuilt with SetColors and GeneratePalette; Color only reads
// the palette and may be called from many goroutines between rebuilds.
type Gradient struct {
	colors  []color.RGBA
	stops   []float64
	palette []color.RGBA
}

// NewGradient returns a gradient with its colors set and a palette of size+1
// entries generated.
func NewGradient(colors []color.RGBA, stops []float64, size int) (*Gradient, error) {
	g := &Gradient{}
	if err := g.SetColors(colors, stops); err != nil {
		return nil, err
	}
	if err := g.GeneratePalette(size); err != nil {
		return nil, err
	}
	return g, nil
}

// SetColors replaces the stops. stops should be non-decreasing and run from 0
// to 1; this is not checked. The palette is not regenerated.
func (g *Gradient) SetColors(colors []color.RGBA, stops []float64) error {
	if len(colors) == 0 || len(stops) == 0 {
		return ErrNoColors
	}
	if len(colors) != len(stops) {
		return fmt.Errorf("%w: %d colors, %d stops", ErrMismatchedStops, len(colors), len(stops))
	}

	g.colors = append([]color.RGBA(nil), colors...)
	g.stops = append([]float64(nil), stops...)
	return nil
}

func (g *Gradient) Colors() []color.RGBA {
	return append([]color.RGBA(nil), g.colors...)
}

func (g *Gradient) Stops() []float64 {
	return append([]float64(nil), g.stops...)
}

// GeneratePalette samples the gradient at size+1 evenly spaced points. With no
// colors set, or a size under 1, the palette becomes a single black entry;
// the size case also reports ErrInvalidSize.
func (g *Gradient) GeneratePalette(size int) error {
	if size <= 0 {
		g.palette = []color.RGBA{Black}
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if len(g.colors) == 0 || len(g.colors) != len(g.stops) {
		g.palette = []color.RGBA{Black}
		return nil
	}

	palette := make([]color.RGBA, size+1)
	for i := range palette {
		palette[i] = g.InterpolatedColor(float64(i) / float64(size))
	}
	g.palette = palette
	return nil
}

// Palette returns the generated colors.
func (g *Gradient) Palette() []color.RGBA {
	return g.palette
}

func (g *Gradient) Len() int {
	return len(g.palette)
}

// InterpolatedColor blends the two stops around percent. percent is clamped
// to [0, 1] and a zero width interval yields its left color.
func (g *Gradient) InterpolatedColor(percent float64) color.RGBA {
	if len(g.colors) == 0 || len(g.colors) != len(g.stops) {
		return Black
	}

	percent = math.Max(0, math.Min(1, percent))
	last := len(g.stops) - 1

	if len(g.colors) == 1 || percent <= g.stops[0] {
		return g.colors[0]
	}
	if percent >= g.stops[last] {
		return g.colors[last]
	}

	for i := 1; i <= last; i++ {
		left, right := g.stops[i-1], g.stops[i]
		if percent >= left && percent <= right {
			weight := 0.0
			if right-left != 0 {
				weight = (percent - left) / (right - left)
			}
			return blend(g.colors[i-1], g.colors[i], weight)
		}
	}

	// Only reachable when the stops are out of order
	return Black
}

// Color looks value up in the palette, wrapping around in both directions so
// the palette repeats as the value grows. Values that are not finite use the
// first entry.
func (g *Gradient) Color(value float64) color.RGBA {
	length := len(g.palette)
	if length == 0 {
		return Black
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return g.palette[0]
	}

	l := float64(length)
	index := int(math.Mod(math.Mod(value, l)+l, l))
	return g.palette[index]
}

func blend(from color.RGBA, to color.RGBA, weight float64) color.RGBA {
	weight = math.Max(0, math.Min(1, weight))
	return color.RGBA{
		R: misc.LerpUint8(from.R, to.R, weight),
		G: misc.LerpUint8(from.G, to.G, weight),
		B: misc.LerpUint8(from.B, to.B, weight),
		A: misc.LerpUint8(from.A, to.A, weight),
	}
}
