package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownGradient = errors.New("unknown gradient")

// DefaultGradient is used when settings name no gradient and give no colors.
const DefaultGradient = "favorite"

// Stops pairs the colors of a named gradient with their positions.
type Stops struct {
	Colors []color.RGBA
	Stops  []float64
}

func rgb(r uint8, g uint8, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var builtins = map[string]Stops{
	"fire": {
		Colors: []color.RGBA{rgb(0, 0, 0), rgb(40, 0, 0), rgb(180, 20, 0), rgb(255, 80, 0), rgb(255, 200, 40), rgb(255, 255, 200)},
		Stops:  []float64{0, 0.02, 0.10, 0.25, 0.55, 1},
	},
	"iceaurora": {
		Colors: []color.RGBA{rgb(0, 0, 20), rgb(0, 40, 100), rgb(0, 200, 255), rgb(80, 255, 180), rgb(180, 255, 220), rgb(255, 255, 255)},
		Stops:  []float64{0, 0.10, 0.30, 0.50, 0.75, 1},
	},
	"sunset": {
		Colors: []color.RGBA{rgb(10, 10, 30), rgb(60, 10, 90), rgb(200, 40, 120), rgb(255, 120, 60), rgb(255, 200, 80), rgb(255, 240, 180)},
		Stops:  []float64{0, 0.15, 0.35, 0.60, 0.80, 1},
	},
	"ocean": {
		Colors: []color.RGBA{rgb(0, 0, 20), rgb(0, 30, 80), rgb(0, 110, 160), rgb(20, 180, 200), rgb(160, 240, 255), rgb(240, 255, 255)},
		Stops:  []float64{0, 0.10, 0.35, 0.60, 0.85, 1},
	},
	"forest": {
		Colors: []color.RGBA{rgb(5, 20, 0), rgb(10, 70, 20), rgb(30, 140, 40), rgb(120, 200, 80), rgb(200, 240, 160), rgb(250, 255, 240)},
		Stops:  []float64{0, 0.10, 0.35, 0.65, 0.90, 1},
	},
	"neon": {
		Colors: []color.RGBA{rgb(5, 0, 30), rgb(60, 0, 140), rgb(0, 200, 255), rgb(0, 255, 140), rgb(255, 80, 180)},
		Stops:  []float64{0, 0.20, 0.45, 0.70, 1},
	},
	"lava": {
		Colors: []color.RGBA{rgb(5, 0, 0), rgb(80, 0, 0), rgb(180, 30, 0), rgb(255, 90, 0), rgb(255, 200, 20), rgb(255, 255, 180)},
		Stops:  []float64{0, 0.10, 0.35, 0.60, 0.85, 1},
	},
	"pastel": {
		Colors: []color.RGBA{rgb(250, 240, 255), rgb(240, 220, 255), rgb(255, 200, 230), rgb(255, 235, 200), rgb(240, 255, 230)},
		Stops:  []float64{0, 0.20, 0.45, 0.70, 1},
	},
	"galaxy": {
		Colors: []color.RGBA{rgb(0, 0, 15), rgb(20, 10, 70), rgb(80, 40, 180), rgb(120, 180, 255), rgb(255, 240, 200)},
		Stops:  []float64{0, 0.12, 0.30, 0.60, 1},
	},
	"earth": {
		Colors: []color.RGBA{rgb(2, 20, 60), rgb(0, 90, 140), rgb(24, 140, 80), rgb(34, 100, 40), rgb(120, 90, 60), rgb(245, 245, 250)},
		Stops:  []float64{0, 0.12, 0.30, 0.55, 0.78, 1},
	},
	"sky": {
		Colors: []color.RGBA{rgb(3, 8, 30), rgb(20, 40, 90), rgb(15, 110, 220), rgb(150, 200, 245), rgb(255, 210, 160)},
		Stops:  []float64{0, 0.18, 0.45, 0.75, 1},
	},
	"favorite": {
		Colors: []color.RGBA{rgb(0, 0, 0), rgb(255, 204, 0), rgb(135, 31, 19), rgb(0, 0, 153), rgb(0, 77, 255), rgb(0, 0, 0)},
		Stops:  []float64{0, 1.0 / 6, 2.0 / 6, 4.0 / 6, 5.0 / 6, 1},
	},
	"surlendemain": {
		Colors: []color.RGBA{
			rgb(0, 0, 0), rgb(30, 52, 63), rgb(26, 41, 43), rgb(4, 8, 12), rgb(12, 8, 4), rgb(210, 70, 20),
			rgb(255, 100, 40), rgb(160, 40, 20), rgb(100, 90, 75), rgb(45, 40, 35), rgb(35, 38, 45),
		},
		Stops: []float64{0, 0.10, 0.20, 0.30, 0.40, 0.50, 0.60, 0.70, 0.80, 0.90, 1},
	},
	"rainbow": Rainbow(7),
}

// Names lists the built-in gradients in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named built-in gradient.
func Lookup(name string) (Stops, error) {
	s, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Stops{}, fmt.Errorf("%w: %q", ErrUnknownGradient, name)
	}
	return Stops{
		Colors: append([]color.RGBA(nil), s.Colors...),
		Stops:  append([]float64(nil), s.Stops...),
	}, nil
}

// Rainbow spreads n fully saturated hues evenly around the color wheel, ending
// back on red so the palette wraps without a seam. n under 2 is raised to 2.
func Rainbow(n int) Stops {
	if n < 2 {
		n = 2
	}
	s := Stops{
		Colors: make([]color.RGBA, n),
		Stops:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		c := colorful.Hsv(math.Mod(t*360, 360), 1.0, 1.0)
		r, g, b := c.RGB255()
		s.Colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
		s.Stops[i] = t
	}
	return s
}
