package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/lucasb-eyer/go-colorful"
)

// Settings describe a gradient either by built-in name or by explicit hex
// colors and stops. Explicit colors win over a name.
type Settings struct {
	logger bslogger.Logger

	Gradient string
	Colors   []string
	Stops    []float64
	// Size overrides the palette size picked by the color method when > 0.
	Size int
}

func (s *Settings) String() string {
	output := "{PaletteSettings "
	output += fmt.Sprintf("Gradient: %s ", s.Gradient)
	output += fmt.Sprintf("Colors: %v ", s.Colors)
	output += fmt.Sprintf("Stops: %v ", s.Stops)
	output += fmt.Sprintf("Size: %d}", s.Size)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("PaletteSettings", bslogger.Normal, nil)

	if len(s.Colors) == 0 && s.Gradient == "" {
		s.Gradient = DefaultGradient
	}
	if len(s.Colors) > 0 && s.Gradient != "" {
		s.logger.Warningf("Both a gradient name and colors are set, ignoring gradient %s", s.Gradient)
		s.Gradient = ""
	}
	if s.Size < 0 {
		s.logger.Warningf("Ignoring palette size %d", s.Size)
		s.Size = 0
	}

	// Surface bad names and colors now rather than at the first render
	_, err := s.Resolve()
	return err
}

// Resolve returns the colors and stops the settings describe.
func (s *Settings) Resolve() (Stops, error) {
	if len(s.Colors) == 0 {
		name := s.Gradient
		if name == "" {
			name = DefaultGradient
		}
		return Lookup(name)
	}

	if len(s.Colors) != len(s.Stops) {
		return Stops{}, fmt.Errorf("%w: %d colors, %d stops", ErrMismatchedStops, len(s.Colors), len(s.Stops))
	}
	colors := make([]color.RGBA, len(s.Colors))
	for i, hex := range s.Colors {
		c, err := ParseHex(hex)
		if err != nil {
			return Stops{}, err
		}
		colors[i] = c
	}
	return Stops{Colors: colors, Stops: append([]float64(nil), s.Stops...)}, nil
}

// ParseHex reads "#rgb", "#rrggbb" or "#rrggbbaa". The alpha form is
// premultiplied, as color.RGBA requires.
func ParseHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	alpha := uint64(255)

	if len(hex) == 9 {
		var err error
		alpha, err = strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in %q - %w", hex, err)
		}
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q - %w", hex, err)
	}
	r, g, b := c.RGB255()

	nrgba := color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
