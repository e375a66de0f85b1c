package fractal

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMethod is returned when a coloring method name is not recognised.
var ErrUnknownMethod = errors.New("unknown coloring method")

// Method turns an escape Result into the value stored in the grid.
type Method int

const (
	// EscapeTime stores the raw iteration count.
	EscapeTime Method = iota
	// SmoothEscapeTime stores a continuous count that removes banding.
	SmoothEscapeTime
	// Rings stores the raw count; the grid is then run through the ring filter.
	Rings
)

var methodNames = []string{"escapetime", "smoothescapetime", "rings"}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

func ParseMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == normalized {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Value maps a result to a grid value. Bounded results are always InSet.
//
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
// The smooth estimate needs |z|^2 > 1 for ln(ln(|z|^2)) to exist, which holds
// for any escaped point while the boundary is above 1.
func (m Method) Value(r Result) float64 {
	if !r.Escaped {
		return InSet
	}

	i := float64(r.Iteration)
	switch m {
	case SmoothEscapeTime:
		return 10 * (i + 1 - math.Log(math.Log(r.Z.DistSqr()))/math.Ln2)
	default:
		return i
	}
}

// Defaults are the palette scroll delta and palette size that suit the
// method's value range. Smooth values are ten times larger than counts.
func (m Method) Defaults() (scrollDelta int, paletteSize int) {
	switch m {
	case SmoothEscapeTime:
		return 10, 1000
	case Rings:
		return 1, 25
	default:
		return 1, 33
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
