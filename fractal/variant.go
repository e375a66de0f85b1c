package fractal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a variant name does not match any Variant.
var ErrUnknownVariant = errors.New("unknown fractal variant")

// Variant selects the recurrence iterated for each point.
// http://usefuljs.net/fractals/docs/mandelvariants.html
type Variant int

const (
	// Mandel is z = z^n + c
	Mandel Variant = iota
	// BurningShip is z = (|re(z)|, |im(z)|)^n + c
	BurningShip
	// Tricorn is z = conj(z)^n + c
	Tricorn
	// Celtic is z = (|re(z^n)|, im(z^n)) + c
	Celtic
	// Lambda is z = c * z * (1 + z), c acting as lambda
	Lambda
	// Phoenix is z = z^n + c + p * z_prev
	Phoenix
)

var variantNames = []string{
	"mandel", "burningship", "tricorn", "celtic", "lambda", "phoenix",
}

// Variants lists every Variant in declaration order.
func Variants() []Variant {
	variants := make([]Variant, len(variantNames))
	for i := range variantNames {
		variants[i] = Variant(i)
	}
	return variants
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant looks a variant up by name, ignoring case and surrounding
// whitespace.
func ParseVariant(name string) (Variant, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range variantNames {
		if n == normalized {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// FlipsRows reports whether the variant's grid is stored upside down. Burning
// ship is drawn with its rows flipped so the "ship" sits upright.
func (v Variant) FlipsRows() bool {
	return v == BurningShip
}

func (v Variant) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(variantNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
