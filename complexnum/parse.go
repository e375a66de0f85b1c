package complexnum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned for complex number text that cannot be read back.
var ErrParse = errors.New("malformed complex number")

var closingBracket = map[byte]byte{
	'(': ')',
	'{': '}',
	'[': ']',
}

// String renders n as "(real, imaginary)" using the shortest representation
// that parses back to the identical float64 pair.
func (n Number) String() string {
	return "(" + formatFloat(n.real) + ", " + formatFloat(n.imaginary) + ")"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Parse reads the text form of a complex number. Exactly one bracket pair
// ("()", "{}" or "[]") is stripped and the body is split on a single ',' or
// '|'. The imaginary part may carry a trailing 'i', so the display form
// "{ 0.5 | 0.25i }" is accepted as well as "(0.5, 0.25)".
func Parse(text string) (Number, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 {
		return Number{}, fmt.Errorf("%w: %q is too short", ErrParse, text)
	}

	closing, ok := closingBracket[trimmed[0]]
	if !ok || trimmed[len(trimmed)-1] != closing {
		return Number{}, fmt.Errorf("%w: %q is not wrapped in a matching bracket pair", ErrParse, text)
	}
	body := trimmed[1 : len(trimmed)-1]

	delimiter := strings.IndexAny(body, ",|")
	if delimiter < 0 {
		return Number{}, fmt.Errorf("%w: %q has no ',' or '|' delimiter", ErrParse, text)
	}
	if strings.ContainsAny(body[delimiter+1:], ",|") {
		return Number{}, fmt.Errorf("%w: %q has more than one delimiter", ErrParse, text)
	}

	realText := strings.TrimSpace(body[:delimiter])
	imaginaryText := strings.TrimSpace(body[delimiter+1:])
	imaginaryText = strings.TrimSpace(strings.TrimSuffix(imaginaryText, "i"))

	re, err := strconv.ParseFloat(realText, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: real part %q - %s", ErrParse, realText, err)
	}
	im, err := strconv.ParseFloat(imaginaryText, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: imaginary part %q - %s", ErrParse, imaginaryText, err)
	}

	return New(re, im), nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// MarshalText lets settings files carry complex numbers in their text form.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
