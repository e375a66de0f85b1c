package fractal

import (
	"errors"
	"fmt"
	"math"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultBoundary      = 4.0
	DefaultEpsilon       = 0.000000001
	DefaultMaxIterations = 1000
)

var ErrInvalidSettings = errors.New("invalid engine settings")

// Settings are the engine wide tunables. They are copied into an Engine, so
// changing them never reaches an update that is already running.
type Settings struct {
	logger bslogger.Logger

	// Boundary is the squared distance past which a point has escaped.
	Boundary float64
	// Epsilon is the squared distance under which a point has converged to the origin.
	Epsilon       float64
	MaxIterations int
	Method        Method
}

func DefaultSettings() Settings {
	return Settings{
		Boundary:      DefaultBoundary,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Method:        EscapeTime,
	}
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Boundary: %g ", s.Boundary)
	output += fmt.Sprintf("Epsilon: %g ", s.Epsilon)
	output += fmt.Sprintf("MaxIterations: %d ", s.MaxIterations)
	output += fmt.Sprintf("Method: %s}", s.Method)
	return output
}

// CheckMaxIterations reports whether n can be used as the iteration cap.
func CheckMaxIterations(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: max iterations %d must be positive", ErrInvalidSettings, n)
	}
	return nil
}

// CheckEpsilon reports whether e can be used as the convergence threshold.
func CheckEpsilon(e float64) error {
	if !(e > 0) || math.IsInf(e, 0) {
		return fmt.Errorf("%w: epsilon %g must be positive and finite", ErrInvalidSettings, e)
	}
	return nil
}

// Verify fills missing (zero) values with their defaults. Values that are set
// but unusable are replaced too, with a warning, and reported as an error
// wrapping ErrInvalidSettings.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("FractalSettings", bslogger.Normal, nil)

	var invalid []error
	if s.Boundary <= 0 || math.IsNaN(s.Boundary) || math.IsInf(s.Boundary, 0) {
		if s.Boundary != 0 {
			invalid = append(invalid, fmt.Errorf("%w: boundary %g must be positive and finite", ErrInvalidSettings, s.Boundary))
			s.logger.Warningf("Boundary %g is unusable, using %g", s.Boundary, float64(DefaultBoundary))
		}
		s.Boundary = DefaultBoundary
	}
	if err := CheckEpsilon(s.Epsilon); err != nil {
		if s.Epsilon != 0 {
			invalid = append(invalid, err)
			s.logger.Warningf("Epsilon %g is unusable, using %g", s.Epsilon, DefaultEpsilon)
		}
		s.Epsilon = DefaultEpsilon
	}
	if err := CheckMaxIterations(s.MaxIterations); err != nil {
		if s.MaxIterations != 0 {
			invalid = append(invalid, err)
			s.logger.Warningf("Max iterations %d is unusable, using %d", s.MaxIterations, DefaultMaxIterations)
		}
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Method < EscapeTime || s.Method > Rings {
		s.logger.Warningf("Unknown method %d, using %s", int(s.Method), EscapeTime)
		s.Method = EscapeTime
	}
	// The smooth estimate takes ln(ln(|z|^2)) of an escaped point
	if s.Method == SmoothEscapeTime && s.Boundary <= 1 {
		s.logger.Warningf("Boundary %g is too small for %s, values will be NaN", s.Boundary, s.Method)
	}

	return errors.Join(invalid...)
}
