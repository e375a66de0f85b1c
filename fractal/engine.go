package fractal

import (
	"math"

	"FractalExplorer/complexnum"
)

// Result is the terminal state of one point's orbit.
type Result struct {
	// Iteration is the step at which the orbit stopped.
	Iteration int
	// Z is the last iterate computed.
	Z complexnum.Number
	// Escaped is set when |Z|^2 passed the boundary.
	Escaped bool
	// Converged is set when |Z|^2 fell under epsilon. Orbits that run out of
	// iterations are neither escaped nor converged; both count as in the set.
	Converged bool
}

// Engine evaluates escape times with a fixed snapshot of Settings. The zero
// value is not usable, build one with NewEngine.
type Engine struct {
	settings Settings
}

// NewEngine verifies the settings and freezes them into an Engine. Unusable
// values have already been replaced with defaults and logged by Verify, the
// engine still runs with them.
func NewEngine(settings Settings) Engine {
	if err := settings.Verify(); err != nil {
		settings.logger.Warningf("Engine is running with default values: %v", err)
	}
	return Engine{settings: settings}
}

func (e Engine) Settings() Settings {
	return e.settings
}

// Escape iterates the variant's recurrence from z with constant c, exponent n
// and phoenix coefficient p.
//
// The exponent is not validated here: n <= 0 makes the iterates undefined and
// the NaN/Inf values are allowed to propagate.
func (e Engine) Escape(v Variant, z complexnum.Number, c complexnum.Number, n float64, p complexnum.Number) Result {
	return e.iterate(v, z, c, n, p, nil)
}

// Value runs Escape and maps the result through the configured Method.
func (e Engine) Value(v Variant, z complexnum.Number, c complexnum.Number, n float64, p complexnum.Number) float64 {
	return e.settings.Method.Value(e.iterate(v, z, c, n, p, nil))
}

// Orbit returns every iterate up to and including the one that escaped or
// converged.
func (e Engine) Orbit(v Variant, z complexnum.Number, c complexnum.Number, n float64, p complexnum.Number) []complexnum.Number {
	orbit := make([]complexnum.Number, 0, 64)
	e.iterate(v, z, c, n, p, func(next complexnum.Number) {
		orbit = append(orbit, next)
	})
	return orbit
}

func (e Engine) iterate(v Variant, z complexnum.Number, c complexnum.Number, n float64, p complexnum.Number, visit func(complexnum.Number)) Result {
	var prev complexnum.Number
	boundary, epsilon := e.settings.Boundary, e.settings.Epsilon

	for i := 0; i < e.settings.MaxIterations; i++ {
		next := step(v, z, prev, c, n, p)
		if visit != nil {
			visit(next)
		}

		dist := next.DistSqr()
		if dist > boundary {
			return Result{Iteration: i, Z: next, Escaped: true}
		}
		if dist < epsilon {
			return Result{Iteration: i, Z: next, Converged: true}
		}

		prev, z = z, next
	}

	return Result{Iteration: e.settings.MaxIterations, Z: z}
}

// step computes the next iterate. prev is only read by Phoenix.
func step(v Variant, z complexnum.Number, prev complexnum.Number, c complexnum.Number, n float64, p complexnum.Number) complexnum.Number {
	switch v {
	case BurningShip:
		return z.Abs().Pow(n).Add(c)
	case Tricorn:
		return z.Conjugate().Pow(n).Add(c)
	case Celtic:
		zn := z.Pow(n)
		return complexnum.New(math.Abs(zn.Real()), zn.Imaginary()).Add(c)
	case Lambda:
		return c.Multiply(z.Multiply(z.SubtractReal(-1)))
	case Phoenix:
		return z.Pow(n).Add(c).Add(p.Multiply(prev))
	default:
		return z.Pow(n).Add(c)
	}
}
