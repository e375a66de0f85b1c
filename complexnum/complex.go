package complexnum

import (
	"math"
)

// Number is an immutable complex number. Every operation returns a new Number.
//
// The polar form (magnitude and angle) is computed once when the value is
// built, so the zero value is the origin with magnitude 0 and angle 0.
type Number struct {
	real      float64
	imaginary float64

	magnitude float64
	angle     float64
}

// New builds the complex number real + imaginary*i.
func New(real float64, imaginary float64) Number {
	angle := math.Atan2(imaginary, real)
	// Keep the angle in (-pi, pi] when the imaginary part is negative zero
	if angle == -math.Pi {
		angle = math.Pi
	}
	return Number{
		real:      real,
		imaginary: imaginary,
		magnitude: math.Sqrt(real*real + imaginary*imaginary),
		angle:     angle,
	}
}

// FromComplex converts a builtin complex128.
func FromComplex(c complex128) Number {
	return New(real(c), imag(c))
}

// Complex128 converts n to the builtin complex type.
func (n Number) Complex128() complex128 {
	return complex(n.real, n.imaginary)
}

func (n Number) Real() float64      { return n.real }
func (n Number) Imaginary() float64 { return n.imaginary }

// Magnitude is the distance from the origin.
func (n Number) Magnitude() float64 { return n.magnitude }

// Angle is the argument of n in (-pi, pi].
func (n Number) Angle() float64 { return n.angle }

// DistSqr is the squared distance from the origin, which avoids the sqrt
// when only comparing against a threshold.
func (n Number) DistSqr() float64 {
	return n.real*n.real + n.imaginary*n.imaginary
}

func (n Number) Add(other Number) Number {
	return New(n.real+other.real, n.imaginary+other.imaginary)
}

func (n Number) Subtract(other Number) Number {
	return New(n.real-other.real, n.imaginary-other.imaginary)
}

// Multiply returns n*other. The real part loses i*i = -1.
func (n Number) Multiply(other Number) Number {
	return New(
		n.real*other.real-n.imaginary*other.imaginary,
		n.real*other.imaginary+other.real*n.imaginary,
	)
}

// Scale multiplies both components by s.
func (n Number) Scale(s float64) Number {
	return New(n.real*s, n.imaginary*s)
}

// Abs takes the absolute value of each component. It is not the modulus,
// see Magnitude for that.
func (n Number) Abs() Number {
	return New(math.Abs(n.real), math.Abs(n.imaginary))
}

func (n Number) Conjugate() Number {
	return New(n.real, -n.imaginary)
}

func (n Number) AddReal(r float64) Number {
	return New(n.real+r, n.imaginary)
}

func (n Number) SubtractReal(r float64) Number {
	return New(n.real-r, n.imaginary)
}

// Pow raises n to the real power p using the polar form, which gives the
// principal branch for non-integer p.
//
// The origin maps to the origin for p > 0. For p <= 0 nothing is special
// cased: the origin yields math.Pow(0, p) (1 or +Inf) and the iterates of
// any recurrence built on it are undefined.
func (n Number) Pow(p float64) Number {
	newR := math.Pow(n.magnitude, p)
	newTheta := n.angle * p
	sin, cos := math.Sincos(newTheta)
	return New(newR*cos, newR*sin)
}

// Equal compares both components exactly.
func (n Number) Equal(other Number) bool {
	return n.real == other.real && n.imaginary == other.imaginary
}
