package algocomplex

import "math"

// Complex is the value Real + Imag·i.
//
// Both parts may hold any float64 including NaN, ±Inf and -0. No
// normalization is applied.
type Complex struct {
	Real float64
	Imag float64
}

// Named units. The package never reads these variables itself.
var (
	// RealUnit is 1 + 0i.
	RealUnit = Complex{Real: 1, Imag: 0}

	// ImagUnit is 0 + 1i.
	ImagUnit = Complex{Real: 0, Imag: 1}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// WithReal returns r + 0i.
func WithReal(r float64) Complex {
	return New(r, 0)
}

// WithImag returns 0 + i·im.
func WithImag(im float64) Complex {
	return New(0, im)
}

// FromPolar returns the value with magnitude r at angle theta.
func FromPolar(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)

	return New(r*cos, r*sin)
}

// FromComplex128 converts Go's builtin complex type.
func FromComplex128(c complex128) Complex {
	return New(real(c), imag(c))
}

// Complex128 converts z to Go's builtin complex type.
func (z Complex) Complex128() complex128 {
	return complex(z.Real, z.Imag)
}

// Abs returns the magnitude |z|. It uses math.Hypot, so it does not
// overflow or underflow for parts whose squares would.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Real, z.Imag)
}

// Arg returns the principal argument in (-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Imag, z.Real)
}

// Norm returns the squared magnitude Real² + Imag².
func (z Complex) Norm() float64 {
	return z.Real*z.Real + z.Imag*z.Imag
}

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex {
	return New(z.Real, -z.Imag)
}

// Polar returns the magnitude and principal argument of z.
func (z Complex) Polar() (r, theta float64) {
	return z.Abs(), z.Arg()
}

// IsNaN reports whether either part is NaN.
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.Real) || math.IsNaN(z.Imag)
}

// IsInf reports whether either part is an infinity.
func (z Complex) IsInf() bool {
	return math.IsInf(z.Real, 0) || math.IsInf(z.Imag, 0)
}
