package algocomplex

import "math"

// Sin returns sin(a)·cosh(b) + i·cos(a)·sinh(b) for z = a + bi.
func (z Complex) Sin() Complex {
	sin, cos := math.Sincos(z.Real)

	return New(sin*math.Cosh(z.Imag), cos*math.Sinh(z.Imag))
}

// Cos returns cos(a)·cosh(b) - i·sin(a)·sinh(b) for z = a + bi.
func (z Complex) Cos() Complex {
	sin, cos := math.Sincos(z.Real)

	return New(cos*math.Cosh(z.Imag), -(sin * math.Sinh(z.Imag)))
}

// Tan returns Sin(z) / Cos(z).
func (z Complex) Tan() Complex {
	return z.Sin().Div(z.Cos())
}

// Sinh returns sinh(a)·cos(b) + i·cosh(a)·sin(b) for z = a + bi.
func (z Complex) Sinh() Complex {
	sin, cos := math.Sincos(z.Imag)

	return New(math.Sinh(z.Real)*cos, math.Cosh(z.Real)*sin)
}

// Cosh returns cosh(a)·cos(b) + i·sinh(a)·sin(b) for z = a + bi.
func (z Complex) Cosh() Complex {
	sin, cos := math.Sincos(z.Imag)

	return New(math.Cosh(z.Real)*cos, math.Sinh(z.Real)*sin)
}

// Tanh returns Sinh(z) / Cosh(z).
func (z Complex) Tanh() Complex {
	return z.Sinh().Div(z.Cosh())
}

// The inverse functions below are the logarithmic identities evaluated with
// the principal Sqrt and Ln. Their branch cuts are whatever those identities
// produce; no cut is special-cased.

// Asin returns -i·ln(iz + √(1 - z²)).
func (z Complex) Asin() Complex {
	i := New(0, 1)
	root := New(1, 0).Sub(z.Mul(z)).Sqrt()

	return i.Neg().Mul(i.Mul(z).Add(root).Ln())
}

// Acos returns -i·ln(z + i·√(1 - z²)).
func (z Complex) Acos() Complex {
	i := New(0, 1)
	root := New(1, 0).Sub(z.Mul(z)).Sqrt()

	return i.Neg().Mul(z.Add(i.Mul(root)).Ln())
}

// Atan returns (i/2)·ln((1 - iz) / (1 + iz)).
func (z Complex) Atan() Complex {
	one := New(1, 0)
	iz := New(0, 1).Mul(z)

	return New(0, 0.5).Mul(one.Sub(iz).Div(one.Add(iz)).Ln())
}

// Asinh returns ln(z + √(z² + 1)).
func (z Complex) Asinh() Complex {
	return z.Add(z.Mul(z).AddReal(1).Sqrt()).Ln()
}

// Acosh returns ln(z + √(z² - 1)). For Re z < 0 this identity yields a
// negative real part, unlike the convention of math/cmplx.
func (z Complex) Acosh() Complex {
	return z.Add(z.Mul(z).SubReal(1).Sqrt()).Ln()
}

// Atanh returns ½·ln((1 + z) / (1 - z)).
func (z Complex) Atanh() Complex {
	one := New(1, 0)

	return one.Add(z).Div(one.Sub(z)).Ln().MulReal(0.5)
}
