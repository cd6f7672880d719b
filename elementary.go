package algocomplex

import "math"

// Exp returns e^z = e^Real·(cos Imag + i·sin Imag).
func (z Complex) Exp() Complex {
	scale := math.Exp(z.Real)
	sin, cos := math.Sincos(z.Imag)

	return New(scale*cos, scale*sin)
}

// Ln returns the principal natural logarithm (ln|z|, Arg z).
// The branch cut runs along the negative real axis.
func (z Complex) Ln() Complex {
	return New(math.Log(z.Abs()), z.Arg())
}

// Log2 returns (log₂|z|, Arg z).
func (z Complex) Log2() Complex {
	return New(math.Log2(z.Abs()), z.Arg())
}

// Log10 returns (log₁₀|z|, Arg z).
func (z Complex) Log10() Complex {
	return New(math.Log10(z.Abs()), z.Arg())
}

// Log returns (log_base |z|, Arg z). Only the magnitude logarithm depends
// on base.
func (z Complex) Log(base float64) Complex {
	return New(math.Log(z.Abs())/math.Log(base), z.Arg())
}

// Sqrt returns the principal square root, √|z| at angle Arg(z)/2. The real
// part of the result is never negative.
func (z Complex) Sqrt() Complex {
	return FromPolar(math.Sqrt(z.Abs()), z.Arg()/2)
}

// Powi returns z^n for an integer exponent, |z|^n at angle n·Arg(z).
// Powi(0) is 1 for every finite z, including zero.
func (z Complex) Powi(n int) Complex {
	exp := float64(n)

	return FromPolar(math.Pow(z.Abs(), exp), exp*z.Arg())
}

// Powf returns z^e for a real exponent, |z|^e at angle e·Arg(z).
// For z == 0 the magnitude follows math.Pow(0, e).
func (z Complex) Powf(e float64) Complex {
	return FromPolar(math.Pow(z.Abs(), e), e*z.Arg())
}

// Powc returns z^e = exp(e·ln z) on the principal branch of Ln.
func (z Complex) Powc(e Complex) Complex {
	return e.Mul(z.Ln()).Exp()
}
