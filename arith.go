package algocomplex

// Neg returns -z.
func (z Complex) Neg() Complex {
	return New(-z.Real, -z.Imag)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return New(z.Real+w.Real, z.Imag+w.Imag)
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return New(z.Real-w.Real, z.Imag-w.Imag)
}

// Mul returns z·w.
func (z Complex) Mul(w Complex) Complex {
	return New(
		z.Real*w.Real-z.Imag*w.Imag,
		z.Real*w.Imag+z.Imag*w.Real,
	)
}

// Div returns z / w, computed as z·conj(w) / Norm(w).
//
// A zero divisor is not an error: the parts become NaN or signed infinities
// under IEEE division.
func (z Complex) Div(w Complex) Complex {
	denom := w.Norm()

	return New(
		(z.Real*w.Real+z.Imag*w.Imag)/denom,
		(z.Imag*w.Real-z.Real*w.Imag)/denom,
	)
}

// Inv returns 1 / z.
func (z Complex) Inv() Complex {
	return New(1, 0).Div(z)
}

// AddReal returns z + s. Only the real part changes.
func (z Complex) AddReal(s float64) Complex {
	return New(z.Real+s, z.Imag)
}

// SubReal returns z - s. Only the real part changes.
func (z Complex) SubReal(s float64) Complex {
	return New(z.Real-s, z.Imag)
}

// MulReal returns z·s.
func (z Complex) MulReal(s float64) Complex {
	return New(z.Real*s, z.Imag*s)
}

// DivReal returns z / s.
func (z Complex) DivReal(s float64) Complex {
	return New(z.Real/s, z.Imag/s)
}

// In-place variants. Each assigns the result of the matching value method,
// so the bits are identical to z = z.Op(w).

// AddAssign sets z to z + w.
func (z *Complex) AddAssign(w Complex) {
	*z = z.Add(w)
}

// SubAssign sets z to z - w.
func (z *Complex) SubAssign(w Complex) {
	*z = z.Sub(w)
}

// MulAssign sets z to z·w.
func (z *Complex) MulAssign(w Complex) {
	*z = z.Mul(w)
}

// DivAssign sets z to z / w.
func (z *Complex) DivAssign(w Complex) {
	*z = z.Div(w)
}

// AddRealAssign sets z to z + s.
func (z *Complex) AddRealAssign(s float64) {
	*z = z.AddReal(s)
}

// SubRealAssign sets z to z - s.
func (z *Complex) SubRealAssign(s float64) {
	*z = z.SubReal(s)
}

// MulRealAssign sets z to z·s.
func (z *Complex) MulRealAssign(s float64) {
	*z = z.MulReal(s)
}

// DivRealAssign sets z to z / s.
func (z *Complex) DivRealAssign(s float64) {
	*z = z.DivReal(s)
}
