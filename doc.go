// Package algocomplex provides Complex, a double-precision complex number
// value type with arithmetic, elementary and trigonometric functions, and
// textual rendering.
//
// Values are stored in rectangular form. Go has no operator overloading, so
// every operator is a named method: z.Add(w), z.MulReal(2), and so on. Each
// binary operator has an in-place counterpart on *Complex (AddAssign,
// MulRealAssign, ...) that produces exactly the same bits as the
// value-returning form.
//
// No operation reports an error. Division by zero, logarithms of zero and
// overflow all follow IEEE-754 rules and yield NaN or signed infinities.
// Multi-valued functions (Ln, Sqrt, Powc and the inverse trigonometric and
// hyperbolic functions) return principal values with the argument taken in
// (-π, π].
package algocomplex
