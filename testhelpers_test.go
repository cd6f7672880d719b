package algocomplex

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplexTolf(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	diff := got.Sub(want).Abs()
	if !(diff <= tol) {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, diff)...)
	}
}

func assertApproxFloatTolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if !(math.Abs(got-want) <= tol) {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

func assertBitsEqual(t *testing.T, got, want Complex, format string, args ...any) {
	t.Helper()

	if math.Float64bits(got.Real) != math.Float64bits(want.Real) ||
		math.Float64bits(got.Imag) != math.Float64bits(want.Imag) {
		t.Fatalf(format+": got %#v want %#v", append(args, got, want)...)
	}
}

// randomComplex returns n values with both parts uniform in [-scale, scale).
func randomComplex(n int, seed int64, scale float64) []Complex {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]Complex, n)
	for i := range out {
		out[i] = New((2*rnd.Float64()-1)*scale, (2*rnd.Float64()-1)*scale)
	}

	return out
}

// relTol scales a relative tolerance by the magnitude of the operands.
func relTol(rel float64, zs ...Complex) float64 {
	m := 1.0
	for _, z := range zs {
		m += z.Abs()
	}

	return rel * m
}
