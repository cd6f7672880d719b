// Package calc exposes the operations of algocomplex by name, so that tools
// such as the cplx command and the benchmark runner can select them from
// strings.
package calc

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	algocomplex "github.com/cwbudde/algo-complex"
)

// Kind describes which operands a function takes.
type Kind uint8

const (
	KindUnary  Kind = iota // f(z)
	KindParam              // f(z, p) with a real parameter
	KindBinary             // f(z, w)
	KindScalar             // f(z) returning a real number
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnary:
		return "unary"
	case KindParam:
		return "param"
	case KindBinary:
		return "binary"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Args holds the operands of a single application.
type Args struct {
	Z        algocomplex.Complex
	W        algocomplex.Complex
	Param    float64
	HasW     bool
	HasParam bool
}

// Result is either a complex value or, for KindScalar functions, a real one.
type Result struct {
	Value    algocomplex.Complex
	Scalar   float64
	IsScalar bool
}

// Text renders the result with prec fractional digits; prec < 0 selects the
// shortest form. Scalar results render as a plain real number.
func (r Result) Text(prec int) string {
	if !r.IsScalar {
		return r.Value.Text(prec)
	}

	if prec < 0 {
		prec = -1
	}

	return strconv.FormatFloat(r.Scalar, 'f', prec, 64)
}

// Func is a registered operation.
type Func struct {
	Name string
	Kind Kind
	Doc  string

	unary  func(algocomplex.Complex) algocomplex.Complex
	param  func(algocomplex.Complex, float64) algocomplex.Complex
	binary func(algocomplex.Complex, algocomplex.Complex) algocomplex.Complex
	scalar func(algocomplex.Complex) float64

	// integral restricts Param to integers (powi).
	integral bool
}

// Apply evaluates f on args.
//
// Returns ErrMissingOperand if f needs W or Param and args does not carry it.
// Returns ErrNonIntegerExponent for powi with a fractional parameter.
func (f Func) Apply(args Args) (Result, error) {
	if err := f.check(args); err != nil {
		return Result{}, err
	}

	switch f.Kind {
	case KindScalar:
		return Result{Scalar: f.scalar(args.Z), IsScalar: true}, nil
	case KindParam:
		return Result{Value: f.param(args.Z, args.Param)}, nil
	case KindBinary:
		return Result{Value: f.binary(args.Z, args.W)}, nil
	default:
		return Result{Value: f.unary(args.Z)}, nil
	}
}

// Unary returns f as a one-argument function with W and Param fixed from
// args. Scalar results are returned as WithReal(x). It fails exactly when
// Apply would.
func (f Func) Unary(args Args) (func(algocomplex.Complex) algocomplex.Complex, error) {
	if err := f.check(args); err != nil {
		return nil, err
	}

	switch f.Kind {
	case KindScalar:
		fn := f.scalar

		return func(z algocomplex.Complex) algocomplex.Complex { return algocomplex.WithReal(fn(z)) }, nil
	case KindParam:
		fn, p := f.param, args.Param

		return func(z algocomplex.Complex) algocomplex.Complex { return fn(z, p) }, nil
	case KindBinary:
		fn, w := f.binary, args.W

		return func(z algocomplex.Complex) algocomplex.Complex { return fn(z, w) }, nil
	default:
		return f.unary, nil
	}
}

func (f Func) check(args Args) error {
	switch f.Kind {
	case KindParam:
		if !args.HasParam {
			return fmt.Errorf("%s needs a real parameter: %w", f.Name, ErrMissingOperand)
		}

		if f.integral && (args.Param != math.Trunc(args.Param) || math.Abs(args.Param) > math.MaxInt32) {
			return fmt.Errorf("%s %v: %w", f.Name, args.Param, ErrNonIntegerExponent)
		}
	case KindBinary:
		if !args.HasW {
			return fmt.Errorf("%s needs a second operand: %w", f.Name, ErrMissingOperand)
		}
	}

	return nil
}

var registry = map[string]Func{}

func register(f Func) {
	if _, dup := registry[f.Name]; dup {
		panic("calc: duplicate function " + f.Name)
	}

	registry[f.Name] = f
}

func unary(name, doc string, fn func(algocomplex.Complex) algocomplex.Complex) {
	register(Func{Name: name, Kind: KindUnary, Doc: doc, unary: fn})
}

func param(name, doc string, fn func(algocomplex.Complex, float64) algocomplex.Complex) {
	register(Func{Name: name, Kind: KindParam, Doc: doc, param: fn})
}

func binary(name, doc string, fn func(algocomplex.Complex, algocomplex.Complex) algocomplex.Complex) {
	register(Func{Name: name, Kind: KindBinary, Doc: doc, binary: fn})
}

func scalar(name, doc string, fn func(algocomplex.Complex) float64) {
	register(Func{Name: name, Kind: KindScalar, Doc: doc, scalar: fn})
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return Func{}, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
	}

	return f, nil
}

// Names returns all registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Eval looks up name and applies it to args.
func Eval(name string, args Args) (Result, error) {
	f, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}

	return f.Apply(args)
}

func init() {
	type C = algocomplex.Complex

	scalar("abs", "magnitude |z|", C.Abs)
	scalar("arg", "principal argument in (-π, π]", C.Arg)
	scalar("norm", "squared magnitude", C.Norm)

	unary("conj", "complex conjugate", C.Conj)
	unary("neg", "negation", C.Neg)
	unary("inv", "reciprocal 1/z", C.Inv)
	unary("exp", "e^z", C.Exp)
	unary("ln", "principal natural logarithm", C.Ln)
	unary("log2", "base-2 logarithm of the magnitude, argument kept", C.Log2)
	unary("log10", "base-10 logarithm of the magnitude, argument kept", C.Log10)
	unary("sqrt", "principal square root", C.Sqrt)
	unary("sin", "sine", C.Sin)
	unary("cos", "cosine", C.Cos)
	unary("tan", "tangent", C.Tan)
	unary("sinh", "hyperbolic sine", C.Sinh)
	unary("cosh", "hyperbolic cosine", C.Cosh)
	unary("tanh", "hyperbolic tangent", C.Tanh)
	unary("asin", "inverse sine", C.Asin)
	unary("acos", "inverse cosine", C.Acos)
	unary("atan", "inverse tangent", C.Atan)
	unary("asinh", "inverse hyperbolic sine", C.Asinh)
	unary("acosh", "inverse hyperbolic cosine", C.Acosh)
	unary("atanh", "inverse hyperbolic tangent", C.Atanh)

	param("log", "logarithm in base p", C.Log)
	param("powf", "z^p for real p", C.Powf)
	register(Func{
		Name:     "powi",
		Kind:     KindParam,
		Doc:      "z^p for integer p",
		param:    func(z C, p float64) C { return z.Powi(int(p)) },
		integral: true,
	})
	param("addr", "z + p, real part only", C.AddReal)
	param("subr", "z - p, real part only", C.SubReal)
	param("mulr", "z·p", C.MulReal)
	param("divr", "z / p", C.DivReal)

	binary("add", "z + w", C.Add)
	binary("sub", "z - w", C.Sub)
	binary("mul", "z·w", C.Mul)
	binary("div", "z / w", C.Div)
	binary("powc", "z^w = exp(w·ln z)", C.Powc)
}
