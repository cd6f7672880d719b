package algocomplex

import (
	"fmt"
	"io"
	"strconv"
)

// String renders z as <real><signed-imag>i, for example "-1.5+2i".
// Each part uses the shortest decimal that round-trips, never an exponent.
// The imaginary part always carries a sign; a negative zero renders "-0".
func (z Complex) String() string {
	return z.render('f', -1)
}

// Text renders z like String with exactly prec fractional digits in each
// part. A negative prec selects the String form.
func (z Complex) Text(prec int) string {
	if prec < 0 {
		prec = -1
	}

	return z.render('f', prec)
}

// GoString renders z as a Go composite literal, for %#v.
func (z Complex) GoString() string {
	return "algocomplex.Complex{Real:" + strconv.FormatFloat(z.Real, 'g', -1, 64) +
		", Imag:" + strconv.FormatFloat(z.Imag, 'g', -1, 64) + "}"
}

// Format implements fmt.Formatter.
//
//	%v, %s    String, or Text(p) when a precision is given (%.3v)
//	%#v       GoString
//	%e %E %f %g %G
//	          the float verb applied to both parts, same <real><signed-imag>i grammar,
//	          with fmt's default precisions (6 for %e and %f, shortest for %g)
//
// Width and the '-' flag pad the whole rendering.
func (z Complex) Format(f fmt.State, verb rune) {
	prec, hasPrec := f.Precision()
	if !hasPrec {
		prec = -1
	}

	var s string

	switch verb {
	case 'v', 's':
		switch {
		case verb == 'v' && f.Flag('#'):
			s = z.GoString()
		case hasPrec:
			s = z.Text(prec)
		default:
			s = z.String()
		}
	case 'e', 'E', 'f':
		if !hasPrec {
			prec = 6
		}

		s = z.render(byte(verb), prec)
	case 'g', 'G':
		s = z.render(byte(verb), prec)
	default:
		fmt.Fprintf(f, "%%!%c(algocomplex.Complex=%s)", verb, z.String())
		return
	}

	if width, ok := f.Width(); ok {
		if f.Flag('-') {
			fmt.Fprintf(f, "%-*s", width, s)
		} else {
			fmt.Fprintf(f, "%*s", width, s)
		}

		return
	}

	_, _ = io.WriteString(f, s)
}

func (z Complex) render(fmtByte byte, prec int) string {
	re := strconv.FormatFloat(z.Real, fmtByte, prec, 64)

	im := strconv.FormatFloat(z.Imag, fmtByte, prec, 64)
	if im[0] != '+' && im[0] != '-' {
		im = "+" + im
	}

	return re + im + "i"
}
