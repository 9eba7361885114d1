// Package sd59props holds the property checks for the signed decimal
// fixed-point format (18 fractional digits over a 256-bit raw range).
// The checks follow the same pass/discard/violation contract as the
// binary suite, with tolerances counted in decimal digits.
package sd59props

import (
	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

func add(x, y dec18.Signed) (dec18.Signed, error) {
	r, err := x.Add(y)
	verify.TraceCall("sd59.add", err, x, y, r)
	return r, err
}

func sub(x, y dec18.Signed) (dec18.Signed, error) {
	r, err := x.Sub(y)
	verify.TraceCall("sd59.sub", err, x, y, r)
	return r, err
}

func neg(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Neg()
	verify.TraceCall("sd59.neg", err, x, r)
	return r, err
}

func abs(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Abs()
	verify.TraceCall("sd59.abs", err, x, r)
	return r, err
}

func mul(x, y dec18.Signed) (dec18.Signed, error) {
	r, err := x.Mul(y)
	verify.TraceCall("sd59.mul", err, x, y, r)
	return r, err
}

func div(x, y dec18.Signed) (dec18.Signed, error) {
	r, err := x.Div(y)
	verify.TraceCall("sd59.div", err, x, y, r)
	return r, err
}

func inv(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Inv()
	verify.TraceCall("sd59.inv", err, x, r)
	return r, err
}

func avg(x, y dec18.Signed) dec18.Signed {
	r := x.Avg(y)
	verify.TraceCall("sd59.avg", nil, x, y, r)
	return r
}

func gavg(x, y dec18.Signed) (dec18.Signed, error) {
	r, err := x.Gavg(y)
	verify.TraceCall("sd59.gavg", err, x, y, r)
	return r, err
}

func powu(x dec18.Signed, n uint64) (dec18.Signed, error) {
	r, err := x.Powu(n)
	verify.TraceCall("sd59.powu", err, x, r)
	return r, err
}

func pow(x, y dec18.Signed) (dec18.Signed, error) {
	r, err := x.Pow(y)
	verify.TraceCall("sd59.pow", err, x, y, r)
	return r, err
}

func sqrt(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Sqrt()
	verify.TraceCall("sd59.sqrt", err, x, r)
	return r, err
}

func log2(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Log2()
	verify.TraceCall("sd59.log2", err, x, r)
	return r, err
}

func ln(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Ln()
	verify.TraceCall("sd59.ln", err, x, r)
	return r, err
}

func log10(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Log10()
	verify.TraceCall("sd59.log10", err, x, r)
	return r, err
}

func exp2(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Exp2()
	verify.TraceCall("sd59.exp2", err, x, r)
	return r, err
}

func exp(x dec18.Signed) (dec18.Signed, error) {
	r, err := x.Exp()
	verify.TraceCall("sd59.exp", err, x, r)
	return r, err
}
