// Package ud60props holds the property checks for the unsigned decimal
// fixed-point format. The format has no negation: subtraction below zero
// fails, logarithms require arguments of at least one, and pow rejects
// bases below one. Checks follow the shared pass/discard/violation
// contract with digit-counted tolerances.
package ud60props

import (
	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

func add(x, y dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Add(y)
	verify.TraceCall("ud60.add", err, x, y, r)
	return r, err
}

func sub(x, y dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Sub(y)
	verify.TraceCall("ud60.sub", err, x, y, r)
	return r, err
}

func mul(x, y dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Mul(y)
	verify.TraceCall("ud60.mul", err, x, y, r)
	return r, err
}

func div(x, y dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Div(y)
	verify.TraceCall("ud60.div", err, x, y, r)
	return r, err
}

func inv(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Inv()
	verify.TraceCall("ud60.inv", err, x, r)
	return r, err
}

func avg(x, y dec18.Unsigned) dec18.Unsigned {
	r := x.Avg(y)
	verify.TraceCall("ud60.avg", nil, x, y, r)
	return r
}

func gavg(x, y dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Gavg(y)
	verify.TraceCall("ud60.gavg", err, x, y, r)
	return r, err
}

func powu(x dec18.Unsigned, n uint64) (dec18.Unsigned, error) {
	r, err := x.Powu(n)
	verify.TraceCall("ud60.powu", err, x, r)
	return r, err
}

func pow(x, y dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Pow(y)
	verify.TraceCall("ud60.pow", err, x, y, r)
	return r, err
}

func sqrt(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Sqrt()
	verify.TraceCall("ud60.sqrt", err, x, r)
	return r, err
}

func log2(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Log2()
	verify.TraceCall("ud60.log2", err, x, r)
	return r, err
}

func ln(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Ln()
	verify.TraceCall("ud60.ln", err, x, r)
	return r, err
}

func log10(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Log10()
	verify.TraceCall("ud60.log10", err, x, r)
	return r, err
}

func exp2(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Exp2()
	verify.TraceCall("ud60.exp2", err, x, r)
	return r, err
}

func exp(x dec18.Unsigned) (dec18.Unsigned, error) {
	r, err := x.Exp()
	verify.TraceCall("ud60.exp", err, x, r)
	return r, err
}
