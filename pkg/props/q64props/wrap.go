// Package q64props holds the property checks for the signed binary
// Q64.64 fixed-point format. Every check is a pure single-shot
// evaluation: it derives its preconditions, calls the library under test
// through the wrappers below, and compares results with the shared
// precision comparators. A nil return is a pass, verify.ErrDiscard
// excludes the input from the sample space, and a *verify.Violation is a
// falsified invariant.
package q64props

import (
	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Wrappers give the checks one uniform call surface into the library
// under test and land every invocation on the trace channel. They forward
// arguments and results untouched.

func add(x, y q64.Value) (q64.Value, error) {
	r, err := x.Add(y)
	verify.TraceCall("q64.add", err, x, y, r)
	return r, err
}

func sub(x, y q64.Value) (q64.Value, error) {
	r, err := x.Sub(y)
	verify.TraceCall("q64.sub", err, x, y, r)
	return r, err
}

func neg(x q64.Value) (q64.Value, error) {
	r, err := x.Neg()
	verify.TraceCall("q64.neg", err, x, r)
	return r, err
}

func abs(x q64.Value) (q64.Value, error) {
	r, err := x.Abs()
	verify.TraceCall("q64.abs", err, x, r)
	return r, err
}

func mul(x, y q64.Value) (q64.Value, error) {
	r, err := x.Mul(y)
	verify.TraceCall("q64.mul", err, x, y, r)
	return r, err
}

func div(x, y q64.Value) (q64.Value, error) {
	r, err := x.Div(y)
	verify.TraceCall("q64.div", err, x, y, r)
	return r, err
}

func inv(x q64.Value) (q64.Value, error) {
	r, err := x.Inv()
	verify.TraceCall("q64.inv", err, x, r)
	return r, err
}

func avg(x, y q64.Value) q64.Value {
	r := x.Avg(y)
	verify.TraceCall("q64.avg", nil, x, y, r)
	return r
}

func gavg(x, y q64.Value) (q64.Value, error) {
	r, err := x.Gavg(y)
	verify.TraceCall("q64.gavg", err, x, y, r)
	return r, err
}

func powu(x q64.Value, n uint64) (q64.Value, error) {
	r, err := x.Powu(n)
	verify.TraceCall("q64.powu", err, x, r)
	return r, err
}

func sqrt(x q64.Value) (q64.Value, error) {
	r, err := x.Sqrt()
	verify.TraceCall("q64.sqrt", err, x, r)
	return r, err
}

func log2(x q64.Value) (q64.Value, error) {
	r, err := x.Log2()
	verify.TraceCall("q64.log2", err, x, r)
	return r, err
}

func ln(x q64.Value) (q64.Value, error) {
	r, err := x.Ln()
	verify.TraceCall("q64.ln", err, x, r)
	return r, err
}

func log10(x q64.Value) (q64.Value, error) {
	r, err := x.Log10()
	verify.TraceCall("q64.log10", err, x, r)
	return r, err
}

func exp2(x q64.Value) (q64.Value, error) {
	r, err := x.Exp2()
	verify.TraceCall("q64.exp2", err, x, r)
	return r, err
}

func exp(x q64.Value) (q64.Value, error) {
	r, err := x.Exp()
	verify.TraceCall("q64.exp", err, x, r)
	return r, err
}
