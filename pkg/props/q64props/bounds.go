package q64props

import (
	"fmt"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Fixed boundary scenarios. Unlike the random-operand laws these take no
// inputs: each encodes the exact succeed-or-fail semantics at the edges
// of the representable range.

func mustFail(prop, msg string, err error, ops ...fmt.Stringer) error {
	if err != nil {
		return nil
	}
	return verify.Violated(prop, msg, ops...)
}

func mustEqual(prop, msg string, r q64.Value, err error, want q64.Value) error {
	if err != nil || !r.Eq(want) {
		return verify.Violated(prop, msg, r, want)
	}
	return nil
}

// AddBoundaries: the overflow edges of addition and subtraction.
func AddBoundaries() error {
	r, err := add(q64.Max, q64.Zero)
	if e := mustEqual("q64/add_boundaries", "Max + 0 must equal Max", r, err, q64.Max); e != nil {
		return e
	}
	r, err = add(q64.Min, q64.Zero)
	if e := mustEqual("q64/add_boundaries", "Min + 0 must equal Min", r, err, q64.Min); e != nil {
		return e
	}
	_, err = add(q64.Max, q64.Epsilon)
	if e := mustFail("q64/add_boundaries", "Max + epsilon must fail", err, q64.Max); e != nil {
		return e
	}
	_, err = add(q64.Max, q64.One)
	if e := mustFail("q64/add_boundaries", "Max + 1 must fail", err, q64.Max); e != nil {
		return e
	}
	_, err = add(q64.Min, q64.NegOne)
	if e := mustFail("q64/add_boundaries", "Min + (-1) must fail", err, q64.Min); e != nil {
		return e
	}
	_, err = sub(q64.Min, q64.Epsilon)
	return mustFail("q64/add_boundaries", "Min - epsilon must fail", err, q64.Min)
}

// MulBoundaries: multiplicative identities and overflow at the edges.
func MulBoundaries() error {
	r, err := mul(q64.Max, q64.One)
	if e := mustEqual("q64/mul_boundaries", "Max * 1 must equal Max", r, err, q64.Max); e != nil {
		return e
	}
	r, err = mul(q64.Min, q64.One)
	if e := mustEqual("q64/mul_boundaries", "Min * 1 must equal Min", r, err, q64.Min); e != nil {
		return e
	}
	_, err = mul(q64.Max, q64.Two)
	if e := mustFail("q64/mul_boundaries", "Max * 2 must fail", err, q64.Max); e != nil {
		return e
	}
	_, err = mul(q64.Min, q64.NegOne)
	return mustFail("q64/mul_boundaries", "Min * -1 must fail", err, q64.Min)
}

// DivBoundaries: division by zero always fails; dividing by one is the
// identity.
func DivBoundaries() error {
	for _, x := range []q64.Value{q64.Zero, q64.One, q64.NegOne, q64.Min, q64.Max} {
		if _, err := div(x, q64.Zero); err == nil {
			return verify.Violated("q64/div_boundaries", "division by zero must fail", x)
		}
	}
	r, err := div(q64.Max, q64.One)
	if e := mustEqual("q64/div_boundaries", "Max / 1 must equal Max", r, err, q64.Max); e != nil {
		return e
	}
	r, err = div(q64.Zero, q64.Max)
	return mustEqual("q64/div_boundaries", "0 / Max must equal 0", r, err, q64.Zero)
}

// NegBoundaries: Min has no negation; everything else does.
func NegBoundaries() error {
	_, err := neg(q64.Min)
	if e := mustFail("q64/neg_boundaries", "-Min must fail", err, q64.Min); e != nil {
		return e
	}
	_, err = abs(q64.Min)
	if e := mustFail("q64/neg_boundaries", "|Min| must fail", err, q64.Min); e != nil {
		return e
	}
	r, err := neg(q64.Max)
	if err != nil {
		return verify.Violated("q64/neg_boundaries", "-Max must succeed", q64.Max)
	}
	rr, err := neg(r)
	return mustEqual("q64/neg_boundaries", "-(-Max) must equal Max", rr, err, q64.Max)
}

// SqrtBoundaries: sqrt(0) is 0, negative arguments fail, the extremes of
// the positive range succeed.
func SqrtBoundaries() error {
	r, err := sqrt(q64.Zero)
	if e := mustEqual("q64/sqrt_boundaries", "sqrt(0) must equal 0", r, err, q64.Zero); e != nil {
		return e
	}
	r, err = sqrt(q64.One)
	if e := mustEqual("q64/sqrt_boundaries", "sqrt(1) must equal 1", r, err, q64.One); e != nil {
		return e
	}
	_, err = sqrt(q64.NegOne)
	if e := mustFail("q64/sqrt_boundaries", "sqrt(-1) must fail", err, q64.NegOne); e != nil {
		return e
	}
	_, err = sqrt(q64.Min)
	if e := mustFail("q64/sqrt_boundaries", "sqrt(Min) must fail", err, q64.Min); e != nil {
		return e
	}
	if _, err = sqrt(q64.Max); err != nil {
		return verify.Violated("q64/sqrt_boundaries", "sqrt(Max) must succeed", q64.Max)
	}
	return nil
}

// LogBoundaries: logarithms fail at and below zero and are exact at the
// base.
func LogBoundaries() error {
	for _, x := range []q64.Value{q64.Zero, q64.NegOne, q64.Min} {
		if _, err := log2(x); err == nil {
			return verify.Violated("q64/log_boundaries", "log2 outside the domain must fail", x)
		}
		if _, err := ln(x); err == nil {
			return verify.Violated("q64/log_boundaries", "ln outside the domain must fail", x)
		}
	}
	r, err := log2(q64.One)
	if e := mustEqual("q64/log_boundaries", "log2(1) must equal 0", r, err, q64.Zero); e != nil {
		return e
	}
	r, err = log2(q64.Two)
	if e := mustEqual("q64/log_boundaries", "log2(2) must equal 1", r, err, q64.One); e != nil {
		return e
	}
	r, err = ln(q64.One)
	if e := mustEqual("q64/log_boundaries", "ln(1) must equal 0", r, err, q64.Zero); e != nil {
		return e
	}
	r, err = log10(q64.One)
	return mustEqual("q64/log_boundaries", "log10(1) must equal 0", r, err, q64.Zero)
}

// ExpBoundaries: the exact low anchors and the overflow/underflow edges.
func ExpBoundaries() error {
	r, err := exp2(q64.Zero)
	if e := mustEqual("q64/exp_boundaries", "exp2(0) must equal 1", r, err, q64.One); e != nil {
		return e
	}
	r, err = exp2(q64.One)
	if e := mustEqual("q64/exp_boundaries", "exp2(1) must equal 2", r, err, q64.Two); e != nil {
		return e
	}
	_, err = exp2(q64.FromInt(64))
	if e := mustFail("q64/exp_boundaries", "exp2(64) must fail", err); e != nil {
		return e
	}
	r, err = exp2(q64.FromInt(-200))
	if e := mustEqual("q64/exp_boundaries", "exp2(-200) must underflow to 0", r, err, q64.Zero); e != nil {
		return e
	}
	r, err = exp(q64.Zero)
	if e := mustEqual("q64/exp_boundaries", "exp(0) must equal 1", r, err, q64.One); e != nil {
		return e
	}
	_, err = exp(q64.Max)
	return mustFail("q64/exp_boundaries", "exp(Max) must fail", err, q64.Max)
}

// PowBoundaries: power identities at the extremes.
func PowBoundaries() error {
	r, err := powu(q64.Zero, 0)
	if e := mustEqual("q64/pow_boundaries", "0^0 must equal 1", r, err, q64.One); e != nil {
		return e
	}
	r, err = powu(q64.Max, 1)
	if e := mustEqual("q64/pow_boundaries", "Max^1 must equal Max", r, err, q64.Max); e != nil {
		return e
	}
	r, err = powu(q64.Min, 1)
	if e := mustEqual("q64/pow_boundaries", "Min^1 must equal Min", r, err, q64.Min); e != nil {
		return e
	}
	_, err = powu(q64.Max, 2)
	return mustFail("q64/pow_boundaries", "Max^2 must fail", err, q64.Max)
}

// InvBoundaries: inversion of zero fails; the smallest magnitudes
// overflow; the units are fixed points.
func InvBoundaries() error {
	_, err := inv(q64.Zero)
	if e := mustFail("q64/inv_boundaries", "inv(0) must fail", err); e != nil {
		return e
	}
	r, err := inv(q64.One)
	if e := mustEqual("q64/inv_boundaries", "inv(1) must equal 1", r, err, q64.One); e != nil {
		return e
	}
	r, err = inv(q64.NegOne)
	if e := mustEqual("q64/inv_boundaries", "inv(-1) must equal -1", r, err, q64.NegOne); e != nil {
		return e
	}
	_, err = inv(q64.Epsilon)
	return mustFail("q64/inv_boundaries", "inv(epsilon) must overflow", err, q64.Epsilon)
}

// ConvRoundtrip: integer conversion is lossless and floors.
func ConvRoundtrip(i int64) error {
	v := q64.FromInt(i)
	if got := v.ToInt(); got != i {
		return verify.Violated("q64/conv_roundtrip", "FromInt/ToInt must round-trip", v)
	}
	return nil
}
