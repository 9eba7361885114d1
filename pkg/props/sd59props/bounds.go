package sd59props

import (
	"fmt"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Fixed boundary scenarios encoding the exact succeed-or-fail semantics
// at the edges of the signed decimal range.

func mustFail(prop, msg string, err error, ops ...fmt.Stringer) error {
	if err != nil {
		return nil
	}
	return verify.Violated(prop, msg, ops...)
}

func mustEqual(prop, msg string, r dec18.Signed, err error, want dec18.Signed) error {
	if err != nil || !r.Eq(want) {
		return verify.Violated(prop, msg, r, want)
	}
	return nil
}

// AddBoundaries: the overflow edges of addition and subtraction.
func AddBoundaries() error {
	r, err := add(dec18.SMax, dec18.SZero)
	if e := mustEqual("sd59/add_boundaries", "SMax + 0 must equal SMax", r, err, dec18.SMax); e != nil {
		return e
	}
	r, err = add(dec18.SMin, dec18.SZero)
	if e := mustEqual("sd59/add_boundaries", "SMin + 0 must equal SMin", r, err, dec18.SMin); e != nil {
		return e
	}
	_, err = add(dec18.SMax, dec18.SEpsilon)
	if e := mustFail("sd59/add_boundaries", "SMax + epsilon must fail", err, dec18.SMax); e != nil {
		return e
	}
	_, err = add(dec18.SMin, dec18.SNegOne)
	if e := mustFail("sd59/add_boundaries", "SMin + (-1) must fail", err, dec18.SMin); e != nil {
		return e
	}
	_, err = sub(dec18.SMin, dec18.SEpsilon)
	return mustFail("sd59/add_boundaries", "SMin - epsilon must fail", err, dec18.SMin)
}

// MulBoundaries: multiplicative identities and overflow at the edges.
func MulBoundaries() error {
	r, err := mul(dec18.SMax, dec18.SOne)
	if e := mustEqual("sd59/mul_boundaries", "SMax * 1 must equal SMax", r, err, dec18.SMax); e != nil {
		return e
	}
	r, err = mul(dec18.SMin, dec18.SOne)
	if e := mustEqual("sd59/mul_boundaries", "SMin * 1 must equal SMin", r, err, dec18.SMin); e != nil {
		return e
	}
	_, err = mul(dec18.SMax, dec18.STwo)
	if e := mustFail("sd59/mul_boundaries", "SMax * 2 must fail", err, dec18.SMax); e != nil {
		return e
	}
	_, err = mul(dec18.SMin, dec18.SNegOne)
	return mustFail("sd59/mul_boundaries", "SMin * -1 must fail", err, dec18.SMin)
}

// DivBoundaries: division by zero always fails; dividing by one is the
// identity.
func DivBoundaries() error {
	for _, x := range []dec18.Signed{dec18.SZero, dec18.SOne, dec18.SNegOne, dec18.SMin, dec18.SMax} {
		if _, err := div(x, dec18.SZero); err == nil {
			return verify.Violated("sd59/div_boundaries", "division by zero must fail", x)
		}
	}
	r, err := div(dec18.SMax, dec18.SOne)
	if e := mustEqual("sd59/div_boundaries", "SMax / 1 must equal SMax", r, err, dec18.SMax); e != nil {
		return e
	}
	r, err = div(dec18.SZero, dec18.SMax)
	return mustEqual("sd59/div_boundaries", "0 / SMax must equal 0", r, err, dec18.SZero)
}

// NegBoundaries: SMin has no negation; everything else does.
func NegBoundaries() error {
	_, err := neg(dec18.SMin)
	if e := mustFail("sd59/neg_boundaries", "-SMin must fail", err, dec18.SMin); e != nil {
		return e
	}
	_, err = abs(dec18.SMin)
	if e := mustFail("sd59/neg_boundaries", "|SMin| must fail", err, dec18.SMin); e != nil {
		return e
	}
	r, err := neg(dec18.SMax)
	if err != nil {
		return verify.Violated("sd59/neg_boundaries", "-SMax must succeed", dec18.SMax)
	}
	rr, err := neg(r)
	return mustEqual("sd59/neg_boundaries", "-(-SMax) must equal SMax", rr, err, dec18.SMax)
}

// SqrtBoundaries: sqrt(0) is 0, negative arguments fail, the extremes of
// the positive range succeed.
func SqrtBoundaries() error {
	r, err := sqrt(dec18.SZero)
	if e := mustEqual("sd59/sqrt_boundaries", "sqrt(0) must equal 0", r, err, dec18.SZero); e != nil {
		return e
	}
	r, err = sqrt(dec18.SOne)
	if e := mustEqual("sd59/sqrt_boundaries", "sqrt(1) must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	_, err = sqrt(dec18.SNegOne)
	if e := mustFail("sd59/sqrt_boundaries", "sqrt(-1) must fail", err, dec18.SNegOne); e != nil {
		return e
	}
	_, err = sqrt(dec18.SMin)
	if e := mustFail("sd59/sqrt_boundaries", "sqrt(SMin) must fail", err, dec18.SMin); e != nil {
		return e
	}
	if _, err = sqrt(dec18.SMax); err != nil {
		return verify.Violated("sd59/sqrt_boundaries", "sqrt(SMax) must succeed", dec18.SMax)
	}
	return nil
}

// LogBoundaries: logarithms fail at and below zero and are exact at the
// base.
func LogBoundaries() error {
	for _, x := range []dec18.Signed{dec18.SZero, dec18.SNegOne, dec18.SMin} {
		if _, err := log2(x); err == nil {
			return verify.Violated("sd59/log_boundaries", "log2 outside the domain must fail", x)
		}
		if _, err := ln(x); err == nil {
			return verify.Violated("sd59/log_boundaries", "ln outside the domain must fail", x)
		}
	}
	r, err := log2(dec18.SOne)
	if e := mustEqual("sd59/log_boundaries", "log2(1) must equal 0", r, err, dec18.SZero); e != nil {
		return e
	}
	r, err = log2(dec18.STwo)
	if e := mustEqual("sd59/log_boundaries", "log2(2) must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	r, err = ln(dec18.SOne)
	if e := mustEqual("sd59/log_boundaries", "ln(1) must equal 0", r, err, dec18.SZero); e != nil {
		return e
	}
	r, err = log10(dec18.SOne)
	return mustEqual("sd59/log_boundaries", "log10(1) must equal 0", r, err, dec18.SZero)
}

// ExpBoundaries: the exact low anchors and the overflow/underflow edges.
func ExpBoundaries() error {
	r, err := exp2(dec18.SZero)
	if e := mustEqual("sd59/exp_boundaries", "exp2(0) must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	r, err = exp2(dec18.SOne)
	if e := mustEqual("sd59/exp_boundaries", "exp2(1) must equal 2", r, err, dec18.STwo); e != nil {
		return e
	}
	_, err = exp2(dec18.SFromInt(200))
	if e := mustFail("sd59/exp_boundaries", "exp2(200) must fail", err); e != nil {
		return e
	}
	r, err = exp2(dec18.SFromInt(-150))
	if e := mustEqual("sd59/exp_boundaries", "exp2(-150) must underflow to 0", r, err, dec18.SZero); e != nil {
		return e
	}
	r, err = exp(dec18.SZero)
	if e := mustEqual("sd59/exp_boundaries", "exp(0) must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	_, err = exp(dec18.SMax)
	return mustFail("sd59/exp_boundaries", "exp(SMax) must fail", err, dec18.SMax)
}

// PowBoundaries: power identities at the extremes.
func PowBoundaries() error {
	r, err := powu(dec18.SZero, 0)
	if e := mustEqual("sd59/pow_boundaries", "0^0 must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	r, err = powu(dec18.SMax, 1)
	if e := mustEqual("sd59/pow_boundaries", "SMax^1 must equal SMax", r, err, dec18.SMax); e != nil {
		return e
	}
	r, err = powu(dec18.SMin, 1)
	if e := mustEqual("sd59/pow_boundaries", "SMin^1 must equal SMin", r, err, dec18.SMin); e != nil {
		return e
	}
	_, err = powu(dec18.SMax, 2)
	if e := mustFail("sd59/pow_boundaries", "SMax^2 must fail", err, dec18.SMax); e != nil {
		return e
	}
	r, err = pow(dec18.SZero, dec18.SZero)
	if e := mustEqual("sd59/pow_boundaries", "pow(0,0) must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	_, err = pow(dec18.SZero, dec18.SNegOne)
	return mustFail("sd59/pow_boundaries", "pow(0,-1) must fail", err)
}

// InvBoundaries: inversion of zero fails; the units are fixed points; the
// smallest unit inverts to 10^18, well inside the range.
func InvBoundaries() error {
	_, err := inv(dec18.SZero)
	if e := mustFail("sd59/inv_boundaries", "inv(0) must fail", err); e != nil {
		return e
	}
	r, err := inv(dec18.SOne)
	if e := mustEqual("sd59/inv_boundaries", "inv(1) must equal 1", r, err, dec18.SOne); e != nil {
		return e
	}
	r, err = inv(dec18.SNegOne)
	if e := mustEqual("sd59/inv_boundaries", "inv(-1) must equal -1", r, err, dec18.SNegOne); e != nil {
		return e
	}
	r, err = inv(dec18.SEpsilon)
	return mustEqual("sd59/inv_boundaries", "inv(epsilon) must equal 10^18", r, err, dec18.SFromInt(1_000_000_000_000_000_000))
}

// ConvRoundtrip: integer conversion is lossless.
func ConvRoundtrip(i int64) error {
	v := dec18.SFromInt(i)
	if got := v.ToInt(); got != i {
		return verify.Violated("sd59/conv_roundtrip", "SFromInt/ToInt must round-trip", v)
	}
	return nil
}
