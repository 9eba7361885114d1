package ud60props

import (
	"fmt"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Fixed boundary scenarios for the unsigned range: the zero floor replaces
// the negative edge of the signed formats.

func mustFail(prop, msg string, err error, ops ...fmt.Stringer) error {
	if err != nil {
		return nil
	}
	return verify.Violated(prop, msg, ops...)
}

func mustEqual(prop, msg string, r dec18.Unsigned, err error, want dec18.Unsigned) error {
	if err != nil || !r.Eq(want) {
		return verify.Violated(prop, msg, r, want)
	}
	return nil
}

// AddBoundaries: the overflow edge at UMax and the underflow edge at zero.
func AddBoundaries() error {
	r, err := add(dec18.UMax, dec18.UZero)
	if e := mustEqual("ud60/add_boundaries", "UMax + 0 must equal UMax", r, err, dec18.UMax); e != nil {
		return e
	}
	_, err = add(dec18.UMax, dec18.UEpsilon)
	if e := mustFail("ud60/add_boundaries", "UMax + epsilon must fail", err, dec18.UMax); e != nil {
		return e
	}
	_, err = sub(dec18.UZero, dec18.UEpsilon)
	if e := mustFail("ud60/add_boundaries", "0 - epsilon must fail", err); e != nil {
		return e
	}
	r, err = sub(dec18.UMax, dec18.UMax)
	return mustEqual("ud60/add_boundaries", "UMax - UMax must equal 0", r, err, dec18.UZero)
}

// MulBoundaries: multiplicative identities and overflow at the top.
func MulBoundaries() error {
	r, err := mul(dec18.UMax, dec18.UOne)
	if e := mustEqual("ud60/mul_boundaries", "UMax * 1 must equal UMax", r, err, dec18.UMax); e != nil {
		return e
	}
	_, err = mul(dec18.UMax, dec18.UTwo)
	if e := mustFail("ud60/mul_boundaries", "UMax * 2 must fail", err, dec18.UMax); e != nil {
		return e
	}
	r, err = mul(dec18.UMax, dec18.UZero)
	return mustEqual("ud60/mul_boundaries", "UMax * 0 must equal 0", r, err, dec18.UZero)
}

// DivBoundaries: division by zero always fails; dividing by one is the
// identity.
func DivBoundaries() error {
	for _, x := range []dec18.Unsigned{dec18.UZero, dec18.UOne, dec18.UMax} {
		if _, err := div(x, dec18.UZero); err == nil {
			return verify.Violated("ud60/div_boundaries", "division by zero must fail", x)
		}
	}
	r, err := div(dec18.UMax, dec18.UOne)
	if e := mustEqual("ud60/div_boundaries", "UMax / 1 must equal UMax", r, err, dec18.UMax); e != nil {
		return e
	}
	r, err = div(dec18.UZero, dec18.UMax)
	return mustEqual("ud60/div_boundaries", "0 / UMax must equal 0", r, err, dec18.UZero)
}

// SqrtBoundaries: sqrt is total on the unsigned range.
func SqrtBoundaries() error {
	r, err := sqrt(dec18.UZero)
	if e := mustEqual("ud60/sqrt_boundaries", "sqrt(0) must equal 0", r, err, dec18.UZero); e != nil {
		return e
	}
	r, err = sqrt(dec18.UOne)
	if e := mustEqual("ud60/sqrt_boundaries", "sqrt(1) must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	if _, err = sqrt(dec18.UMax); err != nil {
		return verify.Violated("ud60/sqrt_boundaries", "sqrt(UMax) must succeed", dec18.UMax)
	}
	return nil
}

// LogBoundaries: logarithms fail below one and are exact at the base.
func LogBoundaries() error {
	for _, x := range []dec18.Unsigned{dec18.UZero, dec18.UEpsilon} {
		if _, err := log2(x); err == nil {
			return verify.Violated("ud60/log_boundaries", "log2 below one must fail", x)
		}
		if _, err := ln(x); err == nil {
			return verify.Violated("ud60/log_boundaries", "ln below one must fail", x)
		}
	}
	r, err := log2(dec18.UOne)
	if e := mustEqual("ud60/log_boundaries", "log2(1) must equal 0", r, err, dec18.UZero); e != nil {
		return e
	}
	r, err = log2(dec18.UTwo)
	if e := mustEqual("ud60/log_boundaries", "log2(2) must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	r, err = ln(dec18.UOne)
	if e := mustEqual("ud60/log_boundaries", "ln(1) must equal 0", r, err, dec18.UZero); e != nil {
		return e
	}
	r, err = log10(dec18.UOne)
	if e := mustEqual("ud60/log_boundaries", "log10(1) must equal 0", r, err, dec18.UZero); e != nil {
		return e
	}
	if _, err = log2(dec18.UMax); err != nil {
		return verify.Violated("ud60/log_boundaries", "log2(UMax) must succeed", dec18.UMax)
	}
	return nil
}

// ExpBoundaries: the exact low anchors and the overflow edge.
func ExpBoundaries() error {
	r, err := exp2(dec18.UZero)
	if e := mustEqual("ud60/exp_boundaries", "exp2(0) must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	r, err = exp2(dec18.UOne)
	if e := mustEqual("ud60/exp_boundaries", "exp2(1) must equal 2", r, err, dec18.UTwo); e != nil {
		return e
	}
	_, err = exp2(dec18.UFromInt(200))
	if e := mustFail("ud60/exp_boundaries", "exp2(200) must fail", err); e != nil {
		return e
	}
	r, err = exp(dec18.UZero)
	if e := mustEqual("ud60/exp_boundaries", "exp(0) must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	_, err = exp(dec18.UMax)
	return mustFail("ud60/exp_boundaries", "exp(UMax) must fail", err, dec18.UMax)
}

// PowBoundaries: power identities at the extremes.
func PowBoundaries() error {
	r, err := powu(dec18.UZero, 0)
	if e := mustEqual("ud60/pow_boundaries", "0^0 must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	r, err = powu(dec18.UMax, 1)
	if e := mustEqual("ud60/pow_boundaries", "UMax^1 must equal UMax", r, err, dec18.UMax); e != nil {
		return e
	}
	_, err = powu(dec18.UMax, 2)
	if e := mustFail("ud60/pow_boundaries", "UMax^2 must fail", err, dec18.UMax); e != nil {
		return e
	}
	r, err = pow(dec18.UZero, dec18.UZero)
	if e := mustEqual("ud60/pow_boundaries", "pow(0,0) must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	_, err = pow(dec18.UEpsilon, dec18.UTwo)
	return mustFail("ud60/pow_boundaries", "pow below one must fail", err, dec18.UEpsilon)
}

// InvBoundaries: inv(0) fails, one is a fixed point, epsilon inverts to
// 10^18 and the top of the range truncates to zero.
func InvBoundaries() error {
	_, err := inv(dec18.UZero)
	if e := mustFail("ud60/inv_boundaries", "inv(0) must fail", err); e != nil {
		return e
	}
	r, err := inv(dec18.UOne)
	if e := mustEqual("ud60/inv_boundaries", "inv(1) must equal 1", r, err, dec18.UOne); e != nil {
		return e
	}
	r, err = inv(dec18.UEpsilon)
	if e := mustEqual("ud60/inv_boundaries", "inv(epsilon) must equal 10^18", r, err, dec18.UFromInt(1_000_000_000_000_000_000)); e != nil {
		return e
	}
	r, err = inv(dec18.UMax)
	return mustEqual("ud60/inv_boundaries", "inv(UMax) must truncate to 0", r, err, dec18.UZero)
}

// ConvRoundtrip: integer conversion is lossless.
func ConvRoundtrip(i uint64) error {
	v := dec18.UFromInt(i)
	if got := v.ToInt(); got != i {
		return verify.Violated("ud60/conv_roundtrip", "UFromInt/ToInt must round-trip", v)
	}
	return nil
}
