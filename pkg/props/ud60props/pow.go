package ud60props

import (
	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// PowuZeroExponent: x^0 == 1 for every x, zero included.
func PowuZeroExponent(x dec18.Unsigned) error {
	r, err := powu(x, 0)
	if err != nil || !r.Eq(dec18.UOne) {
		return verify.Violated("ud60/powu_zero_exponent", "x^0 must equal one", x, r)
	}
	return nil
}

// PowuOneExponent: x^1 == x, exact.
func PowuOneExponent(x dec18.Unsigned) error {
	r, err := powu(x, 1)
	if err != nil || !r.Eq(x) {
		return verify.Violated("ud60/powu_one_exponent", "x^1 must equal x", x, r)
	}
	return nil
}

// PowuAddExponents: x^(a+b) == x^a * x^b on the surviving digits.
func PowuAddExponents(x dec18.Unsigned, a, b uint64) error {
	if a > 8 || b > 8 {
		return verify.ErrDiscard
	}
	d := digits(x)
	if d < 10 || d > 29 {
		return verify.ErrDiscard
	}
	lhs, err := powu(x, a+b)
	if err != nil {
		return verify.ErrDiscard
	}
	pa, err := powu(x, a)
	if err != nil {
		return verify.ErrDiscard
	}
	pb, err := powu(x, b)
	if err != nil {
		return verify.ErrDiscard
	}
	rhs, err := mul(pa, pb)
	if err != nil {
		return verify.ErrDiscard
	}
	mind := minUint(digits(lhs), digits(rhs))
	if mind < 8 {
		return verify.ErrDiscard
	}
	budget := clampBudget(mind-3, 3, 12)
	ok := verify.EqualMostSignificantDigits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "ud60/powu_add_exponents", "x^(a+b) must equal x^a * x^b", x, lhs, rhs)
}

// PowZeroExponent: x^y with y == 0 is one for every x.
func PowZeroExponent(x dec18.Unsigned) error {
	r, err := pow(x, dec18.UZero)
	if err != nil || !r.Eq(dec18.UOne) {
		return verify.Violated("ud60/pow_zero_exponent", "x^0 must equal one", x, r)
	}
	return nil
}

// PowOneBase: 1^y == 1, exact for every exponent.
func PowOneBase(y dec18.Unsigned) error {
	r, err := pow(dec18.UOne, y)
	if err != nil || !r.Eq(dec18.UOne) {
		return verify.Violated("ud60/pow_one_base", "1^y must equal one", y, r)
	}
	return nil
}

// PowZeroBase: 0^y is zero for positive y and one for y == 0.
func PowZeroBase(y dec18.Unsigned) error {
	r, err := pow(dec18.UZero, y)
	if y.IsZero() {
		return verify.Check(err == nil && r.Eq(dec18.UOne), "ud60/pow_zero_base", "0^0 must equal one", y, r)
	}
	return verify.Check(err == nil && r.IsZero(), "ud60/pow_zero_base", "0^y must equal zero for y > 0", y, r)
}

// PowBaseBelowOne: a base strictly between zero and one needs a negative
// logarithm the format can not carry, so pow must fail for nonzero
// exponents.
func PowBaseBelowOne(x, y dec18.Unsigned) error {
	if x.IsZero() || x.Gte(dec18.UOne) || y.IsZero() {
		return verify.ErrDiscard
	}
	if _, err := pow(x, y); err == nil {
		return verify.Violated("ud60/pow_base_below_one", "pow with a base below one must fail", x, y)
	}
	return nil
}

// PowIntExponent: pow with a whole exponent agrees with repeated
// multiplication on the leading digits.
func PowIntExponent(x dec18.Unsigned, n uint64) error {
	if n < 1 || n > 6 || x.Lt(dec18.UOne) {
		return verify.ErrDiscard
	}
	d := digits(x)
	if d < 19 || d > 27 {
		return verify.ErrDiscard
	}
	p, err := pow(x, dec18.UFromInt(n))
	if err != nil {
		return verify.ErrDiscard
	}
	u, err := powu(x, n)
	if err != nil {
		return verify.ErrDiscard
	}
	mind := minUint(digits(p), digits(u))
	if mind < 8 {
		return verify.ErrDiscard
	}
	budget := clampBudget(minUint(mind-3, 10), 3, 10)
	ok := verify.EqualMostSignificantDigits(p.Big(), u.Big(), budget)
	return verify.Check(ok, "ud60/pow_int_exponent", "pow(x,n) must agree with powu(x,n)", x, p, u)
}

// SqrtSquare: sqrt(x)^2 recovers x up to the truncation of the root.
func SqrtSquare(x dec18.Unsigned) error {
	s, err := sqrt(x)
	if err != nil {
		return verify.ErrDiscard
	}
	r, err := mul(s, s)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := uint(2)
	if d := digits(x); d > 20 {
		tol = (d-18)/2 + 2
	}
	ok := verify.EqualWithinDigits(x.Big(), r.Big(), tol)
	return verify.Check(ok, "ud60/sqrt_square", "sqrt(x)^2 must recover x", x, s, r)
}

// SquareSqrt: sqrt(x*x) recovers x once the square keeps enough digits.
func SquareSqrt(x dec18.Unsigned) error {
	d := digits(x)
	if d < 10 {
		return verify.ErrDiscard
	}
	sq, err := mul(x, x)
	if err != nil {
		return verify.ErrDiscard
	}
	r, err := sqrt(sq)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := uint(2)
	if d < 19 {
		tol = 20 - d
	}
	ok := verify.EqualWithinDigits(x.Big(), r.Big(), tol)
	return verify.Check(ok, "ud60/square_sqrt", "sqrt(x*x) must recover x", x, sq, r)
}

// SqrtMonotonic: x <= y implies sqrt(x) <= sqrt(y).
func SqrtMonotonic(x, y dec18.Unsigned) error {
	if x.Gt(y) {
		x, y = y, x
	}
	sx, err1 := sqrt(x)
	sy, err2 := sqrt(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	return verify.Check(sx.Lte(sy), "ud60/sqrt_monotonic", "sqrt must be monotonic", x, y, sx, sy)
}

// SqrtContracting: sqrt pulls values above one down and values below one
// up, toward the fixed point at one.
func SqrtContracting(x dec18.Unsigned) error {
	s, err := sqrt(x)
	if err != nil {
		return verify.ErrDiscard
	}
	if x.Gt(dec18.UOne) {
		return verify.Check(s.Lt(x), "ud60/sqrt_contracting", "sqrt(x) must be < x for x > 1", x, s)
	}
	return verify.Check(s.Gte(x) && s.Lte(dec18.UOne), "ud60/sqrt_contracting", "sqrt(x) must stay in [x,1] for x <= 1", x, s)
}
