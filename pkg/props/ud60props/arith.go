package ud60props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// digits returns the decimal digit count of the raw integer, 0 for zero.
func digits(v dec18.Unsigned) uint {
	b := v.Big()
	if b.Sign() == 0 {
		return 0
	}
	return uint(len(b.String()))
}

// AddCommutative: add(x,y) == add(y,x), exact, with symmetric failure.
func AddCommutative(x, y dec18.Unsigned) error {
	a, err1 := add(x, y)
	b, err2 := add(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("ud60/add_commutative", "addition must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "ud60/add_commutative", "addition must be commutative", x, y, a, b)
}

// AddIdentity: x + 0 == x and 0 + x == x, always succeeding.
func AddIdentity(x dec18.Unsigned) error {
	r, err := add(x, dec18.UZero)
	if err != nil || !r.Eq(x) {
		return verify.Violated("ud60/add_identity", "x + 0 must equal x", x, r)
	}
	l, err := add(dec18.UZero, x)
	if err != nil || !l.Eq(x) {
		return verify.Violated("ud60/add_identity", "0 + x must equal x", x, l)
	}
	return nil
}

// AddAssociative: (x+y)+z == x+(y+z), exact when both sides are
// representable.
func AddAssociative(x, y, z dec18.Unsigned) error {
	xy, err := add(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := add(xy, z)
	if err != nil {
		return verify.ErrDiscard
	}
	yz, err := add(y, z)
	if err != nil {
		return verify.ErrDiscard
	}
	rhs, err := add(x, yz)
	if err != nil {
		return verify.ErrDiscard
	}
	return verify.Check(lhs.Eq(rhs), "ud60/add_associative", "addition must be associative", x, y, z, lhs, rhs)
}

// AddMonotonic: without negative operands a sum never drops below either
// operand.
func AddMonotonic(x, y dec18.Unsigned) error {
	r, err := add(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	ok := r.Gte(x) && r.Gte(y)
	return verify.Check(ok, "ud60/add_monotonic", "x + y must be >= both operands", x, y, r)
}

// AddRange: a non-failing sum lies within [0, UMax].
func AddRange(x, y dec18.Unsigned) error {
	r, err := add(x, y)
	if err != nil {
		return nil
	}
	return verify.Check(r.Lte(dec18.UMax), "ud60/add_range", "sum must stay in range", x, y, r)
}

// SubSelf: x - x == 0.
func SubSelf(x dec18.Unsigned) error {
	r, err := sub(x, x)
	if err != nil {
		return verify.Violated("ud60/sub_self", "x - x must not fail", x)
	}
	return verify.Check(r.IsZero(), "ud60/sub_self", "x - x must equal zero", x, r)
}

// SubUnderflow: x - y fails exactly when y > x; otherwise the difference
// adds back to x.
func SubUnderflow(x, y dec18.Unsigned) error {
	r, err := sub(x, y)
	if y.Gt(x) {
		return verify.Check(err != nil, "ud60/sub_underflow", "x - y must fail for y > x", x, y)
	}
	if err != nil {
		return verify.Violated("ud60/sub_underflow", "x - y must succeed for y <= x", x, y)
	}
	s, err := add(r, y)
	if err != nil || !s.Eq(x) {
		return verify.Violated("ud60/sub_underflow", "(x - y) + y must restore x", x, y, r, s)
	}
	return nil
}

// SubMonotonic: subtracting never grows the value.
func SubMonotonic(x, y dec18.Unsigned) error {
	r, err := sub(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	return verify.Check(r.Lte(x), "ud60/sub_monotonic", "x - y must be <= x", x, y, r)
}

// AvgSelf: avg(x,x) == x.
func AvgSelf(x dec18.Unsigned) error {
	r := avg(x, x)
	return verify.Check(r.Eq(x), "ud60/avg_self", "avg(x,x) must equal x", x, r)
}

// AvgSymmetric: avg(x,y) == avg(y,x).
func AvgSymmetric(x, y dec18.Unsigned) error {
	a := avg(x, y)
	b := avg(y, x)
	return verify.Check(a.Eq(b), "ud60/avg_symmetric", "avg must be symmetric", x, y, a, b)
}

// AvgBetween: min(x,y) <= avg(x,y) <= max(x,y).
func AvgBetween(x, y dec18.Unsigned) error {
	lo, hi := x, y
	if lo.Gt(hi) {
		lo, hi = hi, lo
	}
	r := avg(x, y)
	ok := r.Gte(lo) && r.Lte(hi)
	return verify.Check(ok, "ud60/avg_between", "avg must lie between its operands", x, y, r)
}

// AvgSum: 2*avg(x,y) recovers x+y up to the floored low bit.
func AvgSum(x, y dec18.Unsigned) error {
	r := avg(x, y)
	twice := new(big.Int).Lsh(r.Big(), 1)
	s := new(big.Int).Add(x.Big(), y.Big())
	d := s.Sub(s, twice)
	ok := d.Sign() >= 0 && d.Cmp(big.NewInt(1)) <= 0
	return verify.Check(ok, "ud60/avg_sum", "2*avg(x,y) must equal x+y up to the floored bit", x, y, r)
}
