package sd59props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// digits returns the decimal digit count of the raw integer, 0 for zero.
func digits(v dec18.Signed) uint {
	b := new(big.Int).Abs(v.Big())
	if b.Sign() == 0 {
		return 0
	}
	return uint(len(b.String()))
}

// AddCommutative: add(x,y) == add(y,x), exact, with symmetric failure.
func AddCommutative(x, y dec18.Signed) error {
	a, err1 := add(x, y)
	b, err2 := add(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("sd59/add_commutative", "addition must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "sd59/add_commutative", "addition must be commutative", x, y, a, b)
}

// AddIdentity: x + 0 == x and 0 + x == x, always succeeding.
func AddIdentity(x dec18.Signed) error {
	r, err := add(x, dec18.SZero)
	if err != nil || !r.Eq(x) {
		return verify.Violated("sd59/add_identity", "x + 0 must equal x", x, r)
	}
	l, err := add(dec18.SZero, x)
	if err != nil || !l.Eq(x) {
		return verify.Violated("sd59/add_identity", "0 + x must equal x", x, l)
	}
	return nil
}

// AddInverse: x + (-x) == 0 for every negatable x.
func AddInverse(x dec18.Signed) error {
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard // only SMin, covered by the boundary table
	}
	r, err := add(x, n)
	if err != nil {
		return verify.Violated("sd59/add_inverse", "x + (-x) must not fail", x)
	}
	return verify.Check(r.IsZero(), "sd59/add_inverse", "x + (-x) must equal zero", x, r)
}

// AddAssociative: (x+y)+z == x+(y+z), exact when both sides are
// representable.
func AddAssociative(x, y, z dec18.Signed) error {
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
	return verify.Check(lhs.Eq(rhs), "sd59/add_associative", "addition must be associative", x, y, z, lhs, rhs)
}

// AddMonotonic: adding y >= 0 never moves the sum below x.
func AddMonotonic(x, y dec18.Signed) error {
	r, err := add(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if y.Sign() >= 0 {
		return verify.Check(r.Gte(x), "sd59/add_monotonic", "x + y must be >= x for y >= 0", x, y, r)
	}
	return verify.Check(r.Lt(x), "sd59/add_monotonic", "x + y must be < x for y < 0", x, y, r)
}

// AddRange: a non-failing sum lies within [SMin, SMax].
func AddRange(x, y dec18.Signed) error {
	r, err := add(x, y)
	if err != nil {
		return nil
	}
	ok := r.Gte(dec18.SMin) && r.Lte(dec18.SMax)
	return verify.Check(ok, "sd59/add_range", "sum must stay in range", x, y, r)
}

// SubSelf: x - x == 0.
func SubSelf(x dec18.Signed) error {
	r, err := sub(x, x)
	if err != nil {
		return verify.Violated("sd59/sub_self", "x - x must not fail", x)
	}
	return verify.Check(r.IsZero(), "sd59/sub_self", "x - x must equal zero", x, r)
}

// SubAddInverse: x - y == x + (-y) for negatable y, including matching
// failure behaviour.
func SubAddInverse(x, y dec18.Signed) error {
	n, err := neg(y)
	if err != nil {
		return verify.ErrDiscard
	}
	d, errSub := sub(x, y)
	s, errAdd := add(x, n)
	if (errSub == nil) != (errAdd == nil) {
		return verify.Violated("sd59/sub_add_inverse", "x - y and x + (-y) must fail together", x, y)
	}
	if errSub != nil {
		return verify.ErrDiscard
	}
	return verify.Check(d.Eq(s), "sd59/sub_add_inverse", "x - y must equal x + (-y)", x, y, d, s)
}

// NegDouble: -(-x) == x; only SMin may fail to negate.
func NegDouble(x dec18.Signed) error {
	n, err := neg(x)
	if err != nil {
		return verify.Check(x.Eq(dec18.SMin), "sd59/neg_double", "only SMin may fail negation", x)
	}
	nn, err := neg(n)
	if err != nil {
		return verify.Violated("sd59/neg_double", "negating a negated value must not fail", x, n)
	}
	return verify.Check(nn.Eq(x), "sd59/neg_double", "double negation must restore x", x, nn)
}

// AbsProperties: |x| is non-negative and equals x or -x.
func AbsProperties(x dec18.Signed) error {
	a, err := abs(x)
	if err != nil {
		return verify.Check(x.Eq(dec18.SMin), "sd59/abs", "only SMin may fail abs", x)
	}
	if a.Sign() < 0 {
		return verify.Violated("sd59/abs", "absolute value must be non-negative", x, a)
	}
	if x.Sign() >= 0 {
		return verify.Check(a.Eq(x), "sd59/abs", "|x| must equal x for x >= 0", x, a)
	}
	n, _ := neg(x)
	return verify.Check(a.Eq(n), "sd59/abs", "|x| must equal -x for x < 0", x, a)
}

// AvgSelf: avg(x,x) == x.
func AvgSelf(x dec18.Signed) error {
	r := avg(x, x)
	return verify.Check(r.Eq(x), "sd59/avg_self", "avg(x,x) must equal x", x, r)
}

// AvgSymmetric: avg(x,y) == avg(y,x).
func AvgSymmetric(x, y dec18.Signed) error {
	a := avg(x, y)
	b := avg(y, x)
	return verify.Check(a.Eq(b), "sd59/avg_symmetric", "avg must be symmetric", x, y, a, b)
}

// AvgBetween: min(x,y) <= avg(x,y) <= max(x,y).
func AvgBetween(x, y dec18.Signed) error {
	lo, hi := x, y
	if lo.Gt(hi) {
		lo, hi = hi, lo
	}
	r := avg(x, y)
	ok := r.Gte(lo) && r.Lte(hi)
	return verify.Check(ok, "sd59/avg_between", "avg must lie between its operands", x, y, r)
}
