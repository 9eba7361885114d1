package q64props

import (
	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

func bitlen(v q64.Value) uint { return uint(v.Big().BitLen()) }

// AddCommutative: add(x,y) == add(y,x), bit exact. A failure on only one
// side of the law is itself a violation.
func AddCommutative(x, y q64.Value) error {
	a, err1 := add(x, y)
	b, err2 := add(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("q64/add_commutative", "addition must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "q64/add_commutative", "addition must be commutative", x, y, a, b)
}

// AddIdentity: x + 0 == x and 0 + x == x, always succeeding.
func AddIdentity(x q64.Value) error {
	r, err := add(x, q64.Zero)
	if err != nil {
		return verify.Violated("q64/add_identity", "adding zero must not fail", x)
	}
	if !r.Eq(x) {
		return verify.Violated("q64/add_identity", "x + 0 must equal x", x, r)
	}
	l, err := add(q64.Zero, x)
	if err != nil || !l.Eq(x) {
		return verify.Violated("q64/add_identity", "0 + x must equal x", x, l)
	}
	return nil
}

// AddInverse: x + (-x) == 0 for every negatable x.
func AddInverse(x q64.Value) error {
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard // only Min, covered by the boundary table
	}
	r, err := add(x, n)
	if err != nil {
		return verify.Violated("q64/add_inverse", "x + (-x) must not fail", x)
	}
	return verify.Check(r.IsZero(), "q64/add_inverse", "x + (-x) must equal zero", x, r)
}

// AddAssociative: (x+y)+z == x+(y+z), bit exact when both sides are
// representable.
func AddAssociative(x, y, z q64.Value) error {
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
	return verify.Check(lhs.Eq(rhs), "q64/add_associative", "addition must be associative", x, y, z, lhs, rhs)
}

// AddMonotonic: adding y >= 0 never moves the sum below x, adding y < 0
// always moves it below x.
func AddMonotonic(x, y q64.Value) error {
	r, err := add(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if y.Sign() >= 0 {
		return verify.Check(r.Gte(x), "q64/add_monotonic", "x + y must be >= x for y >= 0", x, y, r)
	}
	return verify.Check(r.Lt(x), "q64/add_monotonic", "x + y must be < x for y < 0", x, y, r)
}

// AddRange: a non-failing sum lies within [Min, Max].
func AddRange(x, y q64.Value) error {
	r, err := add(x, y)
	if err != nil {
		return nil // failure is an accepted outcome for out-of-range inputs
	}
	ok := r.Gte(q64.Min) && r.Lte(q64.Max)
	return verify.Check(ok, "q64/add_range", "sum must stay in range", x, y, r)
}

// SubSelf: x - x == 0.
func SubSelf(x q64.Value) error {
	r, err := sub(x, x)
	if err != nil {
		return verify.Violated("q64/sub_self", "x - x must not fail", x)
	}
	return verify.Check(r.IsZero(), "q64/sub_self", "x - x must equal zero", x, r)
}

// SubIdentity: x - 0 == x.
func SubIdentity(x q64.Value) error {
	r, err := sub(x, q64.Zero)
	if err != nil || !r.Eq(x) {
		return verify.Violated("q64/sub_identity", "x - 0 must equal x", x, r)
	}
	return nil
}

// SubAddInverse: x - y == x + (-y) for negatable y, including matching
// failure behaviour.
func SubAddInverse(x, y q64.Value) error {
	n, err := neg(y)
	if err != nil {
		return verify.ErrDiscard
	}
	d, errSub := sub(x, y)
	s, errAdd := add(x, n)
	if (errSub == nil) != (errAdd == nil) {
		return verify.Violated("q64/sub_add_inverse", "x - y and x + (-y) must fail together", x, y)
	}
	if errSub != nil {
		return verify.ErrDiscard
	}
	return verify.Check(d.Eq(s), "q64/sub_add_inverse", "x - y must equal x + (-y)", x, y, d, s)
}

// SubMonotonic mirrors AddMonotonic with the threshold flipped.
func SubMonotonic(x, y q64.Value) error {
	r, err := sub(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if y.Sign() > 0 {
		return verify.Check(r.Lt(x), "q64/sub_monotonic", "x - y must be < x for y > 0", x, y, r)
	}
	return verify.Check(r.Gte(x), "q64/sub_monotonic", "x - y must be >= x for y <= 0", x, y, r)
}

// NegDouble: -(-x) == x; only Min may fail to negate.
func NegDouble(x q64.Value) error {
	n, err := neg(x)
	if err != nil {
		return verify.Check(x.Eq(q64.Min), "q64/neg_double", "only Min may fail negation", x)
	}
	nn, err := neg(n)
	if err != nil {
		return verify.Violated("q64/neg_double", "negating a negated value must not fail", x, n)
	}
	return verify.Check(nn.Eq(x), "q64/neg_double", "double negation must restore x", x, nn)
}

// AbsProperties: |x| is non-negative and equals x or -x.
func AbsProperties(x q64.Value) error {
	a, err := abs(x)
	if err != nil {
		return verify.Check(x.Eq(q64.Min), "q64/abs", "only Min may fail abs", x)
	}
	if a.Sign() < 0 {
		return verify.Violated("q64/abs", "absolute value must be non-negative", x, a)
	}
	if x.Sign() >= 0 {
		return verify.Check(a.Eq(x), "q64/abs", "|x| must equal x for x >= 0", x, a)
	}
	n, _ := neg(x)
	return verify.Check(a.Eq(n), "q64/abs", "|x| must equal -x for x < 0", x, a)
}

// AbsSymmetric: |x| == |-x|.
func AbsSymmetric(x q64.Value) error {
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	a, err1 := abs(x)
	b, err2 := abs(n)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "q64/abs_symmetric", "|x| must equal |-x|", x, a, b)
}

// AbsMultiplicative: |x*y| == |x|*|y| within one unit of floor rounding
// asymmetry.
func AbsMultiplicative(x, y q64.Value) error {
	m, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	am, err := abs(m)
	if err != nil {
		return verify.ErrDiscard
	}
	ax, err1 := abs(x)
	ay, err2 := abs(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	p, err := mul(ax, ay)
	if err != nil {
		return verify.ErrDiscard
	}
	ok := verify.EqualWithinBits(am.Big(), p.Big(), 1)
	return verify.Check(ok, "q64/abs_multiplicative", "|x*y| must equal |x|*|y|", x, y, am, p)
}

// AvgSelf: avg(x,x) == x.
func AvgSelf(x q64.Value) error {
	r := avg(x, x)
	return verify.Check(r.Eq(x), "q64/avg_self", "avg(x,x) must equal x", x, r)
}

// AvgSymmetric: avg(x,y) == avg(y,x).
func AvgSymmetric(x, y q64.Value) error {
	a := avg(x, y)
	b := avg(y, x)
	return verify.Check(a.Eq(b), "q64/avg_symmetric", "avg must be symmetric", x, y, a, b)
}

// AvgBetween: min(x,y) <= avg(x,y) <= max(x,y).
func AvgBetween(x, y q64.Value) error {
	lo, hi := x, y
	if lo.Gt(hi) {
		lo, hi = hi, lo
	}
	r := avg(x, y)
	ok := r.Gte(lo) && r.Lte(hi)
	return verify.Check(ok, "q64/avg_between", "avg must lie between its operands", x, y, r)
}
