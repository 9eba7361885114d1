package ud60props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// MulCommutative: mul(x,y) == mul(y,x), exact, with symmetric failure.
func MulCommutative(x, y dec18.Unsigned) error {
	a, err1 := mul(x, y)
	b, err2 := mul(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("ud60/mul_commutative", "multiplication must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "ud60/mul_commutative", "multiplication must be commutative", x, y, a, b)
}

// MulIdentity: x*1 == x and x*0 == 0.
func MulIdentity(x dec18.Unsigned) error {
	r, err := mul(x, dec18.UOne)
	if err != nil || !r.Eq(x) {
		return verify.Violated("ud60/mul_identity", "x * 1 must equal x", x, r)
	}
	z, err := mul(x, dec18.UZero)
	if err != nil || !z.IsZero() {
		return verify.Violated("ud60/mul_identity", "x * 0 must equal zero", x, z)
	}
	return nil
}

// MulAssociative: (x*y)*z == x*(y*z) on the surviving significant digits.
func MulAssociative(x, y, z dec18.Unsigned) error {
	sig := minSig3(x, y, z)
	if sig < verify.MinSignificantDigits {
		return verify.ErrDiscard
	}
	xy, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := mul(xy, z)
	if err != nil {
		return verify.ErrDiscard
	}
	yz, err := mul(y, z)
	if err != nil {
		return verify.ErrDiscard
	}
	rhs, err := mul(x, yz)
	if err != nil {
		return verify.ErrDiscard
	}
	if lhs.IsZero() || rhs.IsZero() {
		return verify.ErrDiscard
	}
	budget := clampBudget(sig-1, 3, 15)
	ok := verify.EqualMostSignificantDigits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "ud60/mul_associative", "multiplication must be associative", x, y, z, lhs, rhs)
}

// MulDistributive: x*(y+z) == x*y + x*z on the surviving significant
// digits.
func MulDistributive(x, y, z dec18.Unsigned) error {
	s, err := add(y, z)
	if err != nil {
		return verify.ErrDiscard
	}
	sig := minSig(x, s, minSig(x, y, sigMul(x, z)))
	if sig < verify.MinSignificantDigits {
		return verify.ErrDiscard
	}
	lhs, err := mul(x, s)
	if err != nil {
		return verify.ErrDiscard
	}
	xy, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	xz, err := mul(x, z)
	if err != nil {
		return verify.ErrDiscard
	}
	rhs, err := add(xy, xz)
	if err != nil {
		return verify.ErrDiscard
	}
	if lhs.IsZero() || rhs.IsZero() {
		return verify.ErrDiscard
	}
	budget := clampBudget(sig-1, 3, 15)
	ok := verify.EqualMostSignificantDigits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "ud60/mul_distributive", "multiplication must distribute over addition", x, y, z, lhs, rhs)
}

// MulMagnitude: y >= 1 keeps x*y >= x, y <= 1 keeps x*y <= x, up to one
// unit of truncation.
func MulMagnitude(x, y dec18.Unsigned) error {
	r, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	rb := r.Big()
	if y.Gte(dec18.UOne) {
		rb.Add(rb, big.NewInt(1))
		return verify.Check(rb.Cmp(x.Big()) >= 0, "ud60/mul_magnitude", "x*y must be >= x for y >= 1", x, y, r)
	}
	return verify.Check(rb.Cmp(x.Big()) <= 0, "ud60/mul_magnitude", "x*y must be <= x for y <= 1", x, y, r)
}

// DivIdentity: x/1 == x, 0/y == 0 and x/x == 1.
func DivIdentity(x dec18.Unsigned) error {
	r, err := div(x, dec18.UOne)
	if err != nil || !r.Eq(x) {
		return verify.Violated("ud60/div_identity", "x / 1 must equal x", x, r)
	}
	if x.IsZero() {
		return nil
	}
	z, err := div(dec18.UZero, x)
	if err != nil || !z.IsZero() {
		return verify.Violated("ud60/div_identity", "0 / x must equal zero", x, z)
	}
	s, err := div(x, x)
	if err != nil || !s.Eq(dec18.UOne) {
		return verify.Violated("ud60/div_identity", "x / x must equal one", x, s)
	}
	return nil
}

// DivMulRoundtrip: (x/y)*y recovers the significant digits of x that the
// truncated quotient kept.
func DivMulRoundtrip(x, y dec18.Unsigned) error {
	if y.IsZero() || x.IsZero() {
		return verify.ErrDiscard
	}
	q, err := div(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if digits(q) < 5 {
		return verify.ErrDiscard
	}
	r, err := mul(q, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if r.IsZero() {
		// x at the resolution floor loses everything to the two
		// truncations.
		return verify.ErrDiscard
	}
	budget := clampBudget(digits(q)-2, 3, 15)
	ok := verify.EqualMostSignificantDigits(x.Big(), r.Big(), budget)
	return verify.Check(ok, "ud60/div_mul_roundtrip", "(x/y)*y must recover x", x, y, q, r)
}

// DivByZero: dividing by zero must fail for every x.
func DivByZero(x dec18.Unsigned) error {
	if _, err := div(x, dec18.UZero); err == nil {
		return verify.Violated("ud60/div_by_zero", "division by zero must fail", x)
	}
	return nil
}

// DivMagnitude: y > 1 shrinks, y < 1 (nonzero) grows or keeps x/y.
func DivMagnitude(x, y dec18.Unsigned) error {
	if y.IsZero() {
		return verify.ErrDiscard
	}
	r, err := div(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	rb := r.Big()
	if y.Gte(dec18.UOne) {
		return verify.Check(rb.Cmp(x.Big()) <= 0, "ud60/div_magnitude", "x/y must be <= x for y >= 1", x, y, r)
	}
	rb.Add(rb, big.NewInt(1))
	return verify.Check(rb.Cmp(x.Big()) >= 0, "ud60/div_magnitude", "x/y must be >= x for y < 1", x, y, r)
}

// InvInvolution: inv(inv(x)) recovers x within 2*|ilog10 x| + 2 digits.
// Each truncating division loses up to one unit at the reciprocal's
// scale, and the leading digit squares that loss, so the bound carries
// two digits of headroom.
func InvInvolution(x dec18.Unsigned) error {
	if x.IsZero() {
		return verify.ErrDiscard
	}
	i1, err := inv(x)
	if err != nil || i1.IsZero() {
		return verify.ErrDiscard
	}
	i2, err := inv(i1)
	if err != nil {
		return verify.ErrDiscard
	}
	mag := verify.ILog10(x.Big(), dec18.FracDigits)
	if mag < 0 {
		mag = -mag
	}
	tol := uint(2*mag + 2)
	ok := verify.EqualWithinDigits(x.Big(), i2.Big(), tol)
	return verify.Check(ok, "ud60/inv_involution", "double inverse must recover x", x, i1, i2)
}

// InvMulOne: x * inv(x) == 1 on the quotient's surviving digits.
func InvMulOne(x dec18.Unsigned) error {
	if x.IsZero() {
		return verify.ErrDiscard
	}
	i, err := inv(x)
	if err != nil {
		return verify.ErrDiscard
	}
	if digits(i) < 5 || digits(x) < 5 {
		return verify.ErrDiscard
	}
	p, err := mul(x, i)
	if err != nil {
		return verify.ErrDiscard
	}
	budget := clampBudget(minUint(digits(i), digits(x))-2, 3, 15)
	ok := verify.EqualMostSignificantDigits(dec18.UOne.Big(), p.Big(), budget)
	return verify.Check(ok, "ud60/inv_mul_one", "x * inv(x) must equal one", x, i, p)
}

// GavgSelf: gavg(x,x) == x; with no sign and a doubled-width intermediate
// the operation can not fail.
func GavgSelf(x dec18.Unsigned) error {
	r, err := gavg(x, x)
	if err != nil {
		return verify.Violated("ud60/gavg_self", "gavg(x,x) must not fail", x)
	}
	return verify.Check(r.Eq(x), "ud60/gavg_self", "gavg(x,x) must equal x", x, r)
}

// GavgSymmetric: gavg(x,y) == gavg(y,x).
func GavgSymmetric(x, y dec18.Unsigned) error {
	a, err1 := gavg(x, y)
	b, err2 := gavg(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("ud60/gavg_symmetric", "gavg must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "ud60/gavg_symmetric", "gavg must be symmetric", x, y, a, b)
}

// GavgBetween: gavg lands between its operands and below the arithmetic
// mean.
func GavgBetween(x, y dec18.Unsigned) error {
	r, err := gavg(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	lo, hi := x, y
	if lo.Gt(hi) {
		lo, hi = hi, lo
	}
	rb := r.Big()
	if rb.Cmp(hi.Big()) > 0 {
		return verify.Violated("ud60/gavg_between", "gavg must not exceed the larger operand", x, y, r)
	}
	rb.Add(rb, big.NewInt(1))
	if rb.Cmp(lo.Big()) < 0 {
		return verify.Violated("ud60/gavg_between", "gavg must not drop below the smaller operand", x, y, r)
	}
	am := avg(x, y)
	amb := new(big.Int).Add(am.Big(), big.NewInt(1))
	ok := r.Big().Cmp(amb) <= 0
	return verify.Check(ok, "ud60/gavg_between", "gavg must not exceed the arithmetic mean", x, y, r, am)
}

func sigMul(a, b dec18.Unsigned) uint {
	return verify.SignificantDigitsAfterMul(a.Big(), b.Big(), dec18.FracDigits)
}

func minSig(a, b dec18.Unsigned, floor uint) uint {
	s := sigMul(a, b)
	if s < floor {
		return s
	}
	return floor
}

func minSig3(x, y, z dec18.Unsigned) uint {
	return minSig(x, y, minSig(y, z, minSig(x, z, ^uint(0))))
}

func minUint(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

func clampBudget(b, lo, hi uint) uint {
	if b < lo {
		return lo
	}
	if b > hi {
		return hi
	}
	return b
}
