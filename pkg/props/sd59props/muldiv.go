package sd59props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// MulCommutative: mul(x,y) == mul(y,x), exact, with symmetric failure.
func MulCommutative(x, y dec18.Signed) error {
	a, err1 := mul(x, y)
	b, err2 := mul(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("sd59/mul_commutative", "multiplication must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "sd59/mul_commutative", "multiplication must be commutative", x, y, a, b)
}

// MulIdentity: x*1 == x, x*0 == 0 and x*(-1) == -x for negatable x.
func MulIdentity(x dec18.Signed) error {
	r, err := mul(x, dec18.SOne)
	if err != nil || !r.Eq(x) {
		return verify.Violated("sd59/mul_identity", "x * 1 must equal x", x, r)
	}
	z, err := mul(x, dec18.SZero)
	if err != nil || !z.IsZero() {
		return verify.Violated("sd59/mul_identity", "x * 0 must equal zero", x, z)
	}
	n, err := neg(x)
	if err != nil {
		return nil // SMin: x * -1 behaviour sits in the boundary table
	}
	m, err := mul(x, dec18.SNegOne)
	if err != nil || !m.Eq(n) {
		return verify.Violated("sd59/mul_identity", "x * -1 must equal -x", x, m)
	}
	return nil
}

// MulNegation: (-x)*y == -(x*y), exact because truncation is toward zero
// and therefore symmetric in sign.
func MulNegation(x, y dec18.Signed) error {
	nx, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	p, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	np, err := neg(p)
	if err != nil {
		return verify.ErrDiscard
	}
	l, err := mul(nx, y)
	if err != nil {
		return verify.Violated("sd59/mul_negation", "(-x)*y must not fail when x*y succeeded", x, y)
	}
	return verify.Check(l.Eq(np), "sd59/mul_negation", "(-x)*y must equal -(x*y)", x, y, l, np)
}

// MulAssociative: (x*y)*z == x*(y*z) on the surviving significant digits.
func MulAssociative(x, y, z dec18.Signed) error {
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
	return verify.Check(ok, "sd59/mul_associative", "multiplication must be associative", x, y, z, lhs, rhs)
}

// MulDistributive: x*(y+z) == x*y + x*z on the surviving significant
// digits.
func MulDistributive(x, y, z dec18.Signed) error {
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
	return verify.Check(ok, "sd59/mul_distributive", "multiplication must distribute over addition", x, y, z, lhs, rhs)
}

// MulRange: a non-failing product lies within [SMin, SMax].
func MulRange(x, y dec18.Signed) error {
	r, err := mul(x, y)
	if err != nil {
		return nil
	}
	ok := r.Gte(dec18.SMin) && r.Lte(dec18.SMax)
	return verify.Check(ok, "sd59/mul_range", "product must stay in range", x, y, r)
}

// MulMagnitude: |y| >= 1 keeps |x*y| >= |x|, |y| <= 1 keeps |x*y| <= |x|,
// up to one unit of truncation.
func MulMagnitude(x, y dec18.Signed) error {
	r, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	am := new(big.Int).Abs(r.Big())
	ax := new(big.Int).Abs(x.Big())
	ay := new(big.Int).Abs(y.Big())
	one := dec18.SOne.Big()
	if ay.Cmp(one) >= 0 {
		am.Add(am, big.NewInt(1))
		return verify.Check(am.Cmp(ax) >= 0, "sd59/mul_magnitude", "|x*y| must be >= |x| for |y| >= 1", x, y, r)
	}
	return verify.Check(am.Cmp(ax) <= 0, "sd59/mul_magnitude", "|x*y| must be <= |x| for |y| <= 1", x, y, r)
}

// DivIdentity: x/1 == x, 0/y == 0 and x/x == 1.
func DivIdentity(x dec18.Signed) error {
	r, err := div(x, dec18.SOne)
	if err != nil || !r.Eq(x) {
		return verify.Violated("sd59/div_identity", "x / 1 must equal x", x, r)
	}
	if x.IsZero() {
		return nil
	}
	z, err := div(dec18.SZero, x)
	if err != nil || !z.IsZero() {
		return verify.Violated("sd59/div_identity", "0 / x must equal zero", x, z)
	}
	s, err := div(x, x)
	if err != nil || !s.Eq(dec18.SOne) {
		return verify.Violated("sd59/div_identity", "x / x must equal one", x, s)
	}
	return nil
}

// DivNegation: (-x)/y == -(x/y), truncation included.
func DivNegation(x, y dec18.Signed) error {
	if y.IsZero() {
		return verify.ErrDiscard
	}
	nx, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	q, err := div(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	nq, err := neg(q)
	if err != nil {
		return verify.ErrDiscard
	}
	l, err := div(nx, y)
	if err != nil {
		return verify.Violated("sd59/div_negation", "(-x)/y must not fail when x/y succeeded", x, y)
	}
	return verify.Check(l.Eq(nq), "sd59/div_negation", "(-x)/y must equal -(x/y)", x, y, l, nq)
}

// DivMulRoundtrip: (x/y)*y recovers the significant digits of x that the
// truncated quotient kept.
func DivMulRoundtrip(x, y dec18.Signed) error {
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
	return verify.Check(ok, "sd59/div_mul_roundtrip", "(x/y)*y must recover x", x, y, q, r)
}

// DivByZero: dividing by zero must fail for every x.
func DivByZero(x dec18.Signed) error {
	if _, err := div(x, dec18.SZero); err == nil {
		return verify.Violated("sd59/div_by_zero", "division by zero must fail", x)
	}
	return nil
}

// InvInvolution: inv(inv(x)) recovers x within 2*|ilog10 x| + 2 digits.
// Each truncating division loses up to one unit at the reciprocal's
// scale, and the leading digit squares that loss, so the bound carries
// two digits of headroom.
func InvInvolution(x dec18.Signed) error {
	if x.IsZero() {
		return verify.ErrDiscard
	}
	i1, err := inv(x)
	if err != nil {
		return verify.ErrDiscard
	}
	if i1.IsZero() {
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
	return verify.Check(ok, "sd59/inv_involution", "double inverse must recover x", x, i1, i2)
}

// InvMulOne: x * inv(x) == 1 on the quotient's surviving digits.
func InvMulOne(x dec18.Signed) error {
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
	ok := verify.EqualMostSignificantDigits(dec18.SOne.Big(), p.Big(), budget)
	return verify.Check(ok, "sd59/inv_mul_one", "x * inv(x) must equal one", x, i, p)
}

// GavgSelf: gavg(x,x) == |x|; SMin itself must fail, its square being out
// of range.
func GavgSelf(x dec18.Signed) error {
	r, err := gavg(x, x)
	if err != nil {
		return verify.Check(x.Eq(dec18.SMin), "sd59/gavg_self", "only gavg(SMin,SMin) may fail", x)
	}
	a, err := abs(x)
	if err != nil {
		return verify.ErrDiscard
	}
	return verify.Check(r.Eq(a), "sd59/gavg_self", "gavg(x,x) must equal |x|", x, r, a)
}

// GavgSymmetric: gavg(x,y) == gavg(y,x) with symmetric failure.
func GavgSymmetric(x, y dec18.Signed) error {
	a, err1 := gavg(x, y)
	b, err2 := gavg(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("sd59/gavg_symmetric", "gavg must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "sd59/gavg_symmetric", "gavg must be symmetric", x, y, a, b)
}

// GavgDomain: a strictly negative product must fail; a non-negative one
// must land between the operand magnitudes.
func GavgDomain(x, y dec18.Signed) error {
	r, err := gavg(x, y)
	if x.Sign()*y.Sign() < 0 {
		return verify.Check(err != nil, "sd59/gavg_domain", "gavg of a negative product must fail", x, y)
	}
	if err != nil {
		return verify.ErrDiscard // magnitude overflow near SMin/SMax
	}
	ax := new(big.Int).Abs(x.Big())
	ay := new(big.Int).Abs(y.Big())
	if ax.Cmp(ay) > 0 {
		ax, ay = ay, ax
	}
	rb := new(big.Int).Abs(r.Big())
	hi := rb.Cmp(ay) <= 0
	rb.Add(rb, big.NewInt(1))
	return verify.Check(rb.Cmp(ax) >= 0 && hi, "sd59/gavg_domain", "gavg must lie between the operand magnitudes", x, y, r)
}

func sigMul(a, b dec18.Signed) uint {
	return verify.SignificantDigitsAfterMul(a.Big(), b.Big(), dec18.FracDigits)
}

func minSig(a, b dec18.Signed, floor uint) uint {
	s := sigMul(a, b)
	if s < floor {
		return s
	}
	return floor
}

func minSig3(x, y, z dec18.Signed) uint {
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
