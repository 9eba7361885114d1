package q64props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

// MulCommutative: mul(x,y) == mul(y,x), bit exact, with symmetric
// failure.
func MulCommutative(x, y q64.Value) error {
	a, err1 := mul(x, y)
	b, err2 := mul(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("q64/mul_commutative", "multiplication must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "q64/mul_commutative", "multiplication must be commutative", x, y, a, b)
}

// MulIdentity: x*1 == x, x*0 == 0 and x*(-1) == -x for negatable x.
func MulIdentity(x q64.Value) error {
	r, err := mul(x, q64.One)
	if err != nil || !r.Eq(x) {
		return verify.Violated("q64/mul_identity", "x * 1 must equal x", x, r)
	}
	z, err := mul(x, q64.Zero)
	if err != nil || !z.IsZero() {
		return verify.Violated("q64/mul_identity", "x * 0 must equal zero", x, z)
	}
	n, err := neg(x)
	if err != nil {
		return nil // Min: x * -1 behaviour sits in the boundary table
	}
	m, err := mul(x, q64.NegOne)
	if err != nil || !m.Eq(n) {
		return verify.Violated("q64/mul_identity", "x * -1 must equal -x", x, m)
	}
	return nil
}

// MulAssociative: (x*y)*z == x*(y*z) on the surviving significant bits.
// Inputs whose products exhaust the precision budget are discarded.
func MulAssociative(x, y, z q64.Value) error {
	sig := minSig3(x, y, z)
	if sig < verify.MinSignificantBits {
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
	budget := clampBudget(sig-3, 8, 48)
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "q64/mul_associative", "multiplication must be associative", x, y, z, lhs, rhs)
}

// MulDistributive: x*(y+z) == x*y + x*z on the surviving significant
// bits.
func MulDistributive(x, y, z q64.Value) error {
	s, err := add(y, z)
	if err != nil {
		return verify.ErrDiscard
	}
	sig := minSig(x, s, minSig(x, y, sigMul(x, z)))
	if sig < verify.MinSignificantBits {
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
	budget := clampBudget(sig-3, 8, 48)
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "q64/mul_distributive", "multiplication must distribute over addition", x, y, z, lhs, rhs)
}

// MulRange: a non-failing product lies within [Min, Max].
func MulRange(x, y q64.Value) error {
	r, err := mul(x, y)
	if err != nil {
		return nil
	}
	ok := r.Gte(q64.Min) && r.Lte(q64.Max)
	return verify.Check(ok, "q64/mul_range", "product must stay in range", x, y, r)
}

// MulMagnitude: |y| >= 1 keeps |x*y| >= |x|, |y| <= 1 keeps |x*y| <= |x|,
// up to one unit of floor rounding.
func MulMagnitude(x, y q64.Value) error {
	r, err := mul(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	am := new(big.Int).Abs(r.Big())
	ax := new(big.Int).Abs(x.Big())
	ay := new(big.Int).Abs(y.Big())
	one := q64.One.Big()
	if ay.Cmp(one) >= 0 {
		am.Add(am, big.NewInt(1))
		return verify.Check(am.Cmp(ax) >= 0, "q64/mul_magnitude", "|x*y| must be >= |x| for |y| >= 1", x, y, r)
	}
	return verify.Check(am.Cmp(ax) <= 0, "q64/mul_magnitude", "|x*y| must be <= |x| for |y| <= 1", x, y, r)
}

// DivIdentity: x/1 == x, 0/y == 0 and x/x == 1.
func DivIdentity(x q64.Value) error {
	r, err := div(x, q64.One)
	if err != nil || !r.Eq(x) {
		return verify.Violated("q64/div_identity", "x / 1 must equal x", x, r)
	}
	if x.IsZero() {
		return nil
	}
	z, err := div(q64.Zero, x)
	if err != nil || !z.IsZero() {
		return verify.Violated("q64/div_identity", "0 / x must equal zero", x, z)
	}
	s, err := div(x, x)
	if err != nil || !s.Eq(q64.One) {
		return verify.Violated("q64/div_identity", "x / x must equal one", x, s)
	}
	return nil
}

// DivNegation: (-x)/y == -(x/y), truncation included.
func DivNegation(x, y q64.Value) error {
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
		return verify.Violated("q64/div_negation", "(-x)/y must not fail when x/y succeeded", x, y)
	}
	return verify.Check(l.Eq(nq), "q64/div_negation", "(-x)/y must equal -(x/y)", x, y, l, nq)
}

// DivMulRoundtrip: (x/y)*y recovers the significant bits of x that the
// truncated quotient kept.
func DivMulRoundtrip(x, y q64.Value) error {
	if y.IsZero() || x.IsZero() {
		return verify.ErrDiscard
	}
	q, err := div(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if bitlen(q) < 14 {
		return verify.ErrDiscard
	}
	r, err := mul(q, y)
	if err != nil {
		return verify.ErrDiscard
	}
	if r.IsZero() {
		// x at the resolution floor loses everything to the two
		// roundings.
		return verify.ErrDiscard
	}
	budget := clampBudget(bitlen(q)-4, 8, 48)
	ok := verify.EqualMostSignificantBits(x.Big(), r.Big(), budget)
	return verify.Check(ok, "q64/div_mul_roundtrip", "(x/y)*y must recover x", x, y, q, r)
}

// DivByZero: dividing by zero must fail for every x.
func DivByZero(x q64.Value) error {
	if _, err := div(x, q64.Zero); err == nil {
		return verify.Violated("q64/div_by_zero", "division by zero must fail", x)
	}
	return nil
}

// DivMagnitude: |y| > 1 shrinks, |y| < 1 (nonzero) grows or keeps |x/y|.
func DivMagnitude(x, y q64.Value) error {
	if y.IsZero() {
		return verify.ErrDiscard
	}
	r, err := div(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	aq := new(big.Int).Abs(r.Big())
	ax := new(big.Int).Abs(x.Big())
	ay := new(big.Int).Abs(y.Big())
	if ay.Cmp(q64.One.Big()) >= 0 {
		return verify.Check(aq.Cmp(ax) <= 0, "q64/div_magnitude", "|x/y| must be <= |x| for |y| >= 1", x, y, r)
	}
	aq.Add(aq, big.NewInt(1))
	return verify.Check(aq.Cmp(ax) >= 0, "q64/div_magnitude", "|x/y| must be >= |x| for |y| < 1", x, y, r)
}

// InvInvolution: inv(inv(x)) recovers x within 2*|ilog2 x| + 2 bits, the
// analytically derived double-truncation bound.
func InvInvolution(x q64.Value) error {
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
	mag := verify.ILog2(x.Big(), q64.FracBits)
	if mag < 0 {
		mag = -mag
	}
	tol := uint(2*mag + 2)
	ok := verify.EqualWithinBits(x.Big(), i2.Big(), tol)
	return verify.Check(ok, "q64/inv_involution", "double inverse must recover x", x, i1, i2)
}

// InvMulOne: x * inv(x) == 1 on the quotient's surviving bits.
func InvMulOne(x q64.Value) error {
	if x.IsZero() {
		return verify.ErrDiscard
	}
	i, err := inv(x)
	if err != nil {
		return verify.ErrDiscard
	}
	if bitlen(i) < 14 || bitlen(x) < 14 {
		return verify.ErrDiscard
	}
	p, err := mul(x, i)
	if err != nil {
		return verify.ErrDiscard
	}
	budget := clampBudget(minUint(bitlen(i), bitlen(x))-4, 8, 48)
	ok := verify.EqualMostSignificantBits(q64.One.Big(), p.Big(), budget)
	return verify.Check(ok, "q64/inv_mul_one", "x * inv(x) must equal one", x, i, p)
}

// InvNegation: inv(-x) == -inv(x), truncation included.
func InvNegation(x q64.Value) error {
	if x.IsZero() {
		return verify.ErrDiscard
	}
	nx, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	a, err1 := inv(nx)
	b, err2 := inv(x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("q64/inv_negation", "inv must fail symmetrically in sign", x)
		}
		return verify.ErrDiscard
	}
	nb, err := neg(b)
	if err != nil {
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(nb), "q64/inv_negation", "inv(-x) must equal -inv(x)", x, a, nb)
}

// GavgSelf: gavg(x,x) == |x|; Min itself must fail, its square being out
// of range.
func GavgSelf(x q64.Value) error {
	r, err := gavg(x, x)
	if x.Eq(q64.Min) {
		return verify.Check(err != nil, "q64/gavg_self", "gavg(Min,Min) must fail", x)
	}
	if err != nil {
		return verify.Violated("q64/gavg_self", "gavg(x,x) must not fail", x)
	}
	a, err := abs(x)
	if err != nil {
		return verify.ErrDiscard
	}
	return verify.Check(r.Eq(a), "q64/gavg_self", "gavg(x,x) must equal |x|", x, r, a)
}

// GavgSymmetric: gavg(x,y) == gavg(y,x) with symmetric failure.
func GavgSymmetric(x, y q64.Value) error {
	a, err1 := gavg(x, y)
	b, err2 := gavg(y, x)
	if err1 != nil || err2 != nil {
		if (err1 == nil) != (err2 == nil) {
			return verify.Violated("q64/gavg_symmetric", "gavg must fail symmetrically", x, y)
		}
		return verify.ErrDiscard
	}
	return verify.Check(a.Eq(b), "q64/gavg_symmetric", "gavg must be symmetric", x, y, a, b)
}

// GavgDomain: a strictly negative product must fail; a non-negative one
// must land between the operand magnitudes.
func GavgDomain(x, y q64.Value) error {
	r, err := gavg(x, y)
	if x.Sign()*y.Sign() < 0 {
		return verify.Check(err != nil, "q64/gavg_domain", "gavg of a negative product must fail", x, y)
	}
	if err != nil {
		return verify.ErrDiscard // magnitude overflow near Min/Max
	}
	ax := new(big.Int).Abs(x.Big())
	ay := new(big.Int).Abs(y.Big())
	if ax.Cmp(ay) > 0 {
		ax, ay = ay, ax
	}
	rb := new(big.Int).Abs(r.Big())
	hi := rb.Cmp(ay) <= 0
	rb.Add(rb, big.NewInt(1))
	return verify.Check(rb.Cmp(ax) >= 0 && hi, "q64/gavg_domain", "gavg must lie between the operand magnitudes", x, y, r)
}

func sigMul(a, b q64.Value) uint {
	return verify.SignificantBitsAfterMul(a.Big(), b.Big(), q64.FracBits)
}

func minSig(a, b q64.Value, floor uint) uint {
	s := sigMul(a, b)
	if s < floor {
		return s
	}
	return floor
}

func minSig3(x, y, z q64.Value) uint {
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
