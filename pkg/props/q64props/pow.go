package q64props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

// PowZeroExponent: x^0 == 1 for every representable x, 0^0 included.
func PowZeroExponent(x q64.Value) error {
	r, err := powu(x, 0)
	if err != nil || !r.Eq(q64.One) {
		return verify.Violated("q64/pow_zero_exponent", "x^0 must equal one", x, r)
	}
	return nil
}

// PowOneExponent: x^1 == x, bit exact.
func PowOneExponent(x q64.Value) error {
	r, err := powu(x, 1)
	if err != nil || !r.Eq(x) {
		return verify.Violated("q64/pow_one_exponent", "x^1 must equal x", x, r)
	}
	return nil
}

// PowZeroBase: 0^n == 0 for n > 0.
func PowZeroBase(n uint64) error {
	if n == 0 {
		return verify.ErrDiscard
	}
	r, err := powu(q64.Zero, n)
	if err != nil || !r.IsZero() {
		return verify.Violated("q64/pow_zero_base", "0^n must equal zero for n > 0", q64.Zero, r)
	}
	return nil
}

// PowAddExponents: x^a * x^b == x^(a+b) on the surviving bits, in the
// band where repeated flooring stays observable.
func PowAddExponents(x q64.Value, a, b uint64) error {
	if a > 16 || b > 16 {
		return verify.ErrDiscard
	}
	if bl := bitlen(x); bl < 32 || bl > 96 {
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
	lhs, err := mul(pa, pb)
	if err != nil {
		return verify.ErrDiscard
	}
	rhs, err := powu(x, a+b)
	if err != nil {
		return verify.ErrDiscard
	}
	if lhs.IsZero() || rhs.IsZero() {
		return verify.ErrDiscard
	}
	minbl := minUint(bitlen(lhs), bitlen(rhs))
	if minbl < 24 {
		return verify.ErrDiscard
	}
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), clampBudget(minbl-10, 8, 40))
	return verify.Check(ok, "q64/pow_add_exponents", "x^a * x^b must equal x^(a+b)", x, lhs, rhs)
}

// PowSign: even exponents yield non-negative results, odd exponents keep
// the base's sign (unless precision collapsed the result to zero).
func PowSign(x q64.Value, n uint64) error {
	r, err := powu(x, n)
	if err != nil || n == 0 {
		return verify.ErrDiscard
	}
	if r.IsZero() {
		return nil
	}
	if n%2 == 0 {
		return verify.Check(r.Sign() > 0, "q64/pow_sign", "even powers must be non-negative", x, r)
	}
	ok := r.Sign() == x.Sign()
	return verify.Check(ok, "q64/pow_sign", "odd powers must keep the base's sign", x, r)
}

// PowMagnitude: |x| >= 1 keeps |x^n| >= 1 and |x| <= 1 keeps |x^n| <= 1.
func PowMagnitude(x q64.Value, n uint64) error {
	r, err := powu(x, n)
	if err != nil {
		return verify.ErrDiscard
	}
	ar := new(big.Int).Abs(r.Big())
	ax := new(big.Int).Abs(x.Big())
	one := q64.One.Big()
	if ax.Cmp(one) >= 0 {
		return verify.Check(ar.Cmp(one) >= 0, "q64/pow_magnitude", "|x^n| must be >= 1 for |x| >= 1", x, r)
	}
	return verify.Check(ar.Cmp(one) <= 0, "q64/pow_magnitude", "|x^n| must be <= 1 for |x| <= 1", x, r)
}

// SqrtSquare: sqrt(x)^2 recovers x within the floor bound scaled by the
// root's magnitude.
func SqrtSquare(x q64.Value) error {
	s, err := sqrt(x)
	if err != nil {
		return verify.Check(x.Sign() < 0, "q64/sqrt_square", "sqrt may fail only below zero", x)
	}
	p, err := mul(s, s)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := uint(2)
	if bl := bitlen(s); bl > q64.FracBits {
		tol = bl - q64.FracBits + 2
	}
	ok := verify.EqualWithinBits(x.Big(), p.Big(), tol)
	return verify.Check(ok, "q64/sqrt_square", "sqrt(x)^2 must recover x", x, s, p)
}

// SquareSqrt: sqrt(x*x) == |x| within the bound the squaring floor
// leaves. Below about 2^-30 the square collapses entirely and the input
// is discarded.
func SquareSqrt(x q64.Value) error {
	if bitlen(x) < 34 {
		return verify.ErrDiscard
	}
	p, err := mul(x, x)
	if err != nil {
		return verify.ErrDiscard
	}
	s, err := sqrt(p)
	if err != nil {
		return verify.Violated("q64/square_sqrt", "sqrt of a square must not fail", x, p)
	}
	a, err := abs(x)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := uint(2)
	if bl := bitlen(x); bl < q64.FracBits {
		tol = q64.FracBits - bl + 2
	}
	ok := verify.EqualWithinBits(s.Big(), a.Big(), tol)
	return verify.Check(ok, "q64/square_sqrt", "sqrt(x*x) must equal |x|", x, s, a)
}

// SqrtMonotonic: x <= y implies sqrt(x) <= sqrt(y).
func SqrtMonotonic(x, y q64.Value) error {
	if x.Gt(y) {
		x, y = y, x
	}
	sx, err := sqrt(x)
	if err != nil {
		return verify.ErrDiscard
	}
	sy, err := sqrt(y)
	if err != nil {
		return verify.Violated("q64/sqrt_monotonic", "sqrt(y) must succeed when sqrt(x) did for x <= y", x, y)
	}
	return verify.Check(sx.Lte(sy), "q64/sqrt_monotonic", "sqrt must be monotonic", x, y, sx, sy)
}

// SqrtContracting: sqrt(x) <= x for x >= 1 and sqrt(x) >= x for x in
// [0, 1].
func SqrtContracting(x q64.Value) error {
	if x.Sign() < 0 {
		return verify.ErrDiscard
	}
	s, err := sqrt(x)
	if err != nil {
		return verify.ErrDiscard
	}
	if x.Gte(q64.One) {
		return verify.Check(s.Lte(x), "q64/sqrt_contracting", "sqrt(x) must be <= x for x >= 1", x, s)
	}
	return verify.Check(s.Gte(x), "q64/sqrt_contracting", "sqrt(x) must be >= x for x <= 1", x, s)
}
