package q64props

import (
	"math/big"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Tolerances in this file are derived from the operands' magnitudes: a
// truncated product shifts its logarithm by about 2^(64-sig) raw units,
// and a logarithm off by e moves the exponential by a factor 2^e.

// Log2ProductRule: log2(x*y) == log2(x) + log2(y) within the bits the
// product truncation left intact.
func Log2ProductRule(x, y q64.Value) error {
	if x.Sign() <= 0 || y.Sign() <= 0 {
		return verify.ErrDiscard
	}
	sig := sigMul(x, y)
	if sig < verify.MinSignificantBits {
		return verify.ErrDiscard
	}
	m, err := mul(x, y)
	if err != nil || m.IsZero() {
		return verify.ErrDiscard
	}
	lm, err := log2(m)
	if err != nil {
		return verify.Violated("q64/log2_product", "log2 of a positive product must not fail", x, y, m)
	}
	lx, err1 := log2(x)
	ly, err2 := log2(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	s, err := add(lx, ly)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := clampBudget(q64.FracBits-sig+4, 4, q64.FracBits)
	ok := verify.EqualWithinBits(lm.Big(), s.Big(), tol)
	return verify.Check(ok, "q64/log2_product", "log2(x*y) must equal log2(x)+log2(y)", x, y, lm, s)
}

// Log2PowerRule: log2(x^n) == n * log2(x) within the bound the repeated
// squaring truncation allows.
func Log2PowerRule(x q64.Value, n uint64) error {
	if x.Sign() <= 0 || n == 0 || n > 32 {
		return verify.ErrDiscard
	}
	p, err := powu(x, n)
	if err != nil || p.IsZero() {
		return verify.ErrDiscard
	}
	if bl := bitlen(p); bl < 24 || bl > 120 {
		return verify.ErrDiscard
	}
	lp, err := log2(p)
	if err != nil {
		return verify.Violated("q64/log2_power", "log2 of a positive power must not fail", x, p)
	}
	lx, err := log2(x)
	if err != nil {
		return verify.ErrDiscard
	}
	expected := new(big.Int).Mul(lx.Big(), new(big.Int).SetUint64(n))
	tol := clampBudget(q64.FracBits-bitlen(p)+ilog2u(n)+6, 6, q64.FracBits)
	ok := verify.EqualWithinBits(expected, lp.Big(), tol)
	return verify.Check(ok, "q64/log2_power", "log2(x^n) must equal n*log2(x)", x, p, lp)
}

// Log10ProductRule: log10(x*y) == log10(x) + log10(y) within the same
// truncation-driven bound as the base-2 law.
func Log10ProductRule(x, y q64.Value) error {
	if x.Sign() <= 0 || y.Sign() <= 0 {
		return verify.ErrDiscard
	}
	sig := sigMul(x, y)
	if sig < verify.MinSignificantBits {
		return verify.ErrDiscard
	}
	m, err := mul(x, y)
	if err != nil || m.IsZero() {
		return verify.ErrDiscard
	}
	lm, err := log10(m)
	if err != nil {
		return verify.Violated("q64/log10_product", "log10 of a positive product must not fail", x, y, m)
	}
	lx, err1 := log10(x)
	ly, err2 := log10(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	s, err := add(lx, ly)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := clampBudget(q64.FracBits-sig+5, 5, q64.FracBits)
	ok := verify.EqualWithinBits(lm.Big(), s.Big(), tol)
	return verify.Check(ok, "q64/log10_product", "log10(x*y) must equal log10(x)+log10(y)", x, y, lm, s)
}

// LogDomain: logarithms of zero or negative arguments must fail, in every
// base.
func LogDomain(x q64.Value) error {
	if x.Sign() > 0 {
		return verify.ErrDiscard
	}
	if _, err := log2(x); err == nil {
		return verify.Violated("q64/log_domain", "log2 of a non-positive value must fail", x)
	}
	if _, err := ln(x); err == nil {
		return verify.Violated("q64/log_domain", "ln of a non-positive value must fail", x)
	}
	if _, err := log10(x); err == nil {
		return verify.Violated("q64/log_domain", "log10 of a non-positive value must fail", x)
	}
	return nil
}

// LogMonotonic: 0 < x <= y implies log2(x) <= log2(y), with a few raw
// units of slack for the mantissa truncation.
func LogMonotonic(x, y q64.Value) error {
	if x.Sign() <= 0 || y.Sign() <= 0 {
		return verify.ErrDiscard
	}
	if x.Gt(y) {
		x, y = y, x
	}
	lx, err1 := log2(x)
	ly, err2 := log2(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	slack := new(big.Int).Add(ly.Big(), big.NewInt(4))
	ok := lx.Big().Cmp(slack) <= 0
	return verify.Check(ok, "q64/log_monotonic", "log2 must be monotonic", x, y, lx, ly)
}

// Exp2Log2Roundtrip: exp2(log2(x)) recovers the leading bits of x; the
// budget shrinks with the argument's magnitude, topping out at the
// format's ~50 dependable bits.
func Exp2Log2Roundtrip(x q64.Value) error {
	if x.Sign() <= 0 {
		return verify.ErrDiscard
	}
	bl := bitlen(x)
	if bl < 14 {
		return verify.ErrDiscard
	}
	l, err := log2(x)
	if err != nil {
		return verify.Violated("q64/exp2_log2_roundtrip", "log2 of a positive value must not fail", x)
	}
	e, err := exp2(l)
	if err != nil {
		if bl >= 126 {
			return verify.ErrDiscard // rounding at the very top of the range
		}
		return verify.Violated("q64/exp2_log2_roundtrip", "exp2(log2(x)) must not fail", x, l)
	}
	budget := clampBudget(minUint(50, bl-4), 8, 50)
	ok := verify.EqualMostSignificantBits(x.Big(), e.Big(), budget)
	return verify.Check(ok, "q64/exp2_log2_roundtrip", "exp2(log2(x)) must recover x", x, l, e)
}

// Log2Exp2Roundtrip: log2(exp2(y)) recovers y within the bound the
// exponential's output resolution leaves.
func Log2Exp2Roundtrip(y q64.Value) error {
	e, err := exp2(y)
	if err != nil {
		if y.Lt(q64.FromInt(63)) {
			return verify.Violated("q64/log2_exp2_roundtrip", "exp2 must not fail below the overflow bound", y)
		}
		return verify.ErrDiscard
	}
	if e.IsZero() {
		return verify.ErrDiscard // documented underflow
	}
	if bitlen(e) < 14 {
		return verify.ErrDiscard
	}
	l, err := log2(e)
	if err != nil {
		return verify.Violated("q64/log2_exp2_roundtrip", "log2 of a positive exp2 must not fail", y, e)
	}
	tol := clampBudget(q64.FracBits-bitlen(e)+5, 5, q64.FracBits)
	ok := verify.EqualWithinBits(y.Big(), l.Big(), tol)
	return verify.Check(ok, "q64/log2_exp2_roundtrip", "log2(exp2(y)) must recover y", y, e, l)
}

// ExpLnRoundtrip: exp(ln(x)) recovers x with a slightly tighter budget
// than the base-2 pair, the base conversion costing a few bits.
func ExpLnRoundtrip(x q64.Value) error {
	if x.Sign() <= 0 {
		return verify.ErrDiscard
	}
	bl := bitlen(x)
	if bl < 14 {
		return verify.ErrDiscard
	}
	l, err := ln(x)
	if err != nil {
		return verify.Violated("q64/exp_ln_roundtrip", "ln of a positive value must not fail", x)
	}
	e, err := exp(l)
	if err != nil {
		if bl >= 126 {
			return verify.ErrDiscard
		}
		return verify.Violated("q64/exp_ln_roundtrip", "exp(ln(x)) must not fail", x, l)
	}
	if e.IsZero() {
		return verify.ErrDiscard
	}
	budget := clampBudget(minUint(46, bl-6), 8, 46)
	ok := verify.EqualMostSignificantBits(x.Big(), e.Big(), budget)
	return verify.Check(ok, "q64/exp_ln_roundtrip", "exp(ln(x)) must recover x", x, l, e)
}

// Exp2Sum: exp2(x+y) == exp2(x) * exp2(y) within a fixed budget inside
// the band where neither side underflows.
func Exp2Sum(x, y q64.Value) error {
	if !inBand(x, 30) || !inBand(y, 30) {
		return verify.ErrDiscard
	}
	s, err := add(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := exp2(s)
	if err != nil || lhs.IsZero() {
		return verify.ErrDiscard
	}
	ex, err1 := exp2(x)
	ey, err2 := exp2(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	rhs, err := mul(ex, ey)
	if err != nil || rhs.IsZero() {
		return verify.ErrDiscard
	}
	minbl := minUint(bitlen(lhs), bitlen(rhs))
	if minbl < 24 {
		return verify.ErrDiscard
	}
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), clampBudget(minbl-10, 8, 28))
	return verify.Check(ok, "q64/exp2_sum", "exp2(x+y) must equal exp2(x)*exp2(y)", x, y, lhs, rhs)
}

// ExpSum is the natural-base analogue of Exp2Sum.
func ExpSum(x, y q64.Value) error {
	if !inBand(x, 20) || !inBand(y, 20) {
		return verify.ErrDiscard
	}
	s, err := add(x, y)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := exp(s)
	if err != nil || lhs.IsZero() {
		return verify.ErrDiscard
	}
	ex, err1 := exp(x)
	ey, err2 := exp(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	rhs, err := mul(ex, ey)
	if err != nil || rhs.IsZero() {
		return verify.ErrDiscard
	}
	minbl := minUint(bitlen(lhs), bitlen(rhs))
	if minbl < 24 {
		return verify.ErrDiscard
	}
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), clampBudget(minbl-10, 8, 25))
	return verify.Check(ok, "q64/exp_sum", "exp(x+y) must equal exp(x)*exp(y)", x, y, lhs, rhs)
}

// Exp2NegIdentity: exp2(-x) == inv(exp2(x)) within a small fixed budget;
// the asymmetric truncation of the two paths costs a few extra bits.
func Exp2NegIdentity(x q64.Value) error {
	if !inBand(x, 25) {
		return verify.ErrDiscard
	}
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := exp2(n)
	if err != nil || lhs.IsZero() {
		return verify.ErrDiscard
	}
	e, err := exp2(x)
	if err != nil || e.IsZero() {
		return verify.ErrDiscard
	}
	rhs, err := inv(e)
	if err != nil || rhs.IsZero() {
		return verify.ErrDiscard
	}
	minbl := minUint(bitlen(lhs), bitlen(rhs))
	if minbl < 20 {
		return verify.ErrDiscard
	}
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), clampBudget(minbl-8, 8, 25))
	return verify.Check(ok, "q64/exp2_neg_identity", "exp2(-x) must equal 1/exp2(x)", x, lhs, rhs)
}

// ExpNegIdentity is the natural-base analogue of Exp2NegIdentity.
func ExpNegIdentity(x q64.Value) error {
	if !inBand(x, 18) {
		return verify.ErrDiscard
	}
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := exp(n)
	if err != nil || lhs.IsZero() {
		return verify.ErrDiscard
	}
	e, err := exp(x)
	if err != nil || e.IsZero() {
		return verify.ErrDiscard
	}
	rhs, err := inv(e)
	if err != nil || rhs.IsZero() {
		return verify.ErrDiscard
	}
	minbl := minUint(bitlen(lhs), bitlen(rhs))
	if minbl < 20 {
		return verify.ErrDiscard
	}
	ok := verify.EqualMostSignificantBits(lhs.Big(), rhs.Big(), clampBudget(minbl-8, 8, 25))
	return verify.Check(ok, "q64/exp_neg_identity", "exp(-x) must equal 1/exp(x)", x, lhs, rhs)
}

// Exp2Monotonic: x <= y implies exp2(x) <= exp2(y) within two raw units
// of output truncation.
func Exp2Monotonic(x, y q64.Value) error {
	if x.Gt(y) {
		x, y = y, x
	}
	ex, err1 := exp2(x)
	ey, err2 := exp2(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	slack := new(big.Int).Add(ey.Big(), big.NewInt(2))
	ok := ex.Big().Cmp(slack) <= 0
	return verify.Check(ok, "q64/exp2_monotonic", "exp2 must be monotonic", x, y, ex, ey)
}

// inBand reports |v| <= limit (as an integer magnitude).
func inBand(v q64.Value, limit int64) bool {
	a := new(big.Int).Abs(v.Big())
	return a.Cmp(q64.FromInt(limit).Big()) <= 0
}

func ilog2u(n uint64) uint {
	var b uint
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}
