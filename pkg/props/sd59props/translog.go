package sd59props

import (
	"math/big"

	"github.com/govalues/decimal"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// inBand reports whether |v| < limit, as an integer bound.
func inBand(v dec18.Signed, limit int64) bool {
	return v.Big().CmpAbs(dec18.SFromInt(limit).Big()) < 0
}

// The linearisation band is 0.01; inside it the quadratic term of the
// exponential stays an order of magnitude below the percent slack.
var (
	linearBand  = new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)
	linearSlack = decimal.MustNew(1, 2)
)

// Log2ProductRule: log2(x*y) == log2 x + log2 y within the digits the
// truncated product left intact.
func Log2ProductRule(x, y dec18.Signed) error {
	if x.Sign() <= 0 || y.Sign() <= 0 {
		return verify.ErrDiscard
	}
	p, err := mul(x, y)
	if err != nil || p.IsZero() {
		return verify.ErrDiscard
	}
	lp, err := log2(p)
	if err != nil {
		return verify.ErrDiscard
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
	sig := sigMul(x, y)
	tol := clampBudget(dec18.FracDigits-sig+1, 1, dec18.FracDigits)
	ok := verify.EqualWithinDigits(lp.Big(), s.Big(), tol)
	return verify.Check(ok, "sd59/log2_product", "log2 must turn products into sums", x, y, lp, s)
}

// Log10ProductRule: the same law through the base-10 logarithm.
func Log10ProductRule(x, y dec18.Signed) error {
	if x.Sign() <= 0 || y.Sign() <= 0 {
		return verify.ErrDiscard
	}
	p, err := mul(x, y)
	if err != nil || p.IsZero() {
		return verify.ErrDiscard
	}
	lp, err := log10(p)
	if err != nil {
		return verify.ErrDiscard
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
	sig := sigMul(x, y)
	tol := clampBudget(dec18.FracDigits-sig+1, 1, dec18.FracDigits)
	ok := verify.EqualWithinDigits(lp.Big(), s.Big(), tol)
	return verify.Check(ok, "sd59/log10_product", "log10 must turn products into sums", x, y, lp, s)
}

// Log2PowerRule: log2(x^n) == n * log2 x. The error of the power chain
// grows with n, so the comparison discards a fixed low-digit band.
func Log2PowerRule(x dec18.Signed, n uint64) error {
	if n < 1 || n > 16 || x.Sign() <= 0 || digits(x) < 14 {
		return verify.ErrDiscard
	}
	p, err := powu(x, n)
	if err != nil {
		return verify.ErrDiscard
	}
	if d := digits(p); d < 10 || d > 40 {
		return verify.ErrDiscard
	}
	l, err := log2(p)
	if err != nil {
		return verify.ErrDiscard
	}
	lx, err := log2(x)
	if err != nil {
		return verify.ErrDiscard
	}
	expected := new(big.Int).Mul(lx.Big(), new(big.Int).SetUint64(n))
	ok := verify.EqualWithinDigits(l.Big(), expected, 12)
	return verify.Check(ok, "sd59/log2_power", "log2 must turn powers into multiples", x, p, l)
}

// LogDomain: zero and negative arguments fail for every logarithm.
func LogDomain(x dec18.Signed) error {
	if x.Sign() > 0 {
		return verify.ErrDiscard
	}
	if _, err := log2(x); err == nil {
		return verify.Violated("sd59/log_domain", "log2 outside the domain must fail", x)
	}
	if _, err := ln(x); err == nil {
		return verify.Violated("sd59/log_domain", "ln outside the domain must fail", x)
	}
	if _, err := log10(x); err == nil {
		return verify.Violated("sd59/log_domain", "log10 outside the domain must fail", x)
	}
	return nil
}

// LogMonotonic: x <= y implies log2 x <= log2 y, up to a few raw units of
// kernel rounding.
func LogMonotonic(x, y dec18.Signed) error {
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
	return verify.Check(lx.Big().Cmp(slack) <= 0, "sd59/log_monotonic", "log2 must be monotonic", x, y, lx, ly)
}

// Exp2Log2Roundtrip: 2^(log2 x) recovers the leading digits of x.
func Exp2Log2Roundtrip(x dec18.Signed) error {
	d := digits(x)
	if x.Sign() <= 0 || d < 5 {
		return verify.ErrDiscard
	}
	l, err := log2(x)
	if err != nil {
		return verify.ErrDiscard
	}
	r, err := exp2(l)
	if err != nil {
		return verify.ErrDiscard // the very top of the range clips on the way back
	}
	budget := minUint(15, d-1)
	ok := verify.EqualMostSignificantDigits(x.Big(), r.Big(), budget)
	return verify.Check(ok, "sd59/exp2_log2_roundtrip", "exp2 must invert log2", x, l, r)
}

// Log2Exp2Roundtrip: log2(2^x) recovers x. The tolerance widens as the
// intermediate power loses resolution near the underflow edge.
func Log2Exp2Roundtrip(x dec18.Signed) error {
	if !inBand(x, 50) {
		return verify.ErrDiscard
	}
	e, err := exp2(x)
	if err != nil {
		return verify.ErrDiscard
	}
	if digits(e) < 2 {
		return verify.ErrDiscard
	}
	l, err := log2(e)
	if err != nil {
		return verify.ErrDiscard
	}
	tol := clampBudget(dec18.FracDigits-digits(e)+2, 2, 17)
	ok := verify.EqualWithinDigits(x.Big(), l.Big(), tol)
	return verify.Check(ok, "sd59/log2_exp2_roundtrip", "log2 must invert exp2", x, e, l)
}

// ExpLnRoundtrip: e^(ln x) recovers the leading digits of x.
func ExpLnRoundtrip(x dec18.Signed) error {
	d := digits(x)
	if x.Sign() <= 0 || d < 6 {
		return verify.ErrDiscard
	}
	l, err := ln(x)
	if err != nil {
		return verify.ErrDiscard
	}
	r, err := exp(l)
	if err != nil {
		return verify.ErrDiscard
	}
	budget := minUint(14, d-2)
	ok := verify.EqualMostSignificantDigits(x.Big(), r.Big(), budget)
	return verify.Check(ok, "sd59/exp_ln_roundtrip", "exp must invert ln", x, l, r)
}

// Exp2Sum: 2^(a+b) == 2^a * 2^b on the surviving digits, inside the band
// where both factors stay representable.
func Exp2Sum(a, b dec18.Signed) error {
	if !inBand(a, 25) || !inBand(b, 25) {
		return verify.ErrDiscard
	}
	s, err := add(a, b)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := exp2(s)
	if err != nil {
		return verify.ErrDiscard
	}
	ea, err1 := exp2(a)
	eb, err2 := exp2(b)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	rhs, err := mul(ea, eb)
	if err != nil {
		return verify.ErrDiscard
	}
	mind := minUint(digits(lhs), digits(rhs))
	if mind < 6 {
		return verify.ErrDiscard
	}
	budget := clampBudget(mind-2, 3, 12)
	ok := verify.EqualMostSignificantDigits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "sd59/exp2_sum", "exp2 must turn sums into products", a, b, lhs, rhs)
}

// ExpSum: the same law through the natural exponential, in a tighter band.
func ExpSum(a, b dec18.Signed) error {
	if !inBand(a, 18) || !inBand(b, 18) {
		return verify.ErrDiscard
	}
	s, err := add(a, b)
	if err != nil {
		return verify.ErrDiscard
	}
	lhs, err := exp(s)
	if err != nil {
		return verify.ErrDiscard
	}
	ea, err1 := exp(a)
	eb, err2 := exp(b)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	rhs, err := mul(ea, eb)
	if err != nil {
		return verify.ErrDiscard
	}
	mind := minUint(digits(lhs), digits(rhs))
	if mind < 6 {
		return verify.ErrDiscard
	}
	budget := clampBudget(mind-2, 3, 11)
	ok := verify.EqualMostSignificantDigits(lhs.Big(), rhs.Big(), budget)
	return verify.Check(ok, "sd59/exp_sum", "exp must turn sums into products", a, b, lhs, rhs)
}

// Exp2NegIdentity: 2^x * 2^(-x) == 1 on the surviving digits.
func Exp2NegIdentity(x dec18.Signed) error {
	if !inBand(x, 25) {
		return verify.ErrDiscard
	}
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	ep, err1 := exp2(x)
	en, err2 := exp2(n)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	p, err := mul(ep, en)
	if err != nil {
		return verify.ErrDiscard
	}
	mind := minUint(digits(ep), digits(en))
	if mind < 5 {
		return verify.ErrDiscard
	}
	budget := clampBudget(mind-2, 3, 10)
	ok := verify.EqualMostSignificantDigits(dec18.SOne.Big(), p.Big(), budget)
	return verify.Check(ok, "sd59/exp2_neg_identity", "2^x * 2^-x must equal one", x, p)
}

// ExpNegIdentity: e^x * e^(-x) == 1 on the surviving digits.
func ExpNegIdentity(x dec18.Signed) error {
	if !inBand(x, 18) {
		return verify.ErrDiscard
	}
	n, err := neg(x)
	if err != nil {
		return verify.ErrDiscard
	}
	ep, err1 := exp(x)
	en, err2 := exp(n)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	p, err := mul(ep, en)
	if err != nil {
		return verify.ErrDiscard
	}
	mind := minUint(digits(ep), digits(en))
	if mind < 5 {
		return verify.ErrDiscard
	}
	budget := clampBudget(mind-2, 3, 10)
	ok := verify.EqualMostSignificantDigits(dec18.SOne.Big(), p.Big(), budget)
	return verify.Check(ok, "sd59/exp_neg_identity", "e^x * e^-x must equal one", x, p)
}

// ExpSmallArgument: close to zero the exponential collapses onto its
// linearisation, e^x == 1 + x within a hundredth of a percent.
func ExpSmallArgument(x dec18.Signed) error {
	if x.Big().CmpAbs(linearBand) > 0 {
		return verify.ErrDiscard
	}
	r, err := exp(x)
	if err != nil {
		return verify.Violated("sd59/exp_small_argument", "exp must succeed near zero", x)
	}
	lin, err := add(dec18.SOne, x)
	if err != nil {
		return verify.ErrDiscard
	}
	ok, err := verify.EqualWithinPercent(lin.Big(), r.Big(), linearSlack)
	if err != nil {
		return err
	}
	return verify.Check(ok, "sd59/exp_small_argument", "e^x must match 1+x near zero", x, lin, r)
}

// Exp2Monotonic: x <= y implies 2^x <= 2^y, up to two raw units.
func Exp2Monotonic(x, y dec18.Signed) error {
	if x.Gt(y) {
		x, y = y, x
	}
	ex, err1 := exp2(x)
	ey, err2 := exp2(y)
	if err1 != nil || err2 != nil {
		return verify.ErrDiscard
	}
	slack := new(big.Int).Add(ey.Big(), big.NewInt(2))
	return verify.Check(ex.Big().Cmp(slack) <= 0, "sd59/exp2_monotonic", "exp2 must be monotonic", x, y, ex, ey)
}
