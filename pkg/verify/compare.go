package verify

import (
	"math/big"

	"github.com/govalues/decimal"
)

// Comparators work on raw scaled integers so they share no code with any
// library under test. A buggy subtraction in the tested library can not
// mask itself here.

var (
	big1   = big.NewInt(1)
	big10  = big.NewInt(10)
	big100 = big.NewInt(100)
)

// EqualWithinBits reports whether a and b agree once the low bits are
// discarded, i.e. |a-b| >> bits == 0.
func EqualWithinBits(a, b *big.Int, bits uint) bool {
	d := new(big.Int).Sub(a, b)
	d.Abs(d)
	return d.Rsh(d, bits).Sign() == 0
}

// EqualWithinDigits truncates both values by 10^digits and reports whether
// the truncated representations differ by at most one unit.
func EqualWithinDigits(a, b *big.Int, digits uint) bool {
	ta := truncDigits(a, digits)
	tb := truncDigits(b, digits)
	d := ta.Sub(ta, tb)
	return d.CmpAbs(big1) <= 0
}

// EqualWithinPercent reports whether |b-a| <= |a|*percent/100. A tolerance
// that truncates to zero makes the comparison degenerate; that case is
// reported as ErrDiscard rather than as a result.
func EqualWithinPercent(a, b *big.Int, percent decimal.Decimal) (bool, error) {
	r, ok := new(big.Rat).SetString(percent.String())
	if !ok || r.Sign() <= 0 {
		return false, ErrDiscard
	}
	// tol = |a| * num / (100 * den), compared without materialising the
	// quotient. tol < 1 means a zero tolerance after truncation.
	tolNum := new(big.Int).Abs(a)
	tolNum.Mul(tolNum, r.Num())
	tolDen := new(big.Int).Mul(big100, r.Denom())
	if tolNum.Cmp(tolDen) < 0 {
		return false, ErrDiscard
	}
	diff := new(big.Int).Sub(b, a)
	diff.Abs(diff)
	diff.Mul(diff, tolDen)
	return diff.Cmp(tolNum) <= 0, nil
}

// EqualMostSignificantBits compares the top bits of |a| and |b|, allowing
// their bit lengths to differ by at most one, and accepts a one-unit
// difference in the extracted prefixes. Both values are shifted by the
// same amount so a one-ulp disagreement straddling a power of two stays
// equal while a factor-of-two error does not.
func EqualMostSignificantBits(a, b *big.Int, bits uint) bool {
	if a.Sign() != b.Sign() {
		return a.Sign() == 0 && b.Sign() == 0
	}
	pa := new(big.Int).Abs(a)
	pb := new(big.Int).Abs(b)
	la, lb := uint(pa.BitLen()), uint(pb.BitLen())
	if la > lb+1 || lb > la+1 {
		return false
	}
	if lb > la {
		la = lb
	}
	if la > bits {
		pa.Rsh(pa, la-bits)
		pb.Rsh(pb, la-bits)
	}
	d := pa.Sub(pa, pb)
	return d.CmpAbs(big1) <= 0
}

// EqualMostSignificantDigits is the base-10 analogue of
// EqualMostSignificantBits.
func EqualMostSignificantDigits(a, b *big.Int, digits uint) bool {
	if a.Sign() != b.Sign() {
		return a.Sign() == 0 && b.Sign() == 0
	}
	pa := new(big.Int).Abs(a)
	pb := new(big.Int).Abs(b)
	la, lb := digitLen(pa), digitLen(pb)
	if la > lb+1 || lb > la+1 {
		return false
	}
	if lb > la {
		la = lb
	}
	if la > digits {
		p := pow10(la - digits)
		pa.Quo(pa, p)
		pb.Quo(pb, p)
	}
	d := pa.Sub(pa, pb)
	return d.CmpAbs(big1) <= 0
}

func truncDigits(a *big.Int, digits uint) *big.Int {
	if digits == 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Quo(a, pow10(digits))
}

func pow10(n uint) *big.Int {
	return new(big.Int).Exp(big10, big.NewInt(int64(n)), nil)
}

// digitLen returns the number of decimal digits in |a|, with 0 for zero.
func digitLen(a *big.Int) uint {
	if a.Sign() == 0 {
		return 0
	}
	return uint(len(new(big.Int).Abs(a).String()))
}
