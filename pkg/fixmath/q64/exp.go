package q64

import (
	"math/big"
	"sync"

	"github.com/fixprop/fixprop/internal/fixcore"
)

// Transcendentals. Log2 and Exp2 are the primitives; Ln, Log10 and Exp
// are scaled through lazily built Q64.64 constants so no floating point
// ever enters the computation.

var constOnce sync.Once

var (
	ln2Raw    *big.Int // ln(2)
	log10o2   *big.Int // log10(2)
	log2eRaw  *big.Int // log2(e)
	negExpMin *big.Int // below this argument exp underflows to zero
)

func constants() {
	constOnce.Do(func() {
		ln2Raw = ratRaw("0.69314718055994530941723212145817656807")
		log10o2 = ratRaw("0.30102999566398119521373889472449302676")
		log2eRaw = ratRaw("1.44269504088896340735992468100189213742")
		negExpMin = new(big.Int).Lsh(big.NewInt(-45), FracBits)
	})
}

// ratRaw converts a decimal literal into a Q64.64 raw integer.
func ratRaw(s string) *big.Int {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("q64: bad constant " + s)
	}
	n := new(big.Int).Lsh(r.Num(), FracBits)
	return n.Quo(n, r.Denom())
}

// Sqrt floors. The domain is v >= 0; sqrt(0) is 0.
func (v Value) Sqrt() (Value, error) {
	if v.Sign() < 0 {
		return Zero, ErrDomain
	}
	b := v.Big()
	b.Lsh(b, FracBits)
	return FromBig(b.Sqrt(b))
}

// Log2 requires a strictly positive argument.
func (v Value) Log2() (Value, error) {
	if v.Sign() <= 0 {
		return Zero, ErrDomain
	}
	return FromBig(fixcore.Log2(v.Big(), FracBits))
}

// Ln is Log2 scaled by ln(2).
func (v Value) Ln() (Value, error) {
	return v.logScaled(func() *big.Int { return ln2Raw })
}

// Log10 is Log2 scaled by log10(2).
func (v Value) Log10() (Value, error) {
	return v.logScaled(func() *big.Int { return log10o2 })
}

func (v Value) logScaled(factor func() *big.Int) (Value, error) {
	constants()
	l, err := v.Log2()
	if err != nil {
		return Zero, err
	}
	b := l.Big()
	b.Mul(b, factor())
	return FromBig(b.Rsh(b, FracBits))
}

// Exp2 returns 2^v. Arguments of 64 or more overflow; sufficiently
// negative arguments underflow to an exact zero, which is a documented
// success, not a failure.
func (v Value) Exp2() (Value, error) {
	b := v.Big()
	n := new(big.Int).Rsh(new(big.Int).Set(b), FracBits) // floor of the argument
	if n.Cmp(big.NewInt(FracBits)) >= 0 {
		return Zero, ErrOverflow
	}
	if n.Cmp(big.NewInt(-2*FracBits)) < 0 {
		return Zero, nil
	}
	f := new(big.Int).Sub(b, new(big.Int).Lsh(n, FracBits)) // fractional part in [0, 2^64)
	frac := fixcore.Exp2Frac(f)

	// frac carries the mantissa at guard precision; line it up with the
	// integer part and the Q64.64 output scale.
	shift := int64(fixcore.GuardBits()) - FracBits - n.Int64()
	if shift <= 0 {
		frac.Lsh(frac, uint(-shift))
	} else {
		frac.Rsh(frac, uint(shift))
	}
	return FromBig(frac)
}

// Exp returns e^v via 2^(v*log2 e).
func (v Value) Exp() (Value, error) {
	constants()
	b := v.Big()
	if b.Cmp(negExpMin) <= 0 {
		return Zero, nil
	}
	b.Mul(b, log2eRaw)
	scaled, err := FromBig(b.Rsh(b, FracBits))
	if err != nil {
		return Zero, err
	}
	return scaled.Exp2()
}
