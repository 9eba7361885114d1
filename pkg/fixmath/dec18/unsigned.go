package dec18

import "math/big"

// Unsigned is the unsigned decimal fixed-point format: 18 fractional
// digits, raw range [0, 2^256-1]. The zero value is 0. There is no Neg;
// any operation whose result would be negative fails with ErrOverflow.
type Unsigned struct {
	raw *big.Int
}

var (
	UZero = Unsigned{}
	// UEpsilon is one raw unit, 10^-18.
	UEpsilon = Unsigned{big.NewInt(1)}
	UOne     = Unsigned{new(big.Int).Set(scale)}
	UTwo     = Unsigned{new(big.Int).Mul(scale, big.NewInt(2))}
	UMax     = Unsigned{uMaxRaw}
)

// UFromInt converts an unsigned integer; every uint64 is representable.
func UFromInt(i uint64) Unsigned {
	return Unsigned{new(big.Int).Mul(new(big.Int).SetUint64(i), scale)}
}

// UFromBig builds a value from a raw scaled integer.
func UFromBig(raw *big.Int) (Unsigned, error) {
	r, err := clamp(new(big.Int).Set(raw), uMinRaw, uMaxRaw)
	if err != nil {
		return UZero, err
	}
	return Unsigned{r}, nil
}

func (u Unsigned) big() *big.Int {
	if u.raw == nil {
		return new(big.Int)
	}
	return u.raw
}

// Big returns the raw scaled integer as a fresh big.Int.
func (u Unsigned) Big() *big.Int { return new(big.Int).Set(u.big()) }

// ToInt truncates toward zero.
func (u Unsigned) ToInt() uint64 { return new(big.Int).Quo(u.big(), scale).Uint64() }

func (u Unsigned) IsZero() bool        { return u.big().Sign() == 0 }
func (u Unsigned) Eq(o Unsigned) bool  { return u.big().Cmp(o.big()) == 0 }
func (u Unsigned) Lt(o Unsigned) bool  { return u.big().Cmp(o.big()) < 0 }
func (u Unsigned) Gt(o Unsigned) bool  { return u.big().Cmp(o.big()) > 0 }
func (u Unsigned) Lte(o Unsigned) bool { return u.big().Cmp(o.big()) <= 0 }
func (u Unsigned) Gte(o Unsigned) bool { return u.big().Cmp(o.big()) >= 0 }

func (u Unsigned) String() string { return formatRaw(u.big()) }

func wrapU(raw *big.Int, err error) (Unsigned, error) {
	if err != nil {
		return UZero, err
	}
	return Unsigned{raw}, nil
}

func (u Unsigned) Add(o Unsigned) (Unsigned, error) {
	return wrapU(addRaw(u.big(), o.big(), uMinRaw, uMaxRaw))
}

// Sub fails when the result would drop below zero.
func (u Unsigned) Sub(o Unsigned) (Unsigned, error) {
	return wrapU(subRaw(u.big(), o.big(), uMinRaw, uMaxRaw))
}

func (u Unsigned) Mul(o Unsigned) (Unsigned, error) {
	return wrapU(mulRaw(u.big(), o.big(), uMinRaw, uMaxRaw))
}

func (u Unsigned) Div(o Unsigned) (Unsigned, error) {
	return wrapU(divRaw(u.big(), o.big(), uMinRaw, uMaxRaw))
}

func (u Unsigned) Inv() (Unsigned, error) {
	return wrapU(invRaw(u.big(), uMinRaw, uMaxRaw))
}

// Avg never fails.
func (u Unsigned) Avg(o Unsigned) Unsigned {
	return Unsigned{avgRaw(u.big(), o.big())}
}

func (u Unsigned) Gavg(o Unsigned) (Unsigned, error) {
	return wrapU(gavgRaw(u.big(), o.big(), uMaxRaw))
}

// Powu raises to a non-negative integer exponent by squaring. 0^0 is 1.
func (u Unsigned) Powu(n uint64) (Unsigned, error) {
	r, err := powuRaw(u.big(), n, uMinRaw, uMaxRaw)
	if err != nil {
		return UZero, err
	}
	return Unsigned{r}, nil
}

// Pow computes u^o as 2^(o*log2 u), with x^0 = 1 (including 0^0) and
// 0^y = 0 for positive y. Arguments below one have a negative log2 and
// fail with ErrDomain, as the format cannot carry the intermediate.
func (u Unsigned) Pow(o Unsigned) (Unsigned, error) {
	if o.IsZero() {
		return UOne, nil
	}
	if u.IsZero() {
		return UZero, nil
	}
	l, err := u.Log2()
	if err != nil {
		return UZero, err
	}
	if l.IsZero() {
		return UOne, nil
	}
	e, err := mulRaw(l.big(), o.big(), uMinRaw, uMaxRaw)
	if err != nil {
		return UZero, err
	}
	return wrapU(exp2Raw(e, uMaxRaw))
}

func (u Unsigned) Sqrt() (Unsigned, error) {
	return wrapU(sqrtRaw(u.big(), uMaxRaw))
}

// Log2 requires an argument of at least one; smaller arguments would
// produce a negative logarithm the format cannot represent.
func (u Unsigned) Log2() (Unsigned, error) {
	if u.big().Cmp(scale) < 0 {
		return UZero, ErrDomain
	}
	return Unsigned{log2Raw(u.big())}, nil
}

// Ln is Log2 scaled by ln(2).
func (u Unsigned) Ln() (Unsigned, error) { return u.logScaled(ln2Dec) }

// Log10 is Log2 scaled by log10(2).
func (u Unsigned) Log10() (Unsigned, error) { return u.logScaled(log10o2Dec) }

func (u Unsigned) logScaled(factor *big.Int) (Unsigned, error) {
	l, err := u.Log2()
	if err != nil {
		return UZero, err
	}
	return wrapU(mulRaw(l.big(), factor, uMinRaw, uMaxRaw))
}

// Exp2 returns 2^u; the exponent is non-negative so only overflow can
// occur.
func (u Unsigned) Exp2() (Unsigned, error) {
	return wrapU(exp2Raw(u.big(), uMaxRaw))
}

// Exp returns e^u via 2^(u*log2 e).
func (u Unsigned) Exp() (Unsigned, error) {
	e, err := mulRaw(u.big(), log2eDec, uMinRaw, uMaxRaw)
	if err != nil {
		return UZero, err
	}
	return wrapU(exp2Raw(e, uMaxRaw))
}
