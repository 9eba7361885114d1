package dec18

import "math/big"

// Signed is a signed decimal fixed-point value with 18 fractional digits
// and a [-2^255, 2^255-1] raw range. The zero value is 0.
type Signed struct {
	raw *big.Int
}

var (
	SZero = Signed{}
	// SEpsilon is one raw unit, 10^-18.
	SEpsilon = Signed{big.NewInt(1)}
	SOne     = Signed{new(big.Int).Set(scale)}
	SNegOne  = Signed{new(big.Int).Neg(scale)}
	STwo     = Signed{new(big.Int).Mul(scale, big.NewInt(2))}
	SMin     = Signed{sMinRaw}
	SMax     = Signed{sMaxRaw}
)

// SFromInt converts an integer; every int64 is representable.
func SFromInt(i int64) Signed {
	return Signed{new(big.Int).Mul(big.NewInt(i), scale)}
}

// SFromBig builds a value from a raw scaled integer.
func SFromBig(raw *big.Int) (Signed, error) {
	r, err := clamp(new(big.Int).Set(raw), sMinRaw, sMaxRaw)
	if err != nil {
		return SZero, err
	}
	return Signed{r}, nil
}

func (s Signed) big() *big.Int {
	if s.raw == nil {
		return new(big.Int)
	}
	return s.raw
}

// Big returns the raw scaled integer as a fresh big.Int.
func (s Signed) Big() *big.Int { return new(big.Int).Set(s.big()) }

// ToInt truncates toward zero.
func (s Signed) ToInt() int64 { return new(big.Int).Quo(s.big(), scale).Int64() }

func (s Signed) IsZero() bool      { return s.big().Sign() == 0 }
func (s Signed) Sign() int         { return s.big().Sign() }
func (s Signed) Eq(o Signed) bool  { return s.big().Cmp(o.big()) == 0 }
func (s Signed) Lt(o Signed) bool  { return s.big().Cmp(o.big()) < 0 }
func (s Signed) Gt(o Signed) bool  { return s.big().Cmp(o.big()) > 0 }
func (s Signed) Lte(o Signed) bool { return s.big().Cmp(o.big()) <= 0 }
func (s Signed) Gte(o Signed) bool { return s.big().Cmp(o.big()) >= 0 }

func (s Signed) String() string { return formatRaw(s.big()) }

func wrapS(raw *big.Int, err error) (Signed, error) {
	if err != nil {
		return SZero, err
	}
	return Signed{raw}, nil
}

func (s Signed) Add(o Signed) (Signed, error) {
	return wrapS(addRaw(s.big(), o.big(), sMinRaw, sMaxRaw))
}

func (s Signed) Sub(o Signed) (Signed, error) {
	return wrapS(subRaw(s.big(), o.big(), sMinRaw, sMaxRaw))
}

// Neg fails for SMin, which has no positive counterpart.
func (s Signed) Neg() (Signed, error) {
	return wrapS(clamp(new(big.Int).Neg(s.big()), sMinRaw, sMaxRaw))
}

// Abs fails for SMin for the same reason Neg does.
func (s Signed) Abs() (Signed, error) {
	return wrapS(clamp(new(big.Int).Abs(s.big()), sMinRaw, sMaxRaw))
}

func (s Signed) Mul(o Signed) (Signed, error) {
	return wrapS(mulRaw(s.big(), o.big(), sMinRaw, sMaxRaw))
}

func (s Signed) Div(o Signed) (Signed, error) {
	return wrapS(divRaw(s.big(), o.big(), sMinRaw, sMaxRaw))
}

func (s Signed) Inv() (Signed, error) {
	return wrapS(invRaw(s.big(), sMinRaw, sMaxRaw))
}

// Avg never fails; the doubled-width sum always fits.
func (s Signed) Avg(o Signed) Signed {
	return Signed{avgRaw(s.big(), o.big())}
}

// Gavg returns sqrt(s*o); the product must be non-negative.
func (s Signed) Gavg(o Signed) (Signed, error) {
	return wrapS(gavgRaw(s.big(), o.big(), sMaxRaw))
}

// Powu raises to a non-negative integer exponent by squaring. 0^0 is 1.
func (s Signed) Powu(n uint64) (Signed, error) {
	return wrapS(powuRaw(s.big(), n, sMinRaw, sMaxRaw))
}

// Pow computes s^o as 2^(o*log2 s) for positive s, with the usual special
// cases: x^0 = 1 (including 0^0), 0^y = 0 for positive y.
func (s Signed) Pow(o Signed) (Signed, error) {
	if o.IsZero() {
		return SOne, nil
	}
	if s.IsZero() {
		if o.Sign() < 0 {
			return SZero, ErrDivZero
		}
		return SZero, nil
	}
	if s.Sign() < 0 {
		return SZero, ErrDomain
	}
	l := log2Raw(s.big())
	e, err := mulRaw(l, o.big(), sMinRaw, sMaxRaw)
	if err != nil {
		// Past the raw range the true exponent is astronomically large
		// in magnitude: underflow collapses to zero, overflow stays an
		// overflow.
		if l.Sign()*o.Sign() < 0 {
			return SZero, nil
		}
		return SZero, err
	}
	return wrapS(exp2Raw(e, sMaxRaw))
}

func (s Signed) Sqrt() (Signed, error) {
	return wrapS(sqrtRaw(s.big(), sMaxRaw))
}

// Log2 requires a strictly positive argument.
func (s Signed) Log2() (Signed, error) {
	if s.Sign() <= 0 {
		return SZero, ErrDomain
	}
	return Signed{log2Raw(s.big())}, nil
}

// Ln is Log2 scaled by ln(2).
func (s Signed) Ln() (Signed, error) { return s.logScaled(ln2Dec) }

// Log10 is Log2 scaled by log10(2).
func (s Signed) Log10() (Signed, error) { return s.logScaled(log10o2Dec) }

func (s Signed) logScaled(factor *big.Int) (Signed, error) {
	l, err := s.Log2()
	if err != nil {
		return SZero, err
	}
	return wrapS(mulRaw(l.big(), factor, sMinRaw, sMaxRaw))
}

// Exp2 returns 2^s; underflow yields an exact zero.
func (s Signed) Exp2() (Signed, error) {
	return wrapS(exp2Raw(s.big(), sMaxRaw))
}

// Exp returns e^s via 2^(s*log2 e).
func (s Signed) Exp() (Signed, error) {
	e, err := mulRaw(s.big(), log2eDec, sMinRaw, sMaxRaw)
	if err != nil {
		if s.Sign() < 0 {
			return SZero, nil
		}
		return SZero, err
	}
	return wrapS(exp2Raw(e, sMaxRaw))
}
