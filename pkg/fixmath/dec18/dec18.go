// Package dec18 implements decimal fixed-point numbers scaled by 10^18:
// a signed format backed by a 256-bit two's-complement range (about 59
// integer digits) and an unsigned one (about 60). Values are immutable
// and every operation returns a fresh value or an error.
package dec18

import (
	"errors"
	"math/big"

	"github.com/fixprop/fixprop/internal/fixcore"
)

// FracDigits is the decimal resolution of both formats.
const FracDigits = 18

var (
	ErrOverflow = errors.New("dec18: result out of range")
	ErrDivZero  = errors.New("dec18: division by zero")
	ErrDomain   = errors.New("dec18: argument outside domain")
)

var (
	scale   = new(big.Int).Exp(big.NewInt(10), big.NewInt(FracDigits), nil)
	scaleSq = new(big.Int).Mul(scale, scale)

	uMinRaw = new(big.Int)
	sMinRaw = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	sMaxRaw = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	uMaxRaw = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	// transcendental scaling constants, raw on the 10^18 scale
	ln2Dec     = big.NewInt(693147180559945309)  // ln(2)
	log10o2Dec = big.NewInt(301029995663981195)  // log10(2)
	log2eDec   = big.NewInt(1442695040888963407) // log2(e)
)

// raw kernels; all take and return raw scaled integers and never mutate
// their arguments. Mul, Div and Inv truncate toward zero, Avg floors.

func addRaw(a, b, min, max *big.Int) (*big.Int, error) {
	return clamp(new(big.Int).Add(a, b), min, max)
}

func subRaw(a, b, min, max *big.Int) (*big.Int, error) {
	return clamp(new(big.Int).Sub(a, b), min, max)
}

func mulRaw(a, b, min, max *big.Int) (*big.Int, error) {
	p := new(big.Int).Mul(a, b)
	return clamp(p.Quo(p, scale), min, max)
}

func divRaw(a, b, min, max *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivZero
	}
	p := new(big.Int).Mul(a, scale)
	return clamp(p.Quo(p, b), min, max)
}

func invRaw(a, min, max *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, ErrDivZero
	}
	return clamp(new(big.Int).Quo(scaleSq, a), min, max)
}

func avgRaw(a, b *big.Int) *big.Int {
	s := new(big.Int).Add(a, b)
	return s.Rsh(s, 1)
}

func gavgRaw(a, b, max *big.Int) (*big.Int, error) {
	p := new(big.Int).Mul(a, b)
	if p.Sign() < 0 {
		return nil, ErrDomain
	}
	// a*b carries scale^2, so the integer square root is back on scale.
	return clamp(p.Sqrt(p), nil, max)
}

func sqrtRaw(a, max *big.Int) (*big.Int, error) {
	if a.Sign() < 0 {
		return nil, ErrDomain
	}
	p := new(big.Int).Mul(a, scale)
	return clamp(p.Sqrt(p), nil, max)
}

func powuRaw(a *big.Int, n uint64, min, max *big.Int) (*big.Int, error) {
	acc := new(big.Int).Set(scale)
	base := new(big.Int).Set(a)
	for n > 0 {
		if n&1 == 1 {
			acc.Mul(acc, base)
			acc.Quo(acc, scale)
			if _, err := clamp(acc, min, max); err != nil {
				return nil, err
			}
		}
		n >>= 1
		if n > 0 {
			base.Mul(base, base)
			base.Quo(base, scale)
			if base.CmpAbs(max) > 0 && acc.Sign() != 0 {
				return nil, ErrOverflow
			}
		}
	}
	return new(big.Int).Set(acc), nil
}

// log2Raw computes log2 of a positive raw value via the shared binary
// kernel, converting scales at both edges.
func log2Raw(a *big.Int) *big.Int {
	y := new(big.Int).Lsh(a, 2*64)
	y.Quo(y, scale)
	r := fixcore.Log2(y, 2*64)
	r.Mul(r, scale)
	return r.Rsh(r, 64)
}

// exp2Raw computes 2^(a/10^18). Overflow past max fails; underflow past
// the format's resolution yields an exact zero.
func exp2Raw(a, max *big.Int) (*big.Int, error) {
	xb := new(big.Int).Lsh(a, 64)
	xb.Div(xb, scale) // floor, also for negative arguments
	n := new(big.Int).Rsh(new(big.Int).Set(xb), 64)
	if !n.IsInt64() || n.Int64() >= 200 {
		return nil, ErrOverflow
	}
	if n.Int64() < -100 {
		return new(big.Int), nil
	}
	ni := n.Int64()
	f := new(big.Int).Sub(xb, new(big.Int).Lsh(n, 64))
	r := fixcore.Exp2Frac(f)
	r.Mul(r, scale)
	shift := int64(fixcore.GuardBits()) - ni
	if shift >= 0 {
		r.Rsh(r, uint(shift))
	} else {
		r.Lsh(r, uint(-shift))
	}
	return clamp(r, nil, max)
}

func clamp(v, min, max *big.Int) (*big.Int, error) {
	if min != nil && v.Cmp(min) < 0 {
		return nil, ErrOverflow
	}
	if max != nil && v.Cmp(max) > 0 {
		return nil, ErrOverflow
	}
	return v, nil
}

// formatRaw renders a raw value as a decimal fraction for traces.
func formatRaw(a *big.Int) string {
	neg := a.Sign() < 0
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(a), scale, new(big.Int))
	s := q.String()
	if r.Sign() != 0 {
		frac := r.String()
		for len(frac) < FracDigits {
			frac = "0" + frac
		}
		for frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	return s
}
