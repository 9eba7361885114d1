package q64

import "math/big"

// Arithmetic follows two's-complement fixed-point conventions: Mul and
// Avg floor (arithmetic shift), Div and Inv truncate toward zero, and any
// result outside [Min, Max] is ErrOverflow. Intermediates run through
// big.Int for the 256-bit headroom the products need.

func (v Value) Add(o Value) (Value, error) {
	b := v.Big()
	return FromBig(b.Add(b, o.Big()))
}

func (v Value) Sub(o Value) (Value, error) {
	b := v.Big()
	return FromBig(b.Sub(b, o.Big()))
}

// Neg fails for Min, which has no positive counterpart.
func (v Value) Neg() (Value, error) {
	b := v.Big()
	return FromBig(b.Neg(b))
}

// Abs fails for Min for the same reason Neg does.
func (v Value) Abs() (Value, error) {
	b := v.Big()
	return FromBig(b.Abs(b))
}

func (v Value) Mul(o Value) (Value, error) {
	b := v.Big()
	b.Mul(b, o.Big())
	return FromBig(b.Rsh(b, FracBits))
}

func (v Value) Div(o Value) (Value, error) {
	if o.IsZero() {
		return Zero, ErrDivZero
	}
	b := v.Big()
	b.Lsh(b, FracBits)
	return FromBig(b.Quo(b, o.Big()))
}

// Inv returns 1/v, truncated toward zero.
func (v Value) Inv() (Value, error) {
	if v.IsZero() {
		return Zero, ErrDivZero
	}
	b := new(big.Int).Lsh(big.NewInt(1), 2*FracBits)
	return FromBig(b.Quo(b, v.Big()))
}

// Avg returns (v+o)/2 rounded toward negative infinity. The doubled-width
// intermediate cannot overflow, so Avg never fails.
func (v Value) Avg(o Value) Value {
	b := v.Big()
	b.Add(b, o.Big())
	r, _ := FromBig(b.Rsh(b, 1))
	return r
}

// Gavg returns sqrt(v*o), the geometric mean. The product must be
// non-negative.
func (v Value) Gavg(o Value) (Value, error) {
	p := v.Big()
	p.Mul(p, o.Big())
	if p.Sign() < 0 {
		return Zero, ErrDomain
	}
	// v*o is Q128.128, so its integer square root is already Q64.64.
	return FromBig(p.Sqrt(p))
}

// Powu raises v to a non-negative integer exponent by squaring, flooring
// after every step the way Mul does. 0^0 is 1.
func (v Value) Powu(n uint64) (Value, error) {
	acc := new(big.Int).Set(oneRaw)
	base := v.Big()
	for n > 0 {
		if n&1 == 1 {
			acc.Mul(acc, base)
			acc.Rsh(acc, FracBits)
			if acc.Cmp(minRaw) < 0 || acc.Cmp(maxRaw) > 0 {
				return Zero, ErrOverflow
			}
		}
		n >>= 1
		if n > 0 {
			base.Mul(base, base)
			base.Rsh(base, FracBits)
			if base.CmpAbs(maxRaw) > 0 && acc.Sign() != 0 {
				return Zero, ErrOverflow
			}
		}
	}
	return FromBig(acc)
}
