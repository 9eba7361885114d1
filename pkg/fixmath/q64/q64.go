// Package q64 implements a signed 64.64 binary fixed-point number backed
// by a 128-bit signed integer. Values are immutable; every operation
// returns a fresh value or an error, never a partial result.
package q64

import (
	"errors"
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

// FracBits is the fractional resolution of the format.
const FracBits = 64

var (
	ErrOverflow = errors.New("q64: result out of range")
	ErrDivZero  = errors.New("q64: division by zero")
	ErrDomain   = errors.New("q64: argument outside domain")
)

// Value is one Q64.64 number. The zero value is 0.
type Value struct {
	raw num.I128
}

var (
	minRaw = num.MinI128.AsBigInt()
	maxRaw = num.MaxI128.AsBigInt()

	oneRaw = new(big.Int).Lsh(big.NewInt(1), FracBits)
)

var (
	Zero = Value{}
	// Epsilon is the smallest positive representable value, one raw unit.
	Epsilon = mustFromBig(big.NewInt(1))
	One     = mustFromBig(oneRaw)
	NegOne  = mustFromBig(new(big.Int).Neg(oneRaw))
	Two     = FromInt(2)
	Min     = Value{num.MinI128}
	Max     = Value{num.MaxI128}
)

// FromInt converts an integer. Every int64 is representable.
func FromInt(i int64) Value {
	return mustFromBig(new(big.Int).Lsh(big.NewInt(i), FracBits))
}

// FromBig builds a value from a raw scaled integer.
func FromBig(raw *big.Int) (Value, error) {
	if raw.Cmp(minRaw) < 0 || raw.Cmp(maxRaw) > 0 {
		return Zero, ErrOverflow
	}
	i, _ := num.I128FromBigInt(raw)
	return Value{i}, nil
}

func mustFromBig(raw *big.Int) Value {
	v, err := FromBig(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Big returns the raw scaled integer as a fresh big.Int.
func (v Value) Big() *big.Int { return v.raw.AsBigInt() }

// ToInt truncates toward negative infinity, the format's floor.
func (v Value) ToInt() int64 {
	b := v.Big()
	b.Rsh(b, FracBits)
	return b.Int64()
}

func (v Value) IsZero() bool     { return v.raw.Cmp(num.I128{}) == 0 }
func (v Value) Sign() int        { return v.raw.Cmp(num.I128{}) }
func (v Value) Eq(o Value) bool  { return v.raw.Cmp(o.raw) == 0 }
func (v Value) Lt(o Value) bool  { return v.raw.Cmp(o.raw) < 0 }
func (v Value) Gt(o Value) bool  { return v.raw.Cmp(o.raw) > 0 }
func (v Value) Lte(o Value) bool { return v.raw.Cmp(o.raw) <= 0 }
func (v Value) Gte(o Value) bool { return v.raw.Cmp(o.raw) >= 0 }

// String renders the value as a decimal fraction, for traces and
// counterexample reports only; the rendering rounds at 20 places.
func (v Value) String() string {
	r := new(big.Rat).SetFrac(v.Big(), oneRaw)
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(20)
	// trim trailing zeros of the fixed-width rendering
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
