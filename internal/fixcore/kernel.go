// Package fixcore holds the shared big.Int kernels behind the fixed-point
// transcendentals. Both the binary and the decimal formats reduce their
// log2/exp2 to these routines and convert scales at the edges.
package fixcore

import (
	"math/big"
	"sync"
)

const (
	// fracGuard is the guard precision the kernels compute in. The
	// normalised mantissa lives in [2^fracGuard, 2^(fracGuard+1)).
	fracGuard = 127
)

var (
	guardOne = new(big.Int).Lsh(big.NewInt(1), fracGuard)
	guardTwo = new(big.Int).Lsh(big.NewInt(1), fracGuard+1)
)

// Log2 returns log2(y / 2^scale) as a signed Q64.64 raw integer, computed
// by the classic normalise-and-square iteration. y must be positive.
func Log2(y *big.Int, scale uint) *big.Int {
	msb := uint(y.BitLen() - 1)
	ipart := int64(msb) - int64(scale)

	r := new(big.Int).Lsh(big.NewInt(ipart), 64)

	// Normalise the mantissa into [1, 2) at guard precision, then pull
	// out 64 fractional bits one squaring at a time.
	m := new(big.Int)
	if msb <= fracGuard {
		m.Lsh(y, fracGuard-msb)
	} else {
		m.Rsh(y, msb-fracGuard)
	}
	bit := new(big.Int).Lsh(big.NewInt(1), 63)
	for i := 0; i < 64; i++ {
		m.Mul(m, m)
		m.Rsh(m, fracGuard)
		if m.Cmp(guardTwo) >= 0 {
			m.Rsh(m, 1)
			r.Add(r, bit)
		}
		bit.Rsh(bit, 1)
	}
	return r
}

var (
	exp2Once  sync.Once
	exp2Table [64]*big.Int
)

// exp2Constants lazily builds 2^(2^-i) for i = 1..64 at guard precision,
// by repeated square roots of two. Immutable after construction.
func exp2Constants() *[64]*big.Int {
	exp2Once.Do(func() {
		c := new(big.Int).Lsh(big.NewInt(1), 2*fracGuard+1) // 2.0 shifted for the first sqrt
		for i := 0; i < 64; i++ {
			c = new(big.Int).Sqrt(c)
			exp2Table[i] = c
			c = new(big.Int).Lsh(c, fracGuard) // re-raise for the next sqrt
		}
	})
	return &exp2Table
}

// Exp2Frac returns 2^(f / 2^64) scaled by 2^fracGuard, for f in [0, 2^64).
// The result lies in [2^fracGuard, 2^(fracGuard+1)).
func Exp2Frac(f *big.Int) *big.Int {
	table := exp2Constants()
	acc := new(big.Int).Set(guardOne)
	for i := 0; i < 64; i++ {
		if f.Bit(63-i) != 0 {
			acc.Mul(acc, table[i])
			acc.Rsh(acc, fracGuard)
		}
	}
	return acc
}

// GuardBits reports the kernel guard precision, for callers converting
// Exp2Frac results into their own scale.
func GuardBits() uint { return fracGuard }
