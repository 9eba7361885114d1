package q64props

import (
	"math/big"

	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
)

// Operand generation is boundary biased: the documented edge constants
// come up far more often than a uniform draw over 128 bits would ever
// produce them.

var boundary = []q64.Value{
	q64.Zero,
	q64.One,
	q64.NegOne,
	q64.Epsilon,
	q64.Min,
	q64.Max,
	mustAdd(q64.Min, q64.Epsilon),
	mustSub(q64.Max, q64.Epsilon),
}

func mustAdd(a, b q64.Value) q64.Value {
	r, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	return r
}

func mustSub(a, b q64.Value) q64.Value {
	r, err := a.Sub(b)
	if err != nil {
		panic(err)
	}
	return r
}

// value draws one operand: 1/4 boundary constants, 1/4 small magnitudes,
// otherwise uniform over the raw range.
func value(rng *rand.Rand) q64.Value {
	switch rng.Intn(4) {
	case 0:
		return boundary[rng.Intn(len(boundary))]
	case 1:
		return smallValue(rng)
	default:
		return rawValue(rng, 127)
	}
}

// smallValue draws an operand within roughly [-2^31, 2^31], the band
// where the tolerant transcendental laws are observable.
func smallValue(rng *rand.Rand) q64.Value {
	return rawValue(rng, 96)
}

func rawValue(rng *rand.Rand, maxBits uint) q64.Value {
	bits := 1 + rng.Intn(int(maxBits))
	b := new(big.Int)
	for i := 0; i < bits; i += 64 {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(rng.Uint64()))
	}
	b.And(b, mask(uint(bits)))
	if rng.Intn(2) == 0 {
		b.Neg(b)
	}
	v, err := q64.FromBig(b)
	if err != nil {
		return q64.Zero
	}
	return v
}

func mask(bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	return m.Sub(m, big.NewInt(1))
}

// exponent draws a small non-negative integer exponent for the power
// checks, biased toward the low values where the laws stay observable.
func exponent(rng *rand.Rand) uint64 {
	if rng.Intn(4) == 0 {
		return rng.Uint64() % 300
	}
	return rng.Uint64() % 16
}
