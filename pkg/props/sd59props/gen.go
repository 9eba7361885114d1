package sd59props

import (
	"math/big"

	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
)

// Operand generation mirrors the binary suite: boundary constants come up
// far more often than a uniform draw over the 256-bit raw range would
// produce them.

var boundary = []dec18.Signed{
	dec18.SZero,
	dec18.SOne,
	dec18.SNegOne,
	dec18.SEpsilon,
	dec18.SMin,
	dec18.SMax,
	mustAdd(dec18.SMin, dec18.SEpsilon),
	mustSub(dec18.SMax, dec18.SEpsilon),
}

func mustAdd(a, b dec18.Signed) dec18.Signed {
	r, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	return r
}

func mustSub(a, b dec18.Signed) dec18.Signed {
	r, err := a.Sub(b)
	if err != nil {
		panic(err)
	}
	return r
}

// value draws one operand: 1/4 boundary constants, 1/4 small magnitudes,
// otherwise uniform over the raw range.
func value(rng *rand.Rand) dec18.Signed {
	switch rng.Intn(4) {
	case 0:
		return boundary[rng.Intn(len(boundary))]
	case 1:
		return smallValue(rng)
	default:
		return rawValue(rng, 255)
	}
}

// smallValue stays within roughly +-10^10, the band where the tolerant
// transcendental laws are observable.
func smallValue(rng *rand.Rand) dec18.Signed {
	return rawValue(rng, 94)
}

func rawValue(rng *rand.Rand, maxBits uint) dec18.Signed {
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
	v, err := dec18.SFromBig(b)
	if err != nil {
		return dec18.SZero
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
		return rng.Uint64() % 120
	}
	return rng.Uint64() % 12
}
