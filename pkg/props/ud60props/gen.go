package ud60props

import (
	"math/big"

	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
)

var boundary = []dec18.Unsigned{
	dec18.UZero,
	dec18.UOne,
	dec18.UTwo,
	dec18.UEpsilon,
	dec18.UMax,
	mustSub(dec18.UMax, dec18.UEpsilon),
}

func mustSub(a, b dec18.Unsigned) dec18.Unsigned {
	r, err := a.Sub(b)
	if err != nil {
		panic(err)
	}
	return r
}

// value draws one operand: 1/4 boundary constants, 1/4 small magnitudes,
// otherwise uniform over the raw range.
func value(rng *rand.Rand) dec18.Unsigned {
	switch rng.Intn(4) {
	case 0:
		return boundary[rng.Intn(len(boundary))]
	case 1:
		return rawValue(rng, 94)
	default:
		return rawValue(rng, 256)
	}
}

func rawValue(rng *rand.Rand, maxBits uint) dec18.Unsigned {
	bits := 1 + rng.Intn(int(maxBits))
	b := new(big.Int)
	for i := 0; i < bits; i += 64 {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(rng.Uint64()))
	}
	b.And(b, mask(uint(bits)))
	v, err := dec18.UFromBig(b)
	if err != nil {
		return dec18.UZero
	}
	return v
}

func mask(bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	return m.Sub(m, big.NewInt(1))
}

// exponent draws a small integer exponent for the power checks.
func exponent(rng *rand.Rand) uint64 {
	if rng.Intn(4) == 0 {
		return rng.Uint64() % 120
	}
	return rng.Uint64() % 12
}
