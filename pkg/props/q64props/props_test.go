package q64props

import (
	"errors"
	"math/big"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

func frac(t *testing.T, num int64, shift uint) q64.Value {
	t.Helper()
	v, err := q64.FromBig(new(big.Int).Lsh(big.NewInt(num), q64.FracBits-shift))
	if err != nil {
		t.Fatalf("FromBig: %v", err)
	}
	return v
}

func TestKnownScenarios(t *testing.T) {
	t.Run("addition of mixed fractions commutes", func(t *testing.T) {
		err := AddCommutative(frac(t, 7, 1), frac(t, -9, 2))
		if err != nil {
			t.Errorf("3.5 + -2.25 must commute bit exactly: %v", err)
		}
	})
	t.Run("zero divided by seventeen", func(t *testing.T) {
		if err := DivIdentity(q64.FromInt(17)); err != nil {
			t.Errorf("0 / 17 must be zero: %v", err)
		}
	})
	t.Run("zero exponent", func(t *testing.T) {
		for _, x := range []q64.Value{q64.Zero, q64.One, q64.NegOne, q64.FromInt(12345), q64.Min, q64.Max} {
			if err := PowZeroExponent(x); err != nil {
				t.Errorf("x^0 must be one for %v: %v", x, err)
			}
		}
	})
	t.Run("double inverse of eight", func(t *testing.T) {
		if err := InvInvolution(q64.FromInt(8)); err != nil {
			t.Errorf("inv(inv(8)) must recover 8: %v", err)
		}
	})
	t.Run("division round trip at the resolution floor", func(t *testing.T) {
		// the doubly rounded product collapses to zero, which is a
		// precondition failure and not a counterexample
		err := DivMulRoundtrip(q64.Epsilon, frac(t, 3, 22))
		if !errors.Is(err, verify.ErrDiscard) {
			t.Errorf("round trip from epsilon must discard: %v", err)
		}
	})
	t.Run("exp2 log2 of a thousand", func(t *testing.T) {
		if err := Exp2Log2Roundtrip(q64.FromInt(1000)); err != nil {
			t.Errorf("exp2(log2(1000)) must recover the leading bits: %v", err)
		}
	})
}

func TestBoundaryTables(t *testing.T) {
	tables := []struct {
		name  string
		check func() error
	}{
		{"add", AddBoundaries},
		{"mul", MulBoundaries},
		{"div", DivBoundaries},
		{"neg", NegBoundaries},
		{"sqrt", SqrtBoundaries},
		{"log", LogBoundaries},
		{"exp", ExpBoundaries},
		{"pow", PowBoundaries},
		{"inv", InvBoundaries},
	}
	for _, tt := range tables {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.check(); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestRegistrySmoke drives every registered property through a seeded
// random campaign; any violation is a bug in either a check's tolerance
// or the format itself.
func TestRegistrySmoke(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, p := range Properties() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			for i := 0; i < 400; i++ {
				if err := p.Run(rng); err != nil && !errors.Is(err, verify.ErrDiscard) {
					t.Fatalf("iteration %d: %v", i, err)
				}
			}
		})
	}
}

func fuzzValue(hi, lo uint64, negate bool) q64.Value {
	b := new(big.Int).SetUint64(hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(lo))
	b.And(b, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)))
	if negate {
		b.Neg(b)
	}
	v, err := q64.FromBig(b)
	if err != nil {
		return q64.Zero
	}
	return v
}

func FuzzArithmeticLaws(f *testing.F) {
	f.Add(uint64(0), uint64(0), uint64(0), uint64(1), false, false)
	f.Add(uint64(1), uint64(0), uint64(1), uint64(0), false, true)
	f.Add(^uint64(0)>>1, ^uint64(0), uint64(0), uint64(1), true, false)
	f.Fuzz(func(t *testing.T, ahi, alo, bhi, blo uint64, an, bn bool) {
		x := fuzzValue(ahi, alo, an)
		y := fuzzValue(bhi, blo, bn)
		for _, err := range []error{
			AddCommutative(x, y),
			SubAddInverse(x, y),
			MulCommutative(x, y),
			DivMulRoundtrip(x, y),
			AvgBetween(x, y),
		} {
			if err != nil && !errors.Is(err, verify.ErrDiscard) {
				t.Fatal(err)
			}
		}
	})
}

func FuzzTranscendentalLaws(f *testing.F) {
	f.Add(uint64(0), uint64(1), uint64(1), uint64(0), false, false)
	f.Add(uint64(1), uint64(0), uint64(0), uint64(1<<40), false, false)
	f.Fuzz(func(t *testing.T, ahi, alo, bhi, blo uint64, an, bn bool) {
		x := fuzzValue(ahi, alo, an)
		y := fuzzValue(bhi, blo, bn)
		for _, err := range []error{
			Log2ProductRule(x, y),
			Exp2Log2Roundtrip(x),
			SqrtSquare(x),
			Exp2Sum(x, y),
		} {
			if err != nil && !errors.Is(err, verify.ErrDiscard) {
				t.Fatal(err)
			}
		}
	})
}
