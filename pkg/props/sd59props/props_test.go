package sd59props

import (
	"errors"
	"math/big"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

func sRaw(t *testing.T, s string) dec18.Signed {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad literal %q", s)
	}
	v, err := dec18.SFromBig(b)
	if err != nil {
		t.Fatalf("SFromBig(%s): %v", s, err)
	}
	return v
}

func TestKnownScenarios(t *testing.T) {
	t.Run("addition of mixed fractions commutes", func(t *testing.T) {
		a := sRaw(t, "3500000000000000000")  // 3.5
		b := sRaw(t, "-2250000000000000000") // -2.25
		if err := AddCommutative(a, b); err != nil {
			t.Errorf("3.5 + -2.25 must commute exactly: %v", err)
		}
	})
	t.Run("zero divided by seventeen", func(t *testing.T) {
		if err := DivIdentity(dec18.SFromInt(17)); err != nil {
			t.Errorf("0 / 17 must be zero: %v", err)
		}
	})
	t.Run("zero exponent", func(t *testing.T) {
		for _, x := range []dec18.Signed{dec18.SZero, dec18.SOne, dec18.SNegOne, dec18.SFromInt(12345), dec18.SMin, dec18.SMax} {
			if err := PowuZeroExponent(x); err != nil {
				t.Errorf("x^0 must be one for %v: %v", x, err)
			}
			if err := PowZeroExponent(x); err != nil {
				t.Errorf("pow(x,0) must be one for %v: %v", x, err)
			}
		}
	})
	t.Run("double inverse of eight", func(t *testing.T) {
		if err := InvInvolution(dec18.SFromInt(8)); err != nil {
			t.Errorf("inv(inv(8)) must recover 8: %v", err)
		}
	})
	t.Run("exp2 log2 of a thousand", func(t *testing.T) {
		if err := Exp2Log2Roundtrip(dec18.SFromInt(1000)); err != nil {
			t.Errorf("exp2(log2(1000)) must recover the leading digits: %v", err)
		}
	})
	t.Run("division round trip at the resolution floor", func(t *testing.T) {
		// the doubly truncated product collapses to zero, which is a
		// precondition failure and not a counterexample
		err := DivMulRoundtrip(dec18.SEpsilon, sRaw(t, "6272360559230"))
		if !errors.Is(err, verify.ErrDiscard) {
			t.Errorf("round trip from epsilon must discard: %v", err)
		}
	})
	t.Run("double inverse of a fifteen digit value", func(t *testing.T) {
		// the reciprocal keeps four digits, so the double inverse moves
		// in the thirtieth digit and must still pass
		x := sRaw(t, "-904761665267066073000000000000000")
		if err := InvInvolution(x); err != nil {
			t.Errorf("double inverse must stay within the digit bound: %v", err)
		}
	})
	t.Run("exp linearises near zero", func(t *testing.T) {
		if err := ExpSmallArgument(sRaw(t, "-5000000000000000")); err != nil {
			t.Errorf("e^-0.005 must match 0.995 within the slack: %v", err)
		}
		if err := ExpSmallArgument(dec18.SOne); !errors.Is(err, verify.ErrDiscard) {
			t.Errorf("arguments outside the band must discard: %v", err)
		}
	})
	t.Run("negated product is exact", func(t *testing.T) {
		x := sRaw(t, "1234567890123456789")
		y := sRaw(t, "987654321098765432")
		if err := MulNegation(x, y); err != nil {
			t.Errorf("(-x)*y must equal -(x*y): %v", err)
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
// random campaign.
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

func fuzzValue(w3, w2, w1, w0 uint64, negate bool) dec18.Signed {
	b := new(big.Int).SetUint64(w3)
	for _, w := range []uint64{w2, w1, w0} {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(w))
	}
	b.And(b, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1)))
	if negate {
		b.Neg(b)
	}
	v, err := dec18.SFromBig(b)
	if err != nil {
		return dec18.SZero
	}
	return v
}

func FuzzArithmeticLaws(f *testing.F) {
	f.Add(uint64(0), uint64(0), uint64(0), uint64(1), uint64(0), uint64(0), uint64(0), uint64(2), false, false)
	f.Add(uint64(1), uint64(0), uint64(0), uint64(0), uint64(0), uint64(1), uint64(0), uint64(0), true, false)
	f.Fuzz(func(t *testing.T, a3, a2, a1, a0, b3, b2, b1, b0 uint64, an, bn bool) {
		x := fuzzValue(a3, a2, a1, a0, an)
		y := fuzzValue(b3, b2, b1, b0, bn)
		for _, err := range []error{
			AddCommutative(x, y),
			SubAddInverse(x, y),
			MulCommutative(x, y),
			MulNegation(x, y),
			DivMulRoundtrip(x, y),
			AvgBetween(x, y),
		} {
			if err != nil && !errors.Is(err, verify.ErrDiscard) {
				t.Fatal(err)
			}
		}
	})
}
