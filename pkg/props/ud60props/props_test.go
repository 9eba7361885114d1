package ud60props

import (
	"errors"
	"math/big"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

func uRaw(t *testing.T, s string) dec18.Unsigned {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad literal %q", s)
	}
	v, err := dec18.UFromBig(b)
	if err != nil {
		t.Fatalf("UFromBig(%s): %v", s, err)
	}
	return v
}

func TestKnownScenarios(t *testing.T) {
	t.Run("zero divided by seventeen", func(t *testing.T) {
		if err := DivIdentity(dec18.UFromInt(17)); err != nil {
			t.Errorf("0 / 17 must be zero: %v", err)
		}
	})
	t.Run("zero exponent", func(t *testing.T) {
		for _, x := range []dec18.Unsigned{dec18.UZero, dec18.UOne, dec18.UFromInt(12345), dec18.UMax} {
			if err := PowuZeroExponent(x); err != nil {
				t.Errorf("x^0 must be one for %v: %v", x, err)
			}
			if err := PowZeroExponent(x); err != nil {
				t.Errorf("pow(x,0) must be one for %v: %v", x, err)
			}
		}
	})
	t.Run("subtraction underflow", func(t *testing.T) {
		if err := SubUnderflow(dec18.UOne, dec18.UTwo); err != nil {
			t.Errorf("1 - 2 must fail: %v", err)
		}
		if err := SubUnderflow(dec18.UTwo, dec18.UOne); err != nil {
			t.Errorf("2 - 1 must round-trip: %v", err)
		}
	})
	t.Run("double inverse of eight", func(t *testing.T) {
		if err := InvInvolution(dec18.UFromInt(8)); err != nil {
			t.Errorf("inv(inv(8)) must recover 8: %v", err)
		}
	})
	t.Run("exp2 log2 of a thousand", func(t *testing.T) {
		if err := Exp2Log2Roundtrip(dec18.UFromInt(1000)); err != nil {
			t.Errorf("exp2(log2(1000)) must recover the leading digits: %v", err)
		}
	})
	t.Run("division round trip at the resolution floor", func(t *testing.T) {
		// the doubly truncated product collapses to zero, which is a
		// precondition failure and not a counterexample
		err := DivMulRoundtrip(dec18.UEpsilon, uRaw(t, "6272360559230"))
		if !errors.Is(err, verify.ErrDiscard) {
			t.Errorf("round trip from epsilon must discard: %v", err)
		}
	})
	t.Run("double inverse of a fifteen digit value", func(t *testing.T) {
		x := uRaw(t, "904761665267066073000000000000000")
		if err := InvInvolution(x); err != nil {
			t.Errorf("double inverse must stay within the digit bound: %v", err)
		}
	})
	t.Run("exp linearises near zero", func(t *testing.T) {
		if err := ExpSmallArgument(uRaw(t, "5000000000000000")); err != nil {
			t.Errorf("e^0.005 must match 1.005 within the slack: %v", err)
		}
		if err := ExpSmallArgument(dec18.UOne); !errors.Is(err, verify.ErrDiscard) {
			t.Errorf("arguments outside the band must discard: %v", err)
		}
	})
	t.Run("pow below one", func(t *testing.T) {
		if err := PowBaseBelowOne(uRaw(t, "500000000000000000"), dec18.UTwo); err != nil {
			t.Errorf("pow(0.5, 2) must fail: %v", err)
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

func fuzzValue(w3, w2, w1, w0 uint64) dec18.Unsigned {
	b := new(big.Int).SetUint64(w3)
	for _, w := range []uint64{w2, w1, w0} {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(w))
	}
	v, err := dec18.UFromBig(b)
	if err != nil {
		return dec18.UZero
	}
	return v
}

func FuzzArithmeticLaws(f *testing.F) {
	f.Add(uint64(0), uint64(0), uint64(0), uint64(1), uint64(0), uint64(0), uint64(0), uint64(2))
	f.Add(^uint64(0), uint64(0), uint64(0), uint64(0), uint64(0), uint64(1), uint64(0), uint64(0))
	f.Fuzz(func(t *testing.T, a3, a2, a1, a0, b3, b2, b1, b0 uint64) {
		x := fuzzValue(a3, a2, a1, a0)
		y := fuzzValue(b3, b2, b1, b0)
		for _, err := range []error{
			AddCommutative(x, y),
			SubUnderflow(x, y),
			MulCommutative(x, y),
			DivMulRoundtrip(x, y),
			AvgBetween(x, y),
			GavgBetween(x, y),
		} {
			if err != nil && !errors.Is(err, verify.ErrDiscard) {
				t.Fatal(err)
			}
		}
	})
}
