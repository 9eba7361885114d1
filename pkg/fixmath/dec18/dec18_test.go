package dec18

import (
	"errors"
	"math/big"
	"testing"
)

func sRaw(t *testing.T, s string) Signed {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad literal %q", s)
	}
	v, err := SFromBig(b)
	if err != nil {
		t.Fatalf("SFromBig(%s): %v", s, err)
	}
	return v
}

func uRaw(t *testing.T, s string) Unsigned {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad literal %q", s)
	}
	v, err := UFromBig(b)
	if err != nil {
		t.Fatalf("UFromBig(%s): %v", s, err)
	}
	return v
}

func assertSigned(t *testing.T, got, want Signed, msg string) {
	t.Helper()
	if !got.Eq(want) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func assertUnsigned(t *testing.T, got, want Unsigned, msg string) {
	t.Helper()
	if !got.Eq(want) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func assertErr(t *testing.T, err, want error, msg string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Errorf("%s: got err %v, want %v", msg, err, want)
	}
}

func TestSignedConversions(t *testing.T) {
	tests := []struct {
		name string
		i    int64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative", -42},
		{"large", 1 << 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SFromInt(tt.i).ToInt(); got != tt.i {
				t.Errorf("SFromInt(%d).ToInt() = %d", tt.i, got)
			}
		})
	}

	t.Run("to int truncates toward zero", func(t *testing.T) {
		v := sRaw(t, "-2250000000000000000") // -2.25
		if got := v.ToInt(); got != -2 {
			t.Errorf("(-2.25).ToInt() = %d, want -2", got)
		}
	})
	t.Run("from big rejects out of range", func(t *testing.T) {
		over := new(big.Int).Add(SMax.Big(), big.NewInt(1))
		if _, err := SFromBig(over); !errors.Is(err, ErrOverflow) {
			t.Errorf("SFromBig(SMax+1) err = %v, want ErrOverflow", err)
		}
	})
	t.Run("string rendering", func(t *testing.T) {
		if got := sRaw(t, "-2250000000000000000").String(); got != "-2.25" {
			t.Errorf("String() = %q, want %q", got, "-2.25")
		}
		if got := SOne.String(); got != "1" {
			t.Errorf("String() = %q, want %q", got, "1")
		}
		if got := SEpsilon.String(); got != "0.000000000000000001" {
			t.Errorf("String() = %q, want %q", got, "0.000000000000000001")
		}
	})
}

func TestSignedArithmetic(t *testing.T) {
	t.Run("mixed fractions", func(t *testing.T) {
		a := sRaw(t, "3500000000000000000")  // 3.5
		b := sRaw(t, "-2250000000000000000") // -2.25
		r, err := a.Add(b)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		assertSigned(t, r, sRaw(t, "1250000000000000000"), "3.5 + -2.25")
		l, err := b.Add(a)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		assertSigned(t, l, r, "commutation must be exact")
	})
	t.Run("overflow edges", func(t *testing.T) {
		_, err := SMax.Add(SEpsilon)
		assertErr(t, err, ErrOverflow, "SMax + epsilon")
		_, err = SMin.Sub(SEpsilon)
		assertErr(t, err, ErrOverflow, "SMin - epsilon")
		_, err = SMin.Neg()
		assertErr(t, err, ErrOverflow, "-SMin")
	})
	t.Run("truncation toward zero", func(t *testing.T) {
		half := sRaw(t, "500000000000000000")
		r, err := SEpsilon.Mul(half)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		assertSigned(t, r, SZero, "epsilon * 0.5 truncates to zero")
		n, _ := SEpsilon.Neg()
		r, err = n.Mul(half)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		assertSigned(t, r, SZero, "-epsilon * 0.5 truncates to zero, not below")
	})
	t.Run("repeating quotient", func(t *testing.T) {
		third, err := SOne.Div(SFromInt(3))
		if err != nil {
			t.Fatalf("Div: %v", err)
		}
		assertSigned(t, third, sRaw(t, "333333333333333333"), "1/3")
		back, err := third.Mul(SFromInt(3))
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		assertSigned(t, back, sRaw(t, "999999999999999999"), "(1/3)*3")
	})
	t.Run("division by zero", func(t *testing.T) {
		_, err := SOne.Div(SZero)
		assertErr(t, err, ErrDivZero, "1 / 0")
		_, err = SZero.Inv()
		assertErr(t, err, ErrDivZero, "inv(0)")
	})
	t.Run("avg floors", func(t *testing.T) {
		r := SOne.Avg(STwo)
		assertSigned(t, r, sRaw(t, "1500000000000000000"), "avg(1,2)")
		r = SZero.Avg(SEpsilon)
		assertSigned(t, r, SZero, "avg(0, epsilon) floors")
	})
	t.Run("inv of epsilon", func(t *testing.T) {
		r, err := SEpsilon.Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		assertSigned(t, r, SFromInt(1_000_000_000_000_000_000), "inv(epsilon)")
	})
}

func TestSignedPowSqrt(t *testing.T) {
	t.Run("powu anchors", func(t *testing.T) {
		r, err := SFromInt(2).Powu(10)
		if err != nil {
			t.Fatalf("Powu: %v", err)
		}
		assertSigned(t, r, SFromInt(1024), "2^10")
		r, err = SZero.Powu(0)
		if err != nil {
			t.Fatalf("Powu: %v", err)
		}
		assertSigned(t, r, SOne, "0^0")
	})
	t.Run("sqrt anchors", func(t *testing.T) {
		r, err := SFromInt(4).Sqrt()
		if err != nil {
			t.Fatalf("Sqrt: %v", err)
		}
		assertSigned(t, r, STwo, "sqrt(4)")
		_, err = SNegOne.Sqrt()
		assertErr(t, err, ErrDomain, "sqrt(-1)")
	})
	t.Run("gavg anchors", func(t *testing.T) {
		r, err := SFromInt(2).Gavg(SFromInt(8))
		if err != nil {
			t.Fatalf("Gavg: %v", err)
		}
		assertSigned(t, r, SFromInt(4), "gavg(2,8)")
		_, err = SFromInt(2).Gavg(SFromInt(-8))
		assertErr(t, err, ErrDomain, "gavg(2,-8)")
	})
	t.Run("pow whole exponent is exact on powers of two", func(t *testing.T) {
		r, err := SFromInt(2).Pow(SFromInt(10))
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		assertSigned(t, r, SFromInt(1024), "pow(2,10)")
	})
	t.Run("pow special cases", func(t *testing.T) {
		r, err := SZero.Pow(SZero)
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		assertSigned(t, r, SOne, "0^0")
		r, err = SZero.Pow(STwo)
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		assertSigned(t, r, SZero, "0^2")
		_, err = SZero.Pow(SNegOne)
		assertErr(t, err, ErrDivZero, "0^-1")
		_, err = SNegOne.Pow(STwo)
		assertErr(t, err, ErrDomain, "(-1)^2 via pow")
	})
}

func TestSignedTranscendental(t *testing.T) {
	t.Run("log2 anchors", func(t *testing.T) {
		r, err := STwo.Log2()
		if err != nil {
			t.Fatalf("Log2: %v", err)
		}
		assertSigned(t, r, SOne, "log2(2)")
		r, err = SOne.Log2()
		if err != nil {
			t.Fatalf("Log2: %v", err)
		}
		assertSigned(t, r, SZero, "log2(1)")
		_, err = SZero.Log2()
		assertErr(t, err, ErrDomain, "log2(0)")
	})
	t.Run("exp2 anchors", func(t *testing.T) {
		r, err := SZero.Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertSigned(t, r, SOne, "exp2(0)")
		r, err = SOne.Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertSigned(t, r, STwo, "exp2(1)")
		r, err = SFromInt(10).Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertSigned(t, r, SFromInt(1024), "exp2(10)")
	})
	t.Run("exp2 edges", func(t *testing.T) {
		_, err := SFromInt(200).Exp2()
		assertErr(t, err, ErrOverflow, "exp2(200)")
		r, err := SFromInt(-150).Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertSigned(t, r, SZero, "exp2(-150) underflows to zero")
	})
	t.Run("exp and ln anchors", func(t *testing.T) {
		r, err := SZero.Exp()
		if err != nil {
			t.Fatalf("Exp: %v", err)
		}
		assertSigned(t, r, SOne, "exp(0)")
		r, err = SOne.Ln()
		if err != nil {
			t.Fatalf("Ln: %v", err)
		}
		assertSigned(t, r, SZero, "ln(1)")
	})
}

func TestUnsigned(t *testing.T) {
	t.Run("conversions", func(t *testing.T) {
		for _, i := range []uint64{0, 1, 42, 1 << 50} {
			if got := UFromInt(i).ToInt(); got != i {
				t.Errorf("UFromInt(%d).ToInt() = %d", i, got)
			}
		}
	})
	t.Run("sub underflow", func(t *testing.T) {
		_, err := UZero.Sub(UEpsilon)
		assertErr(t, err, ErrOverflow, "0 - epsilon")
		r, err := UOne.Sub(UOne)
		if err != nil {
			t.Fatalf("Sub: %v", err)
		}
		assertUnsigned(t, r, UZero, "1 - 1")
	})
	t.Run("add overflow", func(t *testing.T) {
		_, err := UMax.Add(UEpsilon)
		assertErr(t, err, ErrOverflow, "UMax + epsilon")
	})
	t.Run("log domain below one", func(t *testing.T) {
		_, err := UEpsilon.Log2()
		assertErr(t, err, ErrDomain, "log2(epsilon)")
		_, err = UZero.Ln()
		assertErr(t, err, ErrDomain, "ln(0)")
		r, err := UTwo.Log2()
		if err != nil {
			t.Fatalf("Log2: %v", err)
		}
		assertUnsigned(t, r, UOne, "log2(2)")
	})
	t.Run("pow rejects bases below one", func(t *testing.T) {
		_, err := UEpsilon.Pow(UTwo)
		assertErr(t, err, ErrDomain, "pow(epsilon, 2)")
		r, err := uRaw(t, "500000000000000000").Pow(UZero)
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		assertUnsigned(t, r, UOne, "x^0 for x below one")
	})
	t.Run("pow anchors", func(t *testing.T) {
		r, err := UFromInt(2).Pow(UFromInt(10))
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		assertUnsigned(t, r, UFromInt(1024), "pow(2,10)")
		r, err = UZero.Pow(UTwo)
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		assertUnsigned(t, r, UZero, "0^2")
	})
	t.Run("gavg at the top", func(t *testing.T) {
		r, err := UMax.Gavg(UMax)
		if err != nil {
			t.Fatalf("Gavg: %v", err)
		}
		assertUnsigned(t, r, UMax, "gavg(UMax, UMax)")
	})
	t.Run("inv truncates at the top", func(t *testing.T) {
		r, err := UMax.Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		assertUnsigned(t, r, UZero, "inv(UMax)")
	})
	t.Run("avg never fails", func(t *testing.T) {
		r := UMax.Avg(UMax)
		assertUnsigned(t, r, UMax, "avg(UMax, UMax)")
	})
}
