package q64

import (
	"errors"
	"math/big"
	"testing"
)

func rawOf(t *testing.T, b *big.Int) Value {
	t.Helper()
	v, err := FromBig(b)
	if err != nil {
		t.Fatalf("FromBig(%v): %v", b, err)
	}
	return v
}

// frac builds num/2^shift as a raw value, for fractional test anchors.
func frac(t *testing.T, num int64, shift uint) Value {
	t.Helper()
	b := new(big.Int).Lsh(big.NewInt(num), FracBits-shift)
	return rawOf(t, b)
}

func assertEqual(t *testing.T, got, want Value, msg string) {
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

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		i    int64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative", -5},
		{"large", 1 << 40},
		{"large negative", -(1 << 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromInt(tt.i).ToInt(); got != tt.i {
				t.Errorf("FromInt(%d).ToInt() = %d", tt.i, got)
			}
		})
	}

	t.Run("to int floors", func(t *testing.T) {
		// -2.25 floors to -3
		v := frac(t, -9, 2)
		if got := v.ToInt(); got != -3 {
			t.Errorf("(-2.25).ToInt() = %d, want -3", got)
		}
	})
	t.Run("from big rejects out of range", func(t *testing.T) {
		over := new(big.Int).Add(Max.Big(), big.NewInt(1))
		if _, err := FromBig(over); !errors.Is(err, ErrOverflow) {
			t.Errorf("FromBig(Max+1) err = %v, want ErrOverflow", err)
		}
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"zero", Zero, "0"},
		{"one", One, "1"},
		{"negative one", NegOne, "-1"},
		{"three point five", frac(t, 7, 1), "3.5"},
		{"minus two point two five", frac(t, -9, 2), "-2.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	t.Run("mixed fractions", func(t *testing.T) {
		a := frac(t, 7, 1)  // 3.5
		b := frac(t, -9, 2) // -2.25
		want := frac(t, 5, 2)
		r, err := a.Add(b)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		assertEqual(t, r, want, "3.5 + -2.25")
		l, err := b.Add(a)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		assertEqual(t, l, r, "commutation must be bit exact")
	})
	t.Run("max plus zero", func(t *testing.T) {
		r, err := Max.Add(Zero)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		assertEqual(t, r, Max, "Max + 0")
	})
	t.Run("overflow edges", func(t *testing.T) {
		_, err := Max.Add(Epsilon)
		assertErr(t, err, ErrOverflow, "Max + epsilon")
		_, err = Min.Sub(Epsilon)
		assertErr(t, err, ErrOverflow, "Min - epsilon")
		_, err = Min.Add(Min)
		assertErr(t, err, ErrOverflow, "Min + Min")
	})
	t.Run("neg of min", func(t *testing.T) {
		_, err := Min.Neg()
		assertErr(t, err, ErrOverflow, "-Min")
		_, err = Min.Abs()
		assertErr(t, err, ErrOverflow, "|Min|")
	})
}

func TestMulDiv(t *testing.T) {
	t.Run("exact product", func(t *testing.T) {
		a := frac(t, 3, 1) // 1.5
		r, err := a.Mul(a)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		assertEqual(t, r, frac(t, 9, 2), "1.5 * 1.5")
	})
	t.Run("floor rounding", func(t *testing.T) {
		// epsilon * epsilon is 2^-128, which floors to zero
		r, err := Epsilon.Mul(Epsilon)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		assertEqual(t, r, Zero, "epsilon * epsilon")
		// -epsilon * epsilon floors to -epsilon, not zero
		n, _ := Epsilon.Neg()
		r, err = n.Mul(Epsilon)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		assertEqual(t, r, n, "-epsilon * epsilon floors down")
	})
	t.Run("zero divided", func(t *testing.T) {
		r, err := Zero.Div(FromInt(17))
		if err != nil {
			t.Fatalf("Div: %v", err)
		}
		assertEqual(t, r, Zero, "0 / 17")
	})
	t.Run("division by zero", func(t *testing.T) {
		_, err := One.Div(Zero)
		assertErr(t, err, ErrDivZero, "1 / 0")
		_, err = Zero.Inv()
		assertErr(t, err, ErrDivZero, "inv(0)")
	})
	t.Run("inverse of two", func(t *testing.T) {
		r, err := Two.Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		assertEqual(t, r, frac(t, 1, 1), "inv(2)")
	})
	t.Run("inverse of epsilon overflows", func(t *testing.T) {
		_, err := Epsilon.Inv()
		assertErr(t, err, ErrOverflow, "inv(epsilon)")
	})
	t.Run("mul overflow", func(t *testing.T) {
		_, err := Max.Mul(Two)
		assertErr(t, err, ErrOverflow, "Max * 2")
		_, err = Min.Mul(NegOne)
		assertErr(t, err, ErrOverflow, "Min * -1")
	})
}

func TestAvgGavg(t *testing.T) {
	t.Run("avg of extremes", func(t *testing.T) {
		r := Min.Avg(Max)
		if r.Gt(Zero) || r.Lt(NegOne) {
			t.Errorf("avg(Min, Max) = %v, want within [-1, 0]", r)
		}
	})
	t.Run("avg midpoint", func(t *testing.T) {
		assertEqual(t, FromInt(2).Avg(FromInt(4)), FromInt(3), "avg(2,4)")
	})
	t.Run("gavg exact", func(t *testing.T) {
		r, err := FromInt(2).Gavg(FromInt(8))
		if err != nil {
			t.Fatalf("Gavg: %v", err)
		}
		assertEqual(t, r, FromInt(4), "gavg(2,8)")
	})
	t.Run("gavg negative product", func(t *testing.T) {
		_, err := FromInt(2).Gavg(FromInt(-8))
		assertErr(t, err, ErrDomain, "gavg(2,-8)")
	})
}

func TestPowSqrt(t *testing.T) {
	t.Run("powu anchors", func(t *testing.T) {
		r, err := Two.Powu(10)
		if err != nil {
			t.Fatalf("Powu: %v", err)
		}
		assertEqual(t, r, FromInt(1024), "2^10")
		r, err = Zero.Powu(0)
		if err != nil {
			t.Fatalf("Powu: %v", err)
		}
		assertEqual(t, r, One, "0^0")
		r, err = FromInt(-3).Powu(2)
		if err != nil {
			t.Fatalf("Powu: %v", err)
		}
		assertEqual(t, r, FromInt(9), "(-3)^2")
	})
	t.Run("powu overflow", func(t *testing.T) {
		_, err := Max.Powu(2)
		assertErr(t, err, ErrOverflow, "Max^2")
	})
	t.Run("sqrt anchors", func(t *testing.T) {
		r, err := FromInt(4).Sqrt()
		if err != nil {
			t.Fatalf("Sqrt: %v", err)
		}
		assertEqual(t, r, Two, "sqrt(4)")
		r, err = Zero.Sqrt()
		if err != nil {
			t.Fatalf("Sqrt: %v", err)
		}
		assertEqual(t, r, Zero, "sqrt(0)")
	})
	t.Run("sqrt domain", func(t *testing.T) {
		_, err := NegOne.Sqrt()
		assertErr(t, err, ErrDomain, "sqrt(-1)")
	})
}

func TestTranscendental(t *testing.T) {
	t.Run("log2 anchors", func(t *testing.T) {
		r, err := FromInt(4).Log2()
		if err != nil {
			t.Fatalf("Log2: %v", err)
		}
		assertEqual(t, r, Two, "log2(4)")
		r, err = One.Log2()
		if err != nil {
			t.Fatalf("Log2: %v", err)
		}
		assertEqual(t, r, Zero, "log2(1)")
	})
	t.Run("log domain", func(t *testing.T) {
		_, err := Zero.Log2()
		assertErr(t, err, ErrDomain, "log2(0)")
		_, err = NegOne.Ln()
		assertErr(t, err, ErrDomain, "ln(-1)")
	})
	t.Run("exp2 anchors", func(t *testing.T) {
		r, err := Zero.Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertEqual(t, r, One, "exp2(0)")
		r, err = One.Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertEqual(t, r, Two, "exp2(1)")
		r, err = FromInt(10).Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertEqual(t, r, FromInt(1024), "exp2(10)")
	})
	t.Run("exp2 edges", func(t *testing.T) {
		_, err := FromInt(64).Exp2()
		assertErr(t, err, ErrOverflow, "exp2(64)")
		r, err := FromInt(-200).Exp2()
		if err != nil {
			t.Fatalf("Exp2: %v", err)
		}
		assertEqual(t, r, Zero, "exp2(-200) underflows to zero")
	})
	t.Run("exp and ln anchors", func(t *testing.T) {
		r, err := Zero.Exp()
		if err != nil {
			t.Fatalf("Exp: %v", err)
		}
		assertEqual(t, r, One, "exp(0)")
		r, err = One.Ln()
		if err != nil {
			t.Fatalf("Ln: %v", err)
		}
		assertEqual(t, r, Zero, "ln(1)")
		r, err = One.Log10()
		if err != nil {
			t.Fatalf("Log10: %v", err)
		}
		assertEqual(t, r, Zero, "log10(1)")
	})
	t.Run("log2 of half", func(t *testing.T) {
		r, err := frac(t, 1, 1).Log2()
		if err != nil {
			t.Fatalf("Log2: %v", err)
		}
		assertEqual(t, r, NegOne, "log2(0.5)")
	})
}
