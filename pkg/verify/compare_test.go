package verify

import (
	"errors"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func bigOf(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal: " + s)
	}
	return b
}

func TestEqualWithinBits(t *testing.T) {
	tests := []struct {
		name string
		a, b *big.Int
		bits uint
		want bool
	}{
		{"identical", big.NewInt(1000), big.NewInt(1000), 0, true},
		{"off by one no tolerance", big.NewInt(1000), big.NewInt(1001), 0, false},
		{"off by one within a bit", big.NewInt(1000), big.NewInt(1001), 1, true},
		{"off by seven within three bits", big.NewInt(0), big.NewInt(7), 3, true},
		{"off by eight outside three bits", big.NewInt(0), big.NewInt(8), 3, false},
		{"negative pair", big.NewInt(-1000), big.NewInt(-1010), 4, true},
		{"opposite signs", big.NewInt(-4), big.NewInt(4), 3, true},
		{"large gap", bigOf("340282366920938463463374607431768211456"), big.NewInt(0), 64, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualWithinBits(tt.a, tt.b, tt.bits); got != tt.want {
				t.Errorf("EqualWithinBits(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.bits, got, tt.want)
			}
		})
	}
}

func TestEqualWithinDigits(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *big.Int
		digits uint
		want   bool
	}{
		{"identical", big.NewInt(123456), big.NewInt(123456), 0, true},
		{"one unit apart", big.NewInt(123456), big.NewInt(123457), 0, true},
		{"two units apart", big.NewInt(123456), big.NewInt(123458), 0, false},
		{"low digits ignored", big.NewInt(123456), big.NewInt(123999), 3, true},
		{"difference above the cut", big.NewInt(123456), big.NewInt(125456), 3, false},
		{"negative pair", big.NewInt(-123456), big.NewInt(-123460), 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualWithinDigits(tt.a, tt.b, tt.digits); got != tt.want {
				t.Errorf("EqualWithinDigits(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.digits, got, tt.want)
			}
		})
	}
}

func TestEqualWithinPercent(t *testing.T) {
	pct := func(s string) decimal.Decimal {
		d, err := decimal.Parse(s)
		if err != nil {
			t.Fatalf("decimal.Parse(%q): %v", s, err)
		}
		return d
	}

	t.Run("within one percent", func(t *testing.T) {
		ok, err := EqualWithinPercent(big.NewInt(10000), big.NewInt(10099), pct("1"))
		if err != nil || !ok {
			t.Errorf("got (%v, %v), want (true, nil)", ok, err)
		}
	})
	t.Run("outside one percent", func(t *testing.T) {
		ok, err := EqualWithinPercent(big.NewInt(10000), big.NewInt(10101), pct("1"))
		if err != nil || ok {
			t.Errorf("got (%v, %v), want (false, nil)", ok, err)
		}
	})
	t.Run("degenerate tolerance discards", func(t *testing.T) {
		_, err := EqualWithinPercent(big.NewInt(10), big.NewInt(10), pct("0.5"))
		if !errors.Is(err, ErrDiscard) {
			t.Errorf("got err %v, want ErrDiscard", err)
		}
	})
	t.Run("zero percent discards", func(t *testing.T) {
		_, err := EqualWithinPercent(big.NewInt(10000), big.NewInt(10000), pct("0"))
		if !errors.Is(err, ErrDiscard) {
			t.Errorf("got err %v, want ErrDiscard", err)
		}
	})
}

func TestEqualMostSignificantBits(t *testing.T) {
	tests := []struct {
		name string
		a, b *big.Int
		bits uint
		want bool
	}{
		{"identical", big.NewInt(0xABCDEF), big.NewInt(0xABCDEF), 24, true},
		{"same prefix different tail", big.NewInt(0xABC000), big.NewInt(0xABCFFF), 12, true},
		{"lengths differ by two", big.NewInt(1 << 20), big.NewInt(1 << 22), 4, false},
		{"lengths differ by one", big.NewInt(0xFFFF), big.NewInt(0x10000), 8, true},
		{"sign mismatch", big.NewInt(100), big.NewInt(-100), 4, false},
		{"both zero", big.NewInt(0), big.NewInt(0), 8, true},
		{"prefix off by two", big.NewInt(0b1010<<16), big.NewInt(0b1000<<16), 4, false},
		{"one ulp across a power of two", bigOf("18446744073709551616"), bigOf("18446744073709551615"), 20, true},
		{"factor of two rejected", bigOf("18446744073709551616"), bigOf("36893488147419103232"), 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualMostSignificantBits(tt.a, tt.b, tt.bits); got != tt.want {
				t.Errorf("EqualMostSignificantBits(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.bits, got, tt.want)
			}
		})
	}
}

func TestEqualMostSignificantDigits(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *big.Int
		digits uint
		want   bool
	}{
		{"identical", big.NewInt(987654), big.NewInt(987654), 6, true},
		{"same prefix", big.NewInt(123999), big.NewInt(123000), 3, true},
		{"lengths differ by one", big.NewInt(99999), big.NewInt(100000), 4, true},
		{"lengths differ by two", big.NewInt(999), big.NewInt(99999), 2, false},
		{"prefix differs", big.NewInt(129999), big.NewInt(121000), 3, false},
		{"sign mismatch", big.NewInt(-123), big.NewInt(123), 2, false},
		{"one ulp across a power of ten", bigOf("1000000000000000000"), bigOf("999999999999999999"), 15, true},
		{"factor of ten rejected", big.NewInt(123456789), big.NewInt(1234567890), 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualMostSignificantDigits(tt.a, tt.b, tt.digits); got != tt.want {
				t.Errorf("EqualMostSignificantDigits(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.digits, got, tt.want)
			}
		})
	}
}

func TestMagnitudeEstimators(t *testing.T) {
	one := new(big.Int).Lsh(big.NewInt(1), 64)

	t.Run("ilog2 of one", func(t *testing.T) {
		if got := ILog2(one, 64); got != 0 {
			t.Errorf("ILog2(2^64, 64) = %d, want 0", got)
		}
	})
	t.Run("ilog2 of eight", func(t *testing.T) {
		if got := ILog2(new(big.Int).Lsh(one, 3), 64); got != 3 {
			t.Errorf("ILog2(2^67, 64) = %d, want 3", got)
		}
	})
	t.Run("ilog2 below one", func(t *testing.T) {
		if got := ILog2(new(big.Int).Rsh(one, 2), 64); got != -2 {
			t.Errorf("ILog2(2^62, 64) = %d, want -2", got)
		}
	})
	t.Run("ilog10 of one", func(t *testing.T) {
		if got := ILog10(bigOf("1000000000000000000"), 18); got != 0 {
			t.Errorf("ILog10(10^18, 18) = %d, want 0", got)
		}
	})
	t.Run("ilog10 of a thousand", func(t *testing.T) {
		if got := ILog10(bigOf("1000000000000000000000"), 18); got != 3 {
			t.Errorf("ILog10(10^21, 18) = %d, want 3", got)
		}
	})
	t.Run("significant bits of unit square", func(t *testing.T) {
		if got := SignificantBitsAfterMul(one, one, 64); got != 63 {
			t.Errorf("SignificantBitsAfterMul(1, 1) = %d, want 63", got)
		}
	})
	t.Run("significant bits with zero operand", func(t *testing.T) {
		if got := SignificantBitsAfterMul(one, big.NewInt(0), 64); got != 0 {
			t.Errorf("SignificantBitsAfterMul(1, 0) = %d, want 0", got)
		}
	})
	t.Run("tiny product loses everything", func(t *testing.T) {
		tiny := big.NewInt(1 << 10)
		if !BitsLostInMul(tiny, tiny, 64) {
			t.Error("BitsLostInMul(2^-54, 2^-54) = false, want true")
		}
	})
	t.Run("significant digits of unit square", func(t *testing.T) {
		s := bigOf("1000000000000000000")
		if got := SignificantDigitsAfterMul(s, s, 18); got != 17 {
			t.Errorf("SignificantDigitsAfterMul(1, 1) = %d, want 17", got)
		}
	})
}

func TestViolation(t *testing.T) {
	t.Run("error string carries operands", func(t *testing.T) {
		v := Violated("fmt/test", "must hold", big.NewInt(3), big.NewInt(4))
		if v.ID.String() == "" {
			t.Error("violation must carry an id")
		}
		want := "fmt/test: must hold [3, 4]"
		if v.Error() != want {
			t.Errorf("Error() = %q, want %q", v.Error(), want)
		}
	})
	t.Run("check passes through", func(t *testing.T) {
		if err := Check(true, "fmt/test", "must hold"); err != nil {
			t.Errorf("Check(true) = %v, want nil", err)
		}
		if err := Check(false, "fmt/test", "must hold"); err == nil {
			t.Error("Check(false) = nil, want violation")
		}
	})
}
