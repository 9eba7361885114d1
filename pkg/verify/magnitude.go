package verify

import "math/big"

// Estimators gate tolerant property checks: when an operation's inputs
// leave too little precision for the law to be observable, the check is
// discarded instead of failed.

const (
	// MinSignificantBits is the precision floor below which a binary
	// multiplicative law carries no information.
	MinSignificantBits = 10
	// MinSignificantDigits is the decimal analogue.
	MinSignificantDigits = 10
)

// ILog2 returns floor(log2(|raw|/2^fracBits)), the base-2 integer
// magnitude of the real value behind a raw scaled integer. Result is
// meaningless for zero; callers exclude zero first.
func ILog2(raw *big.Int, fracBits uint) int {
	return raw.BitLen() - 1 - int(fracBits)
}

// ILog10 returns floor(log10(|raw|/10^fracDigits)).
func ILog10(raw *big.Int, fracDigits uint) int {
	return int(digitLen(raw)) - 1 - int(fracDigits)
}

// SignificantBitsAfterMul estimates how many meaningful bits survive
// multiplying the two operands: fracBits + floor(log2|a|) + floor(log2|b|)
// - 1, clamped at zero.
func SignificantBitsAfterMul(a, b *big.Int, fracBits uint) uint {
	if a.Sign() == 0 || b.Sign() == 0 {
		return 0
	}
	s := int(fracBits) + ILog2(a, fracBits) + ILog2(b, fracBits) - 1
	if s < 0 {
		return 0
	}
	return uint(s)
}

// SignificantDigitsAfterMul is the decimal analogue of
// SignificantBitsAfterMul.
func SignificantDigitsAfterMul(a, b *big.Int, fracDigits uint) uint {
	if a.Sign() == 0 || b.Sign() == 0 {
		return 0
	}
	s := int(fracDigits) + ILog10(a, fracDigits) + ILog10(b, fracDigits) - 1
	if s < 0 {
		return 0
	}
	return uint(s)
}

// BitsLostInMul reports whether a*b is indistinguishable from zero at the
// format's resolution.
func BitsLostInMul(a, b *big.Int, fracBits uint) bool {
	return SignificantBitsAfterMul(a, b, fracBits) == 0
}

// DigitsLostInMul is the decimal analogue of BitsLostInMul.
func DigitsLostInMul(a, b *big.Int, fracDigits uint) bool {
	return SignificantDigitsAfterMul(a, b, fracDigits) == 0
}
