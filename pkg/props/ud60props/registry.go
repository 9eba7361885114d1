package ud60props

import (
	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Properties returns every check of the suite as a named entry drawing
// boundary-biased operands, for the campaign driver.
func Properties() []verify.Property {
	return []verify.Property{
		un("ud60/add_identity", AddIdentity),
		bin("ud60/add_commutative", AddCommutative),
		tri("ud60/add_associative", AddAssociative),
		bin("ud60/add_monotonic", AddMonotonic),
		bin("ud60/add_range", AddRange),
		un("ud60/sub_self", SubSelf),
		bin("ud60/sub_underflow", SubUnderflow),
		bin("ud60/sub_monotonic", SubMonotonic),
		un("ud60/avg_self", AvgSelf),
		bin("ud60/avg_symmetric", AvgSymmetric),
		bin("ud60/avg_between", AvgBetween),
		bin("ud60/avg_sum", AvgSum),
		bin("ud60/mul_commutative", MulCommutative),
		un("ud60/mul_identity", MulIdentity),
		tri("ud60/mul_associative", MulAssociative),
		tri("ud60/mul_distributive", MulDistributive),
		bin("ud60/mul_magnitude", MulMagnitude),
		un("ud60/div_identity", DivIdentity),
		bin("ud60/div_mul_roundtrip", DivMulRoundtrip),
		un("ud60/div_by_zero", DivByZero),
		bin("ud60/div_magnitude", DivMagnitude),
		un("ud60/inv_involution", InvInvolution),
		un("ud60/inv_mul_one", InvMulOne),
		un("ud60/gavg_self", GavgSelf),
		bin("ud60/gavg_symmetric", GavgSymmetric),
		bin("ud60/gavg_between", GavgBetween),
		un("ud60/powu_zero_exponent", PowuZeroExponent),
		un("ud60/powu_one_exponent", PowuOneExponent),
		{Name: "ud60/powu_add_exponents", Run: func(rng *rand.Rand) error {
			return PowuAddExponents(value(rng), exponent(rng), exponent(rng))
		}},
		un("ud60/pow_zero_exponent", PowZeroExponent),
		un("ud60/pow_one_base", PowOneBase),
		un("ud60/pow_zero_base", PowZeroBase),
		bin("ud60/pow_base_below_one", PowBaseBelowOne),
		unExp("ud60/pow_int_exponent", PowIntExponent),
		un("ud60/sqrt_square", SqrtSquare),
		un("ud60/square_sqrt", SquareSqrt),
		bin("ud60/sqrt_monotonic", SqrtMonotonic),
		un("ud60/sqrt_contracting", SqrtContracting),
		bin("ud60/log2_product", Log2ProductRule),
		bin("ud60/log10_product", Log10ProductRule),
		unExp("ud60/log2_power", Log2PowerRule),
		un("ud60/log_domain", LogDomain),
		bin("ud60/log_monotonic", LogMonotonic),
		un("ud60/exp2_log2_roundtrip", Exp2Log2Roundtrip),
		un("ud60/log2_exp2_roundtrip", Log2Exp2Roundtrip),
		un("ud60/exp_ln_roundtrip", ExpLnRoundtrip),
		bin("ud60/exp2_sum", Exp2Sum),
		bin("ud60/exp_sum", ExpSum),
		bin("ud60/exp2_monotonic", Exp2Monotonic),
		un("ud60/exp_small_argument", ExpSmallArgument),
		un("ud60/exp_growth", ExpGrowth),
		fixed("ud60/add_boundaries", AddBoundaries),
		fixed("ud60/mul_boundaries", MulBoundaries),
		fixed("ud60/div_boundaries", DivBoundaries),
		fixed("ud60/sqrt_boundaries", SqrtBoundaries),
		fixed("ud60/log_boundaries", LogBoundaries),
		fixed("ud60/exp_boundaries", ExpBoundaries),
		fixed("ud60/pow_boundaries", PowBoundaries),
		fixed("ud60/inv_boundaries", InvBoundaries),
		{Name: "ud60/conv_roundtrip", Run: func(rng *rand.Rand) error {
			return ConvRoundtrip(rng.Uint64())
		}},
	}
}

func un(name string, check func(dec18.Unsigned) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng))
	}}
}

func unExp(name string, check func(dec18.Unsigned, uint64) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), exponent(rng))
	}}
}

func bin(name string, check func(dec18.Unsigned, dec18.Unsigned) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), value(rng))
	}}
}

func tri(name string, check func(dec18.Unsigned, dec18.Unsigned, dec18.Unsigned) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), value(rng), value(rng))
	}}
}

func fixed(name string, check func() error) verify.Property {
	return verify.Property{Name: name, Run: func(*rand.Rand) error {
		return check()
	}}
}
