package sd59props

import (
	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/dec18"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Properties returns every check of the suite as a named entry drawing
// boundary-biased operands, for the campaign driver.
func Properties() []verify.Property {
	return []verify.Property{
		un("sd59/add_identity", AddIdentity),
		un("sd59/add_inverse", AddInverse),
		bin("sd59/add_commutative", AddCommutative),
		tri("sd59/add_associative", AddAssociative),
		bin("sd59/add_monotonic", AddMonotonic),
		bin("sd59/add_range", AddRange),
		un("sd59/sub_self", SubSelf),
		bin("sd59/sub_add_inverse", SubAddInverse),
		un("sd59/neg_double", NegDouble),
		un("sd59/abs", AbsProperties),
		un("sd59/avg_self", AvgSelf),
		bin("sd59/avg_symmetric", AvgSymmetric),
		bin("sd59/avg_between", AvgBetween),
		bin("sd59/mul_commutative", MulCommutative),
		un("sd59/mul_identity", MulIdentity),
		bin("sd59/mul_negation", MulNegation),
		tri("sd59/mul_associative", MulAssociative),
		tri("sd59/mul_distributive", MulDistributive),
		bin("sd59/mul_range", MulRange),
		bin("sd59/mul_magnitude", MulMagnitude),
		un("sd59/div_identity", DivIdentity),
		bin("sd59/div_negation", DivNegation),
		bin("sd59/div_mul_roundtrip", DivMulRoundtrip),
		un("sd59/div_by_zero", DivByZero),
		un("sd59/inv_involution", InvInvolution),
		un("sd59/inv_mul_one", InvMulOne),
		un("sd59/gavg_self", GavgSelf),
		bin("sd59/gavg_symmetric", GavgSymmetric),
		bin("sd59/gavg_domain", GavgDomain),
		un("sd59/powu_zero_exponent", PowuZeroExponent),
		un("sd59/powu_one_exponent", PowuOneExponent),
		{Name: "sd59/powu_add_exponents", Run: func(rng *rand.Rand) error {
			return PowuAddExponents(value(rng), exponent(rng), exponent(rng))
		}},
		un("sd59/pow_zero_exponent", PowZeroExponent),
		un("sd59/pow_one_base", PowOneBase),
		un("sd59/pow_zero_base", PowZeroBase),
		bin("sd59/pow_negative_base", PowNegativeBase),
		unExp("sd59/pow_int_exponent", PowIntExponent),
		un("sd59/sqrt_square", SqrtSquare),
		un("sd59/square_sqrt", SquareSqrt),
		bin("sd59/sqrt_monotonic", SqrtMonotonic),
		un("sd59/sqrt_contracting", SqrtContracting),
		bin("sd59/log2_product", Log2ProductRule),
		bin("sd59/log10_product", Log10ProductRule),
		unExp("sd59/log2_power", Log2PowerRule),
		un("sd59/log_domain", LogDomain),
		bin("sd59/log_monotonic", LogMonotonic),
		un("sd59/exp2_log2_roundtrip", Exp2Log2Roundtrip),
		un("sd59/log2_exp2_roundtrip", Log2Exp2Roundtrip),
		un("sd59/exp_ln_roundtrip", ExpLnRoundtrip),
		bin("sd59/exp2_sum", Exp2Sum),
		bin("sd59/exp_sum", ExpSum),
		un("sd59/exp2_neg_identity", Exp2NegIdentity),
		un("sd59/exp_neg_identity", ExpNegIdentity),
		un("sd59/exp_small_argument", ExpSmallArgument),
		bin("sd59/exp2_monotonic", Exp2Monotonic),
		fixed("sd59/add_boundaries", AddBoundaries),
		fixed("sd59/mul_boundaries", MulBoundaries),
		fixed("sd59/div_boundaries", DivBoundaries),
		fixed("sd59/neg_boundaries", NegBoundaries),
		fixed("sd59/sqrt_boundaries", SqrtBoundaries),
		fixed("sd59/log_boundaries", LogBoundaries),
		fixed("sd59/exp_boundaries", ExpBoundaries),
		fixed("sd59/pow_boundaries", PowBoundaries),
		fixed("sd59/inv_boundaries", InvBoundaries),
		{Name: "sd59/conv_roundtrip", Run: func(rng *rand.Rand) error {
			return ConvRoundtrip(int64(rng.Uint64()))
		}},
	}
}

func un(name string, check func(dec18.Signed) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng))
	}}
}

func unExp(name string, check func(dec18.Signed, uint64) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), exponent(rng))
	}}
}

func bin(name string, check func(dec18.Signed, dec18.Signed) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), value(rng))
	}}
}

func tri(name string, check func(dec18.Signed, dec18.Signed, dec18.Signed) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), value(rng), value(rng))
	}}
}

func fixed(name string, check func() error) verify.Property {
	return verify.Property{Name: name, Run: func(*rand.Rand) error {
		return check()
	}}
}
