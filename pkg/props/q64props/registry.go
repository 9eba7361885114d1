package q64props

import (
	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/pkg/fixmath/q64"
	"github.com/fixprop/fixprop/pkg/verify"
)

// Properties returns every check of the suite as a named entry drawing
// boundary-biased operands, for the campaign driver.
func Properties() []verify.Property {
	return []verify.Property{
		un("q64/add_identity", AddIdentity),
		un("q64/add_inverse", AddInverse),
		bin("q64/add_commutative", AddCommutative),
		tri("q64/add_associative", AddAssociative),
		bin("q64/add_monotonic", AddMonotonic),
		bin("q64/add_range", AddRange),
		un("q64/sub_self", SubSelf),
		un("q64/sub_identity", SubIdentity),
		bin("q64/sub_add_inverse", SubAddInverse),
		bin("q64/sub_monotonic", SubMonotonic),
		un("q64/neg_double", NegDouble),
		un("q64/abs", AbsProperties),
		un("q64/abs_symmetric", AbsSymmetric),
		bin("q64/abs_multiplicative", AbsMultiplicative),
		un("q64/avg_self", AvgSelf),
		bin("q64/avg_symmetric", AvgSymmetric),
		bin("q64/avg_between", AvgBetween),
		bin("q64/mul_commutative", MulCommutative),
		un("q64/mul_identity", MulIdentity),
		tri("q64/mul_associative", MulAssociative),
		tri("q64/mul_distributive", MulDistributive),
		bin("q64/mul_range", MulRange),
		bin("q64/mul_magnitude", MulMagnitude),
		un("q64/div_identity", DivIdentity),
		bin("q64/div_negation", DivNegation),
		bin("q64/div_mul_roundtrip", DivMulRoundtrip),
		un("q64/div_by_zero", DivByZero),
		bin("q64/div_magnitude", DivMagnitude),
		un("q64/inv_involution", InvInvolution),
		un("q64/inv_mul_one", InvMulOne),
		un("q64/inv_negation", InvNegation),
		un("q64/gavg_self", GavgSelf),
		bin("q64/gavg_symmetric", GavgSymmetric),
		bin("q64/gavg_domain", GavgDomain),
		un("q64/pow_zero_exponent", PowZeroExponent),
		un("q64/pow_one_exponent", PowOneExponent),
		{Name: "q64/pow_zero_base", Run: func(rng *rand.Rand) error {
			return PowZeroBase(exponent(rng))
		}},
		{Name: "q64/pow_add_exponents", Run: func(rng *rand.Rand) error {
			return PowAddExponents(value(rng), exponent(rng), exponent(rng))
		}},
		unExp("q64/pow_sign", PowSign),
		unExp("q64/pow_magnitude", PowMagnitude),
		un("q64/sqrt_square", SqrtSquare),
		un("q64/square_sqrt", SquareSqrt),
		bin("q64/sqrt_monotonic", SqrtMonotonic),
		un("q64/sqrt_contracting", SqrtContracting),
		bin("q64/log2_product", Log2ProductRule),
		unExp("q64/log2_power", Log2PowerRule),
		bin("q64/log10_product", Log10ProductRule),
		un("q64/log_domain", LogDomain),
		bin("q64/log_monotonic", LogMonotonic),
		un("q64/exp2_log2_roundtrip", Exp2Log2Roundtrip),
		un("q64/log2_exp2_roundtrip", Log2Exp2Roundtrip),
		un("q64/exp_ln_roundtrip", ExpLnRoundtrip),
		bin("q64/exp2_sum", Exp2Sum),
		bin("q64/exp_sum", ExpSum),
		un("q64/exp2_neg_identity", Exp2NegIdentity),
		un("q64/exp_neg_identity", ExpNegIdentity),
		bin("q64/exp2_monotonic", Exp2Monotonic),
		fixed("q64/add_boundaries", AddBoundaries),
		fixed("q64/mul_boundaries", MulBoundaries),
		fixed("q64/div_boundaries", DivBoundaries),
		fixed("q64/neg_boundaries", NegBoundaries),
		fixed("q64/sqrt_boundaries", SqrtBoundaries),
		fixed("q64/log_boundaries", LogBoundaries),
		fixed("q64/exp_boundaries", ExpBoundaries),
		fixed("q64/pow_boundaries", PowBoundaries),
		fixed("q64/inv_boundaries", InvBoundaries),
		{Name: "q64/conv_roundtrip", Run: func(rng *rand.Rand) error {
			return ConvRoundtrip(int64(rng.Uint64()))
		}},
	}
}

func un(name string, check func(q64.Value) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng))
	}}
}

func unExp(name string, check func(q64.Value, uint64) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), exponent(rng))
	}}
}

func bin(name string, check func(q64.Value, q64.Value) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), value(rng))
	}}
}

func tri(name string, check func(q64.Value, q64.Value, q64.Value) error) verify.Property {
	return verify.Property{Name: name, Run: func(rng *rand.Rand) error {
		return check(value(rng), value(rng), value(rng))
	}}
}

func fixed(name string, check func() error) verify.Property {
	return verify.Property{Name: name, Run: func(*rand.Rand) error {
		return check()
	}}
}
