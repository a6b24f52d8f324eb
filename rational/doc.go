// SPDX-License-Identifier: MIT

// Package rational provides Rational, an immutable exact fraction of
// arbitrary-precision integers.
//
// What & Why:
//
//	Linear systems over the rationals must be solved without rounding. Every
//	Rational is kept in canonical form (gcd(num, den) == 1, den > 0, zero is
//	0/1), so two equal fractions always carry identical numerator and
//	denominator and equality reduces to a component comparison.
//
// Complexity:
//
//	Add, Sub, Mul, Div cost one or two big.Int multiplications plus one GCD,
//	i.e. roughly quadratic in the bit length of the operands.
//
// Quick example:
//
//	a, _ := rational.Parse("1/2")
//	b := rational.FromInt64(3)
//	fmt.Println(a.Add(b)) // 7/2
package rational
