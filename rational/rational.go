// SPDX-License-Identifier: MIT

// Package rational - Rational value type and arithmetic.
//
// Purpose:
//   - Exact fractions num/den over math/big integers, always canonical.
//   - Immutable: every operation allocates fresh big.Int storage for its result
//     and never writes into receivers or arguments.
//
// Invariants (hold for every reachable Rational, including the zero value):
//   - den > 0.
//   - gcd(|num|, den) == 1.
//   - zero is 0/1.

package rational

import (
	"math/big"
)

// read-only constants; never passed as a receiver of a big.Int setter.
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Rational is an exact fraction in lowest terms.
// The zero value is the number 0.
type Rational struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1; otherwise strictly positive
}

// n returns the numerator without copying. Callers MUST NOT mutate it.
func (r Rational) n() *big.Int {
	if r.num == nil {
		return bigZero
	}

	return r.num
}

// d returns the denominator without copying. Callers MUST NOT mutate it.
func (r Rational) d() *big.Int {
	if r.den == nil {
		return bigOne
	}

	return r.den
}

// reduce builds a canonical Rational from x/y, taking ownership of both.
// y must be non-zero.
func reduce(x, y *big.Int) Rational {
	if x.Sign() == 0 {
		return Rational{num: x.SetInt64(0), den: y.SetInt64(1)}
	}
	// GCD is non-negative for any signs of x and y; it is >0 because y != 0.
	g := new(big.Int).GCD(nil, nil, x, y)
	x.Quo(x, g)
	y.Quo(y, g)
	if y.Sign() < 0 {
		x.Neg(x)
		y.Neg(y)
	}

	return Rational{num: x, den: y}
}

// New returns num/den reduced to lowest terms with a positive denominator.
// A nil num is read as 0 and a nil den as 1.
//
// Errors:
//   - ErrDivisionByZero if den == 0.
//
// Complexity: one GCD on the operands.
func New(num, den *big.Int) (Rational, error) {
	if num == nil {
		num = bigZero
	}
	if den == nil {
		den = bigOne
	}
	if den.Sign() == 0 {
		return Rational{}, rationalErrorf(opNew, ErrDivisionByZero)
	}

	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// NewInt64 is New for machine integers.
func NewInt64(num, den int64) (Rational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromInt returns the integer k as a Rational (k/1). A nil k is read as 0.
func FromInt(k *big.Int) Rational {
	if k == nil {
		return Zero()
	}

	return Rational{num: new(big.Int).Set(k), den: big.NewInt(1)}
}

// FromInt64 returns k/1.
func FromInt64(k int64) Rational {
	return Rational{num: big.NewInt(k), den: big.NewInt(1)}
}

// Zero returns 0/1.
func Zero() Rational { return FromInt64(0) }

// One returns 1/1.
func One() Rational { return FromInt64(1) }

// Num returns a copy of the reduced numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.n()) }

// Denom returns a copy of the reduced, strictly positive denominator.
func (r Rational) Denom() *big.Int { return new(big.Int).Set(r.d()) }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.n().Sign() == 0 }

// IsNonZero reports whether r != 0.
func (r Rational) IsNonZero() bool { return r.n().Sign() != 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool { return r.d().Cmp(bigOne) == 0 }

// Sign returns -1, 0 or +1 following the sign of r.
func (r Rational) Sign() int { return r.n().Sign() }

// Add returns r + o, computed as (a·d + c·b)/(b·d) and then reduced.
func (r Rational) Add(o Rational) Rational {
	x := new(big.Int).Mul(r.n(), o.d())
	x.Add(x, new(big.Int).Mul(o.n(), r.d()))

	return reduce(x, new(big.Int).Mul(r.d(), o.d()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	x := new(big.Int).Mul(r.n(), o.d())
	x.Sub(x, new(big.Int).Mul(o.n(), r.d()))

	return reduce(x, new(big.Int).Mul(r.d(), o.d()))
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.n()), den: new(big.Int).Set(r.d())}
}

// Mul returns r · o.
func (r Rational) Mul(o Rational) Rational {
	return reduce(new(big.Int).Mul(r.n(), o.n()), new(big.Int).Mul(r.d(), o.d()))
}

// MulInt returns r · k for an integer scalar k; only r's denominator takes
// part in the result. A nil k is read as 0.
func (r Rational) MulInt(k *big.Int) Rational {
	if k == nil {
		k = bigZero
	}

	return reduce(new(big.Int).Mul(r.n(), k), new(big.Int).Set(r.d()))
}

// Div returns r / o.
//
// Errors:
//   - ErrDivisionByZero if o == 0.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, rationalErrorf(opDiv, ErrDivisionByZero)
	}

	return reduce(new(big.Int).Mul(r.n(), o.d()), new(big.Int).Mul(r.d(), o.n())), nil
}

// DivInt returns r / k for an integer divisor k.
//
// Errors:
//   - ErrDivisionByZero if k is nil or zero.
func (r Rational) DivInt(k *big.Int) (Rational, error) {
	if k == nil || k.Sign() == 0 {
		return Rational{}, rationalErrorf(opDivInt, ErrDivisionByZero)
	}

	return reduce(new(big.Int).Set(r.n()), new(big.Int).Mul(r.d(), k)), nil
}

// Equal reports whether r and o denote the same number.
// Canonical form makes this a component-wise comparison.
func (r Rational) Equal(o Rational) bool {
	return r.n().Cmp(o.n()) == 0 && r.d().Cmp(o.d()) == 0
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	// Denominators are positive, so cross-multiplication keeps the order.
	left := new(big.Int).Mul(r.n(), o.d())

	return left.Cmp(new(big.Int).Mul(o.n(), r.d()))
}

// String renders "N" when the denominator is 1, else "N/D".
func (r Rational) String() string {
	if r.IsInt() {
		return r.n().String()
	}

	return r.n().String() + "/" + r.d().String()
}
