// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse reads a decimal token of the form "int" or "int/int".
// Each integer may carry a leading '+' or '-'. No surrounding whitespace is
// accepted.
//
// Errors:
//   - ErrSyntax for anything else (empty parts, floats, extra '/').
//   - ErrDivisionByZero for a zero denominator ("3/0").
func Parse(s string) (Rational, error) {
	numStr, denStr, hasSlash := strings.Cut(s, "/")

	num, ok := new(big.Int).SetString(numStr, 10)
	if !ok {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}
	if !hasSlash {
		return reduce(num, big.NewInt(1)), nil
	}

	den, ok := new(big.Int).SetString(denStr, 10)
	if !ok {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}
	if den.Sign() == 0 {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrDivisionByZero))
	}

	return reduce(num, den), nil
}

// MustParse is like Parse but panics on error.
// Intended for constants in tests and examples.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}
