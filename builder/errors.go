// SPDX-License-Identifier: MIT
// Package: ratsolve/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • The underlying rational/matrix cause is kept in the chain, so
//     errors.Is(err, rational.ErrDivisionByZero) also works.

package builder

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates input that cannot be turned into a rectangular
// grid of rationals: no equations, a token that is not "int" or "int/int",
// a zero denominator, or lines with different token counts.
var ErrMalformedInput = errors.New("builder: malformed input")

// malformedf wraps ErrMalformedInput with position context and an optional cause.
func malformedf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrMalformedInput, msg)
	}

	return fmt.Errorf("%w: %s: %w", ErrMalformedInput, msg, cause)
}
