// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Callers MUST branch with errors.Is; sentinels are wrapped with %w when
// context (the offending token, the operation) is attached.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a Rational would be built with a zero
	// denominator, or when dividing by a zero Rational or a zero integer.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax indicates that a token is neither "int" nor "int/int".
	ErrSyntax = errors.New("rational: invalid syntax")
)

// Operation tags used in error wrapping.
const (
	opNew    = "New"
	opDiv    = "Div"
	opDivInt = "DivInt"
	opParse  = "Parse"
)

// rationalErrorf wraps err with an operation tag, preserving it for errors.Is.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("rational.%s: %w", tag, err)
}
