// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels (possibly wrapped with %w)
// and tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with matrixErrorf(op, err) at the public boundary; callers still
// branch with errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Matrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned for a grid without rows or with an empty row.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates rows of unequal length.
	ErrDimensionMismatch = errors.New("matrix: rows of unequal length")

	// ErrOutOfRange indicates that a row, column or rank bound is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvariant signals a broken elimination invariant, e.g. a zero pivot
	// in a column the scan declared non-zero. It is a defect, not a user error;
	// the arithmetic cause stays reachable through errors.Is.
	ErrInvariant = errors.New("matrix: internal invariant violated")
)

// Operation name constants for unified error wrapping.
const (
	opNew     = "New"
	opAt      = "At"
	opRow     = "Row"
	opRank    = "Rank"
	opEchelon = "ToEchelonForm"
	opReduced = "ToReducedEchelonForm"
	opSolve   = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches coordinates to a sentinel at the detection site.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
