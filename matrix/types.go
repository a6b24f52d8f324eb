// SPDX-License-Identifier: MIT

// Package matrix: domain types produced by Solve.
// This file contains ONLY result-facing types; the Matrix itself lives in
// matrix.go, rendering in solution.go.
package matrix

import "github.com/katalvlaran/ratsolve/rational"

// Kind classifies the solution set of a linear system.
type Kind int

const (
	// NoSolution: coefficient rank differs from augmented rank.
	NoSolution Kind = iota
	// Unique: every unknown is a pivot column.
	Unique
	// Parametric: at least one free column; infinitely many solutions.
	Parametric
)

// String returns a lower-case name for logs.
func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "none"
	case Unique:
		return "unique"
	case Parametric:
		return "parametric"
	default:
		return "unknown"
	}
}

// Solution is the exact classification of A·x = b.
//
// Layout by Kind:
//   - NoSolution: only Unknowns and the ranks are set.
//   - Unique:     Values[i] is the value of x_i.
//   - Parametric: x = Base + Σ_k q_(k+1) · Directions[k]; Directions[k] belongs
//     to FreeColumns[k] (ascending). Every vector has length Unknowns.
type Solution struct {
	Kind     Kind
	Unknowns int // n = ncol-1

	CoefficientRank int // rank of the first n columns
	AugmentedRank   int // rank of all ncol columns

	Values []rational.Rational // Unique only

	Base         []rational.Rational   // Parametric only
	Directions   [][]rational.Rational // Parametric only; one per free column
	PivotColumns []int                 // pivot column per non-zero row of the reduced form
	FreeColumns  []int                 // non-pivot columns in [0, n), ascending

	paramName string // rendering symbol; DefaultParamName when empty
}
