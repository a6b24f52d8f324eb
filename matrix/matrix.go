// SPDX-License-Identifier: MIT

// Package matrix - augmented matrix storage & safe accessors.
//
// Purpose:
//   - Own a private copy of the caller's grid (row slices are never aliased).
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/ratsolve/rational"
)

var log = logging.Logger("matrix")

// ---------- Formatting literals ----------
const (
	_fmtEntrySep = " "
	_fmtRowSep   = "\n"
)

// Matrix is an augmented nrow×ncol grid of rationals. The last column is the
// right-hand side; the first n = ncol-1 columns are the coefficients of n
// unknowns. Elimination mutates the grid in place.
type Matrix struct {
	data [][]rational.Rational // row-major, len(data) == nrow, len(data[i]) == ncol
	nrow int
	ncol int
	opts Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from grid, copying every row so that the returned
// Matrix exclusively owns its buffer.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular, ncol >= 1).
//   - Stage 2: copy rows; resolve options.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch (wrapped with "New: ").
//
// Complexity:
//   - Time O(r*c), Space O(r*c) slice headers (Rational values are immutable
//     and safely shared).
func New(grid [][]rational.Rational, opts ...Option) (*Matrix, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	data := make([][]rational.Rational, len(grid))
	for i, row := range grid {
		data[i] = append([]rational.Rational(nil), row...)
	}

	return &Matrix{
		data: data,
		nrow: len(grid),
		ncol: len(grid[0]),
		opts: gatherOptions(opts...),
	}, nil
}

// Rows returns the number of equations.
func (m *Matrix) Rows() int { return m.nrow }

// Cols returns the number of columns including the augmented one.
func (m *Matrix) Cols() int { return m.ncol }

// Unknowns returns n = Cols()-1.
func (m *Matrix) Unknowns() int { return m.ncol - 1 }

// At returns the entry at (row, col).
//
// Errors:
//   - ErrOutOfRange if row or col is outside the grid.
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	if row < 0 || row >= m.nrow || col < 0 || col >= m.ncol {
		return rational.Rational{}, indexErrorf(opAt, row, col, ErrOutOfRange)
	}

	return m.data[row][col], nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange if i is outside [0, Rows()).
func (m *Matrix) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.nrow {
		return nil, indexErrorf(opRow, i, 0, ErrOutOfRange)
	}

	return append([]rational.Rational(nil), m.data[i]...), nil
}

// Grid returns a copy of all rows.
func (m *Matrix) Grid() [][]rational.Rational {
	out := make([][]rational.Rational, m.nrow)
	for i := range m.data {
		out[i] = append([]rational.Rational(nil), m.data[i]...)
	}

	return out
}

// Clone returns an independent copy carrying the same options.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{data: m.Grid(), nrow: m.nrow, ncol: m.ncol, opts: m.opts}
}

// String renders one row per line, entries separated by single spaces, in
// the same token syntax the builder package parses.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.data {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		for j, e := range row {
			if j > 0 {
				sb.WriteString(_fmtEntrySep)
			}
			sb.WriteString(e.String())
		}
	}

	return sb.String()
}
