// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan elimination kernels.
//
// Purpose:
//   - Stage A (ToEchelonForm): forward elimination to row-echelon form with
//     unit pivots.
//   - Stage B (ToReducedEchelonForm): backward elimination to reduced
//     row-echelon form.
//
// Pivot policy (fixed, must not change, output depends on it):
//   - columns are scanned left to right, including the augmented column;
//   - the pivot row is the first row at or below the frontier with a non-zero
//     entry in that column (no magnitude-based pivoting, arithmetic is exact);
//   - zero rows are never moved explicitly, they sink by construction.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratsolve/rational"
)

// ToEchelonForm runs forward elimination in place.
//
// Implementation:
//   - (topRow, leftCol) frontier starting at (0, 0).
//   - Stage 1: if column leftCol is zero from topRow down, advance leftCol only.
//   - Stage 2: find the first row at or below topRow with a non-zero entry.
//   - Stage 3: swap it into topRow (full row, augmented entry included).
//   - Stage 4: divide the row from leftCol on by the pivot, making it exactly 1.
//   - Stage 5: for every row below, add (-entry) × pivot row.
//   - Stage 6: advance both topRow and leftCol.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvariant if a pivot turned out to be zero (defect).
//
// Complexity:
//   - Time O(nrow * ncol * min(nrow, ncol)) rational operations, Space O(1) extra.
func (m *Matrix) ToEchelonForm() error {
	if m == nil {
		return matrixErrorf(opEchelon, ErrNilMatrix)
	}

	topRow, leftCol := 0, 0
	for leftCol < m.ncol && topRow < m.nrow {
		if m.isZeroColumn(leftCol, topRow) {
			leftCol++
			continue
		}

		rowPivot := topRow
		for ; rowPivot < m.nrow; rowPivot++ {
			if m.data[rowPivot][leftCol].IsNonZero() {
				break
			}
		}
		// Unreachable after the zero-column check; kept as an early exit.
		if rowPivot == m.nrow {
			break
		}

		if rowPivot != topRow {
			m.swapRows(topRow, rowPivot)
			rowPivot = topRow
		}

		if err := m.normalizeRow(rowPivot, leftCol); err != nil {
			return matrixErrorf(opEchelon, err)
		}

		for i := rowPivot + 1; i < m.nrow; i++ {
			entry := m.data[i][leftCol]
			if entry.IsZero() {
				continue
			}
			m.addScaledRow(i, rowPivot, leftCol, entry.Neg())
		}

		leftCol++
		topRow++
	}

	return nil
}

// ToReducedEchelonForm runs backward elimination in place. The matrix must
// already be in echelon form (ToEchelonForm).
//
// Implementation:
//   - (bottomRow, rightCol) frontier starting at (nrow-1, ncol-1).
//   - Stage 1: a zero row only moves bottomRow up.
//   - Stage 2: colPivot = leftmost non-zero entry of bottomRow at or before
//     rightCol; stop if there is none.
//   - Stage 3: clear colPivot in every row above by adding a multiple of bottomRow.
//   - Stage 4: bottomRow--, rightCol = colPivot-1.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvariant if a pivot turned out to be zero (defect).
//
// Complexity:
//   - Time O(nrow * ncol * min(nrow, ncol)), Space O(1) extra.
func (m *Matrix) ToReducedEchelonForm() error {
	if m == nil {
		return matrixErrorf(opReduced, ErrNilMatrix)
	}

	bottomRow, rightCol := m.nrow-1, m.ncol-1
	for bottomRow >= 0 && rightCol >= 0 {
		if m.isZeroRow(bottomRow) {
			bottomRow--
			continue
		}

		colPivot := m.leadingColumn(bottomRow, rightCol)
		if colPivot < 0 {
			break
		}

		pivot := m.data[bottomRow][colPivot]
		for i := bottomRow - 1; i >= 0; i-- {
			entry := m.data[i][colPivot]
			if entry.IsZero() {
				continue
			}
			c, err := entry.Div(pivot)
			if err != nil {
				return matrixErrorf(opReduced, invariantErrorf(bottomRow, colPivot, err))
			}
			m.addScaledRow(i, bottomRow, colPivot, c.Neg())
		}

		bottomRow--
		rightCol = colPivot - 1
	}

	return nil
}

// isZeroColumn reports whether column col is zero in rows fromRow..nrow-1.
func (m *Matrix) isZeroColumn(col, fromRow int) bool {
	for i := fromRow; i < m.nrow; i++ {
		if m.data[i][col].IsNonZero() {
			return false
		}
	}

	return true
}

// isZeroRow reports whether every entry of row i, augmented included, is zero.
func (m *Matrix) isZeroRow(i int) bool {
	for _, e := range m.data[i] {
		if e.IsNonZero() {
			return false
		}
	}

	return true
}

// leadingColumn returns the first non-zero column of row i within [0, lastCol],
// or -1 if there is none.
func (m *Matrix) leadingColumn(i, lastCol int) int {
	for j := 0; j <= lastCol && j < m.ncol; j++ {
		if m.data[i][j].IsNonZero() {
			return j
		}
	}

	return -1
}

// swapRows exchanges rows a and b.
func (m *Matrix) swapRows(a, b int) {
	m.data[a], m.data[b] = m.data[b], m.data[a]
}

// normalizeRow divides row i from column col on by data[i][col].
func (m *Matrix) normalizeRow(i, col int) error {
	pivot := m.data[i][col]
	row := m.data[i]
	for j := col; j < m.ncol; j++ {
		v, err := row[j].Div(pivot)
		if err != nil {
			return invariantErrorf(i, col, err)
		}
		row[j] = v
	}

	return nil
}

// addScaledRow performs row[dst] += c · row[src] on columns fromCol..ncol-1.
// Columns left of fromCol are zero in src by the echelon invariant.
func (m *Matrix) addScaledRow(dst, src, fromCol int, c rational.Rational) {
	d, s := m.data[dst], m.data[src]
	for j := fromCol; j < m.ncol; j++ {
		d[j] = d[j].Add(c.Mul(s[j]))
	}
}

// invariantErrorf reports a zero pivot at (row, col), keeping both ErrInvariant
// and the arithmetic cause matchable with errors.Is.
func invariantErrorf(row, col int, cause error) error {
	return fmt.Errorf("%w: zero pivot at (%d,%d): %w", ErrInvariant, row, col, cause)
}
