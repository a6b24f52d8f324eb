// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape validation of input grids.
//   - Return plain sentinel errors (wrapped with coordinates only) so call
//     sites can wrap uniformly.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratsolve/rational"
)

// ValidateGrid checks that grid is a non-empty rectangle with at least one
// column: nrow >= 1, every row has the same length >= 1.
//
// Errors:
//   - ErrBadShape if there are no rows or the first row is empty.
//   - ErrDimensionMismatch naming the first row whose length differs.
//
// Complexity: O(nrow).
func ValidateGrid(grid [][]rational.Rational) error {
	if len(grid) == 0 {
		return fmt.Errorf("ValidateGrid: no rows: %w", ErrBadShape)
	}
	ncol := len(grid[0])
	if ncol == 0 {
		return fmt.Errorf("ValidateGrid: empty row 0: %w", ErrBadShape)
	}
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != ncol {
			return fmt.Errorf("ValidateGrid: row %d has %d entries, want %d: %w",
				i, len(grid[i]), ncol, ErrDimensionMismatch)
		}
	}

	return nil
}
