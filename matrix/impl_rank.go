// SPDX-License-Identifier: MIT

package matrix

// Rank counts the leading rows, from the top, whose first k entries are not
// all zero, stopping at the first row that is. On a reduced matrix Rank(n)
// is the coefficient rank and Rank(ncol) the augmented rank.
//
// Errors:
//   - ErrOutOfRange if k is outside [0, Cols()].
//
// Complexity: O(nrow * k).
func (m *Matrix) Rank(k int) (int, error) {
	if k < 0 || k > m.ncol {
		return 0, indexErrorf(opRank, 0, k, ErrOutOfRange)
	}

	r := 0
	for ; r < m.nrow; r++ {
		if m.leadingColumn(r, k-1) < 0 {
			break
		}
	}

	return r, nil
}

// PivotColumns returns, for each non-zero row top to bottom, the column of its
// first non-zero entry. The augmented column is included, so an inconsistent
// row reports ncol-1.
func (m *Matrix) PivotColumns() []int {
	var cols []int
	for i := 0; i < m.nrow; i++ {
		if j := m.leadingColumn(i, m.ncol-1); j >= 0 {
			cols = append(cols, j)
		}
	}

	return cols
}

// NonPivotColumns returns the columns in [0, n) that are not pivot columns,
// ascending.
func (m *Matrix) NonPivotColumns() []int {
	isPivot := make([]bool, m.ncol)
	for _, j := range m.PivotColumns() {
		isPivot[j] = true
	}

	var free []int
	for j := 0; j < m.ncol-1; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	return free
}
