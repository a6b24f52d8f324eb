// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/ratsolve/rational"

// Solve reduces m to reduced row-echelon form and classifies A·x = b.
// The matrix is consumed: its buffer holds the reduced form afterwards.
//
// Implementation:
//   - Stage 1: ToEchelonForm, then ToReducedEchelonForm (traced at Debug
//     when WithTrace(true)).
//   - Stage 2: ra = Rank(n), rb = Rank(ncol).
//   - Stage 3: ra != rb ⇒ NoSolution; ra == n ⇒ Unique (augmented entries of
//     the first n rows); otherwise Parametric:
//     free unknown x:  base 0, direction 1 for its own parameter, 0 elsewhere;
//     pivot unknown x at row r: base = b_r, direction for free column e = -A[r][e].
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvariant from elimination (defect). No partial Solution is returned.
//
// Complexity:
//   - Time dominated by elimination, O(nrow * ncol * min(nrow, ncol)).
func (m *Matrix) Solve() (*Solution, error) {
	if m == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}

	if err := m.ToEchelonForm(); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if m.opts.trace {
		log.Debugf("echelon form (%dx%d):\n%s", m.nrow, m.ncol, m)
	}
	if err := m.ToReducedEchelonForm(); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if m.opts.trace {
		log.Debugf("reduced echelon form (%dx%d):\n%s", m.nrow, m.ncol, m)
	}

	n := m.ncol - 1
	// Both bounds are within [0, ncol]; Rank cannot fail here.
	ra, _ := m.Rank(n)
	rb, _ := m.Rank(m.ncol)

	sol := &Solution{
		Unknowns:        n,
		CoefficientRank: ra,
		AugmentedRank:   rb,
		PivotColumns:    m.PivotColumns(),
		paramName:       m.opts.paramName,
	}

	switch {
	case ra != rb:
		sol.Kind = NoSolution
	case ra == n:
		sol.Kind = Unique
		sol.Values = make([]rational.Rational, n)
		for i := 0; i < n; i++ {
			sol.Values[i] = m.data[i][n]
		}
	default:
		sol.Kind = Parametric
		sol.FreeColumns = m.NonPivotColumns()
		sol.Base, sol.Directions = m.parametric(sol.PivotColumns, sol.FreeColumns)
	}

	log.Debugf("solved %dx%d system: kind=%s rank=%d/%d free=%d",
		m.nrow, m.ncol, sol.Kind, ra, rb, len(sol.FreeColumns))

	return sol, nil
}

// parametric builds the base vector and one direction vector per free column.
func (m *Matrix) parametric(pivots, free []int) ([]rational.Rational, [][]rational.Rational) {
	n := m.ncol - 1

	// pivotRow[x] is the row whose pivot sits in column x, or -1.
	pivotRow := make([]int, n)
	for x := range pivotRow {
		pivotRow[x] = -1
	}
	for r, c := range pivots {
		if c < n {
			pivotRow[c] = r
		}
	}

	base := make([]rational.Rational, n)
	dirs := make([][]rational.Rational, len(free))
	for k := range dirs {
		dirs[k] = make([]rational.Rational, n)
	}

	for x := 0; x < n; x++ {
		r := pivotRow[x]
		if r < 0 {
			base[x] = rational.Zero()
			for k, e := range free {
				if e == x {
					dirs[k][x] = rational.One()
				} else {
					dirs[k][x] = rational.Zero()
				}
			}
			continue
		}
		base[x] = m.data[r][n]
		for k, e := range free {
			dirs[k][x] = m.data[r][e].Neg()
		}
	}

	return base, dirs
}
