// SPDX-License-Identifier: MIT
// Package matrix_test: shared fixtures and exact verification helpers.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/katalvlaran/ratsolve/rational"
	"github.com/stretchr/testify/require"
)

// parseGrid turns "a b c" rows into a rational grid.
func parseGrid(tb testing.TB, rows ...string) [][]rational.Rational {
	tb.Helper()
	grid := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		for _, tok := range strings.Fields(row) {
			r, err := rational.Parse(tok)
			require.NoError(tb, err)
			grid[i] = append(grid[i], r)
		}
	}

	return grid
}

// mustMatrix parses rows and builds a Matrix or fails the test.
func mustMatrix(tb testing.TB, rows ...string) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(parseGrid(tb, rows...))
	require.NoError(tb, err)

	return m
}

// mustSolve builds and solves rows.
func mustSolve(tb testing.TB, rows ...string) *matrix.Solution {
	tb.Helper()
	sol, err := mustMatrix(tb, rows...).Solve()
	require.NoError(tb, err)

	return sol
}

// dot returns Σ row[j]·x[j] over the coefficient columns.
func dot(row, x []rational.Rational) rational.Rational {
	acc := rational.Zero()
	for j := range x {
		acc = acc.Add(row[j].Mul(x[j]))
	}

	return acc
}

// requireSatisfies checks, with exact arithmetic, that sol solves grid:
// A·x = b for unique solutions, A·base = b and A·dir = 0 for families.
func requireSatisfies(tb testing.TB, grid [][]rational.Rational, sol *matrix.Solution) {
	tb.Helper()
	n := len(grid[0]) - 1
	switch sol.Kind {
	case matrix.Unique:
		require.Len(tb, sol.Values, n)
		for i, row := range grid {
			require.Truef(tb, dot(row, sol.Values).Equal(row[n]), "equation %d not satisfied", i)
		}
	case matrix.Parametric:
		require.Len(tb, sol.Base, n)
		for i, row := range grid {
			require.Truef(tb, dot(row, sol.Base).Equal(row[n]), "base violates equation %d", i)
			for k, dir := range sol.Directions {
				require.Len(tb, dir, n)
				require.Truef(tb, dot(row, dir).IsZero(), "direction %d leaves equation %d", k, i)
			}
		}
	}
}
