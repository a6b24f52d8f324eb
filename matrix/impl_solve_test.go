// SPDX-License-Identifier: MIT
// Package matrix_test contains end-to-end classification tests for Solve.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestSolveClassification covers the three output shapes.
func TestSolveClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     []string
		want     string
		wantKind matrix.Kind
	}{
		{"identity", []string{"1 0 1", "0 1 2"}, "SOL=(1; 2)", matrix.Unique},
		{"inconsistent", []string{"1 1 1", "1 1 2"}, "SOL=NONE", matrix.NoSolution},
		{"one equation two unknowns", []string{"1 1 1"}, "SOL=(1; 0) + q1 * (-1; 1)", matrix.Parametric},
		{"fractions", []string{"1/2 1/3 1", "1/3 1/2 1"}, "SOL=(6/5; 6/5)", matrix.Unique},
		{"fractional result", []string{"3 0 1", "0 7 -2"}, "SOL=(1/3; -2/7)", matrix.Unique},
		{"classic 3x3", []string{"2 1 -1 8", "-3 -1 2 -11", "-2 1 2 -3"}, "SOL=(2; 3; -1)", matrix.Unique},
		{"needs swap", []string{"0 1 3", "1 0 4"}, "SOL=(4; 3)", matrix.Unique},
		{"two free parameters", []string{"1 2 3 4"},
			"SOL=(4; 0; 0) + q1 * (-2; 1; 0) + q2 * (-3; 0; 1)", matrix.Parametric},
		{"free column in the middle", []string{"1 2 0 3", "0 0 1 4"},
			"SOL=(3; 0; 4) + q1 * (-2; 1; 0)", matrix.Parametric},
		{"free leading column", []string{"0 1 5"}, "SOL=(0; 5) + q1 * (1; 0)", matrix.Parametric},
		{"all zero", []string{"0 0 0"}, "SOL=(0; 0) + q1 * (1; 0) + q2 * (0; 1)", matrix.Parametric},
		{"zero equals five", []string{"0 0 5"}, "SOL=NONE", matrix.NoSolution},
		{"overdetermined consistent", []string{"1 1 2", "1 -1 0", "2 1 3"}, "SOL=(1; 1)", matrix.Unique},
		{"overdetermined inconsistent", []string{"1 1 2", "1 -1 0", "2 1 4"}, "SOL=NONE", matrix.NoSolution},
		{"duplicate equation", []string{"1 1 2", "2 2 4"}, "SOL=(2; 0) + q1 * (-1; 1)", matrix.Parametric},
		{"no unknowns consistent", []string{"0"}, "SOL=()", matrix.Unique},
		{"no unknowns inconsistent", []string{"5"}, "SOL=NONE", matrix.NoSolution},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			grid := parseGrid(t, tc.rows...)
			m, err := matrix.New(grid)
			require.NoError(t, err)

			sol, err := m.Solve()
			require.NoError(t, err)
			require.Equal(t, tc.want, sol.String())
			require.Equal(t, tc.wantKind, sol.Kind)
			requireSatisfies(t, grid, sol)
		})
	}
}

// TestSolveParametricLayout checks the structured fields behind the string.
func TestSolveParametricLayout(t *testing.T) {
	sol := mustSolve(t, "1 2 0 3", "0 0 1 4")

	require.Equal(t, matrix.Parametric, sol.Kind)
	require.Equal(t, 3, sol.Unknowns)
	require.Equal(t, 2, sol.CoefficientRank)
	require.Equal(t, 2, sol.AugmentedRank)
	require.Equal(t, []int{0, 2}, sol.PivotColumns)
	require.Equal(t, []int{1}, sol.FreeColumns)
	require.Equal(t, 1, sol.Params())
	require.Nil(t, sol.Values)
}

// TestSolveRanks checks the rank fields for an inconsistent system.
func TestSolveRanks(t *testing.T) {
	sol := mustSolve(t, "1 1 1", "1 1 2")
	require.Equal(t, 1, sol.CoefficientRank)
	require.Equal(t, 2, sol.AugmentedRank)
	require.Equal(t, 0, sol.Params())
	require.Equal(t, "none", sol.Kind.String())
}

// TestSolveConsumesMatrix documents that Solve leaves the reduced form behind.
func TestSolveConsumesMatrix(t *testing.T) {
	m := mustMatrix(t, "2 4 6", "1 1 1")
	_, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, "1 0 -1\n0 1 2", m.String())
}

// TestSolveRandomSystemsSatisfy solves random systems and verifies every
// answer exactly against the original equations.
func TestSolveRandomSystemsSatisfy(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	seen := map[matrix.Kind]int{}
	for iter := 0; iter < 500; iter++ {
		grid := randomGrid(rnd)
		m, err := matrix.New(grid)
		require.NoError(t, err)

		sol, err := m.Solve()
		require.NoError(t, err)
		seen[sol.Kind]++
		requireSatisfies(t, grid, sol)

		switch sol.Kind {
		case matrix.NoSolution:
			require.Contains(t, sol.PivotColumns, sol.Unknowns, "inconsistent rows pivot on the augmented column")
		case matrix.Unique:
			require.Equal(t, sol.Unknowns, sol.CoefficientRank)
		case matrix.Parametric:
			require.Equal(t, sol.Unknowns-sol.CoefficientRank, sol.Params())
		}
	}
	require.Len(t, seen, 3, "random fixtures should hit every kind")
}

// TestKindString covers the log names.
func TestKindString(t *testing.T) {
	require.Equal(t, "unique", matrix.Unique.String())
	require.Equal(t, "parametric", matrix.Parametric.String())
	require.Equal(t, "unknown", matrix.Kind(9).String())
}
