// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/katalvlaran/ratsolve/builder"
	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/katalvlaran/ratsolve/rational"
	"github.com/stretchr/testify/require"
)

// TestParseSystem covers accepted layouts.
func TestParseSystem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  []builder.BuilderOption
		want  string
	}{
		{"two lines", "1 0 1\n0 1 2", nil, "1 0 1\n0 1 2"},
		{"trailing newline", "1 0 1\n0 1 2\n", nil, "1 0 1\n0 1 2"},
		{"crlf", "1 0 1\r\n0 1 2\r\n", nil, "1 0 1\n0 1 2"},
		{"fractions reduce", "2/4 -3/6 6/3", nil, "1/2 -1/2 2"},
		{"single token", "5", nil, "5"},
		{"lenient whitespace", "  1\t0   1\n\n0 1 2  \n\n", []builder.BuilderOption{builder.WithLenientWhitespace()}, "1 0 1\n0 1 2"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.ParseSystem(tc.input, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, m.String())
		})
	}
}

// TestParseSystemMalformed checks that every rejection is ErrMalformedInput
// and keeps its cause.
func TestParseSystemMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		opts    []builder.BuilderOption
		wantErr error // additional cause, if any
	}{
		{"empty", "", nil, rational.ErrSyntax},
		{"empty lenient", " \n\t\n", []builder.BuilderOption{builder.WithLenientWhitespace()}, nil},
		{"ragged", "1 2 3\n1 2", nil, nil},
		{"double space", "1  2", nil, rational.ErrSyntax},
		{"interior blank line", "1 2\n\n3 4", nil, nil},
		{"word", "1 x 3", nil, rational.ErrSyntax},
		{"float", "1.5 2", nil, rational.ErrSyntax},
		{"zero denominator", "1/0 2", nil, rational.ErrDivisionByZero},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.ParseSystem(tc.input, tc.opts...)
			require.ErrorIs(t, err, builder.ErrMalformedInput)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestParseRowsAndGrid checks the lower-level entry points.
func TestParseRowsAndGrid(t *testing.T) {
	m, err := builder.ParseRows([]string{"1 1 1", "1 1 2"})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	m, err = builder.ParseGrid([][]string{{"1", "0", "1"}, {"0", "1", "2"}})
	require.NoError(t, err)
	sol, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, "SOL=(1; 2)", sol.String())

	_, err = builder.ParseGrid(nil)
	require.ErrorIs(t, err, builder.ErrMalformedInput)

	_, err = builder.ParseGrid([][]string{{}})
	require.ErrorIs(t, err, builder.ErrMalformedInput)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestWithMatrixOptions checks forwarding to matrix.New.
func TestWithMatrixOptions(t *testing.T) {
	m, err := builder.ParseSystem("1 1 1",
		builder.WithMatrixOptions(matrix.WithParamName("t")),
		builder.WithMatrixOptions(matrix.WithTrace(true)),
		nil,
	)
	require.NoError(t, err)
	sol, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, "SOL=(1; 0) + t1 * (-1; 1)", sol.String())
}

// TestFractionalSystemExact reconstructs the original equations from the
// reduced form: the solution must satisfy them with exact equality.
func TestFractionalSystemExact(t *testing.T) {
	input := "1/2 1/3 -1/5 1\n2/7 -1 1/4 0\n1 1/9 1/3 -2/3"
	orig, err := builder.ParseSystem(input)
	require.NoError(t, err)
	grid := orig.Grid()

	sol, err := orig.Solve()
	require.NoError(t, err)
	require.Equal(t, matrix.Unique, sol.Kind)

	for i, row := range grid {
		lhs := rational.Zero()
		for j, x := range sol.Values {
			lhs = lhs.Add(row[j].Mul(x))
		}
		require.Truef(t, lhs.Equal(row[3]), "equation %d: %v != %v", i, lhs, row[3])
	}
}
