// SPDX-License-Identifier: MIT
// Package: ratsolve/builder
//
// api.go - public entry points: text → tokens → rationals → *matrix.Matrix.

package builder

import (
	"strings"

	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/katalvlaran/ratsolve/rational"
)

const (
	_lineSep  = "\n"
	_crlf     = "\r\n"
	_tokenSep = " "
)

// ParseSystem parses a whole system, one equation per line. "\r\n" line
// endings and a single trailing newline are accepted.
//
// Errors:
//   - ErrMalformedInput (wrapping the rational or matrix cause, if any).
func ParseSystem(input string, opts ...BuilderOption) (*matrix.Matrix, error) {
	input = strings.ReplaceAll(input, _crlf, _lineSep)
	input = strings.TrimSuffix(input, _lineSep)

	return ParseRows(strings.Split(input, _lineSep), opts...)
}

// ParseRows parses one equation per element of rows.
func ParseRows(rows []string, opts ...BuilderOption) (*matrix.Matrix, error) {
	cfg := newBuilderConfig(opts...)

	tokens := make([][]string, 0, len(rows))
	for _, row := range rows {
		if cfg.lenient {
			fields := strings.Fields(row)
			if len(fields) == 0 {
				continue
			}
			tokens = append(tokens, fields)
			continue
		}
		tokens = append(tokens, strings.Split(row, _tokenSep))
	}

	return buildGrid(tokens, cfg)
}

// ParseGrid parses pre-split tokens; tokens[i][j] is coefficient j of
// equation i (the last one being the constant term).
func ParseGrid(tokens [][]string, opts ...BuilderOption) (*matrix.Matrix, error) {
	return buildGrid(tokens, newBuilderConfig(opts...))
}

// buildGrid validates the shape first, then parses every token, then hands
// the grid to matrix.New.
func buildGrid(tokens [][]string, cfg builderConfig) (*matrix.Matrix, error) {
	if len(tokens) == 0 {
		return nil, malformedf(nil, "no equations")
	}
	width := len(tokens[0])
	for i, row := range tokens {
		if len(row) != width {
			return nil, malformedf(nil, "line %d has %d tokens, line 1 has %d", i+1, len(row), width)
		}
	}

	grid := make([][]rational.Rational, len(tokens))
	for i, row := range tokens {
		grid[i] = make([]rational.Rational, len(row))
		for j, tok := range row {
			r, err := rational.Parse(tok)
			if err != nil {
				return nil, malformedf(err, "line %d token %d", i+1, j+1)
			}
			grid[i][j] = r
		}
	}

	m, err := matrix.New(grid, cfg.matrixOpts...)
	if err != nil {
		return nil, malformedf(err, "grid")
	}

	return m, nil
}
