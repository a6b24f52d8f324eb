// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/ratsolve/rational"
)

// Output grammar literals.
const (
	_solPrefix   = "SOL="
	_solNone     = "NONE"
	_vecOpen     = "("
	_vecClose    = ")"
	_vecSep      = "; "
	_termPlus    = " + "
	_termProduct = " * "
)

// String renders the solution with the configured parameter symbol:
//
//	SOL=NONE
//	SOL=(v1; v2; …; vn)
//	SOL=(base) + q1 * (dir1) + q2 * (dir2) + …
func (s *Solution) String() string {
	name := s.paramName
	if name == "" {
		name = DefaultParamName
	}

	return s.Format(name)
}

// Format renders like String but with an explicit parameter symbol.
func (s *Solution) Format(param string) string {
	var sb strings.Builder
	sb.WriteString(_solPrefix)

	switch s.Kind {
	case NoSolution:
		sb.WriteString(_solNone)
	case Unique:
		writeVector(&sb, s.Values)
	default:
		writeVector(&sb, s.Base)
		for k, dir := range s.Directions {
			sb.WriteString(_termPlus)
			sb.WriteString(param)
			sb.WriteString(strconv.Itoa(k + 1))
			sb.WriteString(_termProduct)
			writeVector(&sb, dir)
		}
	}

	return sb.String()
}

// Params returns the number of free parameters (0 unless Parametric).
func (s *Solution) Params() int { return len(s.Directions) }

// writeVector appends "(v1; v2; …)".
func writeVector(sb *strings.Builder, v []rational.Rational) {
	sb.WriteString(_vecOpen)
	for i, e := range v {
		if i > 0 {
			sb.WriteString(_vecSep)
		}
		sb.WriteString(e.String())
	}
	sb.WriteString(_vecClose)
}
