// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: options never change the pivot policy or the
//     numeric result, only diagnostics and rendering.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"strings"
	"unicode"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTrace disables debug logging of intermediate echelon forms.
	DefaultTrace = false

	// DefaultParamName is the free-parameter symbol in rendered solutions
	// ("q1", "q2", ...).
	DefaultParamName = "q"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicParamNameEmpty   = "matrix: WithParamName: name must be non-empty"
	panicParamNameInvalid = "matrix: WithParamName: name must not contain spaces, ';' or parentheses"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	trace     bool   // DefaultTrace
	paramName string // DefaultParamName
}

// WithTrace toggles Debug logging (logger "matrix") of the matrix after the
// forward and the backward elimination passes.
//
// Complexity:
//   - Time O(1); when on, each pass additionally renders the grid, O(nrow*ncol).
func WithTrace(on bool) Option {
	return func(o *Options) { o.trace = on }
}

// WithParamName sets the free-parameter symbol used by Solution.String.
// Panics on an empty name or one that would break the output grammar.
func WithParamName(name string) Option {
	if name == "" {
		panic(panicParamNameEmpty)
	}
	if strings.ContainsAny(name, ";()") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		panic(panicParamNameInvalid)
	}

	return func(o *Options) { o.paramName = name }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		trace:     DefaultTrace,
		paramName: DefaultParamName,
	}
}

// gatherOptions applies opts in order (later overrides earlier) on top of
// the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
