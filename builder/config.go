// SPDX-License-Identifier: MIT
// Package: ratsolve/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • lenient    = false (single-space separators, no blank lines)
//   • matrixOpts = none  (matrix package defaults)

package builder

import "github.com/katalvlaran/ratsolve/matrix"

// builderConfig aggregates all parsing knobs.
// It is passed by VALUE to the parsing helpers.
type builderConfig struct {
	lenient    bool
	matrixOpts []matrix.Option
}

// newBuilderConfig applies options in order (later overrides earlier).
// Nil options are ignored.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
