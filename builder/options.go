// SPDX-License-Identifier: MIT
// Package: ratsolve/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • No hidden globals; everything flows through builderConfig.

package builder

import "github.com/katalvlaran/ratsolve/matrix"

// BuilderOption customizes parsing by mutating a builderConfig before the
// input is read.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithLenientWhitespace splits lines on any run of whitespace and skips
// blank lines, instead of the strict single-space contract.
func WithLenientWhitespace() BuilderOption {
	return func(c *builderConfig) {
		c.lenient = true
	}
}

// WithMatrixOptions forwards options to matrix.New for every built matrix.
// Repeated use appends.
func WithMatrixOptions(opts ...matrix.Option) BuilderOption {
	return func(c *builderConfig) {
		c.matrixOpts = append(c.matrixOpts, opts...)
	}
}
