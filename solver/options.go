// SPDX-License-Identifier: MIT

package solver

import (
	"runtime"

	"github.com/katalvlaran/ratsolve/builder"
)

// DefaultConcurrency is the SolveAll worker limit when none is given.
var DefaultConcurrency = runtime.GOMAXPROCS(0)

const panicConcurrencyInvalid = "solver: WithConcurrency: n must be >= 1"

// Option configures Solve and SolveAll.
type Option func(*config)

type config struct {
	concurrency int
	builderOpts []builder.BuilderOption
}

// WithConcurrency bounds the number of systems SolveAll works on at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(c *config) { c.concurrency = n }
}

// WithBuilderOptions forwards parsing options (and, through
// builder.WithMatrixOptions, matrix options). Repeated use appends.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(c *config) { c.builderOpts = append(c.builderOpts, opts...) }
}

func newConfig(opts ...Option) config {
	c := config{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.concurrency < 1 {
		c.concurrency = 1
	}

	return c
}
