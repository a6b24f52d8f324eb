// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ratsolve/builder"
	"github.com/katalvlaran/ratsolve/matrix"
)

var log = logging.Logger("solver")

// Result is the outcome for one system of a batch.
type Result struct {
	Index    int              // position in the SolveAll input
	Solution *matrix.Solution // nil when Err != nil
	Err      error
}

// String returns the "SOL=..." line, or "" on error.
func (r Result) String() string {
	if r.Err != nil || r.Solution == nil {
		return ""
	}

	return r.Solution.String()
}

// Solve parses input and returns the rendered classification.
//
// Errors:
//   - builder.ErrMalformedInput for bad input.
//   - matrix.ErrInvariant on an elimination defect.
func Solve(input string, opts ...Option) (string, error) {
	sol, err := SolveSystem(input, opts...)
	if err != nil {
		return "", err
	}

	return sol.String(), nil
}

// SolveSystem is Solve returning the structured Solution.
func SolveSystem(input string, opts ...Option) (*matrix.Solution, error) {
	cfg := newConfig(opts...)

	m, err := builder.ParseSystem(input, cfg.builderOpts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	sol, err := m.Solve()
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return sol, nil
}

// SolveAll solves every input independently with at most WithConcurrency
// systems in flight. Results are index-aligned with inputs; a failing system
// records its error in Result.Err and does not stop the others.
//
// The returned error is ctx.Err() when ctx ended before some system was
// started; those results carry the same error. Otherwise it is nil.
func SolveAll(ctx context.Context, inputs []string, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)
	results := make([]Result, len(inputs))
	// skipped[i] is written only by the goroutine (or loop step) owning i.
	skipped := make([]bool, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i := range inputs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(inputs); j++ {
				results[j] = Result{Index: j, Err: err}
				skipped[j] = true
			}
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Index: i, Err: err}
				skipped[i] = true
				return nil
			}
			sol, err := SolveSystem(inputs[i], opts...)
			if err != nil {
				log.Debugf("system %d: %v", i, err)
			}
			results[i] = Result{Index: i, Solution: sol, Err: err}

			return nil
		})
	}
	// Workers never return errors; Wait is only a barrier.
	_ = g.Wait()

	for _, s := range skipped {
		if s {
			log.Warnf("batch interrupted: %v", ctx.Err())
			return results, ctx.Err()
		}
	}

	return results, nil
}
