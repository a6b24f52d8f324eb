// Package matrix is the elimination engine of ratsolve.
//
// The matrix package provides:
//
//   - Matrix: an augmented nrow×ncol grid of rational.Rational whose last
//     column holds the right-hand side of each equation.
//   - ToEchelonForm / ToReducedEchelonForm: in-place Gauss-Jordan elimination
//     with a fixed pivot policy (first non-zero row, left to right).
//   - Rank, PivotColumns, NonPivotColumns: derived quantities read off the
//     reduced form.
//   - Solve: classification into NoSolution, Unique or Parametric and a
//     Solution that renders as "SOL=NONE", "SOL=(v1; …; vn)" or
//     "SOL=(base) + q1 * (dir1) + …".
//
// A Matrix is consumed by Solve: elimination rewrites its buffer. Clone
// first if the original coefficients are still needed. Distinct Matrix
// values share no mutable state and may be solved concurrently.
//
// Elimination is cubic in max(nrow, ncol); no further optimisation is done.
//
// See the examples in this package and the builder package for usage patterns.
package matrix
