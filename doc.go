// Package ratsolve solves systems of linear equations with exact rational
// coefficients and classifies the solution set: no solution, a unique
// solution, or a parametric family (base vector plus one direction vector
// per free unknown).
//
// What is inside:
//
//	rational/  — Rational: immutable, always-reduced fractions on math/big
//	matrix/    — augmented Matrix, Gauss-Jordan elimination, rank, Solve
//	builder/   — text ("1/2 1/3 1" per line) → *matrix.Matrix
//	solver/    — one-call Solve and the concurrent batch SolveAll
//	cmd/ratsolve — command-line front-end
//
// Output grammar (Solution.String):
//
//	SOL=NONE
//	SOL=(1; 2)
//	SOL=(1; 0) + q1 * (-1; 1)
//
// No floating point is involved anywhere: every intermediate value is an
// exact fraction, so answers are reproducible bit for bit.
//
//	go get github.com/katalvlaran/ratsolve
package ratsolve
