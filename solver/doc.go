// Package solver is the one-call facade over builder and matrix.
//
// Solve parses a textual system and returns its "SOL=..." rendering.
// SolveAll solves many independent systems concurrently; each system gets
// its own Matrix, so workers share no mutable state.
//
//	out, err := solver.Solve("1 1 1")
//	// out == "SOL=(1; 0) + q1 * (-1; 1)"
package solver
