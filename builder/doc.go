// Package builder turns textual linear systems into matrix.Matrix values.
//
// Input contract:
//
//	one equation per line; coefficients separated by single spaces; each
//	token is "int" or "int/int"; the last token of a line is the constant
//	term. Every line must carry the same number of tokens.
//
//	"1 0 1\n0 1 2"   ⇒   x = 1, y = 2
//
// Malformed input (bad token, zero denominator, unequal line lengths, empty
// input) is reported as ErrMalformedInput before any elimination begins.
//
// WithLenientWhitespace relaxes the separator rule to any whitespace run and
// skips blank lines.
package builder
