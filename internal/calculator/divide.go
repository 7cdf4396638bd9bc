// Package calculator holds the arithmetic used by the examples.
package calculator

// Divide returns a / b using plain IEEE-754 double division.
// It never fails: a zero divisor yields ±Inf, or NaN when a is also zero,
// and the sign of a zero quotient follows the operands' signs.
func Divide(a, b float64) float64 {
	return a / b
}
