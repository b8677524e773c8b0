// SPDX-License-Identifier: MIT
// Package check - public facades over a default Validator.
//
// Purpose:
//   - One-call access for code that is happy with DefaultConstraintTolerance
//     and the Raise policy.
//   - The default Validator is built once and never mutated; build your own
//     with New(...) for a different tolerance or reporter.

package check

import "github.com/katalvlaran/lvcheck/matrix"

var std = New()

// Default returns the shared Validator used by the package-level facades.
func Default() *Validator { return std }

// SizeMatch delegates to the default Validator.
func SizeMatch(function, nameI string, i int, nameJ string, j int) error {
	return std.SizeMatch(function, nameI, i, nameJ, j)
}

// Symmetric delegates to the default Validator.
func Symmetric(function string, m matrix.Reader, name string) error {
	return std.Symmetric(function, m, name)
}

// PosDefinite delegates to the default Validator.
func PosDefinite(function string, m matrix.Reader, name string) error {
	return std.PosDefinite(function, m, name)
}

// CovMatrix delegates to the default Validator.
func CovMatrix(function string, m matrix.Reader, name string) error {
	return std.CovMatrix(function, m, name)
}

// CovMatrixSymmetric delegates to the default Validator.
func CovMatrixSymmetric(function string, m matrix.Reader) error {
	return std.CovMatrixSymmetric(function, m)
}

// CorrMatrix delegates to the default Validator.
func CorrMatrix(function string, m matrix.Reader, name string) error {
	return std.CorrMatrix(function, m, name)
}

// NotNaN delegates to the default Validator.
func NotNaN(function string, y []float64, name string) error {
	return std.NotNaN(function, y, name)
}

// NotNaNMatrix delegates to the default Validator.
func NotNaNMatrix(function string, m matrix.Reader, name string) error {
	return std.NotNaNMatrix(function, m, name)
}

// Finite delegates to the default Validator.
func Finite(function string, y []float64, name string) error {
	return std.Finite(function, y, name)
}

// FiniteMatrix delegates to the default Validator.
func FiniteMatrix(function string, m matrix.Reader, name string) error {
	return std.FiniteMatrix(function, m, name)
}
