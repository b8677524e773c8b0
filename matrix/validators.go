// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural guards shared by the factorization kernels.
//   - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Square).
//   - Numeric content checks (symmetry, definiteness, NaN scans) live in package check.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil. Returns ErrNonSquare otherwise. Complexity: O(1).
func ValidateSquare(m Reader) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Reader) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}
