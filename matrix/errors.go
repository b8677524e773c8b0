// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, accessors and kernels return these sentinels (optionally
// wrapped with a context tag via %w) and tests match them with errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so failures are easy to grep
// in logs. Context is attached at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> dimension mismatch.

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (negative dimensions, ragged row slices).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// for constructors that forbid empty matrices.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
