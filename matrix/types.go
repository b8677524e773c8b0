// SPDX-License-Identifier: MIT

// Package matrix: container interfaces.
// Validators and factorization kernels depend only on Reader; Matrix adds
// the mutation surface used by constructors, loaders and tests.
package matrix

// Reader is the read-only view of a two-dimensional float64 container.
//
// Complexity notes: all methods are expected O(1).
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Reader

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
