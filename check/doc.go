// SPDX-License-Identifier: MIT

// Package check validates structural properties of matrices and vectors
// before an algorithm consumes them.
//
// What & Why:
//
//	Numeric routines (Cholesky-style samplers, correlation transforms,
//	densities over covariance matrices) silently produce garbage when their
//	input is not square, not symmetric, not positive definite, or carries a
//	NaN. The Validator turns each of those preconditions into a predicate
//	with a precise, reproducible failure report: which entry, which value,
//	which property.
//
// Primitives:
//
//	SizeMatch, Positive, Square, SameLength   shape and dimension checks
//	Symmetric                                 |M[m,n] − M[n,m]| ≤ tol for m < n
//	PosDefinite                               LDLᵀ diagonal factors all > tol
//	NotNaN, NotNaNMatrix, Finite, FiniteMatrix entry scans
//
// Composites run primitives in a fixed order and stop at the first failure,
// returning that failure unchanged:
//
//	CovMatrix           Square → Positive(rows) → Symmetric → PosDefinite
//	CovMatrixSymmetric  Square → Positive(rows) → Symmetric
//	CorrMatrix          Square → Positive(rows) → Symmetric → unit diagonal → PosDefinite
//
// Failures are *DomainError values passed through the configured Reporter
// (Raise by default). A Validator is immutable and safe for concurrent use;
// it never mutates or retains the matrices it inspects.
//
// Complexity:
//
//	Scans are O(r*c); PosDefinite is O(n³) for the factorization.
package check
