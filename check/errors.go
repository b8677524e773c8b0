// SPDX-License-Identifier: MIT
// Package check: failure kinds and the DomainError carrier.
// Every failed predicate produces exactly one *DomainError whose Kind is one
// of the sentinels below, so callers match with errors.Is and read details
// with errors.As.

package check

import (
	"errors"
	"fmt"
	"math"
)

// ERROR TAXONOMY:
// shape mismatch (ErrSizeMismatch, ErrNotPositive) -> structural violation
// (ErrAsymmetric, ErrNotUnitDiagonal, ErrNotPosDefinite) -> numeric
// invalidity (ErrNaN, ErrNonFinite).

var (
	// ErrSizeMismatch reports two dimensions that were required to be equal.
	ErrSizeMismatch = errors.New("check: size mismatch")

	// ErrNotPositive reports a dimension (or scalar) that must be > 0.
	ErrNotPositive = errors.New("check: value not positive")

	// ErrAsymmetric reports an off-diagonal pair differing by more than the tolerance.
	ErrAsymmetric = errors.New("check: matrix is not symmetric")

	// ErrNotPosDefinite reports a matrix whose LDLT diagonal factor is ≤ tolerance.
	ErrNotPosDefinite = errors.New("check: matrix is not positive definite")

	// ErrNotUnitDiagonal reports a correlation-matrix diagonal entry away from 1.0.
	ErrNotUnitDiagonal = errors.New("check: diagonal entry not near 1.0")

	// ErrNaN reports a NaN entry.
	ErrNaN = errors.New("check: NaN entry")

	// ErrNonFinite reports a NaN or ±Inf entry where finiteness is required.
	ErrNonFinite = errors.New("check: non-finite entry")
)

// DomainError describes one violated precondition.
//
// Message is the full human-readable diagnostic (subject, position, value).
// Index holds the offending position: [i] for vectors, [row, col] for
// matrices, [m, n] for the upper-triangle entry of an asymmetric pair, nil
// for scalar checks. Sentinel is the value the reporting policy chose to
// hand back in place of a result (NaN unless a Sentinel reporter set it).
type DomainError struct {
	Function string
	Subject  string
	Message  string
	Value    float64
	Index    []int
	Sentinel float64
	Kind     error
}

// Error renders "<function>: <message>".
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Function, e.Message)
}

// Unwrap exposes Kind to errors.Is.
func (e *DomainError) Unwrap() error { return e.Kind }

// SentinelOf extracts the sentinel value carried by a failure.
// It reports false when err is nil or does not wrap a *DomainError.
func SentinelOf(err error) (float64, bool) {
	var de *DomainError
	if !errors.As(err, &de) {
		return math.NaN(), false
	}

	return de.Sentinel, true
}

// checkErrorf tags programmer errors (nil inputs, broken Readers) that are not
// domain failures and therefore bypass the Reporter.
func checkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
