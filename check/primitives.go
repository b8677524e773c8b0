// SPDX-License-Identifier: MIT
// Package check: primitive predicates.
//
// Purpose:
//   - Each primitive tests exactly one property and reports the FIRST violation
//     in a fixed scan order, so diagnostics are reproducible.
//
// Determinism & Performance:
//   - Pure reads through matrix.Reader; no allocation on the success path except
//     the LDLT work buffers in PosDefinite.
//   - NaN never satisfies a tolerance comparison: every test is written as
//     "!(x within bound)" so a NaN difference or factor fails.
//
// Note:
//   - nil inputs and failing Readers are programmer errors: they are returned
//     tagged (matrix.ErrNilMatrix, matrix.ErrOutOfRange) and never reach the Reporter.

package check

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcheck/matrix"
)

// Operation tags for programmer-error wrapping.
const (
	opSquare       = "Square"
	opSymmetric    = "Symmetric"
	opPosDefinite  = "PosDefinite"
	opNotNaNMatrix = "NotNaNMatrix"
	opFiniteMatrix = "FiniteMatrix"
	opUnitDiagonal = "UnitDiagonal"
)

// Message templates. The offending value is always rendered with %g.
const (
	msgSizeMismatch   = "%s and %s must be same. Found %s=%d, %s=%d"
	msgNotPositive    = "%s is %d, but must be > 0!"
	msgAsymmetric     = "%s is not symmetric. %s[%d,%d] is %g, but %s[%d,%d] element is %g"
	msgNotPosDefOne   = "%s is not positive definite. %s(0,0) is %g."
	msgNotPosDefLDLT  = "%s is not positive definite. LDLT factor D[%d] (row %d) is %g."
	msgNotUnitDiag    = "%s is not a valid correlation matrix. %s(%d,%d) is %g, but should be near 1.0"
	msgNaNVector      = "%s[%d] is %g, but must not be nan!"
	msgNaNMatrix      = "%s[%d,%d] is %g, but must not be nan!"
	msgNonFiniteVec   = "%s[%d] is %g, but must be finite!"
	msgNonFiniteMat   = "%s[%d,%d] is %g, but must be finite!"
	labelRows         = "rows"
	labelCols         = "cols"
	labelLengthPrefix = "len "
)

// unitDiagonal is the value every correlation-matrix diagonal entry must approximate.
const unitDiagonal = 1.0

// SizeMatch succeeds iff i == j.
// Used for squareness (rows vs cols) and for matching vector lengths.
//
// Errors:
//   - *DomainError{Kind: ErrSizeMismatch, Subject: nameI, Value: i}.
//
// Complexity: O(1).
func (v *Validator) SizeMatch(function, nameI string, i int, nameJ string, j int) error {
	return v.sizeMatch(function, nameI, nameI, i, nameJ, j)
}

func (v *Validator) sizeMatch(function, subject, nameI string, i int, nameJ string, j int) error {
	if i == j {
		return nil
	}
	msg := fmt.Sprintf(msgSizeMismatch, nameI, nameJ, nameI, i, nameJ, j)

	return v.fail(ErrSizeMismatch, function, subject, msg, float64(i))
}

// Square succeeds iff m.Rows() == m.Cols(). The failure names the subject.
// Complexity: O(1).
func (v *Validator) Square(function string, m matrix.Reader, name string) error {
	if m == nil {
		return checkErrorf(opSquare, matrix.ErrNilMatrix)
	}

	return v.sizeMatch(function, name, labelRows, m.Rows(), labelCols, m.Cols())
}

// SameLength succeeds iff len(a) == len(b).
// Complexity: O(1).
func (v *Validator) SameLength(function, nameA string, a []float64, nameB string, b []float64) error {
	return v.sizeMatch(function, nameA, labelLengthPrefix+nameA, len(a), labelLengthPrefix+nameB, len(b))
}

// Positive succeeds iff n > 0. Composites use it to reject 0×0 matrices.
// Complexity: O(1).
func (v *Validator) Positive(function, name string, n int) error {
	return v.positive(function, name, name, n)
}

// positive is Positive with the failure attributed to subject rather than
// the label in the message.
func (v *Validator) positive(function, subject, name string, n int) error {
	if n > 0 {
		return nil
	}

	return v.fail(ErrNotPositive, function, subject, fmt.Sprintf(msgNotPositive, name, n), float64(n))
}

// Symmetric checks |M[m,n] − M[n,m]| ≤ tol for every m < n.
// Implementation:
//   - Stage 1: k = min(rows, cols); k ≤ 1 is trivially symmetric.
//   - Stage 2: scan m = 0..k-1 (outer), n = m+1..k-1 (inner); fail on the first violation.
//
// Behavior highlights:
//   - Squareness is NOT checked: only pairs present in both triangles are compared.
//     Callers that need a square matrix run Square first (the composites do).
//
// Errors:
//   - *DomainError{Kind: ErrAsymmetric, Value: M[m,n], Index: [m, n]}.
//   - matrix.ErrNilMatrix for nil m.
//
// Complexity:
//   - Time O(k^2), Space O(1).
func (v *Validator) Symmetric(function string, m matrix.Reader, name string) error {
	if m == nil {
		return checkErrorf(opSymmetric, matrix.ErrNilMatrix)
	}
	k := min(m.Rows(), m.Cols())
	if k <= 1 {
		return nil
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			if aij, err = m.At(i, j); err != nil {
				return checkErrorf(opSymmetric, err)
			}
			if aji, err = m.At(j, i); err != nil {
				return checkErrorf(opSymmetric, err)
			}
			if !(math.Abs(aij-aji) <= v.tol) {
				msg := fmt.Sprintf(msgAsymmetric, name, name, i, j, aij, name, j, i, aji)
				return v.fail(ErrAsymmetric, function, name, msg, aij, i, j)
			}
		}
	}

	return nil
}

// PosDefinite checks positive definiteness within tolerance.
// Implementation:
//   - Stage 1: Square(m); an empty matrix has no failing factor and passes.
//   - Stage 2: order 1: pass iff M[0,0] > tol.
//   - Stage 3: order > 1: factor Pᵀ·M·P = L·D·Lᵀ; pass iff every D[k] > tol.
//     The first failing factor (elimination order) is reported with the row of M it pivoted on.
//
// Behavior highlights:
//   - Symmetry is NOT checked; run Symmetric first (the composites do).
//
// Errors:
//   - *DomainError{Kind: ErrSizeMismatch} for non-square input.
//   - *DomainError{Kind: ErrNotPosDefinite, Value: M[0,0] or D[k], Index: [r, r]}.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (v *Validator) PosDefinite(function string, m matrix.Reader, name string) error {
	if m == nil {
		return checkErrorf(opPosDefinite, matrix.ErrNilMatrix)
	}
	if err := v.Square(function, m, name); err != nil {
		return err
	}

	switch n := m.Rows(); n {
	case 0:
		return nil
	case 1:
		a00, err := m.At(0, 0)
		if err != nil {
			return checkErrorf(opPosDefinite, err)
		}
		if !(a00 > v.tol) {
			return v.fail(ErrNotPosDefinite, function, name, fmt.Sprintf(msgNotPosDefOne, name, name, a00), a00, 0, 0)
		}

		return nil
	}

	f, err := matrix.FactorLDLT(m)
	if err != nil {
		return checkErrorf(opPosDefinite, err)
	}
	perm := f.Perm()
	for k, d := range f.D() {
		if !(d > v.tol) {
			msg := fmt.Sprintf(msgNotPosDefLDLT, name, k, perm[k], d)
			return v.fail(ErrNotPosDefinite, function, name, msg, d, perm[k], perm[k])
		}
	}

	return nil
}

// unitDiagonalCheck requires |M[k,k] − 1| ≤ tol for k ascending over the
// square part of m; the first violation is reported.
// Complexity: O(min(r, c)).
func (v *Validator) unitDiagonalCheck(function string, m matrix.Reader, name string) error {
	n := min(m.Rows(), m.Cols())
	var (
		akk float64
		err error
	)
	for k := 0; k < n; k++ {
		if akk, err = m.At(k, k); err != nil {
			return checkErrorf(opUnitDiagonal, err)
		}
		if !(math.Abs(akk-unitDiagonal) <= v.tol) {
			msg := fmt.Sprintf(msgNotUnitDiag, name, name, k, k, akk)
			return v.fail(ErrNotUnitDiagonal, function, name, msg, akk, k, k)
		}
	}

	return nil
}

// NotNaN scans y in index order and fails on the first NaN.
// Complexity: O(len(y)).
func (v *Validator) NotNaN(function string, y []float64, name string) error {
	for i, yi := range y {
		if math.IsNaN(yi) {
			return v.fail(ErrNaN, function, name, fmt.Sprintf(msgNaNVector, name, i, yi), yi, i)
		}
	}

	return nil
}

// NotNaNMatrix scans m in row-major order (rows outer, columns inner) and
// fails on the first NaN, reporting [row, col].
// Complexity: O(r*c).
func (v *Validator) NotNaNMatrix(function string, m matrix.Reader, name string) error {
	return v.scanMatrix(opNotNaNMatrix, function, m, name, math.IsNaN, ErrNaN, msgNaNMatrix)
}

// Finite scans y in index order and fails on the first NaN or ±Inf.
// Complexity: O(len(y)).
func (v *Validator) Finite(function string, y []float64, name string) error {
	for i, yi := range y {
		if isNonFinite(yi) {
			return v.fail(ErrNonFinite, function, name, fmt.Sprintf(msgNonFiniteVec, name, i, yi), yi, i)
		}
	}

	return nil
}

// FiniteMatrix scans m in row-major order and fails on the first NaN or ±Inf.
// Complexity: O(r*c).
func (v *Validator) FiniteMatrix(function string, m matrix.Reader, name string) error {
	return v.scanMatrix(opFiniteMatrix, function, m, name, isNonFinite, ErrNonFinite, msgNonFiniteMat)
}

// scanMatrix is the shared row-major scan behind NotNaNMatrix and FiniteMatrix.
func (v *Validator) scanMatrix(op, function string, m matrix.Reader, name string, bad func(float64) bool, kind error, format string) error {
	if m == nil {
		return checkErrorf(op, matrix.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if x, err = m.At(i, j); err != nil {
				return checkErrorf(op, err)
			}
			if bad(x) {
				return v.fail(kind, function, name, fmt.Sprintf(format, name, i, j, x), x, i, j)
			}
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
