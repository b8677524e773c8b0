// SPDX-License-Identifier: MIT

package check

import "github.com/katalvlaran/lvcheck/matrix"

// covSubjectDefault names the subject of CovMatrixSymmetric, which takes no name.
const covSubjectDefault = "Sigma"

// CovMatrix validates a covariance matrix.
// Sequence (short-circuit on first failure, returned unchanged):
//   - Square → Positive(rows) → Symmetric → PosDefinite.
//
// Complexity: O(n^3) dominated by PosDefinite.
func (v *Validator) CovMatrix(function string, m matrix.Reader, name string) error {
	if err := v.covShape(function, m, name); err != nil {
		return err
	}

	return v.PosDefinite(function, m, name)
}

// CovMatrixSymmetric validates the shape of a covariance matrix without the
// positive-definiteness step, for call sites (Cholesky-style consumers) that
// establish definiteness themselves.
// Sequence: Square → Positive(rows) → Symmetric. The subject is named "Sigma".
//
// Complexity: O(n^2).
func (v *Validator) CovMatrixSymmetric(function string, m matrix.Reader) error {
	return v.covShape(function, m, covSubjectDefault)
}

// CorrMatrix validates a correlation matrix.
// Sequence: Square → Positive(rows) → Symmetric → unit diagonal → PosDefinite.
//
// Complexity: O(n^3) dominated by PosDefinite.
func (v *Validator) CorrMatrix(function string, m matrix.Reader, name string) error {
	if err := v.covShape(function, m, name); err != nil {
		return err
	}
	if err := v.unitDiagonalCheck(function, m, name); err != nil {
		return err
	}

	return v.PosDefinite(function, m, name)
}

// covShape is the common prefix of every covariance/correlation composite.
func (v *Validator) covShape(function string, m matrix.Reader, name string) error {
	if err := v.Square(function, m, name); err != nil {
		return err
	}
	if err := v.positive(function, name, labelRows, m.Rows()); err != nil {
		return err
	}

	return v.Symmetric(function, m, name)
}
