// SPDX-License-Identifier: MIT
// Package matrix: sample statistics over observation matrices.
//
// Purpose:
//   - Turn an r×c matrix of observations (rows) over variables (columns) into
//     the c×c sample covariance or Pearson correlation matrix, ready for the
//     covariance/correlation predicates.
//
// Determinism & Performance:
//   - Fixed i→j→k accumulation; symmetric fill from the upper triangle, so the
//     result is exactly symmetric.
//   - Dense fast path reads the flat buffer; other Readers go through At.

package matrix

import "math"

const (
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// minObservations is the smallest row count with a defined sample (r-1) estimate.
const minObservations = 2

// Covariance computes the sample covariance of the columns of X: (Xcᵀ·Xc)/(r-1),
// where Xc is X with column means removed.
// Implementation:
//   - Stage 1: validate X; c == 0 yields a 0×0 result, otherwise r ≥ 2 is required.
//   - Stage 2: copy and center the columns.
//   - Stage 3: accumulate the upper triangle, mirror it, scale by 1/(r-1).
//
// Returns the covariance matrix and the column means.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2; wrapped At errors.
//
// Complexity: Time O(r*c^2), Space O(r*c + c^2).
func Covariance(X Reader) (*Dense, []float64, error) {
	xc, means, err := centeredColumns(X, opCovariance)
	if err != nil || xc == nil {
		return emptyStat(means, err)
	}

	return gram(xc, X.Rows(), X.Cols()), means, nil
}

// Correlation computes the Pearson correlation of the columns of X via
// z-scoring: Z = Xc·diag(1/std), Corr = (Zᵀ·Z)/(r-1).
// A column with zero spread is zeroed, so its row and column of the result,
// diagonal included, are 0; correlation predicates reject such a matrix.
//
// Returns the correlation matrix, column means and sample standard deviations.
//
// Errors: as Covariance.
//
// Complexity: Time O(r*c^2), Space O(r*c + c^2).
func Correlation(X Reader) (*Dense, []float64, []float64, error) {
	xc, means, err := centeredColumns(X, opCorrelation)
	if err != nil || xc == nil {
		d, m, err := emptyStat(means, err)
		if err != nil {
			return nil, nil, nil, err
		}
		return d, m, make([]float64, 0), nil
	}

	r, c := X.Rows(), X.Cols()
	stds := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			stds[j] += xc[i*c+j] * xc[i*c+j]
		}
	}
	inv := 1.0 / float64(r-1)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * inv)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if stds[j] > 0 {
				xc[i*c+j] /= stds[j]
			} else {
				xc[i*c+j] = 0
			}
		}
	}

	return gram(xc, r, c), means, stds, nil
}

// centeredColumns returns a flat row-major copy of X with column means removed.
// A nil buffer with nil error means X has no columns.
func centeredColumns(X Reader, op string) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, make([]float64, 0), nil
	}
	if r < minObservations {
		return nil, nil, matrixErrorf(op, ErrDimensionMismatch)
	}

	buf := make([]float64, r*c)
	if d, ok := X.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if buf[i*c+j], err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(op, err)
				}
			}
		}
	}

	means := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += buf[i*c+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] -= means[j]
		}
	}

	return buf, means, nil
}

// gram returns (Bᵀ·B)/(r-1) for the flat r×c buffer b.
func gram(b []float64, r, c int) *Dense {
	out := &Dense{r: c, c: c, data: make([]float64, c*c)}
	inv := 1.0 / float64(r-1)
	var i, j, k int
	var sum float64
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			sum = 0
			for i = 0; i < r; i++ {
				sum += b[i*c+j] * b[i*c+k]
			}
			out.data[j*c+k] = sum * inv
			out.data[k*c+j] = sum * inv
		}
	}

	return out
}

// emptyStat finishes the no-columns and error branches shared by both statistics.
func emptyStat(means []float64, err error) (*Dense, []float64, error) {
	if err != nil {
		return nil, nil, err
	}

	return &Dense{data: make([]float64, 0)}, means, nil
}
