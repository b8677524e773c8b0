// SPDX-License-Identifier: MIT
// Package check_test contains unit tests for the composite predicates.
package check_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvcheck/check"
	"github.com/stretchr/testify/require"
)

// TestCovMatrix_FirstFailureWins walks the fixed sequence
// Square → Positive → Symmetric → PosDefinite and asserts each input fails
// at exactly the expected step.
func TestCovMatrix_FirstFailureWins(t *testing.T) {
	t.Parallel()
	v := check.New()

	tests := []struct {
		name string
		rows [][]float64
		want error // nil means success
	}{
		{"non-square and asymmetric", [][]float64{{1, 2, 3}, {4, 5, 6}}, check.ErrSizeMismatch},
		{"empty", nil, check.ErrNotPositive},
		{"asymmetric and indefinite", [][]float64{{1, 5}, {-5, 1}}, check.ErrAsymmetric},
		{"symmetric indefinite", [][]float64{{1, 2}, {2, 1}}, check.ErrNotPosDefinite},
		{"spd", [][]float64{{4, 2}, {2, 3}}, nil},
		{"1x1 positive", [][]float64{{5}}, nil},
		{"1x1 zero", [][]float64{{0}}, check.ErrNotPosDefinite},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := v.CovMatrix(fn, MustRows(t, tc.rows), "Sigma")
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			RequireDomainError(t, err, tc.want)
		})
	}
}

// TestCovMatrix_PropagatesUnchanged asserts composites return the primitive's
// failure verbatim, naming the offending entry rather than the composite.
func TestCovMatrix_PropagatesUnchanged(t *testing.T) {
	t.Parallel()
	v := check.New()
	m := MustRows(t, [][]float64{{1, 2}, {3, 1}})

	direct := v.Symmetric(fn, m, "Sigma")
	composite := v.CovMatrix(fn, m, "Sigma")
	require.Equal(t, direct.Error(), composite.Error())
	require.Equal(t, "test_fn: Sigma is not symmetric. Sigma[0,1] is 2, but Sigma[1,0] element is 3", composite.Error())
}

func TestCovMatrixSymmetric_SkipsPosDefinite(t *testing.T) {
	t.Parallel()
	v := check.New()

	// Symmetric but indefinite: passes the shape-only overload, fails the full one.
	m := MustRows(t, [][]float64{{1, 2}, {2, 1}})
	require.NoError(t, v.CovMatrixSymmetric(fn, m))
	RequireDomainError(t, v.CovMatrix(fn, m, "Sigma"), check.ErrNotPosDefinite)

	de := RequireDomainError(t, v.CovMatrixSymmetric(fn, MustRows(t, [][]float64{{1, 0}, {1, 1}})), check.ErrAsymmetric)
	require.Equal(t, "Sigma", de.Subject)

	de = RequireDomainError(t, v.CovMatrixSymmetric(fn, MustRows(t, nil)), check.ErrNotPositive)
	require.Equal(t, "Sigma", de.Subject)
}

// TestComposites_EmptyNamesSubject asserts the order step reports the
// caller's subject while keeping the "rows" wording.
func TestComposites_EmptyNamesSubject(t *testing.T) {
	t.Parallel()
	v := check.New()

	de := RequireDomainError(t, v.CovMatrix(fn, MustRows(t, nil), "Sigma"), check.ErrNotPositive)
	require.Equal(t, "Sigma", de.Subject)
	require.Equal(t, "rows is 0, but must be > 0!", de.Message)

	de = RequireDomainError(t, v.CorrMatrix(fn, MustRows(t, nil), "Omega"), check.ErrNotPositive)
	require.Equal(t, "Omega", de.Subject)
}

func TestCorrMatrix(t *testing.T) {
	t.Parallel()
	v := check.New()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"non-square", [][]float64{{1, 0}}, check.ErrSizeMismatch},
		{"empty", nil, check.ErrNotPositive},
		{"asymmetric", [][]float64{{1, 0.5}, {0.4, 1}}, check.ErrAsymmetric},
		{"diagonal off", [][]float64{{2, 0}, {0, 1}}, check.ErrNotUnitDiagonal},
		{"diagonal nan", [][]float64{{1, 0}, {0, math.NaN()}}, check.ErrNotUnitDiagonal},
		{"unit diagonal indefinite", [][]float64{{1, 2}, {2, 1}}, check.ErrNotPosDefinite},
		{"unit diagonal singular", [][]float64{{1, 1}, {1, 1}}, check.ErrNotPosDefinite},
		{"valid 2x2", [][]float64{{1, 0.3}, {0.3, 1}}, nil},
		{"near one", [][]float64{{1 + 5e-9, 0}, {0, 1 - 5e-9}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := v.CorrMatrix(fn, MustRows(t, tc.rows), "Omega")
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			RequireDomainError(t, err, tc.want)
		})
	}
}

// TestCorrMatrix_ToleranceBoundary pins |M[k,k] − 1| == tol as a unit diagonal.
func TestCorrMatrix_ToleranceBoundary(t *testing.T) {
	t.Parallel()
	v := check.New(check.WithTolerance(0.25))

	require.NoError(t, v.CorrMatrix(fn, MustRows(t, [][]float64{{1.25, 0}, {0, 0.75}}), "Omega"))
	de := RequireDomainError(t, v.CorrMatrix(fn, MustRows(t, [][]float64{{1, 0}, {0, 1.2500001}}), "Omega"), check.ErrNotUnitDiagonal)
	require.Equal(t, []int{1, 1}, de.Index)
}

func TestCorrMatrix_DiagonalMessage(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 0.5}})
	de := RequireDomainError(t, check.New().CorrMatrix(fn, m, "Omega"), check.ErrNotUnitDiagonal)
	require.Equal(t, "Omega is not a valid correlation matrix. Omega(2,2) is 0.5, but should be near 1.0", de.Message)
	require.Equal(t, []int{2, 2}, de.Index)
}

func TestCorrMatrix_Identity(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("I%d", n), func(t *testing.T) {
			t.Parallel()
			require.NoError(t, check.CorrMatrix(fn, MustIdentity(t, n), "I"))
			require.NoError(t, check.CovMatrix(fn, MustIdentity(t, n), "I"))
		})
	}
}

func TestFacadesUseDefaults(t *testing.T) {
	t.Parallel()
	require.Equal(t, check.DefaultConstraintTolerance, check.Default().Tolerance())

	m := MustRows(t, [][]float64{{1, 2}, {3, 1}})
	RequireDomainError(t, check.Symmetric(fn, m, "y"), check.ErrAsymmetric)
	RequireDomainError(t, check.PosDefinite(fn, MustRows(t, [][]float64{{0}}), "y"), check.ErrNotPosDefinite)
	RequireDomainError(t, check.CovMatrixSymmetric(fn, m), check.ErrAsymmetric)
	RequireDomainError(t, check.SizeMatch(fn, "a", 1, "b", 2), check.ErrSizeMismatch)
	RequireDomainError(t, check.NotNaN(fn, []float64{math.NaN()}, "y"), check.ErrNaN)
	RequireDomainError(t, check.NotNaNMatrix(fn, MustRows(t, [][]float64{{math.NaN()}}), "y"), check.ErrNaN)
	RequireDomainError(t, check.Finite(fn, []float64{math.Inf(1)}, "y"), check.ErrNonFinite)
	RequireDomainError(t, check.FiniteMatrix(fn, MustRows(t, [][]float64{{math.Inf(1)}}), "y"), check.ErrNonFinite)
}
