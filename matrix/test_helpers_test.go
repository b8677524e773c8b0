// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for Dense and LDLT tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcheck/matrix"
)

// hide wraps any Reader to hide its concrete type from type assertions,
// forcing the generic At() fallback in code under test.
type hide struct{ matrix.Reader }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from row literals or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Reader, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m[i,j]=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RandSPD RETURNS a deterministic symmetric positive-definite n×n matrix.
// Implementation:
//   - Stage 1: fill B with U(-1,1) by seed.
//   - Stage 2: A = B·Bᵀ + n·I (diagonal shift keeps eigenvalues ≥ n).
//
// Determinism:
//   - Deterministic per seed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func RandSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := make([]float64, n*n)
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}
	a := MustDense(t, n, n)
	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += b[i*n+k] * b[j*n+k]
			}
			if i == j {
				sum += float64(n)
			}
			MustSet(t, a, i, j, sum)
		}
	}

	return a
}
