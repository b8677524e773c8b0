// SPDX-License-Identifier: MIT
// Package matrix: symmetric indefinite factorization.
//
// Purpose:
//   - Factor a symmetric matrix as Pᵀ·A·P = L·D·Lᵀ with symmetric diagonal pivoting.
//   - Expose the diagonal factors D: their signs give the inertia of A, which is
//     what positive-definiteness checks consume.
//
// Notes:
//   - Symmetry is assumed, not verified. Both triangles of the work buffer are
//     updated so a slightly asymmetric input still factors deterministically.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opLDLT = "LDLT"
)

// ZeroPivot is the sentinel for detecting an exhausted (all-zero) trailing diagonal.
const ZeroPivot = 0.0

// unitDiag is the implicit diagonal of the unit lower-triangular factor L.
const unitDiag = 1.0

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LDLT holds the result of FactorLDLT.
//   - n    : order of the factored matrix.
//   - l    : unit lower-triangular factor, row-major n×n.
//   - d    : diagonal factors D[0..n-1] in elimination order.
//   - perm : perm[k] is the row/column of A eliminated at step k.
type LDLT struct {
	n    int
	l    []float64
	d    []float64
	perm []int
}

// Order returns the order n of the factored matrix.
func (f *LDLT) Order() int { return f.n }

// D returns a copy of the diagonal factors in elimination order.
func (f *LDLT) D() []float64 {
	out := make([]float64, len(f.d))
	copy(out, f.d)

	return out
}

// Perm returns a copy of the pivot order: step k eliminated row/column Perm()[k] of A.
func (f *LDLT) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// L returns the unit lower-triangular factor as a fresh *Dense.
// For n == 0 it returns an empty 0×0 Dense.
func (f *LDLT) L() *Dense {
	cp := make([]float64, len(f.l))
	copy(cp, f.l)

	return &Dense{r: f.n, c: f.n, data: cp}
}

// FactorLDLT computes Pᵀ·A·P = L·D·Lᵀ for a square, symmetric A.
// Implementation:
//   - Stage 1: validate m (non-nil, square); copy it into a flat n×n work buffer
//     (single copy on the *Dense fast path, At() loop otherwise).
//   - Stage 2: for k = 0..n-1 pick the remaining diagonal entry with the largest
//     magnitude (lowest index on ties), swap it into position k (rows and
//     columns of the work buffer, rows of L already built, and perm).
//   - Stage 3: record D[k] = a[k,k], form column k of L, and apply the rank-1
//     Schur update to the trailing block.
//
// Behavior highlights:
//   - If the largest remaining |diagonal| is exactly zero, elimination stops and
//     the remaining D entries keep their (zero) residual values; L keeps unit
//     columns there. Positive-definiteness checks then fail on those zeros.
//   - NaN entries propagate into D; they are never silently dropped.
//
// Inputs:
//   - m: square Reader (n×n, n ≥ 0). A 0×0 input yields an empty factorization.
//
// Returns:
//   - *LDLT: factors; the input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "LDLT: ...").
//   - ErrOutOfRange propagated from a misbehaving Reader on the fallback path.
//
// Determinism:
//   - Fixed pivot rule and loop order; identical inputs give bitwise identical factors.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func FactorLDLT(m Reader) (*LDLT, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLDLT, err)
	}
	n := m.Rows()

	// Stage 1: work buffer a = copy(A).
	a := make([]float64, n*n)
	if dense, ok := m.(*Dense); ok {
		copy(a, dense.data)
	} else {
		var err error
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if a[i*n+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLDLT, err)
				}
			}
		}
	}

	f := &LDLT{
		n:    n,
		l:    make([]float64, n*n),
		d:    make([]float64, n),
		perm: make([]int, n),
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		f.perm[i] = i
		f.l[i*n+i] = unitDiag
	}

	var (
		p         int
		best, abs float64
		pivot, li float64
	)
	for k = 0; k < n; k++ {
		// Stage 2: diagonal pivot search over k..n-1.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			abs = math.Abs(a[i*n+i])
			if abs > best {
				p, best = i, abs
			}
		}
		if p != k {
			swapSymmetric(a, n, k, p)
			swapRowsPrefix(f.l, n, k, p, k)
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}

		pivot = a[k*n+k]
		if pivot == ZeroPivot {
			// Trailing diagonal is all zero: nothing left to eliminate.
			for i = k; i < n; i++ {
				f.d[i] = a[i*n+i]
			}

			return f, nil
		}
		f.d[k] = pivot

		// Stage 3: column k of L and the rank-1 Schur update.
		for i = k + 1; i < n; i++ {
			li = a[i*n+k] / pivot
			f.l[i*n+k] = li
			if li == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= li * a[k*n+j]
			}
		}
	}

	return f, nil
}

// swapSymmetric swaps rows r,s and then columns r,s of the n×n buffer a.
// Complexity: O(n).
func swapSymmetric(a []float64, n, r, s int) {
	var j int
	for j = 0; j < n; j++ {
		a[r*n+j], a[s*n+j] = a[s*n+j], a[r*n+j]
	}
	for j = 0; j < n; j++ {
		a[j*n+r], a[j*n+s] = a[j*n+s], a[j*n+r]
	}
}

// swapRowsPrefix swaps the first `width` entries of rows r and s of the n×n buffer l.
// Only the already-built columns of L move with a pivot.
// Complexity: O(width).
func swapRowsPrefix(l []float64, n, r, s, width int) {
	for j := 0; j < width; j++ {
		l[r*n+j], l[s*n+j] = l[s*n+j], l[r*n+j]
	}
}
