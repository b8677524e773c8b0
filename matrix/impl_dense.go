// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Store any float64, including NaN and ±Inf: validators must be able to see them.
//
// AI-Hints:
//   - Kernels take a fast path on *Dense and operate on the flat data slice directly.
//   - FromRows is the natural bridge from literals and decoded documents; it accepts 0×0.
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for FromRows
	ctxColumn   = "Column"   // tag for Column extraction
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtValue    = "%g"
)

// identityDiag is the value written on the diagonal by NewIdentity.
const identityDiag = 1.0

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers can match with errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0; zero only via FromRows/newDenseZeroOK)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Empty shapes are reachable only through FromRows (a 0×0 literal) so that
//     an accidental NewDense(0, n) is still caught.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewZeros is an alias of NewDense kept for readability at call sites.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns the n×n identity matrix (n > 0).
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = identityDiag
	}

	return m, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Returns ErrBadShape on negative dimensions.
// Complexity: O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equally long rows.
// Implementation:
//   - Stage 1: derive shape from len(rows) and len(rows[0]); zero rows yields 0×0.
//   - Stage 2: reject ragged input with ErrBadShape, reporting the first bad row.
//   - Stage 3: copy values row by row; the input slices are not retained.
//
// Behavior highlights:
//   - Any float64 is accepted, NaN and ±Inf included.
//
// Errors:
//   - ErrBadShape (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped as "Dense.At(i,j): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// No numeric policy is applied here: validation is the caller's decision.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf(_fmtValue, m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Column copies column j of m into a fresh slice (length Rows()).
// Vector-shaped checks consume columns this way: a C = 1 matrix is a vector.
//
// Errors:
//   - ErrNilMatrix for nil m; ErrOutOfRange for a bad column index.
//
// Complexity:
//   - Time O(r), Space O(r).
func Column(m Reader, j int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("%s(%d): %w", ctxColumn, j, ErrOutOfRange)
	}
	rows := m.Rows()
	out := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = d.data[i*d.c+j]
		}

		return out, nil
	}

	var err error
	for i := 0; i < rows; i++ {
		if out[i], err = m.At(i, j); err != nil {
			return nil, fmt.Errorf("%s(%d): %w", ctxColumn, j, err)
		}
	}

	return out, nil
}
