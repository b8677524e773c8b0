// SPDX-License-Identifier: MIT
// Package check_test contains test helpers for the validator tests.
package check_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvcheck/check"
	"github.com/katalvlaran/lvcheck/matrix"
	"github.com/stretchr/testify/require"
)

const fn = "test_fn"

// hide wraps a Reader so the concrete *Dense type is not visible.
type hide struct{ matrix.Reader }

// MustRows BUILDS a *Dense from row literals or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity BUILDS I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// RequireDomainError asserts err is a *DomainError of the given kind and returns it.
func RequireDomainError(t *testing.T, err error, kind error) *check.DomainError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var de *check.DomainError
	require.True(t, errors.As(err, &de), "expected *check.DomainError, got %T", err)

	return de
}
