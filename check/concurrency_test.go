// SPDX-License-Identifier: MIT
package check_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvcheck/check"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestValidator_ConcurrentUse runs every composite from many goroutines against
// one shared Validator and one shared matrix; results must be identical to a
// sequential run.
func TestValidator_ConcurrentUse(t *testing.T) {
	t.Parallel()
	v := check.New()
	good := MustRows(t, [][]float64{{1, 0.2, 0}, {0.2, 1, 0.1}, {0, 0.1, 1}})
	bad := MustRows(t, [][]float64{{1, 2}, {2, 1}})
	wantBad := v.CorrMatrix(fn, bad, "R").Error()

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				if err := v.CorrMatrix(fn, good, "R"); err != nil {
					return err
				}
				if err := v.CovMatrix(fn, good, "R"); err != nil {
					return err
				}
				if got := v.CorrMatrix(fn, bad, "R"); got == nil || got.Error() != wantBad {
					return fmt.Errorf("unexpected result %v, want %q", got, wantBad)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, check.CorrMatrix(fn, good, "R"))
}
