// SPDX-License-Identifier: MIT

// Package suite runs decoded matrix documents through a check.Validator.
package suite

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcheck/check"
	"github.com/katalvlaran/lvcheck/internal/loader"
	"github.com/katalvlaran/lvcheck/matrix"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds how many documents RunAll evaluates at once.
const DefaultWorkers = 4

// Result is the outcome of one entry. Err is nil on success.
type Result struct {
	Source string
	Name   string
	Check  loader.Kind
	Err    error
}

// Passed reports whether the entry validated.
func (r Result) Passed() bool { return r.Err == nil }

// Runner evaluates documents with a fixed Validator.
type Runner struct {
	v       *check.Validator
	logger  *zap.Logger
	workers int
}

// NewRunner binds v. A nil logger is replaced by zap.NewNop; workers < 1
// falls back to DefaultWorkers.
func NewRunner(v *check.Validator, logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = DefaultWorkers
	}

	return &Runner{v: v, logger: logger, workers: workers}
}

// Run evaluates every entry of doc in order. Entries never short-circuit one
// another: each gets its own Result.
func (r *Runner) Run(doc *loader.Document) []Result {
	out := make([]Result, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		function := e.Function
		if function == "" {
			function = doc.Source
		}
		err := r.runEntry(function, e)
		r.logger.Debug("entry checked",
			zap.String("source", doc.Source),
			zap.String("name", e.Name),
			zap.String("check", string(e.Check)),
			zap.Bool("passed", err == nil))
		out = append(out, Result{Source: doc.Source, Name: e.Name, Check: e.Check, Err: err})
	}

	return out
}

// RunAll evaluates docs concurrently, bounded by the runner's worker count.
// Results keep document order. Only ctx cancellation yields a non-nil error.
func (r *Runner) RunAll(ctx context.Context, docs []*loader.Document) ([][]Result, error) {
	out := make([][]Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = r.Run(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Failures folds every failed Result into one error, nil when all passed.
func Failures(results []Result) error {
	var err error
	for _, res := range results {
		if res.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s/%s: %w", res.Source, res.Name, res.Err))
		}
	}

	return err
}

func (r *Runner) runEntry(function string, e loader.Entry) error {
	if e.IsVector() {
		y, err := e.Vector()
		if err != nil {
			return err
		}
		switch e.Check {
		case loader.KindNotNaN:
			return r.v.NotNaN(function, y, e.Name)
		case loader.KindFinite:
			return r.v.Finite(function, y, e.Name)
		case loader.KindSameLength:
			return r.v.SameLength(function, e.Name, y, "other", e.Other)
		}
	}

	m, err := e.Matrix()
	if err != nil {
		return err
	}
	switch e.Check {
	case loader.KindSquare:
		return r.v.Square(function, m, e.Name)
	case loader.KindSymmetric:
		return r.v.Symmetric(function, m, e.Name)
	case loader.KindPosDefinite:
		return r.v.PosDefinite(function, m, e.Name)
	case loader.KindCov:
		return r.v.CovMatrix(function, m, e.Name)
	case loader.KindCovSymmetric:
		return r.v.CovMatrixSymmetric(function, m)
	case loader.KindCorr:
		return r.v.CorrMatrix(function, m, e.Name)
	case loader.KindNotNaNMatrix:
		return r.v.NotNaNMatrix(function, m, e.Name)
	case loader.KindFiniteMatrix:
		return r.v.FiniteMatrix(function, m, e.Name)
	case loader.KindSampleCov:
		cov, _, err := matrix.Covariance(m)
		if err != nil {
			return err
		}
		return r.v.CovMatrix(function, cov, e.Name)
	case loader.KindSampleCorr:
		corr, _, _, err := matrix.Correlation(m)
		if err != nil {
			return err
		}
		return r.v.CorrMatrix(function, corr, e.Name)
	default:
		return fmt.Errorf("suite: entry %q: %w %q", e.Name, loader.ErrUnknownCheck, e.Check)
	}
}
