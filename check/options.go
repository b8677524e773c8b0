// SPDX-License-Identifier: MIT

// Package check: functional configuration for the Validator.
//
// Design goals:
//   - The tolerance is an explicit, per-Validator value with one documented default.
//   - Safe by construction: setters panic only on nonsensical values (programmer error).
//   - A built Validator is immutable; there is no global mutable state.
package check

import (
	"math"

	"go.uber.org/zap"
)

// DefaultConstraintTolerance is the threshold under which a quantity is
// treated as zero/equal by every approximate comparison of a Validator.
const DefaultConstraintTolerance = 1e-8

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "check: WithTolerance: tolerance must be finite and > 0"
	panicReporterNil      = "check: WithReporter: reporter must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	tol      float64
	reporter Reporter
	logger   *zap.Logger
}

// WithTolerance sets the tolerance used for symmetry, unit-diagonal and
// positive-definiteness comparisons.
//
// Panics when tol is NaN, ±Inf or ≤ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithReporter selects the reporting policy (Raise, Sentinel, a custom ReporterFunc, ...).
//
// Panics when r is nil.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic(panicReporterNil)
	}

	return func(o *options) { o.reporter = r }
}

// WithLogger logs every failure through logger before the configured
// reporter runs. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// gatherOptions applies setters on top of the documented defaults and
// finalizes derived state (logging wraps the chosen reporter).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) options {
	o := options{
		tol:      DefaultConstraintTolerance,
		reporter: Raise(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger != nil {
		o.reporter = Logging(o.logger, o.reporter)
	}

	return o
}
