// SPDX-License-Identifier: MIT

package check

import "go.uber.org/zap"

// Reporter decides how a failed predicate is signalled.
//
// Report receives the fully populated failure and returns the error the
// predicate hands back to its caller. A Reporter may record a sentinel on e,
// log it, count it, or wrap it. Returning nil does not turn a failure into
// a success: the predicate then returns e itself.
type Reporter interface {
	Report(e *DomainError) error
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(e *DomainError) error

// Report calls f(e).
func (f ReporterFunc) Report(e *DomainError) error { return f(e) }

// Raise returns the default policy: the failure is returned as-is with a NaN sentinel.
func Raise() Reporter {
	return ReporterFunc(func(e *DomainError) error { return e })
}

// Sentinel returns a policy that stores value as the failure's sentinel, the
// replacement for writing into a caller-provided output slot.
func Sentinel(value float64) Reporter {
	return ReporterFunc(func(e *DomainError) error {
		e.Sentinel = value
		return e
	})
}

// Logging returns a policy that emits one structured warning per failure and
// then delegates to next (Raise when next is nil).
func Logging(logger *zap.Logger, next Reporter) Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if next == nil {
		next = Raise()
	}

	return ReporterFunc(func(e *DomainError) error {
		logger.Warn("domain error",
			zap.String("function", e.Function),
			zap.String("subject", e.Subject),
			zap.Float64("value", e.Value),
			zap.Ints("index", e.Index),
			zap.Error(e),
		)

		return next.Report(e)
	})
}
