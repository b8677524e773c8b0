// SPDX-License-Identifier: MIT

package check

import "math"

// Validator runs structural predicates against a fixed tolerance and reports
// failures through a fixed Reporter. The zero value is not usable; build one
// with New.
type Validator struct {
	tol      float64
	reporter Reporter
}

// New builds a Validator from DefaultConstraintTolerance and the Raise policy,
// overridden by opts in order.
func New(opts ...Option) *Validator {
	o := gatherOptions(opts...)

	return &Validator{tol: o.tol, reporter: o.reporter}
}

// Tolerance returns the tolerance this Validator compares against.
func (v *Validator) Tolerance() float64 { return v.tol }

// fail builds the DomainError for one violation and runs it through the
// Reporter. It always returns a non-nil error.
func (v *Validator) fail(kind error, function, subject, message string, value float64, index ...int) error {
	e := &DomainError{
		Function: function,
		Subject:  subject,
		Message:  message,
		Value:    value,
		Index:    index,
		Sentinel: math.NaN(),
		Kind:     kind,
	}
	if err := v.reporter.Report(e); err != nil {
		return err
	}

	return e
}
