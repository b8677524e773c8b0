// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/lvcheck/check"
	"go.uber.org/zap"
)

// Reporting policies accepted in Config.Policy.
const (
	PolicyRaise    = "raise"
	PolicySentinel = "sentinel"
)

// Config holds all matcheck configuration.
type Config struct {
	// Tolerance is the validator's approximate-equality threshold.
	Tolerance float64 `mapstructure:"tolerance" validate:"gt=0,lt=1"`
	// Policy selects how failures are reported: raise or sentinel.
	Policy string `mapstructure:"policy" validate:"required,oneof=raise sentinel"`
	// Sentinel is the substitute value recorded on failures under the sentinel policy.
	Sentinel float64 `mapstructure:"sentinel"`
	// LogLevel is the minimum zap level.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// CheckOptions translates the configuration into validator options.
// A nil logger leaves failure logging off.
func (c *Config) CheckOptions(logger *zap.Logger) []check.Option {
	opts := []check.Option{check.WithTolerance(c.Tolerance)}
	if c.Policy == PolicySentinel {
		opts = append(opts, check.WithReporter(check.Sentinel(c.Sentinel)))
	}
	if logger != nil {
		opts = append(opts, check.WithLogger(logger))
	}

	return opts
}
