// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvcheck/check"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override (MATCHECK_TOLERANCE, ...).
const EnvPrefix = "MATCHECK"

// Configuration keys.
const (
	KeyTolerance = "tolerance"
	KeyPolicy    = "policy"
	KeySentinel  = "sentinel"
	KeyLogLevel  = "log_level"
)

var validate = validator.New()

// Load reads configuration with precedence env > file > defaults.
// An empty path skips the file; a non-empty path that cannot be read is an error.
func Load(path string) (*Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load on a caller-supplied viper instance, so command-line flags
// bound to v take precedence over everything else.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	v.SetDefault(KeyTolerance, check.DefaultConstraintTolerance)
	v.SetDefault(KeyPolicy, PolicyRaise)
	v.SetDefault(KeySentinel, 0.0)
	v.SetDefault(KeyLogLevel, "info")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: error reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: configuration validation failed: %w", err)
	}

	return &cfg, nil
}
