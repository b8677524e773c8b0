// SPDX-License-Identifier: MIT

// Package config loads matcheck settings from defaults, an optional YAML
// file and MATCHECK_* environment variables, in increasing precedence, and
// validates the result before any matrix is checked.
package config
