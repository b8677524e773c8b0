// Package lvcheck is a validation layer for numeric matrices and vectors:
// the argument checks a statistics library runs before handing a covariance
// or correlation matrix to its density functions.
//
// 🚀 What is in lvcheck?
//
//	• Primitives: size match, symmetry, positive definiteness, NaN and finiteness scans
//	• Composites: covariance and correlation matrix checks in a fixed order
//	• Pluggable failure policy: raise, sentinel substitute, structured logging
//	• A CLI (matcheck) that runs YAML documents of named matrices through the checks
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every check is a pure predicate over its input.
//   - The first failing element (row-major) is the one reported.
//   - A configured Validator is immutable and safe for concurrent use.
//
// Layout:
//
//	matrix/          — Dense container, LDLT factorization, sample statistics
//	check/           — the Validator: primitives, composites, reporters, options
//	internal/config  — viper configuration + struct validation
//	internal/logging — zap logger construction
//	internal/loader  — YAML documents → matrices and vectors
//	internal/suite   — runs documents through a Validator
//	cmd/matcheck     — cobra command line
//
// Quick start:
//
//	sigma, _ := matrix.FromRows([][]float64{{2, 1}, {1, 2}})
//	if err := check.CovMatrix("multi_normal", sigma, "Sigma"); err != nil {
//		return err // "multi_normal: Sigma is not symmetric. ..."
//	}
package lvcheck
