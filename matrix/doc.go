// Package matrix provides the numeric containers and kernels the check
// package consumes.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container that stores NaN and ±Inf verbatim
//     so validators can see them.
//   - FactorLDLT, a symmetric-pivoted L·D·Lᵀ factorization whose diagonal
//     factors decide positive definiteness.
//   - Covariance and Correlation of observation matrices.
//
// Every kernel accepts the read-only Reader interface; *Dense inputs take a
// flat-buffer fast path, any other Reader goes through At.
package matrix
