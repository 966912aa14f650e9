// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra core used by nbkit.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional finite-only numeric policy.
//   - Canonical kernels: Mul, Transpose, Scale, MatVec, Dot, QuadForm.
//   - Factorizations: LU (Doolittle, no pivoting), Inverse (Gauss-Jordan, partial pivoting),
//     Determinant (partial pivoting) and Cholesky.
//   - Column statistics: ColumnMeans, CenterColumns, Covariance.
//
// All loops run in a fixed i→j order, so identical inputs give bit-identical
// outputs. Kernels take a fast path on *Dense and fall back to At/Set for any
// other Matrix implementation.
//
// Errors are package-level sentinels (errors.go) wrapped with an operation
// tag, e.g. "Inverse: matrix: singular matrix"; match them with errors.Is.
package matrix
