// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Square-matrix factorizations and the quantities derived from them:
//     LU (Doolittle, no pivoting), Inverse (Gauss-Jordan, partial pivoting),
//     Determinant (Gaussian elimination with partial pivoting) and Cholesky.
//
// Determinism:
//   - Every kernel first materializes the input into a flat row-major buffer
//     (flatten) and then runs fixed-order loops over it, so the fast path and
//     the generic path are the same code.
//
// Notes:
//   - LU does not pivot; a zero pivot is reported as ErrSingular even when a
//     row exchange would have succeeded. Inverse and Determinant pivot, so
//     they accept every invertible input.
//   - Covariance matrices are symmetric positive definite; for those Doolittle
//     LU never meets a zero pivot and Cholesky is the natural definiteness test.

package matrix

import (
	"fmt"
	"math"
)

// flatten returns a row-major copy of a square matrix and its order n.
func flatten(op string, m Matrix) ([]float64, int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, 0, matrixErrorf(op, err)
	}
	n := m.Rows()
	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return buf, n, nil
	}
	buf := make([]float64, n*n)
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, 0, atErr(op, i, j, err)
			}
			buf[i*n+j] = v
		}
	}

	return buf, n, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	a, n, err := flatten(opLU, m)
	if err != nil {
		return nil, nil, err
	}
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a[i*n+j] - sum
		}
		if U.data[i*n+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a[j*n+i] - sum) / U.data[i*n+i]
		}
	}

	return L, U, nil
}

// Inverse computes A^{-1} by Gauss-Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: copy A into a working buffer and start the result at I.
//   - Stage 2: per column pick the largest magnitude pivot at or below the
//     diagonal (the same scan as Determinant), swap it up in both buffers,
//     scale the pivot row and clear the column in every other row.
//
// Any invertible A succeeds, indefinite ones included.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (no nonzero pivot in a column).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	a, n, err := flatten(opInverse, m)
	if err != nil {
		return nil, err
	}
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	b := inv.data

	var col, i, j, p int
	var best, v, f float64
	for col = 0; col < n; col++ {
		p = col
		best = math.Abs(a[col*n+col])
		for i = col + 1; i < n; i++ {
			if v = math.Abs(a[i*n+col]); v > best {
				best, p = v, i
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[p*n+j] = a[p*n+j], a[col*n+j]
				b[col*n+j], b[p*n+j] = b[p*n+j], b[col*n+j]
			}
		}
		f = a[col*n+col]
		for j = 0; j < n; j++ {
			a[col*n+j] /= f
			b[col*n+j] /= f
		}
		for i = 0; i < n; i++ {
			if i == col {
				continue
			}
			if f = a[i*n+col]; f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[i*n+j] -= f * a[col*n+j]
				b[i*n+j] -= f * b[col*n+j]
			}
		}
	}

	return inv, nil
}

// Determinant returns det(m) by Gaussian elimination with partial pivoting.
//
// Behavior highlights:
//   - A singular input yields exactly 0 with a nil error; singularity is a
//     property of the value, not a failure of the computation.
//   - Each row swap flips the sign of the accumulated product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Determinant(m Matrix) (float64, error) {
	a, n, err := flatten(opDeterminant, m)
	if err != nil {
		return 0, err
	}

	det := 1.0
	var col, i, j, p int
	var best, v, f float64
	for col = 0; col < n; col++ {
		// Pick the largest magnitude pivot in column col.
		p = col
		best = math.Abs(a[col*n+col])
		for i = col + 1; i < n; i++ {
			if v = math.Abs(a[i*n+col]); v > best {
				best, p = v, i
			}
		}
		if best == ZeroPivot {
			return 0, nil
		}
		if p != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[p*n+j] = a[p*n+j], a[col*n+j]
			}
			det = -det
		}
		det *= a[col*n+col]
		for i = col + 1; i < n; i++ {
			f = a[i*n+col] / a[col*n+col]
			if f == 0 {
				continue
			}
			for j = col; j < n; j++ {
				a[i*n+j] -= f * a[col*n+j]
			}
		}
	}

	return det, nil
}

// Cholesky computes the lower-triangular L with A = L*Lᵀ.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, eps) with eps from options (DefaultEpsilon).
//   - Stage 2: Cholesky–Banachiewicz row by row; a pivot ≤ 0 (or NaN) means A
//     is not positive definite.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNotPositiveDefinite.
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
func Cholesky(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, n, err := flatten(opCholesky, m)
	if err != nil {
		return nil, err
	}
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = a[i*n+j]
			for k = 0; k < j; k++ {
				sum -= L.data[i*n+k] * L.data[j*n+k]
			}
			if i == j {
				if !(sum > 0) { // also catches NaN
					return nil, matrixErrorf(opCholesky,
						fmt.Errorf("pivot %d = %g: %w", i, sum, ErrNotPositiveDefinite))
				}
				L.data[i*n+i] = math.Sqrt(sum)
			} else {
				L.data[i*n+j] = sum / L.data[j*n+j]
			}
		}
	}

	return L, nil
}
