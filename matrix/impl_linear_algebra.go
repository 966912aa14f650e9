// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling, matrix-vector products
// and quadratic forms. All functions validate fail-fast and return clear
// errors on dimension mismatches.
//
// Notes:
//   - Each kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with identical loop order.
//   - Results are freshly allocated; inputs are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opDot         = "Dot"
	opQuadForm    = "QuadForm"
	opInverse     = "Inverse"
	opLU          = "LU"
	opDeterminant = "Determinant"
	opCholesky    = "Cholesky"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErr decorates an At/Set failure with its coordinates.
func atErr(op string, i, j int, err error) error {
	return matrixErrorf(op, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// Mul computes the product a*b.
//
// Contract: a.Cols() == b.Rows(); both non-nil.
// Determinism: i→k→j loop order (row of a streamed against rows of b).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var aik float64
			for i = 0; i < r; i++ {
				for k = 0; k < n; k++ {
					aik = da.data[i*n+k]
					if aik == 0 {
						continue
					}
					for j = 0; j < c; j++ {
						res.data[i*c+j] += aik * db.data[k*c+j]
					}
				}
			}

			return res, nil
		}
	}

	var av, bv, sum float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErr(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErr(opMul, k, j, err)
				}
				sum += av * bv
			}
			res.data[i*c+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}

		return res, nil
	}
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErr(opTranspose, i, j, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErr(opScale, i, j, err)
			}
			res.data[i*c+j] = alpha * v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErr(opMatVec, i, j, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Dot returns Σ x[i]*y[i].
// Errors: ErrNilMatrix for nil vectors, ErrDimensionMismatch for unequal lengths.
func Dot(x, y []float64) (float64, error) {
	if x == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	acc := ZeroSum
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc, nil
}

// QuadForm computes the scalar xᵗ A x for a square A.
//
// With A = Σ⁻¹ and x = v−μ this is the squared Mahalanobis distance used by
// the Gaussian density. The contraction runs row by row without allocating
// the intermediate A*x vector.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (A not square or len(x) != n).
// Complexity: O(n²) time, O(1) extra space.
func QuadForm(a Matrix, x []float64) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(x, n); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	var i, j int
	var row, acc float64
	acc = ZeroSum
	if d, ok := a.(*Dense); ok {
		var base int
		for i = 0; i < n; i++ {
			row = ZeroSum
			base = i * n
			for j = 0; j < n; j++ {
				row += d.data[base+j] * x[j]
			}
			acc += x[i] * row
		}

		return acc, nil
	}

	var v float64
	var err error
	for i = 0; i < n; i++ {
		row = ZeroSum
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return 0, atErr(opQuadForm, i, j, err)
			}
			row += v * x[j]
		}
		acc += x[i] * row
	}

	return acc, nil
}
