// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over observation-by-feature matrices (rows are
//     observations, columns are features): means, centering, sample covariance.
//
// Exposed API:
//   - ColumnMeans(X)   -> means            // Σ_i X[i,j] / r
//   - CenterColumns(X) -> (Xc, means)      // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)     // (Xcᵀ Xc)/(r-1), ddof=1
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer.

package matrix

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnMeans returns the per-column arithmetic mean of X.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		var base int
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, atErr(opColumnMeans, i, j, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
//
// Returns the centered copy and the column means (reuse them to un-center).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// Covariance returns the sample covariance of the columns of X,
// Cov = (Xcᵀ Xc)/(r-1), together with the column means.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when r < 2 (sample covariance is undefined).
//
// Complexity: Time O(r*c²), Space O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
