// SPDX-License-Identifier: MIT
// Package matrix - public constructors and facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to the canonical
//     implementation without duplicating logic.

package matrix

// NewIdentity returns I_n.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns the square matrix with d on its diagonal.
func NewDiagonal(d []float64) (*Dense, error) {
	D, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if err = D.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return D, nil
}
