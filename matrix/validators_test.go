// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/matrix"
)

func zeros(t *testing.T, r, c int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", zeros(t, 1, 1), nil},
		{"3x3", zeros(t, 3, 3), nil},
		{"2x3", zeros(t, 2, 3), matrix.ErrDimensionMismatch},
		{"hidden 2x2", hide{zeros(t, 2, 2)}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameShape(zeros(t, 2, 3), zeros(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(zeros(t, 2, 3), zeros(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(zeros(t, 2, 3), zeros(t, 2, 4)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, zeros(t, 2, 3)), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustRows(t, [][]float64{{2, 1}, {1, 3}})
	near := mustRows(t, [][]float64{{2, 1}, {1 + 1e-6, 3}})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-3))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-3), "negative tolerance is taken by magnitude")
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(zeros(t, 2, 3), 0), matrix.ErrDimensionMismatch)
}
