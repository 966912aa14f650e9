// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/matrix"
)

func TestMul_FastAndFallbackAgree(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatrixClose(t, want, fast, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireMatrixClose(t, want, slow, 0)
}

func TestMul_Errors(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeAndScale(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for _, m := range []matrix.Matrix{a, hide{a}} {
		at, err := matrix.Transpose(m)
		require.NoError(t, err)
		requireMatrixClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at, 0)

		s, err := matrix.Scale(m, -2)
		require.NoError(t, err)
		requireMatrixClose(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s, 0)
	}
}

func TestMatVecDot(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, m := range []matrix.Matrix{a, hide{a}} {
		y, err := matrix.MatVec(m, []float64{1, 1})
		require.NoError(t, err)
		require.Equal(t, []float64{3, 7}, y)
	}
	_, err := matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)
	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestQuadForm(t *testing.T) {
	a := mustRows(t, [][]float64{{2, 1}, {1, 3}})
	for _, m := range []matrix.Matrix{a, hide{a}} {
		q, err := matrix.QuadForm(m, []float64{1, 2})
		require.NoError(t, err)
		require.Equal(t, 18.0, q)
	}

	// Identity reduces to the squared Euclidean norm.
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	q, err := matrix.QuadForm(I, []float64{1, -2, 2})
	require.NoError(t, err)
	require.Equal(t, 9.0, q)

	_, err = matrix.QuadForm(mustRows(t, [][]float64{{1, 2, 3}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.QuadForm(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
