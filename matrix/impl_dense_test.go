// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom_ShapeAndPolicy(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(mustAt(t, m, 0, 1), 1))
	// The policy travels with the instance.
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, data)
	require.NoError(t, err)
	data[0] = 99
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
}

func TestNewFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, 7.0, mustAt(t, m, 1, 2))
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
}

func TestDense_CloneRowRawData(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, -1))
	require.Equal(t, 1.0, mustAt(t, m, 0, 0), "clone must be independent")

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 100
	require.Equal(t, 3.0, mustAt(t, m, 1, 0), "Row returns a copy")

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, []float64{1, 2, 3, 4}, m.RawData())
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestNewIdentityAndDiagonal(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireMatrixClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I, 0)

	D, err := matrix.NewDiagonal([]float64{2, 5})
	require.NoError(t, err)
	requireMatrixClose(t, [][]float64{{2, 0}, {0, 5}}, D, 0)
}

func TestOptions_EpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })

	o := matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), matrix.WithNoValidateNaNInf())
	require.Equal(t, 1e-3, o.Epsilon())
	require.False(t, o.ValidateNaNInf())
	require.True(t, matrix.NewMatrixOptions().ValidateNaNInf())
}
