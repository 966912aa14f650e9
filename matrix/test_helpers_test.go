// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Small deterministic fixtures for kernels.
//   - hide{} to force the generic (non-*Dense) code paths.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/matrix"
)

// hide wraps any Matrix to mask its concrete type, so kernels take the
// At/Set fallback instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMatrixClose compares m against want element-wise within tol.
func requireMatrixClose(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			got := mustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > tol {
				t.Fatalf("(%d,%d): got %g, want %g (tol %g)", i, j, got, want[i][j], tol)
			}
		}
	}
}
