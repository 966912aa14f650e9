// SPDX-License-Identifier: MIT

package ndgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/ndgrid"
)

func TestLinspace(t *testing.T) {
	cases := []struct {
		name        string
		start, stop float64
		n           int
		want        []float64
	}{
		{"five", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"single", 3, 7, 1, []float64{3}},
		{"descending", 1, -1, 3, []float64{1, 0, -1}},
		{"degenerate", 2, 2, 3, []float64{2, 2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ndgrid.Linspace(tc.start, tc.stop, tc.n)
			require.NoError(t, err)
			require.InDeltaSlice(t, tc.want, got, 1e-15)
		})
	}
}

func TestLinspace_Errors(t *testing.T) {
	_, err := ndgrid.Linspace(0, 1, 0)
	require.ErrorIs(t, err, ndgrid.ErrBadCount)
	_, err = ndgrid.Linspace(0, 1, -2)
	require.ErrorIs(t, err, ndgrid.ErrBadCount)
}

func TestMeshgrid_IJLayout(t *testing.T) {
	g, err := ndgrid.Meshgrid([]float64{1, 2, 3}, []float64{10, 20})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 2}, g.Shape())
	require.Equal(t, 2, g.Dim())
	require.Equal(t, 6, g.Points())

	// Last leading axis varies fastest.
	want := [][]float64{{1, 10}, {1, 20}, {2, 10}, {2, 20}, {3, 10}, {3, 20}}
	for i, p := range want {
		require.Equal(t, p, g.Point(i), "point %d", i)
	}
}

func TestMeshgrid_OneAxis(t *testing.T) {
	g, err := ndgrid.Meshgrid([]float64{-1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, g.Shape())
	require.Equal(t, []float64{0}, g.Point(1))
}

func TestMeshgrid_Errors(t *testing.T) {
	_, err := ndgrid.Meshgrid()
	require.ErrorIs(t, err, ndgrid.ErrEmptyAxis)
	_, err = ndgrid.Meshgrid([]float64{1}, nil)
	require.ErrorIs(t, err, ndgrid.ErrEmptyAxis)
}

func TestNewGrid(t *testing.T) {
	data := []float64{0, 0, 1, 1}
	g, err := ndgrid.NewGrid([]int{2, 2}, data)
	require.NoError(t, err)
	require.Equal(t, 2, g.Points())
	require.Equal(t, []float64{1, 1}, g.Point(1))

	// Point is a view.
	g.Point(0)[1] = 5
	require.Equal(t, 5.0, data[1])

	// Shape is a copy.
	sh := g.Shape()
	sh[0] = 99
	require.Equal(t, []int{2, 2}, g.Shape())

	_, err = ndgrid.NewGrid([]int{3, 2}, data)
	require.ErrorIs(t, err, ndgrid.ErrBadShape)
	_, err = ndgrid.NewGrid(nil, data)
	require.ErrorIs(t, err, ndgrid.ErrBadShape)
	_, err = ndgrid.NewGrid([]int{0, 4}, data)
	require.ErrorIs(t, err, ndgrid.ErrBadShape)
}

func TestField(t *testing.T) {
	g, err := ndgrid.Meshgrid([]float64{0, 1, 2}, []float64{0, 1})
	require.NoError(t, err)
	f := ndgrid.NewField(g)
	require.Equal(t, []int{3, 2}, f.Shape())
	require.Equal(t, 6, f.Len())

	for i := 0; i < g.Points(); i++ {
		p := g.Point(i)
		f.Data()[i] = p[0]*10 + p[1]
	}
	v, err := f.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 21.0, v)
	require.InDelta(t, 0+1+10+11+20+21, f.Sum(), 1e-12)

	mx, at := f.Max()
	require.Equal(t, 21.0, mx)
	require.Equal(t, 5, at)

	_, err = f.At(3, 0)
	require.ErrorIs(t, err, ndgrid.ErrBadShape)
	_, err = f.At(0)
	require.ErrorIs(t, err, ndgrid.ErrBadShape)
}

func TestField_SinglePoint(t *testing.T) {
	g, err := ndgrid.NewGrid([]int{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	f := ndgrid.NewField(g)
	require.Equal(t, 1, f.Len())
	require.Empty(t, f.Shape())
	v, err := f.At()
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}
