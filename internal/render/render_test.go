// SPDX-License-Identifier: MIT

package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/gaussian"
	"github.com/katalvlaran/nbkit/internal/render"
	"github.com/katalvlaran/nbkit/matrix"
	"github.com/katalvlaran/nbkit/ndgrid"
	"github.com/katalvlaran/nbkit/plotstyle"
)

func plainStyle() plotstyle.Style {
	s := plotstyle.Default()
	s.UseTeX = false

	return s
}

func densityField(t *testing.T) ([]float64, []float64, *ndgrid.Field) {
	t.Helper()
	xs, err := ndgrid.Linspace(-3, 3, 31)
	require.NoError(t, err)
	ys, err := ndgrid.Linspace(-2, 2, 21)
	require.NoError(t, err)
	g, err := ndgrid.Meshgrid(xs, ys)
	require.NoError(t, err)
	sigma, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	f, err := gaussian.Density(g, []float64{0, 0}, sigma)
	require.NoError(t, err)

	return xs, ys, f
}

func TestDensityPlot_Save(t *testing.T) {
	xs, ys, f := densityField(t)
	p, err := render.DensityPlot(plainStyle(), xs, ys, f, render.Labels{
		Title: "density", X: "x", Y: "y", XFormat: "%d", YFormat: "%.2f",
	})
	require.NoError(t, err)
	require.Equal(t, "density", p.Title.Text)
	require.Equal(t, "x", p.X.Label.Text)

	out := filepath.Join(t.TempDir(), "density.png")
	require.NoError(t, render.Save(p, out, 4, 4))
	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestDensityPlot_Errors(t *testing.T) {
	xs, ys, f := densityField(t)
	_, err := render.DensityPlot(plainStyle(), ys, xs, f, render.Labels{})
	require.ErrorIs(t, err, render.ErrShape)
	_, err = render.DensityPlot(plainStyle(), xs, ys, nil, render.Labels{})
	require.ErrorIs(t, err, render.ErrShape)
	_, err = render.DensityPlot(plainStyle(), xs, ys, f, render.Labels{XFormat: "%s"})
	require.ErrorIs(t, err, plotstyle.ErrBadFormat)
}

func TestPosteriorPlot(t *testing.T) {
	samples := []float64{0.1, 0.2, 0.2, 0.3, 0.35, 0.5}
	p, err := render.PosteriorPlot(plainStyle(), samples, nil, 5, render.Labels{X: "p"})
	require.NoError(t, err)
	require.Equal(t, "p", p.X.Label.Text)

	out := filepath.Join(t.TempDir(), "posterior.png")
	require.NoError(t, render.Save(p, out, 3, 3))

	_, err = render.PosteriorPlot(plainStyle(), nil, nil, 5, render.Labels{})
	require.ErrorIs(t, err, render.ErrNoSamples)
	_, err = render.PosteriorPlot(plainStyle(), samples, []float64{1}, 5, render.Labels{})
	require.ErrorIs(t, err, render.ErrShape)
	_, err = render.PosteriorPlot(plainStyle(), samples, make([]float64, len(samples)), 5, render.Labels{})
	require.ErrorIs(t, err, render.ErrNoSamples)
}
