// SPDX-License-Identifier: MIT

// Package render turns density fields and weighted samples into styled
// gonum/plot figures for the nbkit command.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/nbkit/ndgrid"
	"github.com/katalvlaran/nbkit/plotstyle"
)

var (
	// ErrShape is returned when axes and field disagree.
	ErrShape = errors.New("render: field does not match axes")

	// ErrNoSamples is returned for an empty or zero-weight sample.
	ErrNoSamples = errors.New("render: no samples")
)

// Labels are the texts and tick formats of a figure.
type Labels struct {
	Title   string
	X, Y    string
	XFormat string // printf tick format, "" keeps the default labels
	YFormat string
}

// fieldGrid adapts a 2-D field to plotter.GridXYZ: columns run along xs
// (field axis 0) and rows along ys (field axis 1).
type fieldGrid struct {
	xs, ys []float64
	f      *ndgrid.Field
}

func (g fieldGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g fieldGrid) X(c int) float64    { return g.xs[c] }
func (g fieldGrid) Y(r int) float64    { return g.ys[r] }
func (g fieldGrid) Z(c, r int) float64 { return g.f.Data()[c*len(g.ys)+r] }

// DensityPlot draws f, evaluated on Meshgrid(xs, ys), as a heat map.
//
// Errors: ErrShape, and style or format errors from plotstyle.
func DensityPlot(s plotstyle.Style, xs, ys []float64, f *ndgrid.Field, l Labels) (*plot.Plot, error) {
	if f == nil {
		return nil, fmt.Errorf("DensityPlot: nil field: %w", ErrShape)
	}
	sh := f.Shape()
	if len(sh) != 2 || sh[0] != len(xs) || sh[1] != len(ys) || len(xs) < 2 || len(ys) < 2 {
		return nil, fmt.Errorf("DensityPlot: field %v, axes %d×%d: %w", sh, len(xs), len(ys), ErrShape)
	}
	p, err := newPlot(s, l)
	if err != nil {
		return nil, fmt.Errorf("DensityPlot: %w", err)
	}
	p.Add(plotter.NewHeatMap(fieldGrid{xs: xs, ys: ys, f: f}, palette.Heat(12, 1)))

	return p, nil
}

// PosteriorPlot draws a weighted, normalized histogram of samples. A nil
// weights slice means equal weights.
//
// Errors: ErrNoSamples, ErrShape (len(weights) != len(samples)).
func PosteriorPlot(s plotstyle.Style, samples, weights []float64, bins int, l Labels) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("PosteriorPlot: %w", ErrNoSamples)
	}
	if weights != nil && len(weights) != len(samples) {
		return nil, fmt.Errorf("PosteriorPlot: %d weights for %d samples: %w", len(weights), len(samples), ErrShape)
	}
	xy := make(plotter.XYs, len(samples))
	total := 0.0
	for i, v := range samples {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		xy[i].X, xy[i].Y = v, w
		total += w
	}
	if !(total > 0) {
		return nil, fmt.Errorf("PosteriorPlot: %w", ErrNoSamples)
	}

	p, err := newPlot(s, l)
	if err != nil {
		return nil, fmt.Errorf("PosteriorPlot: %w", err)
	}
	h, err := plotter.NewHistogram(xy, bins)
	if err != nil {
		return nil, fmt.Errorf("PosteriorPlot: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	return p, nil
}

func newPlot(s plotstyle.Style, l Labels) (*plot.Plot, error) {
	p, err := s.NewPlot()
	if err != nil {
		return nil, err
	}
	p.Title.Text = l.Title
	p.X.Label.Text = l.X
	p.Y.Label.Text = l.Y
	if err = plotstyle.FormatTicks(p, l.XFormat, l.YFormat); err != nil {
		return nil, err
	}

	return p, nil
}

// Save writes p to path; the format follows the extension (png, svg, pdf...).
func Save(p *plot.Plot, path string, widthIn, heightIn float64) error {
	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}

	return nil
}
