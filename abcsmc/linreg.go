// SPDX-License-Identifier: MIT

package abcsmc

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Parameter order of LinearRegressionModel.
const (
	ParamGradient = iota
	ParamIntercept
	ParamSigma
)

// Bounds is a closed interval [Lower, Upper] of a uniform prior.
type Bounds struct {
	Lower, Upper float64
}

func (b Bounds) contains(v float64) bool { return v >= b.Lower && v <= b.Upper }
func (b Bounds) width() float64          { return b.Upper - b.Lower }

// DefaultLinearRegressionBounds are the prior ranges of gradient, intercept
// and sigma from the regression notebook.
func DefaultLinearRegressionBounds() [3]Bounds {
	return [3]Bounds{{0, 10}, {3, 500}, {0, 10}}
}

// DefaultLinearRegressionKernel holds the half-widths of the uniform
// perturbation kernel, in parameter order.
func DefaultLinearRegressionKernel() [3]float64 {
	return [3]float64{0.05, 5, 0.1}
}

// DefaultLinearRegressionThresholds are the initial per-component thresholds.
func DefaultLinearRegressionThresholds() []float64 {
	return []float64{50, 50, 50}
}

// fit is a least-squares line with its residual standard deviation.
type fit struct {
	gradient, intercept, sigma float64
}

func fitLine(x, y []float64) fit {
	intercept, gradient := stat.LinearRegression(x, y, nil, false)
	var ss float64
	for i := range x {
		r := y[i] - (gradient*x[i] + intercept)
		ss += r * r
	}

	return fit{gradient: gradient, intercept: intercept, sigma: math.Sqrt(ss / float64(len(x)-2))}
}

// LinearRegressionModel infers (gradient, intercept, sigma) of
// y = gradient·x + intercept + N(0, sigma²). Priors are uniform on Bounds and
// the kernel is uniform within ±Kernel. A simulated dataset is summarized by
// its own least-squares fit; distance component k is the relative error
// |fit_k(sim) − fit_k(obs)| / |fit_k(obs)|.
type LinearRegressionModel struct {
	x, y     []float64
	bounds   [3]Bounds
	kernel   [3]float64
	observed fit
}

var _ Model = (*LinearRegressionModel)(nil)

// NewLinearRegressionModel fits the observed data once.
// Errors: ErrInvalidModel for fewer than 3 points, mismatched lengths, empty
// bounds, non-positive kernel widths, or an observed fit with a zero
// statistic (relative distances would be undefined).
func NewLinearRegressionModel(x, y []float64, bounds [3]Bounds, kernel [3]float64) (*LinearRegressionModel, error) {
	if len(x) != len(y) || len(x) < 3 {
		return nil, fmt.Errorf("linreg: %d x and %d y values: %w", len(x), len(y), ErrInvalidModel)
	}
	for k := range bounds {
		if !(bounds[k].Upper > bounds[k].Lower) {
			return nil, fmt.Errorf("linreg: bounds %d = %+v: %w", k, bounds[k], ErrInvalidModel)
		}
		if !(kernel[k] > 0) {
			return nil, fmt.Errorf("linreg: kernel %d = %g: %w", k, kernel[k], ErrInvalidModel)
		}
	}
	m := &LinearRegressionModel{
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		bounds: bounds,
		kernel: kernel,
	}
	m.observed = fitLine(m.x, m.y)
	for k, v := range m.observed.values() {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("linreg: observed statistic %d = %g: %w", k, v, ErrInvalidModel)
		}
	}

	return m, nil
}

func (f fit) values() [3]float64 { return [3]float64{f.gradient, f.intercept, f.sigma} }

// ObservedFit returns gradient, intercept and residual sigma of the data.
func (m *LinearRegressionModel) ObservedFit() (gradient, intercept, sigma float64) {
	return m.observed.gradient, m.observed.intercept, m.observed.sigma
}

func (m *LinearRegressionModel) Dim() int       { return 3 }
func (m *LinearRegressionModel) Distances() int { return 3 }

func (m *LinearRegressionModel) SamplePrior(rng *rand.Rand) []float64 {
	theta := make([]float64, 3)
	for k, b := range m.bounds {
		theta[k] = distuv.Uniform{Min: b.Lower, Max: b.Upper, Src: rng}.Rand()
	}

	return theta
}

func (m *LinearRegressionModel) InSupport(theta []float64) bool {
	if len(theta) != 3 {
		return false
	}
	for k, b := range m.bounds {
		if !b.contains(theta[k]) {
			return false
		}
	}

	return true
}

func (m *LinearRegressionModel) PriorPDF(theta []float64) float64 {
	if !m.InSupport(theta) {
		return 0
	}
	p := 1.0
	for _, b := range m.bounds {
		p /= b.width()
	}

	return p
}

func (m *LinearRegressionModel) Perturb(rng *rand.Rand, theta []float64) []float64 {
	out := make([]float64, 3)
	for k, h := range m.kernel {
		out[k] = theta[k] + h*(2*rng.Float64()-1)
	}

	return out
}

func (m *LinearRegressionModel) KernelPDF(from, to []float64) float64 {
	p := 1.0
	for k, h := range m.kernel {
		if math.Abs(to[k]-from[k]) > h {
			return 0
		}
		p /= 2 * h
	}

	return p
}

// Distance simulates y at the observed x under theta and compares fits.
func (m *LinearRegressionModel) Distance(rng *rand.Rand, theta []float64) ([]float64, error) {
	if len(theta) != 3 {
		return nil, fmt.Errorf("linreg: %d parameters: %w", len(theta), ErrInvalidModel)
	}
	g, c, s := theta[ParamGradient], theta[ParamIntercept], theta[ParamSigma]
	sim := make([]float64, len(m.x))
	for i, xi := range m.x {
		sim[i] = g*xi + c + s*rng.NormFloat64()
	}
	got := fitLine(m.x, sim).values()
	obs := m.observed.values()
	d := make([]float64, 3)
	for k := range d {
		d[k] = math.Abs(got[k]-obs[k]) / math.Abs(obs[k])
	}

	return d, nil
}
