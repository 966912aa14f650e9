// SPDX-License-Identifier: MIT

package gaussian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nbkit/matrix"
	"github.com/katalvlaran/nbkit/ndgrid"
)

// NormalPDF returns the univariate normal density N(x; mu, sigma²).
// A non-positive or non-finite sigma yields NaN.
func NormalPDF(x, mu, sigma float64) float64 {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return math.NaN()
	}
	z := (x - mu) / sigma

	return math.Exp(-0.5*z*z) / (sigma * math.Sqrt(2*math.Pi))
}

// Distribution is a multivariate normal with precomputed Σ⁻¹ and det Σ.
// It is immutable after New and safe for concurrent use.
type Distribution struct {
	k       int
	mu      []float64
	sigma   matrix.Matrix
	inv     matrix.Matrix
	invData []float64 // row-major Σ⁻¹ for the per-point kernel
	det     float64
	norm    float64 // sqrt((2π)^k det Σ)
	logNorm float64 // ½(k log 2π + log det Σ)
}

// New validates μ and Σ and precomputes the density constants.
//
// Implementation:
//   - Stage 1: shape checks (len(mu) == k > 0, Σ is k×k) and symmetry within eps.
//   - Stage 2: det Σ by pivoted elimination; det == 0 is ErrSingularCovariance.
//   - Stage 3: Cholesky of Σ unless WithoutDefinitenessCheck.
//   - Stage 4: Σ⁻¹ and the normalizing constant.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, matrix.ErrAsymmetry,
//     ErrSingularCovariance, ErrNotPositiveDefinite.
//
// Complexity: O(k³).
func New(mu []float64, sigma matrix.Matrix, opts ...Option) (*Distribution, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(sigma); err != nil {
		return nil, gaussianErrorf(opNew, err)
	}
	k := len(mu)
	if k == 0 || sigma.Rows() != k {
		return nil, gaussianErrorf(opNew,
			fmt.Errorf("mean has %d entries, covariance is %dx%d: %w", k, sigma.Rows(), sigma.Cols(), ErrDimensionMismatch))
	}
	if err := matrix.ValidateSymmetric(sigma, o.eps); err != nil {
		return nil, gaussianErrorf(opNew, err)
	}

	det, err := matrix.Determinant(sigma)
	if err != nil {
		return nil, gaussianErrorf(opNew, err)
	}
	if det == 0 {
		return nil, gaussianErrorf(opNew, ErrSingularCovariance)
	}
	if o.checkPD {
		if _, err = matrix.Cholesky(sigma, matrix.WithEpsilon(o.eps)); err != nil {
			if errors.Is(err, matrix.ErrNotPositiveDefinite) {
				return nil, gaussianErrorf(opNew, ErrNotPositiveDefinite)
			}
			return nil, gaussianErrorf(opNew, err)
		}
	}

	inv, err := matrix.Inverse(sigma)
	if err != nil {
		return nil, gaussianErrorf(opNew, err)
	}
	invData := make([]float64, k*k)
	var i, j int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			invData[i*k+j], _ = inv.At(i, j)
		}
	}

	m := make([]float64, k)
	copy(m, mu)
	logTwoPiK := float64(k) * math.Log(2*math.Pi)

	return &Distribution{
		k:       k,
		mu:      m,
		sigma:   sigma.Clone(),
		inv:     inv,
		invData: invData,
		det:     det,
		norm:    math.Sqrt(math.Pow(2*math.Pi, float64(k)) * det),
		logNorm: 0.5 * (logTwoPiK + math.Log(det)),
	}, nil
}

// Dim returns k.
func (d *Distribution) Dim() int { return d.k }

// Mean returns a copy of μ.
func (d *Distribution) Mean() []float64 {
	out := make([]float64, d.k)
	copy(out, d.mu)

	return out
}

// Covariance returns a copy of Σ.
func (d *Distribution) Covariance() matrix.Matrix { return d.sigma.Clone() }

// Determinant returns det Σ.
func (d *Distribution) Determinant() float64 { return d.det }

// QuadForm returns the squared Mahalanobis distance (x-μ)ᵗ Σ⁻¹ (x-μ).
// Errors: ErrDimensionMismatch when len(x) != k.
func (d *Distribution) QuadForm(x []float64) (float64, error) {
	if len(x) != d.k {
		return 0, gaussianErrorf(opQuadForm, ErrDimensionMismatch)
	}
	diff := make([]float64, d.k)
	for i := range diff {
		diff[i] = x[i] - d.mu[i]
	}
	q, err := matrix.QuadForm(d.inv, diff)
	if err != nil {
		return 0, gaussianErrorf(opQuadForm, err)
	}

	return q, nil
}

// PDF returns the density at x.
func (d *Distribution) PDF(x []float64) (float64, error) {
	q, err := d.QuadForm(x)
	if err != nil {
		return 0, gaussianErrorf(opPDF, err)
	}

	return math.Exp(-0.5*q) / d.norm, nil
}

// LogPDF returns the log density at x. It stays finite far in the tails where
// PDF underflows to 0.
func (d *Distribution) LogPDF(x []float64) (float64, error) {
	q, err := d.QuadForm(x)
	if err != nil {
		return 0, gaussianErrorf(opLogPDF, err)
	}

	return -0.5*q - d.logNorm, nil
}

// Evaluate computes the density at every point of g. The trailing axis of g
// must equal k; the returned field has the leading shape of g.
//
// Errors: ErrNilGrid, ErrDimensionMismatch.
// Complexity: O(points * k²), one scratch vector.
func (d *Distribution) Evaluate(g *ndgrid.Grid) (*ndgrid.Field, error) {
	if g == nil {
		return nil, gaussianErrorf(opEvaluate, ErrNilGrid)
	}
	if g.Dim() != d.k {
		return nil, gaussianErrorf(opEvaluate,
			fmt.Errorf("grid points have %d coordinates, want %d: %w", g.Dim(), d.k, ErrDimensionMismatch))
	}

	field := ndgrid.NewField(g)
	out := field.Data()
	diff := make([]float64, d.k)
	n := g.Points()
	for p := 0; p < n; p++ {
		x := g.Point(p)
		for i := range diff {
			diff[i] = x[i] - d.mu[i]
		}
		out[p] = math.Exp(-0.5*d.quad(diff)) / d.norm
	}

	return field, nil
}

// quad is the unchecked xᵗ Σ⁻¹ x used by Evaluate.
func (d *Distribution) quad(x []float64) float64 {
	var acc, row float64
	var i, j, base int
	for i = 0; i < d.k; i++ {
		row = 0
		base = i * d.k
		for j = 0; j < d.k; j++ {
			row += d.invData[base+j] * x[j]
		}
		acc += x[i] * row
	}

	return acc
}

// Density evaluates N(μ, Σ) over every point of grid. It is New followed by
// Evaluate.
func Density(grid *ndgrid.Grid, mu []float64, sigma matrix.Matrix, opts ...Option) (*ndgrid.Field, error) {
	d, err := New(mu, sigma, opts...)
	if err != nil {
		return nil, err
	}

	return d.Evaluate(grid)
}

// Fit returns the normal distribution with the column means and the sample
// covariance (ddof=1) of X, rows being observations.
//
// Errors: those of matrix.Covariance (fewer than two rows) and of New.
func Fit(X matrix.Matrix, opts ...Option) (*Distribution, error) {
	cov, means, err := matrix.Covariance(X)
	if err != nil {
		return nil, gaussianErrorf(opFit, err)
	}
	d, err := New(means, cov, opts...)
	if err != nil {
		return nil, gaussianErrorf(opFit, err)
	}

	return d, nil
}
