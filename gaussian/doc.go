// SPDX-License-Identifier: MIT

// Package gaussian evaluates univariate and multivariate normal densities.
//
// The multivariate density of a k-vector x with mean μ and covariance Σ is
//
//	p(x) = exp(-½ (x-μ)ᵗ Σ⁻¹ (x-μ)) / sqrt((2π)^k · det Σ)
//
// A Distribution precomputes det Σ, Σ⁻¹ and the normalizing constant once, so
// evaluating it over a large ndgrid.Grid costs one O(k²) quadratic form per
// point. Construction fails loudly on inputs that cannot define a density:
// a singular Σ (det Σ = 0) yields ErrSingularCovariance and a Σ that is not
// positive definite yields ErrNotPositiveDefinite. WithoutDefinitenessCheck
// drops the second check for callers that want the raw formula.
//
// Usage:
//
//	xs, _ := ndgrid.Linspace(-3, 3, 61)
//	grid, _ := ndgrid.Meshgrid(xs, xs)
//	sigma, _ := matrix.NewFromRows([][]float64{{1, 0.5}, {0.5, 1}})
//	field, err := gaussian.Density(grid, []float64{0, 0}, sigma)
package gaussian
