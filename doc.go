// SPDX-License-Identifier: MIT

// Package nbkit is a numeric toolkit for research notebooks: dense matrices,
// n-dimensional grids, standardization, multivariate normal densities,
// styled plots and approximate Bayesian computation.
//
// 🚀 What is in the box?
//
//	• Matrices: a row-major Dense with LU, Cholesky, inverse, determinant
//	  and column statistics (mean, centering, covariance)
//	• Grids: Linspace and ij-indexed Meshgrid with per-point fields
//	• Standardization: global or per-column z-scores, and their inverse
//	• Gaussians: k-variate normal PDF evaluated point-wise or on a grid
//	• Plot styling: one value describing fonts, TeX text and tick formats,
//	  applied to gonum/plot figures without global state
//	• ABC-SMC: a concurrent, reproducible sequential Monte Carlo sampler
//	  with binomial and linear-regression models
//
// Packages:
//
//	matrix/      - Dense storage, linear algebra, factorizations, statistics
//	ndgrid/      - Linspace, Meshgrid, Grid and Field
//	standardize/ - Standardize / Restore with Global and PerColumn modes
//	gaussian/    - Distribution, Density, Fit, NormalPDF
//	plotstyle/   - Style, Load, TickFormatter, FormatTicks
//	abcsmc/      - Model, Config, Run and the notebook models
//	cmd/nbkit    - command line front end (density, standardize, plot, smc)
//
// Quick example:
//
//	x, _ := ndgrid.Linspace(-3, 3, 61)
//	grid, _ := ndgrid.Meshgrid(x, x)
//	cov, _ := matrix.NewFromRows([][]float64{{1, 0}, {0, 1}})
//	density, _ := gaussian.Density(grid, []float64{0, 0}, cov)
//
//	go install github.com/katalvlaran/nbkit/cmd/nbkit@latest
package nbkit
