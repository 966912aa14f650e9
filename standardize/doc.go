// SPDX-License-Identifier: MIT

// Package standardize implements the z-transform z = (x - mean) / std of an
// observation-by-feature matrix and its inverse.
//
// Two statistics are supported and the caller chooses explicitly:
//
//   - Global (default): one scalar mean and one scalar sample standard
//     deviation (ddof=1) over every entry of the matrix. Columns are NOT
//     individually brought to zero mean and unit variance.
//   - PerColumn: a mean and a sample standard deviation per column, computed
//     along the observation axis. Every column comes out with mean 0 and
//     sample variance 1.
//
// Standardize returns the Moments it used; Restore applies them in reverse,
// so Restore(Standardize(X)) reproduces X within rounding.
//
// A zero standard deviation is not hidden: the division still happens
// (0/0 gives NaN, x/0 gives ±Inf) and ErrZeroVariance is returned together
// with the populated result.
package standardize
