// SPDX-License-Identifier: MIT

package gaussian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nbkit/matrix"
)

var (
	// ErrDimensionMismatch indicates that μ, Σ or an evaluation point disagree on k.
	ErrDimensionMismatch = errors.New("gaussian: dimension mismatch")

	// ErrNilGrid is returned by Evaluate and Density for a nil grid.
	ErrNilGrid = errors.New("gaussian: nil grid")

	// ErrSingularCovariance is returned when det Σ == 0.
	// It matches matrix.ErrSingular under errors.Is.
	ErrSingularCovariance = fmt.Errorf("gaussian: singular covariance: %w", matrix.ErrSingular)

	// ErrNotPositiveDefinite is returned when Σ has no Cholesky factor.
	// It matches matrix.ErrNotPositiveDefinite under errors.Is.
	ErrNotPositiveDefinite = fmt.Errorf("gaussian: covariance: %w", matrix.ErrNotPositiveDefinite)
)

const (
	opNew      = "New"
	opQuadForm = "QuadForm"
	opPDF      = "PDF"
	opLogPDF   = "LogPDF"
	opEvaluate = "Evaluate"
	opFit      = "Fit"
)

func gaussianErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
