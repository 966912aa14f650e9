// SPDX-License-Identifier: MIT

package standardize

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroVariance reports a zero standard deviation (globally or in some
	// column). The accompanying result holds NaN/±Inf where the division by
	// zero happened.
	ErrZeroVariance = errors.New("standardize: zero variance")

	// ErrTooFewSamples is returned when the sample standard deviation is
	// undefined: fewer than two entries (Global) or two rows (PerColumn).
	ErrTooFewSamples = errors.New("standardize: need at least two samples")

	// ErrBadMoments is returned by Restore when the moments do not fit the matrix.
	ErrBadMoments = errors.New("standardize: moments do not match matrix")
)

const (
	opStandardize = "Standardize"
	opRestore     = "Restore"
)

func standardizeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
