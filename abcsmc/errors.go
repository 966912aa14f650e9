// SPDX-License-Identifier: MIT

package abcsmc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by Config.Validate and Run.
	ErrInvalidConfig = errors.New("abcsmc: invalid config")

	// ErrInvalidModel is returned by model constructors and by Run for a nil
	// or dimensionless model.
	ErrInvalidModel = errors.New("abcsmc: invalid model")

	// ErrMaxAttempts is returned when a particle is not accepted within
	// Config.MaxAttempts proposals.
	ErrMaxAttempts = errors.New("abcsmc: max attempts exceeded")

	// ErrDegenerateWeights is returned when a round's weights sum to zero or
	// are not finite.
	ErrDegenerateWeights = errors.New("abcsmc: degenerate weights")

	// ErrBadInput is returned by the CSV readers.
	ErrBadInput = errors.New("abcsmc: bad input")
)

const (
	opRun      = "Run"
	opValidate = "Validate"
	opRead     = "Read"
	opWrite    = "Write"
)

func smcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
