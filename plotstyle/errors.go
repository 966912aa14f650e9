// SPDX-License-Identifier: MIT

package plotstyle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStyle is returned by Validate, Load and Apply for unusable styles.
	ErrInvalidStyle = errors.New("plotstyle: invalid style")

	// ErrBadFormat is returned when a tick format does not hold exactly one
	// supported numeric verb.
	ErrBadFormat = errors.New("plotstyle: bad tick format")

	// ErrNilPlot is returned when a nil *plot.Plot is passed.
	ErrNilPlot = errors.New("plotstyle: nil plot")
)

func styleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
