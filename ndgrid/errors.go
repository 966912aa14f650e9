// SPDX-License-Identifier: MIT

package ndgrid

import "errors"

var (
	// ErrEmptyAxis is returned when Meshgrid receives no axes or an empty axis.
	ErrEmptyAxis = errors.New("ndgrid: empty axis")

	// ErrBadShape is returned when a shape is empty, has a non-positive
	// dimension, or does not match the length of the backing data.
	ErrBadShape = errors.New("ndgrid: invalid shape")

	// ErrBadCount is returned by Linspace for a non-positive sample count or
	// non-finite endpoints.
	ErrBadCount = errors.New("ndgrid: invalid sample count")
)
