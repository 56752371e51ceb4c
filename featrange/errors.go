// SPDX-License-Identifier: MIT

package featrange

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTraining is returned when a range is inferred from a nil or empty training batch.
	ErrEmptyTraining = errors.New("featrange: empty training set")

	// ErrEmptyRange is returned when an explicit range has no dimensions.
	ErrEmptyRange = errors.New("featrange: range has no dimensions")

	// ErrInvertedBound indicates a dimension whose Min exceeds its Max.
	ErrInvertedBound = errors.New("featrange: min greater than max")

	// ErrNonFinite indicates a NaN or ±Inf bound.
	ErrNonFinite = errors.New("featrange: NaN or Inf bound")

	// ErrBadResolution is returned for a grid resolution < 1.
	ErrBadResolution = errors.New("featrange: resolution must be >= 1")
)

// rangeErrorf tags err with the operation and the offending dimension.
func rangeErrorf(op string, dim int, err error) error {
	return fmt.Errorf("%s(dim=%d): %w", op, dim, err)
}
