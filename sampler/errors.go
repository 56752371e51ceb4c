// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod is a configuration error: the method name or value is not KNN or GridSampling.
	ErrUnknownMethod = errors.New("sampler: unknown sampling method")

	// ErrNoTraining is returned when nearest-neighbour sampling has no training set.
	ErrNoTraining = errors.New("sampler: knn requires a training set")

	// ErrTooFewPoints is returned when more neighbours are requested than training points exist.
	ErrTooFewPoints = errors.New("sampler: fewer training points than requested samples")

	// ErrNoRange is returned when grid sampling has no feature range.
	ErrNoRange = errors.New("sampler: grid sampling requires a feature range")

	// ErrBadSamples is returned for a sample count < 1.
	ErrBadSamples = errors.New("sampler: number of samples must be >= 1")

	// ErrBadEpsilon is returned for a negative or non-finite epsilon.
	ErrBadEpsilon = errors.New("sampler: epsilon must be finite and >= 0")

	// ErrBadResolution is returned for a grid resolution < 1.
	ErrBadResolution = errors.New("sampler: resolution must be >= 1")

	// ErrDimMismatch indicates instances whose flattened dimension differs from the
	// training set or the feature range.
	ErrDimMismatch = errors.New("sampler: instance dimension mismatch")
)

func samplerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
