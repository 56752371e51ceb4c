// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFit is returned when KNN scoring is requested before Fit.
	ErrNotFit = errors.New("measure: knn requires Fit to be called first")

	// ErrNoTraining is returned by Linearity when KNN has no training set.
	ErrNoTraining = errors.New("measure: knn requires a training set")

	// ErrNoRange is returned when grid sampling has neither an explicit,
	// a fitted, nor an inferable feature range.
	ErrNoRange = errors.New("measure: grid sampling requires a feature range or training set")

	// ErrShapeMismatch indicates instances whose shape differs from the fitted training shape.
	ErrShapeMismatch = errors.New("measure: instance shape differs from fitted shape")

	// ErrNoInstances is returned for a nil instance batch.
	ErrNoInstances = errors.New("measure: nil instance batch")
)

func measureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
