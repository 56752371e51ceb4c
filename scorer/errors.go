// SPDX-License-Identifier: MIT

package scorer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModelType is a configuration error: neither Classifier nor Regressor.
	ErrUnknownModelType = errors.New("scorer: unknown model type")

	// ErrBadAlphas indicates a negative or non-finite superposition coefficient.
	ErrBadAlphas = errors.New("scorer: alphas must be finite and non-negative")

	// ErrNilPredictor is returned when no predictor is supplied.
	ErrNilPredictor = errors.New("scorer: nil predictor")

	// ErrNeighborhoodMismatch indicates a neighbourhood that does not belong to the instance batch.
	ErrNeighborhoodMismatch = errors.New("scorer: neighbourhood does not match instances")

	// ErrPredict wraps any error returned by the caller's predictor.
	ErrPredict = errors.New("scorer: predictor failed")

	// ErrPredictRows indicates a predictor returning a different number of rows than requested.
	ErrPredictRows = errors.New("scorer: predictor returned wrong number of rows")

	// ErrPredictChannels indicates the two predictor calls disagree on the output width.
	ErrPredictChannels = errors.New("scorer: predictor output width changed between calls")

	// ErrNonFinite indicates NaN or ±Inf in the (transformed) outputs.
	ErrNonFinite = errors.New("scorer: NaN or Inf in model outputs")
)

func scoreErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
