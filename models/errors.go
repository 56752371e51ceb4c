// SPDX-License-Identifier: MIT

package models

import "errors"

var (
	// ErrBadWeights is returned when the weight matrix is empty or ragged.
	ErrBadWeights = errors.New("models: invalid weight matrix")

	// ErrBadBias is returned when the bias length differs from the number of outputs.
	ErrBadBias = errors.New("models: bias length must equal number of outputs")

	// ErrInputDim is returned when an instance's flattened dimension differs from the weight width.
	ErrInputDim = errors.New("models: input dimension mismatch")
)
