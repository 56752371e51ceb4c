// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has no dimensions or a non-positive extent.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrEmptyBatch is returned when a batch would hold zero instances.
	ErrEmptyBatch = errors.New("tensor: empty batch")

	// ErrShapeMismatch indicates that instances or batches disagree on their per-instance shape.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrOutOfRange indicates an instance index outside [0, Len()).
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrParse indicates a malformed record or a non-numeric field in CSV input.
	ErrParse = errors.New("tensor: cannot parse input")
)

// tensorErrorf attaches a call-site tag to a sentinel while keeping errors.Is working.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
