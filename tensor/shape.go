// SPDX-License-Identifier: MIT

package tensor

import (
	"strconv"
	"strings"
)

// Shape is the per-instance shape (input_shape) of a batch, e.g. {28, 28} for
// a grey-scale image or {4} for a tabular row.
type Shape []int

// Size returns the flattened dimension, the product of all extents.
// A Shape that fails Validate has Size 0.
func (s Shape) Size() int {
	if s.Validate() != nil {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Validate reports ErrBadShape for an empty shape or any extent <= 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrBadShape
	}
	for _, d := range s {
		if d <= 0 {
			return ErrBadShape
		}
	}

	return nil
}

// Equal reports whether s and o have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// String renders the shape as a tuple, e.g. "(2, 3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
