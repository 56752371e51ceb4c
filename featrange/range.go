// SPDX-License-Identifier: MIT

package featrange

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlin/tensor"
)

const (
	opInfer  = "Infer"
	opNew    = "New"
	opDeltas = "Deltas"
)

// Bound is the closed interval [Min, Max] of one flattened feature.
type Bound struct {
	Min float64
	Max float64
}

// Width returns |Max - Min|.
func (b Bound) Width() float64 { return math.Abs(b.Max - b.Min) }

// Range holds one Bound per flattened feature dimension.
// Invariant: Min <= Max for every bound; len(bounds) >= 1.
type Range struct {
	bounds []Bound
}

// Infer computes the per-dimension min and max over every instance of train.
//
// Implementation:
//   - Stage 1: reject nil/empty batches.
//   - Stage 2: for each column j of the flattened N×D view, floats.Min/floats.Max.
//
// Complexity: O(N·D) time, O(N + D) extra space.
func Infer(train *tensor.Batch) (*Range, error) {
	if train == nil || train.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opInfer, ErrEmptyTraining)
	}

	m := train.Matrix()
	d := train.Dim()
	bounds := make([]Bound, d)
	col := make([]float64, train.Len())
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		bounds[j] = Bound{Min: floats.Min(col), Max: floats.Max(col)}
	}

	return &Range{bounds: bounds}, nil
}

// New validates and copies an explicit range given as [min, max] pairs.
func New(bounds [][2]float64) (*Range, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyRange)
	}
	out := make([]Bound, len(bounds))
	for i, b := range bounds {
		if isBad(b[0]) || isBad(b[1]) {
			return nil, rangeErrorf(opNew, i, ErrNonFinite)
		}
		if b[0] > b[1] {
			return nil, rangeErrorf(opNew, i, ErrInvertedBound)
		}
		out[i] = Bound{Min: b[0], Max: b[1]}
	}

	return &Range{bounds: out}, nil
}

// Unit returns a range of dim dimensions, each spanning [0, 1].
// Nothing in lvlin falls back to it implicitly; callers opt in by passing it.
func Unit(dim int) *Range {
	if dim < 1 {
		dim = 1
	}
	bounds := make([]Bound, dim)
	for i := range bounds {
		bounds[i] = Bound{Min: 0, Max: 1}
	}

	return &Range{bounds: bounds}
}

// Dim returns the number of flattened dimensions covered.
func (r *Range) Dim() int { return len(r.bounds) }

// Bounds returns a copy of the per-dimension bounds.
func (r *Range) Bounds() []Bound { return append([]Bound(nil), r.bounds...) }

// Matrix returns the range as a Dim×2 matrix: column 0 is min, column 1 is max.
func (r *Range) Matrix() *mat.Dense {
	m := mat.NewDense(len(r.bounds), 2, nil)
	for i, b := range r.bounds {
		m.Set(i, 0, b.Min)
		m.Set(i, 1, b.Max)
	}

	return m
}

// Deltas returns the grid step |max - min| / res of every dimension.
func (r *Range) Deltas(res int) ([]float64, error) {
	if res < 1 {
		return nil, fmt.Errorf("%s: %w", opDeltas, ErrBadResolution)
	}
	out := make([]float64, len(r.bounds))
	for i, b := range r.bounds {
		out[i] = b.Width()
	}
	floats.Scale(1/float64(res), out)

	return out, nil
}

func isBad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
