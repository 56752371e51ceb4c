// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlin/scorer"
	"github.com/katalvlaran/lvlin/tensor"
)

var (
	_ scorer.Predictor = (*Affine)(nil)
	_ scorer.Predictor = (*Softmax)(nil)
)

// linear holds y = W·x + b with W of shape C×D.
type linear struct {
	w *mat.Dense
	b []float64
}

func newLinear(w [][]float64, b []float64) (linear, error) {
	if len(w) == 0 || len(w[0]) == 0 {
		return linear{}, ErrBadWeights
	}
	d := len(w[0])
	flat := make([]float64, 0, len(w)*d)
	for _, row := range w {
		if len(row) != d {
			return linear{}, ErrBadWeights
		}
		flat = append(flat, row...)
	}
	if b == nil {
		b = make([]float64, len(w))
	}
	if len(b) != len(w) {
		return linear{}, ErrBadBias
	}

	return linear{w: mat.NewDense(len(w), d, flat), b: append([]float64(nil), b...)}, nil
}

// Outputs returns the number of output channels C.
func (l linear) Outputs() int {
	r, _ := l.w.Dims()
	return r
}

func (l linear) apply(x *tensor.Batch) (*mat.Dense, error) {
	if _, d := l.w.Dims(); x.Dim() != d {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputDim, x.Dim(), d)
	}
	var out mat.Dense
	out.Mul(x.Matrix(), l.w.T())
	for i := 0; i < x.Len(); i++ {
		floats.Add(out.RawRowView(i), l.b)
	}

	return &out, nil
}

// Affine is the regressor y = W·x + b.
type Affine struct{ linear }

// NewAffine builds an affine regressor from C rows of D weights and C biases (nil for zero).
func NewAffine(w [][]float64, b []float64) (*Affine, error) {
	l, err := newLinear(w, b)
	if err != nil {
		return nil, err
	}

	return &Affine{l}, nil
}

// Predict returns W·x + b for every instance.
func (a *Affine) Predict(x *tensor.Batch) (*mat.Dense, error) { return a.apply(x) }

// Softmax is the classifier p = softmax(W·x + b).
type Softmax struct{ linear }

// NewSoftmax builds a softmax classifier over C classes.
func NewSoftmax(w [][]float64, b []float64) (*Softmax, error) {
	l, err := newLinear(w, b)
	if err != nil {
		return nil, err
	}

	return &Softmax{l}, nil
}

// Predict returns class probabilities; each row sums to 1.
func (s *Softmax) Predict(x *tensor.Batch) (*mat.Dense, error) {
	out, err := s.apply(x)
	if err != nil {
		return nil, err
	}
	for i := 0; i < x.Len(); i++ {
		row := out.RawRowView(i)
		lse := floats.LogSumExp(row)
		for j, z := range row {
			row[j] = math.Exp(z - lse)
		}
	}

	return out, nil
}
