// SPDX-License-Identifier: MIT

package tensor

import (
	"gonum.org/v1/gonum/mat"
)

// Batch is an ordered sequence of instances sharing one Shape.
// Row i of the backing matrix is instance i flattened row-major.
type Batch struct {
	shape Shape      // per-instance shape (input_shape)
	data  *mat.Dense // N × shape.Size(), row-major
}

// NewBatch copies data into a batch of len(data)/shape.Size() instances.
//
// Errors:
//   - ErrBadShape if shape is invalid.
//   - ErrEmptyBatch if data is empty.
//   - ErrShapeMismatch if len(data) is not a multiple of shape.Size().
func NewBatch(shape Shape, data []float64) (*Batch, error) {
	buf := make([]float64, len(data))
	copy(buf, data)

	b, err := Own(shape, buf)
	if err != nil {
		return nil, tensorErrorf("NewBatch", err)
	}

	return b, nil
}

// Own is NewBatch without the defensive copy: the batch takes ownership of
// data and the caller must not touch the slice afterwards. Samplers use it
// to hand freshly allocated buffers over without a second copy.
func Own(shape Shape, data []float64) (*Batch, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyBatch
	}
	d := shape.Size()
	if len(data)%d != 0 {
		return nil, ErrShapeMismatch
	}

	return &Batch{shape: shape.Clone(), data: mat.NewDense(len(data)/d, d, data)}, nil
}

// FromRows builds a batch where every row is one flattened instance.
// A nil shape is inferred as the flat shape {len(rows[0])}.
func FromRows(shape Shape, rows [][]float64) (*Batch, error) {
	if len(rows) == 0 {
		return nil, tensorErrorf("FromRows", ErrEmptyBatch)
	}
	if shape == nil {
		shape = Shape{len(rows[0])}
	}
	if err := shape.Validate(); err != nil {
		return nil, tensorErrorf("FromRows", err)
	}

	d := shape.Size()
	buf := make([]float64, 0, len(rows)*d)
	for _, r := range rows {
		if len(r) != d {
			return nil, tensorErrorf("FromRows", ErrShapeMismatch)
		}
		buf = append(buf, r...)
	}

	return &Batch{shape: shape.Clone(), data: mat.NewDense(len(rows), d, buf)}, nil
}

// FromDense copies a gonum matrix (one instance per row) into a batch.
// A nil shape is inferred as {cols}.
func FromDense(shape Shape, m mat.Matrix) (*Batch, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, tensorErrorf("FromDense", ErrEmptyBatch)
	}
	if shape == nil {
		shape = Shape{c}
	}
	if err := shape.Validate(); err != nil {
		return nil, tensorErrorf("FromDense", err)
	}
	if shape.Size() != c {
		return nil, tensorErrorf("FromDense", ErrShapeMismatch)
	}

	return &Batch{shape: shape.Clone(), data: mat.DenseCopyOf(m)}, nil
}

// Len returns the number of instances N.
func (b *Batch) Len() int {
	r, _ := b.data.Dims()
	return r
}

// Dim returns the flattened per-instance dimension.
func (b *Batch) Dim() int {
	_, c := b.data.Dims()
	return c
}

// Shape returns a copy of the per-instance shape.
func (b *Batch) Shape() Shape { return b.shape.Clone() }

// Matrix exposes the flattened N×Dim view. Callers must treat it as read-only.
func (b *Batch) Matrix() mat.Matrix { return b.data }

// Row returns a copy of flattened instance i.
func (b *Batch) Row(i int) ([]float64, error) {
	if i < 0 || i >= b.Len() {
		return nil, tensorErrorf("Row", ErrOutOfRange)
	}
	out := make([]float64, b.Dim())
	copy(out, b.data.RawRowView(i))

	return out, nil
}

// RawRow returns flattened instance i without copying.
// The index is not checked beyond gonum's own bounds panic; the slice must not be modified.
func (b *Batch) RawRow(i int) []float64 { return b.data.RawRowView(i) }

// Slice returns a copy of instances [i, j).
func (b *Batch) Slice(i, j int) (*Batch, error) {
	if i < 0 || j > b.Len() || i >= j {
		return nil, tensorErrorf("Slice", ErrOutOfRange)
	}

	return &Batch{shape: b.shape.Clone(), data: mat.DenseCopyOf(b.data.Slice(i, j, 0, b.Dim()))}, nil
}

// Clone returns a deep copy of b.
func (b *Batch) Clone() *Batch {
	return &Batch{shape: b.shape.Clone(), data: mat.DenseCopyOf(b.data)}
}

// Repeat returns a batch of N·k rows where instance i occupies rows
// [i·k, (i+1)·k). Used to line the centres up with their neighbourhoods.
func (b *Batch) Repeat(k int) (*Batch, error) {
	if k <= 0 {
		return nil, tensorErrorf("Repeat", ErrEmptyBatch)
	}
	n, d := b.Len(), b.Dim()
	buf := make([]float64, 0, n*k*d)
	for i := 0; i < n; i++ {
		row := b.data.RawRowView(i)
		for r := 0; r < k; r++ {
			buf = append(buf, row...)
		}
	}

	return &Batch{shape: b.shape.Clone(), data: mat.NewDense(n*k, d, buf)}, nil
}

// Concat stacks a on top of b. Both must share the same Shape.
func Concat(a, b *Batch) (*Batch, error) {
	if !a.shape.Equal(b.shape) {
		return nil, tensorErrorf("Concat", ErrShapeMismatch)
	}
	var out mat.Dense
	out.Stack(a.data, b.data)

	return &Batch{shape: a.shape.Clone(), data: &out}, nil
}
