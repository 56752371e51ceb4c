// SPDX-License-Identifier: MIT

package featrange_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/tensor"
)

func TestInfer_Diagonal(t *testing.T) {
	train, err := tensor.FromRows(nil, [][]float64{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)

	r, err := featrange.Infer(train)
	require.NoError(t, err)
	assert.Equal(t, []featrange.Bound{{Min: 0, Max: 2}, {Min: 0, Max: 2}}, r.Bounds())

	m := r.Matrix()
	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2.0, m.At(1, 1))
}

func TestInfer_FlattensHigherRank(t *testing.T) {
	train, err := tensor.NewBatch(tensor.Shape{2, 2}, []float64{
		1, -1, 5, 0,
		3, 2, -5, 0,
	})
	require.NoError(t, err)

	r, err := featrange.Infer(train)
	require.NoError(t, err)
	require.Equal(t, 4, r.Dim())
	assert.Equal(t, featrange.Bound{Min: 1, Max: 3}, r.Bounds()[0])
	assert.Equal(t, featrange.Bound{Min: -1, Max: 2}, r.Bounds()[1])
	assert.Equal(t, featrange.Bound{Min: -5, Max: 5}, r.Bounds()[2])
	assert.Equal(t, featrange.Bound{Min: 0, Max: 0}, r.Bounds()[3])
}

func TestInfer_Empty(t *testing.T) {
	_, err := featrange.Infer(nil)
	assert.ErrorIs(t, err, featrange.ErrEmptyTraining)
}

func TestNew_Validation(t *testing.T) {
	_, err := featrange.New(nil)
	assert.ErrorIs(t, err, featrange.ErrEmptyRange)

	_, err = featrange.New([][2]float64{{0, 1}, {2, 1}})
	assert.ErrorIs(t, err, featrange.ErrInvertedBound)

	_, err = featrange.New([][2]float64{{math.NaN(), 1}})
	assert.ErrorIs(t, err, featrange.ErrNonFinite)

	r, err := featrange.New([][2]float64{{-1, 1}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Dim())
}

func TestDeltas(t *testing.T) {
	r, err := featrange.New([][2]float64{{0, 2}, {-1, 1}, {4, 4}})
	require.NoError(t, err)

	d, err := r.Deltas(100)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.02, 0.02, 0}, d, 1e-15)

	_, err = r.Deltas(0)
	assert.ErrorIs(t, err, featrange.ErrBadResolution)
}

func TestUnit(t *testing.T) {
	r := featrange.Unit(3)
	assert.Equal(t, 3, r.Dim())
	for _, b := range r.Bounds() {
		assert.Equal(t, featrange.Bound{Min: 0, Max: 1}, b)
	}
}
