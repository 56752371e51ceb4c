// SPDX-License-Identifier: MIT

package scorer_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlin/models"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/scorer"
	"github.com/katalvlaran/lvlin/tensor"
)

const tol = 1e-9

// neighborhood wraps explicit rows as a K-per-instance neighbourhood.
func neighborhood(t *testing.T, k int, rows [][]float64) *sampler.Neighborhood {
	t.Helper()
	b, err := tensor.FromRows(nil, rows)
	require.NoError(t, err)

	return &sampler.Neighborhood{Samples: b, K: k}
}

func batch(t *testing.T, rows [][]float64) *tensor.Batch {
	t.Helper()
	b, err := tensor.FromRows(nil, rows)
	require.NoError(t, err)

	return b
}

// perRow applies f to every flattened instance and returns an M×C matrix.
func perRow(c int, f func(v []float64) []float64) scorer.PredictorFunc {
	return func(x *tensor.Batch) (*mat.Dense, error) {
		out := mat.NewDense(x.Len(), c, nil)
		for i := 0; i < x.Len(); i++ {
			out.SetRow(i, f(x.RawRow(i)))
		}
		return out, nil
	}
}

// randomSetup draws n centres and k neighbours each in dimension d.
func randomSetup(t *testing.T, seed int64, n, k, d int) (*tensor.Batch, *sampler.Neighborhood) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	draw := func(m int) [][]float64 {
		rows := make([][]float64, m)
		for i := range rows {
			rows[i] = make([]float64, d)
			for j := range rows[i] {
				rows[i][j] = r.NormFloat64()
			}
		}
		return rows
	}

	return batch(t, draw(n)), neighborhood(t, k, draw(n*k))
}

func TestScore_LinearRegressorIsZeroForAnyAlphas(t *testing.T) {
	x, nb := randomSetup(t, 1, 4, 6, 3)
	lin, err := models.NewAffine([][]float64{{1, -2, 0.5}, {0, 3, 1}}, nil)
	require.NoError(t, err)

	for _, a := range []scorer.Alphas{{0.5, 0.5}, {0.1, 2.7}, {0, 1}, {3, 0}} {
		opts := scorer.DefaultOptions()
		opts.ModelType = scorer.Regressor
		opts.Alphas = a

		res, err := scorer.Score(lin, x, nb, opts)
		require.NoError(t, err)
		for _, s := range res.Scores {
			assert.InDelta(t, 0, s, tol, "alphas %v", a)
		}
	}
}

func TestScore_AffineRegressorIsZeroWhenAlphasSumToOne(t *testing.T) {
	x, nb := randomSetup(t, 2, 3, 5, 2)
	aff, err := models.NewAffine([][]float64{{2, 1}}, []float64{7})
	require.NoError(t, err)

	for _, a := range []scorer.Alphas{{0.5, 0.5}, {0.25, 0.75}} {
		opts := scorer.DefaultOptions()
		opts.ModelType = scorer.Regressor
		opts.Alphas = a
		res, err := scorer.Score(aff, x, nb, opts)
		require.NoError(t, err)
		for _, s := range res.Scores {
			assert.InDelta(t, 0, s, tol)
		}
	}
}

func TestScore_QuadraticRegressorExactValue(t *testing.T) {
	x := batch(t, [][]float64{{0}})
	nb := neighborhood(t, 1, [][]float64{{2}})
	sq := perRow(1, func(v []float64) []float64 { return []float64{v[0] * v[0]} })

	opts := scorer.DefaultOptions()
	opts.ModelType = scorer.Regressor
	res, err := scorer.Score(sq, x, nb, opts)
	require.NoError(t, err)

	// f(1) = 1 against 0.5·f(0) + 0.5·f(2) = 2.
	assert.InDelta(t, 1.0, res.Scores[0], tol)
	assert.InDelta(t, 1.0, res.OutOfSum.At(0, 0), tol)
	assert.InDelta(t, 2.0, res.SumOfOut.At(0, 0), tol)
}

func TestScore_ClassifierUsesLogSpace(t *testing.T) {
	x := batch(t, [][]float64{{0.2}})
	nb := neighborhood(t, 1, [][]float64{{0.6}})
	prob := perRow(1, func(v []float64) []float64 { return []float64{v[0]} })

	res, err := scorer.Score(prob, x, nb, scorer.DefaultOptions())
	require.NoError(t, err)

	lg := func(p float64) float64 { return math.Log(p + scorer.LogFloor) }
	want := lg(0.4) - 0.5*(lg(0.2)+lg(0.6))
	assert.InDelta(t, want*want, res.Scores[0], tol)
}

func TestScore_ClassifierZeroProbabilityIsFloored(t *testing.T) {
	x := batch(t, [][]float64{{1, 2}})
	nb := neighborhood(t, 2, [][]float64{{0, 0}, {3, 3}})
	constant := perRow(2, func([]float64) []float64 { return []float64{0, 1} })

	res, err := scorer.Score(constant, x, nb, scorer.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Scores[0], tol)
	assert.InDelta(t, math.Log(scorer.LogFloor), res.OutOfSum.At(0, 0), tol)
}

func TestScore_NonNegative(t *testing.T) {
	x, nb := randomSetup(t, 5, 8, 7, 4)
	soft, err := models.NewSoftmax([][]float64{{1, -1, 2, 0}, {0.5, 0.5, -3, 1}, {-2, 1, 0, 1}}, nil)
	require.NoError(t, err)

	res, err := scorer.Score(soft, x, nb, scorer.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Scores, 8)
	var positive bool
	for _, s := range res.Scores {
		assert.GreaterOrEqual(t, s, 0.0)
		positive = positive || s > tol
	}
	assert.True(t, positive, "softmax log-probabilities are not additive")
}

func TestScore_TwoPredictCalls(t *testing.T) {
	x, nb := randomSetup(t, 9, 5, 4, 2)
	var rows []int
	counting := scorer.PredictorFunc(func(in *tensor.Batch) (*mat.Dense, error) {
		rows = append(rows, in.Len())
		return mat.NewDense(in.Len(), 1, nil), nil
	})

	opts := scorer.DefaultOptions()
	opts.ModelType = scorer.Regressor
	_, err := scorer.Score(counting, x, nb, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{5 * 4, 5 + 5*4}, rows)
}

func TestScore_HookEvents(t *testing.T) {
	x, nb := randomSetup(t, 4, 2, 3, 2)
	lin, err := models.NewAffine([][]float64{{1, 1}, {1, 0}, {0, 1}}, nil)
	require.NoError(t, err)

	var events []scorer.Event
	opts := scorer.DefaultOptions()
	opts.ModelType = scorer.Regressor
	opts.Hook = func(ev scorer.Event) { events = append(events, ev) }

	_, err = scorer.Score(lin, x, nb, opts)
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, scorer.StageCombined, events[0].Stage)
	assert.Equal(t, scorer.PhaseStart, events[0].Phase)
	assert.Equal(t, 6, events[0].Rows)
	assert.Equal(t, tensor.Shape{2}, events[0].InputShape)

	assert.Equal(t, scorer.PhaseDone, events[1].Phase)
	assert.Equal(t, 3, events[1].Channels)
	assert.NoError(t, events[1].Err)

	assert.Equal(t, scorer.StageComponents, events[2].Stage)
	assert.Equal(t, 8, events[3].Rows)
	assert.Equal(t, "components", events[3].Stage.String())
	assert.Equal(t, "done", events[3].Phase.String())
}

func TestScore_Validation(t *testing.T) {
	x, nb := randomSetup(t, 3, 2, 2, 2)
	zero := perRow(1, func([]float64) []float64 { return []float64{0} })

	_, err := scorer.Score(nil, x, nb, scorer.DefaultOptions())
	assert.ErrorIs(t, err, scorer.ErrNilPredictor)

	bad := scorer.DefaultOptions()
	bad.Alphas = scorer.Alphas{-1, 0.5}
	_, err = scorer.Score(zero, x, nb, bad)
	assert.ErrorIs(t, err, scorer.ErrBadAlphas)

	bad = scorer.DefaultOptions()
	bad.ModelType = scorer.ModelType(9)
	_, err = scorer.Score(zero, x, nb, bad)
	assert.ErrorIs(t, err, scorer.ErrUnknownModelType)

	short := neighborhood(t, 3, [][]float64{{0, 0}, {1, 1}, {2, 2}})
	_, err = scorer.Score(zero, x, short, scorer.DefaultOptions())
	assert.ErrorIs(t, err, scorer.ErrNeighborhoodMismatch)
}

func TestScore_PredictorFailures(t *testing.T) {
	x, nb := randomSetup(t, 3, 2, 2, 2)
	boom := errors.New("model offline")

	failing := scorer.PredictorFunc(func(*tensor.Batch) (*mat.Dense, error) { return nil, boom })
	_, err := scorer.Score(failing, x, nb, scorer.DefaultOptions())
	assert.ErrorIs(t, err, scorer.ErrPredict)
	assert.ErrorIs(t, err, boom)

	wrongRows := scorer.PredictorFunc(func(*tensor.Batch) (*mat.Dense, error) { return mat.NewDense(1, 1, nil), nil })
	_, err = scorer.Score(wrongRows, x, nb, scorer.DefaultOptions())
	assert.ErrorIs(t, err, scorer.ErrPredictRows)

	var calls int
	widening := scorer.PredictorFunc(func(in *tensor.Batch) (*mat.Dense, error) {
		calls++
		return mat.NewDense(in.Len(), calls, nil), nil
	})
	opts := scorer.DefaultOptions()
	opts.ModelType = scorer.Regressor
	_, err = scorer.Score(widening, x, nb, opts)
	assert.ErrorIs(t, err, scorer.ErrPredictChannels)

	negative := perRow(1, func([]float64) []float64 { return []float64{-1} })
	_, err = scorer.Score(negative, x, nb, scorer.DefaultOptions())
	assert.ErrorIs(t, err, scorer.ErrNonFinite)
}

func TestParseModelType(t *testing.T) {
	mt, err := scorer.ParseModelType("Regressor")
	require.NoError(t, err)
	assert.Equal(t, scorer.Regressor, mt)

	var got scorer.ModelType
	require.NoError(t, got.UnmarshalText([]byte("classifier")))
	assert.Equal(t, scorer.Classifier, got)

	_, err = scorer.ParseModelType("ranker")
	assert.ErrorIs(t, err, scorer.ErrUnknownModelType)
}
