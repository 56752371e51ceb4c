// SPDX-License-Identifier: MIT

package scorer

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/tensor"
)

const opScore = "Score"

// Score computes the linearity score of every instance of x against its neighbourhood nb.
//
// Implementation:
//   - Stage 1: validate predictor, options and that nb holds K rows per instance of x.
//   - Stage 2: build the N·K superpositions α₀·x_i + α₁·s_ik; Predict once (out_of_sum).
//   - Stage 3: Predict once over concat(x, samples); combine into sum_of_out.
//   - Stage 4: classifier outputs go through log(p + LogFloor) before combining.
//   - Stage 5: score_i = mean over k and channels of the squared difference.
//
// Errors:
//   - ErrNilPredictor, ErrNeighborhoodMismatch, ErrUnknownModelType, ErrBadAlphas before any Predict call.
//   - ErrPredict (wrapping the predictor's error), ErrPredictRows, ErrPredictChannels, ErrNonFinite after.
//
// Complexity: O(N·K·(D + C)) plus the two Predict calls.
func Score(p Predictor, x *tensor.Batch, nb *sampler.Neighborhood, opts Options) (*Result, error) {
	if p == nil {
		return nil, scoreErrorf(opScore, ErrNilPredictor)
	}
	if err := opts.Validate(); err != nil {
		return nil, scoreErrorf(opScore, err)
	}
	if x == nil || nb == nil || nb.Samples == nil || nb.K < 1 ||
		nb.Samples.Len() != x.Len()*nb.K || nb.Samples.Dim() != x.Dim() {
		return nil, scoreErrorf(opScore, ErrNeighborhoodMismatch)
	}

	n, k, d := x.Len(), nb.K, x.Dim()
	a0, a1 := opts.Alphas[0], opts.Alphas[1]

	// Superposition of inputs, instance-major.
	buf := make([]float64, n*k*d)
	for r := 0; r < n*k; r++ {
		dst := buf[r*d : (r+1)*d]
		floats.ScaleTo(dst, a0, x.RawRow(r/k))
		floats.AddScaled(dst, a1, nb.Samples.RawRow(r))
	}
	combined, err := tensor.Own(x.Shape(), buf)
	if err != nil {
		return nil, scoreErrorf(opScore, err)
	}

	outSum, err := predict(p, opts.Hook, StageCombined, combined)
	if err != nil {
		return nil, err
	}

	components, err := tensor.Concat(x, nb.Samples)
	if err != nil {
		return nil, scoreErrorf(opScore, err)
	}
	outs, err := predict(p, opts.Hook, StageComponents, components)
	if err != nil {
		return nil, err
	}

	_, c := outSum.Dims()
	if _, c2 := outs.Dims(); c2 != c {
		return nil, scoreErrorf(opScore, ErrPredictChannels)
	}

	if opts.ModelType == Classifier {
		toLogSpace(outSum)
		toLogSpace(outs)
	}

	// Superposition of outputs: rows 0..n-1 of outs are f(x_i), rows n.. are f(s_ik).
	sumOut := mat.NewDense(n*k, c, nil)
	for r := 0; r < n*k; r++ {
		dst := sumOut.RawRowView(r)
		floats.ScaleTo(dst, a0, outs.RawRowView(r/k))
		floats.AddScaled(dst, a1, outs.RawRowView(n+r))
	}

	scores := make([]float64, n)
	diff := make([]float64, c)
	for r := 0; r < n*k; r++ {
		floats.SubTo(diff, outSum.RawRowView(r), sumOut.RawRowView(r))
		scores[r/k] += floats.Dot(diff, diff)
	}
	norm := 1 / float64(k*c)
	for i := range scores {
		scores[i] *= norm
		if math.IsNaN(scores[i]) || math.IsInf(scores[i], 0) {
			return nil, scoreErrorf(opScore, ErrNonFinite)
		}
	}

	return &Result{Scores: scores, OutOfSum: outSum, SumOfOut: sumOut}, nil
}

// predict runs one Predict call with telemetry and checks the row count.
// The returned matrix is a private copy the caller may transform in place.
func predict(p Predictor, hook Hook, stage Stage, in *tensor.Batch) (*mat.Dense, error) {
	rows := in.Len()
	hook.emit(Event{Stage: stage, Phase: PhaseStart, Rows: rows, InputShape: in.Shape()})

	start := time.Now()
	out, err := p.Predict(in)
	done := Event{Stage: stage, Phase: PhaseDone, Rows: rows, InputShape: in.Shape(), Elapsed: time.Since(start), Err: err}
	if out != nil {
		_, done.Channels = out.Dims()
	}
	hook.emit(done)

	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w: %w", opScore, stage, ErrPredict, err)
	}
	if out == nil {
		return nil, scoreErrorf(opScore+"("+stage.String()+")", ErrPredictRows)
	}
	if r, c := out.Dims(); r != rows || c == 0 {
		return nil, scoreErrorf(opScore+"("+stage.String()+")", ErrPredictRows)
	}

	return mat.DenseCopyOf(out), nil
}

// toLogSpace replaces every element v of m with log(v + LogFloor).
func toLogSpace(m *mat.Dense) {
	m.Apply(func(_, _ int, v float64) float64 { return math.Log(v + LogFloor) }, m)
}
