// SPDX-License-Identifier: MIT

package measure

import (
	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/scorer"
	"github.com/katalvlaran/lvlin/tensor"
)

const opLinearity = "Linearity"

// Config is the per-call configuration of the stateless entry point.
type Config struct {
	Options

	// Train is the optional training set: required for KNN, used to infer
	// the feature range for GridSampling when Options.Range is nil.
	Train *tensor.Batch
}

// DefaultConfig returns DefaultOptions with no training set.
func DefaultConfig() Config { return Config{Options: DefaultOptions()} }

// Linearity scores p around every instance of x without keeping any state.
//
// Resolution of the sampling inputs:
//   - KNN: cfg.Train (ErrNoTraining when nil).
//   - GridSampling: cfg.Range if set, else the range inferred from cfg.Train,
//     else ErrNoRange.
func Linearity(p scorer.Predictor, x *tensor.Batch, cfg Config) ([]float64, error) {
	res, err := EvaluateOnce(p, x, cfg)
	if err != nil {
		return nil, err
	}

	return res.Scores, nil
}

// EvaluateOnce is Linearity returning the full scorer.Result.
func EvaluateOnce(p scorer.Predictor, x *tensor.Batch, cfg Config) (*scorer.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, measureErrorf(opLinearity, err)
	}
	if p == nil {
		return nil, measureErrorf(opLinearity, scorer.ErrNilPredictor)
	}
	if x == nil {
		return nil, measureErrorf(opLinearity, ErrNoInstances)
	}

	var s sampler.Sampler
	switch cfg.Method {
	case sampler.KNN:
		if cfg.Train == nil {
			return nil, measureErrorf(opLinearity, ErrNoTraining)
		}
		nearest, err := sampler.NewNearest(cfg.Train, cfg.Samples)
		if err != nil {
			return nil, measureErrorf(opLinearity, err)
		}
		s = nearest
	case sampler.GridSampling:
		fr := cfg.Range
		if fr == nil && cfg.Train != nil {
			inferred, err := featrange.Infer(cfg.Train)
			if err != nil {
				return nil, measureErrorf(opLinearity, err)
			}
			fr = inferred
		}
		if fr == nil {
			return nil, measureErrorf(opLinearity, ErrNoRange)
		}
		grid, err := sampler.NewGrid(fr, cfg.gridOptions())
		if err != nil {
			return nil, measureErrorf(opLinearity, err)
		}
		s = grid
	default:
		return nil, measureErrorf(opLinearity, sampler.ErrUnknownMethod)
	}

	nb, err := s.Sample(x)
	if err != nil {
		return nil, measureErrorf(opLinearity, err)
	}

	return scorer.Score(p, x, nb, cfg.scorerOptions())
}
