// SPDX-License-Identifier: MIT

package measure

import (
	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/scorer"
)

// Options configures both entry points.
//
// Fields:
//   - Method   : KNN or GridSampling.
//   - ModelType: Classifier (log space) or Regressor (raw outputs).
//   - Epsilon  : grid half-width as a fraction of each feature's range.
//   - Samples  : neighbours K per instance.
//   - Res      : grid resolution.
//   - Alphas   : superposition coefficients.
//   - Seed     : grid random seed; 0 draws a clock-seeded stream.
//   - Range    : explicit feature range; takes precedence over fitted/inferred ones.
//   - Hook     : optional telemetry around the two Predict calls.
type Options struct {
	Method    sampler.Method
	ModelType scorer.ModelType
	Epsilon   float64
	Samples   int
	Res       int
	Alphas    scorer.Alphas
	Seed      int64
	Range     *featrange.Range
	Hook      scorer.Hook
}

// DefaultOptions returns gridSampling, classifier, epsilon 0.04, 10 samples,
// resolution 100 and alphas (0.5, 0.5).
func DefaultOptions() Options {
	return Options{
		Method:    sampler.GridSampling,
		ModelType: scorer.Classifier,
		Epsilon:   sampler.DefaultEpsilon,
		Samples:   sampler.DefaultSamples,
		Res:       sampler.DefaultRes,
		Alphas:    scorer.DefaultAlphas,
	}
}

// Validate reports configuration errors before any work is done.
func (o Options) Validate() error {
	if err := o.Method.Validate(); err != nil {
		return err
	}
	if err := o.scorerOptions().Validate(); err != nil {
		return err
	}

	return o.gridOptions().Validate()
}

func (o Options) gridOptions() sampler.GridOptions {
	return sampler.GridOptions{Epsilon: o.Epsilon, Samples: o.Samples, Res: o.Res, Seed: o.Seed}
}

func (o Options) scorerOptions() scorer.Options {
	return scorer.Options{ModelType: o.ModelType, Alphas: o.Alphas, Hook: o.Hook}
}
