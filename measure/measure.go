// SPDX-License-Identifier: MIT

package measure

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/scorer"
	"github.com/katalvlaran/lvlin/tensor"
)

const (
	opNew      = "New"
	opFit      = "Fit"
	opEvaluate = "Evaluate"
)

// Measure scores models around instances with a fixed configuration and
// optional fitted training data.
type Measure struct {
	opts Options

	mu    sync.RWMutex
	state State

	rndMu sync.Mutex
	rnd   *rand.Rand // grid stream shared by successive Score calls
}

// New validates opts and returns an Unfit measure.
func New(opts Options) (*Measure, error) {
	if err := opts.Validate(); err != nil {
		return nil, measureErrorf(opNew, err)
	}

	return &Measure{opts: opts, state: Unfit{}, rnd: sampler.NewRand(opts.Seed)}, nil
}

// Options returns the configuration the measure was built with.
func (m *Measure) Options() Options { return m.opts }

// State returns the current fit state (Unfit or Fit).
func (m *Measure) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// IsFit reports whether Fit has succeeded at least once.
func (m *Measure) IsFit() bool {
	_, ok := m.State().(Fit)
	return ok
}

// Fit stores train, infers its feature range and records its shape. Under
// KNN the kd-tree index is built here once. Calling Fit again replaces the
// fitted data; a Measure never goes back to Unfit. On error the state is unchanged.
func (m *Measure) Fit(train *tensor.Batch) error {
	if train == nil {
		return measureErrorf(opFit, ErrNoTraining)
	}
	fr, err := featrange.Infer(train)
	if err != nil {
		return measureErrorf(opFit, err)
	}

	f := Fit{Train: train, Range: fr, Shape: train.Shape()}
	if m.opts.Method == sampler.KNN {
		if f.nearest, err = sampler.NewNearest(train, m.opts.Samples); err != nil {
			return measureErrorf(opFit, err)
		}
	}

	m.mu.Lock()
	m.state = f
	m.mu.Unlock()

	return nil
}

// Score returns one linearity score per instance of x.
func (m *Measure) Score(p scorer.Predictor, x *tensor.Batch) ([]float64, error) {
	res, err := m.Evaluate(p, x)
	if err != nil {
		return nil, err
	}

	return res.Scores, nil
}

// Evaluate is Score returning the full scorer.Result.
//
// Preconditions, all checked before sampling or predicting:
//   - p and x are non-nil;
//   - when Fit, x has the fitted shape (ErrShapeMismatch);
//   - KNN requires Fit (ErrNotFit);
//   - GridSampling requires Options.Range or Fit (ErrNoRange).
func (m *Measure) Evaluate(p scorer.Predictor, x *tensor.Batch) (*scorer.Result, error) {
	if p == nil {
		return nil, measureErrorf(opEvaluate, scorer.ErrNilPredictor)
	}
	if x == nil {
		return nil, measureErrorf(opEvaluate, ErrNoInstances)
	}

	var fit *Fit
	switch s := m.State().(type) {
	case Fit:
		if !x.Shape().Equal(s.Shape) {
			return nil, measureErrorf(opEvaluate, ErrShapeMismatch)
		}
		fit = &s
	case Unfit:
	}

	var (
		nb  *sampler.Neighborhood
		err error
	)
	switch m.opts.Method {
	case sampler.KNN:
		if fit == nil {
			return nil, measureErrorf(opEvaluate, ErrNotFit)
		}
		nb, err = fit.nearest.Sample(x)
	case sampler.GridSampling:
		fr := m.opts.Range
		if fr == nil && fit != nil {
			fr = fit.Range
		}
		if fr == nil {
			return nil, measureErrorf(opEvaluate, ErrNoRange)
		}
		nb, err = m.sampleGrid(fr, x)
	default:
		err = sampler.ErrUnknownMethod
	}
	if err != nil {
		return nil, measureErrorf(opEvaluate, err)
	}

	return scorer.Score(p, x, nb, m.opts.scorerOptions())
}

// sampleGrid draws from the measure's shared stream, one caller at a time.
func (m *Measure) sampleGrid(fr *featrange.Range, x *tensor.Batch) (*sampler.Neighborhood, error) {
	g, err := sampler.NewGrid(fr, m.opts.gridOptions(), sampler.WithRand(m.rnd))
	if err != nil {
		return nil, err
	}

	m.rndMu.Lock()
	defer m.rndMu.Unlock()

	return g.Sample(x)
}
