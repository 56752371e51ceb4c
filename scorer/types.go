// SPDX-License-Identifier: MIT

package scorer

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlin/tensor"
)

// LogFloor is added to classifier outputs before the log transform so a zero
// probability maps to log(1e-10) instead of -Inf.
const LogFloor = 1e-10

// DefaultAlphas weighs both terms of the superposition equally.
var DefaultAlphas = Alphas{0.5, 0.5}

// Predictor is the model under inspection. Predict receives M instances and
// must return an M×C matrix: class probabilities for classifiers, raw outputs
// for regressors. It must be deterministic for reproducible scores.
type Predictor interface {
	Predict(x *tensor.Batch) (*mat.Dense, error)
}

// PredictorFunc adapts a plain function to Predictor.
type PredictorFunc func(x *tensor.Batch) (*mat.Dense, error)

// Predict calls f(x).
func (f PredictorFunc) Predict(x *tensor.Batch) (*mat.Dense, error) { return f(x) }

// ModelType selects how outputs are compared.
type ModelType int

const (
	// Classifier compares outputs in log-probability space.
	Classifier ModelType = iota

	// Regressor compares raw outputs.
	Regressor
)

const (
	nameClassifier = "classifier"
	nameRegressor  = "regressor"
)

// ParseModelType maps "classifier" and "regressor" (case-insensitive) to a ModelType.
func ParseModelType(s string) (ModelType, error) {
	switch {
	case strings.EqualFold(s, nameClassifier):
		return Classifier, nil
	case strings.EqualFold(s, nameRegressor):
		return Regressor, nil
	default:
		return 0, scoreErrorf("ParseModelType("+s+")", ErrUnknownModelType)
	}
}

// Validate reports ErrUnknownModelType for values outside the enum.
func (t ModelType) Validate() error {
	switch t {
	case Classifier, Regressor:
		return nil
	default:
		return ErrUnknownModelType
	}
}

// String returns the canonical configuration name.
func (t ModelType) String() string {
	switch t {
	case Classifier:
		return nameClassifier
	case Regressor:
		return nameRegressor
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ModelType) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ModelType) UnmarshalText(b []byte) error {
	v, err := ParseModelType(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Alphas are the two superposition coefficients (α₀ for the instance, α₁ for the neighbour).
type Alphas [2]float64

// Validate requires both coefficients to be finite and non-negative.
func (a Alphas) Validate() error {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrBadAlphas
		}
	}

	return nil
}

// Options configures Score.
type Options struct {
	ModelType ModelType
	Alphas    Alphas
	Hook      Hook
}

// DefaultOptions returns a classifier scorer with DefaultAlphas and no hook.
func DefaultOptions() Options {
	return Options{ModelType: Classifier, Alphas: DefaultAlphas}
}

// Validate checks the model type and alphas.
func (o Options) Validate() error {
	if err := o.ModelType.Validate(); err != nil {
		return err
	}

	return o.Alphas.Validate()
}

// Result carries the scores and the two compared quantities, one row per
// (instance, neighbour) pair in instance-major order: row i*K + k.
type Result struct {
	Scores   []float64
	OutOfSum *mat.Dense
	SumOfOut *mat.Dense
}
