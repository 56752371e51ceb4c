// SPDX-License-Identifier: MIT

package measure

import (
	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/tensor"
)

// State is the fit state of a Measure: exactly one of Unfit or Fit.
type State interface {
	isState()
}

// Unfit is the initial state: no training data, no range.
type Unfit struct{}

// Fit holds the training data and what was derived from it.
// Train is the caller's batch and is never mutated.
type Fit struct {
	Train *tensor.Batch
	Range *featrange.Range
	Shape tensor.Shape

	nearest *sampler.NearestSampler // built once when Method is KNN
}

func (Unfit) isState() {}
func (Fit) isState()   {}
