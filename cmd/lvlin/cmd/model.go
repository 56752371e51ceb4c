// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlin/models"
	"github.com/katalvlaran/lvlin/scorer"
)

// buildModel instantiates the configured built-in predictor for inputs of dim features.
func buildModel(mc ModelConfig, dim int) (scorer.Predictor, error) {
	w := mc.Weights
	switch strings.ToLower(mc.Kind) {
	case modelAffine:
		if len(w) == 0 {
			w = [][]float64{filled(dim, 1)}
		}
		return models.NewAffine(w, mc.Bias)
	case modelLogistic:
		if len(w) == 0 {
			w = [][]float64{filled(dim, 1), filled(dim, -1)}
		}
		return models.NewSoftmax(w, mc.Bias)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, mc.Kind)
	}
}

func filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
