// SPDX-License-Identifier: MIT

// Package lvlin measures how linear a black-box model behaves in a small
// neighbourhood of each input instance.
//
// For an instance x with neighbours x₁..x_K and coefficients (α₀, α₁), the
// score is the mean over neighbours of the squared norm of
//
//	f(α₀·x + α₁·x_k) − (α₀·f(x) + α₁·f(x_k))
//
// A perfectly linear model scores 0; larger scores mean stronger local
// non-linearity. Classifier outputs are compared in log space.
//
// Layout:
//
//	tensor/    : batches of fixed-shape instances over gonum/mat
//	featrange/ : per-feature [min, max] bounds and grid steps
//	sampler/   : neighbourhoods from a kd-tree (knn) or a random grid
//	scorer/    : the two-call superposition score and its telemetry hook
//	measure/   : stateful Measure (Fit/Score) and the one-shot Linearity
//	models/    : reference affine and softmax predictors
//	cmd/lvlin/ : command-line front end
//
// Quick start:
//
//	m, _ := measure.New(measure.DefaultOptions())
//	_ = m.Fit(train)
//	scores, err := m.Score(model, x)
package lvlin
