// SPDX-License-Identifier: MIT

// Package models provides small reference predictors for exercising the
// linearity measure: an affine regressor, whose score is zero by construction,
// and a softmax classifier, whose log-probabilities are non-linear in the input.
//
// Both satisfy scorer.Predictor and read instances through their flattened
// rows, so any tensor.Shape whose Size matches the weight width is accepted.
package models
