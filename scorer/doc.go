// SPDX-License-Identifier: MIT

// Package scorer turns sampled neighbourhoods into per-instance linearity scores.
//
// For every instance x_i and neighbour s_ik with alphas (α₀, α₁):
//
//	out_of_sum = f(α₀·x_i + α₁·s_ik)
//	sum_of_out = α₀·f(x_i) + α₁·f(s_ik)
//	score_i    = mean over k and channels of (out_of_sum − sum_of_out)²
//
// where f is the caller's Predictor, transformed by log(p + LogFloor) for
// classifiers and used raw for regressors. The score is ≥ 0 and vanishes
// exactly when f is additive over every sampled superposition, e.g. for any
// affine regressor when α₀ + α₁ = 1.
//
// Call budget:
//
//	Score issues exactly two Predict calls regardless of N and K: one over the
//	N·K superpositions and one over the N centres followed by the N·K neighbours.
//
// Telemetry:
//
//	An optional Hook observes both calls (before and after, with rows, shape,
//	channels and elapsed time). Without a hook the package has no side effects.
package scorer
