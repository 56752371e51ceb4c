// SPDX-License-Identifier: MIT

// Package featrange derives and validates per-feature [min, max] bounds.
//
// Purpose:
//   - Infer a Range from a training batch (column-wise min/max over the flattened instances).
//   - Accept an explicit, caller-supplied range and check its numeric policy (finite, Min <= Max).
//   - Turn a range into per-dimension grid steps for the grid sampler.
//
// Exposed API:
//   - Infer(train)  -> *Range   // min/max over every flattened dimension
//   - New(bounds)   -> *Range   // explicit range, validated
//   - Unit(dim)     -> *Range   // [0,1] on every dimension, opt-in only
//   - (*Range).Deltas(res)      // |max-min| / res per dimension
//
// Determinism:
//   - Pure functions of their inputs; the training batch is never mutated.
package featrange
