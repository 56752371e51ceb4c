// SPDX-License-Identifier: MIT

// Package sampler generates the neighbourhoods the linearity scorer compares against.
//
// Two strategies, selected by the closed Method enum:
//
//   - KNN: real training points. The flattened training set is indexed once in a
//     gonum kd-tree; for every instance the K nearest training rows by Euclidean
//     distance are returned in non-decreasing distance order (ties by training
//     index). Deterministic for a fixed training set.
//
//   - GridSampling: synthetic points on a discretised hypercube around each
//     instance. With delta = |max-min|/res and size = round(epsilon·res) floored
//     at 2, every feature of every draw is offset by sign·m·delta where
//     m ∈ [1, size] and sign ∈ {-1, +1} are uniform. Offsets never exceed
//     size·delta. Non-deterministic unless a seed or random source is supplied.
//
// Both return a Neighborhood: N×K rows, instance-major, each row with the
// centre's shape.
//
// Concurrency:
//   - NearestSampler is read-only after construction and safe for concurrent use.
//   - GridSampler owns a *rand.Rand and is NOT goroutine-safe.
package sampler
