// SPDX-License-Identifier: MIT

// Package tensor holds the instance batches every other lvlin package works on.
//
// A Batch is an ordered sequence of N instances. Each instance is a feature
// tensor of arbitrary rank with a fixed per-instance Shape; the batch stores
// the instances flattened row-major inside one gonum *mat.Dense of N×Size rows.
// Flattening is therefore free: Row(i) is the flattened instance i, and the
// Shape is only metadata carried alongside for validation and for predictors
// that need to reinterpret a row as a multi-dimensional tensor.
//
// Guarantees:
//   - All instances in a Batch share one Shape (enforced by every constructor).
//   - Constructors copy caller data; a Batch never aliases caller slices.
//   - Batches are read-only once built; derived batches (Repeat, Concat, Slice)
//     are new values.
//
// Complexity quicksheet:
//   - NewBatch/FromRows/FromDense: O(N·D) copy; Row: O(D); RawRow: O(1);
//     Repeat(k): O(N·k·D); Concat: O((Na+Nb)·D).
package tensor
