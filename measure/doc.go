// SPDX-License-Identifier: MIT

// Package measure is the entry point of lvlin: it wires a neighbourhood
// sampler to the linearity scorer and keeps the optional fitted training data.
//
// 🚀 Two ways in:
//
//	m, _ := measure.New(opts)      // stateful façade, starts Unfit
//	_ = m.Fit(train)               // Unfit → Fit{Train, Range, Shape}
//	scores, _ := m.Score(model, x) // one score per instance of x
//
//	scores, _ := measure.Linearity(model, x, measure.Config{Options: opts, Train: train})
//
// ⚙️ Dispatch:
//   - KNN needs training data: Fit on the façade, Config.Train for Linearity.
//   - GridSampling needs a feature range: Options.Range when given, otherwise
//     the fitted (façade) or inferred (Linearity) range. There is no implicit
//     unit range; pass featrange.Unit explicitly if that is what you want.
//
// Concurrency:
//   - A Measure is safe for concurrent use. Fit takes the write lock; Score
//     snapshots the state under the read lock and serialises only the grid
//     draws on the shared random stream. Predict calls run outside every lock.
package measure
