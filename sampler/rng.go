// SPDX-License-Identifier: MIT

package sampler

import (
	"math/rand"
	"time"
)

// NewRand returns a *rand.Rand for grid sampling.
// Policy: seed==0 ⇒ seeded from the wall clock (non-reproducible);
// any other seed is used verbatim and gives identical neighbourhoods across runs.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// signedStep draws sign·m with m uniform in [1, size] and sign uniform in {-1, +1}.
func signedStep(r *rand.Rand, size int) float64 {
	sign := 2*r.Intn(2) - 1
	return float64(sign * (r.Intn(size) + 1))
}
