// SPDX-License-Identifier: MIT

package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/tensor"
)

// ExampleNearestSampler_Neighbors ranks a tiny training set around one query.
func ExampleNearestSampler_Neighbors() {
	train, _ := tensor.FromRows(nil, [][]float64{{0, 0}, {3, 4}, {1, 0}, {0, 2}})
	s, err := sampler.NewNearest(train, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	idx, dist, _ := s.Neighbors([]float64{0, 0})
	fmt.Println(idx, dist)
	// Output:
	// [0 2 3] [0 1 2]
}
