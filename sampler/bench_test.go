// SPDX-License-Identifier: MIT

package sampler_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/sampler"
	"github.com/katalvlaran/lvlin/tensor"
)

func benchBatch(b *testing.B, n, d int, seed int64) *tensor.Batch {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, n*d)
	for i := range data {
		data[i] = r.Float64()
	}
	out, err := tensor.NewBatch(tensor.Shape{d}, data)
	if err != nil {
		b.Fatalf("NewBatch: %v", err)
	}

	return out
}

// BenchmarkNearest_Sample measures kd-tree lookups of 100 instances against 10k training rows.
func BenchmarkNearest_Sample(b *testing.B) {
	train := benchBatch(b, 10000, 8, 1)
	x := benchBatch(b, 100, 8, 2)
	s, err := sampler.NewNearest(train, sampler.DefaultSamples)
	if err != nil {
		b.Fatalf("NewNearest: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sample(x); err != nil {
			b.Fatalf("Sample: %v", err)
		}
	}
}

// BenchmarkGrid_Sample measures grid draws for 100 instances of dimension 64.
func BenchmarkGrid_Sample(b *testing.B) {
	x := benchBatch(b, 100, 64, 3)
	opts := sampler.DefaultGridOptions()
	opts.Seed = 1
	g, err := sampler.NewGrid(featrange.Unit(64), opts)
	if err != nil {
		b.Fatalf("NewGrid: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Sample(x); err != nil {
			b.Fatalf("Sample: %v", err)
		}
	}
}
