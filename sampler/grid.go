// SPDX-License-Identifier: MIT

package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlin/featrange"
	"github.com/katalvlaran/lvlin/tensor"
)

// GridOptions configures grid sampling.
//
// Fields:
//   - Epsilon: half-width of the neighbourhood as a fraction of each feature's range.
//   - Samples: neighbours K drawn per instance.
//   - Res    : number of intervals each feature range is split into.
//   - Seed   : 0 for a clock-seeded stream, anything else for reproducible draws.
type GridOptions struct {
	Epsilon float64
	Samples int
	Res     int
	Seed    int64
}

// DefaultGridOptions returns epsilon=0.04, samples=10, res=100, unseeded.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Epsilon: DefaultEpsilon,
		Samples: DefaultSamples,
		Res:     DefaultRes,
	}
}

// Validate checks the numeric policy of the options.
func (o GridOptions) Validate() error {
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon < 0 {
		return ErrBadEpsilon
	}
	if o.Samples < 1 {
		return ErrBadSamples
	}
	if o.Res < 1 {
		return ErrBadResolution
	}

	return nil
}

// GridOption customises a GridSampler after option validation.
type GridOption func(*GridSampler)

// WithRand makes the sampler draw from r instead of a stream derived from Seed.
// r must not be shared with other goroutines.
func WithRand(r *rand.Rand) GridOption {
	return func(g *GridSampler) {
		if r != nil {
			g.rnd = r
		}
	}
}

// GridSampler draws K synthetic neighbours per instance on a discretised grid.
type GridSampler struct {
	deltas []float64  // per-dimension step |max-min|/res
	size   int        // max step multiple, round(epsilon·res) floored at 2
	k      int        // neighbours per instance
	rnd    *rand.Rand // from WithRand, else NewRand(Seed)
}

// NewGrid prepares a grid sampler over the feature range fr.
//
// Errors:
//   - ErrNoRange if fr is nil.
//   - ErrBadEpsilon / ErrBadSamples / ErrBadResolution from opts.Validate.
func NewGrid(fr *featrange.Range, opts GridOptions, fns ...GridOption) (*GridSampler, error) {
	if fr == nil {
		return nil, samplerErrorf("NewGrid", ErrNoRange)
	}
	if err := opts.Validate(); err != nil {
		return nil, samplerErrorf("NewGrid", err)
	}
	deltas, err := fr.Deltas(opts.Res)
	if err != nil {
		return nil, samplerErrorf("NewGrid", err)
	}

	g := &GridSampler{
		deltas: deltas,
		size:   GridSize(opts.Epsilon, opts.Res),
		k:      opts.Samples,
	}
	for _, fn := range fns {
		fn(g)
	}
	if g.rnd == nil {
		g.rnd = NewRand(opts.Seed)
	}

	return g, nil
}

// GridSize returns round(epsilon·res) (half to even), floored at 2.
func GridSize(epsilon float64, res int) int {
	size := int(math.RoundToEven(epsilon * float64(res)))
	if size < minGridSize {
		size = minGridSize
	}

	return size
}

// K returns the number of neighbours drawn per instance.
func (g *GridSampler) K() int { return g.k }

// Size returns the maximum step multiple per dimension.
func (g *GridSampler) Size() int { return g.size }

// Deltas returns a copy of the per-dimension grid steps.
func (g *GridSampler) Deltas() []float64 { return append([]float64(nil), g.deltas...) }

// Sample offsets every instance of x K times. Each feature moves by an
// independent sign·m·delta, m ∈ [1, Size()].
//
// Complexity: O(N·K·D) time and space.
func (g *GridSampler) Sample(x *tensor.Batch) (*Neighborhood, error) {
	d := x.Dim()
	if d != len(g.deltas) {
		return nil, samplerErrorf("GridSampler.Sample", ErrDimMismatch)
	}

	n := x.Len()
	buf := make([]float64, n*g.k*d)
	var off int
	for i := 0; i < n; i++ {
		centre := x.RawRow(i)
		for k := 0; k < g.k; k++ {
			for j := 0; j < d; j++ {
				buf[off+j] = centre[j] + signedStep(g.rnd, g.size)*g.deltas[j]
			}
			off += d
		}
	}

	samples, err := tensor.Own(x.Shape(), buf)
	if err != nil {
		return nil, samplerErrorf("GridSampler.Sample", err)
	}

	return &Neighborhood{Samples: samples, K: g.k}, nil
}
