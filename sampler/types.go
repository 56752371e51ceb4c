// SPDX-License-Identifier: MIT

package sampler

import (
	"strings"

	"github.com/katalvlaran/lvlin/tensor"
)

// Defaults shared by the façade and the CLI.
const (
	// DefaultEpsilon is the half-width of the grid neighbourhood as a fraction of each feature's range.
	DefaultEpsilon = 0.04

	// DefaultSamples is the number of neighbours K drawn per instance.
	DefaultSamples = 10

	// DefaultRes is the number of intervals each feature range is discretised into.
	DefaultRes = 100

	// minGridSize is the floor applied to round(epsilon·res).
	minGridSize = 2
)

// Method selects the sampling strategy.
type Method int

const (
	// GridSampling draws synthetic points on a bounded grid around each instance.
	GridSampling Method = iota

	// KNN draws the nearest real training points.
	KNN
)

const (
	nameGrid = "gridSampling"
	nameKNN  = "knn"
)

// ParseMethod maps "knn" and "gridSampling" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch {
	case strings.EqualFold(s, nameKNN):
		return KNN, nil
	case strings.EqualFold(s, nameGrid):
		return GridSampling, nil
	default:
		return 0, samplerErrorf("ParseMethod("+s+")", ErrUnknownMethod)
	}
}

// Validate reports ErrUnknownMethod for values outside the enum.
func (m Method) Validate() error {
	switch m {
	case KNN, GridSampling:
		return nil
	default:
		return ErrUnknownMethod
	}
}

// String returns the canonical configuration name.
func (m Method) String() string {
	switch m {
	case KNN:
		return nameKNN
	case GridSampling:
		return nameGrid
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Sampler produces a Neighborhood for every instance of x.
type Sampler interface {
	Sample(x *tensor.Batch) (*Neighborhood, error)
}

// Neighborhood holds K samples per instance for N instances.
// Samples row i*K + k is neighbour k of instance i and has the instance's shape.
type Neighborhood struct {
	Samples *tensor.Batch
	K       int
}

// Len returns the number of centre instances N.
func (n *Neighborhood) Len() int { return n.Samples.Len() / n.K }

// At returns neighbour k of instance i without copying.
func (n *Neighborhood) At(i, k int) []float64 { return n.Samples.RawRow(i*n.K + k) }
