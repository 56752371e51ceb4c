// SPDX-License-Identifier: MIT

package sampler

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/lvlin/tensor"
)

// trainPoint is a flattened training row that remembers its position in the
// training batch, so results can be mapped back and ties ordered by index.
type trainPoint struct {
	kdtree.Point
	index int
}

var (
	_ Sampler = (*NearestSampler)(nil)
	_ Sampler = (*GridSampler)(nil)

	_ kdtree.Comparable = trainPoint{}
	_ kdtree.Interface  = trainPoints(nil)
	_ kdtree.SortSlicer = trainPlane{}
)

// Compare returns the signed distance of p from the plane through c orthogonal to d.
func (p trainPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(trainPoint)
	return p.Point[d] - q.Point[d]
}

// Dims returns the flattened dimension.
func (p trainPoint) Dims() int { return len(p.Point) }

// Distance returns the squared Euclidean distance between p and c.
func (p trainPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(trainPoint)
	return p.Point.Distance(q.Point)
}

// trainPoints is the kd-tree collection over the training set.
type trainPoints []trainPoint

func (p trainPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p trainPoints) Len() int                      { return len(p) }
func (p trainPoints) Pivot(d kdtree.Dim) int        { return trainPlane{points: p, dim: d}.Pivot() }
func (p trainPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// trainPlane sorts trainPoints along one dimension for median partitioning.
type trainPlane struct {
	points trainPoints
	dim    kdtree.Dim
}

func (p trainPlane) Len() int { return len(p.points) }
func (p trainPlane) Less(i, j int) bool {
	return p.points[i].Point[p.dim] < p.points[j].Point[p.dim]
}
func (p trainPlane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
func (p trainPlane) Pivot() int    { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p trainPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

// NearestSampler samples the K nearest training points of every instance.
// The kd-tree is built once in NewNearest and reused by every Sample call.
type NearestSampler struct {
	train *tensor.Batch
	tree  *kdtree.Tree
	k     int
}

// NewNearest indexes train and returns a sampler drawing k neighbours per instance.
//
// Errors:
//   - ErrNoTraining if train is nil.
//   - ErrBadSamples if k < 1.
//   - ErrTooFewPoints if k > train.Len().
//
// Complexity: O(N log N) build over N training rows.
func NewNearest(train *tensor.Batch, k int) (*NearestSampler, error) {
	if train == nil {
		return nil, samplerErrorf("NewNearest", ErrNoTraining)
	}
	if k < 1 {
		return nil, samplerErrorf("NewNearest", ErrBadSamples)
	}
	if k > train.Len() {
		return nil, samplerErrorf("NewNearest", ErrTooFewPoints)
	}

	pts := make(trainPoints, train.Len())
	for i := range pts {
		pts[i] = trainPoint{Point: kdtree.Point(train.RawRow(i)), index: i}
	}

	return &NearestSampler{train: train, tree: kdtree.New(pts, false), k: k}, nil
}

// K returns the number of neighbours drawn per instance.
func (s *NearestSampler) K() int { return s.k }

// Neighbors returns the training indices and Euclidean distances of the k
// rows nearest to q, ordered by distance then index.
//
// Implementation:
//   - Stage 1: an NKeeper finds the k-th smallest squared distance r.
//   - Stage 2: a DistKeeper collects every row within r, so rows tied with
//     the k-th one are all seen and the cut is made by index.
func (s *NearestSampler) Neighbors(q []float64) ([]int, []float64, error) {
	if len(q) != s.train.Dim() {
		return nil, nil, samplerErrorf("Neighbors", ErrDimMismatch)
	}
	query := trainPoint{Point: kdtree.Point(q), index: -1}

	keep := kdtree.NewNKeeper(s.k)
	s.tree.NearestSet(keep, query)
	var r float64
	for _, c := range keep.Heap {
		if c.Comparable != nil && c.Dist > r {
			r = c.Dist
		}
	}

	within := kdtree.NewDistKeeper(r)
	s.tree.NearestSet(within, query)
	found := make([]kdtree.ComparableDist, 0, len(within.Heap))
	for _, c := range within.Heap {
		if c.Comparable == nil { // keeper sentinel
			continue
		}
		found = append(found, c)
	}
	sort.Slice(found, func(a, b int) bool {
		if found[a].Dist != found[b].Dist {
			return found[a].Dist < found[b].Dist
		}
		return found[a].Comparable.(trainPoint).index < found[b].Comparable.(trainPoint).index
	})
	if len(found) > s.k {
		found = found[:s.k]
	}

	idx := make([]int, len(found))
	dist := make([]float64, len(found))
	for i, c := range found {
		idx[i] = c.Comparable.(trainPoint).index
		dist[i] = math.Sqrt(c.Dist)
	}

	return idx, dist, nil
}

// Sample returns, for every instance of x, its k nearest training rows.
// The returned rows carry x's shape; only the flattened dimension has to agree.
func (s *NearestSampler) Sample(x *tensor.Batch) (*Neighborhood, error) {
	if x.Dim() != s.train.Dim() {
		return nil, samplerErrorf("NearestSampler.Sample", ErrDimMismatch)
	}

	n, d := x.Len(), x.Dim()
	buf := make([]float64, 0, n*s.k*d)
	for i := 0; i < n; i++ {
		idx, _, err := s.Neighbors(x.RawRow(i))
		if err != nil {
			return nil, err
		}
		for _, j := range idx {
			buf = append(buf, s.train.RawRow(j)...)
		}
	}

	samples, err := tensor.Own(x.Shape(), buf)
	if err != nil {
		return nil, samplerErrorf("NearestSampler.Sample", err)
	}

	return &Neighborhood{Samples: samples, K: s.k}, nil
}
