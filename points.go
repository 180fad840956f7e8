package vptree

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrNilExtractor is returned by the BuildND helpers when a feature
// extractor function is nil.
var ErrNilExtractor = errors.New("vptree: feature extractor must not be nil")

// Point is a plain n-dimensional coordinate vector, usable directly as a
// VpTree[Point] stored (and query) type via EuclideanMetric.
type Point []float64

// EuclideanMetric implements Metric[Point, Point] (and, since Q==S here,
// doubles as the builder's pairwise stored-item metric) using gonum's
// floats.Distance rather than a hand-rolled sqrt loop.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b Point) float64 {
	return floats.Distance(a, b, 2)
}

// DistanceHeuristic skips the square root gonum's L2 distance performs
// internally would otherwise require a caller to redo: squared Euclidean
// distance is monotonic with Euclidean distance, so it is a
// valid, cheaper partition key for the builder.
func (EuclideanMetric) DistanceHeuristic(a, b Point) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// LabeledPoint pairs a normalized coordinate Point with a caller-supplied
// payload, so search results carry the original item alongside its
// position in the tree.
type LabeledPoint[T any] struct {
	Coords Point
	Value  T
}

// LabeledPointMetric implements Metric[LabeledPoint[T], LabeledPoint[T]]
// by delegating to EuclideanMetric over the Coords field, so
// LabeledPoint[T] slices can be handed straight to New/NewParallel/NewIndex.
type LabeledPointMetric[T any] struct{}

func (LabeledPointMetric[T]) Distance(a, b LabeledPoint[T]) float64 {
	return EuclideanMetric{}.Distance(a.Coords, b.Coords)
}

func (LabeledPointMetric[T]) DistanceHeuristic(a, b LabeledPoint[T]) float64 {
	return EuclideanMetric{}.DistanceHeuristic(a.Coords, b.Coords)
}

// minMax returns the observed [min, max] of a feature axis, used to
// normalize raw feature values into [0, 1] before they become tree
// coordinates.
func minMax(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	mn, mx := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx
}

func scale01(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (v - min) / (max - min)
}

// buildAxis normalizes one feature axis to [0, 1] (inverting it first, as
// 1-v, if invert is set), then applies weight.
func buildAxis[T any](items []T, f func(T) float64, weight float64, invert bool) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: axis extractor", ErrNilExtractor)
	}
	raw := make([]float64, len(items))
	for i, it := range items {
		raw[i] = f(it)
	}
	mn, mx := minMax(raw)
	out := make([]float64, len(items))
	for i, v := range raw {
		n := scale01(v, mn, mx)
		if invert {
			n = 1 - n
		}
		out[i] = n * weight
	}
	return out, nil
}

// BuildPoints constructs normalized, weighted LabeledPoint[T] values from
// items using one feature extractor per dimension, for any number of
// dimensions. Each axis is independently min-max normalized to [0, 1],
// optionally inverted (so that higher raw values become lower VP-tree
// distance), then scaled by its weight. len(extractors), len(weights),
// and len(invert) must all match; a mismatch, or a nil extractor when
// items is non-empty, returns an error rather than panicking.
func BuildPoints[T any](items []T, extractors []func(T) float64, weights []float64, invert []bool) ([]LabeledPoint[T], error) {
	if len(extractors) != len(weights) || len(extractors) != len(invert) {
		return nil, fmt.Errorf("vptree: extractors (%d), weights (%d), and invert (%d) must have equal length",
			len(extractors), len(weights), len(invert))
	}
	if len(items) == 0 {
		return nil, nil
	}
	axes := make([][]float64, len(extractors))
	for d, f := range extractors {
		axis, err := buildAxis(items, f, weights[d], invert[d])
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", d, err)
		}
		axes[d] = axis
	}
	out := make([]LabeledPoint[T], len(items))
	for i, it := range items {
		coords := make(Point, len(extractors))
		for d := range extractors {
			coords[d] = axes[d][i]
		}
		out[i] = LabeledPoint[T]{Coords: coords, Value: it}
	}
	return out, nil
}

// Build2D is BuildPoints specialized to two feature extractors.
func Build2D[T any](items []T, f1, f2 func(T) float64, weights [2]float64, invert [2]bool) ([]LabeledPoint[T], error) {
	return BuildPoints(items, []func(T) float64{f1, f2}, weights[:], invert[:])
}

// Build3D is BuildPoints specialized to three feature extractors.
func Build3D[T any](items []T, f1, f2, f3 func(T) float64, weights [3]float64, invert [3]bool) ([]LabeledPoint[T], error) {
	return BuildPoints(items, []func(T) float64{f1, f2, f3}, weights[:], invert[:])
}

// Build4D is BuildPoints specialized to four feature extractors.
func Build4D[T any](items []T, f1, f2, f3, f4 func(T) float64, weights [4]float64, invert [4]bool) ([]LabeledPoint[T], error) {
	return BuildPoints(items, []func(T) float64{f1, f2, f3, f4}, weights[:], invert[:])
}
