package vptree

// VpTree is an immutable Vantage-Point Tree over stored items of type S.
// Build it once with New, NewParallel, or NewIndex; query it any number
// of times, from any number of goroutines, with NearestNeighbor, KNearest,
// or InRadius (or their heterogeneous-query counterparts below). There
// is no Insert or Delete: once built, a tree's contents never change.
//
// items and thresholds are parallel arrays: items[i] is the vantage
// point owning the subtree rooted at index i, and thresholds[i] is the
// split distance recorded for that vantage point. See build.go for how
// a flat range of this arena encodes an entire subtree without child
// pointers.
type VpTree[S any] struct {
	items      []S
	thresholds []float64
	metric     Metric[S, S]
	stats      *BuildStats
}

// New builds a VpTree owning a copy of items. items is not modified.
func New[S any](items []S, metric Metric[S, S]) *VpTree[S] {
	owned := make([]S, len(items))
	copy(owned, items)
	thresholds := make([]float64, len(owned))
	stats := newBuildStats()
	stats.recordBuild(func() { build(owned, thresholds, metric) })
	return &VpTree[S]{items: owned, thresholds: thresholds, metric: metric, stats: stats}
}

// NewParallel builds a VpTree like New, but partitions subranges across up
// to workers goroutines (fork/join over disjoint index ranges).
// workers <= 0 is treated as 1, i.e. sequential.
func NewParallel[S any](items []S, metric Metric[S, S], workers int) *VpTree[S] {
	owned := make([]S, len(items))
	copy(owned, items)
	thresholds := make([]float64, len(owned))
	stats := newBuildStats()
	stats.recordBuild(func() { buildParallel(owned, thresholds, metric, workers) })
	return &VpTree[S]{items: owned, thresholds: thresholds, metric: metric, stats: stats}
}

// NewIndex builds a VpTree directly over items: items is permuted into
// VP-tree order in place and no private copy of it is made, only the
// thresholds array is allocated. The returned VpTree borrows items, so
// it remains valid only as long as the caller does not reslice, grow,
// or otherwise mutate items out from under it; use this when the
// caller already owns a slice it no longer needs in its original order.
func NewIndex[S any](items []S, metric Metric[S, S]) *VpTree[S] {
	thresholds := make([]float64, len(items))
	stats := newBuildStats()
	stats.recordBuild(func() { build(items, thresholds, metric) })
	return &VpTree[S]{items: items, thresholds: thresholds, metric: metric, stats: stats}
}

// Len reports the number of items in the tree.
func (t *VpTree[S]) Len() int { return len(t.items) }

// Stats returns a point-in-time snapshot of build/query instrumentation.
func (t *VpTree[S]) Stats() StatsSnapshot { return t.stats.snapshot() }

// NearestNeighbor returns the stored item closest to target, or the zero
// value and false if the tree is empty.
func (t *VpTree[S]) NearestNeighbor(target S) (S, bool) {
	return NearestNeighborWith[S](t, target, t.metric)
}

// KNearest returns up to k items closest to target, in arbitrary
// (heap) order. k <= 0 returns nil; k > Len() returns all items.
func (t *VpTree[S]) KNearest(target S, k int) []S {
	return KNearestWith[S](t, target, k, t.metric, false)
}

// KNearestSorted is KNearest with results in ascending-distance order.
func (t *VpTree[S]) KNearestSorted(target S, k int) []S {
	return KNearestWith[S](t, target, k, t.metric, true)
}

// InRadius returns every item within distance r of target, in arbitrary
// order. A negative r returns an empty slice.
func (t *VpTree[S]) InRadius(target S, r float64) []S {
	return InRadiusWith[S](t, target, r, t.metric, false)
}

// InRadiusSorted is InRadius with results in ascending-distance order.
func (t *VpTree[S]) InRadiusSorted(target S, r float64) []S {
	return InRadiusWith[S](t, target, r, t.metric, true)
}

// NearestNeighborWith, KNearestWith, and InRadiusWith are the
// heterogeneous-query entry points: target may be of any
// type Q distinct from the tree's stored type S, as long as metric knows
// how to measure distance from a Q to an S. They are free functions
// rather than methods because Go does not allow a method to introduce a
// type parameter beyond those of its receiver.
func NearestNeighborWith[S, Q any](t *VpTree[S], target Q, metric Metric[Q, S]) (S, bool) {
	t.stats.recordQuery(queryNearest)
	if len(t.items) == 0 {
		var zero S
		return zero, false
	}
	acc := newNearestAccumulator[S]()
	search(t.items, t.thresholds, metric, target, 0, len(t.items)-1, acc)
	return acc.best, acc.found
}

// KNearestWith is the heterogeneous-query counterpart of KNearest /
// KNearestSorted (sorted selects between them).
func KNearestWith[S, Q any](t *VpTree[S], target Q, k int, metric Metric[Q, S], sorted bool) []S {
	t.stats.recordQuery(queryKNN)
	if k <= 0 || len(t.items) == 0 {
		return nil
	}
	if k > len(t.items) {
		k = len(t.items)
	}
	acc := newKNNAccumulator[S](k)
	search(t.items, t.thresholds, metric, target, 0, len(t.items)-1, acc)
	return acc.results(sorted)
}

// InRadiusWith is the heterogeneous-query counterpart of InRadius /
// InRadiusSorted (sorted selects between them).
func InRadiusWith[S, Q any](t *VpTree[S], target Q, r float64, metric Metric[Q, S], sorted bool) []S {
	t.stats.recordQuery(queryRadius)
	if len(t.items) == 0 || r < 0 {
		return nil
	}
	acc := newRadiusAccumulator[S](r)
	search(t.items, t.thresholds, metric, target, 0, len(t.items)-1, acc)
	return acc.results(sorted)
}
