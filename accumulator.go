package vptree

import (
	"container/heap"
	"math"
)

// accumulator is the strategy the branch-and-bound traversal in search.go
// is parameterized over: offer considers a candidate at
// a known distance for inclusion in the result, and bound reports the
// current pruning radius — the largest distance at which a future offer
// could still matter. The three query families (nearest-1, k-NN, radius)
// differ only in these two methods; the traversal itself is written once.
type accumulator[S any] interface {
	offer(item S, d float64)
	bound() float64
}

// nearestAccumulator keeps the single closest item seen so far.
type nearestAccumulator[S any] struct {
	best  S
	dist  float64
	found bool
}

func newNearestAccumulator[S any]() *nearestAccumulator[S] {
	return &nearestAccumulator[S]{dist: math.Inf(1)}
}

func (a *nearestAccumulator[S]) offer(item S, d float64) {
	if !a.found || d < a.dist {
		a.best, a.dist, a.found = item, d, true
	}
}

func (a *nearestAccumulator[S]) bound() float64 {
	if a.found {
		return a.dist
	}
	return math.Inf(1)
}

// knnPair is one candidate held by a knnAccumulator's max-heap.
type knnPair[S any] struct {
	item S
	dist float64
}

// knnHeap is a max-heap by distance: the farthest of the up-to-k current
// candidates sits at the root, so it is the one evicted when a closer
// candidate is offered. Grounded on the same container/heap-backed
// bounded priority queue reiddraper/vptree and DataWraith/vptree use for
// exactly this purpose.
type knnHeap[S any] []knnPair[S]

func (h knnHeap[S]) Len() int            { return len(h) }
func (h knnHeap[S]) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h knnHeap[S]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap[S]) Push(x interface{}) { *h = append(*h, x.(knnPair[S])) }
func (h *knnHeap[S]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// knnAccumulator keeps the k closest items seen so far.
type knnAccumulator[S any] struct {
	k int
	h knnHeap[S]
}

func newKNNAccumulator[S any](k int) *knnAccumulator[S] {
	return &knnAccumulator[S]{k: k, h: make(knnHeap[S], 0, k)}
}

func (a *knnAccumulator[S]) offer(item S, d float64) {
	if a.h.Len() < a.k {
		heap.Push(&a.h, knnPair[S]{item, d})
		return
	}
	if d < a.h[0].dist {
		a.h[0] = knnPair[S]{item, d}
		heap.Fix(&a.h, 0)
	}
}

func (a *knnAccumulator[S]) bound() float64 {
	if a.h.Len() < a.k {
		return math.Inf(1)
	}
	return a.h[0].dist
}

// results drains the heap into a slice, optionally sorted ascending by
// distance; this is a post-pass and plays no part in pruning.
func (a *knnAccumulator[S]) results(sorted bool) []S {
	pairs := append([]knnPair[S](nil), a.h...)
	if sorted {
		sortPairsByDistance(pairs)
	}
	out := make([]S, len(pairs))
	for i, p := range pairs {
		out[i] = p.item
	}
	return out
}

// radiusAccumulator collects every item within a fixed radius r.
// Its bound never changes: r itself is always the pruning radius,
// since an item exactly at distance r still qualifies.
type radiusAccumulator[S any] struct {
	r     float64
	items []S
	dists []float64
}

func newRadiusAccumulator[S any](r float64) *radiusAccumulator[S] {
	return &radiusAccumulator[S]{r: r}
}

func (a *radiusAccumulator[S]) offer(item S, d float64) {
	if d <= a.r {
		a.items = append(a.items, item)
		a.dists = append(a.dists, d)
	}
}

func (a *radiusAccumulator[S]) bound() float64 {
	return a.r
}

func (a *radiusAccumulator[S]) results(sorted bool) []S {
	if !sorted || len(a.items) < 2 {
		return a.items
	}
	return sortItemsByDistance(a.items, a.dists)
}
