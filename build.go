package vptree

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelLeafThreshold is the range length below which buildRangeParallel
// finishes a subproblem sequentially instead of spawning more tasks,
// avoiding scheduling overhead on small ranges.
const parallelLeafThreshold = 512

// The tree arena is two parallel slices, items and thresholds, indexed
// identically and needing no child pointers: the subtree covering
// [lo, hi] has its vantage point at items[lo] with split distance
// thresholds[lo], a left child covering [lo+1, m], and a right child
// covering [m+1, hi], where m is fixed at build time (see buildRange).
// Descendants of a node always occupy a contiguous sub-range of the
// arena, which is what makes the traversal in search.go cache-friendly.
// thresholds is only ever read at an index once items[that index] has
// been fixed as a vantage point, so quickselect's in-range permutation
// only needs to move items (and their heuristic keys), never thresholds.

// buildRange recursively partitions items[lo:hi+1] in place into a valid
// VP-tree: pivot is items[lo] (position-based selection, see DESIGN.md
// for why this is deterministic rather than randomized), the remaining
// items are quickselect-partitioned by their heuristic distance to the
// pivot, and the real Metric.Distance is stored in thresholds[lo].
func buildRange[S any](items []S, thresholds []float64, metric Metric[S, S], heuristic func(a, b S) float64, lo, hi int) {
	if hi <= lo {
		return
	}
	pivot := items[lo]
	n := hi - lo // number of items in (lo, hi]

	if n == 1 {
		thresholds[lo] = metric.Distance(pivot, items[lo+1])
		return
	}

	keys := make([]float64, n)
	for i := 0; i < n; i++ {
		keys[i] = heuristic(pivot, items[lo+1+i])
	}
	leftCount := n / 2
	rest := items[lo+1 : hi+1]
	quickselectByKey(keys, func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
		keys[i], keys[j] = keys[j], keys[i]
	}, leftCount)

	m := lo + leftCount
	if m < hi {
		thresholds[lo] = metric.Distance(pivot, items[m+1])
	} else {
		thresholds[lo] = metric.Distance(pivot, items[m])
	}

	buildRange(items, thresholds, metric, heuristic, lo+1, m)
	buildRange(items, thresholds, metric, heuristic, m+1, hi)
}

// buildRangeParallel mirrors buildRange but forks the left and right
// subproblems onto an errgroup-managed goroutine pool once a range is
// large enough to be worth the scheduling cost. Each fork writes to a
// disjoint sub-range of items/thresholds, so no synchronization beyond
// the join (errgroup.Wait, via the caller) is required. Produces the
// identical tree buildRange would, because pivot selection and
// partitioning are both deterministic.
func buildRangeParallel[S any](g *errgroup.Group, items []S, thresholds []float64, metric Metric[S, S], heuristic func(a, b S) float64, lo, hi int) {
	if hi <= lo {
		return
	}
	n := hi - lo
	if n < parallelLeafThreshold {
		buildRange(items, thresholds, metric, heuristic, lo, hi)
		return
	}

	pivot := items[lo]
	keys := make([]float64, n)
	for i := 0; i < n; i++ {
		keys[i] = heuristic(pivot, items[lo+1+i])
	}
	leftCount := n / 2
	rest := items[lo+1 : hi+1]
	quickselectByKey(keys, func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
		keys[i], keys[j] = keys[j], keys[i]
	}, leftCount)

	m := lo + leftCount
	if m < hi {
		thresholds[lo] = metric.Distance(pivot, items[m+1])
	} else {
		thresholds[lo] = metric.Distance(pivot, items[m])
	}

	left := func() error {
		buildRangeParallel(g, items, thresholds, metric, heuristic, lo+1, m)
		return nil
	}
	right := func() error {
		buildRangeParallel(g, items, thresholds, metric, heuristic, m+1, hi)
		return nil
	}
	// TryGo never blocks: when every worker slot is taken, the subproblem
	// runs on the current goroutine instead of waiting for a slot that an
	// ancestor task may itself be holding.
	if !g.TryGo(left) {
		_ = left()
	}
	if !g.TryGo(right) {
		_ = right()
	}
}

// build runs the sequential builder over a freshly-populated arena.
func build[S any](items []S, thresholds []float64, metric Metric[S, S]) {
	buildRange(items, thresholds, metric, heuristicOf(metric), 0, len(items)-1)
}

// buildParallel runs the fork/join builder with a worker pool of the
// given size. workers <= 0 is treated as 1, i.e. sequential.
func buildParallel[S any](items []S, thresholds []float64, metric Metric[S, S], workers int) {
	if workers <= 1 || len(items) < parallelLeafThreshold {
		build(items, thresholds, metric)
		return
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	heuristic := heuristicOf(metric)
	g.Go(func() error {
		buildRangeParallel(g, items, thresholds, metric, heuristic, 0, len(items)-1)
		return nil
	})
	// build never fails except through a caller-supplied Metric panicking,
	// which errgroup.Wait would not convert to an error anyway; Wait is
	// called purely to join all spawned subtasks before returning.
	_ = g.Wait()
}
