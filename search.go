package vptree

// search performs a branch-and-bound traversal over items[lo:hi+1] /
// thresholds[lo:hi+1], offering every visited item to acc and using its
// bound to prune subtrees the triangle inequality proves cannot improve
// the result. Grounded directly on reiddraper/vptree's and
// DataWraith/vptree's recursive search functions, generalized from a
// hardwired k-NN heap to any accumulator[S].
func search[Q, S any](items []S, thresholds []float64, metric Metric[Q, S], target Q, lo, hi int, acc accumulator[S]) {
	if hi < lo {
		return
	}
	pivot := items[lo]
	t := thresholds[lo]
	d := metric.Distance(target, pivot)

	acc.offer(pivot, d)

	if hi == lo {
		return
	}

	// m recovers the build-time split point for [lo, hi]: build always
	// sets leftCount = (hi-lo)/2, so the left child is (lo, m] and the
	// right child is (m, hi] without needing a stored child pointer.
	m := lo + (hi-lo)/2
	b := acc.bound()

	if d < t {
		if d-b <= t {
			search(items, thresholds, metric, target, lo+1, m, acc)
		}
		if d+b >= t {
			search(items, thresholds, metric, target, m+1, hi, acc)
		}
	} else {
		if d+b >= t {
			search(items, thresholds, metric, target, m+1, hi, acc)
		}
		if d-b <= t {
			search(items, thresholds, metric, target, lo+1, m, acc)
		}
	}
}
