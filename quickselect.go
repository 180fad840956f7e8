package vptree

// quickselectByKey partitions keys[0:len(keys)] in place so that the k
// smallest keys end up at indices [0, k) (in arbitrary order among
// themselves, but all <= the value now at index k), and the rest end
// up at [k, len(keys)), with the smallest of them at index k. swap(i, j) must swap
// both keys[i]/keys[j] and whatever payload each key is paired with, so
// the payload stays aligned with its key through every exchange. This is
// an nth-element / median-of-partition primitive: average O(N), not a
// full O(N log N) sort.
//
// Ties may land on either side of the partition; the VP-tree split
// invariant only requires the <= / >= relationship to hold, which is
// true regardless of which side a tied key lands on. k must
// satisfy 0 < k < len(keys); callers with k <= 0 or k >= len(keys) have
// nothing to partition and should not call this.
func quickselectByKey(keys []float64, swap func(i, j int), k int) {
	target := k
	lo, hi := 0, len(keys)-1
	for lo < hi {
		p := partitionLomuto(keys, swap, lo, hi)
		switch {
		case target == p:
			return
		case target < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partitionLomuto partitions keys[lo:hi+1] (and, via swap, whatever is
// paired with each key) around a median-of-three pivot, returning the
// pivot's final index p: every key in [lo, p) is < keys[p], every key in
// (p, hi] is >= keys[p].
func partitionLomuto(keys []float64, swap func(i, j int), lo, hi int) int {
	mid := lo + (hi-lo)/2
	pivotIdx := medianOfThreeIndex(keys, lo, mid, hi)
	swap(pivotIdx, hi)

	pivot := keys[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if keys[j] < pivot {
			swap(i, j)
			i++
		}
	}
	swap(i, hi)
	return i
}

// medianOfThreeIndex returns whichever of a, b, c indexes the median key,
// which keeps quickselect's average case fast on already-sorted or
// reverse-sorted input.
func medianOfThreeIndex(keys []float64, a, b, c int) int {
	ka, kb, kc := keys[a], keys[b], keys[c]
	switch {
	case (ka <= kb && kb <= kc) || (kc <= kb && kb <= ka):
		return b
	case (kb <= ka && ka <= kc) || (kc <= ka && ka <= kb):
		return a
	default:
		return c
	}
}
