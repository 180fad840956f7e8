package vptree

import "sort"

// sortPairsByDistance sorts knnPair values ascending by distance, in place.
func sortPairsByDistance[S any](pairs []knnPair[S]) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })
}

// sortItemsByDistance returns a copy of items reordered ascending by the
// parallel dists slice, leaving both inputs untouched.
func sortItemsByDistance[S any](items []S, dists []float64) []S {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return dists[idx[i]] < dists[idx[j]] })
	out := make([]S, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
