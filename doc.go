// Package vptree provides a generic Vantage-Point Tree for metric-space
// similarity search: nearest-neighbor, k-nearest-neighbor, and radius
// queries over any type for which the caller supplies a distance function.
//
// A VpTree is built once from a slice of items and a Metric, then queried
// any number of times; it is immutable after construction and safe for
// concurrent reads from multiple goroutines. The distance function need
// only satisfy the usual metric axioms (non-negative, symmetric, triangle
// inequality) — it is never interpreted beyond that.
package vptree
