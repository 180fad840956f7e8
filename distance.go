package vptree

// Metric measures the distance from a query value of type Q to a stored
// value of type S. Distance must be a true mathematical metric:
//
//   - Distance(a, b) >= 0
//   - Distance(a, b) == 0 when a and b represent the same point
//   - symmetric when Q and S are the same type: Distance(a, b) == Distance(b, a)
//   - triangle inequality: Distance(a, c) <= Distance(a, b) + Distance(b, c)
//
// Distance must be deterministic and side-effect-free, and must never
// return NaN. Violating any of these is a contract violation; behavior of
// the tree is then undefined.
//
// The builder requires a Metric[S, S] (pairwise distance between stored
// items). Search accepts a Metric[Q, S] supplied per call, which may come
// from an entirely different type than S — this is what lets a VpTree[S]
// be queried with a lighter-weight "query-only" type (see NearestNeighborWith).
type Metric[Q, S any] interface {
	Distance(q Q, s S) float64
}

// HeuristicMetric is an optional capability a stored-item Metric[S, S] can
// implement to speed up construction. DistanceHeuristic must be monotonic
// with Distance: for any a, b, c, d,
//
//	DistanceHeuristic(a, b) <= DistanceHeuristic(c, d)  iff  Distance(a, b) <= Distance(c, d)
//
// A typical heuristic skips a square root or other monotonic-but-expensive
// tail of the real distance computation. The heuristic is used only by the
// builder's median partition; search always uses the real Distance,
// because pruning correctness depends on the triangle inequality holding
// for the value being compared against the running bound.
type HeuristicMetric[S any] interface {
	Metric[S, S]
	DistanceHeuristic(a, b S) float64
}

// heuristicOf returns a function usable as the builder's partition key: the
// metric's own DistanceHeuristic if it implements HeuristicMetric[S], or
// its real Distance otherwise.
func heuristicOf[S any](metric Metric[S, S]) func(a, b S) float64 {
	if h, ok := metric.(HeuristicMetric[S]); ok {
		return h.DistanceHeuristic
	}
	return metric.Distance
}
