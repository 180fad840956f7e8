package vptree

import (
	"sync/atomic"
	"time"
)

// queryKind distinguishes the three query families for per-kind counters.
type queryKind int

const (
	queryNearest queryKind = iota
	queryKNN
	queryRadius
)

// BuildStats tracks lightweight, lock-free build/query instrumentation for
// a single VpTree: an in-process atomic-counter block, not a metrics-export
// or logging facility. Since a VpTree is immutable after construction, the
// only events worth counting are the one build and the three kinds of
// read-only query.
type BuildStats struct {
	createdAt     time.Time
	buildDuration atomic.Int64 // nanoseconds

	nearestCount atomic.Int64
	knnCount     atomic.Int64
	radiusCount  atomic.Int64
}

func newBuildStats() *BuildStats {
	return &BuildStats{createdAt: time.Now()}
}

// recordBuild runs fn (the construction work) and records its wall-clock
// duration.
func (s *BuildStats) recordBuild(fn func()) {
	start := time.Now()
	fn()
	s.buildDuration.Store(time.Since(start).Nanoseconds())
}

func (s *BuildStats) recordQuery(kind queryKind) {
	switch kind {
	case queryNearest:
		s.nearestCount.Add(1)
	case queryKNN:
		s.knnCount.Add(1)
	case queryRadius:
		s.radiusCount.Add(1)
	}
}

// StatsSnapshot is an immutable, point-in-time view of a VpTree's
// instrumentation.
type StatsSnapshot struct {
	CreatedAt         time.Time
	BuildDuration     time.Duration
	NearestQueryCount int64
	KNNQueryCount     int64
	RadiusQueryCount  int64
}

func (s *BuildStats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		CreatedAt:         s.createdAt,
		BuildDuration:     time.Duration(s.buildDuration.Load()),
		NearestQueryCount: s.nearestCount.Load(),
		KNNQueryCount:     s.knnCount.Load(),
		RadiusQueryCount:  s.radiusCount.Load(),
	}
}
