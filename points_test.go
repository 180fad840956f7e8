package vptree

import (
	"errors"
	"testing"
)

func TestEuclideanMetric_Distance(t *testing.T) {
	m := EuclideanMetric{}
	a := Point{0, 0, 0}
	b := Point{3, 4, 0}
	if d := m.Distance(a, b); d != 5 {
		t.Fatalf("expected 5, got %v", d)
	}
}

func TestEuclideanMetric_HeuristicIsSquared(t *testing.T) {
	m := EuclideanMetric{}
	a := Point{0, 0}
	b := Point{3, 4}
	if h := m.DistanceHeuristic(a, b); h != 25 {
		t.Fatalf("expected 25, got %v", h)
	}
}

func TestLabeledPointMetric_DelegatesToCoords(t *testing.T) {
	type payload struct{ Name string }
	m := LabeledPointMetric[payload]{}
	a := LabeledPoint[payload]{Coords: Point{0, 0}, Value: payload{"a"}}
	b := LabeledPoint[payload]{Coords: Point{3, 4}, Value: payload{"b"}}
	if d := m.Distance(a, b); d != 5 {
		t.Fatalf("expected 5, got %v", d)
	}
}

func TestBuildPoints_NormalizesToUnitRange(t *testing.T) {
	type sample struct{ x, y float64 }
	items := []sample{{0, 10}, {5, 20}, {10, 30}}
	pts, err := BuildPoints(items,
		[]func(sample) float64{
			func(s sample) float64 { return s.x },
			func(s sample) float64 { return s.y },
		},
		[]float64{1, 1},
		[]bool{false, false},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[0].Coords[0] != 0 || pts[2].Coords[0] != 1 {
		t.Fatalf("expected first axis normalized to [0,1], got %v and %v", pts[0].Coords[0], pts[2].Coords[0])
	}
	if pts[1].Value.x != 5 {
		t.Fatalf("expected payload preserved, got %v", pts[1].Value)
	}
}

func TestBuildPoints_InvertFlipsAxis(t *testing.T) {
	type sample struct{ trust float64 }
	items := []sample{{0}, {50}, {100}}
	pts, err := BuildPoints(items,
		[]func(sample) float64{func(s sample) float64 { return s.trust }},
		[]float64{1},
		[]bool{true},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts[0].Coords[0] != 1 || pts[2].Coords[0] != 0 {
		t.Fatalf("expected inverted axis, got %v and %v", pts[0].Coords[0], pts[2].Coords[0])
	}
}

func TestBuildPoints_WeightScalesAxis(t *testing.T) {
	type sample struct{ v float64 }
	items := []sample{{0}, {10}}
	pts, err := BuildPoints(items,
		[]func(sample) float64{func(s sample) float64 { return s.v }},
		[]float64{2},
		[]bool{false},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts[1].Coords[0] != 2 {
		t.Fatalf("expected weighted max of 2, got %v", pts[1].Coords[0])
	}
}

func TestBuildPoints_NilExtractorErrors(t *testing.T) {
	type sample struct{ v float64 }
	items := []sample{{0}, {1}}
	_, err := BuildPoints(items, []func(sample) float64{nil}, []float64{1}, []bool{false})
	if !errors.Is(err, ErrNilExtractor) {
		t.Fatalf("expected ErrNilExtractor, got %v", err)
	}
}

func TestBuildPoints_MismatchedLengthsErrors(t *testing.T) {
	type sample struct{ v float64 }
	items := []sample{{0}}
	_, err := BuildPoints(items,
		[]func(sample) float64{func(s sample) float64 { return s.v }},
		[]float64{1, 2},
		[]bool{false},
	)
	if err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}

func TestBuildPoints_EmptyItemsReturnsNil(t *testing.T) {
	type sample struct{ v float64 }
	pts, err := BuildPoints([]sample(nil), nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts != nil {
		t.Fatalf("expected nil, got %v", pts)
	}
}

func TestBuildPoints_ConstantAxisCollapsesToZero(t *testing.T) {
	type sample struct{ v float64 }
	items := []sample{{5}, {5}, {5}}
	pts, err := BuildPoints(items,
		[]func(sample) float64{func(s sample) float64 { return s.v }},
		[]float64{1},
		[]bool{false},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pts {
		if p.Coords[0] != 0 {
			t.Fatalf("expected constant axis to collapse to 0, got %v", p.Coords[0])
		}
	}
}

func TestBuild2D_MatchesBuildPoints(t *testing.T) {
	type sample struct{ x, y float64 }
	items := []sample{{0, 0}, {10, 10}}
	pts, err := Build2D(items,
		func(s sample) float64 { return s.x },
		func(s sample) float64 { return s.y },
		[2]float64{1, 1},
		[2]bool{false, false},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 2 || len(pts[0].Coords) != 2 {
		t.Fatalf("expected 2 points of 2 dimensions, got %+v", pts)
	}
}

func TestBuild3D_And_Build4D_Dimensions(t *testing.T) {
	type sample struct{ a, b, c, d float64 }
	items := []sample{{1, 2, 3, 4}, {5, 6, 7, 8}}

	pts3, err := Build3D(items,
		func(s sample) float64 { return s.a },
		func(s sample) float64 { return s.b },
		func(s sample) float64 { return s.c },
		[3]float64{1, 1, 1}, [3]bool{false, false, false},
	)
	if err != nil || len(pts3[0].Coords) != 3 {
		t.Fatalf("expected 3 dimensions, got %+v err=%v", pts3, err)
	}

	pts4, err := Build4D(items,
		func(s sample) float64 { return s.a },
		func(s sample) float64 { return s.b },
		func(s sample) float64 { return s.c },
		func(s sample) float64 { return s.d },
		[4]float64{1, 1, 1, 1}, [4]bool{false, false, false, false},
	)
	if err != nil || len(pts4[0].Coords) != 4 {
		t.Fatalf("expected 4 dimensions, got %+v err=%v", pts4, err)
	}
}

func TestBuildPoints_FeedsVpTree(t *testing.T) {
	type sample struct {
		name string
		x, y float64
	}
	items := []sample{
		{"a", 0, 0}, {"b", 1, 1}, {"c", 2, 2}, {"d", 3, 3},
	}
	pts, err := Build2D(items,
		func(s sample) float64 { return s.x },
		func(s sample) float64 { return s.y },
		[2]float64{1, 1}, [2]bool{false, false},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree := New(pts, LabeledPointMetric[sample]{})
	best, ok := tree.NearestNeighbor(LabeledPoint[sample]{Coords: Point{0.9, 0.9}})
	if !ok || best.Value.name != "d" {
		t.Fatalf("expected nearest to be d, got %+v ok=%v", best, ok)
	}
}
