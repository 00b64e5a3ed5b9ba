package curve

import (
	"math"
	"slices"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x := SolveITP(f, 1.0, 2.0, 1e-12, 0, 0.2, f(1.0), f(2.0))
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestSolveForArclen(t *testing.T) {
	const target = 100.0
	tt := SolveForArclen(parabola, target, 1e-9)
	if got := parabola.Subsegment(0, tt).Arclen(1e-9); math.Abs(got-target) > 1e-6 {
		t.Errorf("arc length up to %v is %v, want %v", tt, got, target)
	}

	if tt := SolveForArclen(parabola, 0, 1e-9); tt != 0 {
		t.Errorf("got %v for zero arc length, want 0", tt)
	}
	if tt := SolveForArclen(parabola, 1e6, 1e-9); tt != 1 {
		t.Errorf("got %v for an arc length past the end, want 1", tt)
	}
}

func TestSegmentsClosePath(t *testing.T) {
	p := Rect{0, 0, 10, 20}.Path(0.1)
	got := slices.Collect(p.Segments())
	want := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 20)}.Seg(),
		Line{Pt(10, 20), Pt(0, 20)}.Seg(),
		Line{Pt(0, 20), Pt(0, 0)}.Seg(),
	}
	diff(t, want, got)

	// Going back into segments and out again makes the closing line explicit.
	els := slices.Collect(Elements(slices.Values(got)))
	diff(t, BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		LineTo(Pt(10, 20)),
		LineTo(Pt(0, 20)),
		LineTo(Pt(0, 0)),
	}, BezPath(els))
}
