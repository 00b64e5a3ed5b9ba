package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMeasuredPathLength(t *testing.T) {
	square := Rect{0, 0, 100, 100}.Path(0.1).Measure(DefaultAccuracy)
	if l := square.Length(); math.Abs(l-400) > 1e-9 {
		t.Errorf("got length %v, want 400", l)
	}
	diff(t, Pt(0, 0), square.Start())
	diff(t, Pt(0, 0), square.End())

	open := wiggly().Measure(DefaultAccuracy)
	if got, want := open.Length(), wiggly().Arclen(DefaultAccuracy); math.Abs(got-want) > 1e-9 {
		t.Errorf("got length %v, want %v", got, want)
	}
}

func TestMeasuredPathPointAt(t *testing.T) {
	square := Rect{0, 0, 100, 100}.Path(0.1).Measure(DefaultAccuracy)
	approx := cmpopts.EquateApprox(0, 1e-9)
	tests := []struct {
		pos  float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.125, Pt(50, 0)},
		{0.25, Pt(100, 0)},
		{0.375, Pt(100, 50)},
		{0.875, Pt(0, 50)},
		{1, Pt(0, 0)},
		{-1, Pt(0, 0)},
		{7, Pt(0, 0)},
	}
	for _, tt := range tests {
		diff(t, tt.want, square.PointAt(tt.pos), approx)
	}
}

func TestMeasuredPathTrim(t *testing.T) {
	square := Rect{0, 0, 100, 100}.Path(0.1).Measure(DefaultAccuracy)
	approx := cmpopts.EquateApprox(0, 1e-9)

	want := BezPath{
		MoveTo(Pt(50, 0)),
		LineTo(Pt(100, 0)),
		LineTo(Pt(100, 50)),
	}
	diff(t, want, square.Trim(0.125, 0.375), approx)

	if p := square.Trim(0.5, 0.5); len(p) != 0 {
		t.Errorf("got %v for an empty range, want no elements", p)
	}
	if p := square.Trim(0.6, 0.2); len(p) != 0 {
		t.Errorf("got %v for a reversed range, want no elements", p)
	}
}

func TestMeasuredPathTrimCurve(t *testing.T) {
	mp := wiggly().Measure(1e-9)
	total := mp.Length()
	for _, r := range [][2]float64{{0, 0.3}, {0.1, 0.9}, {0.45, 0.55}, {0.7, 1}} {
		got := mp.Trim(r[0], r[1]).Arclen(1e-9)
		want := (r[1] - r[0]) * total
		if math.Abs(got-want) > 1e-5 {
			t.Errorf("trim %v has length %v, want %v", r, got, want)
		}
	}
}

func TestMeasuredPathTrimmedBoundingBox(t *testing.T) {
	square := Rect{0, 0, 100, 100}.Path(0.1).Measure(DefaultAccuracy)
	approx := cmpopts.EquateApprox(0, 1e-9)

	diff(t, Rect{0, 0, 100, 0}, square.TrimmedBoundingBox(0, 0.25), approx)
	diff(t, Rect{100, 0, 100, 100}, square.TrimmedBoundingBox(0.25, 0.5), approx)
	diff(t, Rect{0, 0, 100, 100}, square.TrimmedBoundingBox(0, 1), approx)
	// Empty ranges collapse to the point at start.
	diff(t, Rect{100, 50, 100, 50}, square.TrimmedBoundingBox(0.375, 0.375), approx)
}

func TestMeasuredPathEmpty(t *testing.T) {
	var empty BezPath
	mp := empty.Measure(DefaultAccuracy)
	if mp.Length() != 0 {
		t.Errorf("got length %v, want 0", mp.Length())
	}
	diff(t, Rect{}, mp.TrimmedBoundingBox(0, 1))
	if p := mp.Trim(0, 1); p != nil {
		t.Errorf("got %v, want nil", p)
	}

	lone := BezPath{MoveTo(Pt(3, 4))}.Measure(DefaultAccuracy)
	diff(t, Pt(3, 4), lone.End())
	s := NewSamples(lone, 3)
	for i, pt := range s.All() {
		if pt != Pt(3, 4) {
			t.Errorf("sample %d is %v, want (3, 4)", i, pt)
		}
	}
}
