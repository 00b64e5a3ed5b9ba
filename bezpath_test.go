package curve

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestElementsToSegmentsClosePathReferstoLastMove(t *testing.T) {
	last := func(seq iter.Seq[PathSegment]) PathSegment {
		var el PathSegment
		for el = range seq {
		}
		return el
	}
	var p BezPath
	p.MoveTo(Pt(5.0, 5.0))
	p.LineTo(Pt(15.0, 15.0))
	p.MoveTo(Pt(10.0, 10.0))
	p.LineTo(Pt(15.0, 15.0))
	p.ClosePath()

	want := Line{Pt(15, 15), Pt(10, 10)}.Seg()
	diff(t, want, last(p.Segments()))
}

func TestSegmentsToElements(t *testing.T) {
	segs := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		QuadBez{Pt(10, 0), Pt(15, 5), Pt(10, 10)}.Seg(),
		// Disjoint, so a MoveTo is inserted.
		Line{Pt(50, 50), Pt(60, 60)}.Seg(),
	}
	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		QuadTo(Pt(15, 5), Pt(10, 10)),
		MoveTo(Pt(50, 50)),
		LineTo(Pt(60, 60)),
	}
	diff(t, want, BezPath(slices.Collect(Elements(slices.Values(segs)))))
}

func TestCurrentPoint(t *testing.T) {
	tests := []struct {
		name string
		path BezPath
		want Point
	}{
		{"empty", nil, Point{}},
		{"move only", BezPath{MoveTo(Pt(3, 4))}, Pt(3, 4)},
		{"open", BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), CubicTo(Pt(10, 5), Pt(5, 10), Pt(0, 10))}, Pt(0, 10)},
		{"closed", BezPath{MoveTo(Pt(1, 1)), LineTo(Pt(10, 1)), LineTo(Pt(10, 10)), ClosePath()}, Pt(1, 1)},
		{"second subpath", BezPath{MoveTo(Pt(1, 1)), LineTo(Pt(2, 2)), ClosePath(), MoveTo(Pt(7, 7)), QuadTo(Pt(8, 8), Pt(9, 7))}, Pt(9, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.path.CurrentPoint())
		})
	}
}

func TestBezPathBoundingBox(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 100), Pt(100, 100), Pt(100, 0))
	p.LineTo(Pt(50, -20))
	diff(t, Rect{0, -20, 100, 75}, p.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))

	diff(t, Rect{4, 2, 4, 2}, BezPath{MoveTo(Pt(4, 2))}.BoundingBox())
}

func TestPathSegmentTransform(t *testing.T) {
	seg := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 6)}.Seg()
	got := seg.Transform(Translate(Vec(10, 20)))
	want := CubicBez{Pt(10, 20), Pt(11, 22), Pt(13, 24), Pt(15, 26)}.Seg()
	diff(t, want, got)
}

func TestPathSegmentEnd(t *testing.T) {
	diff(t, Pt(1, 1), Line{Pt(0, 0), Pt(1, 1)}.Seg().End())
	diff(t, Pt(2, 0), QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 0)}.Seg().End())
	diff(t, Pt(3, 0), CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}.Seg().End())
}
