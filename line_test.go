package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := l.Arclen(epsilon) - want; d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := l.SolveForArclen(want/3.0, epsilon)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineSolveForArclenDegenerate(t *testing.T) {
	l := Line{Pt(5, 5), Pt(5, 5)}
	if ts := l.SolveForArclen(1, 1e-9); ts != 0 {
		t.Errorf("got t=%v for zero-length line, want 0", ts)
	}
}

func TestLineTrimmedBoundingBox(t *testing.T) {
	l := Line{Pt(100, 50), Pt(0, 0)}
	got := l.TrimmedBoundingBox(0.25, 0.5)
	diff(t, Rect{50, 25, 75, 37.5}, got, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(62.5, 31.25), got.Center(), cmpopts.EquateApprox(0, 1e-12))
}

func TestLineInset(t *testing.T) {
	tests := []struct {
		in     Line
		dx, dy float64
		want   Line
	}{
		{Line{Pt(0, 10), Pt(100, 10)}, 2, 0, Line{Pt(2, 10), Pt(98, 10)}},
		{Line{Pt(0, 100), Pt(0, 0)}, 0, 5, Line{Pt(0, 95), Pt(0, 5)}},
		{Line{Pt(100, 0), Pt(0, 0)}, 10, 0, Line{Pt(90, 0), Pt(10, 0)}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.in.Inset(tt.dx, tt.dy))
	}
}
