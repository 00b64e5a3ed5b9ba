package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var horizontal = Line{Pt(0, 0), Pt(100, 0)}

func wiggly() BezPath {
	var p BezPath
	p.MoveTo(Pt(0, 50))
	p.QuadTo(Pt(50, 150), Pt(100, 50))
	p.QuadTo(Pt(150, -50), Pt(200, 50))
	p.CubicTo(Pt(250, 150), Pt(300, -50), Pt(350, 50))
	return p
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}

func TestSamplesCount(t *testing.T) {
	paths := map[string]Sampleable{
		"line":   horizontal,
		"quad":   QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)},
		"cubic":  parabola,
		"wiggly": wiggly().Measure(DefaultAccuracy),
	}
	for name, p := range paths {
		for _, segments := range []int{1, 4, 10, 100} {
			if n := NewSamples(p, segments).Len(); n != segments+2 {
				t.Errorf("%s: got %d samples for %d segments, want %d", name, n, segments, segments+2)
			}
		}
	}
}

func TestSamplesEndPointExact(t *testing.T) {
	closed := Rect{10, 10, 60, 40}.Path(0.1)
	tests := []struct {
		name string
		path Sampleable
		want Point
	}{
		{"line", horizontal, Pt(100, 0)},
		{"cubic", parabola, Pt(100, 100)},
		{"wiggly", wiggly().Measure(DefaultAccuracy), Pt(350, 50)},
		// A closed path ends where it started.
		{"closed", closed.Measure(DefaultAccuracy), Pt(10, 10)},
	}
	for _, tt := range tests {
		s := NewSamples(tt.path, 7)
		if got := s.At(s.Len() - 1); got != tt.want {
			t.Errorf("%s: last sample is %v, want exactly %v", tt.name, got, tt.want)
		}
	}
}

func TestSamplesStraightLine(t *testing.T) {
	s := NewSamples(horizontal, 10)
	approx := cmpopts.EquateApprox(0, 1e-9)

	want := []Point{Pt(0.0005, 0)}
	for i := range 10 {
		want = append(want, Pt(float64(i)*10+5, 0))
	}
	want = append(want, Pt(100, 0))
	diff(t, want, s.Points(), approx)

	if p := s.PointForValue(0.5); math.Abs(p.X-50) > 10 {
		t.Errorf("PointForValue(0.5) = %v, want x within 10 of 50", p)
	}
	if v := s.ValueForPoint(Pt(75, 0)); math.Abs(v-0.75) > 0.1 {
		t.Errorf("ValueForPoint((75, 0)) = %v, want within 0.1 of 0.75", v)
	}
	// Sample 8 is at x=75, and there are 12 samples.
	if v := s.ValueForPoint(Pt(75, 0)); v != 8.0/11.0 {
		t.Errorf("ValueForPoint((75, 0)) = %v, want %v", v, 8.0/11.0)
	}
}

func TestSamplesDegenerate(t *testing.T) {
	paths := map[string]Sampleable{
		"line":     Line{Pt(5, 5), Pt(5, 5)},
		"measured": BezPath{MoveTo(Pt(5, 5)), LineTo(Pt(5, 5))}.Measure(DefaultAccuracy),
	}
	for name, p := range paths {
		s := NewSamples(p, 4)
		if s.Len() != 6 {
			t.Fatalf("%s: got %d samples, want 6", name, s.Len())
		}
		for i, pt := range s.All() {
			if pt != Pt(5, 5) {
				t.Errorf("%s: sample %d is %v, want (5, 5)", name, i, pt)
			}
		}
		if v := s.ValueForPoint(Pt(999, 999)); v != 0 {
			t.Errorf("%s: ValueForPoint = %v, want 0", name, v)
		}
	}
}

func TestSamplesValueOne(t *testing.T) {
	s := NewSamples(parabola, 25)
	last := s.At(s.Len() - 1)
	for _, v := range []float64{1, 1.0001, 2, math.Inf(1)} {
		if got := s.PointForValue(v); got != last {
			t.Errorf("PointForValue(%v) = %v, want last sample %v", v, got, last)
		}
	}
	if got := s.PointForValue(0); got != s.At(0) {
		t.Errorf("PointForValue(0) = %v, want first sample %v", got, s.At(0))
	}
}

func TestSamplesNegativeValuePanics(t *testing.T) {
	s := NewSamples(horizontal, 10)
	mustPanic(t, func() { s.PointForValue(-0.5) })
	mustPanic(t, func() { s.PointForValue(math.NaN()) })
}

func TestSamplesInvalid(t *testing.T) {
	mustPanic(t, func() { NewSamples(horizontal, 0) })
	mustPanic(t, func() { NewSamples(horizontal, -3) })
	mustPanic(t, func() { Samples{}.ValueForPoint(Pt(1, 1)) })
}

func TestSamplesDeterministic(t *testing.T) {
	p := wiggly()
	a := NewSamples(p.Measure(DefaultAccuracy), 50)
	b := NewSamples(p.Measure(DefaultAccuracy), 50)
	diff(t, a.Points(), b.Points())
	for _, pt := range []Point{Pt(0, 0), Pt(123, 45), Pt(-50, 300)} {
		if va, vb := a.ValueForPoint(pt), b.ValueForPoint(pt); va != vb {
			t.Errorf("ValueForPoint(%v) differs between identical builds: %v and %v", pt, va, vb)
		}
	}
}

func TestSamplesRoundTrip(t *testing.T) {
	paths := map[string]Sampleable{
		"line":   horizontal,
		"quad":   QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)},
		"wiggly": wiggly().Measure(DefaultAccuracy),
	}
	for name, p := range paths {
		for _, segments := range []int{5, 10, 100} {
			s := NewSamples(p, segments)
			for i := range 101 {
				v := float64(i) / 100
				got := s.ValueForPoint(s.PointForValue(v))
				if math.Abs(got-v) >= 1/float64(segments) {
					t.Errorf("%s/%d: round trip of %v gave %v", name, segments, v, got)
				}
			}
		}
	}
}

func TestSamplesMonotonic(t *testing.T) {
	s := NewSamples(horizontal, 10)
	prev := -1.0
	for x := -10.0; x <= 110; x++ {
		// Points off the line project onto it.
		v := s.ValueForPoint(Pt(x, 3))
		if v < prev {
			t.Fatalf("ValueForPoint((%v, 3)) = %v, less than %v", x, v, prev)
		}
		prev = v
	}

	prevX := math.Inf(-1)
	for i := range 101 {
		pt := s.PointForValue(float64(i) / 100)
		if pt.X < prevX {
			t.Fatalf("PointForValue(%v) = %v moved backwards", float64(i)/100, pt)
		}
		prevX = pt.X
	}
}

func TestSamplesArcLengthSpacing(t *testing.T) {
	// Two collinear lines of very different lengths. Sampling by arc length
	// spaces the samples evenly regardless of where the joint is.
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(100, 0))
	s := NewSamples(p.Measure(DefaultAccuracy), 10)

	got := s.Points()[1:11]
	var want []Point
	for i := range 10 {
		want = append(want, Pt(float64(i)*10+5, 0))
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
}

func TestSamplesNearestTie(t *testing.T) {
	s := NewSamples(horizontal, 10)
	// Equidistant from the samples at x=5 and x=15.
	idx, d := s.Nearest(Pt(10, 0))
	if idx != 1 {
		t.Errorf("got index %d, want 1", idx)
	}
	if !cmp.Equal(d, 25.0, cmpopts.EquateApprox(0, 1e-9)) {
		t.Errorf("got squared distance %v, want 25", d)
	}
}
