package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCirclePath(t *testing.T) {
	center := Pt(5, 5)
	c := Circle{center, 5}
	p := c.Path(1e-9)

	if got, want := p.Arclen(1e-9), 2*math.Pi*5; math.Abs(got-want) > 1e-6 {
		t.Errorf("got circumference %v, want %v", got, want)
	}
	diff(t, c.BoundingBox(), p.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(10, 5), p.CurrentPoint(), cmpopts.EquateApprox(0, 1e-12))
}

func TestCircleSegmentWedge(t *testing.T) {
	// A quarter wedge from 12 o'clock to 3 o'clock.
	cs := Circle{Pt(0, 0), 10}.Segment(0, -math.Pi/2, math.Pi/2)
	p := cs.Path(1e-9)
	approx := cmpopts.EquateApprox(0, 1e-9)

	diff(t, Pt(0, 0), p[0].P0, approx)
	diff(t, Pt(0, -10), p[1].P0, approx)
	if last := p[len(p)-1]; last.Kind != ClosePathKind {
		t.Errorf("wedge ends with %v, want ClosePath", last.Kind)
	}
	diff(t, Rect{0, -10, 10, 0}, p.BoundingBox(), approx)

	want := 20 + 2*math.Pi*10/4
	if got := p.Arclen(1e-9); math.Abs(got-want) > 1e-6 {
		t.Errorf("got wedge perimeter %v, want %v", got, want)
	}
}

func TestArcEndpoints(t *testing.T) {
	a := Arc{
		Center:     Pt(50, 50),
		Radii:      Vec(20, 20),
		StartAngle: math.Pi,
		SweepAngle: math.Pi,
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, Pt(30, 50), a.StartPoint(), approx)
	diff(t, Pt(70, 50), a.EndPoint(), approx)

	p := a.Path(0.1)
	diff(t, a.StartPoint(), p[0].P0, approx)
	diff(t, a.EndPoint(), p.CurrentPoint(), approx)
	// The upper half circle in y-down space.
	diff(t, Rect{30, 30, 70, 50}, a.BoundingBox(), cmpopts.EquateApprox(0, 1e-3))
}
