package curve

import (
	"iter"
	"math"
	"slices"
)

type Circle struct {
	Center Point
	Radius float64
}

var _ Shape = Circle{}

func (c Circle) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

// PathElements traces the circle clockwise on screen, starting and ending at
// its rightmost point.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := math.Abs(c.Radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			// This is empirically determined to fall within error tolerance.
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := c.Center.X, c.Center.Y
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Segment returns a circle segment by cutting out parts of this circle.
func (c Circle) Segment(innerRadius float64, startAngle, sweepAngle float64) CircleSegment {
	return CircleSegment{
		Center:      c.Center,
		OuterRadius: c.Radius,
		InnerRadius: innerRadius,
		StartAngle:  startAngle,
		SweepAngle:  sweepAngle,
	}
}

func (c Circle) Translate(v Vec2) Circle {
	c.Center = c.Center.Translate(v)
	return c
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return NewRectFromCenter(c.Center, Sz(2*r, 2*r))
}

// CircleSegment represents a segment of a circle.
//
// With an InnerRadius of 0 the shape is a pie wedge, otherwise it is a
// doughnut segment.
type CircleSegment struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	SweepAngle  float64
}

var _ Shape = CircleSegment{}

func (cs CircleSegment) Path(tolerance float64) BezPath {
	return slices.Collect(cs.PathElements(tolerance))
}

// PathElements implements Shape. The outline is closed.
func (cs CircleSegment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(pointOnCircle(cs.Center, cs.InnerRadius, cs.StartAngle))) {
			return
		}

		// First radius
		if !yield(LineTo(pointOnCircle(cs.Center, cs.OuterRadius, cs.StartAngle))) {
			return
		}

		// Outer arc
		a := Arc{
			Center:     cs.Center,
			Radii:      Vec2{cs.OuterRadius, cs.OuterRadius},
			StartAngle: cs.StartAngle,
			SweepAngle: cs.SweepAngle,
		}
		for el := range dropFirst(a.PathElements(tolerance)) {
			if !yield(el) {
				return
			}
		}

		if cs.InnerRadius > 0 {
			// Second radius
			if !yield(LineTo(pointOnCircle(cs.Center, cs.InnerRadius, cs.StartAngle+cs.SweepAngle))) {
				return
			}

			// Inner arc
			a = Arc{
				Center:     cs.Center,
				Radii:      Vec2{cs.InnerRadius, cs.InnerRadius},
				StartAngle: cs.StartAngle + cs.SweepAngle,
				SweepAngle: -cs.SweepAngle,
			}
			for el := range dropFirst(a.PathElements(tolerance)) {
				if !yield(el) {
					return
				}
			}
		}
		yield(ClosePath())
	}
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	return center.Translate(VecFromAngle(angle).Mul(radius))
}

func (cs CircleSegment) Translate(v Vec2) CircleSegment {
	cs.Center = cs.Center.Translate(v)
	return cs
}

// BoundingBox returns the bounding box of the segment's outline.
func (cs CircleSegment) BoundingBox() Rect {
	return cs.Path(0.1).BoundingBox()
}
