package curve

import (
	"iter"
	"math"
	"slices"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ Shape = Rect{}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the right and
// down (for positive sizes) from the origin. Width and height are ensured to be
// non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// NewRectFromCenter returns a rectangle of the given size centered on center.
func NewRectFromCenter(center Point, size Size) Rect {
	half := size.Scale(0.5)
	return Rect{
		X0: center.X - half.Width,
		Y0: center.Y - half.Height,
		X1: center.X + half.Width,
		Y1: center.Y + half.Height,
	}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// Center returns the midpoint of the rectangle. For the bounding box of a
// short stretch of path this is the point that stands in for the stretch.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
// Negative amounts shrink it.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

func (r Rect) Path(tolerance float64) BezPath { return slices.Collect(r.PathElements(tolerance)) }

func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

// RoundedRect creates a new [RoundedRect] from this rectangle and the provided
// corner radii. Radii are clamped to half the shortest side.
func (r Rect) RoundedRect(radii RoundedRectRadii) RoundedRect {
	r = r.Abs()
	shortestSide := min(r.Width(), r.Height())
	radii = radii.Abs().Clamp(shortestSide / 2)
	return RoundedRect{
		Rect:  r,
		Radii: radii,
	}
}

type RoundedRect struct {
	Rect
	Radii RoundedRectRadii
}

var _ Shape = RoundedRect{}

func NewRoundedRect(x0, y0, x1, y1, radius float64) RoundedRect {
	return Rect{x0, y0, x1, y1}.RoundedRect(RoundedRectRadii{radius, radius, radius, radius})
}

func dropFirst[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for el := range seq {
			if first {
				first = false
				continue
			}
			if !yield(el) {
				break
			}
		}
	}
}

func (r RoundedRect) Path(tolerance float64) BezPath {
	return slices.Collect(r.PathElements(tolerance))
}

// PathElements traces the rounded rectangle clockwise (in y-down space),
// starting at the bottom of the top left corner.
func (r RoundedRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	rr := r.Rect
	type corner struct {
		quadrant float64
		center   Point
		radius   float64
		next     Point
	}
	corners := [...]corner{
		{2, Pt(rr.X0+r.Radii.TopLeft, rr.Y0+r.Radii.TopLeft), r.Radii.TopLeft, Pt(rr.X1-r.Radii.TopRight, rr.Y0)},
		{3, Pt(rr.X1-r.Radii.TopRight, rr.Y0+r.Radii.TopRight), r.Radii.TopRight, Pt(rr.X1, rr.Y1-r.Radii.BottomRight)},
		{0, Pt(rr.X1-r.Radii.BottomRight, rr.Y1-r.Radii.BottomRight), r.Radii.BottomRight, Pt(rr.X0+r.Radii.BottomLeft, rr.Y1)},
		{1, Pt(rr.X0+r.Radii.BottomLeft, rr.Y1-r.Radii.BottomLeft), r.Radii.BottomLeft, Pt(rr.X0, rr.Y0+r.Radii.TopLeft)},
	}
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(Pt(rr.X0, rr.Y0+r.Radii.TopLeft))) {
			return
		}
		for i, c := range corners {
			a := Arc{
				Center:     c.center,
				Radii:      Vec(c.radius, c.radius),
				StartAngle: math.Pi / 2 * c.quadrant,
				SweepAngle: math.Pi / 2,
			}
			for el := range dropFirst(a.PathElements(tolerance)) {
				if !yield(el) {
					return
				}
			}
			// The last side is closed by ClosePath.
			if i < len(corners)-1 {
				if !yield(LineTo(c.next)) {
					return
				}
			}
		}
		yield(ClosePath())
	}
}

type RoundedRectRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

func (r RoundedRectRadii) Abs() RoundedRectRadii {
	return RoundedRectRadii{
		TopLeft:     math.Abs(r.TopLeft),
		TopRight:    math.Abs(r.TopRight),
		BottomLeft:  math.Abs(r.BottomLeft),
		BottomRight: math.Abs(r.BottomRight),
	}
}

func (r RoundedRectRadii) Clamp(max float64) RoundedRectRadii {
	return RoundedRectRadii{
		TopLeft:     min(r.TopLeft, max),
		TopRight:    min(r.TopRight, max),
		BottomLeft:  min(r.BottomLeft, max),
		BottomRight: min(r.BottomRight, max),
	}
}
