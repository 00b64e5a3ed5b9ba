package curve

import (
	"iter"
	"slices"
)

// Line represents a line segment. It is both a [Shape] and a [ParametricCurve],
// and it can be sampled directly with [NewSamples].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Shape = Line{}
var _ ParametricCurve = Line{}
var _ ArclenSolver = Line{}
var _ Sampleable = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter at which the line has the given arc
// length. Zero-length lines report 0.
func (l Line) SolveForArclen(arclen float64, accuracy float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return min(max(arclen/n, 0), 1)
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// TrimmedBoundingBox returns the bounding box of the line between the
// parameters start and end.
func (l Line) TrimmedBoundingBox(start, end float64) Rect {
	return l.Subsegment(start, end).BoundingBox()
}

func (l Line) Path(tolerance float64) BezPath {
	return slices.Collect(l.PathElements(tolerance))
}

func (l Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) SubsegmentCurve(start, end float64) ParametricCurve {
	return l.Subsegment(start, end)
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

// Inset moves both end points towards each other, by dx horizontally and dy
// vertically. Each axis is handled independently, so a line running right to
// left is inset by moving P0 left and P1 right.
func (l Line) Inset(dx, dy float64) Line {
	if l.P0.X <= l.P1.X {
		l.P0.X += dx
		l.P1.X -= dx
	} else {
		l.P0.X -= dx
		l.P1.X += dx
	}
	if l.P0.Y <= l.P1.Y {
		l.P0.Y += dy
		l.P1.Y -= dy
	} else {
		l.P0.Y -= dy
		l.P1.Y += dy
	}
	return l
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
