package curve

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is an element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a Bézier path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type PathSegment struct {
	// Not an interface, so that segments can be passed around without
	// allocating and so that Line, QuadBez and CubicBez keep returning their
	// own types.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ Shape = PathSegment{}
var _ ParametricCurve = PathSegment{}
var _ Sampleable = PathSegment{}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only valid when Kind ==
// CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

// BoundingBox implements Shape.
func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// TrimmedBoundingBox returns the bounding box of the segment between the
// parameters start and end.
func (seg PathSegment) TrimmedBoundingBox(start, end float64) Rect {
	return seg.Subsegment(start, end).BoundingBox()
}

func (seg PathSegment) Path(tolerance float64) BezPath {
	return slices.Collect(seg.PathElements(tolerance))
}

// PathElements implements Shape.
func (seg PathSegment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(seg.P0)) &&
			yield(seg.PathElement())
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) SubsegmentCurve(start, end float64) ParametricCurve {
	return seg.Subsegment(start, end)
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	default:
		return seg.P3
	}
}

func (seg PathSegment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	default:
		return 0
	}
}

func (seg PathSegment) SolveForArclen(arclen, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SolveForArclen(arclen, accuracy)
	case QuadKind:
		return SolveForArclen(seg.Quad(), arclen, accuracy)
	case CubicKind:
		return SolveForArclen(seg.Cubic(), arclen, accuracy)
	default:
		return 0
	}
}

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// BezPath is a Bézier path: a sequence of path elements. Build one with the
// MoveTo, LineTo, QuadTo, CubicTo and ClosePath methods, from a [Shape], or
// with [ParseSVG].
//
// To position things along the path by length, measure it with
// [BezPath.Measure].
type BezPath []PathElement

var _ Shape = BezPath{}

func (p BezPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values([]PathElement(p))
}

func (p BezPath) Path(tolerance float64) BezPath {
	return p
}

// Transform returns a new path with an affine transformation applied to each
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

func (p BezPath) Arclen(accuracy float64) float64 {
	return SegmentsArclen(p.Segments(), accuracy)
}

// BoundingBox returns the bounding box of the path's segments. A path
// consisting of a lone MoveTo has the zero-area box around that point.
func (p BezPath) BoundingBox() Rect {
	if len(p) == 1 && p[0].Kind == MoveToKind {
		return NewRectFromPoints(p[0].P0, p[0].P0)
	}
	return SegmentsBoundingBox(p.Segments())
}

// CurrentPoint returns the point a following element would continue from:
// the end point of the last element, or the start of the subpath if the path
// was closed. The zero point is returned for an empty path.
func (p BezPath) CurrentPoint() Point {
	var start, current Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start = el.P0
			current = el.P0
		case ClosePathKind:
			current = start
		default:
			current, _ = el.EndPoint()
		}
	}
	return current
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

func SegmentsArclen(seq iter.Seq[PathSegment], accuracy float64) float64 {
	var sum float64
	for s := range seq {
		sum += s.Arclen(accuracy)
	}
	return sum
}

func SegmentsBoundingBox(seq iter.Seq[PathSegment]) Rect {
	var bbox Rect
	first := true
	for s := range seq {
		sbbox := s.BoundingBox()
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox
}
