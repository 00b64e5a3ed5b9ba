package slider

import (
	"math"

	"github.com/fieldkit/curve"
)

// DefaultAngleLimit is the limit of an [AngleEditor], in degrees, when none
// is given.
var DefaultAngleLimit = Range{0, 360}

const (
	// shadowRadius is the room left around the dial for its drop shadow.
	shadowRadius = 1
	// dialTolerance is the accuracy of the dial's Bézier approximations.
	dialTolerance = 0.01
)

// AngleEditor edits an angle, in degrees, on a round dial. The angle is shown
// as a wedge centered on the top of the dial, inside a wedge showing the
// limit. Dragging the thumb around the rim of the limit wedge changes the
// angle.
type AngleEditor struct {
	angle    float64
	limit    Range
	segments int
	accuracy float64

	// Layout from the last call to Layout, used to interpret drags.
	dial *Dial
}

// NewAngleEditor returns an angle editor. A zero limit means
// [DefaultAngleLimit].
func NewAngleEditor(angle float64, limit Range) *AngleEditor {
	if limit == (Range{}) {
		limit = DefaultAngleLimit
	}
	return &AngleEditor{
		angle:    limit.Clamp(angle),
		limit:    limit,
		segments: curve.DefaultSegments,
		accuracy: curve.DefaultAccuracy,
	}
}

func (e *AngleEditor) Angle() float64 { return e.angle }
func (e *AngleEditor) Limit() Range   { return e.limit }

// SetAngle sets the angle, clamped to the limit.
func (e *AngleEditor) SetAngle(deg float64) {
	e.angle = e.limit.Clamp(deg)
}

// Dial is the geometry of an angle editor laid out at a particular size.
// Angles grow clockwise on screen, and 0° is at the top.
type Dial struct {
	Center   curve.Point
	Radius   float64
	Geometry DialGeometry

	// Limit is the closed wedge spanning the limit, or a full circle.
	Limit curve.BezPath
	// Angle is the closed wedge for the angle, centered on the top.
	Angle curve.BezPath
	// Edges are the radii at the sides of the angle wedge. There are none
	// for a full turn and only one for an angle of 0.
	Edges curve.BezPath
	// Track is the open arc along the rim of the limit wedge.
	Track curve.BezPath
	// Thumb is the point on Track for the current angle.
	Thumb curve.Point

	samples curve.Samples
}

// Layout computes the dial for a frame of the given size. The result is
// remembered to interpret later drags.
func (e *AngleEditor) Layout(size curve.Size, cs ControlSize) Dial {
	g := cs.DialGeometry()
	center := size.Center()
	radius := size.MinSide()/2 - g.BorderWidth - shadowRadius

	limitStart := e.limit.Lower - 90
	limitEnd := e.limit.Upper - 90
	angleStart := -e.angle/2 - 90
	angleEnd := e.angle/2 - 90

	d := Dial{
		Center:   center,
		Radius:   radius,
		Geometry: g,
		Limit:    wedge(center, radius, limitStart, limitEnd),
		Angle:    wedge(center, radius, angleStart, angleEnd),
	}
	if e.angle != 360 {
		d.Edges.MoveTo(center)
		d.Edges.LineTo(rim(center, radius, angleStart))
		if e.angle != 0 {
			d.Edges.MoveTo(center)
			d.Edges.LineTo(rim(center, radius, angleEnd))
		}
	}
	d.Track = curve.Arc{
		Center:     center,
		Radii:      curve.Vec(radius, radius),
		StartAngle: radians(limitStart),
		SweepAngle: radians(limitEnd - limitStart),
	}.Path(dialTolerance)
	d.samples = curve.NewSamples(d.Track.Measure(e.accuracy), e.segments)
	d.Thumb = d.samples.PointForValue(clamp01(e.limit.Normalize(e.angle)))

	e.dial = &d
	return d
}

// Update handles a drag of the thumb. Drags before the first Layout are
// ignored.
func (e *AngleEditor) Update(ev Event) (Message, bool) {
	if e.dial == nil {
		return nil, false
	}
	switch ev := ev.(type) {
	case DragChanged:
		v := e.limit.Denormalize(e.dial.samples.ValueForPoint(ev.Location))
		if v == e.angle {
			return nil, false
		}
		e.angle = v
		return ValueChanged{Value: v}, true
	case DragEnded:
		return DragFinished{Value: e.angle}, true
	default:
		return nil, false
	}
}

// wedge returns the closed wedge between the two angles, in degrees, or a
// circle if they are a full turn or more apart.
func wedge(center curve.Point, radius, start, end float64) curve.BezPath {
	c := curve.Circle{Center: center, Radius: radius}
	if end-start >= 360 {
		return c.Path(dialTolerance)
	}
	return c.Segment(0, radians(start), radians(end-start)).Path(dialTolerance)
}

func rim(center curve.Point, radius, deg float64) curve.Point {
	return center.Translate(curve.VecFromAngle(radians(deg)).Mul(radius))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
