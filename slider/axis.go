package slider

import (
	"fmt"

	"github.com/fieldkit/curve"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// vec returns a vector of the given length along the axis.
func (a Axis) vec(length float64) curve.Vec2 {
	if a == Horizontal {
		return curve.Vec(length, 0)
	}
	return curve.Vec(0, length)
}

// AxisLayout returns the track and thumb lines of a straight slider of the
// given size. Horizontal sliders run left to right, vertical ones bottom to
// top. The lines are centered on the thumb's height; the track is inset by
// half the track width so its round caps stay inside, and the thumb line by
// half the thumb width.
func AxisLayout(axis Axis, size curve.Size, g Geometry) (track, thumb curve.Line) {
	length := size.Width
	if axis == Vertical {
		length = size.Height
	}
	line := curve.Line{P1: curve.Point(axis.vec(length))}
	if axis == Vertical {
		line.P0, line.P1 = line.P1, line.P0
	}
	half := g.ThumbSize.Scale(0.5)
	offset := axis.Cross().vec(half.Height)

	inset := axis.vec(g.TrackWidth / 2)
	track = line.Inset(inset.X, inset.Y).Translate(offset)
	inset = axis.vec(half.Width)
	thumb = line.Inset(inset.X, inset.Y).Translate(offset)
	return track, thumb
}

// AxisFrame returns the size a straight slider occupies along the given
// length: the thumb's height across the axis, and at least one thumb along
// it.
func AxisFrame(axis Axis, length float64, g Geometry) curve.Size {
	if axis == Vertical {
		return curve.Sz(g.ThumbSize.Height, max(length, g.ThumbSize.Height))
	}
	return curve.Sz(max(length, g.ThumbSize.Width), g.ThumbSize.Height)
}

// NewAxisSlider returns a horizontal or vertical slider laid out in a frame of
// the given size.
func NewAxisSlider(axis Axis, size curve.Size, cs ControlSize, value float64, opts Options) *PathSlider {
	track, thumb := AxisLayout(axis, size, cs.Geometry())
	return NewPathSlider(track.Path(0), thumb.Path(0), value, opts)
}
