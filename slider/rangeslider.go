package slider

import (
	"fmt"
	"math"

	"github.com/fieldkit/curve"
)

// Bound selects one of the two thumbs of a [RangeSlider].
type Bound int

const (
	LowerBound Bound = iota
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// RangeOptions configures a [RangeSlider].
type RangeOptions struct {
	// LowerLimit and UpperLimit restrict where each thumb can go. The zero
	// value means [Unit].
	LowerLimit Range
	UpperLimit Range
	// Segments is the sample resolution. 0 means [curve.LegacySegments].
	Segments int
	// Accuracy is used to measure the paths' arc lengths. 0 means
	// [curve.DefaultAccuracy].
	Accuracy float64
}

// RangeSlider selects a closed range of normalized values with two thumbs
// sharing one path. The lower value never exceeds the upper one.
type RangeSlider struct {
	value      Range
	lowerLimit Range
	upperLimit Range

	track   curve.BezPath
	thumb   curve.BezPath
	tracked *curve.MeasuredPath
	samples curve.Samples
}

// NewRangeSlider returns a range slider along the given paths. The initial
// value is limited and ordered like any later update.
func NewRangeSlider(track, thumb curve.BezPath, value Range, opts RangeOptions) *RangeSlider {
	if opts.LowerLimit == (Range{}) {
		opts.LowerLimit = Unit
	}
	if opts.UpperLimit == (Range{}) {
		opts.UpperLimit = Unit
	}
	if opts.Segments == 0 {
		opts.Segments = curve.LegacySegments
	}
	if opts.Accuracy == 0 {
		opts.Accuracy = curve.DefaultAccuracy
	}
	s := &RangeSlider{
		lowerLimit: opts.LowerLimit,
		upperLimit: opts.UpperLimit,
		track:      track,
		thumb:      thumb,
		tracked:    track.Measure(opts.Accuracy),
		samples:    curve.NewSamples(thumb.Measure(opts.Accuracy), opts.Segments),
	}
	s.value.Lower = s.lowerLimit.Clamp(value.Lower)
	s.SetUpper(value.Upper)
	return s
}

func (s *RangeSlider) Value() Range           { return s.value }
func (s *RangeSlider) LowerLimit() Range      { return s.lowerLimit }
func (s *RangeSlider) UpperLimit() Range      { return s.upperLimit }
func (s *RangeSlider) Track() curve.BezPath   { return s.track }
func (s *RangeSlider) Thumb() curve.BezPath   { return s.thumb }
func (s *RangeSlider) Samples() curve.Samples { return s.samples }

// SetLower moves the lower bound, limited to the lower limit and to the
// current upper bound.
func (s *RangeSlider) SetLower(v float64) {
	s.value.Lower = min(s.lowerLimit.Clamp(v), s.value.Upper)
}

// SetUpper moves the upper bound, limited to the upper limit and to the
// current lower bound.
func (s *RangeSlider) SetUpper(v float64) {
	s.value.Upper = max(s.upperLimit.Clamp(v), s.value.Lower)
}

// Set moves the given bound.
func (s *RangeSlider) Set(b Bound, v float64) {
	if b == LowerBound {
		s.SetLower(v)
	} else {
		s.SetUpper(v)
	}
}

func (s *RangeSlider) bound(b Bound) float64 {
	if b == LowerBound {
		return s.value.Lower
	}
	return s.value.Upper
}

// ThumbPosition returns the center of the given thumb.
func (s *RangeSlider) ThumbPosition(b Bound) curve.Point {
	return s.samples.PointForValue(clamp01(s.bound(b)))
}

// FilledTrack returns the part of the track between the two bounds.
func (s *RangeSlider) FilledTrack() curve.BezPath {
	return s.tracked.Trim(s.value.Lower, s.value.Upper)
}

// Update handles a drag of the given thumb.
func (s *RangeSlider) Update(b Bound, ev Event) (Message, bool) {
	switch ev := ev.(type) {
	case DragChanged:
		old := s.value
		s.Set(b, s.samples.ValueForPoint(ev.Location))
		if s.value == old {
			return nil, false
		}
		return RangeChanged{Value: s.value}, true
	case DragEnded:
		return RangeFinished{Value: s.value}, true
	default:
		return nil, false
	}
}

// RangeLayout returns the fill and thumb lines of a horizontal range slider
// of the given width. The slider is 20 units high.
func RangeLayout(width float64) (fill, thumb curve.Line) {
	const y = 10
	fill = curve.Line{P0: curve.Pt(5, y), P1: curve.Pt(width-5, y)}
	thumb = curve.Line{P0: curve.Pt(10, y), P1: curve.Pt(width-10, y)}
	return fill, thumb
}

// ThumbShape returns the half disc drawn for a range slider's thumb: the left
// half for the lower bound and the right half for the upper one.
func ThumbShape(b Bound, center curve.Point, size curve.Size) curve.CircleSegment {
	start := math.Pi / 2
	if b == UpperBound {
		start = -math.Pi / 2
	}
	return curve.Circle{Center: center, Radius: size.MinSide() / 2}.Segment(0, start, math.Pi)
}
