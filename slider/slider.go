package slider

import "github.com/fieldkit/curve"

// Options configures a [PathSlider].
type Options struct {
	// Range is the range of values. The zero value means [Unit].
	Range Range
	// Segments is the sample resolution. 0 means [curve.DefaultSegments].
	Segments int
	// Accuracy is used to measure the paths' arc lengths. 0 means
	// [curve.DefaultAccuracy].
	Accuracy float64
}

func (opts Options) withDefaults() Options {
	if opts.Range == (Range{}) {
		opts.Range = Unit
	}
	if opts.Segments == 0 {
		opts.Segments = curve.DefaultSegments
	}
	if opts.Accuracy == 0 {
		opts.Accuracy = curve.DefaultAccuracy
	}
	return opts
}

// PathSlider is a slider whose thumb moves along an arbitrary path.
//
// The slider has two paths: the track, which is drawn and partially filled up
// to the current value, and the thumb path the thumb's center travels on.
// They are often the same path, but a track is commonly inset less than the
// thumb path so the track's ends peek out from under the thumb.
type PathSlider struct {
	value    float64
	rng      Range
	segments int
	accuracy float64

	track   curve.BezPath
	thumb   curve.BezPath
	tracked *curve.MeasuredPath
	samples curve.Samples
}

// NewPathSlider returns a slider along the given paths. value is not clamped
// to the range; out of range values are shown at the nearest end.
func NewPathSlider(track, thumb curve.BezPath, value float64, opts Options) *PathSlider {
	opts = opts.withDefaults()
	s := &PathSlider{
		value:    value,
		rng:      opts.Range,
		segments: opts.Segments,
		accuracy: opts.Accuracy,
	}
	s.SetPaths(track, thumb)
	return s
}

func (s *PathSlider) Value() float64       { return s.value }
func (s *PathSlider) SetValue(v float64)   { s.value = v }
func (s *PathSlider) Range() Range         { return s.rng }
func (s *PathSlider) Segments() int        { return s.segments }
func (s *PathSlider) Track() curve.BezPath { return s.track }
func (s *PathSlider) Thumb() curve.BezPath { return s.thumb }

// Samples returns the sample set of the thumb path.
func (s *PathSlider) Samples() curve.Samples { return s.samples }

// Normalized returns the value normalized to the range, clamped to [0, 1].
func (s *PathSlider) Normalized() float64 {
	return clamp01(s.rng.Normalize(s.value))
}

// ThumbPosition returns the center of the thumb.
func (s *PathSlider) ThumbPosition() curve.Point {
	return s.samples.PointForValue(s.Normalized())
}

// FilledTrack returns the part of the track from its start up to the current
// value.
func (s *PathSlider) FilledTrack() curve.BezPath {
	return s.tracked.Trim(0, s.Normalized())
}

// SetPaths replaces the track and thumb paths.
func (s *PathSlider) SetPaths(track, thumb curve.BezPath) {
	s.track = track
	s.thumb = thumb
	s.tracked = track.Measure(s.accuracy)
	s.resample()
}

// SetSegments changes the sample resolution. It panics if n is not positive.
func (s *PathSlider) SetSegments(n int) {
	s.segments = n
	s.resample()
}

func (s *PathSlider) resample() {
	s.samples = curve.NewSamples(s.thumb.Measure(s.accuracy), s.segments)
}

// Update handles a drag event. It reports ValueChanged when a drag moved the
// value and DragFinished when a drag ended. The boolean result is false if
// there is nothing to report.
func (s *PathSlider) Update(ev Event) (Message, bool) {
	switch ev := ev.(type) {
	case DragChanged:
		v := s.rng.Denormalize(s.samples.ValueForPoint(ev.Location))
		if v == s.value {
			return nil, false
		}
		s.value = v
		return ValueChanged{Value: v}, true
	case DragEnded:
		return DragFinished{Value: s.value}, true
	default:
		return nil, false
	}
}
