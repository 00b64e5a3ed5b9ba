package curve

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Sampleable describes curves and paths that can be sampled with
// [NewSamples].
//
// Positions are normalized to [0, 1]. [Line], [QuadBez], [CubicBez] and
// [PathSegment] use their curve parameter as the position; [MeasuredPath]
// uses the fraction of its arc length.
type Sampleable interface {
	// TrimmedBoundingBox returns the bounding box of the part of the curve
	// between the positions start and end.
	TrimmedBoundingBox(start, end float64) Rect
	// End returns the curve's end point.
	End() Point
}

const (
	// DefaultSegments is the sample resolution used by sliders.
	DefaultSegments = 100
	// LegacySegments is the coarse resolution some older range sliders were
	// built with.
	LegacySegments = 10
)

// startWindow is the length, as a fraction of the whole curve, of the stretch
// whose bounding box stands in for the start point.
const startWindow = 1e-5

// Samples is an ordered set of points along a path. It maps normalized values
// to points and points back to the nearest value, which is what a slider whose
// thumb follows an arbitrary path needs.
//
// For a sample set built with n segments there are n+2 samples: the start of
// the path, the midpoints of n equal stretches, and the end point.
//
// Samples is immutable and safe for concurrent use. Rebuild it when the path
// or the segment count changes.
type Samples struct {
	points []Point
}

// NewSamples samples c with the given number of segments. It panics if
// segments is not positive.
func NewSamples(c Sampleable, segments int) Samples {
	if segments <= 0 {
		panic(fmt.Sprintf("curve: segment count must be positive, got %d", segments))
	}
	pts := make([]Point, 0, segments+2)
	pts = append(pts, c.TrimmedBoundingBox(0, startWindow).Center())
	n := float64(segments)
	for i := range segments {
		pts = append(pts, c.TrimmedBoundingBox(float64(i)/n, float64(i+1)/n).Center())
	}
	pts = append(pts, c.End())
	return Samples{points: pts}
}

// Len returns the number of samples.
func (s Samples) Len() int { return len(s.points) }

// At returns the i-th sample.
func (s Samples) At(i int) Point { return s.points[i] }

// All returns an iterator over the samples and their indices.
func (s Samples) All() iter.Seq2[int, Point] {
	return slices.All(s.points)
}

// Points returns a copy of the samples.
func (s Samples) Points() []Point {
	return slices.Clone(s.points)
}

// PointForValue returns the sample for the normalized value: the sample at
// index floor(value × Len()), limited to the last sample. Values of 1 and above
// thus return the end point. It panics for negative or NaN values; callers
// clamp values to their range first.
//
// Note that values are scaled by Len() here but by Len()-1 in
// [Samples.ValueForPoint], so the two are not exact inverses.
func (s Samples) PointForValue(value float64) Point {
	n := len(s.points)
	pos := math.Floor(value * float64(n))
	if !(pos >= 0) {
		panic(fmt.Sprintf("curve: value %v out of range", value))
	}
	if pos >= float64(n-1) {
		return s.points[n-1]
	}
	return s.points[int(pos)]
}

// ValueForPoint returns the normalized value, in [0, 1], of the sample
// nearest to pt. If several samples are equally near, the one with the lowest
// index wins.
func (s Samples) ValueForPoint(pt Point) float64 {
	idx, _ := s.Nearest(pt)
	if len(s.points) == 1 {
		return 0
	}
	return float64(idx) / float64(len(s.points)-1)
}

// Nearest returns the index of the sample nearest to pt and its squared
// distance. Ties go to the lowest index. It panics if s has no samples.
func (s Samples) Nearest(pt Point) (index int, distSq float64) {
	if len(s.points) == 0 {
		panic("curve: nearest sample of an empty sample set")
	}
	index, distSq = 0, pt.DistanceSquared(s.points[0])
	for i, p := range s.points[1:] {
		if d := pt.DistanceSquared(p); d < distSq {
			index, distSq = i+1, d
		}
	}
	return index, distSq
}
