package curve

import (
	"iter"
	"slices"
	"sort"
)

// MeasuredPath is a path whose segments have been measured, so that positions
// along it can be given as fractions of its total arc length. Position 0 is
// the start of the path, position 1 its end.
//
// Subpaths are measured one after the other, as if the pen kept drawing while
// moving between them. A ClosePath contributes the line back to the start of
// its subpath.
//
// A MeasuredPath is immutable and safe for concurrent use.
type MeasuredPath struct {
	segs []PathSegment
	// ends[i] is the arc length from the start of the path to the end of
	// segs[i].
	ends     []float64
	start    Point
	end      Point
	accuracy float64
}

var _ Sampleable = (*MeasuredPath)(nil)

// Measure measures the path's segments to the given accuracy.
func (p BezPath) Measure(accuracy float64) *MeasuredPath {
	return MeasureElements(p.Elements(), accuracy)
}

// MeasureElements measures the path described by seq to the given accuracy.
func MeasureElements(seq iter.Seq[PathElement], accuracy float64) *MeasuredPath {
	els := BezPath(slices.Collect(seq))
	mp := &MeasuredPath{
		end:      els.CurrentPoint(),
		accuracy: accuracy,
	}
	var total float64
	for seg := range els.Segments() {
		total += seg.Arclen(accuracy)
		mp.segs = append(mp.segs, seg)
		mp.ends = append(mp.ends, total)
	}
	if len(mp.segs) > 0 {
		mp.start = mp.segs[0].Start()
	} else if len(els) > 0 {
		mp.start, _ = els[0].EndPoint()
	}
	return mp
}

// Length returns the total arc length of the path.
func (mp *MeasuredPath) Length() float64 {
	if len(mp.ends) == 0 {
		return 0
	}
	return mp.ends[len(mp.ends)-1]
}

// Start returns the start point of the path's first segment.
func (mp *MeasuredPath) Start() Point { return mp.start }

// End returns the path's current point: where its last element ended, or the
// start of the last subpath if that subpath was closed.
func (mp *MeasuredPath) End() Point { return mp.end }

// Segments returns an iterator over the measured segments.
func (mp *MeasuredPath) Segments() iter.Seq[PathSegment] {
	return slices.Values(mp.segs)
}

// locate finds the segment containing the given arc length and the
// parameter within that segment.
func (mp *MeasuredPath) locate(arclen float64) (int, float64) {
	i := sort.SearchFloat64s(mp.ends, arclen)
	if i >= len(mp.ends) {
		return len(mp.ends) - 1, 1
	}
	var before float64
	if i > 0 {
		before = mp.ends[i-1]
	}
	if mp.ends[i] <= before {
		return i, 0
	}
	return i, mp.segs[i].SolveForArclen(arclen-before, mp.accuracy)
}

// PointAt returns the point at the normalized position pos, which is clamped
// to [0, 1].
func (mp *MeasuredPath) PointAt(pos float64) Point {
	if len(mp.segs) == 0 {
		return mp.start
	}
	i, t := mp.locate(clamp01(pos) * mp.Length())
	return mp.segs[i].Eval(t)
}

// trimmed yields the parts of the path between the normalized positions
// start and end. Callers ensure that start < end and that the path has
// segments.
func (mp *MeasuredPath) trimmed(start, end float64) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		length := mp.Length()
		i0, t0 := mp.locate(start * length)
		i1, t1 := mp.locate(end * length)
		if i0 == i1 {
			yield(mp.segs[i0].Subsegment(t0, t1))
			return
		}
		if t0 < 1 && !yield(mp.segs[i0].Subsegment(t0, 1)) {
			return
		}
		for _, seg := range mp.segs[i0+1 : i1] {
			if !yield(seg) {
				return
			}
		}
		if t1 > 0 {
			yield(mp.segs[i1].Subsegment(0, t1))
		}
	}
}

// Trim returns the part of the path between the normalized positions start
// and end, both clamped to [0, 1]. The result is empty if end <= start.
// Closed subpaths come back open, ending with their closing line.
func (mp *MeasuredPath) Trim(start, end float64) BezPath {
	start, end = clamp01(start), clamp01(end)
	if len(mp.segs) == 0 || end <= start {
		return nil
	}
	return slices.Collect(Elements(mp.trimmed(start, end)))
}

// TrimmedBoundingBox returns the bounding box of the part of the path between
// the normalized positions start and end. If that part is empty, the box is
// the zero-area box around the point at start.
func (mp *MeasuredPath) TrimmedBoundingBox(start, end float64) Rect {
	start, end = clamp01(start), clamp01(end)
	if len(mp.segs) == 0 || end <= start {
		pt := mp.PointAt(start)
		return NewRectFromPoints(pt, pt)
	}
	var bbox option[Rect]
	for seg := range mp.trimmed(start, end) {
		if r := seg.BoundingBox(); bbox.isSet {
			bbox.set(bbox.value.Union(r))
		} else {
			bbox.set(r)
		}
	}
	if !bbox.isSet {
		pt := mp.PointAt(start)
		return NewRectFromPoints(pt, pt)
	}
	return bbox.value
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
