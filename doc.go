// Package curve samples 2D paths so that controls can move along them. It
// was written for sliders whose thumb follows an arbitrary track: a sample
// set maps a normalized value to a point on the track, and a point (such as
// the location of a drag) back to the nearest value.
//
// # Sampling
//
// [NewSamples] samples anything implementing [Sampleable]. For n segments it
// produces n+2 points: the start of the path, the centers of the bounding
// boxes of n equal stretches of the path, and the path's end point. Using
// bounding box centers rather than evaluating the path keeps the sampler
// independent of how the path is parametrized.
//
// [Samples.PointForValue] and [Samples.ValueForPoint] convert between values
// and points. The two use slightly different scales (see their documentation)
// and are thus not exact inverses, but a round trip never strays by more than
// one segment.
//
// # Shapes, curves, and paths
//
// [Shape] describes geometric shapes that have a bounding box and can be
// converted to a series of path elements. This package includes the following
// shapes:
//   - [Arc]
//   - [Circle]
//   - [CircleSegment]
//   - [CubicBez]
//   - [Line]
//   - [QuadBez]
//   - [Rect]
//   - [RoundedRect]
//
// [ParametricCurve] describes curves that can be evaluated at t ∈ [0, 1].
// [Line], [QuadBez], [CubicBez] and [PathSegment] are parametric curves, and
// they can be sampled directly, in which case stretches are measured in t.
//
// [BezPath] represents Bézier paths as a slice of path elements. Paths are
// sampled by measuring them first ([BezPath.Measure]), after which stretches
// are measured in arc length. This matches how graphics toolkits trim paths,
// and it spaces samples evenly no matter how the path was constructed.
// [ParseSVG] reads paths from SVG path data, and [SVG] writes them.
//
// # Path elements and segments
//
// This package provides two representations for paths: [PathElement] and
// [PathSegment]. Path elements are akin to drawing commands in graphics APIs
// like PostScript, consisting of pen moves ([MoveTo]) and various drawing
// commands ([LineTo], [QuadTo], etc.) Each command moves the current position
// of the pen, which acts as the start position of the following drawing
// command.
//
// Segments, on the other hand, are self-contained descriptions of a portion of
// the path, containing explicit start points.
//
// Using [Elements] and [Segments], you can freely convert between the two
// representations.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Implementation notes for SVG elliptical arcs]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Implementation notes for SVG elliptical arcs]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package curve
