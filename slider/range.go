package slider

import "fmt"

// Range is a closed interval of values.
type Range struct {
	Lower float64
	Upper float64
}

// Unit is the range [0, 1] that normalized values live in.
var Unit = Range{0, 1}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}

func (r Range) Width() float64 { return r.Upper - r.Lower }

// Normalize maps v from r to [0, 1]. Values outside of r map outside of
// [0, 1]. A range of zero width normalizes everything to 0.
func (r Range) Normalize(v float64) float64 {
	w := r.Width()
	if w == 0 {
		return 0
	}
	return (v - r.Lower) / w
}

// Denormalize maps v from [0, 1] to r.
func (r Range) Denormalize(v float64) float64 {
	return v*r.Width() + r.Lower
}

// Clamp limits v to r.
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Lower), r.Upper)
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

func clamp01(v float64) float64 {
	return Unit.Clamp(v)
}
