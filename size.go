package curve

import (
	"fmt"
)

// Size is the extent of a rectangle, such as a control's frame or a slider
// thumb.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Center returns the center of a rectangle of size sz placed at the origin.
func (sz Size) Center() Point {
	return Point{X: sz.Width / 2, Y: sz.Height / 2}
}
