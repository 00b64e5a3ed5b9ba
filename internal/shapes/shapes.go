// Package shapes provides the built-in paths of the pathsample command.
package shapes

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fieldkit/curve"
)

// Shape is a named, built-in path.
type Shape struct {
	Name        string
	Description string
	build       func(tolerance float64) curve.BezPath
}

// Path returns the shape's path, approximating curves to the given
// tolerance.
func (s Shape) Path(tolerance float64) curve.BezPath {
	return s.build(tolerance)
}

var starPoints = []curve.Point{
	{X: 0.5, Y: 0},
	{X: 0.618, Y: 0.338},
	{X: 0.976, Y: 0.345},
	{X: 0.69, Y: 0.562},
	{X: 0.794, Y: 0.905},
	{X: 0.5, Y: 0.7},
	{X: 0.206, Y: 0.905},
	{X: 0.31, Y: 0.562},
	{X: 0.024, Y: 0.345},
	{X: 0.382, Y: 0.338},
}

const wigglySVG = "M0,0 Q50,100 100,50 Q150,0 200,50"

var builtins = map[string]Shape{
	"line": {
		Description: "a horizontal line, 100 long",
		build: func(float64) curve.BezPath {
			return curve.Line{P0: curve.Pt(0, 10), P1: curve.Pt(100, 10)}.Path(0)
		},
	},
	"wiggly": {
		Description: "two quadratic curves forming a wave",
		build: func(float64) curve.BezPath {
			p, err := curve.ParseSVG(wigglySVG)
			if err != nil {
				panic(fmt.Sprintf("built-in shape: %s", err))
			}
			return p
		},
	},
	"circle": {
		Description: "a circle of diameter 50",
		build: func(tolerance float64) curve.BezPath {
			return curve.Circle{Center: curve.Pt(25, 25), Radius: 25}.Path(tolerance)
		},
	},
	"rounded-rect": {
		Description: "a 50×50 square with corner radius 8",
		build: func(tolerance float64) curve.BezPath {
			rr := curve.Rect{X0: 0, Y0: 0, X1: 50, Y1: 50}.RoundedRect(curve.RoundedRectRadii{
				TopLeft:     8,
				TopRight:    8,
				BottomRight: 8,
				BottomLeft:  8,
			})
			return rr.Path(tolerance)
		},
	},
	"star": {
		Description: "a five-pointed star, 100 wide",
		build: func(float64) curve.BezPath {
			var p curve.BezPath
			for i, pt := range starPoints {
				if i == 0 {
					p.MoveTo(pt)
				} else {
					p.LineTo(pt)
				}
			}
			p.ClosePath()
			return p.Transform(curve.MapUnitSquare(curve.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}))
		},
	},
}

func init() {
	for name, s := range builtins {
		s.Name = name
		builtins[name] = s
	}
}

// Names returns the names of all built-in shapes, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// Lookup returns the built-in shape with the given name.
func Lookup(name string) (Shape, bool) {
	s, ok := builtins[name]
	return s, ok
}

// Path returns the path of the named built-in shape.
func Path(name string, tolerance float64) (curve.BezPath, error) {
	s, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", name)
	}
	return s.Path(tolerance), nil
}
