package slider

import (
	"fmt"
	"strings"

	"github.com/fieldkit/curve"
)

// ControlSize selects one of the predefined control sizes. The zero value is
// Regular.
type ControlSize int

const (
	Regular ControlSize = iota
	Mini
	Small
	Large
	ExtraLarge
)

var controlSizeNames = [...]string{
	Regular:    "regular",
	Mini:       "mini",
	Small:      "small",
	Large:      "large",
	ExtraLarge: "extra-large",
}

func (cs ControlSize) String() string {
	if cs < 0 || int(cs) >= len(controlSizeNames) {
		return fmt.Sprintf("ControlSize(%d)", int(cs))
	}
	return controlSizeNames[cs]
}

// ParseControlSize parses the name of a control size, as returned by
// [ControlSize.String]. Case is ignored.
func ParseControlSize(s string) (ControlSize, error) {
	for cs, name := range controlSizeNames {
		if strings.EqualFold(s, name) {
			return ControlSize(cs), nil
		}
	}
	return 0, fmt.Errorf("unknown control size %q", s)
}

// Geometry describes the parts of a path slider.
type Geometry struct {
	ThumbSize  curve.Size
	TrackWidth float64
}

// Geometry returns the path slider geometry for the control size. Sizes above
// Regular currently share its geometry.
func (cs ControlSize) Geometry() Geometry {
	switch cs {
	case Mini:
		return Geometry{curve.Sz(14, 14), 3}
	case Small:
		return Geometry{curve.Sz(16, 16), 3}
	default:
		return Geometry{curve.Sz(20, 20), 4}
	}
}

// DialGeometry describes the parts of an angle editor's dial.
type DialGeometry struct {
	Width       float64
	BorderWidth float64
	EdgeWidth   float64
}

func (cs ControlSize) DialGeometry() DialGeometry {
	switch cs {
	case Mini:
		return DialGeometry{32, 1, 1}
	case Small:
		return DialGeometry{40, 2, 2}
	case Regular:
		return DialGeometry{64, 2, 2}
	case Large:
		return DialGeometry{80, 4, 3}
	default:
		return DialGeometry{64, 4, 2}
	}
}
