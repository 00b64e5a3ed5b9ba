package curve

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w. Only absolute commands are written, and no
// effort is made to shorten the output.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(pt Point) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(pt.X, 'f', -1, 64) + "," + strconv.FormatFloat(pt.Y, 'f', -1, 64)
		}
		trim := func(n float64) string {
			s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
			if s == "-0" {
				s = "0"
			}
			return s
		}
		return trim(pt.X) + "," + trim(pt.Y)
	}
	sep := ""
	for el := range seq {
		if err != nil {
			return err
		}
		switch el.Kind {
		case MoveToKind:
			writef("%sM%s", sep, format(el.P0))
		case LineToKind:
			writef("%sL%s", sep, format(el.P0))
		case QuadToKind:
			writef("%sQ%s %s", sep, format(el.P0), format(el.P1))
		case CubicToKind:
			writef("%sC%s %s %s", sep, format(el.P0), format(el.P1), format(el.P2))
		case ClosePathKind:
			writef("%sZ", sep)
		default:
			panic("unreachable")
		}
		sep = " "
	}
	return err
}

// SVGError describes a malformed SVG path.
type SVGError struct {
	// Offset is the byte offset in the input at which the problem was found.
	Offset int
	// Command is the path command being parsed, or 0 if there was none.
	Command byte
	Msg     string
}

func (e *SVGError) Error() string {
	if e.Command == 0 {
		return fmt.Sprintf("svg path: %s at offset %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("svg path: command %q: %s at offset %d", e.Command, e.Msg, e.Offset)
}

// svgArgs is the number of arguments each path command takes.
var svgArgs = [...]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

// svgArcTolerance is the tolerance used to approximate elliptical arcs with
// cubic Béziers.
const svgArcTolerance = 0.1

func isSVGSpace(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func isSVGNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParseSVG parses SVG path data, as found in the d attribute of a path
// element. All commands are supported in their absolute and relative forms,
// and command letters may be omitted for repeated commands. Elliptical arcs
// are approximated with cubic Béziers.
//
// The returned error, if any, is an [*SVGError].
func ParseSVG(d string) (BezPath, error) {
	data := []byte(d)
	i := 0
	skip := func() {
		for i < len(data) && isSVGSpace(data[i]) {
			i++
		}
	}

	var (
		p BezPath
		// Current point, start of the current subpath, and the last control
		// point for smooth curve commands.
		cur, start, ctrl Point
		prev             byte
		args             [7]float64
	)
	skip()
	for i < len(data) {
		at := i
		cmd := prev
		if !isSVGNumberStart(data[i]) || prev == 0 || prev == 'Z' || prev == 'z' {
			cmd = data[i]
			i++
			skip()
		}
		upper := cmd &^ 0x20
		if int(upper) >= len(svgArgs) || (svgArgs[upper] == 0 && upper != 'Z') {
			return nil, &SVGError{Offset: at, Command: cmd, Msg: "unknown command"}
		}
		if len(p) == 0 && upper != 'M' {
			return nil, &SVGError{Offset: at, Command: cmd, Msg: "path must start with a move"}
		}
		for j := range svgArgs[upper] {
			if upper == 'A' && (j == 3 || j == 4) {
				if i >= len(data) || (data[i] != '0' && data[i] != '1') {
					return nil, &SVGError{Offset: i, Command: cmd, Msg: "arc flags must be 0 or 1"}
				}
				args[j] = float64(data[i] - '0')
				i++
			} else {
				v, n := tdstrconv.ParseFloat(data[i:])
				if n == 0 {
					return nil, &SVGError{Offset: i, Command: cmd, Msg: fmt.Sprintf("expected %d numbers", svgArgs[upper])}
				}
				args[j] = v
				i += n
			}
			skip()
		}

		var rel Vec2
		if cmd != upper {
			rel = Vec2(cur)
		}
		abs := func(x, y float64) Point { return Pt(x, y).Translate(rel) }

		switch upper {
		case 'M':
			cur = abs(args[0], args[1])
			start = cur
			p.MoveTo(cur)
		case 'L':
			cur = abs(args[0], args[1])
			p.LineTo(cur)
		case 'H':
			cur.X = args[0] + rel.X
			p.LineTo(cur)
		case 'V':
			cur.Y = args[0] + rel.Y
			p.LineTo(cur)
		case 'C':
			ctrl = abs(args[2], args[3])
			cur = abs(args[4], args[5])
			p.CubicTo(abs(args[0], args[1]), ctrl, cur)
		case 'S':
			p1 := cur
			if pu := prev &^ 0x20; pu == 'C' || pu == 'S' {
				p1 = cur.Translate(cur.Sub(ctrl))
			}
			ctrl = abs(args[0], args[1])
			cur = abs(args[2], args[3])
			p.CubicTo(p1, ctrl, cur)
		case 'Q':
			ctrl = abs(args[0], args[1])
			cur = abs(args[2], args[3])
			p.QuadTo(ctrl, cur)
		case 'T':
			p1 := cur
			if pu := prev &^ 0x20; pu == 'Q' || pu == 'T' {
				p1 = cur.Translate(cur.Sub(ctrl))
			}
			ctrl = p1
			cur = abs(args[0], args[1])
			p.QuadTo(ctrl, cur)
		case 'A':
			to := abs(args[5], args[6])
			arc, ok := arcFromSVG(cur, to, Vec(args[0], args[1]), args[2]*math.Pi/180, args[3] == 1, args[4] == 1)
			if ok {
				for el := range dropFirst(arc.PathElements(svgArcTolerance)) {
					p.Push(el)
				}
			} else {
				p.LineTo(to)
			}
			cur = to
		case 'Z':
			p.ClosePath()
			cur = start
		}

		// A moveto followed by coordinates continues as lineto.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
		prev = cmd
	}
	return p, nil
}

// arcFromSVG converts an arc in SVG's endpoint parameterization to center
// parameterization, following the SVG implementation notes. It returns false
// if the arc degenerates to a straight line.
func arcFromSVG(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx <= 1e-5 || ry <= 1e-5 || from == to {
		return Arc{}, false
	}
	sin, cos := math.Sincos(math.Mod(xRotation, 2*math.Pi))
	hd := from.Sub(to).Mul(0.5)
	hs := Vec2(from).Add(Vec2(to)).Mul(0.5)

	p := Vec(cos*hd.X+sin*hd.Y, -sin*hd.X+cos*hd.Y)

	if rf := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); rf > 1 {
		s := math.Sqrt(rf)
		rx *= s
		ry *= s
	}

	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumSq := rxpy*rxpy + rypx*rypx

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	coe := sign * math.Sqrt(math.Abs((rxry*rxry-sumSq)/sumSq))
	cx := coe * rxpy / ry
	cy := -coe * rypx / rx

	center := Pt(cos*cx-sin*cy+hs.X, sin*cx+cos*cy+hs.Y)
	startAngle := Vec((p.X-cx)/rx, (p.Y-cy)/ry).Angle()
	endAngle := Vec((-p.X-cx)/rx, (-p.Y-cy)/ry).Angle()
	sweepAngle := math.Mod(endAngle-startAngle, 2*math.Pi)
	if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}, true
}
