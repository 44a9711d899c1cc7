package geom

import (
	"fmt"
	"math"
	"strings"
)

// Operation is a single SVG drawing command.
type Operation interface {
	command() byte
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point Point }

// LineTo draws a straight segment.
type LineTo struct{ Point Point }

// QuadTo draws a quadratic Bézier segment.
type QuadTo struct{ Control, Point Point }

// CubicTo draws a cubic Bézier segment.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) command() byte  { return 'M' }
func (LineTo) command() byte  { return 'L' }
func (QuadTo) command() byte  { return 'Q' }
func (CubicTo) command() byte { return 'C' }
func (Close) command() byte   { return 'Z' }

// Path is a sequence of drawing operations. Higher-level shapes reduce to a
// Path before styling or perturbation.
type Path []Operation

// String renders the path as an SVG d attribute value.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%.2f,%.2f", op.Point.X, op.Point.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%.2f,%.2f", op.Point.X, op.Point.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%.2f,%.2f %.2f,%.2f",
				op.Control.X, op.Control.Y, op.Point.X, op.Point.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				op.Control1.X, op.Control1.Y, op.Control2.X, op.Control2.Y,
				op.Point.X, op.Point.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// Start returns the first point of the path, or the zero point for an empty
// path.
func (p Path) Start() Point {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			return op.Point
		case LineTo:
			return op.Point
		case QuadTo:
			return op.Point
		case CubicTo:
			return op.Point
		}
	}
	return Point{}
}

// Closed reports whether the path ends with a Close operation.
func (p Path) Closed() bool {
	if len(p) == 0 {
		return false
	}
	_, ok := p[len(p)-1].(Close)
	return ok
}

// Line returns a single straight segment from a to b.
func Line(a, b Point) Path {
	return Path{MoveTo{a}, LineTo{b}}
}

// Polyline connects the given points with straight segments.
func Polyline(pts ...Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts))
	p = append(p, MoveTo{pts[0]})
	for _, pt := range pts[1:] {
		p = append(p, LineTo{pt})
	}
	return p
}

// Rect returns a closed axis-aligned rectangle.
func Rect(x, y, w, h float64) Path {
	return Path{
		MoveTo{Pt(x, y)},
		LineTo{Pt(x+w, y)},
		LineTo{Pt(x+w, y+h)},
		LineTo{Pt(x, y+h)},
		Close{},
	}
}

// Circle returns a closed circle approximated by four cubic Bézier arcs.
func Circle(center Point, r float64) Path {
	return Ellipse(center, r, r)
}

// Ellipse returns a closed ellipse approximated by four cubic Bézier arcs.
func Ellipse(center Point, rx, ry float64) Path {
	// Control distance for a 90° circular arc.
	const kappa = 0.5522847498307936
	kx, ky := rx*kappa, ry*kappa
	return Path{
		MoveTo{Pt(center.X+rx, center.Y)},
		CubicTo{Pt(center.X+rx, center.Y+ky), Pt(center.X+kx, center.Y+ry), Pt(center.X, center.Y+ry)},
		CubicTo{Pt(center.X-kx, center.Y+ry), Pt(center.X-rx, center.Y+ky), Pt(center.X-rx, center.Y)},
		CubicTo{Pt(center.X-rx, center.Y-ky), Pt(center.X-kx, center.Y-ry), Pt(center.X, center.Y-ry)},
		CubicTo{Pt(center.X+kx, center.Y-ry), Pt(center.X+rx, center.Y-ky), Pt(center.X+rx, center.Y)},
		Close{},
	}
}

// Arc returns an open circular arc from startAngle to endAngle (radians,
// measured from the positive x axis) around center. The arc is approximated
// by cubic Bézier segments of at most a quarter turn each.
func Arc(center Point, r, startAngle, endAngle float64) Path {
	p := Path{MoveTo{pointOnCircle(center, r, startAngle)}}
	return append(p, arcSegments(center, r, startAngle, endAngle)...)
}

// PieSlice returns a closed wedge: center, radial edge, arc, back to center.
func PieSlice(center Point, r, startAngle, endAngle float64) Path {
	p := Path{
		MoveTo{center},
		LineTo{pointOnCircle(center, r, startAngle)},
	}
	p = append(p, arcSegments(center, r, startAngle, endAngle)...)
	return append(p, Close{})
}

// DonutSlice returns a closed annular wedge between inner and outer radii.
func DonutSlice(center Point, outer, inner, startAngle, endAngle float64) Path {
	p := Path{MoveTo{pointOnCircle(center, outer, startAngle)}}
	p = append(p, arcSegments(center, outer, startAngle, endAngle)...)
	p = append(p, LineTo{pointOnCircle(center, inner, endAngle)})
	p = append(p, arcSegments(center, inner, endAngle, startAngle)...)
	return append(p, Close{})
}

// arcSegments emits cubic Bézier approximations of a circular arc, split
// into spans of at most π/2 so the control-distance formula stays accurate.
func arcSegments(center Point, r, from, to float64) Path {
	sweep := to - from
	if sweep == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)

	var p Path
	for i := range n {
		a0 := from + float64(i)*step
		a1 := a0 + step
		// Control distance for a cubic approximating an arc of angle step.
		k := r * 4 / 3 * math.Tan((a1-a0)/4)

		s, e := pointOnCircle(center, r, a0), pointOnCircle(center, r, a1)
		c1 := Pt(s.X-k*math.Sin(a0), s.Y+k*math.Cos(a0))
		c2 := Pt(e.X+k*math.Sin(a1), e.Y-k*math.Cos(a1))
		p = append(p, CubicTo{c1, c2, e})
	}
	return p
}

func pointOnCircle(center Point, r, angle float64) Point {
	return Pt(center.X+r*math.Cos(angle), center.Y+r*math.Sin(angle))
}
