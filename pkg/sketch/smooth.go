package sketch

import "github.com/crayonviz/crayon/pkg/geom"

// Smooth fits a uniform cubic basis spline through the points and returns
// it as cubic Bézier commands. The open variant interpolates the first and
// last point exactly and passes near the interior ones; the closed variant
// produces a cyclic loop through all points.
func Smooth(pts []geom.Point, closed bool) geom.Path {
	if closed {
		return smoothClosed(pts)
	}
	return smoothOpen(pts)
}

// smoothOpen emits one cubic segment per input point beyond the second,
// plus a closing segment toward the repeated endpoint. Two points degrade
// to a straight line.
func smoothOpen(pts []geom.Point) geom.Path {
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return geom.Path{geom.MoveTo{Point: pts[0]}}
	case 2:
		return geom.Line(pts[0], pts[1])
	}

	n := len(pts)
	p := make(geom.Path, 0, n+2)
	p = append(p, geom.MoveTo{Point: pts[0]})
	p = append(p, geom.LineTo{Point: pts[0].Mul(5.0 / 6).Add(pts[1].Mul(1.0 / 6))})

	for i := 2; i <= n; i++ {
		p0, p1 := pts[i-2], pts[i-1]
		next := p1 // the final span repeats the endpoint
		if i < n {
			next = pts[i]
		}
		p = append(p, basisSegment(p0, p1, next))
	}

	return append(p, geom.LineTo{Point: pts[n-1]})
}

// smoothClosed cycles the basis fit through all points and back to the
// start. Fewer than three points degrade to a straight closed shape.
func smoothClosed(pts []geom.Point) geom.Path {
	m := len(pts)
	switch m {
	case 0:
		return nil
	case 1:
		return geom.Path{geom.MoveTo{Point: pts[0]}, geom.Close{}}
	case 2:
		return geom.Path{
			geom.MoveTo{Point: pts[0].Lerp(pts[1], 2.0 / 3)},
			geom.LineTo{Point: pts[1].Lerp(pts[0], 2.0 / 3)},
			geom.Close{},
		}
	}

	p := make(geom.Path, 0, m+2)
	p = append(p, geom.MoveTo{Point: geom.Pt(
		(pts[0].X+4*pts[1].X+pts[2].X)/6,
		(pts[0].Y+4*pts[1].Y+pts[2].Y)/6,
	)})

	for a := 1; a <= m; a++ {
		p = append(p, basisSegment(pts[a%m], pts[(a+1)%m], pts[(a+2)%m]))
	}

	return append(p, geom.Close{})
}

func basisSegment(p0, p1, p2 geom.Point) geom.CubicTo {
	return geom.CubicTo{
		Control1: geom.Pt((2*p0.X+p1.X)/3, (2*p0.Y+p1.Y)/3),
		Control2: geom.Pt((p0.X+2*p1.X)/3, (p0.Y+2*p1.Y)/3),
		Point:    geom.Pt((p0.X+4*p1.X+p2.X)/6, (p0.Y+4*p1.Y+p2.Y)/6),
	}
}
