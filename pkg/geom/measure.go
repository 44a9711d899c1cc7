package geom

import "math"

// Tolerance is the maximum deviation allowed when flattening curves into
// line segments.
const Tolerance = 0.1

// Flatten converts a path into a polyline within the given tolerance.
// Curves are subdivided recursively with de Casteljau's algorithm until the
// control points lie within tolerance of the chord.
func Flatten(p Path, tolerance float64) []Point {
	var points []Point
	var current, subpathStart Point

	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = op.Point
			subpathStart = op.Point
			points = append(points, current)

		case LineTo:
			current = op.Point
			points = append(points, current)

		case QuadTo:
			flattenQuadratic(current, op.Control, op.Point, tolerance, &points)
			current = op.Point

		case CubicTo:
			flattenCubic(current, op.Control1, op.Control2, op.Point, tolerance, &points)
			current = op.Point

		case Close:
			if current != subpathStart {
				points = append(points, subpathStart)
			}
			current = subpathStart
		}
	}

	return points
}

func flattenQuadratic(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, points)
	flattenQuadratic(q2, q1, p2, tolerance, points)
}

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)

	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau subdivision at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToLine returns the perpendicular distance from p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	return p.Distance(a.Add(ab.Mul(t)))
}

// Measure provides arc-length parameterization over a path. It flattens the
// path once and answers position queries from a cumulative length table.
type Measure struct {
	points []Point
	cum    []float64
	total  float64
}

// NewMeasure builds a Measure for the path using the default [Tolerance].
func NewMeasure(p Path) *Measure {
	points := Flatten(p, Tolerance)
	cum := make([]float64, len(points))

	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
		cum[i] = total
	}

	return &Measure{points: points, cum: cum, total: total}
}

// Length returns the total arc length of the path.
func (m *Measure) Length() float64 {
	return m.total
}

// PointAt returns the coordinate at the given fraction of total arc length.
// Fractions are clamped to [0, 1]. A zero-length path yields its single
// point for every fraction.
func (m *Measure) PointAt(frac float64) Point {
	if len(m.points) == 0 {
		return Point{}
	}
	if m.total == 0 || frac <= 0 {
		return m.points[0]
	}
	if frac >= 1 {
		return m.points[len(m.points)-1]
	}

	target := frac * m.total

	// Binary search for the first cumulative length >= target.
	lo, hi := 1, len(m.cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if m.cum[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	segLen := m.cum[lo] - m.cum[lo-1]
	if segLen < 1e-12 {
		return m.points[lo]
	}
	t := (target - m.cum[lo-1]) / segLen
	return m.points[lo-1].Lerp(m.points[lo], t)
}
