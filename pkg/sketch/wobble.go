package sketch

import (
	"math/rand/v2"

	"github.com/crayonviz/crayon/pkg/geom"
)

// wobbleSegments is the number of spans a brush stroke is sampled into.
const wobbleSegments = 8

// wobbleStroke draws a freehand stroke from a to b. Points along the
// segment drift sideways by up to ±mag and slide along the stroke by up to
// ±mag/2 (speed wobble), then the points are smoothed.
func wobbleStroke(a, b geom.Point, mag float64, rng *rand.Rand) geom.Path {
	dir := b.Sub(a).Unit()
	perp := dir.Perp()

	pts := make([]geom.Point, wobbleSegments+1)
	for i := range pts {
		t := float64(i) / wobbleSegments
		p := a.Lerp(b, t)
		p = p.Add(perp.Mul((rng.Float64() - 0.5) * 2 * mag))
		p = p.Add(dir.Mul((rng.Float64() - 0.5) * mag))
		pts[i] = p
	}
	return Smooth(pts, false)
}
