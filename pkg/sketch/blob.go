package sketch

import (
	"math"
	"math/rand/v2"

	"github.com/crayonviz/crayon/pkg/geom"
)

// blob builds an irregular closed daub around center: evenly spaced angles,
// each radius scaled by an independent random factor, smoothed into a loop.
func blob(center geom.Point, radius float64, rng *rand.Rand) geom.Path {
	n := 6 + rng.IntN(4)
	pts := make([]geom.Point, n)
	for i := range pts {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := radius * (0.6 + rng.Float64()*0.7)
		pts[i] = geom.Pt(center.X+r*math.Cos(angle), center.Y+r*math.Sin(angle))
	}
	return Smooth(pts, true)
}
