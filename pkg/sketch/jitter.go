package sketch

import (
	"math/rand/v2"

	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/geom"
)

// Jitter redraws an exact path with hand-drawn imperfection.
//
// The path is resampled at samples+1 equal arc-length fractions, every
// sample is offset by up to ±amount/2 on each axis, and the perturbed
// points are smoothed through a basis spline. With closed=true the last
// sample is unified with the first so the loop stays closed, and the
// cyclic spline variant is used.
//
// A zero-length path is not an error: every sample lands on the same spot
// and the result collapses to a jittered point. amount 0 still resamples
// and smooths, so the output geometry may differ from the input.
func Jitter(path geom.Path, amount float64, samples int, closed bool, rng *rand.Rand) (geom.Path, error) {
	if err := errors.ValidateJitterAmount(amount); err != nil {
		return nil, err
	}
	if err := errors.ValidateSampleCount(samples); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "rng cannot be nil")
	}

	m := geom.NewMeasure(path)
	pts := make([]geom.Point, samples+1)
	for i := range pts {
		pt := m.PointAt(float64(i) / float64(samples))
		pts[i] = geom.Pt(pt.X+offset(rng, amount), pt.Y+offset(rng, amount))
	}

	if closed {
		pts[len(pts)-1] = pts[0]
		return Smooth(pts[:len(pts)-1], true), nil
	}
	return Smooth(pts, false), nil
}

// offset draws a uniform value in [-amount/2, amount/2).
func offset(rng *rand.Rand, amount float64) float64 {
	return (rng.Float64() - 0.5) * amount
}
