// Package sketch provides the hand-drawn rendering primitives behind
// crayon's visual style.
//
// # Overview
//
// Exact chart geometry looks sterile. This package redraws it the way a
// person would: paths wander slightly off course, fills are scribbled in
// with a marker or dabbed on like oil paint, and no two renders with
// different seeds look alike.
//
// # Visual Elements
//
//   - Jittered paths: exact paths resampled at equal arc-length steps,
//     nudged, then smoothed through a basis spline ([Jitter])
//   - Scribble fills: directional marker hatching with wobbly strokes
//     ([NewDirectionalPattern], [DirectionalPatternSet])
//   - Oil-paint fills: layered paint daubs with highlight and shadow tones
//     ([NewOilPaintPattern], [OilPaintPatternSet])
//
// # Reproducible Randomness
//
// Every generative function takes a *rand.Rand so the caller controls
// reproducibility:
//
//	rng := sketch.NewRNG(42) // same seed = same wobble
//	path, err := sketch.Jitter(p, 2, 50, false, rng)
//
// The same seed reproduces the same geometry. Pattern ids are the one
// nondeterministic part: each pattern gets a fresh document-unique id so
// several charts can share a page.
//
// # Fill Patterns
//
// Fill generators return [Pattern] values that render to SVG <pattern>
// elements. Shapes reference them by [Pattern.URL]:
//
//	pat, _ := sketch.NewOilPaintPattern("#ff6961", rng)
//	pat.RenderDefs(&buf)                       // inside <defs>
//	fmt.Fprintf(&buf, `<path fill=%q .../>`, pat.URL())
package sketch
