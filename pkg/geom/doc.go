// Package geom provides exact 2D vector geometry for chart construction.
//
// # Overview
//
// Charts are assembled from exact vector paths before any hand-drawn
// perturbation is applied. This package provides the path primitives that
// feed the sketch pipeline:
//
//   - [Point]: 2D point with the usual vector arithmetic
//   - [Path]: a sequence of SVG drawing operations ([MoveTo], [LineTo],
//     [QuadTo], [CubicTo], [Close])
//   - Shape builders: [Line], [Polyline], [Rect], [Circle], [Ellipse],
//     [Arc], [PieSlice], [DonutSlice]
//   - [Measure]: arc-length parameterization over a path
//
// # Arc-Length Parameterization
//
// Sketch-style rendering resamples paths at equal arc-length fractions.
// [Measure] flattens a path into a polyline (recursive de Casteljau
// subdivision within [Tolerance]) and builds a cumulative length table, so
// [Measure.PointAt] evaluates the coordinate at any fraction of total length
// without reference to a rendering surface:
//
//	m := geom.NewMeasure(geom.Circle(geom.Pt(50, 50), 40))
//	mid := m.PointAt(0.5) // halfway around the circle
//
// Curved shapes are emitted as cubic Bézier approximations, so every path is
// expressible as an SVG d attribute via [Path.String].
package geom
