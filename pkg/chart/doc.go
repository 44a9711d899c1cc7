// Package chart builds line and pie charts and renders them as hand-drawn
// SVG documents.
//
// # Overview
//
// A chart is a plain data model ([Line] or [Pie]) plus a [Config]. Rendering
// computes every visual element — axes, grid, series strokes, slices, legend,
// text — in SVG user space, sketches the geometry with [pkg/sketch], and
// assembles the document:
//
//	line := chart.Line{
//	    Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
//	    Series: []chart.Series{{Name: "visits", Values: []float64{120, 80, 150, 90, 170}}},
//	}
//	svg, err := chart.RenderSVG(line, chart.WithConfig(chart.Config{
//	    Title: "Traffic",
//	    Seed:  42,
//	}))
//
// # Output Formats
//
// [RenderSVG] is the native sink. [RenderPNG] and [RenderPDF] convert the SVG
// with rsvg-convert. [RenderJSON] exports the computed shapes — paths, paint
// attributes, labels, pattern metadata — for external tooling.
//
// # Reproducibility
//
// All sketching randomness flows from Config.Seed. The same chart rendered
// twice with the same seed produces the same geometry; pattern and filter
// identifiers are regenerated per document so that several charts can be
// inlined into one page without id collisions.
package chart
