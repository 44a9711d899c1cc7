// Package chartio reads and writes chart spec files.
//
// # Overview
//
// A spec file is a declarative description of one chart: its kind, its data,
// and its presentation options. Specs keep chart definitions in version
// control and feed the render pipeline without any Go code. The package
// supports three encodings of the same schema:
//
//   - TOML (.toml)
//   - JSON (.json)
//   - YAML (.yaml, .yml)
//
// The encoding is chosen by file extension in [ReadFile] and [WriteFile], or
// passed explicitly to [Read] and [Write].
//
// # Spec Format
//
// A line chart in TOML:
//
//	kind = "line"
//	title = "Weekly visits"
//	xlabel = "week"
//	ylabel = "visits"
//	seed = 42
//	area = true
//	labels = ["W1", "W2", "W3", "W4"]
//
//	[[series]]
//	name = "blog"
//	values = [120, 80, 150, 170]
//
//	[[series]]
//	name = "docs"
//	values = [60, 90, 70, 110]
//
// A donut chart in YAML:
//
//	kind: donut
//	title: Cache outcomes
//	fill: oilpaint
//	slices:
//	  - label: hits
//	    value: 880
//	  - label: misses
//	    value: 120
//
// Required fields:
//   - kind: "line", "pie", or "donut"
//   - series (line) or slices (pie, donut)
//
// Everything else is optional and falls back to the chart defaults: size
// 600x400, the built-in palette, scribble fills, an automatic legend
// position, and a time-seeded wobble unless seed is set.
//
// # Reading
//
// Use [ReadFile] to load a spec from a path, or [Read] to decode from any
// io.Reader:
//
//	spec, err := chartio.ReadFile("visits.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := spec.Chart()
//
// Decoding validates the chart kind eagerly; data problems (empty series,
// negative slice values) surface later when the chart is rendered, so a spec
// can be loaded, edited, and written back even while its data is incomplete.
//
// # Writing
//
// Use [WriteFile] to save a spec, or [Write] for any io.Writer. The output
// round-trips: a written spec reads back identically. Optional fields at
// their zero value are omitted, which keeps scaffolded specs short.
package chartio
