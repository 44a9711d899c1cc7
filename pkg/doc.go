// Package pkg provides the core libraries for Crayon hand-drawn charts.
//
// # Overview
//
// Crayon renders charts that look sketched by hand: axes wobble, lines
// jitter, and fills are scribbled or dabbed on like oil paint. The pkg
// directory is organized into four main areas:
//
//  1. [chart] - Chart types, layout, and rendering (line, pie, donut)
//  2. [sketch] - The hand-drawn geometry primitives (jitter, scribble, oil paint)
//  3. [pipeline] - Orchestration (load → render → cache) used by every entry point
//  4. [cache] - Render caching (file and Redis backends)
//
// # Architecture
//
// The typical data flow through Crayon:
//
//	Spec file (TOML/JSON/YAML)
//	         ↓
//	    [chartio] package (parse + validate)
//	         ↓
//	    [chart] package (layout + SVG rendering, via [sketch] and [geom])
//	         ↓
//	    [render] package (SVG → PDF/PNG conversion)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Build a chart in code and render it:
//
//	import (
//	    "os"
//	    "github.com/crayonviz/crayon/pkg/chart"
//	)
//
//	line := chart.Line{
//	    Labels: []string{"Mon", "Tue", "Wed"},
//	    Series: []chart.Series{{Name: "visits", Values: []float64{512, 488, 603}}},
//	}
//	svg, _ := chart.RenderSVG(line,
//	    chart.WithTitle("Weekly Traffic"),
//	    chart.WithSeed(42),
//	)
//	os.WriteFile("traffic.svg", svg, 0o644)
//
// Or run a spec file through the full pipeline:
//
//	store, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(store, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    SpecPath: "traffic.toml",
//	    Formats:  []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// # Main Packages
//
// ## Charts
//
// [chart] - The chart types ([chart.Line], [chart.Pie]) with their layout and
// rendering. Options configure title, axes, size, seed, fill style, palette,
// and legend. Output sinks: SVG (native), JSON (chart model), and PDF/PNG via
// [render].
//
// [chartio] - Spec files. One [chartio.Spec] struct reads and writes TOML,
// JSON, and YAML, chosen by file extension, and builds the [chart.Chart] it
// describes.
//
// ## Hand-Drawn Geometry
//
// [sketch] - Deterministic sketchiness. Every primitive takes the seeded
// random source from the chart, so the same seed always draws the same chart:
//
//   - jittered paths and basis-spline smoothing (the wobbly stroke)
//   - scribble fill patterns (directional marker strokes over a wash)
//   - oil-paint fill patterns (layered tonal daubs)
//
// [geom] - Plain geometry underneath sketch: points, paths, shape builders,
// and arc-length measurement for resampling.
//
// [colorx] - CSS color parsing and tone adjustment (brightness/saturation)
// used to derive fill shades from series colors.
//
// [fonts] - The handwriting font stack and its CSS style helpers.
//
// ## Infrastructure
//
// [pipeline] - The load → render → cache pipeline shared by the render, demo,
// and serve commands. Handles format validation, seed defaults, cache lookup,
// and render stats.
//
// [cache] - Content-addressed render cache keyed by spec hash. FileCache for
// the CLI (XDG cache dir), RedisCache for shared preview servers, NullCache
// for --no-cache runs.
//
// [errors] - Error codes and user-facing messages. Every error that reaches
// the CLI carries a code ([errors.GetCode]) and renders a clean one-liner
// ([errors.UserMessage]).
//
// [observability] - Hook interfaces (pipeline, cache, server) for optional
// instrumentation without hard backend dependencies.
//
// [render] - SVG to PDF/PNG conversion by shelling out to rsvg-convert.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Determinism
//
// Drawings are reproducible: the seed (spec field or --seed flag) feeds a
// single PCG random source, and every sketchy primitive draws from it in a
// fixed order, so the same seed always produces the same geometry. Pattern
// and filter ids are the one exception — they are regenerated per document
// so several charts can share a page without colliding.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/sketch/...       # Specific package
//	go test -run Example           # Examples only
//
// [chart]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/chart
// [chartio]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/chartio
// [sketch]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/sketch
// [geom]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/geom
// [colorx]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/colorx
// [fonts]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/cache
// [errors]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/errors
// [observability]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/observability
// [render]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/crayonviz/crayon/pkg/buildinfo
package pkg
