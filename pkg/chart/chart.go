package chart

import (
	"math"
	"math/rand/v2"
	"strconv"
	"unicode/utf8"

	"github.com/crayonviz/crayon/pkg/geom"
	"github.com/crayonviz/crayon/pkg/sketch"
)

// Chart kind constants.
const (
	KindLine = "line"
	KindPie  = "pie"
)

// ValidKinds is the set of supported chart kinds.
var ValidKinds = map[string]bool{
	KindLine: true,
	KindPie:  true,
}

// Chart is a renderable chart model. [Line] and [Pie] implement it; every
// render sink accepts any Chart.
type Chart interface {
	// Kind reports the chart type ("line" or "pie").
	Kind() string

	// build computes every visual element of the chart in SVG user space.
	build(cfg Config, rng *rand.Rand) (*frame, error)
}

// Ink and paper tones, matching hand-colored technical drawings: dark but
// not pure black outlines on a paper-white ground.
const (
	inkColor   = "#333333"
	inkSoft    = "#707070"
	gridColor  = "#d7d7d7"
	paperColor = "#ffffff"
)

// Jitter amounts per element class, in pixels.
const (
	axisJitter   = 1.5
	seriesJitter = 1.8
	areaJitter   = 1.5
	sliceJitter  = 2.0
	swatchJitter = 1.2
)

// Text sizes in pixels.
const (
	titleFontSize = 19.0
	axisFontSize  = 13.0
	tickFontSize  = 11.0
)

// frame is a fully computed chart document: sized, with every shape and text
// element positioned in SVG user space. Shapes are painted in order, so
// builders append backgrounds before strokes.
type frame struct {
	width, height float64
	patterns      []*sketch.Pattern
	shapes        []shape
	texts         []text
}

// shape is one drawable path with its paint attributes.
type shape struct {
	class       string // axis, grid, series, area, slice, legend, swatch
	path        geom.Path
	stroke      string // empty means no outline
	strokeWidth float64
	fill        string  // color or pattern reference; empty means none
	fillOpacity float64 // 0 means fully opaque
	dashed      bool
	rough       bool // run through the displacement filter
}

// text is one positioned text element. rotate is in degrees about (x, y).
type text struct {
	x, y   float64
	s      string
	size   float64
	anchor string // start, middle, end
	color  string
	rotate float64
}

// plotRect is the data-bearing region of the document, inside the margins.
type plotRect struct {
	left, top, right, bottom float64
}

func (p plotRect) width() float64   { return p.right - p.left }
func (p plotRect) height() float64  { return p.bottom - p.top }
func (p plotRect) centerX() float64 { return (p.left + p.right) / 2 }
func (p plotRect) centerY() float64 { return (p.top + p.bottom) / 2 }

// sketched redraws p with hand-drawn wobble, picking a sample count
// proportional to arc length so long paths wiggle as densely as short ones.
func sketched(p geom.Path, amount float64, closed bool, rng *rand.Rand) geom.Path {
	length := geom.NewMeasure(p).Length()
	samples := max(8, min(96, int(length/10)))
	// Amounts and sample counts are package constants, always valid.
	jp, _ := sketch.Jitter(p, amount, samples, closed, rng)
	return jp
}

// buildPatterns generates one fill pattern per color in the configured style,
// or nil when fills are disabled. A nonzero FillDirection shifts the whole
// preset angle cycle for scribble fills.
func buildPatterns(cfg Config, colors []string, rng *rand.Rand) ([]*sketch.Pattern, error) {
	switch cfg.Fill {
	case FillNone:
		return nil, nil
	case FillOilPaint:
		return sketch.OilPaintPatternSet(colors, rng), nil
	}

	if cfg.FillDirection == 0 {
		return sketch.DirectionalPatternSet(colors, rng), nil
	}

	patterns := make([]*sketch.Pattern, len(colors))
	for i, color := range colors {
		angle := cfg.FillDirection + sketch.PresetAngles[i%len(sketch.PresetAngles)]
		p, err := sketch.NewDirectionalPattern(color, 6+rng.IntN(5),
			sketch.PatternTile, sketch.PatternTile, angle, rng)
		if err != nil {
			return nil, err
		}
		patterns[i] = p
	}
	return patterns, nil
}

// =============================================================================
// Ticks
// =============================================================================

// niceTicks returns round tick values covering [lo, hi], aiming for roughly
// count steps. The returned slice always has at least two entries and its
// first/last values bracket the input range.
func niceTicks(lo, hi float64, count int) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	step := tickStep(lo, hi, count)
	start := math.Floor(lo/step) * step
	stop := math.Ceil(hi/step) * step

	n := int(math.Round((stop - start) / step))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, start+float64(i)*step)
	}
	return ticks
}

// tickStep picks a 1/2/5×10^k step dividing [lo, hi] into about count parts.
func tickStep(lo, hi float64, count int) float64 {
	raw := (hi - lo) / float64(max(1, count))
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	// Round to the nearest nice multiple on a log scale.
	switch e := raw / mag; {
	case e >= math.Sqrt(50):
		return 10 * mag
	case e >= math.Sqrt(10):
		return 5 * mag
	case e >= math.Sqrt2:
		return 2 * mag
	default:
		return mag
	}
}

// formatTick renders a tick value with the fewest digits that round-trip.
func formatTick(v float64) string {
	// Rounding here hides the float noise accumulated by repeated step adds.
	v = math.Round(v*1e9) / 1e9
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// =============================================================================
// Legend
// =============================================================================

const (
	legendSwatch   = 12.0
	legendFontSize = 12.0
	legendRowGap   = 22.0
	legendPad      = 10.0
	legendColGap   = 18.0
	fontCharWidth  = 0.55
)

// legendEntry is one swatch + label pair.
type legendEntry struct {
	label string
	fill  string // swatch fill: pattern reference or color
	color string // swatch outline
}

// textWidth estimates rendered width for layout purposes. Hand-drawn fonts
// are close enough to monospace-at-0.55em for margins and legend boxes.
func textWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * fontCharWidth
}

// legendBoxWidth returns the width a right-hand legend box needs.
func legendBoxWidth(entries []legendEntry) float64 {
	var w float64
	for _, e := range entries {
		w = max(w, textWidth(e.label, legendFontSize))
	}
	return legendPad + legendSwatch + 6 + w + legendPad
}

// buildLegendRight stacks entries in a sketched box whose top-left corner is
// (x, top).
func buildLegendRight(f *frame, entries []legendEntry, x, top float64, rng *rand.Rand) {
	if len(entries) == 0 {
		return
	}

	w := legendBoxWidth(entries)
	h := legendPad + float64(len(entries)-1)*legendRowGap + legendSwatch + legendPad
	f.shapes = append(f.shapes, shape{
		class:       "legend",
		path:        sketched(geom.Rect(x, top, w, h), swatchJitter, true, rng),
		stroke:      inkSoft,
		strokeWidth: 1,
		fill:        paperColor,
		fillOpacity: 0.85,
		rough:       true,
	})

	for i, e := range entries {
		sy := top + legendPad + float64(i)*legendRowGap
		appendLegendEntry(f, e, x+legendPad, sy, rng)
	}
}

// buildLegendBottom lays entries in one row centered on cx, with text
// baselines at y.
func buildLegendBottom(f *frame, entries []legendEntry, cx, y float64, rng *rand.Rand) {
	if len(entries) == 0 {
		return
	}

	widths := make([]float64, len(entries))
	var total float64
	for i, e := range entries {
		widths[i] = legendSwatch + 6 + textWidth(e.label, legendFontSize)
		total += widths[i]
	}
	total += float64(len(entries)-1) * legendColGap

	x := cx - total/2
	for i, e := range entries {
		appendLegendEntry(f, e, x, y-legendSwatch+2, rng)
		x += widths[i] + legendColGap
	}
}

// appendLegendEntry draws one swatch at (x, y) with its label to the right.
func appendLegendEntry(f *frame, e legendEntry, x, y float64, rng *rand.Rand) {
	swatch := shape{
		class:       "swatch",
		path:        sketched(geom.Rect(x, y, legendSwatch, legendSwatch), swatchJitter, true, rng),
		stroke:      e.color,
		strokeWidth: 1.5,
		fill:        e.fill,
		rough:       true,
	}
	if e.fill == "" {
		swatch.fill = e.color
		swatch.fillOpacity = 0.5
	}
	f.shapes = append(f.shapes, swatch)
	f.texts = append(f.texts, text{
		x:      x + legendSwatch + 6,
		y:      y + legendSwatch - 2,
		s:      e.label,
		size:   legendFontSize,
		anchor: "start",
		color:  inkColor,
	})
}
