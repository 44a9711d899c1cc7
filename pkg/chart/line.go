package chart

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/geom"
	"github.com/crayonviz/crayon/pkg/sketch"
)

// Series is one named sequence of y values on a line chart.
type Series struct {
	Name   string    `json:"name,omitempty"`
	Values []float64 `json:"values"`
}

// Line is a line chart: one or more series plotted over shared x positions.
// Labels caption the x positions; when empty, 1-based indices are used.
type Line struct {
	Labels []string `json:"labels,omitempty"`
	Series []Series `json:"series"`

	// Area fills the region under each series with the configured pattern.
	Area bool `json:"area,omitempty"`
}

// Kind implements [Chart].
func (Line) Kind() string { return KindLine }

func (l Line) validate() error {
	if len(l.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "line chart needs at least one series")
	}
	n := len(l.Series[0].Values)
	if n == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "series cannot be empty")
	}
	for _, s := range l.Series {
		if len(s.Values) != n {
			return errors.New(errors.ErrCodeInvalidSpec,
				"series %q has %d values, want %d", s.Name, len(s.Values), n)
		}
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(errors.ErrCodeInvalidSpec,
					"series %q contains a non-finite value", s.Name)
			}
		}
	}
	if len(l.Labels) != 0 && len(l.Labels) != n {
		return errors.New(errors.ErrCodeInvalidSpec,
			"got %d labels for %d points", len(l.Labels), n)
	}
	return nil
}

// label returns the caption for x position i.
func (l Line) label(i int) string {
	if i < len(l.Labels) {
		return l.Labels[i]
	}
	return strconv.Itoa(i + 1)
}

func (l Line) build(cfg Config, rng *rand.Rand) (*frame, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	n := len(l.Series[0].Values)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range l.Series {
		for _, v := range s.Values {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	ticks := niceTicks(lo, hi, 5)
	yMin, yMax := ticks[0], ticks[len(ticks)-1]

	colors := make([]string, len(l.Series))
	for i := range l.Series {
		colors[i] = cfg.color(i)
	}

	f := &frame{width: cfg.Width, height: cfg.Height}

	var patterns []*sketch.Pattern
	if l.Area {
		var err error
		patterns, err = buildPatterns(cfg, colors, rng)
		if err != nil {
			return nil, err
		}
		f.patterns = patterns
	}

	legendPos := cfg.Legend
	if legendPos == LegendAuto {
		legendPos = LegendBottom
	}
	var entries []legendEntry
	if legendPos != LegendNone {
		for i, s := range l.Series {
			if s.Name == "" {
				continue
			}
			e := legendEntry{label: s.Name, color: colors[i]}
			if patterns != nil {
				e.fill = patterns[i].URL()
			}
			entries = append(entries, e)
		}
	}

	tickLabels := make([]string, len(ticks))
	var tickW float64
	for i, t := range ticks {
		tickLabels[i] = formatTick(t)
		tickW = max(tickW, textWidth(tickLabels[i], tickFontSize))
	}

	top := 18.0
	if cfg.Title != "" {
		top += 30
	}
	bottom := 36.0
	if cfg.XLabel != "" {
		bottom += 22
	}
	left := 14 + tickW + 10
	if cfg.YLabel != "" {
		left += 20
	}
	right := 18.0
	switch {
	case len(entries) == 0:
	case legendPos == LegendRight:
		right += legendBoxWidth(entries) + 14
	default:
		bottom += 30
	}

	plot := plotRect{left: left, top: top, right: cfg.Width - right, bottom: cfg.Height - bottom}
	if plot.width() < 40 || plot.height() < 40 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"chart size leaves no room for the plot")
	}

	xAt := func(i int) float64 {
		if n == 1 {
			return plot.centerX()
		}
		return plot.left + float64(i)/float64(n-1)*plot.width()
	}
	yAt := func(v float64) float64 {
		return plot.bottom - (v-yMin)/(yMax-yMin)*plot.height()
	}

	if !cfg.NoGrid {
		// The yMin line coincides with the x axis; start above it.
		for _, t := range ticks[1:] {
			y := yAt(t)
			f.shapes = append(f.shapes, shape{
				class:       "grid",
				path:        geom.Line(geom.Pt(plot.left, y), geom.Pt(plot.right, y)),
				stroke:      gridColor,
				strokeWidth: 1,
				dashed:      true,
			})
		}
	}

	if l.Area {
		for i, s := range l.Series {
			pts := seriesPoints(s.Values, xAt, yAt)
			area := geom.Polyline(pts...)
			area = append(area,
				geom.LineTo{Point: geom.Pt(pts[len(pts)-1].X, plot.bottom)},
				geom.LineTo{Point: geom.Pt(pts[0].X, plot.bottom)},
				geom.Close{},
			)
			sh := shape{
				class: "area",
				path:  sketched(area, areaJitter, true, rng),
				rough: true,
			}
			if patterns != nil {
				sh.fill = patterns[i].URL()
			} else {
				sh.fill = colors[i]
				sh.fillOpacity = 0.25
			}
			f.shapes = append(f.shapes, sh)
		}
	}

	f.shapes = append(f.shapes,
		shape{
			class:       "axis",
			path:        sketched(geom.Line(geom.Pt(plot.left, plot.bottom), geom.Pt(plot.right, plot.bottom)), axisJitter, false, rng),
			stroke:      inkColor,
			strokeWidth: 2,
			rough:       true,
		},
		shape{
			class:       "axis",
			path:        sketched(geom.Line(geom.Pt(plot.left, plot.bottom), geom.Pt(plot.left, plot.top)), axisJitter, false, rng),
			stroke:      inkColor,
			strokeWidth: 2,
			rough:       true,
		},
	)

	// Thin x labels down when they would crowd each other.
	step := 1
	if n > 12 {
		step = (n + 11) / 12
	}
	for i := 0; i < n; i += step {
		x := xAt(i)
		f.shapes = append(f.shapes, shape{
			class:       "axis",
			path:        geom.Line(geom.Pt(x, plot.bottom), geom.Pt(x, plot.bottom+5)),
			stroke:      inkColor,
			strokeWidth: 1.5,
		})
		f.texts = append(f.texts, text{
			x: x, y: plot.bottom + 20,
			s: l.label(i), size: tickFontSize, anchor: "middle", color: inkColor,
		})
	}

	for i, t := range ticks {
		y := yAt(t)
		f.shapes = append(f.shapes, shape{
			class:       "axis",
			path:        geom.Line(geom.Pt(plot.left-5, y), geom.Pt(plot.left, y)),
			stroke:      inkColor,
			strokeWidth: 1.5,
		})
		f.texts = append(f.texts, text{
			x: plot.left - 9, y: y + 4,
			s: tickLabels[i], size: tickFontSize, anchor: "end", color: inkColor,
		})
	}

	for i, s := range l.Series {
		pts := seriesPoints(s.Values, xAt, yAt)
		f.shapes = append(f.shapes, shape{
			class:       "series",
			path:        sketched(geom.Polyline(pts...), seriesJitter, false, rng),
			stroke:      colors[i],
			strokeWidth: 2.5,
			rough:       true,
		})
	}

	if cfg.Title != "" {
		f.texts = append(f.texts, text{
			x: cfg.Width / 2, y: 28,
			s: cfg.Title, size: titleFontSize, anchor: "middle", color: inkColor,
		})
	}
	if cfg.XLabel != "" {
		f.texts = append(f.texts, text{
			x: plot.centerX(), y: plot.bottom + 42,
			s: cfg.XLabel, size: axisFontSize, anchor: "middle", color: inkColor,
		})
	}
	if cfg.YLabel != "" {
		f.texts = append(f.texts, text{
			x: 16, y: plot.centerY(),
			s: cfg.YLabel, size: axisFontSize, anchor: "middle", color: inkColor,
			rotate: -90,
		})
	}

	switch {
	case len(entries) == 0:
	case legendPos == LegendRight:
		buildLegendRight(f, entries, plot.right+14, plot.top+6, rng)
	default:
		buildLegendBottom(f, entries, plot.centerX(), cfg.Height-12, rng)
	}

	return f, nil
}

// seriesPoints maps one series onto the plot rectangle.
func seriesPoints(values []float64, xAt func(int) float64, yAt func(float64) float64) []geom.Point {
	pts := make([]geom.Point, len(values))
	for i, v := range values {
		pts[i] = geom.Pt(xAt(i), yAt(v))
	}
	return pts
}
