package chart

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/geom"
)

// Slice is one pie wedge: a label and a non-negative value. Values are
// relative; the chart normalizes them to fractions of their sum.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Pie is a pie chart. Donut renders it with a hollow center.
type Pie struct {
	Slices []Slice `json:"slices"`
	Donut  bool    `json:"donut,omitempty"`
}

// Kind implements [Chart].
func (Pie) Kind() string { return KindPie }

func (p Pie) validate() error {
	if len(p.Slices) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "pie chart needs at least one slice")
	}
	var total float64
	for _, s := range p.Slices {
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) || s.Value < 0 {
			return errors.New(errors.ErrCodeInvalidSpec,
				"slice %q value must be finite and non-negative", s.Label)
		}
		total += s.Value
	}
	if total == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "slice values sum to zero")
	}
	return nil
}

func (p Pie) build(cfg Config, rng *rand.Rand) (*frame, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var total float64
	for _, s := range p.Slices {
		total += s.Value
	}

	colors := make([]string, len(p.Slices))
	for i := range p.Slices {
		colors[i] = cfg.color(i)
	}

	f := &frame{width: cfg.Width, height: cfg.Height}

	patterns, err := buildPatterns(cfg, colors, rng)
	if err != nil {
		return nil, err
	}
	f.patterns = patterns

	legendPos := cfg.Legend
	if legendPos == LegendAuto {
		legendPos = LegendRight
	}
	var entries []legendEntry
	if legendPos != LegendNone {
		for i, s := range p.Slices {
			e := legendEntry{label: s.Label, color: colors[i]}
			if patterns != nil {
				e.fill = patterns[i].URL()
			}
			entries = append(entries, e)
		}
	}

	top := 16.0
	if cfg.Title != "" {
		top += 30
	}
	bottom, left, right := 20.0, 20.0, 20.0
	switch {
	case len(entries) == 0:
	case legendPos == LegendBottom:
		bottom += 34
	default:
		right += legendBoxWidth(entries) + 14
	}

	plot := plotRect{left: left, top: top, right: cfg.Width - right, bottom: cfg.Height - bottom}
	radius := min(plot.width(), plot.height())/2 - 8
	if radius < 20 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"chart size leaves no room for the pie")
	}
	center := geom.Pt(plot.centerX(), plot.centerY())
	var inner float64
	if p.Donut {
		inner = radius * 0.55
	}

	var cum float64
	for i, s := range p.Slices {
		frac := s.Value / total
		if frac == 0 {
			// Nothing to draw, but the slice keeps its legend entry.
			continue
		}
		a0 := -math.Pi/2 + 2*math.Pi*(cum/total)
		cum += s.Value
		a1 := -math.Pi/2 + 2*math.Pi*(cum/total)

		var wedge geom.Path
		switch {
		case frac == 1 && p.Donut:
			// A full ring drawn as one loop: out along the outer circle,
			// back along the inner, with a hairline seam the jitterer
			// smooths shut.
			wedge = geom.DonutSlice(center, radius, inner, a0, a0+2*math.Pi*0.9999)
		case frac == 1:
			wedge = geom.Circle(center, radius)
		case p.Donut:
			wedge = geom.DonutSlice(center, radius, inner, a0, a1)
		default:
			wedge = geom.PieSlice(center, radius, a0, a1)
		}

		sh := shape{
			class:       "slice",
			path:        sketched(wedge, sliceJitter, true, rng),
			stroke:      inkColor,
			strokeWidth: 2,
			rough:       true,
		}
		if patterns != nil {
			sh.fill = patterns[i].URL()
		} else {
			sh.fill = colors[i]
			sh.fillOpacity = 0.55
		}
		f.shapes = append(f.shapes, sh)

		if frac >= 0.06 {
			mid := (a0 + a1) / 2
			lr := radius * 0.62
			if p.Donut {
				lr = (radius + inner) / 2
			}
			f.texts = append(f.texts, text{
				x:      center.X + lr*math.Cos(mid),
				y:      center.Y + lr*math.Sin(mid) + 4,
				s:      fmt.Sprintf("%.0f%%", frac*100),
				size:   tickFontSize + 1,
				anchor: "middle",
				color:  inkColor,
			})
		}
	}

	if cfg.Title != "" {
		f.texts = append(f.texts, text{
			x: cfg.Width / 2, y: 28,
			s: cfg.Title, size: titleFontSize, anchor: "middle", color: inkColor,
		})
	}

	switch {
	case len(entries) == 0:
	case legendPos == LegendBottom:
		buildLegendBottom(f, entries, plot.centerX(), cfg.Height-12, rng)
	default:
		boxH := 2*legendPad + float64(len(entries)-1)*legendRowGap + legendSwatch
		boxTop := max(plot.top, center.Y-boxH/2)
		buildLegendRight(f, entries, plot.right+14, boxTop, rng)
	}

	return f, nil
}
