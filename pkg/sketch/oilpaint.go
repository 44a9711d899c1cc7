package sketch

import (
	"math/rand/v2"

	"github.com/crayonviz/crayon/pkg/colorx"
	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/geom"
)

// blobLayer describes one size class of paint daubs.
type blobLayer struct {
	count      int
	minR, maxR float64
	highlight  float64 // probability a daub lightens instead of darkening
}

// Three layers, large to small. Highlights are lighter and more opaque;
// shadows darker and thinner.
var oilLayers = []blobLayer{
	{count: 6, minR: 24, maxR: 48, highlight: 0.5},
	{count: 8, minR: 12, maxR: 26, highlight: 0.3},
	{count: 12, minR: 5, maxR: 13, highlight: 0.4},
}

// NewOilPaintPattern builds an oil-paint fill on a fixed 120×120 tile:
// a base wash, three layers of tonal daubs, then six faint brush strokes
// all running the same way (horizontal or vertical, a coin flip).
func NewOilPaintPattern(color string, rng *rand.Rand) (*Pattern, error) {
	if rng == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "rng cannot be nil")
	}

	p := &Pattern{
		ID:          newPatternID(),
		Width:       PatternTile,
		Height:      PatternTile,
		BaseColor:   color,
		BaseOpacity: 0.35,
	}

	for _, layer := range oilLayers {
		for range layer.count {
			c := geom.Pt(rng.Float64()*PatternTile, rng.Float64()*PatternTile)
			r := layer.minR + rng.Float64()*(layer.maxR-layer.minR)

			var tone string
			var opacity float64
			if rng.Float64() < layer.highlight {
				tone = colorx.Adjust(color, 8+rng.Float64()*14, 0)
				opacity = 0.25 + rng.Float64()*0.25
			} else {
				tone = colorx.Adjust(color, -(8 + rng.Float64()*14), 0)
				opacity = 0.12 + rng.Float64()*0.18
			}

			p.Blobs = append(p.Blobs, Shape{
				Path:    blob(c, r, rng).String(),
				Color:   tone,
				Opacity: opacity,
			})
		}
	}

	const strokes = 6
	horizontal := rng.Float64() < 0.5
	for i := range strokes {
		pos := (float64(i)+0.5)/strokes*PatternTile + (rng.Float64()-0.5)*6
		a, b := geom.Pt(-4, pos), geom.Pt(PatternTile+4, pos)
		if !horizontal {
			a, b = geom.Pt(pos, -4), geom.Pt(pos, PatternTile+4)
		}

		mag := 0.5 + rng.Float64()*1.2
		p.Strokes = append(p.Strokes, Shape{
			Path:    wobbleStroke(a, b, mag, rng).String(),
			Color:   colorx.Adjust(color, (rng.Float64()-0.5)*16, 0),
			Opacity: 0.1 + rng.Float64()*0.1,
			Width:   1 + rng.Float64()*1.5,
		})
	}

	return p, nil
}

// OilPaintPatternSet builds one oil-paint pattern per color, in order.
// A nil rng falls back to [TimeRNG].
func OilPaintPatternSet(colors []string, rng *rand.Rand) []*Pattern {
	if rng == nil {
		rng = TimeRNG()
	}

	patterns := make([]*Pattern, 0, len(colors))
	for _, color := range colors {
		pat, _ := NewOilPaintPattern(color, rng)
		patterns = append(patterns, pat)
	}
	return patterns
}
