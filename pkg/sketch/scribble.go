package sketch

import (
	"math"
	"math/rand/v2"

	"github.com/crayonviz/crayon/pkg/colorx"
	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/geom"
)

// PresetAngles cycles stroke directions across a palette so neighboring
// series hatch differently. [DirectionalPatternSet] indexes it by color
// position, wrapping after eight.
var PresetAngles = []float64{0, 45, 90, 135, 30, 60, 120, 150}

// PatternTile is the tile edge used by the pattern set builders.
const PatternTile = 120.0

// NewDirectionalPattern builds a scribble fill: density+1 wobbly marker
// strokes running at angleDeg across a width×height tile, over a translucent
// ground wash and a few watercolor daubs.
//
// Stroke spacing is height/(density+1). Densities between 5 and 15 render
// well. Each stroke varies slightly in width, opacity and tone.
func NewDirectionalPattern(color string, density int, width, height, angleDeg float64, rng *rand.Rand) (*Pattern, error) {
	if err := errors.ValidateDensity(density); err != nil {
		return nil, err
	}
	if err := errors.ValidateTileSize(width, height); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "rng cannot be nil")
	}

	p := &Pattern{
		ID:          newPatternID(),
		Width:       width,
		Height:      height,
		BaseColor:   color,
		BaseOpacity: 0.1 + rng.Float64()*0.06,
	}

	for range 2 + rng.IntN(3) {
		c := geom.Pt(rng.Float64()*width, rng.Float64()*height)
		r := (width + height) / 2 * (0.15 + rng.Float64()*0.2)
		p.Blobs = append(p.Blobs, Shape{
			Path:    blob(c, r, rng).String(),
			Color:   colorx.Adjust(color, 5+rng.Float64()*10, -0.1),
			Opacity: 0.06 + rng.Float64()*0.08,
		})
	}

	center := geom.Pt(width/2, height/2)
	angle := angleDeg * math.Pi / 180
	dir := geom.Pt(math.Cos(angle), math.Sin(angle))
	normal := dir.Perp()
	halfSpan := math.Hypot(width, height) / 2
	spacing := height / float64(density+1)

	for i := 0; i <= density; i++ {
		mid := center.Add(normal.Mul((float64(i) - float64(density)/2) * spacing))
		a := mid.Sub(dir.Mul(halfSpan))
		b := mid.Add(dir.Mul(halfSpan))

		mag := 0.5 + rng.Float64()*1.5
		p.Strokes = append(p.Strokes, Shape{
			Path:    wobbleStroke(a, b, mag, rng).String(),
			Color:   colorx.Adjust(color, (rng.Float64()-0.5)*20, 0),
			Opacity: 0.55 + rng.Float64()*0.35,
			Width:   0.8 + rng.Float64()*1.4,
		})
	}

	return p, nil
}

// DirectionalPatternSet builds one scribble pattern per color, in order.
// Stroke direction cycles through a preset angle list by color index and
// density is drawn from [6, 10] per pattern. A nil rng falls back to
// [TimeRNG].
func DirectionalPatternSet(colors []string, rng *rand.Rand) []*Pattern {
	if rng == nil {
		rng = TimeRNG()
	}

	patterns := make([]*Pattern, 0, len(colors))
	for i, color := range colors {
		density := 6 + rng.IntN(5)
		// Tile size and density are always valid here.
		pat, _ := NewDirectionalPattern(color, density, PatternTile, PatternTile,
			PresetAngles[i%len(PresetAngles)], rng)
		patterns = append(patterns, pat)
	}
	return patterns
}
