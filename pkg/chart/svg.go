package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/crayonviz/crayon/pkg/fonts"
	"github.com/crayonviz/crayon/pkg/sketch"
)

// Option configures the render sinks.
type Option func(*renderer)

type renderer struct {
	cfg     Config
	rng     *rand.Rand
	fontURL string
}

// WithConfig replaces the whole configuration. Unset fields still get their
// defaults at render time.
func WithConfig(cfg Config) Option { return func(r *renderer) { r.cfg = cfg } }

// WithTitle sets the chart title.
func WithTitle(title string) Option { return func(r *renderer) { r.cfg.Title = title } }

// WithSize sets the document dimensions in pixels.
func WithSize(width, height float64) Option {
	return func(r *renderer) { r.cfg.Width, r.cfg.Height = width, height }
}

// WithSeed fixes the sketch randomness, making the geometry reproducible.
func WithSeed(seed uint64) Option { return func(r *renderer) { r.cfg.Seed = seed } }

// WithFill selects the fill texture style: "none", "scribble", or "oilpaint".
func WithFill(style string) Option { return func(r *renderer) { r.cfg.Fill = style } }

// WithPalette replaces the series color cycle.
func WithPalette(colors ...string) Option {
	return func(r *renderer) { r.cfg.Palette = colors }
}

// WithRNG overrides the random source, taking precedence over the seed.
// Intended for callers threading one source through several charts.
func WithRNG(rng *rand.Rand) Option { return func(r *renderer) { r.rng = rng } }

// WithFontFace embeds an @font-face rule pointing at a hosted woff file, so
// the document keeps its hand-drawn type on machines without the font.
func WithFontFace(url string) Option { return func(r *renderer) { r.fontURL = url } }

func newRenderer(opts ...Option) renderer {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// compute resolves the configuration, picks the random source, and builds
// the chart frame.
func (r renderer) compute(c Chart) (*frame, error) {
	cfg := r.cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := r.rng
	if rng == nil {
		if cfg.Seed != 0 {
			rng = sketch.NewRNG(cfg.Seed)
		} else {
			rng = sketch.TimeRNG()
		}
	}

	return c.build(cfg, rng)
}

// RenderSVG renders the chart as a standalone SVG document.
func RenderSVG(c Chart, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	f, err := r.compute(c)
	if err != nil {
		return nil, err
	}

	// Regenerated per document so several charts can share a page.
	filterID := "crayon-rough-" + uuid.NewString()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)

	renderDefs(&buf, f, filterID, r.fontURL)
	fmt.Fprintf(&buf, "  <rect width=\"%.1f\" height=\"%.1f\" fill=%q/>\n",
		f.width, f.height, paperColor)

	for _, s := range f.shapes {
		renderShape(&buf, s, filterID)
	}
	for _, t := range f.texts {
		renderText(&buf, t)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// roughFilter perturbs every marked shape with fractal noise, giving strokes
// slightly irregular, pencil-like edges. The displacement scale is kept
// small so geometry stays readable.
const roughFilter = `  <filter id=%q x="-5%%" y="-5%%" width="110%%" height="110%%">
    <feTurbulence type="fractalNoise" baseFrequency="0.05" numOctaves="2" result="noise"/>
    <feDisplacementMap in="SourceGraphic" in2="noise" scale="3" xChannelSelector="R" yChannelSelector="G"/>
  </filter>
`

func renderDefs(buf *bytes.Buffer, f *frame, filterID, fontURL string) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, roughFilter, filterID)
	if fontURL != "" {
		fonts.WriteFontFace(buf, fontURL)
	}
	fonts.WriteStyle(buf)
	for _, p := range f.patterns {
		p.RenderDefs(buf)
	}
	buf.WriteString("  </defs>\n")
}

func renderShape(buf *bytes.Buffer, s shape, filterID string) {
	fmt.Fprintf(buf, `  <path class=%q d=%q`, s.class, s.path.String())

	if s.fill == "" {
		buf.WriteString(` fill="none"`)
	} else {
		fmt.Fprintf(buf, ` fill=%q`, s.fill)
		if s.fillOpacity > 0 && s.fillOpacity < 1 {
			fmt.Fprintf(buf, ` fill-opacity="%.2f"`, s.fillOpacity)
		}
	}
	if s.stroke != "" {
		fmt.Fprintf(buf, ` stroke=%q stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"`,
			s.stroke, s.strokeWidth)
	}
	if s.dashed {
		buf.WriteString(` stroke-dasharray="6,5"`)
	}
	if s.rough {
		fmt.Fprintf(buf, ` filter="url(#%s)"`, filterID)
	}
	buf.WriteString("/>\n")
}

func renderText(buf *bytes.Buffer, t text) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" text-anchor=%q fill=%q`,
		t.x, t.y, t.size, t.anchor, t.color)
	if t.rotate != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.0f %.1f %.1f)"`, t.rotate, t.x, t.y)
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(t.s))
}

// escapeXML escapes text content for embedding in the document.
func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
