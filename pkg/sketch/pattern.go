package sketch

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Shape is one painted element inside a pattern tile. Blobs are filled and
// ignore Width; strokes are drawn with a round-capped outline.
type Shape struct {
	Path    string // SVG path data
	Color   string
	Opacity float64
	Width   float64 // stroke width, strokes only
}

// Pattern is a tileable hand-painted SVG fill. It renders as a <pattern>
// element in the document defs and is referenced by shapes via URL.
type Pattern struct {
	ID     string
	Width  float64
	Height float64

	BaseColor   string  // translucent ground wash
	BaseOpacity float64
	Blobs       []Shape // paint daubs under the strokes
	Strokes     []Shape
}

// URL returns the fill reference for shapes using this pattern.
func (p *Pattern) URL() string {
	return fmt.Sprintf("url(#%s)", p.ID)
}

// RenderDefs writes the <pattern> element. It belongs inside the document's
// <defs> block, once per pattern.
func (p *Pattern) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <pattern id=%q width=\"%.2f\" height=\"%.2f\" patternUnits=\"userSpaceOnUse\">\n",
		p.ID, p.Width, p.Height)
	fmt.Fprintf(buf, "    <rect width=\"%.2f\" height=\"%.2f\" fill=%q fill-opacity=\"%.2f\"/>\n",
		p.Width, p.Height, p.BaseColor, p.BaseOpacity)
	for _, b := range p.Blobs {
		fmt.Fprintf(buf, "    <path d=%q fill=%q fill-opacity=\"%.2f\"/>\n",
			b.Path, b.Color, b.Opacity)
	}
	for _, s := range p.Strokes {
		fmt.Fprintf(buf, "    <path d=%q fill=\"none\" stroke=%q stroke-width=\"%.2f\" stroke-opacity=\"%.2f\" stroke-linecap=\"round\"/>\n",
			s.Path, s.Color, s.Width, s.Opacity)
	}
	buf.WriteString("  </pattern>\n")
}

// newPatternID returns a document-unique pattern identifier.
func newPatternID() string {
	return "crayon-" + uuid.NewString()
}
