// Package fonts provides the hand-drawn type treatment for SVG rendering.
//
// Charts reference the script font by family name and fall back through a
// stack of widely installed handwriting faces. Documents that must render
// identically on machines without any of them can embed an @font-face rule
// pointing at a hosted font file via [WriteFontFace].
package fonts

import (
	"bytes"
	"fmt"
)

// FontFamily is the CSS font-family name for the hand-drawn script font.
const FontFamily = "xkcd Script"

// FallbackFontFamily provides fallback fonts for systems without the script font.
const FallbackFontFamily = `'xkcd Script', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', sans-serif`

// WriteStyle writes the <style> block applying the hand-drawn font stack to
// every text element. It belongs inside the document's <defs>.
func WriteStyle(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>text { font-family: %s; }</style>\n", FallbackFontFamily)
}

// WriteFontFace writes an @font-face rule binding [FontFamily] to a hosted
// woff file, so the document renders with the script font even where it is
// not installed.
func WriteFontFace(buf *bytes.Buffer, url string) {
	fmt.Fprintf(buf, "  <style>@font-face { font-family: '%s'; src: url('%s') format('woff'); }</style>\n",
		FontFamily, url)
}
