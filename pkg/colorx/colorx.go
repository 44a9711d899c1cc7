// Package colorx provides CSS color resolution and tone adjustment for
// chart styling.
//
// Colors arrive as CSS strings (hex, rgb()/rgba() notation, or SVG named
// colors) and leave as rgb() strings. Adjustments run in HSL space so that
// brightness and saturation shifts preserve hue.
package colorx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Resolve parses a CSS color string. It accepts #rgb and #rrggbb hex forms,
// rgb()/rgba() functional notation (integer or percentage channels), and SVG
// named colors. The boolean reports whether parsing succeeded.
func Resolve(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, false
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(lower)
	}

	if rgba, ok := colornames.Map[lower]; ok {
		return colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}, true
	}

	return colorful.Color{}, false
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a) notation. Channel
// values may be integers (0-255) or percentages. Any alpha component is
// accepted and discarded.
func parseRGBFunc(s string) (colorful.Color, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if open < 0 || end < open {
		return colorful.Color{}, false
	}

	parts := strings.Split(s[open+1:end], ",")
	if len(parts) < 3 || len(parts) > 4 {
		return colorful.Color{}, false
	}

	var ch [3]float64
	for i := range 3 {
		v, ok := parseChannel(strings.TrimSpace(parts[i]))
		if !ok {
			return colorful.Color{}, false
		}
		ch[i] = v
	}

	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

func parseChannel(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clamp(pct/100, 0, 1), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp(v/255, 0, 1), true
}

// RGBString formats a color as an rgb() string with 8-bit channels.
func RGBString(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// Adjust shifts a color's lightness and saturation and returns the result as
// an rgb() string.
//
// brightness is measured in percentage points of lightness (nominal range
// -100 to 100); saturation is an absolute delta (nominal range -1 to 1).
// Both channels are clamped to their valid range after the shift, so
// out-of-range deltas saturate rather than overflow. Achromatic inputs carry
// hue 0 and saturation 0 into the adjustment.
//
// If the color cannot be resolved, the input is returned unchanged.
func Adjust(color string, brightness, saturation float64) string {
	c, ok := Resolve(color)
	if !ok {
		return color
	}

	h, s, l := c.Hsl()
	l = clamp(l+brightness/100, 0, 1)
	s = clamp(s+saturation, 0, 1)

	return RGBString(colorful.Hsl(h, s, l))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
