package chart

import (
	"github.com/crayonviz/crayon/pkg/colorx"
	"github.com/crayonviz/crayon/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Server, and Library Callers
// =============================================================================

const (
	// DefaultWidth is the default document width in pixels.
	DefaultWidth = 600.0

	// DefaultHeight is the default document height in pixels.
	DefaultHeight = 400.0

	// DefaultFill is the fill style applied when none is requested.
	DefaultFill = FillScribble
)

// Fill style constants for pattern generation.
const (
	FillNone     = "none"
	FillScribble = "scribble"
	FillOilPaint = "oilpaint"
)

// Legend placement constants.
const (
	LegendAuto   = "" // chart kind decides
	LegendNone   = "none"
	LegendRight  = "right"
	LegendBottom = "bottom"
)

// DefaultPalette is the series color cycle: saturated crayon tones that read
// well on the paper-white background.
var DefaultPalette = []string{
	"#dd4528", "#28a3dd", "#f3db52", "#ed84b5", "#4ab74e",
	"#9179c0", "#8e6d5a", "#f19839", "#949494",
}

// Config contains all presentation options for a chart. The zero value is
// usable: withDefaults fills every unset field, so callers only set what they
// want to override. This struct supports JSON serialization for server
// requests and spec files.
type Config struct {
	// Text around the plot.
	Title  string `json:"title,omitempty"`
	XLabel string `json:"xlabel,omitempty"`
	YLabel string `json:"ylabel,omitempty"`

	// Document dimensions in pixels. Zero means the package default.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Seed drives all sketch randomness. Zero means seed from the clock,
	// giving a fresh hand-drawn look on every render.
	Seed uint64 `json:"seed,omitempty"`

	// Palette is the series color cycle. Colors are consumed in order and
	// wrap around when a chart has more series than colors.
	Palette []string `json:"palette,omitempty"`

	// Fill selects the texture used for filled regions: "none", "scribble",
	// or "oilpaint". Empty means scribble.
	Fill string `json:"fill,omitempty"`

	// FillDirection is the base stroke angle in degrees for scribble fills.
	// Successive patterns cycle preset angles starting from this offset.
	FillDirection float64 `json:"fill_direction,omitempty"`

	// Legend placement: "right", "bottom", or "none". Empty lets the chart
	// kind decide (bottom for line charts, right for pies).
	Legend string `json:"legend,omitempty"`

	// NoGrid suppresses the horizontal grid lines on line charts.
	NoGrid bool `json:"no_grid,omitempty"`
}

// withDefaults returns a copy of c with every unset field replaced by its
// default. The receiver is never modified; config merging stays a pure
// function so the same Config can be reused across renders.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
	if c.Fill == "" {
		c.Fill = DefaultFill
	}
	return c
}

// validate checks the fields a caller can get wrong. Called after
// withDefaults, so empty-means-default fields are already resolved.
func (c Config) validate() error {
	if err := errors.ValidateChartSize(c.Width, c.Height); err != nil {
		return err
	}
	if err := errors.ValidateFill(c.Fill); err != nil {
		return err
	}
	switch c.Legend {
	case LegendAuto, LegendNone, LegendRight, LegendBottom:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"legend must be one of: right, bottom, none")
	}
	for _, entry := range c.Palette {
		if _, ok := colorx.Resolve(entry); !ok {
			return errors.New(errors.ErrCodeInvalidColor,
				"palette color %q is not a CSS color", entry)
		}
	}
	return nil
}

// color returns the palette entry for series i, wrapping around.
func (c Config) color(i int) string {
	return c.Palette[i%len(c.Palette)]
}
