package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateSampleCount validates the sample count for path jittering.
// At least two samples are required so that the resampled path has a start
// and an end; anything below that cannot describe a segment.
func ValidateSampleCount(n int) error {
	if n < 2 {
		return New(ErrCodeInvalidSamples, "sample count must be at least 2, got %d", n)
	}
	return nil
}

// ValidateJitterAmount validates a jitter displacement amount.
// The amount is the full width of the uniform offset range, so it must be
// finite and non-negative. Zero is allowed (smoothing without displacement).
func ValidateJitterAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return New(ErrCodeInvalidJitter, "jitter amount must be finite")
	}
	if amount < 0 {
		return New(ErrCodeInvalidJitter, "jitter amount cannot be negative, got %g", amount)
	}
	return nil
}

// ValidateDensity validates a scribble stroke density.
// Density controls the number of strokes per tile; it must be positive.
// Values between 5 and 15 render well, but anything >= 1 is accepted.
func ValidateDensity(density int) error {
	if density < 1 {
		return New(ErrCodeInvalidDensity, "density must be at least 1, got %d", density)
	}
	return nil
}

// ValidateTileSize validates pattern tile dimensions.
// Both dimensions must be finite and strictly positive. Sub-pixel tiles are
// allowed; the values flow into the pattern viewport verbatim.
func ValidateTileSize(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidDimensions, "tile dimensions must be finite")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "tile dimensions must be positive, got %gx%g", width, height)
	}
	return nil
}

// ValidateChartSize validates chart canvas dimensions.
func ValidateChartSize(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidDimensions, "chart dimensions must be finite")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "chart dimensions must be positive, got %gx%g", width, height)
	}
	return nil
}

// validFormats lists the artifact formats the renderer can emit.
var validFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"json": true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "unknown format %q (valid: svg, png, pdf, json)", format)
	}
	return nil
}

// validChartTypes lists the chart types crayon can draw.
var validChartTypes = map[string]bool{
	"line":  true,
	"pie":   true,
	"donut": true,
}

// ValidateChartType validates a chart type name.
func ValidateChartType(typ string) error {
	if typ == "" {
		return New(ErrCodeInvalidChartType, "chart type cannot be empty")
	}
	if !validChartTypes[strings.ToLower(typ)] {
		return New(ErrCodeInvalidChartType, "unknown chart type %q (valid: line, pie, donut)", typ)
	}
	return nil
}

// validFills lists the fill texture styles.
var validFills = map[string]bool{
	"none":     true,
	"scribble": true,
	"oilpaint": true,
}

// ValidateFill validates a fill texture style name.
func ValidateFill(fill string) error {
	if fill == "" {
		return nil // empty means default
	}
	if !validFills[strings.ToLower(fill)] {
		return New(ErrCodeInvalidFill, "unknown fill style %q (valid: none, scribble, oilpaint)", fill)
	}
	return nil
}

// ValidateSpecPath validates a chart spec file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateSpecPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "spec path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "spec path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "spec path contains invalid characters")
		}
	}

	return nil
}
