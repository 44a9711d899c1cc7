// Package render converts SVG documents to other output formats.
//
// # Overview
//
// The chart sinks produce SVG natively; this package handles everything
// downstream of that. [ToPDF] and [ToPNG] convert any SVG using the external
// rsvg-convert tool (from librsvg):
//
//	svg, err := chart.RenderSVG(line, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Conversion shells out rather than linking a rasterizer: librsvg handles
// the turbulence/displacement filters the hand-drawn style leans on, which
// pure-Go SVG rasterizers do not.
//
// Failures carry pkg/errors codes: [errors.ErrCodeUnsupported] when
// rsvg-convert is not installed, [errors.ErrCodeRender] when it exits
// nonzero.
package render

import (
	"bytes"
	"math"
	"os/exec"
	"strconv"

	"github.com/crayonviz/crayon/pkg/errors"
)

// converter is the external tool every conversion shells out to.
const converter = "rsvg-convert"

// ToPDF converts an SVG document to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts an SVG document to PNG, rasterized at the given scale
// factor. Scale 2.0 doubles the pixel dimensions over the SVG viewport.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"png scale must be a positive finite number, got %v", scale)
	}
	return convert(svg, "png", "-z", strconv.FormatFloat(scale, 'f', -1, 64))
}

func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(converter); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export needs librsvg (macOS: brew install librsvg, Linux: apt install librsvg2-bin)", format)
	}

	cmd := exec.Command(converter, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err,
			"converting to %s: %s", format, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
