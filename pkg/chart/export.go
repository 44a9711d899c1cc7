package chart

import (
	"github.com/crayonviz/crayon/pkg/render"
)

// PNG and PDF are derived outputs: the chart renders to SVG first and the
// bytes go through librsvg. Install rsvg-convert to use these formats.

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	opts  []Option
	scale float64
}

// WithPNGOptions forwards chart options to the SVG render pass.
func WithPNGOptions(opts ...Option) PNGOption {
	return func(r *pngRenderer) { r.opts = opts }
}

// WithScale sets the raster scale factor. The default 2.0 doubles the
// chart's pixel dimensions for crisp screens.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the chart.
func RenderPNG(c Chart, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(c, r.opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, r.scale)
}

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	opts []Option
}

// WithPDFOptions forwards chart options to the SVG render pass.
func WithPDFOptions(opts ...Option) PDFOption {
	return func(r *pdfRenderer) { r.opts = opts }
}

// RenderPDF converts the chart to a single-page PDF.
func RenderPDF(c Chart, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(c, r.opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
