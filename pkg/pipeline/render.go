package pipeline

import (
	"fmt"

	"github.com/crayonviz/crayon/pkg/chart"
	"github.com/crayonviz/crayon/pkg/chartio"
)

// Render generates output artifacts in the requested formats.
//
// Every format re-renders from the spec. With a nonzero seed the geometry is
// identical across formats; [Runner.Load] pins the seed, so pipeline runs
// always produce matching SVG, PNG, PDF, and JSON.
func Render(spec *chartio.Spec, opts Options) (map[string][]byte, error) {
	c, err := spec.Chart()
	if err != nil {
		return nil, err
	}

	chartOpts := []chart.Option{chart.WithConfig(spec.Config())}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = chart.RenderSVG(c, chartOpts...)
		case FormatPNG:
			data, err = chart.RenderPNG(c, chart.WithPNGOptions(chartOpts...), chart.WithScale(opts.Scale))
		case FormatPDF:
			data, err = chart.RenderPDF(c, chart.WithPDFOptions(chartOpts...))
		case FormatJSON:
			data, err = chart.RenderJSON(c, chartOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
