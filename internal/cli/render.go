package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crayonviz/crayon/pkg/pipeline"
)

// renderCommand creates the render command for generating chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [spec]",
		Short: "Render a chart spec to SVG, PNG, PDF, or JSON",
		Long: `Render a chart spec to one or more output formats.

The spec file describes the chart (kind, data, styling) in TOML, JSON, or
YAML; the format is chosen by file extension. SVG output is built in; PNG
and PDF shell out to rsvg-convert.

Rendering is deterministic: the spec's seed (default 42) drives all the
hand-drawn jitter, so the same spec always produces the same chart. Results
are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			opts.SpecPath = args[0]
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "override the spec's random seed")
	cmd.Flags().StringVar(&opts.Fill, "fill", "", "override the fill style: scribble, oilpaint, none")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG raster scale factor (default 2.0)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender executes the pipeline and writes the rendered artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.SpecPath))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.SpecPath,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		datasets:  result.Stats.Datasets,
	})
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	specPath  string // optional spec file written alongside (demo)
	cacheHit  bool
	datasets  int
}

// writeArtifacts writes one file per rendered format and prints a summary.
// With a single format the output flag names the file directly; with several
// formats it acts as a base path and the format extension is appended.
func writeArtifacts(p artifactWriteParams) error {
	single := len(p.formats) == 1

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s artifact produced", format)
		}

		path := p.output
		if !single || path == "" {
			path = basePath(p.output, p.input) + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	if p.specPath != "" {
		printFile(p.specPath)
	}
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.datasets, len(p.formats), p.cacheHit)
	return nil
}
