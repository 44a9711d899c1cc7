// Package pipeline provides the core render pipeline for crayon.
//
// The CLI and the preview server both drive renders through this package,
// so a spec produces the same artifact no matter which entry point asked
// for it.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Read a chart spec (TOML, JSON, or YAML) and apply overrides
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Rendered artifacts are content-addressed and cached, so re-rendering an
// unchanged spec skips the expensive raster conversions.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SpecPath: "visits.toml",
//	    Formats:  []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	spec, err := runner.Load(ctx, opts)
//
//	// Render with an already loaded spec
//	artifacts, err := runner.Render(ctx, spec, specHash, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crayonviz/crayon/pkg/cache"
	"github.com/crayonviz/crayon/pkg/chartio"
	"github.com/crayonviz/crayon/pkg/errors"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultSeed is the wobble seed used when neither the spec nor the
	// caller picks one. A pinned default keeps every format of a run
	// geometrically identical, which is what makes artifact caching work.
	DefaultSeed = uint64(42)

	// DefaultScale is the PNG export scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run. The JSON tags exist so the preview
// server can accept the same options over HTTP.
type Options struct {
	// Load options. A pre-parsed Spec takes precedence over SpecPath.
	SpecPath string        `json:"spec_path,omitempty"`
	Spec     *chartio.Spec `json:"spec,omitempty"`

	// Overrides applied on top of the loaded spec.
	Seed uint64 `json:"seed,omitempty"`
	Fill string `json:"fill,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG raster scale
	Refresh bool     `json:"refresh,omitempty"`

	// Logger is per-run; it never travels over the wire.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the loaded chart spec with overrides applied.
	Spec *chartio.Spec

	// SpecHash is the content hash of the effective spec.
	SpecHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats reports how long each stage took and what was rendered.
type Stats struct {
	Datasets   int // series for line charts, slices for pie charts
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo reports cache behavior for the run.
type CacheInfo struct {
	RenderHit bool // every requested artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Repeat calls are no-ops.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading a spec.
func (o *Options) ValidateForLoad() error {
	if o.Spec == nil && o.SpecPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "spec or spec_path is required")
	}
	if o.SpecPath != "" {
		if err := errors.ValidateSpecPath(o.SpecPath); err != nil {
			return err
		}
	}
	return errors.ValidateFill(o.Fill)
}

// ValidateForRender validates and sets defaults for rendering. Format names
// are folded to lower case; the render stage matches them exactly.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	} else {
		formats := make([]string, len(o.Formats))
		for i, f := range o.Formats {
			formats[i] = strings.ToLower(f)
		}
		o.Formats = formats
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one artifact. The seed is
// passed in because the effective seed is only known once the spec has been
// loaded and overrides are applied.
func (o *Options) ArtifactKeyOpts(format string, seed uint64) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Seed:   seed,
	}
	// Scale only changes PNG bytes; keeping it out of the other keys lets
	// them survive a --scale change.
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
