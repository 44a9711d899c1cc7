package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crayonviz/crayon/pkg/cache"
	"github.com/crayonviz/crayon/pkg/chartio"
	"github.com/crayonviz/crayon/pkg/observability"
)

// Runner drives the load → render pipeline and owns its cache. It carries
// no per-run state, so one Runner can serve concurrent renders with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. Nil arguments fall back to a DefaultKeyer, a
// NullCache (caching disabled), and the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	spec, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Spec = spec
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Datasets = datasets(spec)

	// Content hash for cache keys and server responses. The overrides are
	// already folded into the spec, so the hash covers everything except
	// format and scale.
	if data, err := json.Marshal(spec); err == nil {
		result.SpecHash = cache.Hash(data)
	}

	r.Logger.Info("loaded spec",
		"kind", spec.Kind,
		"datasets", result.Stats.Datasets,
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, spec, result.SpecHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the spec and applies the option overrides. The returned spec is
// always a private copy; callers passing a pre-parsed Spec keep theirs
// untouched.
func (r *Runner) Load(ctx context.Context, opts Options) (*chartio.Spec, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	obs := observability.Pipeline()
	obs.OnLoadStart(ctx, opts.SpecPath)
	start := time.Now()

	var spec *chartio.Spec
	var err error
	if opts.Spec != nil {
		copied := *opts.Spec
		spec = &copied
		err = spec.Validate()
	} else {
		spec, err = chartio.ReadFile(opts.SpecPath)
	}
	if err != nil {
		obs.OnLoadComplete(ctx, opts.SpecPath, "", time.Since(start), err)
		return nil, err
	}

	if opts.Seed != 0 {
		spec.Seed = opts.Seed
	}
	if opts.Fill != "" {
		spec.Fill = opts.Fill
	}
	if spec.Seed == 0 {
		spec.Seed = DefaultSeed
	}

	obs.OnLoadComplete(ctx, opts.SpecPath, spec.Kind, time.Since(start), nil)
	return spec, nil
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, spec *chartio.Spec, specHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	obs := observability.Pipeline()
	cobs := observability.Cache()
	obs.OnRenderStart(ctx, spec.Kind, opts.Formats)
	start := time.Now()

	// A run only counts as cached when every requested format is present;
	// one miss falls through to a full render so all formats share a seed.
	if !opts.Refresh && specHash != "" {
		allCached := true
		artifacts := make(map[string][]byte)

		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format, spec.Seed))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				cobs.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				cobs.OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			obs.OnRenderComplete(ctx, spec.Kind, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
	}

	rendered, err := Render(spec, opts)
	if err != nil {
		obs.OnRenderComplete(ctx, spec.Kind, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	// Store every fresh artifact; Set failures are invisible to the caller
	// since the render already succeeded.
	if specHash != "" {
		for format, data := range rendered {
			cacheKey := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format, spec.Seed))
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
			cobs.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	obs.OnRenderComplete(ctx, spec.Kind, opts.Formats, time.Since(start), nil)
	return rendered, false, nil
}

// Render renders artifacts, discarding the cache hit flag.
func (r *Runner) Render(ctx context.Context, spec *chartio.Spec, specHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, spec, specHash, opts)
	return artifacts, err
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger defaults per-run options to the runner's logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// datasets counts the data groups a spec carries.
func datasets(spec *chartio.Spec) int {
	if len(spec.Series) > 0 {
		return len(spec.Series)
	}
	return len(spec.Slices)
}
