package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/crayonviz/crayon/pkg/buildinfo"
	"github.com/crayonviz/crayon/pkg/cache"
	"github.com/crayonviz/crayon/pkg/pipeline"
)

// appName names the binary; cache paths derive from it.
const appName = "crayon"

// Log levels are re-exported so main can set verbosity without importing
// charmbracelet/log itself.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the state shared by every subcommand: today just the logger.
type CLI struct {
	Logger *log.Logger
}

// New builds a CLI writing logs to w at the given verbosity.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel adjusts verbosity after flag parsing.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand assembles the crayon command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "crayon",
		Short:        "Crayon renders charts that look drawn by hand",
		Long:         `Crayon is a CLI tool for turning chart specs (TOML, JSON, or YAML) into hand-drawn looking SVG, PNG, and PDF charts with jittered strokes and scribbled fills.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Pipeline Wiring
// =============================================================================

// newRunner wires a cache into a pipeline runner for one command invocation.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		// No resolvable cache dir just means rendering without one.
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the per-user cache directory, ~/.cache/crayon on Linux.
// XDG_CACHE_HOME is honored through os.UserCacheDir.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseFormats splits a comma-separated format list, folding case and
// trimming space around each entry.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
// This is used when generating multiple files (e.g., traffic.svg, traffic.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(strings.ToLower(ext), ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
