package cli

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/crayonviz/crayon/pkg/cache"
	"github.com/crayonviz/crayon/pkg/errors"
	"github.com/crayonviz/crayon/pkg/observability"
	"github.com/crayonviz/crayon/pkg/pipeline"
)

// serveCommand creates the serve command for the chart preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview a directory of chart specs in the browser",
		Long: `Serve a gallery of rendered charts over HTTP.

Every chart spec (.toml, .json, .yaml, .yml) in the directory shows up on
the gallery index; each chart is rendered on demand at /charts/{name}.svg
and picks up spec edits on reload.

Renders are cached. With --redis the cache lives in Redis so several
instances can share it; otherwise the local file cache is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runServe(cmd.Context(), dir, addr, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8383", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared render cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the preview server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, dir, addr, redisURL string, noCache bool) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("spec directory %s: %w", dir, err)
	}

	store, err := c.newServeCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}

	// Server renders get their own key namespace so gallery artifacts and
	// CLI renders pointed at the same cache never collide.
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:")
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	gallery := newGallery(runner, dir)
	srv := &http.Server{
		Addr:              addr,
		Handler:           gallery.routes(c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			printWarning("Shutdown: %v", err)
		}
	}()

	printInfo("Preview server listening on %s", StyleHighlight.Render(addr))
	printDetail("serving specs from %s", dir)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	printSuccess("Server stopped")
	return nil
}

// newServeCache picks the cache backend for the preview server.
func (c *CLI) newServeCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if redisURL != "" {
		store, err := cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	}
	return newCache(noCache)
}

// =============================================================================
// Gallery Handler
// =============================================================================

// specExts are the spec file extensions the gallery picks up.
var specExts = []string{".toml", ".json", ".yaml", ".yml"}

// gallery serves rendered charts for every spec file in a directory.
type gallery struct {
	runner *pipeline.Runner
	dir    string
}

func newGallery(runner *pipeline.Runner, dir string) *gallery {
	return &gallery{runner: runner, dir: dir}
}

// routes builds the chi router. The logger rides the request context so
// handlers can use loggerFromContext.
func (g *gallery) routes(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestHooks(logger))
	r.Get("/", g.handleIndex)
	r.Get("/charts/{name}.svg", g.handleChart)
	return r
}

// handleIndex renders the gallery page listing every spec in the directory.
func (g *gallery) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := g.specNames()
	if err != nil {
		http.Error(w, "list specs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, struct{ Charts []string }{names}); err != nil {
		loggerFromContext(r.Context()).Error("render index", "err", err)
	}
}

// handleChart renders one spec to SVG. The render cache keeps reloads cheap:
// an unchanged spec hashes to the same key and is served from cache.
func (g *gallery) handleChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || strings.ContainsAny(name, "./\\") {
		http.NotFound(w, r)
		return
	}
	path, ok := g.specPath(name)
	if !ok {
		err := errors.New(errors.ErrCodeNotFound, "no chart spec named %q", name)
		loggerFromContext(r.Context()).Warn("unknown chart", "name", name)
		http.Error(w, errors.UserMessage(err), http.StatusNotFound)
		return
	}

	logger := loggerFromContext(r.Context())
	prog := newProgress(logger)

	result, err := g.runner.Execute(r.Context(), pipeline.Options{
		SpecPath: path,
		Formats:  []string{pipeline.FormatSVG},
		Logger:   logger,
	})
	if err != nil {
		logger.Error("render failed", "spec", path, "err", err)
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}
	prog.done("Served " + name)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

// specNames lists the spec files in the gallery directory, sorted, without
// extensions.
func (g *gallery) specNames() ([]string, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(specExts, strings.ToLower(filepath.Ext(e.Name()))) {
			names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
	}
	sort.Strings(names)
	return names, nil
}

// specPath finds the spec file for a chart name, trying each known
// extension in order.
func (g *gallery) specPath(name string) (string, bool) {
	for _, ext := range specExts {
		path := filepath.Join(g.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>crayon gallery</title>
<style>
  body { font-family: "Comic Sans MS", "Segoe Print", "Bradley Hand", cursive; background: #fdfdf6; margin: 2rem; }
  h1 { color: #333; }
  .grid { display: flex; flex-wrap: wrap; gap: 1.5rem; }
  figure { margin: 0; padding: 1rem; background: #fff; border: 2px solid #333; border-radius: 8px; }
  figcaption { text-align: center; margin-top: .5rem; color: #555; }
  img { display: block; max-width: 480px; }
  .empty { color: #888; }
</style>
</head>
<body>
<h1>crayon gallery</h1>
{{if .Charts}}
<div class="grid">
{{range .Charts}}
  <figure>
    <img src="/charts/{{.}}.svg" alt="{{.}}">
    <figcaption>{{.}}</figcaption>
  </figure>
{{end}}
</div>
{{else}}
<p class="empty">No chart specs found. Drop a .toml, .json, or .yaml spec in the directory and reload.</p>
{{end}}
</body>
</html>
`))

// =============================================================================
// Middleware
// =============================================================================

// requestHooks attaches the logger to the request context and reports every
// request to the registered server hooks.
func requestHooks(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hooks := observability.Server()
			hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(withLogger(r.Context(), logger)))

			duration := time.Since(start)
			hooks.OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, duration)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", duration)
		})
	}
}

// statusRecorder captures the response status for hooks and logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
