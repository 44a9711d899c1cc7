// Package cli implements the crayon command-line interface.
//
// Subcommands cover the whole chart workflow: render turns a spec file into
// SVG, PNG, PDF, or JSON artifacts, demo scaffolds a built-in example spec,
// serve previews a directory of specs in the browser, palette previews color
// tone adjustments, and cache manages the render cache. The command tree is
// built with cobra; main wires it up via New and RootCommand.
//
// Logging goes through charmbracelet/log. Every command accepts --verbose
// (-v), and request-scoped loggers travel via context so the pipeline and
// the preview server report progress through the same sink.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger every command shares: timestamped, writing
// to w, filtering below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// progress stamps the start of an operation so its completion log can carry
// the elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time as a structured field, e.g.
// "Rendered 3 formats took=1.234s".
func (p *progress) done(msg string) {
	p.logger.Info(msg, "took", time.Since(p.start).Round(time.Millisecond))
}

// loggerCtxKey keys the request logger in a context. An unexported struct
// type cannot collide with keys from other packages.
type loggerCtxKey struct{}

// withLogger attaches l to ctx for retrieval by loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default()
// so handlers always have somewhere to write.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
