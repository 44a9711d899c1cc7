// Package observability lets embedders instrument crayon without crayon
// depending on any metrics or tracing framework.
//
// Each event category has a hook interface, a no-op default, and a global
// registration point. main registers implementations at startup (keeping
// library packages free of import cycles and backend choices); the pipeline,
// cache, and preview server emit events through the registered hooks:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... load the spec ...
//	observability.Pipeline().OnLoadComplete(ctx, path, kind, duration, err)
//
// Any backend works behind these interfaces: OpenTelemetry, Prometheus, or
// a plain log counter.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the chart render pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path, kind string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, kind string, formats []string)
	OnRenderComplete(ctx context.Context, kind string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the preview server.
type ServerHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                  {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, string, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                      {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// holder guards one registered hook set behind a read-write lock. Reads
// happen on every pipeline stage, writes once at startup.
type holder[T any] struct {
	mu sync.RWMutex
	v  T
}

func (h *holder[T]) store(v T) {
	h.mu.Lock()
	h.v = v
	h.mu.Unlock()
}

func (h *holder[T]) load() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.v
}

var (
	pipelineHooks = &holder[PipelineHooks]{v: NoopPipelineHooks{}}
	cacheHooks    = &holder[CacheHooks]{v: NoopCacheHooks{}}
	serverHooks   = &holder[ServerHooks]{v: NoopServerHooks{}}
)

// SetPipelineHooks registers custom pipeline hooks. Call it once at startup
// before any pipeline operations; a nil value is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineHooks.store(h)
	}
}

// SetCacheHooks registers custom cache hooks; a nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheHooks.store(h)
	}
}

// SetServerHooks registers custom server hooks; a nil value is ignored.
func SetServerHooks(h ServerHooks) {
	if h != nil {
		serverHooks.store(h)
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineHooks.load() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheHooks.load() }

// Server returns the registered server hooks.
func Server() ServerHooks { return serverHooks.load() }

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	pipelineHooks.store(NoopPipelineHooks{})
	cacheHooks.store(NoopCacheHooks{})
	serverHooks.store(NoopServerHooks{})
}
