package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// countingPipelineHooks tallies completed stages; everything else falls
// through to the embedded no-op.
type countingPipelineHooks struct {
	NoopPipelineHooks
	mu      sync.Mutex
	loads   int
	renders int
}

func (h *countingPipelineHooks) OnLoadComplete(_ context.Context, _, _ string, _ time.Duration, _ error) {
	h.mu.Lock()
	h.loads++
	h.mu.Unlock()
}

func (h *countingPipelineHooks) OnRenderComplete(_ context.Context, _ string, _ []string, _ time.Duration, _ error) {
	h.mu.Lock()
	h.renders++
	h.mu.Unlock()
}

// recordingCacheHooks keeps an ordered trace of cache events.
type recordingCacheHooks struct {
	NoopCacheHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingCacheHooks) record(ev string) {
	h.mu.Lock()
	h.events = append(h.events, ev)
	h.mu.Unlock()
}

func (h *recordingCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.record("hit:" + keyType)
}

func (h *recordingCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.record("miss:" + keyType)
}

func (h *recordingCacheHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.record("set:" + keyType)
}

type stubServerHooks struct{ NoopServerHooks }

func TestDefaultsAreNoops(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Errorf("Server() = %T, want NoopServerHooks", Server())
	}
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	defer Reset()
	ctx := context.Background()

	pipe := &countingPipelineHooks{}
	SetPipelineHooks(pipe)
	Pipeline().OnLoadStart(ctx, "visits.toml")
	Pipeline().OnLoadComplete(ctx, "visits.toml", "line", time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, "line", []string{"svg", "png"}, time.Millisecond, nil)
	if pipe.loads != 1 || pipe.renders != 1 {
		t.Errorf("loads = %d, renders = %d, want 1 and 1", pipe.loads, pipe.renders)
	}

	cache := &recordingCacheHooks{}
	SetCacheHooks(cache)
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
	Cache().OnCacheHit(ctx, "artifact")
	want := []string{"miss:artifact", "set:artifact", "hit:artifact"}
	if len(cache.events) != len(want) {
		t.Fatalf("events = %v, want %v", cache.events, want)
	}
	for i := range want {
		if cache.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, cache.events[i], want[i])
		}
	}
}

func TestSetAndReset(t *testing.T) {
	defer Reset()

	pipe := &countingPipelineHooks{}
	cache := &recordingCacheHooks{}
	srv := &stubServerHooks{}

	SetPipelineHooks(pipe)
	SetCacheHooks(cache)
	SetServerHooks(srv)
	if Pipeline() != pipe || Cache() != cache || Server() != srv {
		t.Fatal("getters should hand back exactly what was registered")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore the pipeline no-op")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore the cache no-op")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset should restore the server no-op")
	}
}

func TestNilRegistrationIgnored(t *testing.T) {
	defer Reset()
	Reset()

	pipe := &countingPipelineHooks{}
	SetPipelineHooks(pipe)
	SetPipelineHooks(nil)
	if Pipeline() != pipe {
		t.Error("a nil registration should leave the previous hooks in place")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("a nil cache registration should leave the default in place")
	}
	SetServerHooks(nil)
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("a nil server registration should leave the default in place")
	}
}

func TestNoopHooksAreSafe(t *testing.T) {
	Reset()
	ctx := context.Background()

	Pipeline().OnLoadStart(ctx, "visits.toml")
	Pipeline().OnLoadComplete(ctx, "visits.toml", "line", time.Second, nil)
	Pipeline().OnRenderStart(ctx, "line", []string{"svg"})
	Pipeline().OnRenderComplete(ctx, "line", []string{"svg"}, time.Second, nil)

	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)

	Server().OnRequest(ctx, "GET", "/charts/visits.svg")
	Server().OnResponse(ctx, "GET", "/charts/visits.svg", 200, 3*time.Millisecond)
}

func TestRegistryIsSafeForConcurrentUse(t *testing.T) {
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetPipelineHooks(&countingPipelineHooks{})
				Pipeline().OnLoadStart(context.Background(), "concurrent.toml")
			}
		}()
	}
	wg.Wait()
}
