// Package cache provides pluggable caching for rendered chart artifacts.
//
// This package defines the cache abstraction used by the render pipeline,
// with implementations for different deployments:
//   - FileCache: directory-backed storage for CLI usage
//   - RedisCache: Redis-backed storage for the preview server
//   - NullCache: no-op storage when caching is disabled
//
// # Keys
//
// Artifacts are content-addressed: the cache key folds in a hash of the
// chart spec together with the output format, the effective seed, and the
// raster scale. Identical inputs always map to the same key, so entries
// never go stale; the TTL only bounds storage growth.
//
// Use a [Keyer] to build keys and a [ScopedKeyer] to namespace them when
// several tenants share one backend:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(specHash, cache.ArtifactKeyOpts{
//	    Format: "svg",
//	    Seed:   42,
//	})
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Keys are
// content-addressed, so expiry exists only to bound disk and memory use.
const TTLArtifact = 30 * 24 * time.Hour

// ErrCacheMiss can be returned by wrappers that turn the (data, hit, err)
// triple into a single error value.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the interface for artifact storage backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Hash returns the hex-encoded SHA-256 of data. Spec bytes and cache keys
// are content-addressed with it: always 64 characters, never truncated, so
// distinct specs cannot collide.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes
// and therefore belong in its cache key.
type ArtifactKeyOpts struct {
	Format string  // svg, png, pdf, json
	Seed   uint64  // effective wobble seed
	Scale  float64 // raster scale (png only)
}

// Keyer builds cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey derives a key from a spec hash and render settings.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys by hashing a canonical rendering of the spec
// hash and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>". Fields are NUL-delimited before
// hashing so adjacent values cannot run together and collide.
func (k *DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	canon := specHash + "\x00" + opts.Format + "\x00" +
		strconv.FormatUint(opts.Seed, 10) + "\x00" +
		strconv.FormatFloat(opts.Scale, 'g', -1, 64)
	return "artifact:" + Hash([]byte(canon))
}

// ScopedKeyer prefixes every key from an inner Keyer so several contexts
// can share one backend without colliding. The preview server uses this to
// keep its gallery renders apart from CLI renders pointed at the same
// Redis:
//
//	serveKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner so all its keys carry prefix. A nil inner
// defaults to the standard keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey delegates to the inner keyer and prepends the prefix.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}

// NullCache discards writes and misses every read. It backs --no-cache and
// spares the pipeline from nil checks when caching is off.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache {
	return &NullCache{}
}

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
