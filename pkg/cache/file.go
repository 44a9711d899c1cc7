package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts under a directory on disk. It is the
// default backend for CLI renders: re-running crayon on an unchanged spec
// reads back the finished bytes instead of re-rendering.
//
// Entries are sharded into subdirectories by the first hash byte so a
// long-lived cache does not pile thousands of files into one directory.
type FileCache struct {
	root string
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{root: dir}, nil
}

// fileEntry is the on-disk envelope around an artifact. Expiry is Unix
// seconds; zero means the entry never expires.
type fileEntry struct {
	Artifact []byte `json:"artifact"`
	Expiry   int64  `json:"expiry,omitempty"`
}

// Get reads the entry for key. Corrupt and expired entries are evicted and
// reported as misses, so a damaged cache heals itself on the next render.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if e.Expiry != 0 && time.Now().Unix() > e.Expiry {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Artifact, true, nil
}

// Set writes the entry for key. A negative ttl stores it already expired.
// The bytes go through a temp file and a rename so concurrent renders never
// observe a half-written artifact.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Artifact: data}
	if ttl != 0 {
		e.Expiry = time.Now().Add(ttl).Unix()
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".crayon-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the entry for key. A missing entry is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; the cache holds no handles open between calls.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to <root>/<first two hash chars>/<rest>.json.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.root, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
