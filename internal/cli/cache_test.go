package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearCache(t *testing.T) {
	dir := t.TempDir()

	// Mimic the file cache's sharded layout.
	shard := filepath.Join(dir, "aa")
	if err := os.MkdirAll(shard, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"one.json", "two.json"} {
		if err := os.WriteFile(filepath.Join(shard, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count, err := clearCache(dir)
	if err != nil {
		t.Fatalf("clearCache: %v", err)
	}
	if count != 2 {
		t.Errorf("cleared %d entries, want 2", count)
	}

	if _, err := os.Stat(shard); !os.IsNotExist(err) {
		t.Error("empty shard directory should be removed")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory itself should survive: %v", err)
	}
}

func TestClearCacheEmptyDir(t *testing.T) {
	count, err := clearCache(t.TempDir())
	if err != nil {
		t.Fatalf("clearCache: %v", err)
	}
	if count != 0 {
		t.Errorf("cleared %d entries in an empty dir, want 0", count)
	}
}

func TestCacheClearCommandEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "xdg"))

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})

	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear on a missing dir should succeed: %v", err)
	}
}
