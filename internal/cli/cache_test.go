package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheClearCommandRemovesFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	entriesDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(entriesDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(entriesDir, "entry"), []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c := &CLI{}
	cmd := c.cacheClearCommand()
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, err := os.Stat(filepath.Join(entriesDir, "entry")); !os.IsNotExist(err) {
		t.Fatalf("expected cache entry to be removed, stat err = %v", err)
	}
}

func TestCachePathCommandRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	c := &CLI{}
	cmd := c.cachePathCommand()
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("cache path: %v", err)
	}
}
