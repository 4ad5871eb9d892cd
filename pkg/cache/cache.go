// Package cache provides a small Get/Set/Delete cache abstraction with a
// null (no-op), file-backed, and Redis-backed implementation, plus a Keyer
// that builds stable cache keys for the pipeline's cacheable stages (a
// run's Result, and a run's rendered SVG).
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores opaque byte blobs under string keys with an optional TTL.
// Implementations: NullCache, FileCache, rediscache.Cache.
type Cache interface {
	// Get returns the stored value and true, or (nil, false, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. ttl <= 0 means "does not expire".
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key, tolerating a non-existent key.
	Delete(ctx context.Context, key string) error
	// Close releases any underlying resources (connections, file handles).
	Close() error
}

// RunKeyOpts affects the key for a cached pipeline result: varying any
// field must vary the key, since it changes what Runner.Run would compute.
type RunKeyOpts struct {
	// Oracle distinguishes a run that also cross-checked the quadratic
	// reference builder from one that didn't.
	Oracle bool
}

// Keyer builds cache keys for the pipeline's two cacheable artifacts: a
// run's Result (keyed by family content hash) and a run's rendered SVG
// (keyed by run ID). The default implementation hashes the run key's
// inputs with Hash; ScopedKeyer wraps any Keyer with a namespace prefix.
type Keyer interface {
	RunKey(familyHash string, opts RunKeyOpts) string
	RenderKey(runID string) string
}

// defaultKeyer builds run keys as "run:hash(inputs)" and render keys as
// "render:<runID>" (the run ID is used as is, not hashed).
type defaultKeyer struct{}

// NewDefaultKeyer creates the default Keyer.
func NewDefaultKeyer() Keyer { return defaultKeyer{} }

func (defaultKeyer) RunKey(familyHash string, opts RunKeyOpts) string {
	return hashKey("run", familyHash, opts)
}

func (defaultKeyer) RenderKey(runID string) string {
	return fmt.Sprintf("render:%s", runID)
}
