package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation: the CLI
// and HTTP API share one Redis instance but shouldn't collide on keys.
//
// Example usage:
//
//	cliKeyer := NewScopedKeyer(NewDefaultKeyer(), "cli:")
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RunKey generates a prefixed key for a cached pipeline run.
func (k *ScopedKeyer) RunKey(familyHash string, opts RunKeyOpts) string {
	return k.prefix + k.inner.RunKey(familyHash, opts)
}

// RenderKey generates a prefixed key for a cached rendered SVG.
func (k *ScopedKeyer) RenderKey(runID string) string {
	return k.prefix + k.inner.RenderKey(runID)
}
