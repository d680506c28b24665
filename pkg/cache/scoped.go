package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful in the serving path where different users or contexts
// need separate cache namespaces.
//
// Example usage:
//
//	// User-specific keys for private cards
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared resources
//	globalKeyer := NewDefaultKeyer()
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

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// PromptKey generates a prefixed key for prompt completion caching.
func (k *ScopedKeyer) PromptKey(description string, opts PromptKeyOpts) string {
	return k.prefix + k.inner.PromptKey(description, opts)
}

// ArtworkKey generates a prefixed key for artwork caching.
func (k *ScopedKeyer) ArtworkKey(promptHash string, opts ArtworkKeyOpts) string {
	return k.prefix + k.inner.ArtworkKey(promptHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
