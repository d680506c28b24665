// Package cache provides byte-level caching for expensive pipeline
// stages: generative API responses, downloaded artwork, and rendered
// card artifacts.
//
// The [Cache] interface has three implementations:
//   - FileCache: on-disk entries for CLI runs
//   - RedisCache: shared entries for multi-instance serving
//   - NullCache: no-op, for tests or disabled caching
//
// Key construction goes through a [Keyer] so every pipeline stage hashes
// its inputs the same way; [ScopedKeyer] adds a prefix for per-user
// isolation in the serving path.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Prompt completions and artwork are
// expensive model calls and cache long; rendered artifacts are cheap to
// recompute from a cached plan.
const (
	TTLPrompt   = 7 * 24 * time.Hour
	TTLArtwork  = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports a cache hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any backend resources.
	Close() error
}

// PromptKeyOpts are the inputs that change a composed prompt.
type PromptKeyOpts struct {
	Occasion string
	Style    string
}

// ArtworkKeyOpts are the rendering parameters of a generated artwork.
type ArtworkKeyOpts struct {
	Model       string
	AspectRatio string
}

// ArtifactKeyOpts are the export parameters of a rendered card.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	DPI    float64
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// HTTPKey generates a key for a raw HTTP response.
	HTTPKey(namespace, key string) string
	// PromptKey generates a key for a text-model prompt completion.
	PromptKey(description string, opts PromptKeyOpts) string
	// ArtworkKey generates a key for generated artwork bytes.
	ArtworkKey(promptHash string, opts ArtworkKeyOpts) string
	// ArtifactKey generates a key for a rendered card artifact.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes option structs into stable, collision-resistant keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// PromptKey generates a key for a text-model prompt completion.
func (k *DefaultKeyer) PromptKey(description string, opts PromptKeyOpts) string {
	return hashKey("prompt", description, opts)
}

// ArtworkKey generates a key for generated artwork bytes.
func (k *DefaultKeyer) ArtworkKey(promptHash string, opts ArtworkKeyOpts) string {
	return hashKey("artwork", promptHash, opts)
}

// ArtifactKey generates a key for a rendered card artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
