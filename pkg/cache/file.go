package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache implements an on-disk cache for CLI runs. Entries are JSON
// files with expiry metadata, grouped by pipeline stage so prompts,
// artwork, and rendered artifacts can be inspected or cleared
// independently.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// cacheEntry wraps cached data with metadata.
type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Invalid cache entry - treat as miss
		_ = os.Remove(path)
		return nil, false, nil
	}

	// Check expiration
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := cacheEntry{
		Data: data,
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, entryData, 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path. Keyer-built keys carry a
// stage prefix ("prompt:", "artwork:", "artifact:", "http:") which
// becomes a top-level subdirectory; below it the hashed remainder is
// split again to avoid too many files in one dir.
func (c *FileCache) path(key string) string {
	stage, rest, ok := strings.Cut(key, ":")
	if !ok || !validStage(stage) {
		stage, rest = "misc", key
	}
	hash := Hash([]byte(rest))
	return filepath.Join(c.dir, stage, hash[:2], hash[2:]+".json")
}

// validStage reports whether a key prefix is a plain lowercase word and
// therefore safe to use as a directory name.
func validStage(stage string) bool {
	if stage == "" {
		return false
	}
	for _, r := range stage {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
