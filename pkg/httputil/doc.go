// Package httputil provides HTTP utilities for generative API clients.
//
// # Overview
//
// This package provides infrastructure used by the model API clients:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/cardfold/)
// with configurable TTL. This dramatically speeds up repeated compositions
// and avoids paying twice for the same model call.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, err := cache.Get("prompt:birthday-dog", &data)  // Check cache
//	if !ok {
//	    data = fetchFromAPI()
//	    cache.Set("prompt:birthday-dog", data)  // Store for later
//	}
//
// Cache keys should be namespaced by pipeline stage to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a struggling endpoint:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return callModelAPI()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/cardfold/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `cardfold cache clear` or by deleting
// the cache directory.
package httputil
