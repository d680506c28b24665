package cache

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, found, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("null cache should never report a hit")
	}
	if data != nil {
		t.Errorf("expected nil data, got %q", data)
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestFileCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	want := []byte("rendered card bytes")
	if err := c.Set(ctx, "artifact:abc", want, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFileCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	_, found, err := c.Get(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected cache miss for unknown key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "short-lived", []byte("data"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, found, err := c.Get(ctx, "short-lived")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected expired entry to miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := c.Get(ctx, "key"); found {
		t.Error("expected miss after delete")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func TestFileCacheStageLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	keys := map[string]string{
		"prompt:abc":   "prompt",
		"artwork:def":  "artwork",
		"artifact:ghi": "artifact",
		"http:ns:xyz":  "http",
		"no prefix":    "misc", // not a stage-prefixed key
	}
	for key := range keys {
		if err := c.Set(ctx, key, []byte("data"), 0); err != nil {
			t.Fatalf("Set %q failed: %v", key, err)
		}
	}

	for key, stage := range keys {
		if _, err := os.Stat(filepath.Join(dir, stage)); err != nil {
			t.Errorf("key %q should land under %s/: %v", key, stage, err)
		}
		if _, found, _ := c.Get(ctx, key); !found {
			t.Errorf("expected hit for %q", key)
		}
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	h3 := Hash([]byte("world"))

	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
	if h1 != h2 {
		t.Error("hash should be deterministic")
	}
	if h1 == h3 {
		t.Error("distinct inputs should hash differently")
	}
}

func TestDefaultKeyerHTTPKey(t *testing.T) {
	k := NewDefaultKeyer()
	key := k.HTTPKey("openai", "POST:/v1/images")
	if key != "http:openai:POST:/v1/images" {
		t.Errorf("unexpected key: %q", key)
	}
}

func TestDefaultKeyerPromptKey(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.PromptKey("a dog in a party hat", PromptKeyOpts{Occasion: "birthday", Style: "handdrawn"})
	k2 := k.PromptKey("a dog in a party hat", PromptKeyOpts{Occasion: "birthday", Style: "handdrawn"})
	k3 := k.PromptKey("a dog in a party hat", PromptKeyOpts{Occasion: "thankyou", Style: "handdrawn"})

	if !strings.HasPrefix(k1, "prompt:") {
		t.Errorf("expected prompt: prefix, got %q", k1)
	}
	if k1 != k2 {
		t.Error("same inputs should produce the same key")
	}
	if k1 == k3 {
		t.Error("different occasions should produce different keys")
	}
}

func TestDefaultKeyerArtworkKey(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.ArtworkKey("feedbeef", ArtworkKeyOpts{Model: "gpt-image-1", AspectRatio: "1:1"})
	k2 := k.ArtworkKey("feedbeef", ArtworkKeyOpts{Model: "gpt-image-1", AspectRatio: "2:3"})

	if !strings.HasPrefix(k1, "artwork:") {
		t.Errorf("expected artwork: prefix, got %q", k1)
	}
	if k1 == k2 {
		t.Error("different aspect ratios should produce different keys")
	}
}

func TestDefaultKeyerArtifactKey(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.ArtifactKey("cafe01", ArtifactKeyOpts{Format: "svg", Style: "handdrawn", DPI: 96})
	k2 := k.ArtifactKey("cafe01", ArtifactKeyOpts{Format: "pdf", Style: "handdrawn", DPI: 96})
	k3 := k.ArtifactKey("cafe01", ArtifactKeyOpts{Format: "svg", Style: "handdrawn", DPI: 300})

	if !strings.HasPrefix(k1, "artifact:") {
		t.Errorf("expected artifact: prefix, got %q", k1)
	}
	if k1 == k2 || k1 == k3 {
		t.Error("format and DPI should both affect the key")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "user:abc:")

	if got := scoped.HTTPKey("openai", "k"); got != "user:abc:"+base.HTTPKey("openai", "k") {
		t.Errorf("unexpected scoped key: %q", got)
	}

	opts := PromptKeyOpts{Occasion: "birthday", Style: "simple"}
	if got := scoped.PromptKey("desc", opts); !strings.HasPrefix(got, "user:abc:prompt:") {
		t.Errorf("unexpected scoped prompt key: %q", got)
	}
	if got := scoped.ArtworkKey("h", ArtworkKeyOpts{Model: "m"}); !strings.HasPrefix(got, "user:abc:artwork:") {
		t.Errorf("unexpected scoped artwork key: %q", got)
	}
	if got := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "png"}); !strings.HasPrefix(got, "user:abc:artifact:") {
		t.Errorf("unexpected scoped artifact key: %q", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "p:")
	if got := scoped.HTTPKey("ns", "k"); got != "p:http:ns:k" {
		t.Errorf("expected default inner keyer, got %q", got)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("wrapping nil should return nil")
	}

	base := errors.New("boom")
	wrapped := Retryable(base)
	if !IsRetryable(wrapped) {
		t.Error("wrapped error should be retryable")
	}
	if IsRetryable(base) {
		t.Error("bare error should not be retryable")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the original")
	}
}

func TestRetryWithBackoffNonRetryable(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return errors.New("permanent")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("non-retryable error should not retry, got %d calls", calls)
	}
}

func TestRetryWithBackoffEventualSuccess(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		if calls < 2 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errors.New("transient"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
