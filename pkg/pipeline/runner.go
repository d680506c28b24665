package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardfold/pkg/cache"
	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/card/sink"
	"github.com/matzehuels/cardfold/pkg/errors"
	"github.com/matzehuels/cardfold/pkg/gen"
	"github.com/matzehuels/cardfold/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, client, and logger. It
// doesn't store pipeline results, so multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Gen    *gen.Client
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache, keyer, and model
// client. If keyer is nil, a DefaultKeyer is used. If cache is nil, a
// NullCache is used (caching disabled). The client may be nil for
// offline rendering; compose calls then fail with INVALID_CONFIG.
func NewRunner(c cache.Cache, keyer cache.Keyer, client *gen.Client, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Gen:    client,
		Logger: logger,
	}
}

// Execute runs the complete compose → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Compose
	composeStart := time.Now()
	observability.Pipeline().OnComposeStart(ctx, opts.Occasion, opts.ArtStyle)
	artwork, prompt, composeHit, err := r.ComposeArtwork(ctx, opts)
	if err != nil {
		observability.Pipeline().OnComposeComplete(ctx, opts.Occasion, opts.ArtStyle, time.Since(composeStart), err)
		return nil, err
	}
	result.Artwork = artwork
	result.ArtworkPrompt = prompt
	result.CacheInfo.ComposeHit = composeHit

	result.Message, err = r.ComposeMessage(ctx, opts)
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnComposeComplete(ctx, opts.Occasion, opts.ArtStyle, time.Since(composeStart), nil)
	r.Logger.Info("composed card content",
		"image_px", artwork.Spec,
		"cached", composeHit,
		"duration", time.Since(composeStart))

	// Stage 2: Layout
	layoutStart := time.Now()
	plan, err := r.Layout(artwork.Spec, result.Message, opts)
	observability.Pipeline().OnLayoutComplete(ctx, opts.PageFormat, time.Since(layoutStart), err)
	if err != nil {
		return nil, err
	}
	result.Plan = plan

	if data, err := sink.RenderJSON(plan); err == nil {
		result.PlanHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"page", opts.PageFormat,
		"fold_x", plan.Outside.FoldX,
		"duration", time.Since(layoutStart))

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, plan, artwork, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", time.Since(renderStart))

	return result, nil
}

// ComposeArtwork resolves the front artwork, either from the options, the
// cache, or a fresh image generation call. Returns the artwork, the
// prompt used (empty for pre-supplied artwork), and cache hit info.
func (r *Runner) ComposeArtwork(ctx context.Context, opts Options) (*gen.Artwork, string, bool, error) {
	if err := opts.ValidateForCompose(); err != nil {
		return nil, "", false, err
	}
	if opts.Artwork != nil {
		return opts.Artwork, "", false, nil
	}
	if r.Gen == nil {
		return nil, "", false, errors.New(errors.ErrCodeInvalidConfig,
			"no model client configured; supply artwork or an API key")
	}

	prompt, err := gen.BuildArtworkPrompt(gen.Occasion(opts.Occasion), gen.ArtStyle(opts.ArtStyle), opts.Description)
	if err != nil {
		return nil, "", false, err
	}

	cacheKey := r.Keyer.ArtworkKey(cache.Hash([]byte(prompt)), cache.ArtworkKeyOpts{
		Model: r.Gen.ImageModel(),
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if artwork, err := gen.DecodeArtwork(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "artwork")
				return artwork, prompt, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artwork")
	}

	img, err := r.Gen.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, "", false, err
	}
	artwork, err := gen.FetchArtwork(ctx, img)
	if err != nil {
		return nil, "", false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, artwork.Data, cache.TTLArtwork)
	observability.Cache().OnCacheSet(ctx, "artwork", len(artwork.Data))
	return artwork, prompt, false, nil
}

// ComposeMessage resolves the inside message. A given message is used
// as-is; with GenerateMessage set, the text model writes one. An empty
// result is valid and yields writing guides at layout time.
func (r *Runner) ComposeMessage(ctx context.Context, opts Options) (string, error) {
	if opts.Message != "" || !opts.GenerateMessage {
		return opts.Message, nil
	}
	if r.Gen == nil {
		return "", errors.New(errors.ErrCodeInvalidConfig,
			"no model client configured; supply --message or an API key")
	}

	prompt, err := gen.BuildMessagePrompt(gen.Occasion(opts.Occasion), opts.Description)
	if err != nil {
		return "", err
	}

	cacheKey := r.Keyer.PromptKey(prompt, cache.PromptKeyOpts{
		Occasion: opts.Occasion,
		Style:    r.Gen.TextModel(),
	})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "prompt")
			return string(data), nil
		}
		observability.Cache().OnCacheMiss(ctx, "prompt")
	}

	text, err := r.Gen.CompleteText(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := errors.ValidateMessageText(text); err != nil {
		return "", err
	}

	_ = r.Cache.Set(ctx, cacheKey, []byte(text), cache.TTLPrompt)
	return text, nil
}

// Layout builds the card layout plan from the artwork dimensions and the
// final message. Pure computation, never cached.
func (r *Runner) Layout(image layout.ImageSpec, message string, opts Options) (*layout.Plan, error) {
	opts.SetLayoutDefaults()
	spec := layout.MessageSpec{
		Text: message,
		Tier: layout.FontTier(opts.FontTier),
	}
	return layout.BuildPlan(opts.Page(), image, spec, opts.LayoutOptions()...)
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. Artifacts are keyed by the plan hash and render options.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, plan *layout.Plan, artwork *gen.Artwork, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	if err := ValidateStyle(opts.Style); err != nil {
		return nil, false, err
	}

	planData, err := sink.RenderJSON(plan)
	if err != nil {
		return nil, false, err
	}
	planHash := cache.Hash(planData)

	// Try to get all artifacts from cache
	names := ArtifactNames(opts.Formats)
	allCached := true
	artifacts := make(map[string][]byte)

	for _, name := range names {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(name))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[name] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(names) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := RenderFromPlan(plan, artwork, opts)
	if err != nil {
		return nil, false, err
	}

	for name, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(name))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, plan *layout.Plan, artwork *gen.Artwork, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, plan, artwork, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
