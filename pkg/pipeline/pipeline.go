// Package pipeline provides the core card composition pipeline.
//
// This package implements the complete compose → layout → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Compose: Generate front artwork (and optionally the inside message)
//     from an occasion, art style, and description
//  2. Layout: Compute the fold geometry, artwork placement, and message
//     layout for both card pages
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// A pre-supplied artwork skips the compose stage entirely, which is how
// the render command works offline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, client, logger)
//	opts := pipeline.Options{
//	    Occasion:    "birthday",
//	    ArtStyle:    "watercolor",
//	    Description: "a fox with a slice of cake",
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardfold/pkg/cache"
	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/errors"
	"github.com/matzehuels/cardfold/pkg/gen"
)

// Default values shared by CLI and API.
const (
	// DefaultSeed is the default random seed for the hand-drawn style.
	DefaultSeed = uint64(42)

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultBranding is printed near the bottom-left of the back panel.
	DefaultBranding = "made with cardfold"
)

// DefaultPageFormat is the default page format.
const DefaultPageFormat = PageFormatLetter

// DefaultCardStyle is the default visual style.
const DefaultCardStyle = StyleHanddrawn

// Page format constants.
const (
	PageFormatLetter  = "letter"
	PageFormatCompact = "compact"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Visual style constants.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple:    true,
	StyleHanddrawn: true,
}

// PageFormats maps page format names to their geometry.
var PageFormats = map[string]layout.PageGeometry{
	PageFormatLetter:  layout.Letter,
	PageFormatCompact: layout.Compact,
}

// Options contains all configuration for the card pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Compose options
	Occasion        string `json:"occasion,omitempty"`
	ArtStyle        string `json:"art_style,omitempty"`
	Description     string `json:"description,omitempty"`
	Message         string `json:"message,omitempty"`
	GenerateMessage bool   `json:"generate_message,omitempty"`
	Refresh         bool   `json:"refresh,omitempty"`

	// Layout options
	PageFormat string `json:"page_format,omitempty"`
	FontTier   string `json:"font_tier,omitempty"`
	GuideCount int    `json:"guide_count,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Seed     uint64   `json:"seed,omitempty"`
	Branding string   `json:"branding,omitempty"`
	ShareURL string   `json:"share_url,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// Artwork skips the compose stage when set, for offline rendering
	// with a pre-existing image.
	Artwork *gen.Artwork `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the computed card layout.
	Plan *layout.Plan

	// PlanHash is the content hash of the serialized plan.
	PlanHash string

	// Artwork is the front image with its intrinsic dimensions.
	Artwork *gen.Artwork

	// ArtworkPrompt is the image-model prompt used for the front.
	ArtworkPrompt string

	// Message is the final inside message (given or generated).
	Message string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComposeHit bool // Whether the artwork came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidatePageFormat checks that a page format is valid.
func ValidatePageFormat(format string) error {
	if _, ok := PageFormats[format]; !ok {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"invalid page format: %q (must be one of: letter, compact)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCompose(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.validateLayoutAndRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCompose checks required fields for the compose stage.
// A pre-supplied artwork makes the generative fields optional.
func (o *Options) ValidateForCompose() error {
	if o.Artwork == nil {
		if err := gen.ValidateOccasion(gen.Occasion(o.Occasion)); err != nil {
			return err
		}
		if err := gen.ValidateArtStyle(gen.ArtStyle(o.ArtStyle)); err != nil {
			return err
		}
		if o.Description != "" {
			if err := errors.ValidateDescription(o.Description); err != nil {
				return err
			}
		}
	}
	if err := errors.ValidateMessageText(o.Message); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.PageFormat == "" {
		o.PageFormat = DefaultPageFormat
	}
	if o.FontTier == "" {
		o.FontTier = string(layout.TierMedium)
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultCardStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Branding == "" {
		o.Branding = DefaultBranding
	}
}

func (o *Options) validateLayoutAndRender() error {
	if err := ValidatePageFormat(o.PageFormat); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// Page returns the page geometry for the selected format.
func (o *Options) Page() layout.PageGeometry {
	return PageFormats[o.PageFormat]
}

// LayoutOptions converts pipeline options to layout engine options.
func (o *Options) LayoutOptions() []layout.Option {
	var opts []layout.Option
	if o.GuideCount > 0 {
		opts = append(opts, layout.WithGuideCount(o.GuideCount))
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		DPI:    o.Scale,
	}
}
