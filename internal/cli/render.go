package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardfold/pkg/gen"
	"github.com/matzehuels/cardfold/pkg/pipeline"
)

// defaultOutputBase is the base output path when --output is omitted.
const defaultOutputBase = "card"

// renderCommand creates the render command for offline card rendering.
// It takes a local image file as the front artwork and skips the
// generative compose stage entirely.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		imagePath  string
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)
	c.Config.apply(&opts)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out and render a card from a local image",
		Long: `Lay out and render a card from a local image.

The render command takes a front-cover image file, computes the
quarter-fold layout, and renders both printable pages. With --message
the inside-right panel carries the wrapped text; without it the panel
gets evenly spaced writing guides instead.

Rendered artifacts are cached locally for faster subsequent runs.

Use 'compose' to generate the artwork and message with a model first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), imagePath, opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "front-cover image file (png or jpeg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: card)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	_ = cmd.MarkFlagRequired("image")

	addLayoutFlags(cmd, &opts)
	addRenderFlags(cmd, &opts, &formatsStr)
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "inside message (omit for writing guides)")

	return cmd
}

// addLayoutFlags registers the page and message layout flags shared by
// render and compose.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.PageFormat, "page", opts.PageFormat, "page format: letter (default), compact")
	cmd.Flags().StringVar(&opts.FontTier, "tier", opts.FontTier, "message font tier: small, medium (default), large")
	cmd.Flags().IntVar(&opts.GuideCount, "guides", opts.GuideCount, "number of writing guide lines when no message is given")
}

// addRenderFlags registers the visual output flags shared by render and compose.
func addRenderFlags(cmd *cobra.Command, opts *pipeline.Options, formatsStr *string) {
	cmd.Flags().StringVarP(formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: handdrawn (default), simple")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale factor for png output")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for the handdrawn style")
	cmd.Flags().StringVar(&opts.Branding, "branding", opts.Branding, "back-panel branding text")
}

// runRender decodes the artwork, runs the pipeline without a model
// client, and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, imagePath string, opts pipeline.Options, output string, noCache bool) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image %s: %w", imagePath, err)
	}
	artwork, err := gen.DecodeArtwork(data)
	if err != nil {
		return fmt.Errorf("decode image %s: %w", imagePath, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Artwork = artwork

	spinner := newSpinnerWithContext(ctx, "Rendering card...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Card rendered")
	reportTruncation(result)
	return writeArtifacts(artifactWriteParams{
		artifacts:  result.Artifacts,
		pageFormat: opts.PageFormat,
		output:     output,
		cacheHit:   result.CacheInfo.RenderHit,
	})
}

// reportTruncation warns when the message did not fit the inside panel.
func reportTruncation(result *pipeline.Result) {
	if t := result.Plan.InsideRight.Text; t != nil && t.Truncated {
		printWarning("Message truncated to %d lines; try --tier small or a shorter message", len(t.Lines))
	}
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts  map[string][]byte
	pageFormat string
	output     string
	cacheHit   bool
}

// writeArtifacts writes each rendered artifact to disk and prints a
// summary. Artifact names carry the format plus an optional "-inside"
// page suffix; file names become <base>.<format> and <base>-inside.<format>.
func writeArtifacts(p artifactWriteParams) error {
	base := p.output
	if base == "" {
		base = defaultOutputBase
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	names := make([]string, 0, len(p.artifacts))
	for name := range p.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := artifactPath(base, name)
		if err := os.WriteFile(path, p.artifacts[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printStats(p.pageFormat, len(p.artifacts), p.cacheHit)
	return nil
}

// artifactPath maps an artifact name like "svg" or "png-inside" to an
// output file path.
func artifactPath(base, name string) string {
	format := strings.TrimSuffix(name, pipeline.InsideSuffix)
	if format != name {
		return base + pipeline.InsideSuffix + "." + format
	}
	return base + "." + format
}
