package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardfold/pkg/gen"
	"github.com/matzehuels/cardfold/pkg/pipeline"
)

// composeCommand creates the compose command for model-backed card generation.
func (c *CLI) composeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)
	c.Config.apply(&opts)

	cmd := &cobra.Command{
		Use:   "compose [occasion]",
		Short: "Generate artwork and a message, then render a card",
		Long: `Generate artwork and a message, then render a card.

The compose command builds prompts from the occasion and art style,
calls the configured image and text models, computes the quarter-fold
layout, and renders both printable pages.

Without an occasion argument an interactive picker is shown.

Model responses are cached locally; --refresh forces fresh generations.

Requires the ` + apiKeyEnv + ` environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Occasion = args[0]
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runCompose(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: card)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Compose flags
	cmd.Flags().StringVarP(&opts.ArtStyle, "art-style", "a", string(gen.StyleWatercolor), "artwork style: watercolor, sketch, papercut, vintage, minimal")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "extra scene description woven into the prompts")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "inside message (skips message generation)")
	cmd.Flags().BoolVar(&opts.GenerateMessage, "generate-message", true, "generate the inside message when none is given")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached model responses")

	addLayoutFlags(cmd, &opts)
	addRenderFlags(cmd, &opts, &formatsStr)

	return cmd
}

// runCompose resolves missing selections interactively, runs the full
// pipeline, and writes the artifacts.
func (c *CLI) runCompose(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if os.Getenv(apiKeyEnv) == "" {
		return fmt.Errorf("compose requires the %s environment variable (use 'render' for offline output)", apiKeyEnv)
	}

	if opts.Occasion == "" {
		selection, err := pickOccasion()
		if err != nil {
			return err
		}
		if selection == nil {
			printInfo("Cancelled")
			return nil
		}
		opts.Occasion = string(selection.Occasion)
		opts.ArtStyle = string(selection.Style)
	}

	if err := gen.ValidateOccasion(gen.Occasion(opts.Occasion)); err != nil {
		return err
	}
	if err := gen.ValidateArtStyle(gen.ArtStyle(opts.ArtStyle)); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Composing %s card (%s)...", opts.Occasion, opts.ArtStyle))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Compose failed")
		return fmt.Errorf("compose: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Card composed")
	if result.Message != "" {
		printDetail("Message: %s", result.Message)
	}
	reportTruncation(result)
	if err := writeArtifacts(artifactWriteParams{
		artifacts:  result.Artifacts,
		pageFormat: opts.PageFormat,
		output:     output,
		cacheHit:   result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	if !hasFormat(opts.Formats, pipeline.FormatPDF) {
		printNewline()
		printNextStep("Print-ready PDF", fmt.Sprintf("cardfold compose %s -f pdf", opts.Occasion))
	}
	return nil
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}
