package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardfold/pkg/buildinfo"
	"github.com/matzehuels/cardfold/pkg/cache"
	"github.com/matzehuels/cardfold/pkg/gen"
	"github.com/matzehuels/cardfold/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cardfold"

	// apiKeyEnv is the environment variable holding the model API key.
	apiKeyEnv = "OPENAI_API_KEY"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the user
// config, if present.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
	}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "cardfold",
		Short:        "Cardfold lays out and renders foldable greeting cards",
		Long:         `Cardfold is a CLI tool for generating quarter-fold greeting cards: it composes artwork and messages, computes the fold-aware page layout, and renders print-ready output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.composeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The generative client is
// only attached when an API key is available; offline rendering works without it.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	backend, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.newGenClient(backend), c.Logger), nil
}

// newGenClient builds a model client from the environment and config,
// or nil when no API key is configured.
func (c *CLI) newGenClient(backend cache.Cache) *gen.Client {
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return nil
	}
	opts := []gen.ClientOption{gen.WithCache(backend)}
	models := c.Config.Models
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		opts = append(opts, gen.WithBaseURL(base))
	} else if models.BaseURL != "" {
		opts = append(opts, gen.WithBaseURL(models.BaseURL))
	}
	if models.TextModel != "" {
		opts = append(opts, gen.WithTextModel(models.TextModel))
	}
	if models.ImageModel != "" {
		opts = append(opts, gen.WithImageModel(models.ImageModel))
	}
	return gen.NewClient(key, opts...)
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cardfold/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// setCLIDefaults applies CLI-specific defaults on top of pipeline defaults.
func setCLIDefaults(opts *pipeline.Options) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
