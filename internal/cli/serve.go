package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardfold/internal/api"
	"github.com/matzehuels/cardfold/pkg/cache"
	"github.com/matzehuels/cardfold/pkg/history"
	"github.com/matzehuels/cardfold/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	baseURL    string // public base URL used in share links
	historyDir string // file store directory (ignored with --mongo-uri)
	mongoURI   string // MongoDB connection string for card history
	mongoDB    string // MongoDB database name
	redisAddr  string // Redis address for the shared cache
	noCache    bool   // disable caching entirely
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    ":8080",
		baseURL: "http://localhost:8080",
	}
	c.Config.applyServe(&opts)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the card HTTP API server",
		Long: `Run the card HTTP API server.

The server exposes card composition and download endpoints. Composed
cards are persisted to a history store: a local file store by default,
or MongoDB with --mongo-uri. Model responses and rendered artifacts are
cached on disk by default, or in Redis with --redis-addr.

Generative endpoints require the ` + apiKeyEnv + ` environment variable;
without it the server still serves previously composed cards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", opts.baseURL, "public base URL for share links")
	cmd.Flags().StringVar(&opts.historyDir, "history-dir", "", "card history directory (default: ~/.config/cardfold/history)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for card history (overrides --history-dir)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "", "MongoDB database name (default: cardfold)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the cache (default: local file cache)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the store, cache, and runner together and serves until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := newHistoryStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize history store: %w", err)
	}
	defer store.Close()

	backend, err := newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(backend, nil, c.newGenClient(backend), logger)
	defer runner.Close()

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewServer(runner, store, logger, opts.baseURL).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", opts.addr, "base_url", opts.baseURL)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newHistoryStore selects the history backend from flags.
func newHistoryStore(ctx context.Context, opts serveOpts) (history.Store, error) {
	if opts.mongoURI != "" {
		return history.NewMongoStore(ctx, history.MongoConfig{
			URI:      opts.mongoURI,
			Database: opts.mongoDB,
		})
	}
	return history.NewFileStore(opts.historyDir)
}

// newServeCache selects the cache backend from flags.
func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	}
	return newCache(false)
}
