package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardfold/pkg/pipeline"
)

// Config holds the optional user configuration loaded from
// ~/.config/cardfold/config.toml. Every field is optional; zero values
// fall back to the built-in defaults.
type Config struct {
	// Card defaults
	Page       string `toml:"page"`
	Style      string `toml:"style"`
	Branding   string `toml:"branding"`
	GuideCount int    `toml:"guide_count"`

	Models ModelsConfig `toml:"models"`
	Serve  ServeConfig  `toml:"serve"`
}

// ModelsConfig selects the generative backend.
type ModelsConfig struct {
	BaseURL    string `toml:"base_url"`
	TextModel  string `toml:"text_model"`
	ImageModel string `toml:"image_model"`
}

// ServeConfig holds server defaults, overridable by serve flags.
type ServeConfig struct {
	Addr       string `toml:"addr"`
	BaseURL    string `toml:"base_url"`
	HistoryDir string `toml:"history_dir"`
	MongoURI   string `toml:"mongo_uri"`
	MongoDB    string `toml:"mongo_db"`
	RedisAddr  string `toml:"redis_addr"`
}

// configPath returns the config file location using XDG standard
// (~/.config/cardfold/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config file. A missing file is not an
// error; a malformed one is.
func loadConfig() (Config, error) {
	var cfg Config
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies non-zero config values onto pipeline options. Flags set
// by the user still win because they overwrite these values afterwards.
func (cfg Config) apply(opts *pipeline.Options) {
	if cfg.Page != "" {
		opts.PageFormat = cfg.Page
	}
	if cfg.Style != "" {
		opts.Style = cfg.Style
	}
	if cfg.Branding != "" {
		opts.Branding = cfg.Branding
	}
	if cfg.GuideCount > 0 {
		opts.GuideCount = cfg.GuideCount
	}
}

// applyServe copies non-zero server config values onto serve options.
func (cfg Config) applyServe(opts *serveOpts) {
	if cfg.Serve.Addr != "" {
		opts.addr = cfg.Serve.Addr
	}
	if cfg.Serve.BaseURL != "" {
		opts.baseURL = cfg.Serve.BaseURL
	}
	if cfg.Serve.HistoryDir != "" {
		opts.historyDir = cfg.Serve.HistoryDir
	}
	if cfg.Serve.MongoURI != "" {
		opts.mongoURI = cfg.Serve.MongoURI
	}
	if cfg.Serve.MongoDB != "" {
		opts.mongoDB = cfg.Serve.MongoDB
	}
	if cfg.Serve.RedisAddr != "" {
		opts.redisAddr = cfg.Serve.RedisAddr
	}
}
