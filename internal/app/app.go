package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/cookgraph/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	site   *config.File
}

// NewApp is the constructor for the main application. It loads the site
// configuration and builds an isolated logger; flag values override the
// logging block of the site config.
func NewApp(outW io.Writer, cfg *Config) *App {
	site, err := loadSiteConfig(cfg.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	level := cfg.LogLevel
	if level == "" {
		level = site.Logging.Level
	}
	format := cfg.LogFormat
	if format == "" {
		format = site.Logging.Format
	}
	if cfg.Workers <= 0 {
		cfg.Workers = site.Validation.Workers
	}

	logger := newLogger(level, format, outW)
	logger.Debug("Logger configured successfully.", "level", level, "format", format)

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		site:   site,
	}
}

// loadSiteConfig reads the HCL site config, or produces the built-in
// defaults when no path was given.
func loadSiteConfig(path string) (*config.File, error) {
	if path == "" {
		return config.LoadBytes(nil, "defaults")
	}
	return config.Load(path)
}
