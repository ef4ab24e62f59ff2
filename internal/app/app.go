package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/i2cseq/internal/bus"
	"github.com/vk/i2cseq/internal/compiler"
	"github.com/vk/i2cseq/internal/config"
	"github.com/vk/i2cseq/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	cfg       *Config
	model     *config.Model
	opts      compiler.Options
	transport bus.Transport // injected in tests; nil means open devfs
}

// Option customizes an App, mainly for tests.
type Option func(*App)

// WithTransport makes Run submit through the given transport instead of
// opening /dev/i2c-N.
func WithTransport(t bus.Transport) Option {
	return func(a *App) { a.transport = t }
}

// NewApp loads all sequence files through the loader and returns a fully
// initialized App with its own isolated logger. A failure to load
// configuration is a fatal startup error and panics; the CLI entrypoint
// recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.With(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.SeqPath)
	if err != nil {
		panic(fmt.Errorf("failed to load sequence files: %w", err))
	}
	logger.Debug("Sequence files loaded and translated into unified model.", "transactions", len(model.Transactions))

	a := &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		model:  model,
		opts:   compiler.Options{MaxSegments: cfg.MaxSegments},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model returns the loaded configuration model. This is primarily for
// testing.
func (a *App) Model() *config.Model {
	return a.model
}
