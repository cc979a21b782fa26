package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/rosdocgo/internal/build"
	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
	"github.com/specialistvlad/rosdocgo/internal/hcl"
	"github.com/specialistvlad/rosdocgo/internal/render"
	"github.com/specialistvlad/rosdocgo/internal/rst"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
	build   *build.Build
	loaded  bool
}

// defaultLoaders returns the loaders used when NewApp is given none.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), rst.NewLoader()}
}

// NewApp is the constructor for the main application. Documents are written
// to outW (unless cfg.Output names a file) and logs to logW. Each App owns an
// isolated logger and build.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
		build: build.New(build.Options{
			Render: render.Options{
				ExampleConfig: cfg.ExampleConfig,
				OnError: func(err error) {
					logger.Warn("Part of the documentation was left out.", "error", err)
				},
			},
		}),
	}
}

// Build returns the application's build. This is primarily for testing.
func (a *App) Build() *build.Build {
	return a.build
}

// context attaches the app logger to ctx.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
