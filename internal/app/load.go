package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
)

// Load runs every loader over the configured paths and applies the resulting
// declarations to the build. Each rejected declaration is logged with its
// source; in strict mode Load then returns all of them joined. Declarations
// are applied once: later calls return nil without reloading.
func (a *App) Load(ctx context.Context) error {
	ctx = a.context(ctx)
	logger := ctxlog.FromContext(ctx)
	if a.loaded {
		logger.Debug("Declarations already loaded.")
		return nil
	}
	logger.Debug("Loading declarations...", "paths", a.config.Paths)

	var stream []*config.Declaration
	for _, loader := range a.loaders {
		decls, err := loader.Load(ctx, a.config.Paths...)
		if err != nil {
			return fmt.Errorf("failed to load declarations: %w", err)
		}
		stream = append(stream, decls...)
	}
	logger.Debug("Declaration stream assembled.", "count", len(stream))

	var errs []error
	file := ""
	for _, d := range stream {
		if path := sourceFile(d); path != file {
			a.warnOpen(ctx, file)
			file = path
		}
		if err := a.build.Apply(ctx, d); err != nil {
			logger.Error("Declaration rejected.", "error", err)
			errs = append(errs, err)
		}
	}
	a.warnOpen(ctx, file)

	reg := a.build.Registry()
	for _, u := range reg.UnresolvedUsages() {
		logger.Warn("Launch file uses an undeclared executable.", "usage", u.String())
	}
	logger.Info("Declarations loaded.", "summary", reg.Summary(), "rejected", len(errs))

	a.loaded = true
	if a.config.Strict && len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// warnOpen reports a package, executable or launch file left open at the end
// of file. The next declaration still sees it as current.
func (a *App) warnOpen(ctx context.Context, file string) {
	if file != "" && a.build.Open() {
		ctxlog.FromContext(ctx).Warn("Declaration left open at end of file.", "file", file)
	}
}

func sourceFile(d *config.Declaration) string {
	if d.Source == nil {
		return ""
	}
	return d.Source.FilePath
}
