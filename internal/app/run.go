package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
	"github.com/specialistvlad/rosdocgo/internal/doctree"
	"github.com/specialistvlad/rosdocgo/internal/export"
)

// Run loads the declarations, renders the requested packages and writes them
// in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if err := a.Load(ctx); err != nil {
		return fmt.Errorf("failed to load documentation: %w", err)
	}

	roots, err := a.Render(ctx, a.config.Packages)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		logger.Warn("No packages declared, nothing to render.")
	}

	exporter, err := export.New(a.config.Format, export.Options{})
	if err != nil {
		return err
	}
	data, err := exporter.Export(roots)
	if err != nil {
		return fmt.Errorf("failed to export documentation: %w", err)
	}

	if err := a.write(data); err != nil {
		return err
	}
	logger.Info("Documentation written.", "format", a.config.Format, "packages", len(roots), "output", a.outputName())
	return nil
}

// Render renders the named packages. With no names it renders the packages
// requested by show declarations, and without those every package in
// declaration order. Links without a matching section are logged.
func (a *App) Render(ctx context.Context, names []string) ([]*doctree.Node, error) {
	logger := ctxlog.FromContext(ctx)

	if len(names) == 0 {
		names = a.build.Shows()
	}

	var roots []*doctree.Node
	if len(names) == 0 {
		roots = a.build.RenderAll()
	} else {
		for _, name := range names {
			root, err := a.build.RenderPackage(name)
			if err != nil {
				return nil, fmt.Errorf("failed to render package: %w", err)
			}
			roots = append(roots, root)
		}
	}

	for _, ref := range doctree.DanglingRefs(roots...) {
		logger.Warn("Reference points to a section that is not rendered.", "refid", ref)
	}
	return roots, nil
}

func (a *App) write(data []byte) error {
	if a.config.Output == "" {
		_, err := a.outW.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(a.config.Output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(a.config.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (a *App) outputName() string {
	if a.config.Output == "" {
		return "stdout"
	}
	return a.config.Output
}
