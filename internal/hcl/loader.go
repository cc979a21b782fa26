package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
	"github.com/specialistvlad/rosdocgo/internal/fsutil"
)

// Extension is the file extension the loader picks up.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and returns their declarations,
// file by file, in source order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.Declaration, error) {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "loader", "hcl"))
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var decls []*config.Declaration

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		fileDecls, diags := translateFile(hclFile.Body)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		logger.Debug("HCL file translated.", "file", file, "declarations", len(fileDecls))
		decls = append(decls, fileDecls...)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "declarations", len(decls))
	return decls, nil
}
