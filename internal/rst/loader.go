package rst

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/rosdocgo/internal/config"
	"github.com/specialistvlad/rosdocgo/internal/ctxlog"
	"github.com/specialistvlad/rosdocgo/internal/fsutil"
)

// Extension is the file extension the loader picks up.
const Extension = ".rst"

// Loader implements config.Loader for reStructuredText sources.
type Loader struct{}

// NewLoader creates a new RST directive loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .rst file under paths and returns their declarations,
// file by file, in source order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.Declaration, error) {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "loader", "rst"))
	logger.Debug("RST loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered RST files.", "count", len(files))

	var decls []*config.Declaration
	for _, file := range files {
		fileDecls, err := parseFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RST file %s: %w", file, err)
		}
		logger.Debug("RST file parsed.", "file", file, "declarations", len(fileDecls))
		decls = append(decls, fileDecls...)
	}

	logger.Debug("RST loading complete.", "files", len(files), "declarations", len(decls))
	return decls, nil
}

func parseFile(path string) ([]*config.Declaration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}
