package config

import "context"

// Loader is the interface for a format-specific declaration loader.
type Loader interface {
	// Load reads every supported file under paths and returns the
	// declarations in source order. Directories are searched recursively.
	Load(ctx context.Context, paths ...string) ([]*Declaration, error)
}
