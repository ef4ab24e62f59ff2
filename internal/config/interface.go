package config

import "context"

// Loader turns a path (a file or a directory tree of sequence files) into
// the unified model. Implementations own all format-specific parsing.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
