package domain

import "context"

// File represents a POM descriptor entry within a source.
type File struct {
	Path  string
	IsDir bool
}

// Source abstracts where POM documents come from (a local directory tree, a
// git repository, ...). Implementations only hand back raw text; parsing and
// resolution happen in the engine.
type Source interface {
	// Name returns the source identifier (e.g. "local", "git").
	Name() string

	// ListPomFiles returns every pom.xml descriptor the source contains.
	ListPomFiles(ctx context.Context) ([]File, error)

	// GetFileContent reads the raw text of one descriptor.
	GetFileContent(ctx context.Context, path string) (string, error)
}
