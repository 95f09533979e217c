package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/pomupdate/domain"
)

const pomFileName = "pom.xml"

// Local reads POM descriptors from a directory tree on disk. It relies on the
// user's existing checkout; no cloning or credentials are involved.
type Local struct {
	root string
}

// NewLocal creates a local source rooted at the given directory.
func NewLocal(root string) (domain.Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %q is not a directory", root)
	}
	return &Local{root: root}, nil
}

func (s *Local) Name() string { return "local" }

// ListPomFiles walks the tree and returns every pom.xml, with paths relative
// to the source root. Hidden directories (".git" and friends) are skipped.
func (s *Local) ListPomFiles(_ context.Context) ([]domain.File, error) {
	var files []domain.File

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != pomFileName {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, domain.File{Path: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", s.root, err)
	}

	return files, nil
}

// GetFileContent reads one descriptor relative to the source root.
func (s *Local) GetFileContent(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}
