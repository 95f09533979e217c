package source

import (
	"context"
	"fmt"
	"path"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/pomupdate/domain"
)

// Git reads POM descriptors from the HEAD commit of a git repository,
// without touching the worktree. This keeps scans consistent even when the
// checkout has local modifications.
type Git struct {
	repo *git.Repository
}

// NewGit opens the repository at the given path.
func NewGit(repoPath string) (domain.Source, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository %q: %w", repoPath, err)
	}
	return &Git{repo: repo}, nil
}

func (s *Git) Name() string { return "git" }

// headTree resolves the tree of the current HEAD commit.
func (s *Git) headTree() (*object.Tree, error) {
	ref, err := s.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := s.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD tree: %w", err)
	}
	return tree, nil
}

// ListPomFiles returns every pom.xml tracked at HEAD.
func (s *Git) ListPomFiles(_ context.Context) ([]domain.File, error) {
	tree, err := s.headTree()
	if err != nil {
		return nil, err
	}

	var files []domain.File
	walkErr := tree.Files().ForEach(func(f *object.File) error {
		if path.Base(f.Name) == pomFileName {
			files = append(files, domain.File{Path: f.Name})
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk HEAD tree: %w", walkErr)
	}

	return files, nil
}

// GetFileContent reads one descriptor blob from HEAD.
func (s *Git) GetFileContent(_ context.Context, filePath string) (string, error) {
	tree, err := s.headTree()
	if err != nil {
		return "", err
	}

	file, err := tree.File(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to find %q at HEAD: %w", filePath, err)
	}

	content, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", filePath, err)
	}
	return content, nil
}
