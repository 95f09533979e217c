// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/pomupdate/domain"
)

// ---------------------------------------------------------------------------
// SpySource
// ---------------------------------------------------------------------------

// SpySource implements domain.Source as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpySource struct {
	// --- identity ---
	SourceName string

	// --- ListPomFiles ---
	Files       []domain.File
	ListFileErr error
	// spy: number of list calls received
	ListCalls int

	// --- GetFileContent ---
	FileContents   map[string]string // path -> content
	FileContentErr error
	// spy: paths that were requested
	ReadPaths []string
}

var _ domain.Source = (*SpySource)(nil)

func (s *SpySource) Name() string { return s.SourceName }

func (s *SpySource) ListPomFiles(_ context.Context) ([]domain.File, error) {
	s.ListCalls++
	return s.Files, s.ListFileErr
}

func (s *SpySource) GetFileContent(
	_ context.Context,
	path string,
) (string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.FileContents != nil {
		if content, ok := s.FileContents[path]; ok {
			return content, nil
		}
	}
	if s.FileContentErr != nil {
		return "", s.FileContentErr
	}
	return "", fmt.Errorf("file not found: %s", path)
}

// ---------------------------------------------------------------------------
// DummySource
// ---------------------------------------------------------------------------

// DummySource is a no-op Source for interface-compliance tests.
type DummySource struct{}

var _ domain.Source = (*DummySource)(nil)

func (s *DummySource) Name() string { return "dummy" }

func (s *DummySource) ListPomFiles(_ context.Context) ([]domain.File, error) {
	return nil, nil
}

func (s *DummySource) GetFileContent(_ context.Context, _ string) (string, error) {
	return "", nil
}
