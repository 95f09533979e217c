// Package source provides POM document sources: a local directory walker and
// a go-git repository reader, managed through a factory registry.
package source

import (
	"fmt"

	"github.com/rios0rios0/pomupdate/domain"
)

// Factory is a constructor that creates a Source rooted at the given path.
type Factory func(path string) (domain.Source, error)

// Registry manages all registered source implementations.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a source factory under the given name (e.g. "local").
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Get returns a configured source instance for the given type and path.
func (r *Registry) Get(name, path string) (domain.Source, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %q", name)
	}
	return factory(path)
}

// Names returns the list of registered source names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// NewDefaultRegistry returns a registry with the built-in sources.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("local", NewLocal)
	r.Register("git", NewGit)
	return r
}
