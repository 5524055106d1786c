package stacks

import (
	"fmt"
	"sort"
)

// DefaultStack is the stack used when no stack or catalog is configured.
const DefaultStack = "HDP-2.0"

// Registry manages built-in stacks
type Registry struct {
	stacks map[string]*Stack
}

// NewRegistry creates a registry with all built-in stacks
func NewRegistry() *Registry {
	r := &Registry{
		stacks: make(map[string]*Stack),
	}

	r.Register(HDP13Stack())
	r.Register(HDP20Stack())

	return r
}

// Register adds a stack to the registry
func (r *Registry) Register(s *Stack) {
	r.stacks[s.Name] = s
}

// Get retrieves a stack by name
func (r *Registry) Get(name string) (*Stack, error) {
	s, ok := r.stacks[name]
	if !ok {
		return nil, fmt.Errorf("unknown stack: %s", name)
	}
	return s, nil
}

// Has checks if a stack exists in the registry
func (r *Registry) Has(name string) bool {
	_, ok := r.stacks[name]
	return ok
}

// List returns all available stack names (sorted)
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.stacks))
	for name := range r.stacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
