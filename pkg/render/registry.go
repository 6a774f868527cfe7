package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores backends by name.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Backend),
	}
}

// Register adds a backend by its Name(). Duplicate names return an error.
func (r *Registry) Register(backend Backend) error {
	if backend == nil {
		return fmt.Errorf("render: backend is required")
	}
	name := backend.Name()
	if name == "" {
		return fmt.Errorf("render: backend name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("render: backend %q already registered", name)
	}

	r.backends[name] = backend
	return nil
}

// MustRegister panics when Register fails. The CLI builds its fixed backend
// set this way; a duplicate name there is a programming error.
func (r *Registry) MustRegister(backend Backend) {
	if err := r.Register(backend); err != nil {
		panic(err)
	}
}

// Get retrieves a backend by name.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[name]
	if !ok {
		names := make([]string, 0, len(r.backends))
		for known := range r.backends {
			names = append(names, known)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("render: backend %q not found (available: %s)", name, strings.Join(names, ", "))
	}
	return backend, nil
}

// List returns the sorted backend names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a backend is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.backends[name]
	return ok
}
