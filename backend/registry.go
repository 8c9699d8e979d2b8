package backend

import (
	"fmt"
	"slices"
	"sync"
)

// BackendFactory creates a new, uninitialized backend instance.
type BackendFactory func() DeviceBackend

// Priority order for Default: a real driver first, the null device last.
var defaultPriority = []string{BackendGL41, BackendNull}

// Registry maps backend names to factories. The zero value is not usable;
// create one with NewRegistry. Backend packages register themselves with
// the package-level registry from init.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
	priority  []string
}

// NewRegistry returns an empty registry that prefers backends in the
// given order when asked for a default.
func NewRegistry(priority ...string) *Registry {
	return &Registry{
		factories: make(map[string]BackendFactory),
		priority:  priority,
	}
}

var registry = NewRegistry(defaultPriority...)

// Register adds factory under name, replacing any earlier registration.
func (r *Registry) Register(name string, factory BackendFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Unregister removes name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// Available returns the registered names in sorted order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether name has a factory.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Get returns a new instance of the named backend, or nil.
func (r *Registry) Get(name string) DeviceBackend {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return factory()
}

// Default returns a new instance of the first registered backend in
// priority order. Backends outside the priority list are tried afterwards
// in name order. It returns nil when nothing is registered.
func (r *Registry) Default() DeviceBackend {
	for _, name := range r.priority {
		if b := r.Get(name); b != nil {
			return b
		}
	}
	for _, name := range r.Available() {
		if slices.Contains(r.priority, name) {
			continue
		}
		if b := r.Get(name); b != nil {
			return b
		}
	}
	return nil
}

// Open creates and initializes the named backend, or the default one if
// name is empty.
func (r *Registry) Open(name string) (DeviceBackend, error) {
	var b DeviceBackend
	if name == "" {
		b = r.Default()
	} else {
		b = r.Get(name)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}

	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("backend %s: init: %w", b.Name(), err)
	}
	return b, nil
}

// Register adds a backend to the package registry. Backend packages call
// it from init.
func Register(name string, factory BackendFactory) { registry.Register(name, factory) }

// Unregister removes a backend from the package registry.
func Unregister(name string) { registry.Unregister(name) }

// Available returns the names in the package registry, sorted.
func Available() []string { return registry.Available() }

// IsRegistered reports whether name is in the package registry.
func IsRegistered(name string) bool { return registry.IsRegistered(name) }

// Get returns a new, uninitialized instance of the named backend, or nil.
func Get(name string) DeviceBackend { return registry.Get(name) }

// Default returns the preferred registered backend: gl41 when linked in,
// otherwise null.
func Default() DeviceBackend { return registry.Default() }

// MustDefault is like Default but panics when no backend is registered.
func MustDefault() DeviceBackend {
	b := Default()
	if b == nil {
		panic("backend: no backend available")
	}
	return b
}

// Open initializes the named backend from the package registry, or the
// default one if name is empty.
func Open(name string) (DeviceBackend, error) { return registry.Open(name) }
