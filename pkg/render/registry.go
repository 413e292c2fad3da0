package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds renderers keyed by their lower-cased Name. Lookups accept
// either the name or the label ("vue", "Vue"). It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	labels    map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		labels:    make(map[string]string),
	}
}

// Register adds renderer. Names and labels must be unique across the
// registry, ignoring case.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := registryKey(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}
	label := registryKey(renderer.Label())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	if owner, taken := r.labels[label]; label != "" && taken && owner != name {
		return fmt.Errorf("render: label %q already used by renderer %q", renderer.Label(), owner)
	}
	if _, taken := r.renderers[label]; label != "" && label != name && taken {
		return fmt.Errorf("render: label %q already used by renderer %q", renderer.Label(), label)
	}
	if owner, taken := r.labels[name]; taken {
		return fmt.Errorf("render: name %q already used as a label by renderer %q", name, owner)
	}

	r.renderers[name] = renderer
	if label != "" && label != name {
		r.labels[label] = name
	}
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get finds a renderer by name or label.
func (r *Registry) Get(name string) (Renderer, error) {
	key := registryKey(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if renderer, ok := r.renderers[key]; ok {
		return renderer, nil
	}
	if owner, ok := r.labels[key]; ok {
		return r.renderers[owner], nil
	}
	return nil, fmt.Errorf("render: renderer %q not found", name)
}

// Resolve returns the renderer called name. An empty name selects fallback,
// and when that is missing too, the first registered name in sorted order.
func (r *Registry) Resolve(name, fallback string) (Renderer, error) {
	if strings.TrimSpace(name) != "" {
		return r.Get(name)
	}
	if strings.TrimSpace(fallback) != "" {
		if renderer, err := r.Get(fallback); err == nil {
			return renderer, nil
		}
	}

	names := r.List()
	if len(names) == 0 {
		return nil, errors.New("render: no renderers registered")
	}
	return r.Get(names[0])
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name or label resolves to a renderer.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
