package llmprovider

import "sort"

// Registry is the closed set of configured providers, selected by name.
// There is no fallback chain and no retry: an extraction call is a single
// attempt against exactly the provider the caller selected.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a Registry over the given providers.
func NewRegistry(providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.providers)
}
