package render

import (
	"errors"
	"fmt"
	"mime"
	"sort"
	"strings"
	"sync"
)

// ErrRendererNotFound is returned by Get when no renderer uses the name.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry maps renderer names to renderers. Names are case-insensitive, so
// "?format=Terminal" finds "terminal". Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
	// order keeps registration order for media type negotiation.
	order []Renderer
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Renderer{}}
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds renderer under its Name. Empty and duplicate names fail.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	key := registryKey(renderer.Name())
	if key == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[key]; taken {
		return fmt.Errorf("render: renderer %q already registered", renderer.Name())
	}
	r.byName[key] = renderer
	r.order = append(r.order, renderer)
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[registryKey(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, renderer := range r.order {
		names = append(names, renderer.Name())
	}
	sort.Strings(names)
	return names
}

// ForMediaType picks the renderer for an Accept header value. Media ranges
// are tried left to right and wildcards never match, so "*/*" leaves the
// choice to the caller. Quality values are ignored.
func (r *Registry) ForMediaType(accept string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, part := range strings.Split(accept, ",") {
		want, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil || strings.Contains(want, "*") {
			continue
		}
		for _, renderer := range r.order {
			have, _, err := mime.ParseMediaType(renderer.ContentType())
			if err == nil && have == want {
				return renderer, true
			}
		}
	}
	return nil, false
}
