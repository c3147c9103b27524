package sections

import (
	"fmt"
	"strings"
	"sync"

	"bizhub-backend/internal/models"
)

// RenderContext exposes the capabilities renderers need beyond the section
// itself: markup sanitisation and the current editing state.
type RenderContext interface {
	// SanitizeHTML cleans potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
	// Editing reports whether interaction hooks should be attached.
	Editing() bool
	// Selected reports whether the given sub-element key of the section is
	// the current editing focus.
	Selected(sectionID, key string) bool
}

// Renderer renders one section into an HTML fragment.
type Renderer func(ctx RenderContext, prefix string, section models.Section) string

// Registry maps section types to their renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[models.SectionType]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[models.SectionType]Renderer)}
}

// DefaultRegistry returns a registry with every built-in variant registered.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(models.SectionHero, renderHero)
	reg.MustRegister(models.SectionFeatures, renderFeatures)
	reg.MustRegister(models.SectionProducts, renderProducts)
	reg.MustRegister(models.SectionTestimonials, renderTestimonials)
	reg.MustRegister(models.SectionContact, renderContact)
	reg.MustRegister(models.SectionAbout, renderAbout)
	return reg
}

// Register associates a renderer with a section type.
func (r *Registry) Register(t models.SectionType, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if strings.TrimSpace(string(t)) == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[models.SectionType]Renderer)
	}
	r.renderers[t] = renderer
	return nil
}

// MustRegister registers the renderer and panics on failure.
func (r *Registry) MustRegister(t models.SectionType, renderer Renderer) {
	if err := r.Register(t, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for a section type if one is registered.
func (r *Registry) Get(t models.SectionType) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[t]
	return renderer, ok
}

// Clone creates a copy of the registry with the same renderer mappings.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, renderer := range r.renderers {
		cloned.renderers[key] = renderer
	}
	return cloned
}
