package memory

import (
	"fmt"
	"sync"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/ports"
)

// Registry implements ports.Resolver over a map of elements keyed by ID.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]*Element)}
}

// NewFromElements creates a registry pre-populated with elements, for clean
// construction in tests and scenarios.
func NewFromElements(elements ...*Element) *Registry {
	r := NewRegistry()
	for _, e := range elements {
		r.Add(e)
	}
	return r
}

// Add registers an element, replacing any previous element with the same ID.
func (r *Registry) Add(e *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements[e.ID()] = e
}

// Remove drops an element from the registry. Runs already holding the
// element keep mutating it; they simply become orphaned once the host stops
// delivering frames for it.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.elements, id)
}

// Resolve looks up an element by reference.
func (r *Registry) Resolve(ref string) (ports.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.elements[ref]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", ref, domain.ErrTargetNotFound)
	}
	return e, nil
}

// Get returns the concrete element for direct inspection in tests.
func (r *Registry) Get(id string) (*Element, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.elements[id]
	return e, ok
}
