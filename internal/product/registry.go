package product

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is a thread-safe registry of known products.
type Registry struct {
	byID   map[int]*Product
	byName map[string]*Product // lower-cased name -> product
	mu     sync.RWMutex
}

// NewRegistry creates a new empty product registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[int]*Product),
		byName: make(map[string]*Product),
	}
}

// Register adds a product to the registry.
// Panics if a product with the same ID is already registered.
func (r *Registry) Register(p *Product) {
	if p == nil {
		panic("product: cannot register nil product")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID()]; exists {
		panic(fmt.Sprintf("product: %d already registered", p.ID()))
	}

	r.byID[p.ID()] = p
	r.byName[strings.ToLower(p.Name())] = p
}

// Get retrieves a product by its resource ID.
func (r *Registry) Get(id int) (*Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	return p, ok
}

// MustGet retrieves a product by its resource ID, panics if not found.
func (r *Registry) MustGet(id int) *Product {
	p, ok := r.Get(id)
	if !ok {
		panic(fmt.Sprintf("product: %d not found in registry", id))
	}
	return p
}

// GetByName retrieves a product by name, case-insensitively.
func (r *Registry) GetByName(name string) (*Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[strings.ToLower(name)]
	return p, ok
}

// All returns all registered products ordered by resource ID.
func (r *Registry) All() []*Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Product, 0, len(r.byID))
	for _, p := range r.byID {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// Count returns the number of registered products.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
