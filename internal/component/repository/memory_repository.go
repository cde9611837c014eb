package repository

import (
	"sync"
	"time"

	"github.com/labtrack/labtrack/internal/component/domain"
)

// MemoryComponentRepository holds the component collection in process
// memory. This is the default backend: the dashboard owns its collection
// for the process lifetime, seeded once at startup.
type MemoryComponentRepository struct {
	mu         sync.RWMutex
	components []domain.Component
}

func NewMemoryComponentRepository() *MemoryComponentRepository {
	return &MemoryComponentRepository{}
}

// Create inserts the component at the head of the collection
func (r *MemoryComponentRepository) Create(component *domain.Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if component.CreatedAt.IsZero() {
		component.CreatedAt = now
	}
	component.UpdatedAt = now

	r.components = append([]domain.Component{*component}, r.components...)
	return nil
}

func (r *MemoryComponentRepository) FindByID(id string) (*domain.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.components {
		if r.components[i].ID == id {
			c := r.components[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindAll returns a copy of the collection in insertion order,
// most-recent-first
func (r *MemoryComponentRepository) FindAll() ([]domain.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	components := make([]domain.Component, len(r.components))
	copy(components, r.components)
	return components, nil
}

// Update replaces the stored record in place, preserving its position
func (r *MemoryComponentRepository) Update(component *domain.Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.components {
		if r.components[i].ID == component.ID {
			component.CreatedAt = r.components[i].CreatedAt
			component.UpdatedAt = time.Now()
			r.components[i] = *component
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryComponentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.components {
		if r.components[i].ID == id {
			r.components = append(r.components[:i], r.components[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
