package engine

import (
	"sync"

	"github.com/bella-project/bella/core"
)

// AnyStore is the type-erased interface all component stores implement,
// used by the world for uniform entity cleanup
type AnyStore interface {
	RemoveEntity(e core.Entity)
	Clear()
}

// Store is a generic container for a specific component type T
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity // entities that have this component, insertion order
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// RemoveEntity deletes the component from an entity
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// Entities returns a copy of all entities with this component type
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.components)
}

// Clear removes all components from the store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}

// Range calls fn for every entity/component pair. The iteration order is
// the component insertion order. fn must not mutate the store.
func (s *Store[T]) Range(fn func(e core.Entity, val T)) {
	s.mu.RLock()
	entities := make([]core.Entity, len(s.entities))
	copy(entities, s.entities)
	s.mu.RUnlock()

	for _, e := range entities {
		s.mu.RLock()
		val, ok := s.components[e]
		s.mu.RUnlock()
		if ok {
			fn(e, val)
		}
	}
}
