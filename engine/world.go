package engine

import (
	"reflect"
	"sync"

	"github.com/bella-project/bella/core"
)

// Stage identifies one of the fixed per-frame schedules. Stages run in
// declaration order every frame; StageStart runs once on the first frame.
// Ordering guarantee: the time system runs in StageFirst and the input
// latch in StagePreUpdate, so every StageUpdate system observes a ticked
// clock and a latched input state.
type Stage int

const (
	StageStart Stage = iota
	StageFirst
	StagePreUpdate
	StageUpdate
	StageDraw
	StageLast

	numStages
)

// SystemFunc is a scheduled function receiving the world it runs in.
// Systems access shared state through the world's resource store; no
// ambient globals exist.
type SystemFunc func(w *World)

// World contains all entities, their components, singleton resources
// and the per-frame schedules
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Resources holds singleton world resources (time, input, scenes)
	Resources *ResourceStore

	stores    map[reflect.Type]AnyStore
	schedules [numStages][]SystemFunc
	started   bool
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.RLock()
	stores := make([]AnyStore, 0, len(w.stores))
	for _, s := range w.stores {
		stores = append(stores, s)
	}
	w.mu.RUnlock()

	for _, s := range stores {
		s.RemoveEntity(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.stores {
		s.Clear()
	}
}

// GetStore returns the component store for type T, creating and
// registering it on first use. Call once during system construction;
// the pointer remains valid for the world's lifetime.
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()

	w.mu.RLock()
	if s, ok := w.stores[t]; ok {
		w.mu.RUnlock()
		return s.(*Store[T])
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	return s
}

// AddSystem appends a system to a stage's schedule. Within one stage
// systems run in registration order.
func (w *World) AddSystem(stage Stage, fn SystemFunc) {
	if stage < 0 || stage >= numStages {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.schedules[stage] = append(w.schedules[stage], fn)
}

// RunStage executes every system registered in a stage, in order
func (w *World) RunStage(stage Stage) {
	if stage < 0 || stage >= numStages {
		return
	}
	w.mu.RLock()
	systems := make([]SystemFunc, len(w.schedules[stage]))
	copy(systems, w.schedules[stage])
	w.mu.RUnlock()

	for _, fn := range systems {
		fn(w)
	}
}

// RunFrame executes one full frame of schedules. The start schedule runs
// exactly once, on the first frame.
func (w *World) RunFrame() {
	if !w.started {
		w.RunStage(StageStart)
		w.started = true
	}
	w.RunStage(StageFirst)
	w.RunStage(StagePreUpdate)
	w.RunStage(StageUpdate)
	w.RunStage(StageDraw)
	w.RunStage(StageLast)
}
