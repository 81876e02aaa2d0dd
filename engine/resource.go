package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/bella-project/bella/core"
)

// ResourceStore is a thread-safe container for singleton world resources.
// It lets systems access shared data (time, input, scenes) without
// coupling to the App; there are no ambient globals.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store
// T should be a pointer type so systems share one mutable instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (time, input) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(&target).Elem().String())
	}
	return res
}

// --- Core resources ---

// TimeResource exposes the frame clock to systems
// It is updated in place by the time system at the start of every frame,
// before any other system runs
type TimeResource struct {
	// GameTime is the accumulated virtual time since world start
	GameTime time.Duration

	// RealTime is the wall-clock time of the current frame's tick
	RealTime time.Time

	// DeltaTime is the virtual duration since the last frame
	DeltaTime time.Duration

	// DeltaSeconds is DeltaTime as float seconds, cached by the clock
	DeltaSeconds float64

	// FrameNumber is the current frame count
	FrameNumber int64
}

// WindowResource holds the observable window state for systems
type WindowResource struct {
	// Width and Height are the drawable surface size in cells
	Width, Height int
}

// Resolution returns the surface size as a vector in scene space
func (w *WindowResource) Resolution() core.Vec2 {
	return core.Vec2{X: float64(w.Width), Y: float64(w.Height)}
}
