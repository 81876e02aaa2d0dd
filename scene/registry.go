package scene

import (
	"sort"
	"sync"

	"github.com/bella-project/bella/asset"
	"github.com/bella-project/bella/core"
)

// Registry is the per-world root of all named scenes. Scene IDs are
// assigned monotonically at creation and define the merge order for
// rendering, so stacked sub-scenes layer deterministically. It also
// carries the asset server and the current surface resolution, mirroring
// how draw systems consume all three together.
type Registry struct {
	mu         sync.RWMutex
	maxSceneID int
	scenes     map[int]*Scene
	names      map[string]int
	assets     *asset.Server
	resolution core.Vec2
}

// NewRegistry creates an empty scene registry
func NewRegistry() *Registry {
	return &Registry{
		scenes: make(map[int]*Scene),
		names:  make(map[string]int),
		assets: asset.NewServer(),
	}
}

// NewScene registers an empty scene under name and returns it. Creating
// a second scene with an existing name re-points the name at a fresh
// scene; the old scene stops rendering once unreferenced.
func (r *Registry) NewScene(name string) *Scene {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.maxSceneID++
	s := New()
	if old, ok := r.names[name]; ok {
		delete(r.scenes, old)
	}
	r.scenes[r.maxSceneID] = s
	r.names[name] = r.maxSceneID
	return s
}

// Scene returns the scene registered under name. The second result is
// false when no such scene exists; an absent scene is an explicit miss,
// never a panic.
func (r *Registry) Scene(name string) (*Scene, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.names[name]
	if !ok {
		return nil, false
	}
	s, ok := r.scenes[id]
	return s, ok
}

// ResetAll clears every registered scene. Runs once per frame before
// the draw systems repopulate them.
func (r *Registry) ResetAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.scenes {
		s.Reset()
	}
}

// Ordered returns all scenes in ascending ID order, the merge order for
// the frame's rendering pass
func (r *Registry) Ordered() []*Scene {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.scenes))
	for id := range r.scenes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]*Scene, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.scenes[id])
	}
	return out
}

// Count returns the number of registered scenes
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.scenes)
}

// Assets returns the registry's asset server
func (r *Registry) Assets() *asset.Server {
	return r.assets
}

// Resolution returns the current drawable surface size in scene units
func (r *Registry) Resolution() core.Vec2 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolution
}

// SetResolution records the drawable surface size; called on resize
func (r *Registry) SetResolution(x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolution = core.Vec2{X: x, Y: y}
}
