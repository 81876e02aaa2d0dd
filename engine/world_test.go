package engine

import (
	"testing"
)

type velocity struct {
	X, Y float64
}

type health struct {
	HP int
}

func TestStoreSetGetRemove(t *testing.T) {
	w := NewWorld()
	velocities := GetStore[velocity](w)

	e := w.CreateEntity()
	velocities.Set(e, velocity{X: 1, Y: 2})

	v, ok := velocities.Get(e)
	if !ok || v.X != 1 || v.Y != 2 {
		t.Fatalf("Get = %+v ok=%v, want {1 2} true", v, ok)
	}

	velocities.RemoveEntity(e)
	if velocities.Has(e) {
		t.Error("component still present after RemoveEntity")
	}
}

func TestGetStoreReturnsSameStore(t *testing.T) {
	w := NewWorld()
	a := GetStore[velocity](w)
	b := GetStore[velocity](w)
	if a != b {
		t.Error("GetStore returned different stores for same type")
	}
	if GetStore[health](w) == nil {
		t.Error("GetStore for second type returned nil")
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	velocities := GetStore[velocity](w)
	healths := GetStore[health](w)

	e := w.CreateEntity()
	velocities.Set(e, velocity{X: 3})
	healths.Set(e, health{HP: 10})

	w.DestroyEntity(e)
	if velocities.Has(e) || healths.Has(e) {
		t.Error("components survived DestroyEntity")
	}
}

func TestRunFrameStageOrdering(t *testing.T) {
	w := NewWorld()
	var order []Stage

	record := func(s Stage) SystemFunc {
		return func(*World) { order = append(order, s) }
	}
	w.AddSystem(StageLast, record(StageLast))
	w.AddSystem(StageFirst, record(StageFirst))
	w.AddSystem(StageUpdate, record(StageUpdate))
	w.AddSystem(StagePreUpdate, record(StagePreUpdate))
	w.AddSystem(StageDraw, record(StageDraw))
	w.AddSystem(StageStart, record(StageStart))

	w.RunFrame()

	want := []Stage{StageStart, StageFirst, StagePreUpdate, StageUpdate, StageDraw, StageLast}
	if len(order) != len(want) {
		t.Fatalf("ran %d stages, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("stage %d = %v, want %v", i, order[i], want[i])
		}
	}

	// Start must not run again
	order = order[:0]
	w.RunFrame()
	for _, s := range order {
		if s == StageStart {
			t.Error("StageStart ran on a later frame")
		}
	}
}

func TestResourceStoreRoundTrip(t *testing.T) {
	rs := NewResourceStore()

	tr := &TimeResource{FrameNumber: 7}
	AddResource(rs, tr)

	got, ok := GetResource[*TimeResource](rs)
	if !ok || got.FrameNumber != 7 {
		t.Fatalf("GetResource = %+v ok=%v", got, ok)
	}

	if _, ok := GetResource[*WindowResource](rs); ok {
		t.Error("GetResource returned ok for unregistered type")
	}
}

func TestMustGetResourcePanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGetResource did not panic for missing resource")
		}
	}()
	MustGetResource[*WindowResource](NewResourceStore())
}
