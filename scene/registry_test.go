package scene

import (
	"testing"

	"github.com/bella-project/bella/core"
)

func TestRegistryNamedLookup(t *testing.T) {
	r := NewRegistry()
	s := r.NewScene("hud")

	got, ok := r.Scene("hud")
	if !ok || got != s {
		t.Fatalf("Scene(hud) = %v ok=%v, want the created scene", got, ok)
	}

	if _, ok := r.Scene("missing"); ok {
		t.Error("lookup of unregistered scene returned ok")
	}
}

func TestRegistryMergeOrderIsCreationOrder(t *testing.T) {
	r := NewRegistry()
	bg := r.NewScene("background")
	fg := r.NewScene("foreground")
	hud := r.NewScene("hud")

	ordered := r.Ordered()
	if len(ordered) != 3 {
		t.Fatalf("Ordered returned %d scenes, want 3", len(ordered))
	}
	if ordered[0] != bg || ordered[1] != fg || ordered[2] != hud {
		t.Error("Ordered does not follow creation order")
	}
}

func TestRegistryRenameReplacesScene(t *testing.T) {
	r := NewRegistry()
	old := r.NewScene("main")
	fresh := r.NewScene("main")

	if old == fresh {
		t.Error("NewScene with existing name returned old scene")
	}
	got, ok := r.Scene("main")
	if !ok || got != fresh {
		t.Error("name does not point at the fresh scene")
	}
	if r.Count() != 1 {
		t.Errorf("replaced scene still registered, count = %d", r.Count())
	}
}

func TestRegistryResetAll(t *testing.T) {
	r := NewRegistry()
	s := r.NewScene("main")
	s.FillCircle(Solid(core.ColorRed), 3, Identity())

	if s.Len() != 1 {
		t.Fatalf("scene has %d commands, want 1", s.Len())
	}
	r.ResetAll()
	if s.Len() != 0 {
		t.Errorf("scene has %d commands after ResetAll, want 0", s.Len())
	}
}

func TestRegistryResolution(t *testing.T) {
	r := NewRegistry()
	r.SetResolution(120, 40)

	res := r.Resolution()
	if res.X != 120 || res.Y != 40 {
		t.Errorf("resolution = %+v, want {120 40}", res)
	}
}

func TestSceneAppend(t *testing.T) {
	a := New()
	b := New()
	a.FillCircle(Solid(core.ColorRed), 1, Identity())
	b.FillCircle(Solid(core.ColorBlue), 2, Identity())
	b.FillText("score", Solid(core.ColorWhite), Identity())

	a.Append(b)
	if a.Len() != 3 {
		t.Errorf("merged scene has %d commands, want 3", a.Len())
	}
	a.Append(nil)
	if a.Len() != 3 {
		t.Error("Append(nil) modified the scene")
	}
}

func TestFillTextIgnoresEmptyString(t *testing.T) {
	s := New()
	s.FillText("", Solid(core.ColorWhite), Identity())
	if s.Len() != 0 {
		t.Error("empty text was queued")
	}
}
