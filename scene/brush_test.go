package scene

import (
	"testing"

	"github.com/bella-project/bella/core"
)

func TestSolidBrushIsUniform(t *testing.T) {
	b := Solid(core.ColorGreen)
	for _, p := range []core.Vec2{{}, {X: 100, Y: -50}} {
		if got := b.ColorAt(p); got != core.ColorGreen {
			t.Errorf("ColorAt(%+v) = %+v, want %+v", p, got, core.ColorGreen)
		}
	}
}

func TestLinearGradientEndpoints(t *testing.T) {
	b := LinearGradient(core.Vec2{X: 0}, core.Vec2{X: 10}, core.ColorBlack, core.ColorWhite)

	if got := b.ColorAt(core.Vec2{X: 0}); got != core.ColorBlack {
		t.Errorf("start = %+v, want black", got)
	}
	if got := b.ColorAt(core.Vec2{X: 10}); got != core.ColorWhite {
		t.Errorf("end = %+v, want white", got)
	}
	// Clamped outside the axis
	if got := b.ColorAt(core.Vec2{X: -5}); got != core.ColorBlack {
		t.Errorf("before start = %+v, want black", got)
	}
	if got := b.ColorAt(core.Vec2{X: 25}); got != core.ColorWhite {
		t.Errorf("past end = %+v, want white", got)
	}
}

func TestLinearGradientMidpointIsBetween(t *testing.T) {
	b := LinearGradient(core.Vec2{X: 0}, core.Vec2{X: 10}, core.ColorBlack, core.ColorWhite)

	mid := b.ColorAt(core.Vec2{X: 5})
	if mid == core.ColorBlack || mid == core.ColorWhite {
		t.Errorf("midpoint = %+v, want a blend of the stops", mid)
	}
}

func TestDegenerateGradientFallsBackToStart(t *testing.T) {
	p := core.Vec2{X: 3, Y: 3}
	b := LinearGradient(p, p, core.ColorRed, core.ColorBlue)
	if got := b.ColorAt(core.Vec2{X: 50, Y: 2}); got != core.ColorRed {
		t.Errorf("degenerate gradient = %+v, want start color", got)
	}
}
