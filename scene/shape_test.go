package scene

import (
	"math"
	"testing"

	"github.com/bella-project/bella/core"
)

func TestCircleSignedDistance(t *testing.T) {
	c := NewCircle(core.Vec2{X: 10, Y: 10}, 5)

	if sd := c.SignedDistance(core.Vec2{X: 10, Y: 10}); sd != -5 {
		t.Errorf("center sd = %v, want -5", sd)
	}
	if sd := c.SignedDistance(core.Vec2{X: 15, Y: 10}); sd != 0 {
		t.Errorf("edge sd = %v, want 0", sd)
	}
	if sd := c.SignedDistance(core.Vec2{X: 20, Y: 10}); sd != 5 {
		t.Errorf("outside sd = %v, want 5", sd)
	}
}

func TestRoundedRectSignedDistance(t *testing.T) {
	r := NewRoundedRect(0, 0, 10, 6, 1)

	if sd := r.SignedDistance(core.Vec2{X: 5, Y: 3}); sd >= 0 {
		t.Errorf("center sd = %v, want negative", sd)
	}
	if sd := r.SignedDistance(core.Vec2{X: 20, Y: 3}); sd <= 0 {
		t.Errorf("outside sd = %v, want positive", sd)
	}
	// Flat edge midpoint sits on the outline
	if sd := r.SignedDistance(core.Vec2{X: 5, Y: 0}); math.Abs(sd) > 1e-9 {
		t.Errorf("edge sd = %v, want 0", sd)
	}
	// Square corner point lies outside the rounded corner
	if sd := r.SignedDistance(core.Vec2{X: 0, Y: 0}); sd <= 0 {
		t.Errorf("corner sd = %v, want positive", sd)
	}
}

func TestEllipseSignedDistance(t *testing.T) {
	e := NewEllipse(core.Vec2{X: 0, Y: 0}, core.Vec2{X: 4, Y: 2}, 0)

	if sd := e.SignedDistance(core.Vec2{}); sd >= 0 {
		t.Errorf("center sd = %v, want negative", sd)
	}
	if sd := e.SignedDistance(core.Vec2{X: 4, Y: 0}); math.Abs(sd) > 1e-9 {
		t.Errorf("vertex sd = %v, want 0", sd)
	}
	if sd := e.SignedDistance(core.Vec2{X: 0, Y: 3}); sd <= 0 {
		t.Errorf("outside sd = %v, want positive", sd)
	}
}

func TestEllipseRotation(t *testing.T) {
	// Rotated 90°: x radius becomes vertical
	e := NewEllipse(core.Vec2{}, core.Vec2{X: 4, Y: 1}, math.Pi/2)

	if sd := e.SignedDistance(core.Vec2{X: 0, Y: 3.9}); sd >= 0 {
		t.Errorf("point inside rotated ellipse sd = %v, want negative", sd)
	}
	if sd := e.SignedDistance(core.Vec2{X: 3.9, Y: 0}); sd <= 0 {
		t.Errorf("point outside rotated ellipse sd = %v, want positive", sd)
	}
}

func TestLineDistance(t *testing.T) {
	l := NewLine(core.Vec2{X: 0, Y: 0}, core.Vec2{X: 10, Y: 0})

	if sd := l.SignedDistance(core.Vec2{X: 5, Y: 0}); sd != 0 {
		t.Errorf("on-segment sd = %v, want 0", sd)
	}
	if sd := l.SignedDistance(core.Vec2{X: 5, Y: 3}); sd != 3 {
		t.Errorf("perpendicular sd = %v, want 3", sd)
	}
	// Beyond the endpoint, distance is to the endpoint
	if sd := l.SignedDistance(core.Vec2{X: 13, Y: 4}); sd != 5 {
		t.Errorf("endpoint sd = %v, want 5", sd)
	}
	// A line never reports an interior
	if sd := l.SignedDistance(core.Vec2{X: -1, Y: -1}); sd < 0 {
		t.Errorf("line sd = %v, negative interior is impossible", sd)
	}
}
