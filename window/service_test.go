package window

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bella-project/bella/input"
	"github.com/bella-project/bella/status"
)

func newTestService() (*Service, *input.Latch, *status.Registry) {
	reg := status.NewRegistry()
	s := NewService(nil, reg)
	l := input.NewLatch()
	s.AttachLatch(l)
	return s, l, reg
}

func TestKeyEventSynthesizesTap(t *testing.T) {
	s, l, _ := newTestService()

	s.handleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	l.LatchFrame()

	if !l.IsKeyDown(input.KeyX) {
		t.Error("expected down transition for tapped key")
	}
	if !l.IsKeyUp(input.KeyX) {
		t.Error("expected up transition for tapped key")
	}
	if l.IsKeyPressed(input.KeyX) {
		t.Error("tapped key should not remain pressed")
	}
}

func TestUnknownKeyDroppedAndCounted(t *testing.T) {
	s, l, reg := newTestService()

	s.handleKey(tcell.NewEventKey(tcell.KeyRune, '€', tcell.ModNone))
	s.handleKey(tcell.NewEventKey(tcell.KeyRune, '€', tcell.ModNone))
	l.LatchFrame()

	if got := reg.Ints.Get("input.dropped").Load(); got != 2 {
		t.Errorf("dropped count = %d, want 2", got)
	}
	if n := l.PendingEvents(); n != 0 {
		t.Errorf("latch received %d events for unmapped key", n)
	}
}

func TestCtrlCRequestsClose(t *testing.T) {
	s, _, _ := newTestService()

	s.handleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone))

	select {
	case <-s.Closed():
	default:
		t.Fatal("Ctrl+C did not request close")
	}
}

func TestMouseButtonTransitions(t *testing.T) {
	s, l, _ := newTestService()

	s.handleMouse(tcell.NewEventMouse(4, 7, tcell.Button1, tcell.ModNone))
	l.LatchFrame()

	if !l.IsButtonDown(input.ButtonLeft) {
		t.Error("expected left button down transition")
	}
	if !l.IsButtonPressed(input.ButtonLeft) {
		t.Error("expected left button pressed while held")
	}
	if pos, ok := l.CursorPosition(); !ok || pos.X != 4 || pos.Y != 7 {
		t.Errorf("cursor = %v, %v; want (4,7), true", pos, ok)
	}

	// Held, no repeated transition
	s.handleMouse(tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone))
	l.LatchFrame()
	if l.IsButtonDown(input.ButtonLeft) {
		t.Error("held button produced a second down transition")
	}
	if !l.IsButtonPressed(input.ButtonLeft) {
		t.Error("held button lost pressed state")
	}

	// Release
	s.handleMouse(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone))
	l.LatchFrame()
	if !l.IsButtonUp(input.ButtonLeft) {
		t.Error("expected up transition on release")
	}
	if l.IsButtonPressed(input.ButtonLeft) {
		t.Error("released button still pressed")
	}
}

func TestResizeKeepsNewest(t *testing.T) {
	s, _, _ := newTestService()

	s.handleResize(tcell.NewEventResize(80, 24))
	s.handleResize(tcell.NewEventResize(120, 40))

	select {
	case size := <-s.Resized():
		if size.X != 120 || size.Y != 40 {
			t.Errorf("size = %v, want (120,40)", size)
		}
	default:
		t.Fatal("no resize delivered")
	}

	select {
	case size := <-s.Resized():
		t.Errorf("stale resize %v still pending", size)
	default:
	}
}
