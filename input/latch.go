// Package input converts an asynchronous stream of key and pointer
// notifications into a deterministic per-frame observable state.
//
// Producers (the windowing event loop) push raw codes from any goroutine
// at any time; a single consumer drains the queues exactly once per
// frame, before game systems run, and game systems then query stable
// down/up/pressed sets for the rest of the frame.
package input

import (
	"sync/atomic"

	"github.com/bella-project/bella/core"
)

// Latch is the per-world input resource.
//
// The queues are the only cross-goroutine state; the per-frame sets are
// exclusively owned by the consumer goroutine and must never be touched
// by producers.
type Latch struct {
	keyDownQueue    ring[Key]
	keyUpQueue      ring[Key]
	buttonDownQueue ring[Button]
	buttonUpQueue   ring[Button]
	cursorCell      atomic.Pointer[core.Point] // single-slot, most recent wins

	// Transition sets, cleared and repopulated every LatchFrame
	keyDown    []Key
	keyUp      []Key
	buttonDown []Button
	buttonUp   []Button

	// Held sets, persistent across frames, mutated only by LatchFrame
	keyPress    []Key
	buttonPress []Button

	cursor      core.Point
	cursorKnown bool
}

// NewLatch creates an empty input latch
func NewLatch() *Latch {
	return &Latch{
		keyDown:     make([]Key, 0, 8),
		keyUp:       make([]Key, 0, 8),
		keyPress:    make([]Key, 0, 8),
		buttonDown:  make([]Button, 0, 4),
		buttonUp:    make([]Button, 0, 4),
		buttonPress: make([]Button, 0, 4),
	}
}

// --- Producer side: callable from any goroutine, non-blocking ---

// NotifyKeyDown queues a key press notification
func (l *Latch) NotifyKeyDown(k Key) {
	l.keyDownQueue.Push(k)
}

// NotifyKeyUp queues a key release notification
func (l *Latch) NotifyKeyUp(k Key) {
	l.keyUpQueue.Push(k)
}

// NotifyButtonDown queues a pointer button press notification
func (l *Latch) NotifyButtonDown(b Button) {
	l.buttonDownQueue.Push(b)
}

// NotifyButtonUp queues a pointer button release notification
func (l *Latch) NotifyButtonUp(b Button) {
	l.buttonUpQueue.Push(b)
}

// NotifyCursorMoved records the cursor position; only the most recent
// value survives until the next latch
func (l *Latch) NotifyCursorMoved(x, y int) {
	p := core.Point{X: x, Y: y}
	l.cursorCell.Store(&p)
}

// --- Consumer side: single goroutine, once per frame ---

// LatchFrame drains all queues into the per-frame sets. Down queues are
// drained before up queues, so a down and up of the same code queued
// within one frame is observable in both transition sets while leaving
// the held set untouched (a same-frame tap is a detectable event even at
// low frame rates).
func (l *Latch) LatchFrame() {
	l.keyDown = l.keyDown[:0]
	l.keyUp = l.keyUp[:0]
	l.buttonDown = l.buttonDown[:0]
	l.buttonUp = l.buttonUp[:0]

	l.keyDown = l.keyDownQueue.consume(l.keyDown)
	for _, k := range l.keyDown {
		if !containsKey(l.keyPress, k) {
			l.keyPress = append(l.keyPress, k)
		}
	}

	l.keyUp = l.keyUpQueue.consume(l.keyUp)
	for _, k := range l.keyUp {
		l.keyPress = removeKey(l.keyPress, k)
	}

	l.buttonDown = l.buttonDownQueue.consume(l.buttonDown)
	for _, b := range l.buttonDown {
		if !containsButton(l.buttonPress, b) {
			l.buttonPress = append(l.buttonPress, b)
		}
	}

	l.buttonUp = l.buttonUpQueue.consume(l.buttonUp)
	for _, b := range l.buttonUp {
		l.buttonPress = removeButton(l.buttonPress, b)
	}

	if p := l.cursorCell.Swap(nil); p != nil {
		l.cursor = *p
		l.cursorKnown = true
	}
}

// --- Queries: read-only, called by game systems after LatchFrame ---

// IsKeyDown reports whether the key transitioned down this frame
func (l *Latch) IsKeyDown(k Key) bool {
	return containsKey(l.keyDown, k)
}

// IsKeyUp reports whether the key transitioned up this frame
func (l *Latch) IsKeyUp(k Key) bool {
	return containsKey(l.keyUp, k)
}

// IsKeyPressed reports whether the key is currently held
func (l *Latch) IsKeyPressed(k Key) bool {
	return containsKey(l.keyPress, k)
}

// IsButtonDown reports whether the button transitioned down this frame
func (l *Latch) IsButtonDown(b Button) bool {
	return containsButton(l.buttonDown, b)
}

// IsButtonUp reports whether the button transitioned up this frame
func (l *Latch) IsButtonUp(b Button) bool {
	return containsButton(l.buttonUp, b)
}

// IsButtonPressed reports whether the button is currently held
func (l *Latch) IsButtonPressed(b Button) bool {
	return containsButton(l.buttonPress, b)
}

// CursorPosition returns the last known cursor position; ok is false
// until the first cursor notification has been latched
func (l *Latch) CursorPosition() (pos core.Point, ok bool) {
	return l.cursor, l.cursorKnown
}

// PendingEvents returns the approximate number of queued, unlatched
// notifications. Useful for diagnostics overlays.
func (l *Latch) PendingEvents() int {
	return l.keyDownQueue.Len() + l.keyUpQueue.Len() +
		l.buttonDownQueue.Len() + l.buttonUpQueue.Len()
}

func containsKey(s []Key, k Key) bool {
	for _, v := range s {
		if v == k {
			return true
		}
	}
	return false
}

func removeKey(s []Key, k Key) []Key {
	out := s[:0]
	for _, v := range s {
		if v != k {
			out = append(out, v)
		}
	}
	return out
}

func containsButton(s []Button, b Button) bool {
	for _, v := range s {
		if v == b {
			return true
		}
	}
	return false
}

func removeButton(s []Button, b Button) []Button {
	out := s[:0]
	for _, v := range s {
		if v != b {
			out = append(out, v)
		}
	}
	return out
}
