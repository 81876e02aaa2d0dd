// Package scene models drawable content as ordered lists of vector
// draw commands, grouped into named sub-scenes that the frame loop
// merges and submits to the renderer once per frame.
package scene

import "github.com/bella-project/bella/core"

// Command is one queued draw operation. A command either paints a shape
// (fill and/or stroke) or a text run.
type Command struct {
	Shape     Shape
	Brush     Brush
	Transform Transform

	// Filled paints the shape interior
	Filled bool
	// Stroke paints the outline when Width > 0
	Stroke Stroke

	// Text, when non-empty, makes this a text run command anchored at
	// the transform's output origin; Shape is ignored
	Text string
}

// Scene is an ordered collection of draw commands submitted for one
// rendering pass. Not safe for concurrent use; scenes belong to the
// frame loop goroutine.
type Scene struct {
	commands []Command
}

// New creates an empty scene
func New() *Scene {
	return &Scene{commands: make([]Command, 0, 32)}
}

// Reset clears all queued commands, retaining capacity. The frame loop
// resets every scene before the draw systems run.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
}

// Fill queues a filled shape
func (s *Scene) Fill(brush Brush, shape Shape, transform Transform) {
	s.commands = append(s.commands, Command{
		Shape:     shape,
		Brush:     brush,
		Transform: transform,
		Filled:    true,
	})
}

// Stroke queues a shape outline
func (s *Scene) Stroke(stroke Stroke, brush Brush, shape Shape, transform Transform) {
	s.commands = append(s.commands, Command{
		Shape:     shape,
		Brush:     brush,
		Transform: transform,
		Stroke:    stroke,
	})
}

// FillText queues a text run anchored at the transform's output origin
func (s *Scene) FillText(text string, brush Brush, transform Transform) {
	if text == "" {
		return
	}
	s.commands = append(s.commands, Command{
		Brush:     brush,
		Transform: transform,
		Text:      text,
	})
}

// FillCircle queues a filled circle at the transform origin
func (s *Scene) FillCircle(brush Brush, radius float64, transform Transform) {
	s.Fill(brush, NewCircle(core.Vec2{}, radius), transform)
}

// FillRoundedRect queues a filled rounded rectangle centered on the
// transform origin
func (s *Scene) FillRoundedRect(brush Brush, size core.Vec2, corner float64, transform Transform) {
	s.Fill(brush, NewRoundedRect(-size.X/2, -size.Y/2, size.X, size.Y, corner), transform)
}

// StrokeCircle queues a circle outline at the transform origin
func (s *Scene) StrokeCircle(stroke Stroke, brush Brush, radius float64, transform Transform) {
	s.Stroke(stroke, brush, NewCircle(core.Vec2{}, radius), transform)
}

// StrokeRoundedRect queues a rounded rectangle outline centered on the
// transform origin
func (s *Scene) StrokeRoundedRect(stroke Stroke, brush Brush, size core.Vec2, corner float64, transform Transform) {
	s.Stroke(stroke, brush, NewRoundedRect(-size.X/2, -size.Y/2, size.X, size.Y, corner), transform)
}

// Append merges another scene's commands onto this one in order
func (s *Scene) Append(other *Scene) {
	if other == nil {
		return
	}
	s.commands = append(s.commands, other.commands...)
}

// Commands returns the queued commands in submission order. The slice
// is owned by the scene; callers must not retain it past Reset.
func (s *Scene) Commands() []Command {
	return s.commands
}

// Len returns the number of queued commands
func (s *Scene) Len() int {
	return len(s.commands)
}
