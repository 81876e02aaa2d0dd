package scene

import (
	"math"

	"github.com/bella-project/bella/core"
)

// Shape is a drawable outline in its own local space. The renderer
// samples shapes through their signed distance: negative inside,
// positive outside, zero on the outline. Shapes without an interior
// (Line) never report negative distances and only render when stroked.
type Shape interface {
	// Bounds returns the local-space bounding box of the outline
	Bounds() core.Rect
	// SignedDistance returns the signed distance from p to the outline
	SignedDistance(p core.Vec2) float64
}

// Circle is a circle around a center point
type Circle struct {
	Center core.Vec2
	Radius float64
}

// NewCircle creates a circle
func NewCircle(center core.Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Bounds implements Shape
func (c Circle) Bounds() core.Rect {
	return core.NewRect(c.Center.X-c.Radius, c.Center.Y-c.Radius,
		c.Center.X+c.Radius, c.Center.Y+c.Radius)
}

// SignedDistance implements Shape
func (c Circle) SignedDistance(p core.Vec2) float64 {
	return p.Sub(c.Center).Length() - c.Radius
}

// RoundedRect is a rectangle with rounded corners, positioned by its
// top-left corner
type RoundedRect struct {
	X, Y          float64
	Width, Height float64
	Corner        float64
}

// NewRoundedRect creates a rounded rectangle
func NewRoundedRect(x, y, width, height, corner float64) RoundedRect {
	return RoundedRect{X: x, Y: y, Width: width, Height: height, Corner: corner}
}

// Bounds implements Shape
func (r RoundedRect) Bounds() core.Rect {
	return core.NewRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// SignedDistance implements Shape
func (r RoundedRect) SignedDistance(p core.Vec2) float64 {
	corner := r.Corner
	if max := math.Min(r.Width, r.Height) / 2; corner > max {
		corner = max
	}

	center := core.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
	half := core.Vec2{X: r.Width/2 - corner, Y: r.Height/2 - corner}

	q := p.Sub(center)
	d := core.Vec2{X: math.Abs(q.X) - half.X, Y: math.Abs(q.Y) - half.Y}

	outside := core.Vec2{X: math.Max(d.X, 0), Y: math.Max(d.Y, 0)}.Length()
	inside := math.Min(math.Max(d.X, d.Y), 0)
	return outside + inside - corner
}

// Ellipse is an axis pair around a center, optionally rotated
type Ellipse struct {
	Center   core.Vec2
	Radii    core.Vec2
	Rotation float64 // radians
}

// NewEllipse creates an ellipse
func NewEllipse(center, radii core.Vec2, rotation float64) Ellipse {
	return Ellipse{Center: center, Radii: radii, Rotation: rotation}
}

// Bounds implements Shape
func (e Ellipse) Bounds() core.Rect {
	// Conservative: box of the rotated ellipse's circumscribed circle
	r := math.Max(e.Radii.X, e.Radii.Y)
	return core.NewRect(e.Center.X-r, e.Center.Y-r, e.Center.X+r, e.Center.Y+r)
}

// SignedDistance implements Shape
// Scaled-radial approximation; exact enough for cell-resolution sampling
func (e Ellipse) SignedDistance(p core.Vec2) float64 {
	if e.Radii.X <= 0 || e.Radii.Y <= 0 {
		return math.Inf(1)
	}

	q := p.Sub(e.Center)
	if e.Rotation != 0 {
		sin, cos := math.Sincos(-e.Rotation)
		q = core.Vec2{X: q.X*cos - q.Y*sin, Y: q.X*sin + q.Y*cos}
	}

	k := math.Hypot(q.X/e.Radii.X, q.Y/e.Radii.Y)
	return (k - 1) * math.Min(e.Radii.X, e.Radii.Y)
}

// Line is a segment between two points. It has no interior: filling a
// line renders nothing, stroke it instead.
type Line struct {
	P0, P1 core.Vec2
}

// NewLine creates a line segment
func NewLine(p0, p1 core.Vec2) Line {
	return Line{P0: p0, P1: p1}
}

// Bounds implements Shape
func (l Line) Bounds() core.Rect {
	return core.NewRect(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}

// SignedDistance implements Shape
func (l Line) SignedDistance(p core.Vec2) float64 {
	seg := l.P1.Sub(l.P0)
	lenSq := seg.Dot(seg)
	if lenSq == 0 {
		return p.Sub(l.P0).Length()
	}

	t := p.Sub(l.P0).Dot(seg) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := l.P0.Add(seg.Scale(t))
	return p.Sub(closest).Length()
}
