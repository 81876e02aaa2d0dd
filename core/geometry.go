package core

import "math"

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Vec2 represents a 2D vector in scene space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the euclidean length of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle in scene space
type Rect struct {
	Min, Max Vec2
}

// NewRect creates a Rect from any two corner points
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Vec2{math.Min(x0, x1), math.Min(y0, y1)},
		Max: Vec2{math.Max(x0, x1), math.Max(y0, y1)},
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Union returns the smallest Rect containing both r and o
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Expand returns r grown by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - d, r.Min.Y - d},
		Max: Vec2{r.Max.X + d, r.Max.Y + d},
	}
}
