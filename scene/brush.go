package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bella-project/bella/core"
)

type brushKind int

const (
	brushSolid brushKind = iota
	brushLinearGradient
)

// Brush produces a color for every point of a filled or stroked shape.
// Solid brushes return one color everywhere; linear gradients blend two
// stops along an axis in scene space.
type Brush struct {
	kind brushKind

	solid core.Color

	from, to   core.Vec2
	start, end core.Color
}

// Solid creates a single-color brush
func Solid(c core.Color) Brush {
	return Brush{kind: brushSolid, solid: c}
}

// LinearGradient creates a two-stop gradient brush along the axis from
// from to to, in scene space. Points before the axis start get the start
// color, points past the end get the end color.
func LinearGradient(from, to core.Vec2, start, end core.Color) Brush {
	return Brush{
		kind:  brushLinearGradient,
		from:  from,
		to:    to,
		start: start,
		end:   end,
	}
}

// ColorAt evaluates the brush at a point in scene space
func (b Brush) ColorAt(p core.Vec2) core.Color {
	switch b.kind {
	case brushLinearGradient:
		axis := b.to.Sub(b.from)
		lenSq := axis.Dot(axis)
		if lenSq == 0 {
			return b.start
		}
		t := p.Sub(b.from).Dot(axis) / lenSq
		if t <= 0 {
			return b.start
		}
		if t >= 1 {
			return b.end
		}
		return blend(b.start, b.end, t)
	default:
		return b.solid
	}
}

// blend interpolates two colors perceptually (Luv space avoids the muddy
// midpoints of naive RGB lerp)
func blend(a, c core.Color, t float64) core.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := ca.BlendLuv(cb, t).Clamped().RGB255()
	return core.Color{R: r, G: g, B: b}
}

// Stroke describes outline drawing parameters
type Stroke struct {
	// Width is the stroke thickness in scene units
	Width float64
}

// NewStroke creates a stroke of the given width
func NewStroke(width float64) Stroke {
	return Stroke{Width: width}
}
