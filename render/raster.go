package render

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/bella-project/bella/core"
	"github.com/bella-project/bella/scene"
)

// Rasterizer interprets scene draw commands into buffer cells.
// Scene space maps 1:1 onto the cell grid; cell (x, y) is sampled at
// its center (x+0.5, y+0.5).
type Rasterizer struct {
	buf *Buffer
}

// NewRasterizer creates a rasterizer painting into buf
func NewRasterizer(buf *Buffer) *Rasterizer {
	return &Rasterizer{buf: buf}
}

// Buffer returns the target buffer
func (rz *Rasterizer) Buffer() *Buffer {
	return rz.buf
}

// DrawScene rasterizes every command of a scene in submission order
func (rz *Rasterizer) DrawScene(s *scene.Scene) {
	for _, cmd := range s.Commands() {
		if cmd.Text != "" {
			rz.drawText(cmd)
			continue
		}
		rz.drawShape(cmd)
	}
}

// drawShape samples the shape's signed distance across the transformed
// bounding box. Fills paint where the distance is negative, strokes
// paint a band of the stroke width around the outline.
func (rz *Rasterizer) drawShape(cmd scene.Command) {
	if cmd.Shape == nil {
		return
	}
	if !cmd.Filled && cmd.Stroke.Width <= 0 {
		return
	}

	inv, ok := cmd.Transform.Invert()
	if !ok {
		return // degenerate transform collapses the shape to nothing
	}

	local := cmd.Shape.Bounds()
	if cmd.Stroke.Width > 0 {
		local = local.Expand(cmd.Stroke.Width / 2)
	}
	// Half-cell margin so outline bands on the box edge are not clipped
	local = local.Expand(0.5)

	minX, minY, maxX, maxY := transformedCellBounds(local, cmd.Transform, rz.buf)
	halfStroke := cmd.Stroke.Width / 2

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			p := core.Vec2{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
			sd := cmd.Shape.SignedDistance(inv.Apply(p))

			covered := false
			if cmd.Filled && sd <= 0 {
				covered = true
			}
			if !covered && cmd.Stroke.Width > 0 && math.Abs(sd) <= halfStroke {
				covered = true
			}
			if covered {
				rz.buf.PaintBg(cx, cy, cmd.Brush.ColorAt(p))
			}
		}
	}
}

// drawText anchors a text run at the transform's output origin and
// advances by display width per rune; newlines start the next row at
// the anchor column
func (rz *Rasterizer) drawText(cmd scene.Command) {
	origin := cmd.Transform.Apply(core.Vec2{})
	startX := int(math.Floor(origin.X))
	x := startX
	y := int(math.Floor(origin.Y))

	for _, r := range cmd.Text {
		if r == '\n' {
			x = startX
			y++
			continue
		}

		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p := core.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		rz.buf.PaintRune(x, y, r, cmd.Brush.ColorAt(p))
		x += w
	}
}

// transformedCellBounds maps a local-space rect through a transform and
// returns the covered cell index range clamped to the buffer
func transformedCellBounds(local core.Rect, tf scene.Transform, buf *Buffer) (minX, minY, maxX, maxY int) {
	corners := [4]core.Vec2{
		{X: local.Min.X, Y: local.Min.Y},
		{X: local.Max.X, Y: local.Min.Y},
		{X: local.Min.X, Y: local.Max.Y},
		{X: local.Max.X, Y: local.Max.Y},
	}

	first := tf.Apply(corners[0])
	lo, hi := first, first
	for _, c := range corners[1:] {
		p := tf.Apply(c)
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}

	minX = clampInt(int(math.Floor(lo.X)), 0, buf.Width()-1)
	minY = clampInt(int(math.Floor(lo.Y)), 0, buf.Height()-1)
	maxX = clampInt(int(math.Ceil(hi.X)), 0, buf.Width()-1)
	maxY = clampInt(int(math.Ceil(hi.Y)), 0, buf.Height()-1)
	return minX, minY, maxX, maxY
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
