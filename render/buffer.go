// Package render rasterizes merged scenes into a terminal cell grid and
// flushes the grid to a tcell screen once per frame.
package render

import "github.com/bella-project/bella/core"

// Cell is a single rendered terminal cell. Fills paint the background
// color; text runs set the rune and foreground, compositing over
// whatever fill is already there.
type Cell struct {
	Rune rune
	Fg   core.Color
	Bg   core.Color
}

// defaultCell is the cleared state of every cell
var defaultCell = Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorBlack}

// Buffer is a width×height grid of cells, reset and fully repainted
// every frame
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells
func (b *Buffer) Height() int {
	return b.height
}

// Reset clears every cell to the default state
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = defaultCell
	}
}

// Resize resizes the buffer, preserving existing content where possible
func (b *Buffer) Resize(newWidth, newHeight int) {
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	cells := make([]Cell, newWidth*newHeight)
	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				cells[y*newWidth+x] = b.cells[y*b.width+x]
			} else {
				cells[y*newWidth+x] = defaultCell
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.cells = cells
}

// Get returns the cell at the given position; ok is false out of bounds
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Set replaces the cell at the given position, ignoring out-of-bounds
// writes
func (b *Buffer) Set(x, y int, cell Cell) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.cells[y*b.width+x] = cell
	return true
}

// PaintBg sets only the background color of a cell, keeping rune and
// foreground. Used by shape fills and strokes.
func (b *Buffer) PaintBg(x, y int, bg core.Color) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.cells[y*b.width+x].Bg = bg
	return true
}

// PaintRune sets the rune and foreground of a cell, keeping the
// background. Used by text runs.
func (b *Buffer) PaintRune(x, y int, r rune, fg core.Color) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.cells[y*b.width+x].Rune = r
	b.cells[y*b.width+x].Fg = fg
	return true
}
