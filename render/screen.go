package render

import "github.com/gdamore/tcell/v2"

// Flush writes the whole buffer to the screen and shows it. The buffer
// is repainted from scratch every frame, so a full write is the simplest
// correct submission.
func Flush(buf *Buffer, screen tcell.Screen, mode ColorMode) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell, _ := buf.Get(x, y)
			style := tcell.StyleDefault.
				Foreground(ToTcell(cell.Fg, mode)).
				Background(ToTcell(cell.Bg, mode))
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}
