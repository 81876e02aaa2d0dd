package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bella-project/bella/core"
)

// ColorMode selects the terminal color depth used when flushing
type ColorMode int

const (
	Color256 ColorMode = iota
	ColorTrueColor
)

// DetectColorMode inspects a screen's reported palette size
func DetectColorMode(screen tcell.Screen) ColorMode {
	if screen.Colors() >= 1<<24 {
		return ColorTrueColor
	}
	return Color256
}

// ToTcell converts an RGB color to a tcell color honoring the mode
func ToTcell(c core.Color, mode ColorMode) tcell.Color {
	if mode == ColorTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(nearest256(c))
}

// nearest256 maps RGB to the xterm 256-color palette: the 6×6×6 color
// cube (16..231) or the grayscale ramp (232..255), whichever is closer
func nearest256(c core.Color) int {
	// Cube candidate
	r6 := cubeIndex(c.R)
	g6 := cubeIndex(c.G)
	b6 := cubeIndex(c.B)
	cube := 16 + 36*r6 + 6*g6 + b6
	cubeDist := dist(c, core.Color{R: cubeLevel(r6), G: cubeLevel(g6), B: cubeLevel(b6)})

	// Gray ramp candidate
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	gi := (avg - 8) / 10
	if gi < 0 {
		gi = 0
	}
	if gi > 23 {
		gi = 23
	}
	level := uint8(8 + gi*10)
	grayDist := dist(c, core.Color{R: level, G: level, B: level})

	if grayDist < cubeDist {
		return 232 + gi
	}
	return cube
}

// cubeIndex maps an 8-bit channel to the nearest cube step 0..5
func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 114 {
		return 1
	}
	return int(v-35) / 40
}

// cubeLevel returns the 8-bit value of a cube step
func cubeLevel(i int) uint8 {
	if i == 0 {
		return 0
	}
	return uint8(55 + i*40)
}

func dist(a, b core.Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
