package core

// Color is an 8-bit RGB color, backend-independent
// Conversion to terminal colors happens in the render package
type Color struct {
	R, G, B uint8
}

// Common colors used by demos and default styles
var (
	ColorBlack   = Color{0, 0, 0}
	ColorWhite   = Color{255, 255, 255}
	ColorRed     = Color{230, 70, 70}
	ColorGreen   = Color{80, 200, 120}
	ColorBlue    = Color{80, 120, 230}
	ColorYellow  = Color{230, 200, 80}
	ColorMagenta = Color{200, 90, 200}
	ColorCyan    = Color{90, 200, 210}
)
