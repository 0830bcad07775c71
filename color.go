package hellosphere

import "image/color"

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Array returns the Color's components in R, G, B, A order, as fixed-function APIs like glColor4fv expect.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// RGBA implements image/color.Color, returning alpha-premultiplied components; out-of-range components are clamped.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp(c.A, 0, 1) * 0xffff)
	r = uint32(clamp(c.R, 0, 1) * clamp(c.A, 0, 1) * 0xffff)
	g = uint32(clamp(c.G, 0, 1) * clamp(c.A, 0, 1) * 0xffff)
	b = uint32(clamp(c.B, 0, 1) * clamp(c.A, 0, 1) * 0xffff)
	return
}

var _ color.Color = Color{}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
