package vgcanvas

// Color is a paint color with straight (non-premultiplied) 8-bit channels.
// Channel values are normalized to [0, 1] only when handed to a shader.
type Color struct {
	R, G, B, A uint8
}

// Named colors used throughout tests and examples.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
)

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// premul returns the color as premultiplied 8-bit channels.
func (c Color) premul() (r, g, b, a uint8) {
	return mulDiv255(c.R, c.A), mulDiv255(c.G, c.A), mulDiv255(c.B, c.A), c.A
}

// mulDiv255 computes a*b/255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}
