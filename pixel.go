package vgcanvas

// Pixel is a packed 32-bit surface pixel with premultiplied channels,
// laid out as 0xAARRGGBB: alpha in bits 24-31, red in 16-23, green in
// 8-15, blue in 0-7. Surfaces store pixels in this packing read as a
// native little-endian word, so the in-memory byte order is B, G, R, A.
type Pixel uint32

// NewPixel packs premultiplied channels into a pixel.
func NewPixel(r, g, b, a uint8) Pixel {
	return Pixel(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel (bits 24-31).
func (p Pixel) Alpha() uint8 { return uint8(p >> 24) }

// Red returns the red channel (bits 16-23).
func (p Pixel) Red() uint8 { return uint8(p >> 16) }

// Green returns the green channel (bits 8-15).
func (p Pixel) Green() uint8 { return uint8(p >> 8) }

// Blue returns the blue channel (bits 0-7).
func (p Pixel) Blue() uint8 { return uint8(p) }

// Luminance maps the pixel to a luminance-as-alpha pixel: the weighted
// average l = (2r + 3g + b) / 6 with truncating integer division lands in
// the top byte, all other bytes zero. The (2,3,1)/6 weighting is a
// deliberate approximation kept for behavioral compatibility; do not
// replace it with standard luma coefficients.
func (p Pixel) Luminance() Pixel {
	r := uint32(p.Red())
	g := uint32(p.Green())
	b := uint32(p.Blue())
	l := (2*r + 3*g + b) / 6
	return Pixel(l << 24)
}
