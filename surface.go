package vgcanvas

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Surface is a rectangular pixel buffer: width, height, a row stride in
// bytes (which may exceed width*4 for externally supplied buffers), and
// the backing bytes. Pixels use the Pixel packing.
type Surface struct {
	width  int
	height int
	stride int
	data   []byte
}

// NewSurface allocates a zeroed (fully transparent) surface with a
// stride of width*4.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		stride: width * 4,
		data:   make([]byte, width*height*4),
	}
}

// NewSurfaceForData wraps an externally supplied pixel buffer. The
// surface reads and writes data in place and does not manage the
// buffer's allocation lifecycle.
func NewSurfaceForData(data []byte, width, height, stride int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		data:   data,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the row stride in bytes.
func (s *Surface) Stride() int { return s.stride }

// Data returns the raw backing bytes.
func (s *Surface) Data() []byte { return s.data }

// Pixel returns the packed pixel at (x, y).
// Coordinates outside the surface return zero.
func (s *Surface) Pixel(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	i := y*s.stride + x*4
	return Pixel(binary.LittleEndian.Uint32(s.data[i:]))
}

// SetPixel stores a packed pixel at (x, y).
// Coordinates outside the surface are silently skipped.
func (s *Surface) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.stride + x*4
	binary.LittleEndian.PutUint32(s.data[i:], uint32(p))
}

// Image converts the surface to an image.NRGBA, unpremultiplying each
// pixel. The surface itself is unmodified.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := s.Pixel(x, y)
			a := p.Alpha()
			c := color.NRGBA{A: a}
			if a != 0 {
				c.R = unpremul(p.Red(), a)
				c.G = unpremul(p.Green(), a)
				c.B = unpremul(p.Blue(), a)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// WritePNG encodes the surface as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// unpremul converts a premultiplied channel back to straight alpha.
func unpremul(v, a uint8) uint8 {
	x := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if x > 255 {
		x = 255
	}
	return uint8(x)
}
