package vgcanvas

import (
	"bytes"
	"image/png"
	"testing"
)

func TestSurfaceByteOrder(t *testing.T) {
	s := NewSurface(2, 1)
	s.SetPixel(1, 0, NewPixel(0x11, 0x22, 0x33, 0x44))

	// 0xAARRGGBB stored little-endian: bytes are B, G, R, A.
	got := s.Data()[4:8]
	want := []byte{0x33, 0x22, 0x11, 0x44}
	if !bytes.Equal(got, want) {
		t.Fatalf("pixel bytes = % x, want % x", got, want)
	}
	if p := s.Pixel(1, 0); p != NewPixel(0x11, 0x22, 0x33, 0x44) {
		t.Errorf("Pixel(1, 0) = %#08x", uint32(p))
	}
}

func TestSurfaceBounds(t *testing.T) {
	s := NewSurface(2, 2)
	// Out-of-range writes are silently skipped, reads return zero.
	s.SetPixel(-1, 0, NewPixel(1, 2, 3, 4))
	s.SetPixel(0, -1, NewPixel(1, 2, 3, 4))
	s.SetPixel(2, 0, NewPixel(1, 2, 3, 4))
	s.SetPixel(0, 2, NewPixel(1, 2, 3, 4))
	for _, b := range s.Data() {
		if b != 0 {
			t.Fatal("out-of-range SetPixel modified the surface")
		}
	}
	if s.Pixel(5, 5) != 0 {
		t.Error("out-of-range Pixel should return zero")
	}
}

func TestSurfaceForDataStride(t *testing.T) {
	// 2x2 surface in a buffer with 4 bytes of row padding.
	stride := 2*4 + 4
	data := make([]byte, stride*2)
	s := NewSurfaceForData(data, 2, 2, stride)
	s.SetPixel(1, 1, NewPixel(0, 0, 0, 255))
	if data[stride+4+3] != 255 {
		t.Fatalf("pixel (1,1) not written at stride offset, data = % x", data)
	}
	if s.Pixel(1, 1) != NewPixel(0, 0, 0, 255) {
		t.Errorf("Pixel(1, 1) = %#08x", uint32(s.Pixel(1, 1)))
	}
}

func TestSurfaceImageUnpremultiplies(t *testing.T) {
	s := NewSurface(1, 1)
	// Half-transparent red, premultiplied: r=128, a=128.
	s.SetPixel(0, 0, NewPixel(128, 0, 0, 128))
	img := s.Image()
	c := img.NRGBAAt(0, 0)
	if c.A != 128 {
		t.Fatalf("alpha = %d, want 128", c.A)
	}
	if c.R != 255 {
		t.Errorf("unpremultiplied red = %d, want 255", c.R)
	}
}

func TestSurfaceWritePNG(t *testing.T) {
	s := NewSurface(3, 2)
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded bounds = %v", b)
	}
}
