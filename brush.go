package vgcanvas

import "math"

// Brush represents a paint source: what a draw call paints with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - LinearGradientBrush, RadialGradientBrush: gradients with a spread
//     method and their own coordinate-space transform
//   - TextureBrush: another canvas's surface used as source pixels
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// shade builds a shader for a draw call. effective is the full
	// user-to-device transform of the call; the shader samples
	// premultiplied channels at device pixel centers.
	shade(effective Transform) shader
}

// shader samples premultiplied source channels at a device pixel.
type shader interface {
	at(x, y int) (r, g, b, a uint8)
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color Color
}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

func (SolidBrush) brushMarker() {}

func (b SolidBrush) shade(Transform) shader {
	r, g, bl, a := b.Color.premul()
	return solidShader{r: r, g: g, b: bl, a: a}
}

type solidShader struct {
	r, g, b, a uint8
}

func (s solidShader) at(int, int) (uint8, uint8, uint8, uint8) {
	return s.r, s.g, s.b, s.a
}

// LinearGradientBrush paints a gradient along the axis (X1,Y1)-(X2,Y2).
// Transform maps the gradient's own coordinate space into the user space
// of the draw call, independent of the path's transform.
type LinearGradientBrush struct {
	X1, Y1    float64
	X2, Y2    float64
	Stops     GradientStops
	Spread    SpreadMethod
	Transform Transform
}

// NewLinearGradientBrush creates a linear gradient brush.
func NewLinearGradientBrush(x1, y1, x2, y2 float64, stops GradientStops, spread SpreadMethod, transform Transform) LinearGradientBrush {
	return LinearGradientBrush{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Stops:     stops,
		Spread:    spread,
		Transform: transform,
	}
}

func (LinearGradientBrush) brushMarker() {}

func (b LinearGradientBrush) shade(effective Transform) shader {
	return &linearShader{
		brush: b,
		inv:   effective.Multiply(b.Transform).Invert(),
	}
}

type linearShader struct {
	brush LinearGradientBrush
	inv   Transform
}

func (s *linearShader) at(x, y int) (uint8, uint8, uint8, uint8) {
	q := s.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	dx := s.brush.X2 - s.brush.X1
	dy := s.brush.Y2 - s.brush.Y1
	d2 := dx*dx + dy*dy
	var t float64
	if d2 > 0 {
		t = ((q.X-s.brush.X1)*dx + (q.Y-s.brush.Y1)*dy) / d2
	}
	return s.brush.Stops.colorAt(t, s.brush.Spread)
}

// RadialGradientBrush paints a gradient between a focal point (Fx,Fy)
// and the circle centered at (Cx,Cy) with radius R.
type RadialGradientBrush struct {
	Cx, Cy, R float64
	Fx, Fy    float64
	Stops     GradientStops
	Spread    SpreadMethod
	Transform Transform
}

// NewRadialGradientBrush creates a radial gradient brush.
func NewRadialGradientBrush(cx, cy, r, fx, fy float64, stops GradientStops, spread SpreadMethod, transform Transform) RadialGradientBrush {
	return RadialGradientBrush{
		Cx: cx, Cy: cy, R: r, Fx: fx, Fy: fy,
		Stops:     stops,
		Spread:    spread,
		Transform: transform,
	}
}

func (RadialGradientBrush) brushMarker() {}

func (b RadialGradientBrush) shade(effective Transform) shader {
	return &radialShader{
		brush: b,
		inv:   effective.Multiply(b.Transform).Invert(),
	}
}

type radialShader struct {
	brush RadialGradientBrush
	inv   Transform
}

// at solves for the parameter t at which the circle interpolated from
// the focal point (radius 0) to the end circle (radius R) passes through
// the sample point.
func (s *radialShader) at(x, y int) (uint8, uint8, uint8, uint8) {
	q := s.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	pdx := q.X - s.brush.Fx
	pdy := q.Y - s.brush.Fy
	cdx := s.brush.Cx - s.brush.Fx
	cdy := s.brush.Cy - s.brush.Fy

	a := cdx*cdx + cdy*cdy - s.brush.R*s.brush.R
	bb := pdx*cdx + pdy*cdy
	c := pdx*pdx + pdy*pdy

	var t float64
	if math.Abs(a) < 1e-12 {
		if bb != 0 {
			t = c / (2 * bb)
		}
	} else {
		disc := bb*bb - a*c
		if disc < 0 {
			return 0, 0, 0, 0
		}
		t = (bb + math.Sqrt(disc)) / a
		if t <= 0 {
			t = (bb - math.Sqrt(disc)) / a
		}
	}
	if t <= 0 {
		return s.brush.Stops.colorAt(0, s.brush.Spread)
	}
	return s.brush.Stops.colorAt(t, s.brush.Spread)
}

// TextureBrush paints with another canvas's surface as source pixels.
// Transform maps texture space (source surface pixels) into the user
// space of the draw call. The source surface is read-only here and must
// not be mutated concurrently with the draw.
type TextureBrush struct {
	Source    *Canvas
	Type      TextureType
	Transform Transform
}

// NewTextureBrush creates a texture brush.
func NewTextureBrush(source *Canvas, textureType TextureType, transform Transform) TextureBrush {
	return TextureBrush{
		Source:    source,
		Type:      textureType,
		Transform: transform,
	}
}

func (TextureBrush) brushMarker() {}

func (b TextureBrush) shade(effective Transform) shader {
	return &textureShader{
		brush: b,
		inv:   effective.Multiply(b.Transform).Invert(),
	}
}

type textureShader struct {
	brush TextureBrush
	inv   Transform
}

func (s *textureShader) at(x, y int) (uint8, uint8, uint8, uint8) {
	if s.brush.Source == nil {
		return 0, 0, 0, 0
	}
	surf := s.brush.Source.Surface()
	q := s.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	tx := int(math.Floor(q.X))
	ty := int(math.Floor(q.Y))

	switch s.brush.Type {
	case TextureTiled:
		tx = mod(tx, surf.Width())
		ty = mod(ty, surf.Height())
	default: // TexturePlain
		if tx < 0 || tx >= surf.Width() || ty < 0 || ty >= surf.Height() {
			return 0, 0, 0, 0
		}
	}

	p := surf.Pixel(tx, ty)
	return p.Red(), p.Green(), p.Blue(), p.Alpha()
}

// mod is the positive remainder of a/n.
func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
