package vgcanvas

import (
	"github.com/gopaint/vgcanvas/internal/blend"
	"github.com/gopaint/vgcanvas/internal/geom"
	"github.com/gopaint/vgcanvas/internal/raster"
	"github.com/gopaint/vgcanvas/internal/strokes"
)

// Canvas is a drawing target: a pixel surface plus the device
// translation that maps logical coordinates onto it. A canvas created
// for a logical box keeps drawing coordinates in that box's space; the
// surface itself always starts at (0, 0).
//
// Every draw call carries its complete parameters; a Canvas holds no
// sticky rasterizer state between calls.
type Canvas struct {
	surface     *Surface
	translation Transform
	rect        Rect
}

// NewCanvasForData wraps an externally supplied pixel buffer as a
// canvas with no translation. The buffer is written in place.
func NewCanvasForData(data []byte, width, height, stride int) *Canvas {
	return &Canvas{
		surface:     NewSurfaceForData(data, width, height, stride),
		translation: Identity(),
		rect:        Rect{W: float64(width), H: float64(height)},
	}
}

// NewCanvasAt allocates a transparent canvas covering the logical
// pixel rectangle (x, y, width, height). Drawing at logical (x, y)
// lands on the surface's top-left pixel.
func NewCanvasAt(x, y, width, height int) *Canvas {
	return &Canvas{
		surface:     NewSurface(width, height),
		translation: Translation(float64(-x), float64(-y)),
		rect:        Rect{X: float64(x), Y: float64(y), W: float64(width), H: float64(height)},
	}
}

// NewCanvas allocates a canvas covering a logical float box, expanded
// outward to whole pixels. An empty box yields a 1x1 canvas at the
// origin.
func NewCanvas(box Rect) *Canvas {
	if box.Empty() {
		return NewCanvasAt(0, 0, 1, 1)
	}
	x, y, w, h := box.IntOuter()
	return NewCanvasAt(x, y, w, h)
}

// Surface returns the canvas's pixel surface.
func (c *Canvas) Surface() *Surface { return c.surface }

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.surface.Width() }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.surface.Height() }

// Stride returns the surface row stride in bytes.
func (c *Canvas) Stride() int { return c.surface.Stride() }

// Data returns the surface's raw backing bytes.
func (c *Canvas) Data() []byte { return c.surface.Data() }

// Box returns the logical rectangle the canvas covers.
func (c *Canvas) Box() Rect { return c.rect }

// Fill rasterizes the path under the given transform and composites
// the paint into the covered pixels. The transform maps path
// coordinates into the canvas's logical space.
func (c *Canvas) Fill(path *Path, transform Transform, rule FillRule, paint Paint) {
	if path == nil || path.Empty() || paint.Brush == nil {
		return
	}
	m := c.translation.Multiply(transform)
	lines := flattenPath(path.Transform(m), geom.Tolerance)
	polys := make([][]geom.Point, 0, len(lines))
	for _, l := range lines {
		if len(l.Points) >= 2 {
			polys = append(polys, l.Points)
		}
	}
	c.fillPolys(polys, rule, m, paint)
}

// Stroke expands the path's outline under the stroke style and fills
// it with the paint. The stroke width is in path (user) coordinates,
// so the transform scales the stroked result along with the path.
func (c *Canvas) Stroke(path *Path, transform Transform, stroke Stroke, paint Paint) {
	if path == nil || path.Empty() || paint.Brush == nil || stroke.Width <= 0 {
		return
	}
	lines := flattenPath(path, geom.Tolerance)
	if stroke.Dash.IsDashed() {
		lines = strokes.Dash(lines, stroke.Dash.effectiveArray(), stroke.Dash.normalizedOffset())
	}
	outlines := strokes.Outline(lines, strokes.Options{
		Width:      stroke.Width,
		Cap:        strokeCap(stroke.Cap),
		Join:       strokeJoin(stroke.Join),
		MiterLimit: stroke.MiterLimit,
	})

	m := c.translation.Multiply(transform)
	for _, poly := range outlines {
		for i, p := range poly {
			q := m.TransformPoint(Pt(p.X, p.Y))
			poly[i] = geom.Point{X: q.X, Y: q.Y}
		}
	}
	// Each side of the outline is its own ring; non-zero keeps the
	// stroked annulus and cancels the hole.
	c.fillPolys(outlines, FillRuleNonZero, m, paint)
}

// Blend composites another canvas's surface onto this one, positioned
// by the source's own logical box.
func (c *Canvas) Blend(source *Canvas, mode BlendMode, opacity float64) {
	if source == nil {
		return
	}
	path := NewPath()
	path.AddRect(c.rect)
	brush := NewTextureBrush(source, TexturePlain, Translation(source.rect.X, source.rect.Y))
	c.Fill(path, Identity(), FillRuleNonZero, Paint{
		Brush:   brush,
		Mode:    mode,
		Opacity: opacity,
	})
}

// Mask clears every pixel outside the transformed clip rectangle,
// leaving pixels strictly inside it bit-for-bit untouched. The
// transform maps the clip rectangle into the canvas's logical space.
func (c *Canvas) Mask(clip Rect, transform Transform) {
	path := NewPath()
	path.AddRect(c.rect)

	p0 := transform.TransformPoint(Pt(clip.X, clip.Y))
	p1 := transform.TransformPoint(Pt(clip.X+clip.W, clip.Y))
	p2 := transform.TransformPoint(Pt(clip.X+clip.W, clip.Y+clip.H))
	p3 := transform.TransformPoint(Pt(clip.X, clip.Y+clip.H))
	path.MoveTo(p0.X, p0.Y)
	path.LineTo(p1.X, p1.Y)
	path.LineTo(p2.X, p2.Y)
	path.LineTo(p3.X, p3.Y)
	path.Close()

	// Even-odd between the canvas rect and the clip rect selects the
	// region outside the clip; Src with a zero source clears it there.
	c.Fill(path, Identity(), FillRuleEvenOdd, Paint{
		Brush:   NewSolidBrush(Transparent),
		Mode:    BlendSrc,
		Opacity: 0,
	})
}

// Luminance replaces every pixel with an alpha-only pixel whose alpha
// is the luminance of the premultiplied color channels. The result is
// the canvas reinterpreted as a luminance mask.
func (c *Canvas) Luminance() {
	for y := 0; y < c.surface.Height(); y++ {
		for x := 0; x < c.surface.Width(); x++ {
			c.surface.SetPixel(x, y, c.surface.Pixel(x, y).Luminance())
		}
	}
}

// fillPolys rasterizes device-space polygons and composites the paint
// row by row. effective is the full user-to-device transform, used to
// anchor the brush's coordinate space.
func (c *Canvas) fillPolys(polys [][]geom.Point, rule FillRule, effective Transform, paint Paint) {
	if len(polys) == 0 {
		return
	}
	surf := c.surface
	mode := blendModeOf(paint.Mode)
	sh := paint.Brush.shade(effective)
	op := paint.opacity8()

	rr := raster.NonZero
	if rule == FillRuleEvenOdd {
		rr = raster.EvenOdd
	}

	filler := raster.NewFiller(surf.Width(), surf.Height())
	filler.Fill(polys, rr, func(y int, cov []uint8) {
		for x := 0; x < len(cov); x++ {
			cv := cov[x]
			if cv == 0 {
				continue
			}
			sr, sg, sb, sa := sh.at(x, y)
			if op != 255 {
				sr = mulDiv255(sr, op)
				sg = mulDiv255(sg, op)
				sb = mulDiv255(sb, op)
				sa = mulDiv255(sa, op)
			}
			d := surf.Pixel(x, y)
			r, g, b, a := blend.Composite(mode, sr, sg, sb, sa,
				d.Red(), d.Green(), d.Blue(), d.Alpha(), cv)
			surf.SetPixel(x, y, NewPixel(r, g, b, a))
		}
	})
}

// flattenPath converts a path into polylines, one per subpath,
// approximating cubics within the tolerance.
func flattenPath(p *Path, tolerance float64) []geom.Polyline {
	var lines []geom.Polyline
	var cur []geom.Point
	var start geom.Point

	flush := func(closed bool) {
		if len(cur) >= 2 {
			lines = append(lines, geom.Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			start = geom.Point{X: e.Point.X, Y: e.Point.Y}
			cur = append(cur, start)
		case LineTo:
			if len(cur) == 0 {
				cur = append(cur, start)
			}
			cur = append(cur, geom.Point{X: e.Point.X, Y: e.Point.Y})
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, start)
			}
			p0 := cur[len(cur)-1]
			cur = geom.FlattenCubic(cur, p0,
				geom.Point{X: e.Control1.X, Y: e.Control1.Y},
				geom.Point{X: e.Control2.X, Y: e.Control2.Y},
				geom.Point{X: e.Point.X, Y: e.Point.Y},
				tolerance)
		case Close:
			flush(true)
		}
	}
	flush(false)
	return lines
}

// blendModeOf maps the public blend mode onto the compositor's.
func blendModeOf(mode BlendMode) blend.Mode {
	switch mode {
	case BlendSrc:
		return blend.Src
	case BlendDstIn:
		return blend.DstIn
	case BlendDstOut:
		return blend.DstOut
	default:
		return blend.SrcOver
	}
}

// strokeCap maps the public line cap onto the stroker's.
func strokeCap(c LineCap) strokes.Cap {
	switch c {
	case LineCapRound:
		return strokes.CapRound
	case LineCapSquare:
		return strokes.CapSquare
	default:
		return strokes.CapButt
	}
}

// strokeJoin maps the public line join onto the stroker's.
func strokeJoin(j LineJoin) strokes.Join {
	switch j {
	case LineJoinRound:
		return strokes.JoinRound
	case LineJoinBevel:
		return strokes.JoinBevel
	default:
		return strokes.JoinMiter
	}
}
