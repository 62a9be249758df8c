// Package vgcanvas is the pixel-level rendering backend of a vector
// graphics renderer.
//
// # Overview
//
// vgcanvas sits at the bottom of a rendering pipeline: it receives fully
// resolved paths, paint sources and compositing parameters from an upstream
// layout/paint stage and produces pixels in an in-memory surface. It does
// not parse documents, resolve styles, or lay out elements.
//
// # Quick Start
//
//	// Create a canvas covering a bounding box (rounded outward to pixels).
//	c := vgcanvas.NewCanvas(vgcanvas.Rect{X: 0, Y: 0, W: 200, H: 100})
//
//	// Fill a rectangle with an opaque color.
//	path := vgcanvas.NewPath()
//	path.AddRect(vgcanvas.Rect{X: 10, Y: 10, W: 80, H: 40})
//	c.Fill(path, vgcanvas.Identity(), vgcanvas.FillRuleNonZero, vgcanvas.Paint{
//		Brush:   vgcanvas.NewSolidBrush(vgcanvas.Color{R: 255, A: 255}),
//		Mode:    vgcanvas.BlendSrcOver,
//		Opacity: 1,
//	})
//
//	// Export.
//	c.Surface().WritePNG(w)
//
// # Draw requests
//
// Every draw call carries its complete state: a Paint value (brush, blend
// mode, opacity), a Transform, and fill or stroke style. Nothing persists
// between calls, so callers never depend on state a previous call left
// behind.
//
// # Surface format
//
// A Surface stores 32-bit premultiplied pixels packed as 0xAARRGGBB when
// read as a native little-endian word (byte order B, G, R, A in memory).
// The Pixel type names this layout; Canvas.Luminance rewrites a surface
// into a luminance-as-alpha mask using that packing.
//
// # Coordinate System
//
// Standard raster coordinates: origin at the top left, x grows right,
// y grows down. A Canvas additionally carries a logical rect: the bounding
// box callers address it by, mapped onto the surface by an internal
// translation.
//
// # Concurrency
//
// All operations are synchronous and run to completion. A Canvas is not
// safe for concurrent mutation; distinct canvases are independent unless
// one is being read as a texture or blend source while the other draws.
package vgcanvas
