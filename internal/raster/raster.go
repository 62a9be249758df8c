// Package raster provides anti-aliased scanline rasterization of
// flattened polygons into per-row coverage buffers.
package raster

import (
	"math"

	"github.com/gopaint/vgcanvas/internal/geom"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// NonZero uses the non-zero winding rule.
	NonZero FillRule = iota
	// EvenOdd uses the even-odd rule.
	EvenOdd
)

// subSamples is the number of vertical sub-scanlines per pixel row.
const subSamples = 4

// Filler rasterizes polygons clipped to a width x height pixel grid.
// A Filler may be reused across fills; it is not safe for concurrent use.
type Filler struct {
	width  int
	height int
	aet    []activeEdge
	acc    []uint16
	row    []uint8
}

// NewFiller creates a filler for the given clip dimensions.
func NewFiller(width, height int) *Filler {
	return &Filler{
		width:  width,
		height: height,
		aet:    make([]activeEdge, 0, 32),
		acc:    make([]uint16, width),
		row:    make([]uint8, width),
	}
}

// Fill rasterizes the polygons with the given fill rule and delivers one
// coverage row per covered scanline: cov[x] is 0..255 coverage for pixel
// (x, y). Rows the polygons never touch are skipped. Polygons are closed
// implicitly from their last point back to their first.
func (f *Filler) Fill(polys [][]geom.Point, rule FillRule, blit func(y int, cov []uint8)) {
	edges := f.buildEdges(polys)
	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for i := range edges {
		yMin = math.Min(yMin, edges[i].y0)
		yMax = math.Max(yMax, edges[i].y1)
	}
	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > f.height {
		y1 = f.height
	}

	for y := y0; y < y1; y++ {
		clear(f.acc)
		covered := false
		for k := 0; k < subSamples; k++ {
			sy := float64(y) + (float64(k)+0.5)/subSamples
			if f.scanline(edges, sy, rule) {
				covered = true
			}
		}
		if !covered {
			continue
		}
		for x := 0; x < f.width; x++ {
			v := (uint32(f.acc[x]) + subSamples/2) / subSamples
			if v > 255 {
				v = 255
			}
			f.row[x] = uint8(v)
		}
		blit(y, f.row)
	}
}

// buildEdges converts polygons into non-horizontal edges, including the
// implicit closing edge of each polygon.
func (f *Filler) buildEdges(polys [][]geom.Point) []edge {
	var edges []edge
	add := func(p0, p1 geom.Point) {
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			return
		}
		edges = append(edges, newEdge(p0, p1))
	}
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		for i := 0; i+1 < len(poly); i++ {
			add(poly[i], poly[i+1])
		}
		add(poly[len(poly)-1], poly[0])
	}
	return edges
}

// scanline accumulates one sub-scanline's spans into the row accumulator
// and reports whether anything was covered.
func (f *Filler) scanline(edges []edge, sy float64, rule FillRule) bool {
	f.aet = f.aet[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= sy && sy < e.y1 {
			f.aet = append(f.aet, activeEdge{x: e.xAt(sy), dir: e.dir})
		}
	}
	if len(f.aet) == 0 {
		return false
	}
	insertionSort(f.aet)

	covered := false
	if rule == NonZero {
		winding := 0
		var x1 float64
		for _, ae := range f.aet {
			if winding == 0 {
				x1 = ae.x
			}
			winding += ae.dir
			if winding == 0 && f.accumulate(x1, ae.x) {
				covered = true
			}
		}
	} else {
		for i := 0; i+1 < len(f.aet); i += 2 {
			if f.accumulate(f.aet[i].x, f.aet[i+1].x) {
				covered = true
			}
		}
	}
	return covered
}

// accumulate adds one sub-scanline span's coverage, with fractional
// coverage at the span ends, clipped to the clip width.
func (f *Filler) accumulate(x1, x2 float64) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > float64(f.width) {
		x2 = float64(f.width)
	}
	if x2 <= x1 {
		return false
	}

	ix0 := int(math.Floor(x1))
	ix1 := int(math.Floor(x2))
	if ix0 == ix1 {
		f.acc[ix0] += coverage8(x2 - x1)
		return true
	}
	f.acc[ix0] += coverage8(float64(ix0+1) - x1)
	for x := ix0 + 1; x < ix1; x++ {
		f.acc[x] += 255
	}
	if ix1 < f.width {
		f.acc[ix1] += coverage8(x2 - float64(ix1))
	}
	return true
}

// coverage8 converts a pixel-fraction in [0, 1] to 0..255 coverage.
func coverage8(frac float64) uint16 {
	return uint16(frac*255 + 0.5)
}
