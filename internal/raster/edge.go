package raster

import "github.com/gopaint/vgcanvas/internal/geom"

// edge is a non-horizontal line segment prepared for scanline
// rasterization, stored with y0 < y1 and the pre-swap winding direction.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // +1 or -1
}

// newEdge creates an edge from two points, normalizing so y0 < y1.
func newEdge(p0, p1 geom.Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dir: dir,
	}
}

// xAt returns the x coordinate where the edge crosses the given y.
func (e *edge) xAt(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// activeEdge is an edge crossing the current sub-scanline.
type activeEdge struct {
	x   float64
	dir int
}

// insertionSort sorts active edges by x. The active list is short, so
// insertion sort beats the generic sort.
func insertionSort(edges []activeEdge) {
	for i := 1; i < len(edges); i++ {
		key := edges[i]
		j := i - 1
		for j >= 0 && edges[j].x > key.x {
			edges[j+1] = edges[j]
			j--
		}
		edges[j+1] = key
	}
}
