package vgcanvas

// PathElement represents a single segment command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath. Subpaths are never closed
// implicitly: an open subpath stays open for stroking.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of segment commands. It is replayed in
// order when rasterized and may contain any number of subpaths.
type Path struct {
	elements []PathElement
	start    Point // start of current subpath
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to (x, y) with two control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath back to its start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// AddRect appends a closed rectangular subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.Close()
}

// Elements returns the path's segment commands in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Transform returns a copy of the path with all points transformed.
func (p *Path) Transform(m Transform) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}
