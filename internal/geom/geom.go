// Package geom provides the small geometric vocabulary shared by the
// rasterization internals: points, polylines and cubic flattening.
package geom

import "math"

// Tolerance is the default flattening tolerance in device units: the
// maximum distance between a curve and its polyline approximation.
const Tolerance = 0.1

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates from p to q by t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the vector length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Polyline is a connected run of points, optionally closed.
type Polyline struct {
	Points []Point
	Closed bool
}

// FlattenCubic appends a polyline approximation of the cubic Bezier
// (p0, p1, p2, p3) to dst. The start point p0 is not appended; the end
// point p3 always is. Subdivision stops once the control points are
// within tolerance of the chord.
func FlattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if cubicFlatEnough(p0, p1, p2, p3, tolerance) {
		return append(dst, p3)
	}
	// De Casteljau split at t = 1/2.
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	dst = FlattenCubic(dst, p0, p01, p012, mid, tolerance)
	return FlattenCubic(dst, mid, p123, p23, p3, tolerance)
}

// cubicFlatEnough reports whether both control points lie within
// tolerance of the chord from p0 to p3.
func cubicFlatEnough(p0, p1, p2, p3 Point, tolerance float64) bool {
	return DistanceToLine(p1, p0, p3) <= tolerance &&
		DistanceToLine(p2, p0, p3) <= tolerance
}

// DistanceToLine returns the distance from p to the infinite line
// through a and b, or the distance to a when the line is degenerate.
func DistanceToLine(p, a, b Point) float64 {
	d := b.Sub(a)
	l := d.Length()
	if l < 1e-12 {
		return p.Distance(a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / l
}
