// Package strokes converts flattened polylines into filled outline
// polygons: dash splitting first, then offsetting both sides of each
// polyline with caps and joins. The resulting polygons are filled with
// the non-zero rule.
package strokes

import (
	"math"

	"github.com/gopaint/vgcanvas/internal/geom"
)

// Cap specifies the shape of line endpoints.
type Cap int

const (
	// CapButt specifies a flat line cap.
	CapButt Cap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// Join specifies the shape of line joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Options bundles the stroke expansion parameters.
type Options struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// arcStep is the angular step used to approximate round caps and joins.
const arcStep = 0.25

// Dash splits polylines into dash segments. The array alternates
// dash/gap lengths cyclically starting at offset; zero-length entries
// are skipped. Closed polylines are walked as a single open run around
// the loop, so the dash phase does not reset at the seam.
func Dash(lines []geom.Polyline, array []float64, offset float64) []geom.Polyline {
	var total float64
	for _, l := range array {
		total += l
	}
	if total <= 0 {
		return lines
	}

	var out []geom.Polyline
	for _, pl := range lines {
		pts := pl.Points
		if pl.Closed && len(pts) > 1 {
			closed := make([]geom.Point, 0, len(pts)+1)
			closed = append(closed, pts...)
			closed = append(closed, pts[0])
			pts = closed
		}
		if len(pts) < 2 {
			continue
		}

		pos := math.Mod(offset, total)
		if pos < 0 {
			pos += total
		}
		idx := 0
		for pos >= array[idx] {
			pos -= array[idx]
			idx = (idx + 1) % len(array)
		}
		rem := array[idx] - pos
		on := idx%2 == 0

		var cur []geom.Point
		if on {
			cur = append(cur, pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			p0, p1 := pts[i], pts[i+1]
			segLen := p0.Distance(p1)
			walked := 0.0
			for segLen-walked > rem {
				walked += rem
				split := p0.Lerp(p1, walked/segLen)
				if on {
					cur = append(cur, split)
					out = append(out, geom.Polyline{Points: cur})
					cur = nil
				} else {
					cur = []geom.Point{split}
				}
				on = !on
				for {
					idx = (idx + 1) % len(array)
					if array[idx] > 0 {
						break
					}
					on = !on
				}
				rem = array[idx]
			}
			rem -= segLen - walked
			if on {
				cur = append(cur, p1)
			}
		}
		if on && len(cur) >= 2 {
			out = append(out, geom.Polyline{Points: cur})
		}
	}
	return out
}

// Outline expands polylines into closed outline polygons at half the
// stroke width on each side. Open polylines become a single polygon with
// caps; closed polylines become two rings of opposite winding whose
// non-zero fill is the stroked annulus.
func Outline(lines []geom.Polyline, opts Options) [][]geom.Point {
	radius := opts.Width / 2
	if radius <= 0 {
		return nil
	}

	var out [][]geom.Point
	for _, pl := range lines {
		pts := dedupe(pl.Points)
		if len(pts) < 2 {
			continue
		}
		if pl.Closed {
			out = append(out, offsetLoop(pts, radius, opts))
			out = append(out, offsetLoop(reversed(pts), radius, opts))
		} else {
			out = append(out, outlineOpen(pts, radius, opts))
		}
	}
	return out
}

// outlineOpen builds the outline polygon of an open polyline: the left
// offset side forward, the end cap, the left offset side of the reversed
// polyline (the right side walked backward), and the start cap.
func outlineOpen(pts []geom.Point, radius float64, opts Options) []geom.Point {
	rev := reversed(pts)

	poly := offsetSide(pts, radius, opts)
	endDir := direction(pts[len(pts)-2], pts[len(pts)-1])
	poly = appendCap(poly, pts[len(pts)-1], endDir, radius, opts.Cap)
	poly = append(poly, offsetSide(rev, radius, opts)...)
	startDir := direction(rev[len(rev)-2], rev[len(rev)-1])
	poly = appendCap(poly, pts[0], startDir, radius, opts.Cap)
	return poly
}

// offsetLoop offsets a closed ring to its left side, applying joins at
// every vertex including the seam.
func offsetLoop(pts []geom.Point, radius float64, opts Options) []geom.Point {
	n := len(pts)
	var poly []geom.Point
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		d0 := direction(prev, pts[i])
		d1 := direction(pts[i], next)
		poly = appendJoin(poly, pts[i], d0, d1, radius, opts)
	}
	return poly
}

// offsetSide offsets an open polyline to its left side, applying joins
// at interior vertices.
func offsetSide(pts []geom.Point, radius float64, opts Options) []geom.Point {
	d0 := direction(pts[0], pts[1])
	poly := []geom.Point{pts[0].Add(leftNormal(d0).Mul(radius))}
	for i := 1; i+1 < len(pts); i++ {
		da := direction(pts[i-1], pts[i])
		db := direction(pts[i], pts[i+1])
		poly = appendJoin(poly, pts[i], da, db, radius, opts)
	}
	dLast := direction(pts[len(pts)-2], pts[len(pts)-1])
	poly = append(poly, pts[len(pts)-1].Add(leftNormal(dLast).Mul(radius)))
	return poly
}

// appendJoin emits the left-side offset points at a vertex where the
// direction changes from d0 to d1. The join style applies only when the
// left side is the outside of the turn; the inner side just emits both
// offset points and lets non-zero filling absorb the overlap.
func appendJoin(poly []geom.Point, v, d0, d1 geom.Point, radius float64, opts Options) []geom.Point {
	n0 := leftNormal(d0)
	n1 := leftNormal(d1)
	p0 := v.Add(n0.Mul(radius))
	p1 := v.Add(n1.Mul(radius))

	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return append(poly, p1)
	}
	if cross <= 0 {
		// Inner side of the turn.
		return append(poly, p0, p1)
	}

	switch opts.Join {
	case JoinMiter:
		// 1/cos(theta/2) <= limit, expressed without the trig call.
		cosHalfSq := (1 + n0.Dot(n1)) / 2
		if opts.MiterLimit > 0 && cosHalfSq*opts.MiterLimit*opts.MiterLimit >= 1 {
			m := n0.Add(n1)
			miter := v.Add(m.Mul(radius / (1 + n0.Dot(n1))))
			return append(poly, p0, miter, p1)
		}
		return append(poly, p0, p1)
	case JoinRound:
		poly = append(poly, p0)
		poly = appendArc(poly, v, radius, angleOf(n0), signedAngle(n0, n1))
		return append(poly, p1)
	default: // JoinBevel
		return append(poly, p0, p1)
	}
}

// appendCap emits the cap points connecting the left offset at the end
// of a walk (center + leftNormal*radius) around to the right offset.
func appendCap(poly []geom.Point, center, dir geom.Point, radius float64, style Cap) []geom.Point {
	n := leftNormal(dir)
	switch style {
	case CapRound:
		return appendArc(poly, center, radius, angleOf(n), math.Pi)
	case CapSquare:
		ext := dir.Mul(radius)
		return append(poly,
			center.Add(n.Mul(radius)).Add(ext),
			center.Sub(n.Mul(radius)).Add(ext),
		)
	default: // CapButt
		return poly
	}
}

// appendArc approximates a circular arc with line segments, starting at
// angle a0 and sweeping by delta.
func appendArc(poly []geom.Point, center geom.Point, radius, a0, delta float64) []geom.Point {
	steps := int(math.Ceil(math.Abs(delta) / arcStep))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		poly = append(poly, geom.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return poly
}

// direction returns the unit direction from a to b.
func direction(a, b geom.Point) geom.Point {
	d := b.Sub(a)
	l := d.Length()
	if l < 1e-12 {
		return geom.Point{X: 1}
	}
	return d.Mul(1 / l)
}

// leftNormal returns the unit normal to the left of travel in y-down
// coordinates.
func leftNormal(d geom.Point) geom.Point {
	return geom.Point{X: d.Y, Y: -d.X}
}

// angleOf returns the angle of a vector.
func angleOf(v geom.Point) float64 {
	return math.Atan2(v.Y, v.X)
}

// signedAngle returns the signed angle from a to b.
func signedAngle(a, b geom.Point) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// dedupe removes consecutive duplicate points.
func dedupe(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if p.Distance(last) > 1e-12 {
			out = append(out, p)
		}
	}
	return out
}

// reversed returns a reversed copy of the points.
func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
