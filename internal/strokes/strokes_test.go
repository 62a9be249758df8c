package strokes

import (
	"math"
	"testing"

	"github.com/gopaint/vgcanvas/internal/geom"
)

func line(pts ...geom.Point) geom.Polyline {
	return geom.Polyline{Points: pts}
}

func polylineLength(pl geom.Polyline) float64 {
	var total float64
	for i := 0; i+1 < len(pl.Points); i++ {
		total += pl.Points[i].Distance(pl.Points[i+1])
	}
	return total
}

func TestDashSplitsSegments(t *testing.T) {
	in := []geom.Polyline{line(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})}
	out := Dash(in, []float64{4, 2}, 0)

	// Pattern 4 on, 2 off over length 10: dashes [0,4) and [6,10).
	if len(out) != 2 {
		t.Fatalf("got %d dashes, want 2", len(out))
	}
	if l := polylineLength(out[0]); !closeTo(l, 4) {
		t.Errorf("first dash length = %v, want 4", l)
	}
	if out[0].Points[0].X != 0 || !closeTo(out[0].Points[len(out[0].Points)-1].X, 4) {
		t.Errorf("first dash spans %+v", out[0].Points)
	}
	if l := polylineLength(out[1]); !closeTo(l, 4) {
		t.Errorf("second dash length = %v, want 4", l)
	}
	if !closeTo(out[1].Points[0].X, 6) {
		t.Errorf("second dash starts at %v, want 6", out[1].Points[0].X)
	}
}

func TestDashOffsetShiftsPattern(t *testing.T) {
	in := []geom.Polyline{line(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})}
	// Offset 4 starts inside the gap: first dash begins at x=2.
	out := Dash(in, []float64{4, 2}, 4)
	if len(out) == 0 {
		t.Fatal("no dashes produced")
	}
	if !closeTo(out[0].Points[0].X, 2) {
		t.Errorf("first dash starts at %v, want 2", out[0].Points[0].X)
	}
}

func TestDashSpansVertices(t *testing.T) {
	// An L-shaped polyline of total length 20 with an 8/2 pattern: the
	// first dash crosses the corner.
	in := []geom.Polyline{line(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 10, Y: 0},
		geom.Point{X: 10, Y: 10},
	)}
	out := Dash(in, []float64{12, 3}, 0)
	if len(out) != 2 {
		t.Fatalf("got %d dashes, want 2", len(out))
	}
	if l := polylineLength(out[0]); !closeTo(l, 12) {
		t.Errorf("corner-crossing dash length = %v, want 12", l)
	}
	// The first dash keeps the corner vertex.
	if len(out[0].Points) != 3 {
		t.Errorf("corner-crossing dash points = %+v", out[0].Points)
	}
}

func TestDashZeroTotalIsSolid(t *testing.T) {
	in := []geom.Polyline{line(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})}
	out := Dash(in, []float64{0, 0}, 0)
	if len(out) != 1 || polylineLength(out[0]) != 10 {
		t.Errorf("zero pattern should pass through, got %+v", out)
	}
}

func TestOutlineOpenLineButt(t *testing.T) {
	in := []geom.Polyline{line(geom.Point{X: 1, Y: 4}, geom.Point{X: 7, Y: 4})}
	out := Outline(in, Options{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 4})
	if len(out) != 1 {
		t.Fatalf("got %d polygons, want 1", len(out))
	}
	// Butt caps: the outline is exactly the 6x2 rectangle around the line.
	assertBounds(t, out[0], 1, 3, 7, 5)
	if len(out[0]) != 4 {
		t.Errorf("butt outline has %d points, want 4", len(out[0]))
	}
}

func TestOutlineSquareCapExtends(t *testing.T) {
	in := []geom.Polyline{line(geom.Point{X: 2, Y: 4}, geom.Point{X: 6, Y: 4})}
	out := Outline(in, Options{Width: 2, Cap: CapSquare, Join: JoinMiter, MiterLimit: 4})
	// Square caps extend half the width past each endpoint.
	assertBounds(t, out[0], 1, 3, 7, 5)
}

func TestOutlineRoundCap(t *testing.T) {
	in := []geom.Polyline{line(geom.Point{X: 4, Y: 4}, geom.Point{X: 8, Y: 4})}
	out := Outline(in, Options{Width: 2, Cap: CapRound, Join: JoinMiter, MiterLimit: 4})
	minX, _, maxX, _ := bounds(out[0])
	if minX > 3.05 || minX < 2.95 {
		t.Errorf("round cap min x = %v, want about 3", minX)
	}
	if maxX < 8.95 || maxX > 9.05 {
		t.Errorf("round cap max x = %v, want about 9", maxX)
	}
	if len(out[0]) < 10 {
		t.Errorf("round caps should add arc points, got %d", len(out[0]))
	}
}

func TestOutlineMiterJoin(t *testing.T) {
	// Right-angle corner: the miter tip reaches sqrt(2)*radius from the
	// vertex.
	in := []geom.Polyline{line(
		geom.Point{X: 0, Y: 10},
		geom.Point{X: 10, Y: 10},
		geom.Point{X: 10, Y: 0},
	)}
	out := Outline(in, Options{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 4})
	found := false
	for _, p := range out[0] {
		if closeTo(p.X, 11) && closeTo(p.Y, 11) {
			found = true
		}
	}
	if !found {
		t.Errorf("miter tip (11,11) not found in %+v", out[0])
	}
}

func TestOutlineMiterLimitBevels(t *testing.T) {
	// A nearly-reversing corner exceeds a limit of 1.01, so the join
	// falls back to a bevel and stays within radius of the vertex.
	in := []geom.Polyline{line(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 10, Y: 0},
		geom.Point{X: 0, Y: 1},
	)}
	out := Outline(in, Options{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 1.01})
	for _, p := range out[0] {
		if p.X > 12 {
			t.Fatalf("point %+v far past the vertex: miter limit not applied", p)
		}
	}
}

func TestOutlineClosedProducesTwoRings(t *testing.T) {
	ring := geom.Polyline{
		Points: []geom.Point{
			{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8},
		},
		Closed: true,
	}
	out := Outline([]geom.Polyline{ring}, Options{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 4})
	if len(out) != 2 {
		t.Fatalf("closed polyline produced %d polygons, want 2", len(out))
	}
	// One ring sits outside the path, the other inside; together they
	// bound the stroked band.
	a0 := ringArea(out[0])
	a1 := ringArea(out[1])
	if a0*a1 >= 0 {
		t.Errorf("rings should have opposite winding, areas %v and %v", a0, a1)
	}
	if math.Abs(math.Abs(a0)-math.Abs(a1)) < 1 {
		t.Errorf("one ring should be larger, areas %v and %v", a0, a1)
	}
}

func TestOutlineDegenerateInput(t *testing.T) {
	if out := Outline([]geom.Polyline{line(geom.Point{X: 1, Y: 1})}, Options{Width: 2}); out != nil {
		t.Errorf("single point produced %+v", out)
	}
	if out := Outline([]geom.Polyline{line(geom.Point{}, geom.Point{X: 5})}, Options{Width: 0}); out != nil {
		t.Errorf("zero width produced %+v", out)
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func bounds(pts []geom.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

func assertBounds(t *testing.T, pts []geom.Point, minX, minY, maxX, maxY float64) {
	t.Helper()
	gotMinX, gotMinY, gotMaxX, gotMaxY := bounds(pts)
	if !closeTo(gotMinX, minX) || !closeTo(gotMinY, minY) ||
		!closeTo(gotMaxX, maxX) || !closeTo(gotMaxY, maxY) {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)",
			gotMinX, gotMinY, gotMaxX, gotMaxY, minX, minY, maxX, maxY)
	}
}

// ringArea is the signed polygon area.
func ringArea(pts []geom.Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].Cross(pts[j])
	}
	return sum / 2
}
