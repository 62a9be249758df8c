package vgcanvas

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTransformPoint(t *testing.T) {
	m := Translation(10, 20)
	p := m.TransformPoint(Pt(1, 2))
	if !approxEq(p.X, 11) || !approxEq(p.Y, 22) {
		t.Errorf("translated point = %+v", p)
	}

	m = Scaling(2, 3)
	p = m.TransformPoint(Pt(1, 2))
	if !approxEq(p.X, 2) || !approxEq(p.Y, 6) {
		t.Errorf("scaled point = %+v", p)
	}

	m = Rotation(math.Pi / 2)
	p = m.TransformPoint(Pt(1, 0))
	if !approxEq(p.X, 0) || !approxEq(p.Y, 1) {
		t.Errorf("rotated point = %+v", p)
	}
}

// m.Multiply(other) applies other first, then m.
func TestTransformMultiplyOrder(t *testing.T) {
	m := Translation(10, 0).Multiply(Scaling(2, 2))
	p := m.TransformPoint(Pt(1, 1))
	if !approxEq(p.X, 12) || !approxEq(p.Y, 2) {
		t.Errorf("scale-then-translate = %+v, want (12, 2)", p)
	}

	m = Scaling(2, 2).Multiply(Translation(10, 0))
	p = m.TransformPoint(Pt(1, 1))
	if !approxEq(p.X, 22) || !approxEq(p.Y, 2) {
		t.Errorf("translate-then-scale = %+v, want (22, 2)", p)
	}
}

func TestTransformInvert(t *testing.T) {
	m := Translation(5, -3).Multiply(Rotation(0.7)).Multiply(Scaling(2, 0.5))
	inv := m.Invert()
	p := inv.TransformPoint(m.TransformPoint(Pt(3, 4)))
	if !approxEq(p.X, 3) || !approxEq(p.Y, 4) {
		t.Errorf("round trip = %+v, want (3, 4)", p)
	}

	// Singular matrices invert to the identity.
	singular := Transform{A: 1, B: 2, D: 2, E: 4}
	if !singular.Invert().IsIdentity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestTransformPredicates(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity should be identity")
	}
	if !Translation(3, 4).IsTranslation() {
		t.Error("Translation should be a translation")
	}
	if Scaling(2, 2).IsTranslation() {
		t.Error("Scaling should not be a translation")
	}
}
