package vgcanvas

import "math"

// Transform represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation transform.
func Translation(x, y float64) Transform {
	return Transform{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scaling creates a scaling transform.
func Scaling(x, y float64) Transform {
	return Transform{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotation creates a rotation transform (angle in radians).
func Rotation(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two transforms (m * other). In application order
// the result applies other first, then m.
func (m Transform) Multiply(other Transform) Transform {
	return Transform{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Transform) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse transform.
// Returns the identity transform if the matrix is not invertible.
func (m Transform) Invert() Transform {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Transform{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the transform is the identity.
func (m Transform) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the transform is only a translation.
func (m Transform) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}
