package ink

import "math"

// Matrix is a 2x3 affine transformation:
//
//	x' = A*x + B*y + Tx
//	y' = C*x + D*y + Ty
//
// Matrix-producing methods (Translate, Scale, Rotate, SkewX, SkewY) each
// return self composed with the named operation applied AFTER self — that
// is, m.Rotate(r).Scale(s, s).Translate(tx, ty) means "rotate, then scale,
// then translate" when the result is applied to a point. This mirrors
// m.Then(Identity().Rotate(r)).Then(...) but without the intermediate
// matrices.
type Matrix struct {
	A, B, Tx float64
	C, D, Ty float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns self followed by a translation by (x, y).
func (m Matrix) Translate(x, y float64) Matrix {
	return Matrix{
		A: m.A, B: m.B, Tx: m.Tx + x,
		C: m.C, D: m.D, Ty: m.Ty + y,
	}
}

// Scale returns self followed by a scale by (x, y).
func (m Matrix) Scale(x, y float64) Matrix {
	return Matrix{
		A: m.A * x, B: m.B * x, Tx: m.Tx * x,
		C: m.C * y, D: m.D * y, Ty: m.Ty * y,
	}
}

// Rotate returns self followed by a rotation of angle radians.
func (m Matrix) Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: m.A*cos - m.C*sin, B: m.B*cos - m.D*sin, Tx: m.Tx*cos - m.Ty*sin,
		C: m.A*sin + m.C*cos, D: m.B*sin + m.D*cos, Ty: m.Tx*sin + m.Ty*cos,
	}
}

// SkewX returns self followed by an x-axis skew of dx.
func (m Matrix) SkewX(dx float64) Matrix {
	return Matrix{
		A: m.A + m.C*dx, B: m.B + m.D*dx, Tx: m.Tx + m.Ty*dx,
		C: m.C, D: m.D, Ty: m.Ty,
	}
}

// SkewY returns self followed by a y-axis skew of dy.
func (m Matrix) SkewY(dy float64) Matrix {
	return Matrix{
		A: m.A, B: m.B, Tx: m.Tx,
		C: m.C + m.A*dy, D: m.D + m.B*dy, Ty: m.Ty + m.Tx*dy,
	}
}

// Apply transforms p by the matrix.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: p.X*m.A + p.Y*m.B + m.Tx,
		Y: p.X*m.C + p.Y*m.D + m.Ty,
	}
}

// ApplyVector transforms a direction vector (ignores translation).
func (m Matrix) ApplyVector(p Point) Point {
	return Point{X: p.X*m.A + p.Y*m.B, Y: p.X*m.C + p.Y*m.D}
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse matrix. Returns the identity matrix for a
// singular (zero-determinant) input.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv, B: -m.B * inv, Tx: (m.B*m.Ty - m.Tx*m.D) * inv,
		C: -m.C * inv, D: m.A * inv, Ty: -(m.A*m.Ty - m.Tx*m.C) * inv,
	}
}

// Then returns the full composition of self followed by rhs: for any point
// p, m.Then(rhs).Apply(p) == rhs.Apply(m.Apply(p)).
func (m Matrix) Then(rhs Matrix) Matrix {
	return Matrix{
		A: m.A*rhs.A + m.C*rhs.B,
		B: m.B*rhs.A + m.D*rhs.B,
		Tx: m.Tx*rhs.A + m.Ty*rhs.B + rhs.Tx,

		C: m.A*rhs.C + m.C*rhs.D,
		D: m.B*rhs.C + m.D*rhs.D,
		Ty: m.Tx*rhs.C + m.Ty*rhs.D + rhs.Ty,
	}
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsDirect reports whether m preserves orientation (non-negative
// determinant). An indirect matrix reverses fill orientation and paths
// transformed by it must be flipped to preserve non-zero-rule fill.
func (m Matrix) IsDirect() bool {
	return m.B*m.C <= m.A*m.D
}
