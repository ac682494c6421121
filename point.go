package ink

import "math"

// Point is a pair of real coordinates.
type Point struct {
	X, Y float64
}

// Pt constructs a Point from x, y.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns p divided by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// Atan2 returns the angle of p from the origin.
func (p Point) Atan2() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate returns p rotated counter-clockwise by angle radians about the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Lerp linearly interpolates between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Unit returns p scaled to unit length. Returns the zero point for a
// zero-length input.
func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		return Point{}
	}
	return p.Div(n)
}

// PointFromAngle returns the unit point at the given angle.
func PointFromAngle(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: cos, Y: sin}
}
