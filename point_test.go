package ink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	assert.Equal(t, Pt(4, 6), p.Add(q))
	assert.Equal(t, Pt(2, 2), p.Sub(q))
	assert.Equal(t, Pt(6, 8), p.Mul(2))
	assert.Equal(t, Pt(1.5, 2), p.Div(2))
	assert.Equal(t, 11.0, p.Dot(q))
	assert.Equal(t, 5.0, p.Norm())
	assert.Equal(t, 5.0, p.Distance(Point{}))
}

func TestPointRotate(t *testing.T) {
	p := Pt(1, 0)
	r := p.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 1, r.Y, 1e-9)
}

func TestPointUnitOfZero(t *testing.T) {
	assert.Equal(t, Point{}, Point{}.Unit())
}

func TestPointUnit(t *testing.T) {
	u := Pt(3, 4).Unit()
	assert.InDelta(t, 1.0, u.Norm(), 1e-9)
}

func TestPointFromAngle(t *testing.T) {
	p := PointFromAngle(0)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 20)
	assert.Equal(t, Pt(5, 10), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}
