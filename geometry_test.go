package ink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectSegmentAndSegment(t *testing.T) {
	p, ok := IntersectSegmentAndSegment(Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0))
	assert.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
}

func TestIntersectSegmentAndSegmentOutOfBounds(t *testing.T) {
	_, ok := IntersectSegmentAndSegment(Pt(0, 0), Pt(1, 1), Pt(5, 0), Pt(5, 2))
	assert.False(t, ok)
}

func TestIntersectSegmentAndSegmentParallel(t *testing.T) {
	_, ok := IntersectSegmentAndSegment(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1))
	assert.False(t, ok)
}

func TestIntersectLineAndLine(t *testing.T) {
	p, ok := IntersectLineAndLine(Pt(0, 0), Pt(1, 0), Pt(5, -5), Pt(5, 5))
	assert.True(t, ok)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestIntersectSegmentAndHorizontal(t *testing.T) {
	x, ok := IntersectSegmentAndHorizontal(0, 0, 10, 10, 5)
	assert.True(t, ok)
	assert.InDelta(t, 5, x, 1e-9)

	_, ok = IntersectSegmentAndHorizontal(0, 0, 10, 0, 5)
	assert.False(t, ok)
}

func TestIntersectSegmentAndCircle(t *testing.T) {
	p, ok := IntersectSegmentAndCircle(Pt(0, 0), Pt(2, 0))
	assert.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestIntersectSegmentAndCircleMiss(t *testing.T) {
	_, ok := IntersectSegmentAndCircle(Pt(5, 5), Pt(5, 6))
	assert.False(t, ok)
}

func TestDistanceToLine(t *testing.T) {
	d := DistanceToLine(Pt(0, 0), Pt(10, 0), Pt(5, 3))
	assert.InDelta(t, 3, d, 1e-9)
}

func TestDistanceSquaredToSegmentClamped(t *testing.T) {
	d := DistanceSquaredToSegment(Pt(0, 0), Pt(10, 0), Pt(-3, 4))
	assert.InDelta(t, 9+16, d, 1e-9)
	d = DistanceSquaredToSegment(Pt(0, 0), Pt(10, 0), Pt(13, 4))
	assert.InDelta(t, 9+16, d, 1e-9)
	d = DistanceSquaredToSegment(Pt(0, 0), Pt(10, 0), Pt(5, 3))
	assert.InDelta(t, 9, d, 1e-9)
}

func TestIntersectSegmentAndArc(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 5, Angle1: 0, Angle2: math.Pi}
	l := Line{P1: Pt(0, 0), P2: Pt(0, 10)}
	p, ok := IntersectSegmentAndArc(l, a)
	assert.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)
}

func TestIntersectSegmentAndArcOutsideSweep(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 5, Angle1: 0, Angle2: math.Pi / 2}
	l := Line{P1: Pt(0, 0), P2: Pt(-10, 0)}
	// crosses the circle from inside to outside at (-5,0), angle pi, which
	// lies outside the arc's sweep [0, pi/2], so no intersection is found.
	_, ok := IntersectSegmentAndArc(l, a)
	assert.False(t, ok)
}
