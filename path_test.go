package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIsClosed(t *testing.T) {
	open := Path{Items: []PathItem{Line{P1: Pt(0, 0), P2: Pt(1, 0)}}}
	assert.False(t, open.IsClosed())

	closed := Path{Items: []PathItem{
		Line{P1: Pt(0, 0), P2: Pt(1, 0)},
		Line{P1: Pt(1, 0), P2: Pt(0, 0)},
	}}
	assert.True(t, closed.IsClosed())

	assert.False(t, Path{}.IsClosed())
}

func TestPathMerge(t *testing.T) {
	a := Path{Items: []PathItem{Line{P1: Pt(0, 0), P2: Pt(1, 0)}}}
	b := Path{Items: []PathItem{Line{P1: Pt(1, 0), P2: Pt(1, 1)}}}
	m := a.Merge(b)
	assert.Len(t, m.Items, 2)
	assert.Equal(t, a.Items[0], m.Items[0])
	assert.Equal(t, b.Items[0], m.Items[1])
}

func TestPathFlip(t *testing.T) {
	p := Path{Items: []PathItem{
		Line{P1: Pt(0, 0), P2: Pt(1, 0)},
		Line{P1: Pt(1, 0), P2: Pt(1, 1)},
	}}
	f := p.Flip()
	assert.Equal(t, Pt(1, 1), f.Items[0].LeftPoint())
	assert.Equal(t, Pt(0, 0), f.Items[len(f.Items)-1].RightPoint())
}

func TestPathAsPointsList(t *testing.T) {
	p := Path{Items: []PathItem{
		Line{P1: Pt(0, 0), P2: Pt(1, 0)},
		Line{P1: Pt(1, 0), P2: Pt(1, 1)},
	}}
	pts, ok := p.AsPointsList()
	assert.True(t, ok)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, pts)
}

func TestPathAsPointsListRejectsCurved(t *testing.T) {
	p := Path{Items: []PathItem{Arc{Center: Pt(0, 0), Radius: 1, Angle1: 0, Angle2: 1}}}
	_, ok := p.AsPointsList()
	assert.False(t, ok)
}

func TestPathAsPointsListEmpty(t *testing.T) {
	pts, ok := Path{}.AsPointsList()
	assert.True(t, ok)
	assert.Nil(t, pts)
}

func TestPathFromPoints(t *testing.T) {
	p := PathFromPoints([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)})
	assert.Len(t, p.Items, 2)
	assert.True(t, !p.IsClosed())
}

func TestArcLeftRightPoint(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 2, Angle1: 0, Angle2: 1.5707963267948966}
	assert.InDelta(t, 2, a.LeftPoint().X, 1e-9)
	assert.InDelta(t, 0, a.LeftPoint().Y, 1e-9)
	assert.InDelta(t, 0, a.RightPoint().X, 1e-9)
	assert.InDelta(t, 2, a.RightPoint().Y, 1e-9)
}

func TestArcFlip(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 1, Angle1: 0, Angle2: 1}
	f := a.Flip().(Arc)
	assert.Equal(t, a.Angle2, f.Angle1)
	assert.Equal(t, a.Angle1, f.Angle2)
}

func TestQuadPosEndpoints(t *testing.T) {
	q := Quad{Start: Pt(0, 0), Control: Pt(1, 2), End: Pt(2, 0)}
	assert.Equal(t, q.Start, q.Pos(0))
	assert.Equal(t, q.End, q.Pos(1))
}

func TestQuadSeparate(t *testing.T) {
	q := Quad{Start: Pt(0, 0), Control: Pt(1, 2), End: Pt(2, 0)}
	left, right := q.Separate(0.5)
	assert.Equal(t, q.Start, left.Start)
	assert.Equal(t, q.End, right.End)
	assert.Equal(t, left.End, right.Start)
	mid := q.Pos(0.5)
	assert.InDelta(t, mid.X, left.End.X, 1e-9)
	assert.InDelta(t, mid.Y, left.End.Y, 1e-9)
}

func TestCubicPosEndpoints(t *testing.T) {
	c := Cubic{Start: Pt(0, 0), Control1: Pt(0, 1), Control2: Pt(1, 1), End: Pt(1, 0)}
	assert.Equal(t, c.Start, c.Pos(0))
	assert.Equal(t, c.End, c.Pos(1))
}

func TestCubicSeparate(t *testing.T) {
	c := Cubic{Start: Pt(0, 0), Control1: Pt(0, 1), Control2: Pt(1, 1), End: Pt(1, 0)}
	left, right := c.Separate(0.5)
	assert.Equal(t, c.Start, left.Start)
	assert.Equal(t, c.End, right.End)
	assert.Equal(t, left.End, right.Start)
}
