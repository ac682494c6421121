package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilderLineTo(t *testing.T) {
	p := NewPathBuilder().MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).End()
	assert.Len(t, p.Items, 2)
	assert.Equal(t, Pt(0, 0), p.Items[0].LeftPoint())
	assert.Equal(t, Pt(1, 1), p.Items[1].RightPoint())
}

func TestPathBuilderLineToWithoutMoveTo(t *testing.T) {
	p := NewPathBuilder().LineTo(3, 4).End()
	assert.Len(t, p.Items, 0)
	pos, ok := NewPathBuilder().LineTo(3, 4).CurrentPoint()
	assert.True(t, ok)
	assert.Equal(t, Pt(3, 4), pos)
}

func TestPathBuilderConnectsGap(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(0, 0)
	b.ArcTo(5, 5, 2, 0, 1)
	p := b.End()
	assert.Len(t, p.Items, 2)
	assert.IsType(t, Line{}, p.Items[0])
}

func TestPathBuilderNoConnectWhenAligned(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(7, 0)
	b.ArcTo(5, 0, 2, 0, 1)
	p := b.End()
	assert.Len(t, p.Items, 1)
	assert.IsType(t, Arc{}, p.Items[0])
}

func TestPathBuilderClose(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).Close()
	p := b.End()
	assert.True(t, p.IsClosed())
	last := p.Items[len(p.Items)-1]
	assert.Equal(t, Pt(0, 0), last.RightPoint())
}

func TestPathBuilderCloseNoop(t *testing.T) {
	b := NewPathBuilder()
	p := b.Close().End()
	assert.Len(t, p.Items, 0)
}

func TestPathBuilderQuadAndCubic(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(0, 0).QuadTo(1, 2, 2, 0).CubicTo(3, 2, 4, -2, 5, 0)
	p := b.End()
	assert.Len(t, p.Items, 2)
	assert.IsType(t, Quad{}, p.Items[0])
	assert.IsType(t, Cubic{}, p.Items[1])
	assert.Equal(t, Pt(5, 0), p.Items[1].RightPoint())
}

func TestPathBuilderCurrentPointUnset(t *testing.T) {
	_, ok := NewPathBuilder().CurrentPoint()
	assert.False(t, ok)
}
