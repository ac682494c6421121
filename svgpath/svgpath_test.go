package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherink/ink"
)

func items(t *testing.T, d string) []ink.PathItem {
	t.Helper()
	p, err := Parse(d)
	require.NoError(t, err)
	return p.Items
}

func TestParseAbsoluteLine(t *testing.T) {
	it := items(t, "M0 0 L10 0 L10 10")
	require.Len(t, it, 2)
	l0 := it[0].(ink.Line)
	assert.Equal(t, ink.Pt(0, 0), l0.P1)
	assert.Equal(t, ink.Pt(10, 0), l0.P2)
	l1 := it[1].(ink.Line)
	assert.Equal(t, ink.Pt(10, 10), l1.P2)
}

func TestParseRelativeLine(t *testing.T) {
	it := items(t, "m0 0 l10 0 l0 10")
	require.Len(t, it, 2)
	assert.Equal(t, ink.Pt(10, 0), it[0].(ink.Line).P2)
	assert.Equal(t, ink.Pt(10, 10), it[1].(ink.Line).P2)
}

func TestParseImplicitMoveToRepeatIsLineTo(t *testing.T) {
	// a second coordinate pair after M is an implicit L
	it := items(t, "M0 0 5 5 10 0")
	require.Len(t, it, 2)
	assert.Equal(t, ink.Pt(5, 5), it[0].(ink.Line).P2)
	assert.Equal(t, ink.Pt(10, 0), it[1].(ink.Line).P2)
}

func TestParseHAndV(t *testing.T) {
	it := items(t, "M0 0 H10 V10 h-5 v-5")
	require.Len(t, it, 4)
	assert.Equal(t, ink.Pt(10, 0), it[0].(ink.Line).P2)
	assert.Equal(t, ink.Pt(10, 10), it[1].(ink.Line).P2)
	assert.Equal(t, ink.Pt(5, 10), it[2].(ink.Line).P2)
	assert.Equal(t, ink.Pt(5, 5), it[3].(ink.Line).P2)
}

func TestParseImplicitCommandRepetition(t *testing.T) {
	it := items(t, "M0 0 L1 0 2 0 3 0")
	require.Len(t, it, 3)
	assert.Equal(t, ink.Pt(3, 0), it[2].(ink.Line).P2)
}

func TestParseCubicAndSmoothCubic(t *testing.T) {
	p, err := Parse("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	require.NoError(t, err)
	require.Len(t, p.Items, 2)

	c0 := p.Items[0].(ink.Cubic)
	assert.Equal(t, ink.Pt(10, 0), c0.End)
	assert.Equal(t, ink.Pt(10, 10), c0.Control2)

	c1 := p.Items[1].(ink.Cubic)
	// reflected control point: mirror (10,10) through (10,0) -> (10,-10)
	assert.InDelta(t, 10, c1.Control1.X, 1e-9)
	assert.InDelta(t, -10, c1.Control1.Y, 1e-9)
	assert.Equal(t, ink.Pt(20, 0), c1.End)
}

func TestParseSmoothCubicWithoutPrecedingCurveReflectsToCurrentPoint(t *testing.T) {
	p, err := Parse("M5 5 S10 0 10 10")
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	c := p.Items[0].(ink.Cubic)
	assert.Equal(t, ink.Pt(5, 5), c.Control1)
}

func TestParseQuadAndSmoothQuad(t *testing.T) {
	p, err := Parse("M0 0 Q5 10 10 0 T20 0")
	require.NoError(t, err)
	require.Len(t, p.Items, 2)

	q0 := p.Items[0].(ink.Quad)
	assert.Equal(t, ink.Pt(5, 10), q0.Control)

	q1 := p.Items[1].(ink.Quad)
	assert.InDelta(t, 15, q1.Control.X, 1e-9)
	assert.InDelta(t, -10, q1.Control.Y, 1e-9)
	assert.Equal(t, ink.Pt(20, 0), q1.End)
}

func TestParseCloseEmitsLineBackToStart(t *testing.T) {
	p, err := Parse("M0 0 L10 0 L10 10 Z")
	require.NoError(t, err)
	require.Len(t, p.Items, 3)
	last := p.Items[2].(ink.Line)
	assert.Equal(t, ink.Pt(10, 10), last.P1)
	assert.Equal(t, ink.Pt(0, 0), last.P2)
	assert.True(t, p.IsClosed())
}

func TestParseArcProducesEllipse(t *testing.T) {
	p, err := Parse("M10 0 A10 10 0 0 1 0 10")
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	e := p.Items[0].(ink.Ellipse)
	assert.InDelta(t, 10, e.Rx, 1e-6)
	assert.InDelta(t, 10, e.Ry, 1e-6)
	left := e.LeftPoint()
	right := e.RightPoint()
	assert.InDelta(t, 10, left.X, 1e-6)
	assert.InDelta(t, 0, left.Y, 1e-6)
	assert.InDelta(t, 0, right.X, 1e-6)
	assert.InDelta(t, 10, right.Y, 1e-6)
}

func TestParseArcGluedFlags(t *testing.T) {
	// arc flags glued to neighboring numbers with no separator
	_, err := Parse("M10 10 A1 1 0 0115 10")
	require.NoError(t, err)
}

func TestParseArcZeroRadiusFallsBackToLine(t *testing.T) {
	p, err := Parse("M0 0 A0 5 0 0 1 10 10")
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	l := p.Items[0].(ink.Line)
	assert.Equal(t, ink.Pt(10, 10), l.P2)
}

func TestParseTruncatedCommandArguments(t *testing.T) {
	_, err := Parse("M0 0 Q0")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse("M0 0 X10 10")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Offset)
}

func TestParseErrorMessageFormat(t *testing.T) {
	_, err := Parse("Q")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "svgpath:")
	assert.Contains(t, perr.Error(), "at offset")
}

func TestEndpointToCenterHalfCircle(t *testing.T) {
	center, rx, ry, a1, a2, ok := endpointToCenter(0, 0, 10, 0, 5, 5, 0, false, true)
	require.True(t, ok)
	assert.InDelta(t, 5, center.X, 1e-6)
	assert.InDelta(t, 0, center.Y, 1e-6)
	assert.InDelta(t, 5, rx, 1e-6)
	assert.InDelta(t, 5, ry, 1e-6)
	assert.InDelta(t, math.Pi, math.Abs(a2-a1), 1e-6)
}
