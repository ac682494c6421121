package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepsDstOnTransparentSrc(t *testing.T) {
	assert.True(t, KeepsDstOnTransparentSrc(Src))
	assert.True(t, KeepsDstOnTransparentSrc(Clear))
	assert.False(t, KeepsDstOnTransparentSrc(SrcOver))
	assert.False(t, KeepsDstOnTransparentSrc(Multiply))
}

func TestSrcOverOpaqueSrcReplacesDst(t *testing.T) {
	dst := Pixel{R: 0, G: 0, B: 0, A: 1}
	src := Pixel{R: 1, G: 1, B: 1, A: 1}
	out := Composite(SrcOver)(dst, src)
	assert.InDelta(t, 1, out.R, 1e-6)
	assert.InDelta(t, 1, out.A, 1e-6)
}

func TestSrcOverTransparentSrcKeepsDst(t *testing.T) {
	dst := Pixel{R: 0.5, G: 0.2, B: 0.1, A: 1}
	src := Pixel{}
	out := Composite(SrcOver)(dst, src)
	assert.Equal(t, dst, out)
}

func TestClearAlwaysTransparent(t *testing.T) {
	out := Composite(Clear)(Pixel{R: 1, G: 1, B: 1, A: 1}, Pixel{R: 1, A: 1})
	assert.Equal(t, Pixel{}, out)
}

func TestSrcReplacesRegardlessOfDst(t *testing.T) {
	dst := Pixel{R: 0.9, G: 0.9, B: 0.9, A: 1}
	src := Pixel{R: 0.2, G: 0.2, B: 0.2, A: 0.5}
	out := Composite(Src)(dst, src)
	assert.InDelta(t, 0.5, out.A, 1e-6)
	assert.InDelta(t, 0.2, out.R, 1e-6)
}

func TestDstAtopZeroAlphaIsClear(t *testing.T) {
	out := Composite(DstAtop)(Pixel{}, Pixel{})
	assert.Equal(t, Pixel{}, out)
}

func TestCompositeWithAlphaScalesSourceByCoverage(t *testing.T) {
	dst := Pixel{}
	src := Pixel{R: 1, G: 1, B: 1, A: 1}
	out := CompositeWithAlpha(SrcOver)(dst, src, 0.5)
	assert.InDelta(t, 0.5, out.A, 1e-6)
}

func TestMultiplyBlendDarkens(t *testing.T) {
	dst := Pixel{R: 0.8, G: 0.8, B: 0.8, A: 1}
	src := Pixel{R: 0.5, G: 0.5, B: 0.5, A: 1}
	out := Composite(Multiply)(dst, src)
	assert.InDelta(t, 0.4, out.R, 1e-5)
}

func TestScreenBlendLightens(t *testing.T) {
	dst := Pixel{R: 0.2, A: 1}
	src := Pixel{R: 0.5, A: 1}
	out := Composite(Screen)(dst, src)
	assert.InDelta(t, 0.2+0.5-0.2*0.5, out.R, 1e-5)
}

func TestDarkenAndLighten(t *testing.T) {
	dst := Pixel{R: 0.8, A: 1}
	src := Pixel{R: 0.3, A: 1}
	assert.InDelta(t, 0.3, Composite(Darken)(dst, src).R, 1e-6)
	assert.InDelta(t, 0.8, Composite(Lighten)(dst, src).R, 1e-6)
}

func TestSoftLightAtHalfGraySourceIsIdentity(t *testing.T) {
	dst := Pixel{R: 0.37, G: 0.37, B: 0.37, A: 1}
	src := Pixel{R: 0.5, G: 0.5, B: 0.5, A: 1}
	out := Composite(SoftLight)(dst, src)
	assert.InDelta(t, dst.R, out.R, 1e-5)
}

func TestSoftLightZeroAlphaSrcDoesNotPanic(t *testing.T) {
	dst := Pixel{R: 0.4, A: 0.6}
	src := Pixel{A: 0}
	assert.NotPanics(t, func() {
		Composite(SoftLight)(dst, src)
	})
}

func TestDifferenceBlendIsSymmetric(t *testing.T) {
	dst := Pixel{R: 0.2, A: 1}
	src := Pixel{R: 0.9, A: 1}
	out := Composite(Difference)(dst, src)
	assert.InDelta(t, 0.7, out.R, 1e-5)
}

func TestAddClampsAlphaAtOne(t *testing.T) {
	dst := Pixel{R: 0.6, A: 0.7}
	src := Pixel{R: 0.6, A: 0.7}
	out := Composite(Add)(dst, src)
	assert.LessOrEqual(t, out.A, float32(1))
}
