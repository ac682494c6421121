package ink

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageBufferImplementsImageInterfaces(t *testing.T) {
	b := NewImageBuffer(2, 2)
	b.PutPixel(0, 0, Rgba{R: 1, G: 0.5, B: 0.25, A: 1})
	c := b.At(0, 0).(color.NRGBA64)
	assert.Equal(t, uint16(0xffff), c.R)
	assert.InDelta(t, 0.5, float64(c.G)/0xffff, 1e-3)
}

func TestImageBufferSetRoundTrip(t *testing.T) {
	b := NewImageBuffer(1, 1)
	b.Set(0, 0, color.NRGBA64{R: 0x8000, G: 0x4000, B: 0x2000, A: 0xffff})
	p := b.GetPixel(0, 0)
	assert.InDelta(t, float64(0x8000)/0xffff, p.R, 1e-3)
	assert.Equal(t, float32(1), p.A)
}

func TestImageBufferSetZeroAlpha(t *testing.T) {
	b := NewImageBuffer(1, 1)
	b.Set(0, 0, color.NRGBA64{A: 0})
	assert.Equal(t, Transparent, b.GetPixel(0, 0))
}

func TestSaveLoadBMPRoundTrip(t *testing.T) {
	src := NewImageBuffer(2, 2)
	src.PutPixel(0, 0, Rgba{R: 1, A: 1})
	src.PutPixel(1, 1, Rgba{B: 1, A: 1})

	var buf bytes.Buffer
	require.NoError(t, SaveBMP(&buf, src))

	out, err := LoadBMP(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Width, out.Width)
	assert.Equal(t, src.Height, out.Height)
	assert.InDelta(t, 1, out.GetPixel(0, 0).R, 0.02)
	assert.InDelta(t, 1, out.GetPixel(1, 1).B, 0.02)
}
