package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageBufferGetPutPixel(t *testing.T) {
	b := NewImageBuffer(4, 3)
	b.PutPixel(1, 2, Red)
	assert.Equal(t, Red, b.GetPixel(1, 2))
	w, h := b.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
}

func TestImageBufferOutOfBounds(t *testing.T) {
	b := NewImageBuffer(2, 2)
	assert.Equal(t, Transparent, b.GetPixel(-1, 0))
	assert.Equal(t, Transparent, b.GetPixel(5, 0))
	b.PutPixel(-1, 0, Red) // no-op, must not panic
	b.PutPixel(5, 5, Red)  // no-op, must not panic
}

func TestImageBufferClear(t *testing.T) {
	b := NewImageBuffer(3, 3)
	b.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, Blue, b.GetPixel(x, y))
		}
	}
}
