package ink

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"golang.org/x/image/bmp"
)

var (
	_ image.Image = (*ImageBuffer)(nil)
	_ draw.Image  = (*ImageBuffer)(nil)
)

// ColorModel implements image.Image.
func (b *ImageBuffer) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds implements image.Image.
func (b *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image, converting the stored straight-alpha f32
// pixel to 16-bit-per-channel NRGBA.
func (b *ImageBuffer) At(x, y int) color.Color {
	p := b.GetPixel(x, y)
	return color.NRGBA64{
		R: clamp16(p.R), G: clamp16(p.G), B: clamp16(p.B), A: clamp16(p.A),
	}
}

// Set implements draw.Image. color.Color.RGBA returns alpha-premultiplied
// 16-bit channels; Set converts back to the buffer's straight-alpha form.
func (b *ImageBuffer) Set(x, y int, c color.Color) {
	r, g, bl, a := c.RGBA()
	if a == 0 {
		b.PutPixel(x, y, Rgba{})
		return
	}
	b.PutPixel(x, y, Rgba{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(bl) / float32(a),
		A: float32(a) / 65535,
	})
}

func clamp16(v float32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 0xffff
	}
	return uint16(v * 0xffff)
}

// SaveBMP encodes b as a Windows bitmap via golang.org/x/image/bmp.
func SaveBMP(w io.Writer, b *ImageBuffer) error {
	return bmp.Encode(w, b)
}

// LoadBMP decodes a Windows bitmap into a new ImageBuffer.
func LoadBMP(r io.Reader) (*ImageBuffer, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	out := NewImageBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r16, g16, b16, a16 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a16 == 0 {
				continue
			}
			out.PutPixel(x, y, Rgba{
				R: float32(r16) / float32(a16),
				G: float32(g16) / float32(a16),
				B: float32(b16) / float32(a16),
				A: float32(a16) / 65535,
			})
		}
	}
	return out, nil
}
