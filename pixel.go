package ink

// Pixel is a color value that supports linear interpolation. Addition,
// subtraction and scaling are methods of the concrete color types, not of
// this interface.
type Pixel interface {
	Lerp(rhs Pixel, t float64) Pixel
}

// Rgba is a straight-alpha color: R, G, B, A are independent channels in
// linear [0, 1].
type Rgba struct {
	R, G, B, A float32
}

// Lerp implements Pixel.
func (p Rgba) Lerp(rhs Pixel, t float64) Pixel {
	q := rhs.(Rgba)
	i := float32(1 - t)
	r := float32(t)
	return Rgba{
		R: p.R*i + q.R*r,
		G: p.G*i + q.G*r,
		B: p.B*i + q.B*r,
		A: p.A*i + q.A*r,
	}
}

// Add returns the elementwise sum of p and q.
func (p Rgba) Add(q Rgba) Rgba {
	return Rgba{R: p.R + q.R, G: p.G + q.G, B: p.B + q.B, A: p.A + q.A}
}

// Sub returns the elementwise difference of p and q.
func (p Rgba) Sub(q Rgba) Rgba {
	return Rgba{R: p.R - q.R, G: p.G - q.G, B: p.B - q.B, A: p.A - q.A}
}

// Scale returns p with every channel multiplied by s.
func (p Rgba) Scale(s float32) Rgba {
	return Rgba{R: p.R * s, G: p.G * s, B: p.B * s, A: p.A * s}
}

// Premultiplied converts p to premultiplied-alpha form.
func (p Rgba) Premultiplied() PremultipliedRgba {
	return PremultipliedRgba{R: p.R * p.A, G: p.G * p.A, B: p.B * p.A, A: p.A}
}

// PremultipliedRgba is a premultiplied-alpha color: R, G, B already carry
// the A factor.
type PremultipliedRgba struct {
	R, G, B, A float32
}

// Lerp implements Pixel.
func (p PremultipliedRgba) Lerp(rhs Pixel, t float64) Pixel {
	q := rhs.(PremultipliedRgba)
	i := float32(1 - t)
	r := float32(t)
	return PremultipliedRgba{
		R: p.R*i + q.R*r,
		G: p.G*i + q.G*r,
		B: p.B*i + q.B*r,
		A: p.A*i + q.A*r,
	}
}

// Add returns the elementwise sum of p and q.
func (p PremultipliedRgba) Add(q PremultipliedRgba) PremultipliedRgba {
	return PremultipliedRgba{R: p.R + q.R, G: p.G + q.G, B: p.B + q.B, A: p.A + q.A}
}

// Sub returns the elementwise difference of p and q.
func (p PremultipliedRgba) Sub(q PremultipliedRgba) PremultipliedRgba {
	return PremultipliedRgba{R: p.R - q.R, G: p.G - q.G, B: p.B - q.B, A: p.A - q.A}
}

// Scale returns p with every channel multiplied by s.
func (p PremultipliedRgba) Scale(s float32) PremultipliedRgba {
	return PremultipliedRgba{R: p.R * s, G: p.G * s, B: p.B * s, A: p.A * s}
}

// Straight converts p to straight-alpha form. Returns fully transparent
// black when A is zero, guarding the division.
func (p PremultipliedRgba) Straight() Rgba {
	if p.A == 0 {
		return Rgba{}
	}
	return Rgba{R: p.R / p.A, G: p.G / p.A, B: p.B / p.A, A: p.A}
}

// Transparent is fully transparent black.
var Transparent = Rgba{}

// Opaque colors commonly used by examples and tests.
var (
	Black = Rgba{A: 1}
	White = Rgba{R: 1, G: 1, B: 1, A: 1}
	Red   = Rgba{R: 1, A: 1}
	Green = Rgba{G: 1, A: 1}
	Blue  = Rgba{B: 1, A: 1}
)
