package ink

import "math"

// FillColor evaluates a color at a point in the current coordinate frame.
type FillColor interface {
	FillColor(x, y float64) Rgba
}

// FillColorFunc adapts a plain function to FillColor.
type FillColorFunc func(x, y float64) Rgba

func (f FillColorFunc) FillColor(x, y float64) Rgba { return f(x, y) }

// Solid is a constant fill color.
type Solid struct {
	Color Rgba
}

func (s Solid) FillColor(x, y float64) Rgba { return s.Color }

// BlockCheck is a checkerboard fill color alternating between two colors
// at the given cell size.
type BlockCheck struct {
	Color1, Color2 Rgba
	Size           float64
}

func (b BlockCheck) FillColor(x, y float64) Rgba {
	cx := int(math.Floor(x / b.Size))
	cy := int(math.Floor(y / b.Size))
	if (cx+cy)%2 == 0 {
		return b.Color1
	}
	return b.Color2
}

// GradientStop is a (position, color) pair in a gradient's stop list,
// position in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Rgba
}

// gradientAt piecewise-linearly interpolates points (sorted by Offset) at
// parameter p, clamping to the first/last stop outside [points[0].Offset,
// points[last].Offset].
func gradientAt(points []GradientStop, p float64) Rgba {
	if len(points) == 0 {
		return Transparent
	}
	if p <= points[0].Offset {
		return points[0].Color
	}
	for i := 0; i < len(points)-1; i++ {
		right := points[i+1]
		if p <= right.Offset {
			left := points[i]
			t := (p - left.Offset) / (right.Offset - left.Offset)
			return left.Color.Lerp(right.Color, t).(Rgba)
		}
	}
	return points[len(points)-1].Color
}

// LinearGradient interpolates Stops along the axis from Start to End,
// projecting the query point onto that axis and normalizing to [0, 1]
// (clamped) by the axis length.
type LinearGradient struct {
	Start, End Point
	Stops      []GradientStop
}

func (g LinearGradient) FillColor(x, y float64) Rgba {
	d := g.End.Sub(g.Start)
	length := d.Norm()
	if length == 0 {
		return gradientAt(g.Stops, 0)
	}
	p := (Point{X: x, Y: y}.Sub(g.Start)).Dot(d) / (length * length)
	p = clampUnit(p)
	return gradientAt(g.Stops, p)
}

// RadialGradient interpolates Stops by distance from Center, normalized to
// [0, 1] (clamped) by Radius.
type RadialGradient struct {
	Center Point
	Radius float64
	Stops  []GradientStop
}

func (g RadialGradient) FillColor(x, y float64) Rgba {
	if g.Radius == 0 {
		return gradientAt(g.Stops, 0)
	}
	p := Point{X: x, Y: y}.Distance(g.Center) / g.Radius
	return gradientAt(g.Stops, clampUnit(p))
}

// ConicGradient interpolates Stops by angle around Center starting at
// StartAngle, normalized to [0, 1) over a full turn.
type ConicGradient struct {
	Center     Point
	StartAngle float64
	Stops      []GradientStop
}

func (g ConicGradient) FillColor(x, y float64) Rgba {
	angle := math.Atan2(y-g.Center.Y, x-g.Center.X) - g.StartAngle
	p := remEuclid(angle, 2*math.Pi) / (2 * math.Pi)
	return gradientAt(g.Stops, p)
}

func clampUnit(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Interpolation selects how Pattern samples its source buffer between
// pixel centers.
type Interpolation int

const (
	Nearest Interpolation = iota
	Bilinear
)

// Pattern samples a source Buffer, wrapping coordinates modulo the
// buffer's dimensions.
type Pattern struct {
	Source        Buffer
	Interpolation Interpolation
}

func (p Pattern) FillColor(x, y float64) Rgba {
	w, h := p.Source.Dimensions()
	if w == 0 || h == 0 {
		return Transparent
	}
	fw, fh := float64(w), float64(h)
	x = remEuclid(x, fw)
	y = remEuclid(y, fh)

	if p.Interpolation == Nearest {
		return p.Source.GetPixel(int(x)%w, int(y)%h)
	}

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	x0 %= w
	y0 %= h

	c00 := p.Source.GetPixel(x0, y0)
	c10 := p.Source.GetPixel(x1, y0)
	c01 := p.Source.GetPixel(x0, y1)
	c11 := p.Source.GetPixel(x1, y1)

	top := c00.Lerp(c10, tx).(Rgba)
	bottom := c01.Lerp(c11, tx).(Rgba)
	return top.Lerp(bottom, ty).(Rgba)
}

// ColorTransform wraps an inner FillColor, mapping query points through
// Matrix before evaluating it; NewColorTransform stores the inverse of the
// given transform there. This keeps gradients and patterns
// anchored to a path's local coordinate frame when a Context has an active
// transform in effect.
type ColorTransform struct {
	Inner  FillColor
	Matrix Matrix
}

// NewColorTransform stores the inverse of m so FillColor doesn't need to
// invert on every call.
func NewColorTransform(inner FillColor, m Matrix) ColorTransform {
	return ColorTransform{Inner: inner, Matrix: m.Inverse()}
}

func (c ColorTransform) FillColor(x, y float64) Rgba {
	p := c.Matrix.Apply(Point{X: x, Y: y})
	return c.Inner.FillColor(p.X, p.Y)
}
