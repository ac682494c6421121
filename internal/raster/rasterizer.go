package raster

// Point is a 2D point (a local copy to avoid an import cycle with the root
// package, matching the convention the rest of this module's internal
// packages follow).
type Point struct {
	X, Y float64
}

// Segment is a single line segment of a flattened path, in buffer (pixel)
// coordinates.
type Segment struct {
	A, B Point
}

// Writer receives one pixel's coverage value. x, y are pixel coordinates;
// v is the fill-rule-reduced coverage, not yet clamped beyond what the
// fill rule itself guarantees.
type Writer func(x, y int, v float64)

// Rasterizer accumulates signed coverage for a sequence of segments into a
// scratch buffer sized to (width, height), then reduces it through a
// FillRule. The scratch buffer is reused across calls to Rasterize and
// RasterizeNoAA.
type Rasterizer struct {
	width, height int
	buf           []float64
}

// New returns a Rasterizer for the given pixel dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height, buf: make([]float64, width*height)}
}

// Resize changes the rasterizer's dimensions, reallocating its scratch
// buffer if needed.
func (r *Rasterizer) Resize(width, height int) {
	r.width, r.height = width, height
	if need := width * height; cap(r.buf) < need {
		r.buf = make([]float64, need)
	} else {
		r.buf = r.buf[:need]
	}
}

// Rasterize accumulates analytic coverage for segments (antialiased: exact
// trapezoidal/triangular area per row-band) and writes the fill-rule result
// for every touched pixel via w. If writeTransparent is true, every pixel
// in the rasterizer's full extent is written (including zero-coverage
// ones); otherwise only pixels within the segments' bounding box that end
// up with nonzero coverage are written.
func (r *Rasterizer) Rasterize(segments []Segment, rule FillRule, w Writer, writeTransparent bool) {
	bound := [4]float64{float64(r.width), 0, float64(r.height), 0}
	width := r.width

	for _, seg := range segments {
		a, b := seg.A, seg.B
		if a.Y == b.Y {
			continue
		}
		signum := -1.0
		if a.Y >= b.Y {
			a, b = b, a
			signum = 1.0
		}
		upper, lower := a.Y, b.Y
		if lower < 0 || float64(r.height) <= upper {
			continue
		}

		bound[0] = minf(bound[0], minf(a.X, b.X))
		bound[1] = maxf(bound[1], maxf(a.X, b.X))
		bound[2] = minf(bound[2], upper)
		bound[3] = maxf(bound[3], lower)

		if a.X == b.X {
			if upper >= 0 {
				if lower <= ceil(upper) {
					r.f2(width, signum, upper, lower, a.X)
					continue
				}
				r.f2(width, signum, upper, ceil(upper), a.X)
			}
			if lower < float64(r.height) {
				r.f2(width, signum, floor(lower), lower, a.X)
			}
			for y := maxi(int(ceil(upper)), 0); y < mini(int(floor(lower)), r.height); y++ {
				r.f2(width, signum, float64(y), float64(y+1), a.X)
			}
		} else {
			inter := newIntersection(a, b)
			if upper >= 0 {
				if lower <= ceil(upper) {
					r.f1(width, &inter, signum, upper, lower)
					continue
				}
				r.f1(width, &inter, signum, upper, ceil(upper))
			}
			if lower < float64(r.height) {
				r.f1(width, &inter, signum, floor(lower), lower)
			}
			for y := maxi(int(ceil(upper)), 0); y < mini(int(floor(lower)), r.height); y++ {
				r.f1(width, &inter, signum, float64(y), float64(y+1))
			}
		}
	}

	r.transfer(rule, w, writeTransparent, bound)
}

// RasterizeNoAA accumulates one sample per row at the segment's
// intersection with the row's vertical center, rounded to the nearest
// pixel column (no antialiasing).
func (r *Rasterizer) RasterizeNoAA(segments []Segment, rule FillRule, w Writer, writeTransparent bool) {
	bound := [4]float64{float64(r.width), 0, float64(r.height), 0}
	width := r.width

	for _, seg := range segments {
		a, b := seg.A, seg.B
		if a.Y == b.Y {
			continue
		}
		signum := -1.0
		if a.Y >= b.Y {
			a, b = b, a
			signum = 1.0
		}
		upper, lower := a.Y, b.Y
		if lower < 0 || float64(r.height) <= upper {
			continue
		}

		bound[0] = minf(bound[0], minf(a.X, b.X))
		bound[1] = maxf(bound[1], maxf(a.X, b.X))
		bound[2] = minf(bound[2], upper)
		bound[3] = maxf(bound[3], lower)

		inter := newIntersection(a, b)
		for y := maxi(int(round(upper)), 0); y < mini(int(round(lower)), r.height); y++ {
			x := int(round(inter.intersectH(float64(y) + 0.5)))
			if x >= width || x < 0 {
				continue
			}
			r.buf[y*width+x] += signum
		}
	}

	r.transfer(rule, w, writeTransparent, bound)
}

func (r *Rasterizer) transfer(rule FillRule, w Writer, writeTransparent bool, bound [4]float64) {
	width := r.width
	if writeTransparent {
		for y := 0; y < r.height; y++ {
			acc := 0.0
			for x := 0; x < width; x++ {
				i := y*width + x
				acc += r.buf[i]
				r.buf[i] = 0
				w(x, y, rule.Apply(acc))
			}
		}
		return
	}

	y0 := maxi(int(floor(maxf(bound[2], 0))), 0)
	y1 := mini(int(ceilToInt(minf(bound[3], float64(r.height)))), r.height)
	x0 := maxi(int(floor(maxf(bound[0], 0))), 0)
	x1 := mini(int(ceilToInt(minf(bound[1]+1, float64(width)))), width)
	for y := y0; y < y1; y++ {
		acc := 0.0
		for x := x0; x < x1; x++ {
			i := y*width + x
			acc += r.buf[i]
			r.buf[i] = 0
			v := rule.Apply(acc)
			if v != 0 {
				w(x, y, v)
			}
		}
	}
}

func (r *Rasterizer) f1(width int, in *intersection, signum, upper, lower float64) {
	offset := int(floor(upper)) * width
	acc, v := 0.0, 0.0
	write := func(x int, a float64) {
		r.buf[offset+x] += (a - acc - v) * signum
		v = a - acc
		acc = a
	}

	upperX := in.intersectH(upper)
	lowerX := in.intersectH(lower)
	var xi int
	if upperX < lowerX {
		for x := maxi(int(floor(upperX)), 0); x < mini(int(floor(lowerX)), width); x++ {
			xf := float64(x + 1)
			y := in.intersectV(xf)
			write(x, (xf-upperX)*(y-upper)*0.5)
		}
		xi = int(floor(lowerX))
	} else {
		for x := maxi(int(floor(lowerX)), 0); x < mini(int(floor(upperX)), width); x++ {
			xf := float64(x + 1)
			y := in.intersectV(xf)
			write(x, (xf-lowerX)*(lower-y)*0.5)
		}
		xi = int(floor(upperX))
	}

	if xi < 0 {
		write(0, lower-upper)
	} else if xi < width {
		a := (float64(xi+1) - (upperX+lowerX)*0.5) * (lower - upper)
		write(xi, a)
		if xi+1 < width {
			write(xi+1, a+(lower-upper))
		}
	}
}

func (r *Rasterizer) f2(width int, signum, upper, lower, x float64) {
	offset := int(floor(upper)) * width
	if x < 0 {
		r.buf[offset] += (lower - upper) * signum
		return
	}
	if x < float64(width) {
		frac := x - floor(x)
		a := (1 - frac) * (lower - upper)
		xi := int(floor(x))
		r.buf[offset+xi] += a * signum
		if xi+1 < width {
			r.buf[offset+xi+1] += (lower - upper - a) * signum
		}
	}
}

// intersection is a line's parameterization usable to intersect with
// either a horizontal or vertical sweep line, avoiding a division per
// query.
type intersection struct {
	y0, dxdy, x0, dydx float64
}

func newIntersection(a, b Point) intersection {
	return intersection{
		y0:   a.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		x0:   a.X,
		dydx: (b.Y - a.Y) / (b.X - a.X),
	}
}

func (in intersection) intersectH(y float64) float64 {
	return (y-in.y0)*in.dxdy + in.x0
}

func (in intersection) intersectV(x float64) float64 {
	return (x-in.x0)*in.dydx + in.y0
}
