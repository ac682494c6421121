package ink

import "math"

// PathItem is one segment of a Path: Line, Arc, Ellipse, Quad, or Cubic.
// Implementations are value types. Flattening, transformation and stroke
// conversion dispatch on them by type switch; the rasterizer itself only
// sees the line segments produced by flattening.
type PathItem interface {
	// LeftPoint is the item's parametric start point.
	LeftPoint() Point
	// RightPoint is the item's parametric end point.
	RightPoint() Point
	// Flip reverses the item's parameter direction, swapping its endpoints.
	Flip() PathItem

	isPathItem()
}

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Point
}

func (l Line) LeftPoint() Point  { return l.P1 }
func (l Line) RightPoint() Point { return l.P2 }
func (l Line) Flip() PathItem    { return Line{P1: l.P2, P2: l.P1} }
func (Line) isPathItem()         {}

// Arc is a circular arc centered at Center with the given Radius, swept from
// Angle1 to Angle2 (radians). The signed sweep is Angle2-Angle1; a positive
// sweep is counter-clockwise in the standard mathematical orientation.
type Arc struct {
	Center       Point
	Radius       float64
	Angle1, Angle2 float64
}

func (a Arc) LeftPoint() Point {
	return a.Center.Add(Point{X: math.Cos(a.Angle1), Y: math.Sin(a.Angle1)}.Mul(a.Radius))
}

func (a Arc) RightPoint() Point {
	return a.Center.Add(Point{X: math.Cos(a.Angle2), Y: math.Sin(a.Angle2)}.Mul(a.Radius))
}

func (a Arc) Flip() PathItem {
	return Arc{Center: a.Center, Radius: a.Radius, Angle1: a.Angle2, Angle2: a.Angle1}
}

func (Arc) isPathItem() {}

// Sweep returns the signed sweep angle (Angle2 - Angle1).
func (a Arc) Sweep() float64 {
	return a.Angle2 - a.Angle1
}

// AngleNorm returns (lo, hi) with lo in [0, 2π) and hi >= lo, the normalized
// angular span of the arc regardless of sweep sign.
func (a Arc) AngleNorm() (float64, float64) {
	a1, a2 := a.Angle1, a.Angle2
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	lo := remEuclid(a1, 2*math.Pi)
	hi := lo + (a2 - a1)
	return lo, hi
}

// Ellipse is an elliptical arc centered at Center with semi-axes Rx, Ry,
// rotated by Rotation radians, swept from Angle1 to Angle2 in the ellipse's
// own (unrotated) parameter space.
type Ellipse struct {
	Center         Point
	Rx, Ry         float64
	Rotation       float64
	Angle1, Angle2 float64
}

func (e Ellipse) pointAt(angle float64) Point {
	local := Point{X: e.Rx * math.Cos(angle), Y: e.Ry * math.Sin(angle)}
	return e.Center.Add(local.Rotate(e.Rotation))
}

func (e Ellipse) LeftPoint() Point  { return e.pointAt(e.Angle1) }
func (e Ellipse) RightPoint() Point { return e.pointAt(e.Angle2) }

func (e Ellipse) Flip() PathItem {
	return Ellipse{Center: e.Center, Rx: e.Rx, Ry: e.Ry, Rotation: e.Rotation, Angle1: e.Angle2, Angle2: e.Angle1}
}

func (Ellipse) isPathItem() {}

// Sweep returns the signed sweep angle (Angle2 - Angle1).
func (e Ellipse) Sweep() float64 {
	return e.Angle2 - e.Angle1
}

// AngleNorm returns (lo, hi) with lo in [0, 2π) and hi >= lo.
func (e Ellipse) AngleNorm() (float64, float64) {
	a1, a2 := e.Angle1, e.Angle2
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	lo := remEuclid(a1, 2*math.Pi)
	hi := lo + (a2 - a1)
	return lo, hi
}

// Bound returns the axis-aligned bounding box (xmin, xmax, ymin, ymax) of
// the full ellipse (ignoring the angle span).
func (e Ellipse) Bound() (xmin, xmax, ymin, ymax float64) {
	sin, cos := math.Sincos(e.Rotation)
	ux, uy := e.Rx*cos, e.Rx*sin
	vx, vy := e.Ry*-sin, e.Ry*cos
	dx := math.Hypot(ux, vx)
	dy := math.Hypot(uy, vy)
	return e.Center.X - dx, e.Center.X + dx, e.Center.Y - dy, e.Center.Y + dy
}

// Quad is a quadratic Bézier curve from Start to End with control point
// Control.
type Quad struct {
	Start, End, Control Point
}

func (q Quad) LeftPoint() Point  { return q.Start }
func (q Quad) RightPoint() Point { return q.End }
func (q Quad) Flip() PathItem    { return Quad{Start: q.End, End: q.Start, Control: q.Control} }
func (Quad) isPathItem()         {}

// Pos evaluates the curve at parameter t in [0, 1].
func (q Quad) Pos(t float64) Point {
	it := 1 - t
	return q.Start.Mul(it * it).Add(q.Control.Mul(2 * t * it)).Add(q.End.Mul(t * t))
}

// Separate splits the curve at parameter t into two quads covering [0,t]
// and [t,1] respectively.
func (q Quad) Separate(t float64) (Quad, Quad) {
	mid := q.Pos(t)
	return Quad{
			Start:   q.Start,
			End:     mid,
			Control: q.Start.Add(q.Control.Sub(q.Start).Mul(t)),
		}, Quad{
			Start:   mid,
			End:     q.End,
			Control: q.End.Add(q.Control.Sub(q.End).Mul(1 - t)),
		}
}

// Bound returns the axis-aligned bounding box (xmin, xmax, ymin, ymax),
// accounting for the interior extremum of the curve when present.
func (q Quad) Bound() (xmin, xmax, ymin, ymax float64) {
	xmin = math.Min(q.Start.X, q.End.X)
	xmax = math.Max(q.Start.X, q.End.X)
	ymin = math.Min(q.Start.Y, q.End.Y)
	ymax = math.Max(q.Start.Y, q.End.Y)

	if denom := q.Start.Y + q.End.Y - 2*q.Control.Y; denom != 0 {
		yt := (q.Start.Y - q.Control.Y) / denom
		if yt >= 0 && yt <= 1 {
			p := q.Pos(yt)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	if denom := q.Start.X + q.End.X - 2*q.Control.X; denom != 0 {
		xt := (q.Start.X - q.Control.X) / denom
		if xt >= 0 && xt <= 1 {
			p := q.Pos(xt)
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
		}
	}
	return xmin, xmax, ymin, ymax
}

// Cubic is a cubic Bézier curve from Start to End with control points
// Control1, Control2.
type Cubic struct {
	Start, End, Control1, Control2 Point
}

func (c Cubic) LeftPoint() Point  { return c.Start }
func (c Cubic) RightPoint() Point { return c.End }

func (c Cubic) Flip() PathItem {
	return Cubic{Start: c.End, End: c.Start, Control1: c.Control2, Control2: c.Control1}
}

func (Cubic) isPathItem() {}

// Pos evaluates the curve at parameter t in [0, 1].
func (c Cubic) Pos(t float64) Point {
	it := 1 - t
	a := it * it * it
	b := 3 * it * it * t
	d := 3 * it * t * t
	e := t * t * t
	return c.Start.Mul(a).Add(c.Control1.Mul(b)).Add(c.Control2.Mul(d)).Add(c.End.Mul(e))
}

// Separate splits the curve at parameter t into two cubics covering [0,t]
// and [t,1] respectively, via de Casteljau subdivision.
func (c Cubic) Separate(t float64) (Cubic, Cubic) {
	p01 := c.Start.Lerp(c.Control1, t)
	p12 := c.Control1.Lerp(c.Control2, t)
	p23 := c.Control2.Lerp(c.End, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return Cubic{Start: c.Start, Control1: p01, Control2: p012, End: mid},
		Cubic{Start: mid, Control1: p123, Control2: p23, End: c.End}
}

// remEuclid is the Euclidean remainder of x modulo m (always in [0, m) for
// m > 0), matching Rust's f64::rem_euclid used throughout the angle-norm
// helpers this package's geometry is grounded on.
func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// Path is an ordered sequence of PathItems. Adjacent items within a
// sub-path are continuous: items[i].RightPoint() == items[i+1].LeftPoint().
// Sub-path boundaries are implicit: a new sub-path begins wherever an
// item's LeftPoint differs from the previous item's RightPoint. PathBuilder
// inserts connecting Lines only within a sub-path; MoveTo and Merge start
// new sub-paths without connecting them.
type Path struct {
	Items []PathItem
}

// NewPath constructs a Path from an explicit item sequence. Callers are
// responsible for the continuity invariant; use PathBuilder to build paths
// incrementally instead when that isn't already guaranteed.
func NewPath(items []PathItem) Path {
	return Path{Items: items}
}

// IsClosed reports whether the path's first LeftPoint equals its last
// RightPoint. An empty path is not closed.
func (p Path) IsClosed() bool {
	if len(p.Items) == 0 {
		return false
	}
	first := p.Items[0].LeftPoint()
	last := p.Items[len(p.Items)-1].RightPoint()
	return first == last
}

// Merge concatenates other's items after p's, starting a new sub-path (no
// connecting item is inserted between the two).
func (p Path) Merge(other Path) Path {
	items := make([]PathItem, 0, len(p.Items)+len(other.Items))
	items = append(items, p.Items...)
	items = append(items, other.Items...)
	return Path{Items: items}
}

// Flip reverses the path: item order is reversed and each item is flipped,
// so traversal direction (and thus fill orientation) is inverted.
func (p Path) Flip() Path {
	items := make([]PathItem, len(p.Items))
	n := len(p.Items)
	for i, it := range p.Items {
		items[n-1-i] = it.Flip()
	}
	return Path{Items: items}
}

// AsPointsList extracts the path's polyline form: the left point of every
// item followed by the final item's right point. The second return value
// is false if any item is curved (Arc, Ellipse, Quad, or Cubic), since
// those have no exact polyline representation.
func (p Path) AsPointsList() ([]Point, bool) {
	if len(p.Items) == 0 {
		return nil, true
	}
	points := make([]Point, 0, len(p.Items)+1)
	for _, it := range p.Items {
		if _, ok := it.(Line); !ok {
			return nil, false
		}
		points = append(points, it.LeftPoint())
	}
	points = append(points, p.Items[len(p.Items)-1].RightPoint())
	return points, true
}

// PathFromPoints builds a Path of Line items connecting consecutive points.
func PathFromPoints(points []Point) Path {
	if len(points) < 2 {
		return Path{}
	}
	items := make([]PathItem, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		items = append(items, Line{P1: points[i], P2: points[i+1]})
	}
	return Path{Items: items}
}

// PathFromQuadPoints builds a Path of Quad items from a flattened
// start/control/end/control/end/... point sequence, as produced by
// quadratic-Bézier-only path data.
func PathFromQuadPoints(points []Point) Path {
	if len(points) < 3 {
		return Path{}
	}
	items := make([]PathItem, 0, len(points)/2)
	for i := 0; i+2 < len(points); i += 2 {
		items = append(items, Quad{Start: points[i], Control: points[i+1], End: points[i+2]})
	}
	return Path{Items: items}
}
