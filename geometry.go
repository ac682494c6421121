package ink

import "math"

// IntersectSegmentAndSegment returns the intersection of segments p1-p2 and
// p3-p4, and whether one exists within both segments' bounds. Parallel or
// colinear segments report no intersection.
func IntersectSegmentAndSegment(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return Point{}, false
	}
	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / denom
	u := ((p3.X-p1.X)*d1.Y - (p3.Y-p1.Y)*d1.X) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return p1.Add(d1.Mul(t)), true
}

// IntersectLineAndLine returns the intersection of the infinite lines
// through (p1,p2) and (p3,p4). Parallel inputs report no intersection.
func IntersectLineAndLine(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return Point{}, false
	}
	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / denom
	return p1.Add(d1.Mul(t)), true
}

// IntersectSegmentAndHorizontal returns the x coordinate where the segment
// (ax,ay)-(bx,by) crosses the horizontal line y=hy, if it does.
func IntersectSegmentAndHorizontal(ax, ay, bx, by, hy float64) (float64, bool) {
	if ay == by {
		return 0, false
	}
	below := hy < ay
	if below == (hy < by) {
		return 0, false
	}
	r := (hy - ay) / (by - ay)
	return ax*(1-r) + bx*r, true
}

// IntersectSegmentAndCircle finds where a unit circle centered at the
// origin crosses the segment from inside (p1 inside, p2 outside, or vice
// versa); used by arc-stroke hit testing. p1 and p2 must be pre-scaled so
// the circle in question has unit radius.
func IntersectSegmentAndCircle(p1, p2 Point) (Point, bool) {
	d := p2.Sub(p1)
	a := d.Dot(d)
	if a == 0 {
		return Point{}, false
	}
	b := 2 * p1.Dot(d)
	c := p1.Dot(p1) - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return Point{}, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	var t float64
	switch {
	case t1 >= 0 && t1 <= 1:
		t = t1
	case t2 >= 0 && t2 <= 1:
		t = t2
	default:
		return Point{}, false
	}
	return p1.Add(d.Mul(t)), true
}

// DistanceToLine returns the perpendicular distance from p0 to the
// infinite line through p1, p2.
func DistanceToLine(p1, p2, p0 Point) float64 {
	return math.Abs((p2.Y-p1.Y)*p0.X-(p2.X-p1.X)*p0.Y+p2.X*p1.Y-p2.Y*p1.X) / math.Hypot(p2.Y-p1.Y, p2.X-p1.X)
}

// DistanceSquaredToSegment returns the squared distance from p0 to the
// closest point on the segment p1-p2.
func DistanceSquaredToSegment(p1, p2, p0 Point) float64 {
	a := p2.X - p1.X
	b := p2.Y - p1.Y
	r2 := a*a + b*b
	if r2 == 0 {
		return p0.Sub(p1).Dot(p0.Sub(p1))
	}
	t := -(a*(p1.X-p0.X) + b*(p1.Y-p0.Y))
	switch {
	case t < 0:
		d := p1.Sub(p0)
		return d.Dot(d)
	case t > r2:
		d := p2.Sub(p0)
		return d.Dot(d)
	default:
		cross := a*(p1.Y-p0.Y) - b*(p1.X-p0.X)
		return cross * cross / r2
	}
}

// IntersectSegmentAndArc finds where segment l crosses arc a (a circular
// arc), if at all. A crossing is reported only when one endpoint of l is
// inside or on the circle and the other outside; a segment with both
// endpoints outside reports none.
func IntersectSegmentAndArc(l Line, a Arc) (Point, bool) {
	p1 := l.P1.Sub(a.Center)
	p2 := l.P2.Sub(a.Center)
	d1, d2 := p1.Norm(), p2.Norm()

	var p Point
	var ok bool
	switch {
	case d1 <= a.Radius && a.Radius < d2:
		p, ok = IntersectSegmentAndCircle(p1.Div(a.Radius), p2.Div(a.Radius))
	case d2 <= a.Radius && a.Radius < d1:
		p, ok = IntersectSegmentAndCircle(p2.Div(a.Radius), p1.Div(a.Radius))
	default:
		return Point{}, false
	}
	if !ok {
		return Point{}, false
	}
	angle := remEuclidGeom(p.Atan2(), 2*math.Pi)
	lo, hi := a.AngleNorm()
	if angle < lo || angle > hi {
		return Point{}, false
	}
	return p.Mul(a.Radius), true
}

func remEuclidGeom(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
