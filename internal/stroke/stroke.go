// Package stroke expands a path into its stroked outline: a closed fill
// path offset by a half-width on either side of each segment, joined at
// vertices and capped at open ends.
package stroke

import "math"

// Point is a local copy to avoid an import cycle with the root package.
type Point struct{ X, Y float64 }

func (p Point) Add(q Point) Point  { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point  { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Div(s float64) Point { return Point{p.X / s, p.Y / s} }
func (p Point) Norm() float64      { return math.Hypot(p.X, p.Y) }
func (p Point) Atan2() float64     { return math.Atan2(p.Y, p.X) }

func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		return Point{}
	}
	return p.Div(n)
}

// PathItem is one of Line, Arc, Ellipse, Quad, mirroring the root package's
// PathItem but kept local to this package.
type PathItem interface {
	LeftPoint() Point
	RightPoint() Point
	isItem()
}

type Line struct{ P1, P2 Point }

func (l Line) LeftPoint() Point  { return l.P1 }
func (l Line) RightPoint() Point { return l.P2 }
func (Line) isItem()             {}

type Arc struct {
	Center         Point
	Radius         float64
	Angle1, Angle2 float64
}

func (a Arc) LeftPoint() Point {
	return a.Center.Add(Point{math.Cos(a.Angle1), math.Sin(a.Angle1)}.Mul(a.Radius))
}
func (a Arc) RightPoint() Point {
	return a.Center.Add(Point{math.Cos(a.Angle2), math.Sin(a.Angle2)}.Mul(a.Radius))
}
func (Arc) isItem() {}

// ArcFromPoints builds an Arc centered at center through start swept to end,
// always in the positive direction: Angle1 is wrapped into [0, 2π) and
// Angle2 >= Angle1 lies less than one turn beyond it, so the sweep may be
// the longer of the two arcs between the points.
func ArcFromPoints(center, start, end Point) Arc {
	a1 := remEuclid(start.Sub(center).Atan2(), 2*math.Pi)
	a2 := remEuclid(end.Sub(center).Atan2(), 2*math.Pi)
	if a1 > a2 {
		a2 += 2 * math.Pi
	}
	return Arc{Center: center, Radius: start.Sub(center).Norm(), Angle1: a1, Angle2: a2}
}

type Ellipse struct {
	Center         Point
	Rx, Ry         float64
	Rotation       float64
	Angle1, Angle2 float64
}

func (e Ellipse) pointAt(angle float64) Point {
	local := Point{e.Rx * math.Cos(angle), e.Ry * math.Sin(angle)}
	sin, cos := math.Sincos(e.Rotation)
	return e.Center.Add(Point{local.X*cos - local.Y*sin, local.X*sin + local.Y*cos})
}

func (e Ellipse) LeftPoint() Point  { return e.pointAt(e.Angle1) }
func (e Ellipse) RightPoint() Point { return e.pointAt(e.Angle2) }
func (Ellipse) isItem()             {}

type Quad struct{ Start, End, Control Point }

func (q Quad) LeftPoint() Point  { return q.Start }
func (q Quad) RightPoint() Point { return q.End }
func (Quad) isItem()              {}

func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func normal(from, to Point) Point {
	n := to.Sub(from).Unit()
	return Point{X: n.Y, Y: -n.X}
}

// itemBold returns the two offset edges (outer then inner, the inner
// running in reverse parameter direction) bounding item at half-width w.
func itemBold(item PathItem, w float64) []PathItem {
	switch v := item.(type) {
	case Line:
		d := normal(v.P1, v.P2).Mul(w)
		return []PathItem{
			Line{P1: v.P1.Add(d), P2: v.P2.Add(d)},
			Line{P1: v.P2.Sub(d), P2: v.P1.Sub(d)},
		}
	case Arc:
		signum := sign(v.Angle2 - v.Angle1)
		return []PathItem{
			Arc{Center: v.Center, Radius: math.Max(v.Radius+w*signum, 0), Angle1: v.Angle1, Angle2: v.Angle2},
			Arc{Center: v.Center, Radius: math.Max(v.Radius-w*signum, 0), Angle1: v.Angle2, Angle2: v.Angle1},
		}
	case Ellipse:
		signum := sign(v.Angle2 - v.Angle1)
		return []PathItem{
			Ellipse{
				Center: v.Center, Rx: math.Max(v.Rx+w*signum, 0), Ry: math.Max(v.Ry+w*signum, 0),
				Rotation: v.Rotation, Angle1: v.Angle1, Angle2: v.Angle2,
			},
			Ellipse{
				Center: v.Center, Rx: math.Max(v.Rx-w*signum, 0), Ry: math.Max(v.Ry-w*signum, 0),
				Rotation: v.Rotation, Angle1: v.Angle2, Angle2: v.Angle1,
			},
		}
	case Quad:
		startD := normal(v.Start, v.Control).Mul(w)
		endD := normal(v.Control, v.End).Mul(w)
		return []PathItem{
			Quad{
				Start: v.Start.Add(startD), End: v.End.Add(endD),
				Control: intersectLines(v.Start.Add(startD), v.Control.Add(startD), v.End.Add(endD), v.Control.Add(endD)),
			},
			Quad{
				Start: v.End.Sub(endD), End: v.Start.Sub(startD),
				Control: intersectLines(v.Start.Sub(startD), v.Control.Sub(startD), v.End.Sub(endD), v.Control.Sub(endD)),
			},
		}
	default:
		return nil
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// intersectLines returns the intersection of infinite lines (p1,p2) and
// (p3,p4). Parallel inputs return their midpoint as a well-defined
// fallback (total function, per the no-panic contract this package
// follows).
func intersectLines(p1, p2, p3, p4 Point) Point {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return p2.Add(p3).Div(2)
	}
	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / denom
	return p1.Add(d1.Mul(t))
}

// pointIsRightSideOfLine reports whether v2 lies clockwise of v1 (both
// measured from a common origin), used to choose which side of a join
// vertex the round arc bulges toward.
func pointIsRightSideOfLine(v1, v2 Point) bool {
	return v1.X*v2.Y-v1.Y*v2.X < 0
}

// Join selects how two consecutive bold edges meet at a path vertex.
type Join int

const (
	JoinBevel Join = iota
	JoinRound
	JoinMiter
	JoinNoJoin
)

// Cap selects how an open path's two ends are closed.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Style bundles join/cap plus the miter limit (ratio of miter length to
// half-width beyond which Miter falls back to Bevel).
type Style struct {
	Join       Join
	Cap        Cap
	MiterLimit float64
}

// Outline builds the closed fill path bounding items at half-width w,
// joined per style.Join and (for an open path) capped per style.Cap.
// closed indicates whether items form a closed sub-path (its last
// RightPoint equals its first LeftPoint).
func Outline(items []PathItem, closed bool, w float64, style Style) []PathItem {
	if len(items) == 0 || w <= 0 {
		return nil
	}
	pis := make([]PathItem, 0, len(items)*4)
	pis = append(pis, itemBold(items[0], w)...)
	m := len(pis)
	for _, it := range items[1:] {
		l := len(pis)
		pis = append(pis, itemBold(it, w)...)
		p11 := pis[m-2].RightPoint()
		p12 := pis[l].LeftPoint()
		p21 := pis[l+1].RightPoint()
		p22 := pis[m-1].LeftPoint()
		p0 := it.LeftPoint()
		pis = addJoin(pis, style, p0, p11, p12, p21, p22, pis[m-2], pis[l])
		m = l + 2
	}
	if closed {
		p11 := pis[m-2].RightPoint()
		p12 := pis[0].LeftPoint()
		p21 := pis[1].RightPoint()
		p22 := pis[m-1].LeftPoint()
		p0 := items[0].LeftPoint()
		pis = addJoin(pis, style, p0, p11, p12, p21, p22, pis[m-2], pis[0])
	} else {
		p1 := pis[m-2].RightPoint()
		p2 := pis[m-1].LeftPoint()
		pis = addCap(pis, style.Cap, p1, p2)
		p1 = pis[1].RightPoint()
		p2 = pis[0].LeftPoint()
		pis = addCap(pis, style.Cap, p1, p2)
	}
	return pis
}

func addJoin(pis []PathItem, style Style, center, start1, end1, start2, end2 Point, prevOuter, curOuter PathItem) []PathItem {
	switch style.Join {
	case JoinRound:
		if pointIsRightSideOfLine(start1.Sub(center), end1.Sub(center)) {
			pis = append(pis, ArcFromPoints(center, start1, end1), Line{P1: start2, P2: end2})
		} else {
			pis = append(pis, Line{P1: start1, P2: end1}, ArcFromPoints(center, start2, end2))
		}
	case JoinMiter:
		pis = addMiterJoin(pis, style.MiterLimit, center, start1, end1, start2, end2, prevOuter, curOuter)
	case JoinNoJoin:
		pis = append(pis, Line{P1: start1, P2: end2}, Line{P1: start2, P2: end1})
	default: // JoinBevel
		pis = append(pis, Line{P1: start1, P2: end1}, Line{P1: start2, P2: end2})
	}
	return pis
}

// addMiterJoin extends the outer pair of bold edges (as straight lines
// along their own direction) to their intersection, falling back to Bevel
// when the miter length (vertex-to-intersection distance relative to the
// half-width) exceeds the style's limit, or when either edge is curved
// (miter is only well-defined for straight segments). The inner pair
// always bevels, matching how a stroke's inner corner is conventionally
// drawn regardless of the outer join style.
func addMiterJoin(pis []PathItem, limit float64, center, start1, end1, start2, end2 Point, prevOuter, curOuter PathItem) []PathItem {
	prevLine, ok1 := prevOuter.(Line)
	curLine, ok2 := curOuter.(Line)
	w := start1.Sub(center).Norm()
	if !ok1 || !ok2 || w == 0 {
		pis = append(pis, Line{P1: start1, P2: end1}, Line{P1: start2, P2: end2})
		return pis
	}
	d1 := prevLine.P2.Sub(prevLine.P1)
	d2 := curLine.P2.Sub(curLine.P1)
	p := intersectLines(start1, start1.Add(d1), end1, end1.Add(d2))
	if p.Sub(center).Norm()/w <= limit {
		pis = append(pis, Line{P1: start1, P2: p}, Line{P1: p, P2: end1})
	} else {
		pis = append(pis, Line{P1: start1, P2: end1})
	}
	pis = append(pis, Line{P1: start2, P2: end2})
	return pis
}

func addCap(pis []PathItem, cap Cap, start, end Point) []PathItem {
	switch cap {
	case CapRound:
		return append(pis, ArcFromPoints(start.Add(end).Div(2), start, end))
	case CapSquare:
		v := end.Sub(start)
		d := Point{X: v.Y, Y: -v.X}.Mul(0.5)
		return append(pis,
			Line{P1: start, P2: start.Add(d)},
			Line{P1: start.Add(d), P2: end.Add(d)},
			Line{P1: end.Add(d), P2: end},
		)
	default: // CapButt
		return append(pis, Line{P1: start, P2: end})
	}
}
