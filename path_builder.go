package ink

// PathBuilder builds a Path imperatively, tracking the current point so
// that consecutive emitted items are continuous. Its zero value is ready
// to use.
type PathBuilder struct {
	items        []PathItem
	currentPoint *Point
	subpathStart *Point
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

func (b *PathBuilder) connectTo(left Point) {
	if b.currentPoint != nil && *b.currentPoint != left {
		b.items = append(b.items, Line{P1: *b.currentPoint, P2: left})
	}
}

func (b *PathBuilder) advanceTo(p Point) {
	b.currentPoint = &Point{X: p.X, Y: p.Y}
}

// MoveTo starts a new sub-path at (x, y) without emitting an item.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	p := Pt(x, y)
	b.advanceTo(p)
	b.subpathStart = &Point{X: p.X, Y: p.Y}
	return b
}

// LineTo emits a Line from the current point to (x, y). If there is no
// current point, this behaves like MoveTo.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	p := Pt(x, y)
	if b.currentPoint == nil {
		return b.MoveTo(x, y)
	}
	b.items = append(b.items, Line{P1: *b.currentPoint, P2: p})
	b.advanceTo(p)
	return b
}

// ArcTo emits a circular Arc centered at (cx, cy) with the given radius,
// swept from a1 to a2 radians, connecting from the current point if needed.
func (b *PathBuilder) ArcTo(cx, cy, radius, a1, a2 float64) *PathBuilder {
	item := Arc{Center: Pt(cx, cy), Radius: radius, Angle1: a1, Angle2: a2}
	b.connectTo(item.LeftPoint())
	b.items = append(b.items, item)
	b.advanceTo(item.RightPoint())
	return b
}

// EllipseTo emits an Ellipse item, connecting from the current point if
// needed.
func (b *PathBuilder) EllipseTo(cx, cy, rx, ry, rotation, a1, a2 float64) *PathBuilder {
	item := Ellipse{Center: Pt(cx, cy), Rx: rx, Ry: ry, Rotation: rotation, Angle1: a1, Angle2: a2}
	b.connectTo(item.LeftPoint())
	b.items = append(b.items, item)
	b.advanceTo(item.RightPoint())
	return b
}

// QuadTo emits a Quad from the current point to (x, y) with control point
// (cx, cy).
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	start := Pt(0, 0)
	if b.currentPoint != nil {
		start = *b.currentPoint
	}
	item := Quad{Start: start, Control: Pt(cx, cy), End: Pt(x, y)}
	b.connectTo(item.LeftPoint())
	b.items = append(b.items, item)
	b.advanceTo(item.RightPoint())
	return b
}

// CubicTo emits a Cubic from the current point to (x, y) with control
// points (cx1, cy1) and (cx2, cy2).
func (b *PathBuilder) CubicTo(cx1, cy1, cx2, cy2, x, y float64) *PathBuilder {
	start := Pt(0, 0)
	if b.currentPoint != nil {
		start = *b.currentPoint
	}
	item := Cubic{Start: start, Control1: Pt(cx1, cy1), Control2: Pt(cx2, cy2), End: Pt(x, y)}
	b.connectTo(item.LeftPoint())
	b.items = append(b.items, item)
	b.advanceTo(item.RightPoint())
	return b
}

// Close emits a Line back to the sub-path's start point (a no-op if there
// is none, or if already there) and clears the sub-path state.
func (b *PathBuilder) Close() *PathBuilder {
	if b.subpathStart != nil && b.currentPoint != nil && *b.currentPoint != *b.subpathStart {
		b.items = append(b.items, Line{P1: *b.currentPoint, P2: *b.subpathStart})
	}
	b.advanceToOrNil(b.subpathStart)
	b.subpathStart = nil
	return b
}

func (b *PathBuilder) advanceToOrNil(p *Point) {
	if p == nil {
		b.currentPoint = nil
		return
	}
	b.advanceTo(*p)
}

// CurrentPoint returns the builder's current point and whether one is set.
func (b *PathBuilder) CurrentPoint() (Point, bool) {
	if b.currentPoint == nil {
		return Point{}, false
	}
	return *b.currentPoint, true
}

// End consumes the builder and returns the built Path.
func (b *PathBuilder) End() Path {
	return Path{Items: b.items}
}
