package ink

import "math"

// Flatten replaces every curved item of p (Arc, Ellipse, Quad, Cubic) with
// a sequence of Lines whose chord-to-curve deviation is at most tolerance.
// Lines pass through unchanged. The continuity invariant is preserved: each
// emitted chord meets its neighbor at a shared sampled point.
func Flatten(p Path, tolerance float64) Path {
	var items []PathItem
	for _, it := range p.Items {
		switch v := it.(type) {
		case Line:
			items = append(items, v)
		case Arc:
			items = append(items, flattenArcLike(v.Center, v.Radius, v.Radius, 0, v.Angle1, v.Angle2, tolerance)...)
		case Ellipse:
			items = append(items, flattenArcLike(v.Center, v.Rx, v.Ry, v.Rotation, v.Angle1, v.Angle2, tolerance)...)
		case Quad:
			items = append(items, flattenQuad(v, tolerance)...)
		case Cubic:
			items = append(items, flattenCubic(v, tolerance)...)
		}
	}
	return Path{Items: items}
}

// flattenArcLike samples a circular or elliptical arc into chords. The step
// angle is chosen so the sagitta (the maximum chord-to-arc deviation for a
// circle of the larger radius) stays within tolerance; both radii share the
// same step count so up- and down-sweeping arcs flatten symmetrically.
func flattenArcLike(center Point, rx, ry, rotation, a1, a2, tolerance float64) []PathItem {
	sweep := a2 - a1
	r := math.Max(rx, ry)
	if r <= 0 || sweep == 0 {
		return nil
	}
	maxStep := 2 * math.Acos(1-math.Min(tolerance/r, 1))
	if maxStep <= 0 {
		maxStep = math.Pi / 180
	}
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 1 {
		n = 1
	}
	pointAt := func(angle float64) Point {
		local := Point{X: rx * math.Cos(angle), Y: ry * math.Sin(angle)}
		return center.Add(local.Rotate(rotation))
	}
	items := make([]PathItem, 0, n)
	prev := pointAt(a1)
	for i := 1; i <= n; i++ {
		t := a1 + sweep*float64(i)/float64(n)
		cur := pointAt(t)
		items = append(items, Line{P1: prev, P2: cur})
		prev = cur
	}
	return items
}

func flattenQuad(q Quad, tolerance float64) []PathItem {
	var items []PathItem
	flattenQuadRec(q, tolerance, &items)
	return items
}

func flattenQuadRec(q Quad, tolerance float64, items *[]PathItem) {
	if quadIsFlat(q, tolerance) {
		*items = append(*items, Line{P1: q.Start, P2: q.End})
		return
	}
	left, right := q.Separate(0.5)
	flattenQuadRec(left, tolerance, items)
	flattenQuadRec(right, tolerance, items)
}

func quadIsFlat(q Quad, tolerance float64) bool {
	return distanceToLine(q.Control, q.Start, q.End) < tolerance
}

func flattenCubic(c Cubic, tolerance float64) []PathItem {
	var items []PathItem
	flattenCubicRec(c, tolerance, &items)
	return items
}

func flattenCubicRec(c Cubic, tolerance float64, items *[]PathItem) {
	if cubicIsFlat(c, tolerance) {
		*items = append(*items, Line{P1: c.Start, P2: c.End})
		return
	}
	left, right := c.Separate(0.5)
	flattenCubicRec(left, tolerance, items)
	flattenCubicRec(right, tolerance, items)
}

func cubicIsFlat(c Cubic, tolerance float64) bool {
	d1 := distanceToLine(c.Control1, c.Start, c.End)
	d2 := distanceToLine(c.Control2, c.Start, c.End)
	return math.Max(d1, d2) < tolerance
}

// distanceToLine returns the perpendicular distance from p to the line
// through a and b. Degenerate (a == b) inputs fall back to distance to a.
func distanceToLine(p, a, b Point) float64 {
	d := b.Sub(a)
	length := d.Norm()
	if length == 0 {
		return p.Distance(a)
	}
	cross := d.X*(p.Y-a.Y) - d.Y*(p.X-a.X)
	return math.Abs(cross) / length
}
