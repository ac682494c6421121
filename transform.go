package ink

import "math"

// Transform maps every item of p through m, producing Lines/Quads/Cubics by
// direct control-point mapping and Arcs by re-expressing them as Ellipses
// (radii = original radius, rotation 0) before applying the same
// ellipse-transform used for Ellipse items. If m is indirect (reverses
// orientation), the result is flipped so non-zero-rule fill stays correct.
func Transform(p Path, m Matrix) Path {
	items := make([]PathItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = transformItem(it, m)
	}
	out := Path{Items: items}
	if !m.IsDirect() {
		out = out.Flip()
	}
	return out
}

func transformItem(it PathItem, m Matrix) PathItem {
	switch v := it.(type) {
	case Line:
		return Line{P1: m.Apply(v.P1), P2: m.Apply(v.P2)}
	case Arc:
		return transformEllipse(Ellipse{
			Center: v.Center, Rx: v.Radius, Ry: v.Radius, Rotation: 0,
			Angle1: v.Angle1, Angle2: v.Angle2,
		}, m)
	case Ellipse:
		return transformEllipse(v, m)
	case Quad:
		return Quad{Start: m.Apply(v.Start), End: m.Apply(v.End), Control: m.Apply(v.Control)}
	case Cubic:
		return Cubic{
			Start: m.Apply(v.Start), End: m.Apply(v.End),
			Control1: m.Apply(v.Control1), Control2: m.Apply(v.Control2),
		}
	default:
		return it
	}
}

// transformEllipse maps an Ellipse through m, recovering the output radii
// and rotation from the composed matrix's linear part. The composed matrix
// first maps the unit circle onto the source ellipse (scale by its radii,
// rotate by its rotation, translate to its center), then applies m; the
// decomposition below extracts an equivalent T*R(rotation)*S(rx,ry) form
// from that composition, which only an orthogonal (no-skew) decomposition
// can represent directly. When the composed matrix carries no shear
// component relative to its own rotation (k == 0, the common case: pure
// translate/rotate/uniform-or-axis-scale inputs), the simpler axis-aligned
// form below is exact; otherwise the general closed-form solve recovers
// rotation and radii from the shear term k.
func transformEllipse(e Ellipse, m Matrix) Ellipse {
	am := Identity().Scale(e.Rx, e.Ry).Rotate(e.Rotation).Translate(e.Center.X, e.Center.Y).Then(m)

	center := Point{X: am.Tx, Y: am.Ty}
	k := math.Tan(math.Atan2(am.B, am.D) + math.Atan2(am.C, am.A))
	wv := Point{X: am.A, Y: am.C}.Rotate(math.Atan2(am.B, am.D))
	w := wv.X
	h := math.Hypot(am.B, am.D)
	signum := sign(w) * sign(h)
	w, h = math.Abs(w), math.Abs(h)

	if !isNormal(k) || k == 0 {
		return Ellipse{
			Center: center, Rx: w, Ry: h,
			Rotation: math.Atan2(am.C, am.A),
			Angle1:   e.Angle1, Angle2: e.Angle2,
		}
	}

	rotation := 0.5 * math.Atan(2*k/(1-k*k-(h/w)*(h/w)))
	radiusX := w * math.Sqrt(1-k/math.Tan(rotation))
	radiusY := w * math.Sqrt(1+k*math.Tan(rotation))
	rotation = rotation + math.Atan2(am.D, am.B)

	inv := Identity().Scale(radiusX, radiusY).Rotate(rotation).Translate(center.X, center.Y).Inverse()
	angle1 := inv.Apply(am.Apply(PointFromAngle(e.Angle1))).Atan2()
	angle2 := inv.Apply(am.Apply(PointFromAngle(e.Angle2))).Atan2()

	if xor(e.Angle1 < e.Angle2, signum < 0) && angle1 >= angle2 {
		angle2 += 2 * math.Pi
	}
	if xor(e.Angle1 > e.Angle2, signum < 0) && angle1 <= angle2 {
		angle1 += 2 * math.Pi
	}

	return Ellipse{Center: center, Rx: radiusX, Ry: radiusY, Rotation: rotation, Angle1: angle1, Angle2: angle2}
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

func isNormal(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return false
	}
	return true
}

func xor(a, b bool) bool {
	return a != b
}
