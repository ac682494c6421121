package ink

import (
	"github.com/gopherink/ink/internal/blend"
	"github.com/gopherink/ink/internal/raster"
	"github.com/gopherink/ink/internal/stroke"
)

// Context is the draw façade: a destination Buffer plus the quality and
// transform state every Fill/Stroke call reads. Zero value is not usable;
// build one with NewContext.
type Context struct {
	Buffer           Buffer
	Matrix           Matrix
	FlattenTolerance float64
	Antialias        bool
	Join             stroke.Join
	Cap              stroke.Cap
	MiterLimit       float64

	rasterizer *raster.Rasterizer
}

// NewContext returns a Context over buf at DefaultQuality with an identity
// matrix.
func NewContext(buf Buffer) *Context {
	c := &Context{Buffer: buf, Matrix: Identity()}
	c.applyQuality(defaultQuality)
	w, h := buf.Dimensions()
	c.rasterizer = raster.New(w, h)
	return c
}

type quality struct {
	tolerance float64
	aa        bool
	join      stroke.Join
	cap       stroke.Cap
}

var (
	lowQuality     = quality{tolerance: 2.0, aa: false, join: stroke.JoinBevel, cap: stroke.CapButt}
	defaultQuality = quality{tolerance: 1.0, aa: true, join: stroke.JoinBevel, cap: stroke.CapButt}
	highQuality    = quality{tolerance: 0.1, aa: true, join: stroke.JoinRound, cap: stroke.CapRound}
)

func (c *Context) applyQuality(q quality) {
	c.FlattenTolerance = q.tolerance
	c.Antialias = q.aa
	c.Join = q.join
	c.Cap = q.cap
	c.MiterLimit = 4.0
}

// LowQuality sets the fast, blocky preset: tolerance 2.0, no antialiasing,
// bevel joins, butt caps.
func (c *Context) LowQuality() { c.applyQuality(lowQuality) }

// DefaultQuality sets tolerance 1.0, antialiasing on, bevel joins, butt
// caps.
func (c *Context) DefaultQuality() { c.applyQuality(defaultQuality) }

// HighQuality sets the slow, smooth preset: tolerance 0.1, antialiasing on,
// round joins, round caps.
func (c *Context) HighQuality() { c.applyQuality(highQuality) }

// Child returns a new Context sharing this one's buffer and rasterizer
// scratch space, copying its quality and transform settings.
func (c *Context) Child() *Context {
	return &Context{
		Buffer:           c.Buffer,
		Matrix:           c.Matrix,
		FlattenTolerance: c.FlattenTolerance,
		Antialias:        c.Antialias,
		Join:             c.Join,
		Cap:              c.Cap,
		MiterLimit:       c.MiterLimit,
		rasterizer:       c.rasterizer,
	}
}

// Transformed returns a Child whose matrix is self.Matrix.Then(m): self's
// matrix is applied first and m second.
func (c *Context) Transformed(m Matrix) *Context {
	child := c.Child()
	child.Matrix = c.Matrix.Then(m)
	return child
}

func (c *Context) flattenedPath(p Path) Path {
	if c.Matrix.IsIdentity() {
		return Flatten(p, c.FlattenTolerance)
	}
	return Flatten(Transform(p, c.Matrix), c.FlattenTolerance)
}

func toRasterSegments(p Path) []raster.Segment {
	segs := make([]raster.Segment, 0, len(p.Items))
	for _, it := range p.Items {
		l, ok := it.(Line)
		if !ok {
			continue
		}
		segs = append(segs, raster.Segment{
			A: raster.Point{X: l.P1.X, Y: l.P1.Y},
			B: raster.Point{X: l.P2.X, Y: l.P2.Y},
		})
	}
	return segs
}

// writer builds the per-pixel (x,y,coverage) callback described by style:
// it reads the destination pixel, evaluates style.Color (wrapped so
// queries land in the Context's pre-transform coordinate frame), composites
// with style.Compositor scaled by coverage, and writes back.
func (c *Context) writer(style Style) raster.Writer {
	color := style.Color
	if !c.Matrix.IsIdentity() {
		color = NewColorTransform(style.Color, c.Matrix)
	}
	composite := blend.CompositeWithAlpha(style.Compositor)
	skipTransparent := blend.KeepsDstOnTransparentSrc(style.Compositor)
	return func(x, y int, v float64) {
		if v == 0 && skipTransparent {
			return
		}
		src := color.FillColor(float64(x)+0.5, float64(y)+0.5)
		dst := c.Buffer.GetPixel(x, y)
		out := composite(toBlendPixel(dst), toBlendPixel(src), float32(v))
		c.Buffer.PutPixel(x, y, fromBlendPixel(out))
	}
}

func toBlendPixel(p Rgba) blend.Pixel {
	pm := p.Premultiplied()
	return blend.Pixel{R: pm.R, G: pm.G, B: pm.B, A: pm.A}
}

func fromBlendPixel(p blend.Pixel) Rgba {
	return PremultipliedRgba{R: p.R, G: p.G, B: p.B, A: p.A}.Straight()
}

// Fill rasterizes path's interior (per style.FillRule) and composites
// style.Color into the buffer through style.Compositor. If the Context's
// matrix is not identity, path is transformed before flattening.
func (c *Context) Fill(path Path, style Style) {
	flat := c.flattenedPath(path)
	segs := toRasterSegments(flat)
	if len(segs) == 0 {
		return
	}
	w, h := c.Buffer.Dimensions()
	c.rasterizer.Resize(w, h)
	write := c.writer(style)
	rule := style.FillRule.toRaster()
	if c.Antialias {
		c.rasterizer.Rasterize(segs, rule, write, false)
	} else {
		c.rasterizer.RasterizeNoAA(segs, rule, write, false)
	}
}

// Stroke outlines path at the given width using the Context's current join
// and cap, then fills the resulting outline per style.
func (c *Context) Stroke(path Path, style Style, width float64) {
	c.StrokeWithStyle(path, style, width, c.Join, c.Cap)
}

// StrokeWithStyle is Stroke with explicit join/cap overrides.
func (c *Context) StrokeWithStyle(path Path, style Style, width float64, join stroke.Join, cap stroke.Cap) {
	if width <= 0 {
		return
	}
	flat := c.flattenedPath(path)
	sStyle := stroke.Style{Join: join, Cap: cap, MiterLimit: c.MiterLimit}
	var outline []raster.Segment
	for _, sub := range splitSubpaths(flat) {
		items := toStrokeItems(sub)
		if len(items) == 0 {
			continue
		}
		closed := sub.IsClosed()
		out := stroke.Outline(items, closed, width/2, sStyle)
		outline = append(outline, strokeItemsToSegments(out)...)
	}
	if len(outline) == 0 {
		return
	}
	w, h := c.Buffer.Dimensions()
	c.rasterizer.Resize(w, h)
	write := c.writer(style)
	rule := style.FillRule.toRaster()
	if c.Antialias {
		c.rasterizer.Rasterize(outline, rule, write, false)
	} else {
		c.rasterizer.RasterizeNoAA(outline, rule, write, false)
	}
}

// Clear overwrites every pixel of the buffer with color sampled at the
// pixel center, without compositing.
func (c *Context) Clear(color FillColor) {
	w, h := c.Buffer.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.Buffer.PutPixel(x, y, color.FillColor(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

// splitSubpaths breaks p into maximal runs of items whose endpoints are
// continuous, mirroring how Path's continuity invariant already guarantees
// each sub-run connects; a fresh subpath begins when an item's LeftPoint
// doesn't match the previous item's RightPoint.
func splitSubpaths(p Path) []Path {
	var subs []Path
	var cur []PathItem
	for i, it := range p.Items {
		if i > 0 {
			prev := p.Items[i-1]
			if prev.RightPoint() != it.LeftPoint() {
				subs = append(subs, Path{Items: cur})
				cur = nil
			}
		}
		cur = append(cur, it)
	}
	if len(cur) > 0 {
		subs = append(subs, Path{Items: cur})
	}
	return subs
}

func toStrokeItems(p Path) []stroke.PathItem {
	items := make([]stroke.PathItem, 0, len(p.Items))
	for _, it := range p.Items {
		switch v := it.(type) {
		case Line:
			items = append(items, stroke.Line{P1: toStrokePoint(v.P1), P2: toStrokePoint(v.P2)})
		case Arc:
			items = append(items, stroke.Arc{
				Center: toStrokePoint(v.Center), Radius: v.Radius,
				Angle1: v.Angle1, Angle2: v.Angle2,
			})
		case Ellipse:
			items = append(items, stroke.Ellipse{
				Center: toStrokePoint(v.Center), Rx: v.Rx, Ry: v.Ry, Rotation: v.Rotation,
				Angle1: v.Angle1, Angle2: v.Angle2,
			})
		case Quad:
			items = append(items, stroke.Quad{
				Start: toStrokePoint(v.Start), End: toStrokePoint(v.End), Control: toStrokePoint(v.Control),
			})
		}
	}
	return items
}

func toStrokePoint(p Point) stroke.Point { return stroke.Point{X: p.X, Y: p.Y} }

// strokeItemsToSegments turns stroke.Outline's output into rasterizer
// segments: lines pass through, and arcs/ellipses (as round joins and caps
// produce) are flattened. Other item kinds are skipped; the stroked path
// is already flattened, so its outline holds no quads.
func strokeItemsToSegments(items []stroke.PathItem) []raster.Segment {
	var segs []raster.Segment
	for _, it := range items {
		switch v := it.(type) {
		case stroke.Line:
			segs = append(segs, raster.Segment{
				A: raster.Point{X: v.P1.X, Y: v.P1.Y},
				B: raster.Point{X: v.P2.X, Y: v.P2.Y},
			})
		case stroke.Arc:
			segs = append(segs, flattenStrokeArc(v)...)
		case stroke.Ellipse:
			segs = append(segs, flattenStrokeEllipse(v)...)
		}
	}
	return segs
}

func flattenStrokeArc(a stroke.Arc) []raster.Segment {
	center := Point{X: a.Center.X, Y: a.Center.Y}
	return itemsToSegments(flattenArcLike(center, a.Radius, a.Radius, 0, a.Angle1, a.Angle2, 1.0))
}

func flattenStrokeEllipse(e stroke.Ellipse) []raster.Segment {
	center := Point{X: e.Center.X, Y: e.Center.Y}
	return itemsToSegments(flattenArcLike(center, e.Rx, e.Ry, e.Rotation, e.Angle1, e.Angle2, 1.0))
}

func itemsToSegments(items []PathItem) []raster.Segment {
	segs := make([]raster.Segment, 0, len(items))
	for _, it := range items {
		l, ok := it.(Line)
		if !ok {
			continue
		}
		segs = append(segs, raster.Segment{
			A: raster.Point{X: l.P1.X, Y: l.P1.Y},
			B: raster.Point{X: l.P2.X, Y: l.P2.Y},
		})
	}
	return segs
}
