// Package blend implements the Porter-Duff compositing operators and the
// separable blend modes, over a local premultiplied-RGBA pixel copy (to
// avoid an import cycle with the root package).
package blend

import "math"

// Pixel is a premultiplied RGBA color in linear [0, 1].
type Pixel struct {
	R, G, B, A float32
}

// Op composites src over dst at full coverage.
type Op func(dst, src Pixel) Pixel

// OpWithAlpha composites src over dst, first scaling src's alpha by
// coverage (as produced by the rasterizer).
type OpWithAlpha func(dst, src Pixel, coverage float32) Pixel

// Operator names the Porter-Duff catalog plus the separable blend modes.
type Operator int

const (
	Clear Operator = iota
	Src
	Dst
	SrcOver
	SrcIn
	SrcOut
	SrcAtop
	DstOver
	DstIn
	DstOut
	DstAtop
	Xor
	Add
	Darken
	Lighten
	Multiply
	Screen
	Overlay
	HardLight
	ColorDodge
	ColorBurn
	SoftLight
	Difference
	Exclusion
)

// KeepsDstOnTransparentSrc reports whether op leaves dst unchanged when
// src.A == 0, the "keep_dst_on_transparent_src" predicate the rasterizer
// uses to decide whether zero-coverage pixels can be skipped.
func KeepsDstOnTransparentSrc(op Operator) bool {
	switch op {
	case Src, SrcIn, SrcOut, DstIn, DstOut, DstAtop, Clear:
		return true
	default:
		return false
	}
}

// Composite returns the full-coverage composite function for op.
func Composite(op Operator) Op {
	if fn, ok := blendFuncs[op]; ok {
		return blendComposite(fn)
	}
	return porterDuff[op]
}

// CompositeWithAlpha returns the coverage-scaled composite function for op.
func CompositeWithAlpha(op Operator) OpWithAlpha {
	if fn, ok := blendFuncs[op]; ok {
		return func(dst, src Pixel, coverage float32) Pixel {
			src.R *= coverage
			src.G *= coverage
			src.B *= coverage
			src.A *= coverage
			return blendComposite(fn)(dst, src)
		}
	}
	full := porterDuff[op]
	return func(dst, src Pixel, coverage float32) Pixel {
		src.R *= coverage
		src.G *= coverage
		src.B *= coverage
		src.A *= coverage
		return full(dst, src)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// combine applies the standard Porter-Duff coefficient pair (fa, fb) to
// each premultiplied RGB channel, staying in premultiplied space with no
// division by the output alpha: out.rgb = dst.rgb*fa + src.rgb*fb,
// out.a = ca. A non-positive ca yields a fully transparent pixel.
func combine(dst, src Pixel, ca, fa, fb float32) Pixel {
	if ca <= 0 {
		return Pixel{}
	}
	return Pixel{
		R: dst.R*fa + src.R*fb,
		G: dst.G*fa + src.G*fb,
		B: dst.B*fa + src.B*fb,
		A: ca,
	}
}

var porterDuff = map[Operator]Op{
	Clear: func(dst, src Pixel) Pixel { return Pixel{} },
	Src: func(dst, src Pixel) Pixel {
		return combine(dst, src, src.A, 0, 1)
	},
	Dst: func(dst, src Pixel) Pixel {
		return combine(dst, src, dst.A, 1, 0)
	},
	SrcOver: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a+b-a*b, 1-b, 1)
	},
	SrcIn: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a*b, 0, a)
	},
	SrcOut: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, (1-a)*b, 0, 1-a)
	},
	SrcAtop: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a, 1-b, b)
	},
	DstOver: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a+b-a*b, 1, 1-a)
	},
	DstIn: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a*b, b, 0)
	},
	DstOut: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a*(1-b), 1-b, 0)
	},
	DstAtop: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, b, a, 1-a)
	},
	Xor: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		return combine(dst, src, a+b-2*a*b, 1-b, 1-a)
	},
	Add: func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		ca := a + b
		if ca > 1 {
			ca = 1
		}
		return combine(dst, src, ca, 1, 1)
	},
}

// blendChannel is a channel blend function B(dstC, srcC) operating on
// straight (un-premultiplied, per-channel) colors in [0, 1].
type blendChannel func(d, s float32) float32

var blendFuncs = map[Operator]blendChannel{
	Darken: func(d, s float32) float32 { return float32(math.Min(float64(d), float64(s))) },
	Lighten: func(d, s float32) float32 { return float32(math.Max(float64(d), float64(s))) },
	Multiply: func(d, s float32) float32 { return d * s },
	Screen: func(d, s float32) float32 { return d + s - d*s },
	Overlay: func(d, s float32) float32 { return hardLight(s, d) },
	HardLight: hardLight,
	ColorDodge: func(d, s float32) float32 {
		if d == 0 {
			return 0
		}
		if s == 1 {
			return 1
		}
		return clamp01(d / (1 - s))
	},
	ColorBurn: func(d, s float32) float32 {
		if d == 1 {
			return 1
		}
		if s == 0 {
			return 0
		}
		return clamp01(1 - (1-d)/s)
	},
	SoftLight: softLight,
	Difference: func(d, s float32) float32 { return float32(math.Abs(float64(d - s))) },
	Exclusion: func(d, s float32) float32 { return d + s - 2*d*s },
}

func hardLight(d, s float32) float32 {
	if s <= 0.5 {
		return d * 2 * s
	}
	return d + (2*s-1)*(1-d)
}

func softLight(d, s float32) float32 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var g float32
	if d <= 0.25 {
		g = ((16*d-12)*d + 4) * d
	} else {
		g = float32(math.Sqrt(float64(d)))
	}
	return d + (2*s-1)*(g-d)
}

// blendComposite builds the canonical Porter-Duff blend-and-composite
// formula for a channel blend function: out.rgb = dst.rgb*(1-b) +
// src.rgb*(1-a) + B(dst.rgb, src.rgb)*a*b, out.a = a+b-ab. Inputs/outputs
// are kept in premultiplied form by scaling the blend term by a*b. The
// straight-color blend function B is evaluated on channels divided back to
// straight form by their own alpha; a channel whose alpha is 0 is taken as
// 0, and the blend term vanishes there anyway.
func blendComposite(fn blendChannel) Op {
	return func(dst, src Pixel) Pixel {
		a, b := dst.A, src.A
		ca := a + b - a*b
		if ca <= 0 {
			return Pixel{}
		}
		straight := func(c, alpha float32) float32 {
			if alpha == 0 {
				return 0
			}
			return c / alpha
		}
		dr, dg, db := straight(dst.R, a), straight(dst.G, a), straight(dst.B, a)
		sr, sg, sb := straight(src.R, b), straight(src.G, b), straight(src.B, b)
		out := func(dc, sc, blended float32) float32 {
			return dc*(1-b) + sc*(1-a) + blended*a*b
		}
		return Pixel{
			R: out(dst.R, src.R, fn(dr, sr)),
			G: out(dst.G, src.G, fn(dg, sg)),
			B: out(dst.B, src.B, fn(db, sb)),
			A: ca,
		}
	}
}
