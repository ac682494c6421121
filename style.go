package ink

import (
	"github.com/gopherink/ink/internal/blend"
	"github.com/gopherink/ink/internal/raster"
)

// FillRule selects how the rasterizer's signed winding accumulator reduces
// to a coverage value.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
	Abs
	Raw
)

func (r FillRule) toRaster() raster.FillRule {
	switch r {
	case EvenOdd:
		return raster.EvenOdd{}
	case Abs:
		return raster.Abs{}
	case Raw:
		return raster.Raw{}
	default:
		return raster.NonZero{}
	}
}

// Style bundles what a fill or stroke draws with: the fill color, the
// compositing operator, and the fill rule.
type Style struct {
	Color      FillColor
	Compositor blend.Operator
	FillRule   FillRule
}
