// Package ink implements a software 2D vector-graphics rasterizer.
//
// It converts path descriptions (lines, elliptical arcs, quadratic/cubic
// Bézier curves) into per-pixel coverage using an analytic scanline area
// accumulator, colorizes the covered pixels with a solid, gradient, or
// pattern fill color, and composites the result onto a destination buffer
// through a Porter-Duff-and-blend compositor.
//
// # Architecture
//
// The package follows the layering used by the tiny-skia/vello family of
// rasterizers, split into a path/geometry layer, a scanline rasterizer, and
// a pixel pipeline:
//
//   - [Path] and [PathBuilder]: an immutable sequence of curve segments,
//     built imperatively with current-point tracking.
//   - [Transform] and [Flatten]: affine transform of all segment kinds,
//     including ellipse re-parameterization under non-uniform scale, and
//     tolerance-bounded conversion to polylines.
//   - internal/stroke: stroke-to-fill outlining with configurable joins
//     and caps.
//   - internal/raster: the analytic area scanline rasterizer.
//   - internal/blend: the Porter-Duff and separable blend-mode catalog.
//   - [Context]: ties the above together behind fill/stroke operations on
//     a destination [Buffer].
//
// The core is single-threaded and synchronous: a [Context] owns a scratch
// accumulator reused across draws, and concurrent contexts over disjoint
// buffers are data-race-free.
package ink
