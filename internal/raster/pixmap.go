// Package raster implements the scan-conversion algorithms for the
// rasterizer: Bresenham lines and circles, the even-odd polygon scanline
// filler with its Global/Active Edge Table, and affine-textured triangle
// and polygon fills. Every entry point writes through the Pixmap interface,
// which bounds-checks and alpha-blends each pixel — nothing here ever
// writes outside [0,W)x[0,H).
package raster

import "github.com/gogpu/raster2d/internal/pixel"

// Pixmap is the minimal pixel store the rasterizer writes into. Framebuffer
// (the root package's public type) implements this directly. The method
// names deliberately avoid At/Set — Framebuffer spells those in terms of
// image/color.Color for its image.Image/draw.Image conformance, and
// RawAt/SetRaw are the packed-uint32 path the rasterizer actually wants.
type Pixmap interface {
	Width() int
	Height() int
	RawAt(x, y int) uint32
	SetRaw(x, y int, p uint32)
}

// blendPixel bounds-checks (x, y) and composites src over the current
// destination pixel with source-over blending. Out-of-range writes are
// silently dropped.
func blendPixel(pm Pixmap, x, y int, src uint32) {
	if x < 0 || x >= pm.Width() || y < 0 || y >= pm.Height() {
		return
	}
	_, _, _, a := pixel.Unpack(src)
	if a == 0 {
		return
	}
	if a == 255 {
		pm.SetRaw(x, y, src)
		return
	}
	pm.SetRaw(x, y, pixel.Blend(src, pm.RawAt(x, y)))
}

// blendSpan blends src across the half-open row span [x0, x1) at row y,
// clipping the span to the pixmap's bounds first. Matches spec.md §4.7's
// rule: alpha==255 overwrites, alpha>0 blends, alpha==0 is a no-op.
func blendSpan(pm Pixmap, x0, x1, y int, src uint32) {
	if y < 0 || y >= pm.Height() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > pm.Width() {
		x1 = pm.Width()
	}
	if x0 >= x1 {
		return
	}

	_, _, _, a := pixel.Unpack(src)
	if a == 0 {
		return
	}
	if a == 255 {
		for x := x0; x < x1; x++ {
			pm.SetRaw(x, y, src)
		}
		return
	}
	for x := x0; x < x1; x++ {
		pm.SetRaw(x, y, pixel.Blend(src, pm.RawAt(x, y)))
	}
}
