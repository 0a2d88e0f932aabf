package raster2d

import "github.com/gogpu/raster2d/internal/raster"

// DrawPolygonFilled scan-converts verts with the even-odd rule, filling the
// interior with a solid color. Polygons with fewer than 3 vertices are
// dropped silently.
func DrawPolygonFilled(fb *Framebuffer, verts []Vector2, color uint32) {
	raster.FillPolygon(fb, verts, color)
}

// DrawPolygonOutline draws the closed edge loop of verts as a sequence of
// Bresenham lines.
func DrawPolygonOutline(fb *Framebuffer, verts []Vector2, color uint32) {
	raster.DrawPolygonOutline(fb, verts, color)
}

// DrawPolygonTextured scan-converts verts with the even-odd rule, sampling
// tex at the UV interpolated across each span and modulating each texel by
// the tint color before compositing. modulate == 0xFFFFFFFF means "no tint".
// Sampling is always nearest-neighbor at this entry point; use
// DrawTriangleTextured directly for bilinear-filtered fills.
func DrawPolygonTextured(fb *Framebuffer, verts, uvs []Vector2, tex *Texture, modulate uint32) {
	raster.FillPolygonTextured(fb, verts, uvs, tex, modulate, false)
}
