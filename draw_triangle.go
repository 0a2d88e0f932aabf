package raster2d

import "github.com/gogpu/raster2d/internal/raster"

// DrawTriangleTextured rasterizes a triangle with affine-interpolated UVs,
// sampling tex at each covered pixel.
func DrawTriangleTextured(fb *Framebuffer, verts [3]Vector2, uvs [3]Vector2, tex *Texture, bilinear bool) {
	raster.DrawTriangleTextured(fb, verts, uvs, tex, bilinear)
}
