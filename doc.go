// Package raster2d provides a CPU software rasterization core for a 2D
// graphics engine: scan conversion of points, lines, rectangles, circles,
// triangles, and convex/concave polygons — filled, outlined, or textured —
// into a caller-owned RGBA32 framebuffer, with source-over alpha
// compositing.
//
// # Overview
//
// raster2d is deliberately narrow: it rasterizes primitives the caller
// already has in screen space. It does not own a scene graph, an asset
// pipeline, or a windowing surface — those are the caller's job. What it
// does own is the numerically careful part: Bresenham lines and circles,
// an even-odd scanline polygon filler with affine texture interpolation,
// Cohen-Sutherland segment clipping, Sutherland-Hodgman polygon clipping
// with UV carry, and a small 2D linear algebra layer (vectors, affine
// transforms, homographies) underneath all of it.
//
// # Quick start
//
//	fb := raster2d.NewFramebuffer(256, 256)
//	raster2d.FillRect(fb, 10, 10, 100, 60, 0xFFFF0000)
//	raster2d.DrawCircleOutline(fb, 200, 60, 30, 0xFF00FF00)
//
//	f, _ := os.Create("out.png")
//	png.Encode(f, fb)
//
// # Coordinate system and pixel format
//
// Framebuffers and textures use x-major addressing: buffer[x, y] with
// x in [0,W) and y in [0,H). Pixels are packed RGBA32 words with alpha in
// the most significant byte: (A<<24)|(R<<16)|(G<<8)|B. Every rasterizer in
// this package bounds-checks its writes; a primitive that extends past the
// framebuffer's edges is silently clipped, never grown into.
//
// # What this package does not do
//
// No perspective-correct texturing (UV interpolation is affine), no depth
// buffer, no anti-aliasing (edges are aliased; only per-pixel alpha
// blending is supported), no gamma-correct blending, no multithreading or
// GPU offload. Callers that partition the framebuffer into disjoint
// regions may rasterize from multiple goroutines themselves; this package
// provides no synchronization of its own.
package raster2d
