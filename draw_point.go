package raster2d

import (
	"github.com/gogpu/raster2d/internal/raster"
)

// DrawPoint blends a single pixel into fb, bounds-checked.
func DrawPoint(fb *Framebuffer, x, y int, color uint32) {
	raster.DrawPoint(fb, x, y, color)
}

// DrawPoints blends one pixel per point in points.
func DrawPoints(fb *Framebuffer, points []Vector2, color uint32) {
	raster.DrawPoints(fb, points, color)
}
