package raster2d

import "github.com/gogpu/raster2d/internal/raster"

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) with Bresenham's integer
// DDA.
func DrawLine(fb *Framebuffer, x0, y0, x1, y1 int, color uint32) {
	raster.DrawLine(fb, x0, y0, x1, y1, color)
}
