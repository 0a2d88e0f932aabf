package raster2d

import "github.com/gogpu/raster2d/internal/raster"

// DrawCircleFilled rasterizes a filled disk of radius r centered at (cx,cy)
// using the midpoint circle algorithm.
func DrawCircleFilled(fb *Framebuffer, cx, cy, r int, color uint32) {
	raster.DrawCircleFilled(fb, cx, cy, r, color)
}

// DrawCircleOutline rasterizes the 1-pixel-wide ring of radius r centered
// at (cx,cy).
func DrawCircleOutline(fb *Framebuffer, cx, cy, r int, color uint32) {
	raster.DrawCircleOutline(fb, cx, cy, r, color)
}
