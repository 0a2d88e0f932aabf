package raster2d

import "github.com/gogpu/raster2d/internal/raster"

// FillRect clips (x,y,w,h) to fb's bounds and fills the interior, blending
// per-pixel by alpha.
func FillRect(fb *Framebuffer, x, y, w, h int, color uint32) {
	raster.FillRect(fb, x, y, w, h, color)
}

// DrawRectOutline draws the border of (x,y,w,h) as four filled strips of
// thickness t.
func DrawRectOutline(fb *Framebuffer, x, y, w, h int, color uint32, thickness int) {
	raster.DrawRectOutline(fb, x, y, w, h, color, thickness)
}
