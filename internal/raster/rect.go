package raster

// FillRect clips the rectangle (x,y,w,h) to the pixmap bounds — shrinking
// the size if it overruns, and shifting the position inward if it starts
// negative — then fills each row with blendSpan.
func FillRect(pm Pixmap, x, y, w, h int, color uint32) {
	x0, y0, x1, y1 := clipRect(pm, x, y, w, h)
	for row := y0; row < y1; row++ {
		blendSpan(pm, x0, x1, row, color)
	}
}

// clipRect clips (x,y,w,h) to [0,W)x[0,H), returning half-open bounds
// [x0,x1)x[y0,y1). x1<=x0 or y1<=y0 means the rectangle is entirely
// offscreen.
func clipRect(pm Pixmap, x, y, w, h int) (x0, y0, x1, y1 int) {
	x0, y0 = x, y
	x1, y1 = x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > pm.Width() {
		x1 = pm.Width()
	}
	if y1 > pm.Height() {
		y1 = pm.Height()
	}
	return
}

// DrawRectOutline draws the border of (x,y,w,h) as four filled strips of
// thickness t: top, bottom, left, right. At thickness >= min(w,h)/2 the
// strips overlap; callers are responsible for that, per spec.md §4.7.
func DrawRectOutline(pm Pixmap, x, y, w, h int, color uint32, thickness int) {
	if thickness <= 0 {
		return
	}
	FillRect(pm, x, y, w, thickness, color)
	FillRect(pm, x, y+h-thickness, w, thickness, color)
	FillRect(pm, x, y+thickness, thickness, h-2*thickness, color)
	FillRect(pm, x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}
