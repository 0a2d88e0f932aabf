package raster

// DrawCircleFilled rasterizes a filled disk of radius r centered at (cx,cy)
// using the midpoint circle algorithm. At each octant step it emits four
// horizontal scanlines: the (cy±y) rows spanning cx-x..cx+x, and the
// (cy±x) rows spanning cx-y..cx+y.
func DrawCircleFilled(pm Pixmap, cx, cy, r int, color uint32) {
	if r <= 0 {
		if r == 0 {
			blendPixel(pm, cx, cy, color)
		}
		return
	}

	x, y := r, 0
	d := 3 - 2*r

	for x >= y {
		blendSpan(pm, cx-x, cx+x+1, cy+y, color)
		blendSpan(pm, cx-x, cx+x+1, cy-y, color)
		blendSpan(pm, cx-y, cx+y+1, cy+x, color)
		blendSpan(pm, cx-y, cx+y+1, cy-x, color)

		y++
		if d > 0 {
			x--
			d += 4*(y-x) + 10
		} else {
			d += 4*y + 6
		}
	}
}

// DrawCircleOutline rasterizes the 1-pixel-wide ring of radius r centered
// at (cx,cy), emitting the eight octant-symmetric pixels at each midpoint
// step.
func DrawCircleOutline(pm Pixmap, cx, cy, r int, color uint32) {
	if r < 0 {
		return
	}
	if r == 0 {
		blendPixel(pm, cx, cy, color)
		return
	}

	x, y := r, 0
	d := 3 - 2*r

	for x >= y {
		plotOctants(pm, cx, cy, x, y, color)

		y++
		if d > 0 {
			x--
			d += 4*(y-x) + 10
		} else {
			d += 4*y + 6
		}
	}
}

func plotOctants(pm Pixmap, cx, cy, x, y int, color uint32) {
	blendPixel(pm, cx+x, cy+y, color)
	blendPixel(pm, cx-x, cy+y, color)
	blendPixel(pm, cx+x, cy-y, color)
	blendPixel(pm, cx-x, cy-y, color)
	blendPixel(pm, cx+y, cy+x, color)
	blendPixel(pm, cx-y, cy+x, color)
	blendPixel(pm, cx+y, cy-x, color)
	blendPixel(pm, cx-y, cy-x, color)
}
