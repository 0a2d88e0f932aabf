package raster

import "github.com/gogpu/raster2d/internal/geom"

// DrawPoint blends a single pixel into pm, bounds-checked.
func DrawPoint(pm Pixmap, x, y int, color uint32) {
	blendPixel(pm, x, y, color)
}

// DrawPoints blends one pixel per point in points. There is no batching
// beyond looping over DrawPoint — spec.md §6 lists draw_points as an entry
// point but defines no behavior beyond "draw each point".
func DrawPoints(pm Pixmap, points []geom.Vector2, color uint32) {
	for _, p := range points {
		DrawPoint(pm, int(p.X), int(p.Y), color)
	}
}

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) with Bresenham's integer
// DDA, stepping along the major axis and accumulating an error term along
// the minor one. Every plotted pixel is bounds-checked and blended.
func DrawLine(pm Pixmap, x0, y0, x1, y1 int, color uint32) {
	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := abs(dx), abs(dy)

	sx, sy := 1, 1
	if dx < 0 {
		sx = -1
	}
	if dy < 0 {
		sy = -1
	}

	x, y := x0, y0

	if absDx >= absDy {
		// X is the major axis.
		if absDx == 0 {
			blendPixel(pm, x, y, color)
			return
		}
		d := 2*absDy - absDx
		incrE := 2 * absDy
		incrNE := 2 * (absDy - absDx)
		for {
			blendPixel(pm, x, y, color)
			if x == x1 {
				break
			}
			if d > 0 {
				d += incrNE
				y += sy
			} else {
				d += incrE
			}
			x += sx
		}
		return
	}

	// Y is the major axis.
	d := 2*absDx - absDy
	incrE := 2 * absDx
	incrNE := 2 * (absDx - absDy)
	for {
		blendPixel(pm, x, y, color)
		if y == y1 {
			break
		}
		if d > 0 {
			d += incrNE
			x += sx
		} else {
			d += incrE
		}
		y += sy
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
