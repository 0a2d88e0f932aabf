package raster

import "github.com/gogpu/raster2d/internal/geom"

// scanEdge is one edge of a polygon's Global/Active Edge Table: the
// current x at the active scanline, its per-row slope dx, the exclusive
// upper row yMax at which the edge retires, and — for textured fills — the
// interpolated (u, v) carried alongside x at the same per-row rate.
type scanEdge struct {
	yMax   int
	x      float64
	dx     float64
	u, v   float64
	du, dv float64
}

// buildEdgeTable walks the polygon's edges (vi, v(i+1 mod n)) and buckets
// each non-horizontal edge into getTable[yStart], oriented so y increases
// from p1 to p2 (swapping the paired UV along with the coordinates when
// uvs is non-nil). Horizontal edges (int(y1)==int(y2)) are never inserted.
// Edges entirely outside [0,h) are skipped. Returns the bucket table sized
// h, plus the clamped [yMin,yMax] row range spanned by any inserted edge.
func buildEdgeTable(verts []geom.Vector2, uvs []geom.Vector2, h int) (get [][]scanEdge, yMin, yMax int) {
	n := len(verts)
	get = make([][]scanEdge, h)
	yMin, yMax = h, -1

	for i := 0; i < n; i++ {
		p1 := verts[i]
		p2 := verts[(i+1)%n]

		y1, y2 := int(p1.Y), int(p2.Y)
		if y1 == y2 {
			continue
		}

		var u1, v1, u2, v2 float64
		if uvs != nil {
			u1, v1 = uvs[i].X, uvs[i].Y
			u2, v2 = uvs[(i+1)%n].X, uvs[(i+1)%n].Y
		}

		if p1.Y > p2.Y {
			p1, p2 = p2, p1
			u1, u2 = u2, u1
			v1, v2 = v2, v1
			y1, y2 = y2, y1
		}

		if y2 <= 0 || y1 >= h {
			continue
		}

		dy := p2.Y - p1.Y
		e := scanEdge{
			yMax: y2,
			x:    p1.X,
			dx:   (p2.X - p1.X) / dy,
		}
		if uvs != nil {
			e.u, e.v = u1, v1
			e.du = (u2 - u1) / dy
			e.dv = (v2 - v1) / dy
		}

		yStart := y1
		if yStart < 0 {
			// Advance the edge's state to row 0 before bucketing it, so a
			// partially offscreen edge still carries the right x/u/v.
			steps := float64(-yStart)
			e.x += e.dx * steps
			e.u += e.du * steps
			e.v += e.dv * steps
			yStart = 0
		}
		if yStart >= h {
			continue
		}

		get[yStart] = append(get[yStart], e)

		if yStart < yMin {
			yMin = yStart
		}
		top := y2
		if top > h {
			top = h
		}
		if top-1 > yMax {
			yMax = top - 1
		}
	}

	return get, yMin, yMax
}
