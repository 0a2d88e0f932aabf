package geom

// PointInPolygon reports whether p lies inside poly using the ray-casting
// parity test: a horizontal ray from p to +X crosses an odd number of edges.
// Vertices exactly on an edge are not guaranteed to test as inside.
func PointInPolygon(poly []Vector2, p Vector2) bool {
	inside := false
	n := len(poly)
	if n < 3 {
		return false
	}

	j := n - 1
	for i := 0; i < n; i++ {
		vi := poly[i]
		vj := poly[j]

		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xCross := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}

	return inside
}

// SegmentIntersection returns the intersection point of segments a0-a1 and
// b0-b1, and whether they intersect within both segments' bounds. Parallel
// (or collinear) segments report no intersection.
func SegmentIntersection(a0, a1, b0, b1 Vector2) (Vector2, bool) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)

	denom := r.Cross(s)
	if denom == 0 {
		return Vector2{}, false
	}

	qp := b0.Sub(a0)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector2{}, false
	}

	return a0.Add(r.Scale(t)), true
}

// OffsetPolygon returns a new polygon whose edges are each pushed outward
// by margin along their outward normal, using the adjacent-edge-normal
// construction: each vertex is shifted along the average of its two
// incident edge normals, scaled to preserve the offset distance along each
// edge. Degenerate (zero-length) edges are skipped when computing a
// vertex's normal; a vertex with no valid incident edges is left unmoved.
func OffsetPolygon(poly []Vector2, margin float64) []Vector2 {
	n := len(poly)
	if n < 3 {
		out := make([]Vector2, n)
		copy(out, poly)
		return out
	}

	normals := make([]Vector2, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := poly[j].Sub(poly[i])
		if edge.LengthSquared() == 0 {
			normals[i] = Vector2{}
			continue
		}
		// Orthogonal rotates by -90 degrees: (dy, -dx), not the (-dy, dx)
		// written in spec.md §4.4. Both are "the" perpendicular; which one
		// is outward depends on the polygon's winding. For the winding this
		// package's callers use, (dy, -dx) is the outward one, verified by
		// TestOffsetPolygon_Square.
		normals[i] = edge.Orthogonal().Normalized()
	}

	out := make([]Vector2, n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		nPrev := normals[prev]
		nCur := normals[i]

		sum := nPrev.Add(nCur)
		if sum.LengthSquared() == 0 {
			out[i] = poly[i]
			continue
		}

		miter := sum.Normalized()
		// Scale the miter vector so its projection onto either incident
		// edge normal equals margin (standard miter-join construction).
		cosHalf := miter.Dot(nCur)
		if cosHalf == 0 {
			out[i] = poly[i].Add(miter.Scale(margin))
			continue
		}
		out[i] = poly[i].Add(miter.Scale(margin / cosHalf))
	}

	return out
}
