package raster2d

import (
	"math"
	"testing"
)

// TestComputeHomography_IdentityMapping matches scenario S6.
func TestComputeHomography_IdentityMapping(t *testing.T) {
	pts := []Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	h, singular, err := ComputeHomography(pts, pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if singular {
		t.Fatalf("expected a non-singular fit for a well-posed identity mapping")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(h[i][j]-want) > 1e-9 {
				t.Errorf("h[%d][%d] = %v, want %v", i, j, h[i][j], want)
			}
		}
	}
}

func TestComputeHomography_WrongPointCount(t *testing.T) {
	_, _, err := ComputeHomography([]Vector2{{X: 0, Y: 0}}, []Vector2{{X: 0, Y: 0}})
	if err != ErrWrongPointCount {
		t.Errorf("err = %v, want ErrWrongPointCount", err)
	}
}

func TestTransform2D_InverseRoundtrips(t *testing.T) {
	tr := NewTransform2D(math.Pi/4, V2(3, 4))
	inv, err := tr.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := V2(10, -5)
	back := inv.Xform(tr.Xform(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("roundtrip = %+v, want %+v", back, p)
	}
}

func TestPointInPolygon_Square(t *testing.T) {
	square := []Vector2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	if !PointInPolygon(square, V2(2, 2)) {
		t.Errorf("expected center point to be inside")
	}
	if PointInPolygon(square, V2(10, 10)) {
		t.Errorf("expected far point to be outside")
	}
}
