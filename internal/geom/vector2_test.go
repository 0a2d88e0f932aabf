package geom

import (
	"math"
	"testing"
)

func TestVector2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector2
		expect Vector2
	}{
		{"zero+zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(-4, -6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Add(tt.w)
			if !result.IsEqualApprox(tt.expect) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVector2_Sub(t *testing.T) {
	result := V2(5, 7).Sub(V2(2, 3))
	if !result.Equal(V2(3, 4)) {
		t.Errorf("got %v, want (3,4)", result)
	}
}

func TestVector2_Dot(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector2
		expect float64
	}{
		{"orthogonal", V2(1, 0), V2(0, 1), 0},
		{"parallel", V2(1, 0), V2(2, 0), 2},
		{"same", V2(3, 4), V2(3, 4), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Dot(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVector2_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector2
		expect float64
	}{
		{"parallel", V2(1, 0), V2(2, 0), 0},
		{"orthogonal", V2(1, 0), V2(0, 1), 1},
		{"general", V2(3, 4), V2(5, 6), 3*6 - 4*5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Cross(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVector2_Length(t *testing.T) {
	if got := V2(3, 4).Length(); math.Abs(got-5) > 1e-10 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestVector2_Div(t *testing.T) {
	result, err := V2(4, 6).Div(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Equal(V2(2, 3)) {
		t.Errorf("got %v, want (2,3)", result)
	}

	_, err = V2(1, 1).Div(0)
	if err != ErrDivideByZero {
		t.Errorf("err = %v, want ErrDivideByZero", err)
	}
}

func TestVector2_DivComponents(t *testing.T) {
	_, err := V2(1, 1).DivComponents(V2(0, 2))
	if err != ErrDivideByZero {
		t.Errorf("err = %v, want ErrDivideByZero", err)
	}
}

func TestVector2_Normalized(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2
		expect Vector2
	}{
		{"zero", V2(0, 0), V2(0, 0)},
		{"unit x", V2(5, 0), V2(1, 0)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalized()
			if !result.IsEqualApprox(tt.expect) {
				t.Errorf("%v.Normalized() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVector2_Rotated(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		expect Vector2
	}{
		{"90 deg", math.Pi / 2, V2(0, 1)},
		{"180 deg", math.Pi, V2(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := V2(1, 0).Rotated(tt.angle)
			if !result.IsEqualApprox(tt.expect) {
				t.Errorf("Rotated(%v) = %v, want %v", tt.angle, result, tt.expect)
			}
		})
	}
}

func TestVector2_Orthogonal(t *testing.T) {
	v := V2(3, 4)
	o := v.Orthogonal()
	if math.Abs(v.Dot(o)) > 1e-10 {
		t.Errorf("Orthogonal should be perpendicular: %v.Dot(%v) != 0", v, o)
	}
}

func TestVector2_Lerp(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		expect Vector2
	}{
		{"t=0", 0, V2(0, 0)},
		{"t=1", 1, V2(10, 10)},
		{"t=0.5", 0.5, V2(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := V2(0, 0).Lerp(V2(10, 10), tt.t)
			if !result.IsEqualApprox(tt.expect) {
				t.Errorf("Lerp(.., %v) = %v, want %v", tt.t, result, tt.expect)
			}
		})
	}
}

func TestVector2_DistanceTo(t *testing.T) {
	if got := V2(0, 0).DistanceTo(V2(3, 4)); math.Abs(got-5) > 1e-10 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
}
