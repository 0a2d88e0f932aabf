package raster

import "testing"

// TestDrawLine_CanonicalBresenhamTrace matches scenario S3: draw_line on a
// 5x5 framebuffer from (0,0) to (4,2) lights exactly the canonical
// Bresenham trace.
func TestDrawLine_CanonicalBresenhamTrace(t *testing.T) {
	pm := newFakePixmap(5, 5)
	DrawLine(pm, 0, 0, 4, 2, 0xFF00FF00)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 1}: true, {3, 1}: true, {4, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			lit := pm.RawAt(x, y) != 0
			if lit != want[[2]int{x, y}] {
				t.Errorf("pixel (%d,%d) lit=%v, want %v", x, y, lit, want[[2]int{x, y}])
			}
		}
	}
}

func TestDrawLine_OutOfBoundsDropped(t *testing.T) {
	pm := newFakePixmap(4, 4)
	DrawLine(pm, -10, -10, 20, 20, 0xFFFF0000)
	// Must not panic, and must still light pixels inside the diagonal that
	// pass through bounds.
	if pm.RawAt(0, 0) == 0 {
		t.Errorf("expected (0,0) to be lit by the clipped diagonal")
	}
}

func TestDrawPoint_BoundsChecked(t *testing.T) {
	pm := newFakePixmap(2, 2)
	DrawPoint(pm, 5, 5, 0xFFFF0000)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if pm.RawAt(x, y) != 0 {
				t.Errorf("expected no writes for an out-of-bounds point")
			}
		}
	}
}
