// Command raster2ddemo exercises every exported raster2d draw entry point and
// saves the result as a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/raster2d"
)

func main() {
	var (
		width  = flag.Int("width", 400, "image width")
		height = flag.Int("height", 300, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	fb := raster2d.NewFramebuffer(*width, *height)

	drawBackground(fb, *width, *height)
	drawPrimitivesDemo(fb)
	drawTexturedDemo(fb)

	if err := fb.SavePNG(*output); err != nil {
		log.Fatalf("failed to save: %v", err)
	}

	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawBackground fills the canvas with a horizontal gradient, one DrawLine
// call per row.
func drawBackground(fb *raster2d.Framebuffer, w, h int) {
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		r := uint8(20 + t*40)
		g := uint8(30 + t*40)
		b := uint8(60 + t*60)
		raster2d.DrawLine(fb, 0, y, w-1, y, raster2d.PackRGBA(r, g, b, 255))
	}
}

// drawPrimitivesDemo exercises DrawPoint, DrawPoints, FillRect,
// DrawRectOutline, DrawCircleFilled, and DrawCircleOutline.
func drawPrimitivesDemo(fb *raster2d.Framebuffer) {
	raster2d.DrawPoint(fb, 10, 10, raster2d.ColorWhite)

	points := make([]raster2d.Vector2, 0, 20)
	for i := 0; i < 20; i++ {
		points = append(points, raster2d.V2(20+float64(i), 10))
	}
	raster2d.DrawPoints(fb, points, raster2d.ColorWhite)

	raster2d.FillRect(fb, 40, 40, 80, 60, raster2d.PackRGBA(255, 200, 0, 255))
	raster2d.DrawRectOutline(fb, 40, 40, 80, 60, raster2d.ColorWhite, 3)

	raster2d.DrawCircleFilled(fb, 200, 70, 40, raster2d.PackRGBA(255, 80, 80, 200))
	raster2d.DrawCircleOutline(fb, 200, 70, 40, raster2d.ColorWhite)

	star := starPolygon(raster2d.V2(320, 70), 40, 18, 5)
	raster2d.DrawPolygonFilled(fb, star, raster2d.PackRGBA(255, 255, 0, 255))
	raster2d.DrawPolygonOutline(fb, star, raster2d.ColorWhite)
}

// drawTexturedDemo builds a small checkerboard texture, scales it with
// golang.org/x/image/draw into a raster2d.Texture, and exercises
// DrawTriangleTextured and DrawPolygonTextured with it.
func drawTexturedDemo(fb *raster2d.Framebuffer) {
	checker := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				checker.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				checker.SetNRGBA(x, y, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
			}
		}
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), checker, checker.Bounds(), draw.Over, nil)
	tex := raster2d.TextureFromImage(scaled)

	verts := [3]raster2d.Vector2{{X: 60, Y: 150}, {X: 160, Y: 150}, {X: 110, Y: 240}}
	uvs := [3]raster2d.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}
	raster2d.DrawTriangleTextured(fb, verts, uvs, tex, true)

	quad := []raster2d.Vector2{{X: 200, Y: 150}, {X: 320, Y: 150}, {X: 320, Y: 240}, {X: 200, Y: 240}}
	quadUVs := []raster2d.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	raster2d.DrawPolygonTextured(fb, quad, quadUVs, tex, 0xFFFFFFFF)
}

func starPolygon(center raster2d.Vector2, outerR, innerR float64, points int) []raster2d.Vector2 {
	verts := make([]raster2d.Vector2, points*2)
	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		verts[i] = raster2d.V2(
			center.X+r*math.Cos(angle-math.Pi/2),
			center.Y+r*math.Sin(angle-math.Pi/2),
		)
	}
	return verts
}
