package board

import (
	"image"
	"image/color"
	"image/draw"
)

// Overlay returns a copy of the image with detection rectangles drawn
// on top. The winning rectangle is drawn in green, rejected candidates
// in red. Meant for --debug output when tuning thresholds.
func Overlay(img image.Image, winner Rect, rejected []Rect) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	red := color.RGBA{R: 220, G: 40, B: 40, A: 255}
	green := color.RGBA{R: 40, G: 200, B: 40, A: 255}

	for _, r := range rejected {
		drawRect(out, r, red, 1)
	}
	drawRect(out, winner, green, 2)
	return out
}

// drawRect draws the outline of r with the given stroke thickness.
func drawRect(img *image.RGBA, r Rect, c color.RGBA, thickness int) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		x1, y1 := r.X+t, r.Y+t
		x2, y2 := r.X+r.W-1-t, r.Y+r.H-1-t
		for x := x1; x <= x2; x++ {
			setIn(img, b, x, y1, c)
			setIn(img, b, x, y2, c)
		}
		for y := y1; y <= y2; y++ {
			setIn(img, b, x1, y, c)
			setIn(img, b, x2, y, c)
		}
	}
}

func setIn(img *image.RGBA, b image.Rectangle, x, y int, c color.RGBA) {
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		img.SetRGBA(x, y, c)
	}
}
