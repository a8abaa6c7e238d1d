package board

import "image"

// Contour is a connected foreground region of a binary mask, reduced to
// the geometry the detector needs: its size, bounding box, and the four
// extreme points used for corner ordering.
type Contour struct {
	// Size is the number of foreground pixels in the region.
	Size int

	// BBox is the axis-aligned bounding rectangle of the region.
	BBox image.Rectangle

	// Extreme points by coordinate sum and difference. TL minimizes
	// x+y, BR maximizes x+y, TR maximizes x-y, BL minimizes x-y.
	TL, TR, BR, BL image.Point
}

// FindContours locates the connected foreground regions of a binary
// mask using 8-connected flood fill.
//
// Regions smaller than 10 pixels are discarded as noise. The returned
// order follows raster scan order of each region's first pixel.
func FindContours(mask *image.Gray) []Contour {
	bounds := mask.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	visited := make([]bool, width*height)
	contours := make([]Contour, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || !isForeground(mask, x, y) {
				continue
			}
			c := traceRegion(mask, visited, x, y, width, height)
			if c.Size >= 10 {
				contours = append(contours, c)
			}
		}
	}

	return contours
}

// traceRegion flood-fills one connected region starting at (startX,
// startY), accumulating its bounding box and extreme points.
//
// Stack-based to avoid recursion depth limits on large boards.
func traceRegion(mask *image.Gray, visited []bool, startX, startY, width, height int) Contour {
	c := Contour{
		BBox: image.Rect(startX, startY, startX+1, startY+1),
		TL:   image.Pt(startX, startY),
		TR:   image.Pt(startX, startY),
		BR:   image.Pt(startX, startY),
		BL:   image.Pt(startX, startY),
	}

	stack := []image.Point{{X: startX, Y: startY}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y*width+p.X] || !isForeground(mask, p.X, p.Y) {
			continue
		}
		visited[p.Y*width+p.X] = true

		c.Size++
		if p.X < c.BBox.Min.X {
			c.BBox.Min.X = p.X
		}
		if p.X >= c.BBox.Max.X {
			c.BBox.Max.X = p.X + 1
		}
		if p.Y < c.BBox.Min.Y {
			c.BBox.Min.Y = p.Y
		}
		if p.Y >= c.BBox.Max.Y {
			c.BBox.Max.Y = p.Y + 1
		}
		if p.X+p.Y < c.TL.X+c.TL.Y {
			c.TL = p
		}
		if p.X+p.Y > c.BR.X+c.BR.Y {
			c.BR = p
		}
		if p.X-p.Y > c.TR.X-c.TR.Y {
			c.TR = p
		}
		if p.X-p.Y < c.BL.X-c.BL.Y {
			c.BL = p
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Pt(p.X+dx, p.Y+dy))
			}
		}
	}

	return c
}

func isForeground(mask *image.Gray, x, y int) bool {
	return mask.GrayAt(x+mask.Bounds().Min.X, y+mask.Bounds().Min.Y).Y >= 128
}
