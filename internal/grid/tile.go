package grid

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Tiles cuts a rectified grid image into n x n equal cells and returns
// one sub-image per cell in row-major order.
//
// Each tile is inset by margin pixels on every side of its cell so the
// grid lines between cells don't bleed into recognition. The tile is
// therefore cellSize - 2*margin on a side, centered within its cell.
func Tiles(img image.Image, n, margin int) ([]*image.NRGBA, error) {
	bounds := img.Bounds()
	cellW := bounds.Dx() / n
	cellH := bounds.Dy() / n
	if cellW-2*margin < 1 || cellH-2*margin < 1 {
		return nil, fmt.Errorf("margin %d leaves no pixels in a %dx%d cell", margin, cellW, cellH)
	}

	tiles := make([]*image.NRGBA, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x0 := bounds.Min.X + col*cellW + margin
			y0 := bounds.Min.Y + row*cellH + margin
			r := image.Rect(x0, y0, x0+cellW-2*margin, y0+cellH-2*margin)
			tiles = append(tiles, imaging.Crop(img, r))
		}
	}
	return tiles, nil
}
