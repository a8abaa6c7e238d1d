package grid

import (
	"errors"
	"image"

	"github.com/pzhao/sudokucap/internal/board"
)

// ErrNoGrid indicates the grid outline could not be located in the
// image, typically because the dark-background mask came up empty.
var ErrNoGrid = errors.New("no grid outline located")

// LocateQuad finds the four corners of the puzzle grid in a board
// crop.
//
// The same dark-background mask used for board detection is built,
// then the largest connected region's extreme points become the quad
// corners. On an already axis-aligned crop the quad degenerates to the
// crop's own corners and rectification is a near-identity warp.
func LocateQuad(img image.Image, p board.Params) (Quad, error) {
	mask := board.CloseOpen(board.Mask(img, p), p)
	contours := board.FindContours(mask)
	if len(contours) == 0 {
		return Quad{}, ErrNoGrid
	}

	largest := contours[0]
	for _, c := range contours[1:] {
		if c.Size > largest.Size {
			largest = c
		}
	}

	// Demand a region that plausibly covers a grid, not a stray blob.
	bounds := img.Bounds()
	if largest.Size < bounds.Dx()*bounds.Dy()/20 {
		return Quad{}, ErrNoGrid
	}

	return OrderCorners([4]image.Point{largest.TL, largest.TR, largest.BR, largest.BL}), nil
}
