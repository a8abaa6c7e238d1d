package board

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mask builds a binary mask marking pixels that belong to the dark,
// near-gray board background.
//
// Pixels are converted to HSV; a pixel is foreground when its
// saturation and value both fall at or below the configured ceilings.
// The ceilings reject the colored decorations around the board while
// keeping the dim gray cells.
func Mask(img image.Image, p Params) *image.Gray {
	bounds := img.Bounds()
	mask := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := colorful.Color{
				R: float64(r) / 65535.0,
				G: float64(g) / 65535.0,
				B: float64(b) / 65535.0,
			}
			_, s, v := c.Hsv()
			if s <= p.MaxSaturation && v <= p.MaxValue {
				mask.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: 255})
			}
		}
	}

	return mask
}

// CloseOpen merges the individual board cells into one connected blob
// and strips small noise.
//
// Two closing passes (dilate then erode) bridge the gaps between cells;
// a single opening pass (erode then dilate) removes specks. The
// structuring radius follows the kernel size so larger screenshots get
// proportionally stronger smoothing.
func CloseOpen(mask *image.Gray, p Params) *image.Gray {
	k := kernelSize(mask.Bounds().Dx(), mask.Bounds().Dy(), p)
	radius := float64(k) / 2

	// Closing, two iterations.
	m := effect.Dilate(mask, radius)
	m = effect.Dilate(m, radius)
	m = effect.Erode(m, radius)
	m = effect.Erode(m, radius)

	// Light opening.
	m = effect.Erode(m, radius)
	m = effect.Dilate(m, radius)

	return segment.Threshold(m, 128)
}

// kernelSize derives the structuring element size from the image's
// shorter dimension, with a floor so tiny inputs still get smoothed.
func kernelSize(width, height int, p Params) int {
	k := int(float64(minInt(width, height)) * p.KernelFrac)
	return maxInt(p.KernelMin, k)
}
