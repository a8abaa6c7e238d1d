package ocr

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// prepareTile binarizes a cell image for recognition.
//
// Puzzle cells are light digits on a dark background; Tesseract reads
// dark-on-light far better, so after thresholding a mostly dark tile
// is inverted.
func prepareTile(tile image.Image) *image.Gray {
	gray := imaging.Grayscale(tile)
	bin := segment.Threshold(gray, 128)
	if meanLuma(bin) < 128 {
		return segment.Threshold(effect.Invert(bin), 128)
	}
	return bin
}

// meanLuma averages the gray values of a binary image.
func meanLuma(img *image.Gray) int {
	bounds := img.Bounds()
	total := 0
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += int(img.GrayAt(x, y).Y)
		}
	}
	return total / count
}
