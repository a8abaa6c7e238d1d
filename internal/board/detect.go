package board

import (
	"errors"
	"image"
	"math"
)

// ErrNoBoard indicates that no region of the image passed the area and
// aspect-ratio filters. Callers are expected to fall back to a manually
// supplied rectangle.
var ErrNoBoard = errors.New("no board-like region detected")

// Params holds the detection tunables.
//
// The defaults are calibrated for a dark, near-gray board on a lighter
// themed background. They are deliberately exposed as parameters: the
// thresholds that work for one app theme rarely transfer to another.
type Params struct {
	// MaxSaturation is the HSV saturation ceiling (0..1) for a pixel
	// to count as board background.
	MaxSaturation float64

	// MaxValue is the HSV value (brightness) ceiling (0..1).
	MaxValue float64

	// MinAreaFrac is the minimum candidate area as a fraction of the
	// whole image.
	MinAreaFrac float64

	// AspectMin and AspectMax bound the accepted width/height ratio.
	AspectMin float64
	AspectMax float64

	// PadFrac expands the winning rectangle outward by this fraction
	// of its shorter side, so the crop doesn't clip edge pixels.
	PadFrac float64

	// KernelFrac sizes the morphology kernel relative to the image's
	// shorter dimension; KernelMin is the floor in pixels.
	KernelFrac float64
	KernelMin  int
}

// DefaultParams returns the stock detection parameters.
func DefaultParams() Params {
	return Params{
		MaxSaturation: 0.35,
		MaxValue:      0.43,
		MinAreaFrac:   0.05,
		AspectMin:     0.85,
		AspectMax:     1.15,
		PadFrac:       0.02,
		KernelFrac:    0.006,
		KernelMin:     3,
	}
}

// Detect locates the most plausible square board region in a color
// screenshot.
//
// The pipeline: HSV threshold to a binary mask, morphological
// close+open to fuse the board cells into one blob, connected-region
// extraction, then bounding-box filtering on area and aspect ratio.
// Surviving candidates are scored by area x (1 - |aspect - 1|) and the
// best one wins; ties keep the first candidate in scan order. The
// winner is padded outward by PadFrac of its shorter side, clamped to
// the image.
//
// Returns ErrNoBoard when the mask has no contours or none qualify.
func Detect(img image.Image, p Params) (Rect, error) {
	winner, _, err := DetectCandidates(img, p)
	return winner, err
}

// DetectCandidates runs the same pipeline as Detect but also returns
// the rejected candidate rectangles, for debug overlays.
func DetectCandidates(img image.Image, p Params) (Rect, []Rect, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := CloseOpen(Mask(img, p), p)
	contours := FindContours(mask)
	if len(contours) == 0 {
		return Rect{}, nil, ErrNoBoard
	}

	imgArea := float64(width * height)
	best := Rect{}
	bestScore := -1.0
	var rejected []Rect

	for _, c := range contours {
		r := Rect{
			X: c.BBox.Min.X,
			Y: c.BBox.Min.Y,
			W: c.BBox.Dx(),
			H: c.BBox.Dy(),
		}
		if float64(r.Area()) < imgArea*p.MinAreaFrac {
			rejected = append(rejected, r)
			continue
		}
		ar := r.Aspect()
		if ar < p.AspectMin || ar > p.AspectMax {
			rejected = append(rejected, r)
			continue
		}
		score := float64(r.Area()) * (1.0 - math.Abs(ar-1.0))
		if score > bestScore {
			if bestScore >= 0 {
				rejected = append(rejected, best)
			}
			best = r
			bestScore = score
		} else {
			rejected = append(rejected, r)
		}
	}

	if bestScore < 0 {
		return Rect{}, rejected, ErrNoBoard
	}

	pad := int(p.PadFrac * float64(minInt(best.W, best.H)))
	return best.Pad(pad, width, height), rejected, nil
}
