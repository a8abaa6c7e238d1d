// Package capture acquires raster images from displays, application
// windows, and adb-connected devices.
package capture

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/corona10/goimagehash"
	"github.com/kbinani/screenshot"
)

// Sentinel errors for the capture fallback chains.
var (
	ErrNoDisplay      = errors.New("no active displays found")
	ErrWindowNotFound = errors.New("no matching window found")
	ErrUnsupported    = errors.New("window capture is not supported on this platform")
)

// Duplicate displays (mirrored monitors) are dropped when their
// perception hashes are within this Hamming distance.
const maxMirrorDistance = 5

// Shot is one captured frame with the display it came from.
// Display is 1-based; 0 means the capture wasn't display-specific.
type Shot struct {
	Image   *image.RGBA
	Display int
}

// CaptureDisplay captures one display. The index is 1-based to match
// the CLI convention (1 = primary).
func CaptureDisplay(index int) (*image.RGBA, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoDisplay
	}
	if index < 1 || index > n {
		return nil, fmt.Errorf("display index %d out of range 1..%d", index, n)
	}
	img, err := screenshot.CaptureDisplay(index - 1)
	if err != nil {
		return nil, fmt.Errorf("failed to capture display %d: %w", index, err)
	}
	return img, nil
}

// CaptureAll captures every active display.
//
// Mirrored displays show the same frame twice; near-identical captures
// are deduplicated by perception hash so a mirrored setup yields one
// file instead of two.
func CaptureAll() ([]Shot, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoDisplay
	}

	shots := make([]Shot, 0, n)
	for i := 0; i < n; i++ {
		img, err := screenshot.CaptureDisplay(i)
		if err != nil {
			return nil, fmt.Errorf("failed to capture display %d: %w", i+1, err)
		}
		shots = append(shots, Shot{Image: img, Display: i + 1})
	}
	return dedupShots(shots), nil
}

// CaptureRect captures a region in virtual-screen coordinates.
func CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return nil, fmt.Errorf("invalid capture region %v", r)
	}
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, fmt.Errorf("failed to capture region %v: %w", r, err)
	}
	return img, nil
}

// dedupShots drops shots that perceptually duplicate an earlier one.
// Hash failures keep the shot; losing a frame is worse than writing a
// duplicate.
func dedupShots(shots []Shot) []Shot {
	if len(shots) < 2 {
		return shots
	}

	kept := make([]Shot, 0, len(shots))
	hashes := make([]*goimagehash.ImageHash, 0, len(shots))

	for _, s := range shots {
		h, err := goimagehash.PerceptionHash(s.Image)
		if err != nil {
			kept = append(kept, s)
			continue
		}

		duplicate := false
		for _, prev := range hashes {
			dist, err := prev.Distance(h)
			if err == nil && dist <= maxMirrorDistance {
				duplicate = true
				break
			}
		}
		if duplicate {
			log.Printf("display %d mirrors an earlier display, skipping", s.Display)
			continue
		}

		kept = append(kept, s)
		hashes = append(hashes, h)
	}
	return kept
}
