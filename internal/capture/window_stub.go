//go:build !windows

package capture

import (
	"fmt"
	"image"
)

// EnableDPIAwareness is a no-op outside Windows.
func EnableDPIAwareness() {}

// FindWindow is unsupported outside Windows; callers fall back to
// display capture.
func FindWindow(title string, clientOnly bool) (image.Rectangle, error) {
	return image.Rectangle{}, fmt.Errorf("%w (looked for %q)", ErrUnsupported, title)
}
