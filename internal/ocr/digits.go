package ocr

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/pzhao/sudokucap/internal/grid"
)

// Engine recognizes a single digit in a cell image. Implementations
// must be safe to call sequentially; concurrent use is not required.
type Engine interface {
	// RecognizeDigit returns the digit 1-9 seen in the image, or 0 for
	// an empty or unreadable cell. An error means the engine itself
	// failed, not that the cell was empty.
	RecognizeDigit(img image.Image) (int, error)

	Close() error
}

// NormalizeDigit maps raw recognizer output to a cell value.
//
// Exactly one digit character (after trimming whitespace) yields its
// value; anything else - empty output, multiple characters, or a
// non-digit - is 0.
func NormalizeDigit(s string) int {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0
	}
	c := s[0]
	if c < '0' || c > '9' {
		return 0
	}
	return int(c - '0')
}

// ReadGrid partitions a rectified grid image into 9x9 cells and runs
// the engine on each one.
//
// Individual cell failures are logged and treated as empty; only when
// every single cell errors is the engine considered broken and an
// error returned.
func ReadGrid(e Engine, img image.Image, margin int) (grid.Grid, error) {
	var g grid.Grid

	tiles, err := grid.Tiles(img, grid.Size, margin)
	if err != nil {
		return g, err
	}

	failures := 0
	var lastErr error
	for i, tile := range tiles {
		d, err := e.RecognizeDigit(tile)
		if err != nil {
			failures++
			lastErr = err
			log.Printf("cell (%d,%d): recognition failed: %v", i/grid.Size, i%grid.Size, err)
			continue
		}
		g[i/grid.Size][i%grid.Size] = d
	}

	if failures == len(tiles) {
		return g, fmt.Errorf("recognition failed for every cell: %w", lastErr)
	}
	return g, nil
}
