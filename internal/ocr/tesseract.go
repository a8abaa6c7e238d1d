package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is an Engine backed by the system Tesseract installation.
//
// The client is configured once for digit work: charset whitelisted to
// 0-9 and page segmentation set to single character, which stops
// Tesseract from inventing words out of grid-line fragments.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a digit recognition engine for the given
// Tesseract language code (normally "eng").
func NewTesseract(language string) (*Tesseract, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetWhitelist("0123456789"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &Tesseract{client: client}, nil
}

// RecognizeDigit runs OCR on one cell image.
//
// The cell is binarized first, then written to a temporary PNG because
// Tesseract wants a file path. Output that is not exactly one digit
// normalizes to 0.
func (t *Tesseract) RecognizeDigit(img image.Image) (int, error) {
	prepared := prepareTile(img)

	tmpFile, err := os.CreateTemp("", "cell-*.png")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, prepared); err != nil {
		tmpFile.Close()
		return 0, fmt.Errorf("failed to encode cell image: %w", err)
	}
	tmpFile.Close()

	if err := t.client.SetImage(tmpPath); err != nil {
		return 0, fmt.Errorf("failed to set image: %w", err)
	}
	text, err := t.client.Text()
	if err != nil {
		return 0, fmt.Errorf("OCR failed: %w", err)
	}

	return NormalizeDigit(text), nil
}

// Close releases the underlying Tesseract client.
func (t *Tesseract) Close() error {
	return t.client.Close()
}
