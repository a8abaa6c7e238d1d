package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// ErrNoScreenshots indicates the screenshots directory holds no
// screen_* files to process.
var ErrNoScreenshots = errors.New("no screenshots found")

// Load decodes an image file. PNG, JPEG, and GIF are supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Save encodes an image to path, creating the parent directory when
// needed. The encoder is chosen by file extension; quality applies to
// JPEG output only (1-100).
func Save(img image.Image, path string, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Crop cuts the rectangle out of the image.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, r)
}

// Ext normalizes a format name to its file extension: "png" stays
// "png", "jpg" and "jpeg" become "jpg".
func Ext(format string) string {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return "jpg"
	default:
		return "png"
	}
}

// Timestamp returns the microsecond-precision token embedded in
// screenshot filenames.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s_%06d", t.Format("20060102_150405"), t.Nanosecond()/1000)
}

// ScreenshotPath builds the output path for a capture. A monitor index
// greater than zero is appended as _mN for multi-monitor runs.
func ScreenshotPath(dir, format string, t time.Time, monitor int) string {
	name := "screen_" + Timestamp(t)
	if monitor > 0 {
		name += fmt.Sprintf("_m%d", monitor)
	}
	return filepath.Join(dir, name+"."+Ext(format))
}

// BoardPath derives the board crop filename from its source
// screenshot: the screen_ prefix is dropped from the stem and the
// result is always PNG.
func BoardPath(dir, inputPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stem = strings.TrimPrefix(stem, "screen_")
	return filepath.Join(dir, "board_"+stem+".png")
}

var screenshotStamp = regexp.MustCompile(`screen_(\d{8}_\d{6}_\d+)`)

// LatestScreenshot returns the newest screen_* file in dir.
//
// Ordering prefers the timestamp embedded in the filename; files whose
// name doesn't parse fall back to modification time. Returns
// ErrNoScreenshots when the directory has no candidates.
func LatestScreenshot(dir string) (string, error) {
	var files []string
	for _, pattern := range []string{"screen_*.png", "screen_*.jpg", "screen_*.jpeg"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", err
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoScreenshots, dir)
	}

	best := ""
	bestKey := ""
	for _, f := range files {
		key := sortKey(f)
		if best == "" || key > bestKey {
			best = f
			bestKey = key
		}
	}
	return best, nil
}

// sortKey extracts the filename timestamp, falling back to mtime.
func sortKey(path string) string {
	if m := screenshotStamp.FindStringSubmatch(filepath.Base(path)); m != nil {
		return m[1]
	}
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return Timestamp(info.ModTime())
}
