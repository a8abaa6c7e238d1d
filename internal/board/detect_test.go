package board

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	lightGray = color.RGBA{230, 230, 230, 255}
	darkGray  = color.RGBA{45, 45, 45, 255}
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fillRect paints a filled rectangle onto an image
func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.Set(x+dx, y+dy, c)
		}
	}
}

func TestDetect_DarkSquare(t *testing.T) {
	img := createTestImage(200, 200, lightGray)
	fillRect(img, 20, 20, 150, 150, darkGray)
	// Scattered dark specks well away from the board; opening should
	// remove them.
	img.Set(190, 5, darkGray)
	img.Set(5, 195, darkGray)

	rect, err := Detect(img, DefaultParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	// Center must land inside the injected square.
	c := rect.Center()
	if c.X < 20 || c.X >= 170 || c.Y < 20 || c.Y >= 170 {
		t.Errorf("center %v outside injected square", c)
	}

	// Area within 10% of the injected square, padding included.
	injected := 150 * 150
	if rect.Area() < injected*90/100 || rect.Area() > injected*110/100 {
		t.Errorf("area %d not within 10%% of %d", rect.Area(), injected)
	}
}

func TestDetect_PaddedBounds(t *testing.T) {
	img := createTestImage(200, 200, lightGray)
	fillRect(img, 20, 20, 150, 150, darkGray)

	rect, err := Detect(img, DefaultParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	// 2% of 150 = 3px of padding on each side.
	want := Rect{17, 17, 156, 156}
	if absInt(rect.X-want.X) > 2 || absInt(rect.Y-want.Y) > 2 ||
		absInt(rect.W-want.W) > 4 || absInt(rect.H-want.H) > 4 {
		t.Errorf("Detect = %v, want ~%v", rect, want)
	}
}

func TestDetect_AllLight(t *testing.T) {
	img := createTestImage(200, 200, lightGray)

	_, err := Detect(img, DefaultParams())
	if !errors.Is(err, ErrNoBoard) {
		t.Errorf("Detect on all-light image: err = %v, want ErrNoBoard", err)
	}
}

func TestDetect_WrongAspect(t *testing.T) {
	img := createTestImage(200, 200, lightGray)
	// Wide bar: large enough, but aspect ~3.3 is outside [0.85,1.15].
	fillRect(img, 0, 70, 200, 60, darkGray)

	_, err := Detect(img, DefaultParams())
	if !errors.Is(err, ErrNoBoard) {
		t.Errorf("Detect on wide bar: err = %v, want ErrNoBoard", err)
	}
}

func TestDetect_TooSmall(t *testing.T) {
	img := createTestImage(200, 200, lightGray)
	// 30x30 square is under the 5% area floor (2000 px).
	fillRect(img, 80, 80, 30, 30, darkGray)

	_, err := Detect(img, DefaultParams())
	if !errors.Is(err, ErrNoBoard) {
		t.Errorf("Detect on small square: err = %v, want ErrNoBoard", err)
	}
}

func TestDetect_PicksBestOfTwo(t *testing.T) {
	img := createTestImage(400, 400, lightGray)
	// Smaller square and a larger one; the larger one should win.
	fillRect(img, 10, 10, 100, 100, darkGray)
	fillRect(img, 180, 180, 180, 180, darkGray)

	rect, err := Detect(img, DefaultParams())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	c := rect.Center()
	if c.X < 180 || c.Y < 180 {
		t.Errorf("Detect picked %v; want the larger square at (180,180)", rect)
	}
}

func TestDetectCandidates_ReportsLoser(t *testing.T) {
	img := createTestImage(400, 400, lightGray)
	fillRect(img, 10, 10, 100, 100, darkGray)
	fillRect(img, 180, 180, 180, 180, darkGray)

	winner, rejected, err := DetectCandidates(img, DefaultParams())
	if err != nil {
		t.Fatalf("DetectCandidates failed: %v", err)
	}
	if c := winner.Center(); c.X < 180 || c.Y < 180 {
		t.Errorf("winner = %v; want the larger square", winner)
	}
	if len(rejected) != 1 {
		t.Fatalf("rejected = %v, want exactly the smaller square", rejected)
	}
	if c := rejected[0].Center(); c.X > 120 || c.Y > 120 {
		t.Errorf("rejected = %v; want the smaller square near (10,10)", rejected[0])
	}
}

func TestMask_Thresholds(t *testing.T) {
	img := createTestImage(10, 10, lightGray)
	img.Set(5, 5, darkGray)
	// Saturated red is dark-ish in value but high in saturation.
	img.Set(2, 2, color.RGBA{120, 10, 10, 255})

	mask := Mask(img, DefaultParams())
	if mask.GrayAt(5, 5).Y != 255 {
		t.Error("dark gray pixel not in mask")
	}
	if mask.GrayAt(2, 2).Y != 0 {
		t.Error("saturated pixel should not be in mask")
	}
	if mask.GrayAt(0, 0).Y != 0 {
		t.Error("light pixel should not be in mask")
	}
}

func TestFindContours(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 10; y < 40; y++ {
		for x := 10; x < 40; x++ {
			mask.SetGray(x, y, color.Gray{255})
		}
	}
	for y := 60; y < 70; y++ {
		for x := 60; x < 70; x++ {
			mask.SetGray(x, y, color.Gray{255})
		}
	}

	contours := FindContours(mask)
	if len(contours) != 2 {
		t.Fatalf("FindContours found %d regions, want 2", len(contours))
	}

	first := contours[0]
	if first.BBox != image.Rect(10, 10, 40, 40) {
		t.Errorf("first bbox = %v, want (10,10)-(40,40)", first.BBox)
	}
	if first.Size != 900 {
		t.Errorf("first size = %d, want 900", first.Size)
	}
	if first.TL != image.Pt(10, 10) {
		t.Errorf("TL = %v, want (10,10)", first.TL)
	}
	if first.BR != image.Pt(39, 39) {
		t.Errorf("BR = %v, want (39,39)", first.BR)
	}
	if first.TR != image.Pt(39, 10) {
		t.Errorf("TR = %v, want (39,10)", first.TR)
	}
	if first.BL != image.Pt(10, 39) {
		t.Errorf("BL = %v, want (10,39)", first.BL)
	}
}

func TestOverlay(t *testing.T) {
	img := createTestImage(50, 50, lightGray)
	out := Overlay(img, Rect{10, 10, 20, 20}, []Rect{{30, 30, 10, 10}})

	if out.RGBAAt(10, 10) != (color.RGBA{40, 200, 40, 255}) {
		t.Error("winner outline not drawn in green")
	}
	if out.RGBAAt(30, 30) != (color.RGBA{220, 40, 40, 255}) {
		t.Error("rejected outline not drawn in red")
	}
	if out.RGBAAt(0, 0) != lightGray {
		t.Error("background pixel modified")
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
