package grid

import (
	"image"
	"image/color"
	"testing"
)

func TestTiles_Geometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 900, 900))
	// Mark the expected top-left pixel of two tiles so centering is
	// observable: cell (0,0) tile starts at (5,5), cell (4,7) tile at
	// (705,405).
	marker := color.RGBA{255, 0, 255, 255}
	img.SetRGBA(5, 5, marker)
	img.SetRGBA(705, 405, marker)

	tiles, err := Tiles(img, 9, 5)
	if err != nil {
		t.Fatalf("Tiles failed: %v", err)
	}

	if len(tiles) != 81 {
		t.Fatalf("got %d tiles, want 81", len(tiles))
	}

	// Each cell is 100x100; a margin of 5 leaves a 90x90 tile.
	for i, tile := range tiles {
		b := tile.Bounds()
		if b.Dx() != 90 || b.Dy() != 90 {
			t.Fatalf("tile %d is %dx%d, want 90x90", i, b.Dx(), b.Dy())
		}
	}

	if got := tiles[0].NRGBAAt(tiles[0].Bounds().Min.X, tiles[0].Bounds().Min.Y); got.R != 255 || got.B != 255 {
		t.Error("tile (0,0) does not start at image pixel (5,5)")
	}
	tile47 := tiles[4*9+7]
	if got := tile47.NRGBAAt(tile47.Bounds().Min.X, tile47.Bounds().Min.Y); got.R != 255 || got.B != 255 {
		t.Error("tile (4,7) does not start at image pixel (705,405)")
	}
}

func TestTiles_MarginTooLarge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 90, 90))
	// 10x10 cells cannot survive a margin of 5 per side.
	if _, err := Tiles(img, 9, 5); err == nil {
		t.Error("expected error when margin consumes the cell")
	}
}

func TestGridCountAndString(t *testing.T) {
	var g Grid
	if g.Count() != 0 {
		t.Errorf("empty grid Count = %d", g.Count())
	}

	g[0][0] = 5
	g[8][8] = 9
	if g.Count() != 2 {
		t.Errorf("Count = %d, want 2", g.Count())
	}

	s := g.String()
	if len(s) == 0 || s[0] != '5' {
		t.Errorf("String does not start with 5: %q", s)
	}
}
