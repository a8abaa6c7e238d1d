package config

import (
	"testing"

	"github.com/pzhao/sudokucap/internal/board"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", cfg.Format, DefaultFormat)
	}
	if cfg.JPEGQuality != DefaultJPEGQuality {
		t.Errorf("JPEGQuality = %d, want %d", cfg.JPEGQuality, DefaultJPEGQuality)
	}
	if cfg.WindowTitle != DefaultWindowTitle {
		t.Errorf("WindowTitle = %q, want %q", cfg.WindowTitle, DefaultWindowTitle)
	}
	if cfg.Detection != board.DefaultParams() {
		t.Errorf("Detection = %+v, want defaults", cfg.Detection)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SUDOKUCAP_OUTPUT_DIR", "captures")
	t.Setenv("SUDOKUCAP_FORMAT", "jpg")
	t.Setenv("SUDOKUCAP_JPEG_QUALITY", "75")
	t.Setenv("SUDOKUCAP_WINDOW_TITLE", "MyPhone")
	t.Setenv("SUDOKUCAP_MAX_SATURATION", "0.5")
	t.Setenv("SUDOKUCAP_TILE_MARGIN", "8")
	t.Setenv("SUDOKUCAP_ADB", "/opt/adb")

	cfg := Load()

	if cfg.OutputDir != "captures" {
		t.Errorf("OutputDir = %q, want captures", cfg.OutputDir)
	}
	if cfg.Format != "jpg" {
		t.Errorf("Format = %q, want jpg", cfg.Format)
	}
	if cfg.JPEGQuality != 75 {
		t.Errorf("JPEGQuality = %d, want 75", cfg.JPEGQuality)
	}
	if cfg.WindowTitle != "MyPhone" {
		t.Errorf("WindowTitle = %q, want MyPhone", cfg.WindowTitle)
	}
	if cfg.Detection.MaxSaturation != 0.5 {
		t.Errorf("MaxSaturation = %v, want 0.5", cfg.Detection.MaxSaturation)
	}
	if cfg.TileMargin != 8 {
		t.Errorf("TileMargin = %d, want 8", cfg.TileMargin)
	}
	if cfg.ADBPath != "/opt/adb" {
		t.Errorf("ADBPath = %q, want /opt/adb", cfg.ADBPath)
	}
}

func TestLoad_ZeroTileMargin(t *testing.T) {
	t.Setenv("SUDOKUCAP_TILE_MARGIN", "0")
	t.Setenv("SUDOKUCAP_JPEG_QUALITY", "0")

	cfg := Load()

	// Zero margin means tiles cover whole cells and must be honored;
	// zero quality is invalid and falls back.
	if cfg.TileMargin != 0 {
		t.Errorf("TileMargin = %d, want 0", cfg.TileMargin)
	}
	if cfg.JPEGQuality != DefaultJPEGQuality {
		t.Errorf("JPEGQuality = %d, want default %d", cfg.JPEGQuality, DefaultJPEGQuality)
	}
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("SUDOKUCAP_JPEG_QUALITY", "lots")
	t.Setenv("SUDOKUCAP_MAX_SATURATION", "-1")
	t.Setenv("SUDOKUCAP_TILE_MARGIN", "")

	cfg := Load()

	if cfg.JPEGQuality != DefaultJPEGQuality {
		t.Errorf("JPEGQuality = %d, want default %d", cfg.JPEGQuality, DefaultJPEGQuality)
	}
	if got := cfg.Detection.MaxSaturation; got != board.DefaultParams().MaxSaturation {
		t.Errorf("MaxSaturation = %v, want default", got)
	}
	if cfg.TileMargin != DefaultTileMargin {
		t.Errorf("TileMargin = %d, want default %d", cfg.TileMargin, DefaultTileMargin)
	}
}
