// Package config resolves runtime settings from a .env file and
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pzhao/sudokucap/internal/board"
)

// Defaults applied when neither the .env file nor the environment
// supplies a value.
const (
	DefaultOutputDir   = "screenshots"
	DefaultFormat      = "png"
	DefaultJPEGQuality = 90
	DefaultWindowTitle = "BRA-AL00"
	DefaultTileMargin  = 5
	DefaultOCRLanguage = "eng"
)

// Config holds every tunable the binaries share. Detection carries the
// board detector thresholds so .env files can tune them per setup.
type Config struct {
	OutputDir   string
	Format      string
	JPEGQuality int
	WindowTitle string
	TileMargin  int
	OCRLanguage string
	ADBPath     string
	Detection   board.Params
}

// Load resolves configuration in priority order: process environment,
// then a .env file beside the executable, then a file named by
// SUDOKUCAP_ENV, then built-in defaults. Malformed numeric values fall
// back to the default rather than failing startup.
func Load() *Config {
	if path := resolveEnvPath(); path != "" {
		// Existing environment variables win over the file.
		_ = godotenv.Load(path)
	}

	p := board.DefaultParams()
	p.MaxSaturation = envFloat("SUDOKUCAP_MAX_SATURATION", p.MaxSaturation)
	p.MaxValue = envFloat("SUDOKUCAP_MAX_VALUE", p.MaxValue)
	p.MinAreaFrac = envFloat("SUDOKUCAP_MIN_AREA_FRAC", p.MinAreaFrac)
	p.AspectMin = envFloat("SUDOKUCAP_ASPECT_MIN", p.AspectMin)
	p.AspectMax = envFloat("SUDOKUCAP_ASPECT_MAX", p.AspectMax)

	return &Config{
		OutputDir:   envString("SUDOKUCAP_OUTPUT_DIR", DefaultOutputDir),
		Format:      envString("SUDOKUCAP_FORMAT", DefaultFormat),
		JPEGQuality: envInt("SUDOKUCAP_JPEG_QUALITY", DefaultJPEGQuality, 1),
		WindowTitle: envString("SUDOKUCAP_WINDOW_TITLE", DefaultWindowTitle),
		TileMargin:  envInt("SUDOKUCAP_TILE_MARGIN", DefaultTileMargin, 0),
		OCRLanguage: envString("SUDOKUCAP_OCR_LANG", DefaultOCRLanguage),
		ADBPath:     os.Getenv("SUDOKUCAP_ADB"),
		Detection:   p,
	}
}

func resolveEnvPath() string {
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if alt := os.Getenv("SUDOKUCAP_ENV"); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}
	return ""
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt reads an integer key, rejecting values below floor. A margin
// of zero is legal (no inset), so its floor differs from quality's.
func envInt(key string, fallback, floor int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= floor {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}
