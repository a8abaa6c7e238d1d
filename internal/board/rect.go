package board

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Rect is a board rectangle in pixel coordinates with origin at the
// top-left of the source image.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// ParseRect parses a manual rectangle of the form "x,y,w,h".
//
// All four fields must be present and parse as integers; anything else
// is a hard input error. Out-of-range values are accepted here and
// resolved later by ClampTo.
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("rectangle must be four integers x,y,w,h, got %q", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, fmt.Errorf("rectangle field %d of %q: %w", i+1, s, err)
		}
		vals[i] = n
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// ClampTo constrains the rectangle to an image of the given size.
//
// X and Y are clamped into [0, dim-1]; W and H into [1, remaining].
// Clamping always succeeds, so a wildly out-of-range manual rectangle
// still yields a usable crop region.
func (r Rect) ClampTo(width, height int) Rect {
	r.X = clampInt(r.X, 0, width-1)
	r.Y = clampInt(r.Y, 0, height-1)
	r.W = clampInt(r.W, 1, width-r.X)
	r.H = clampInt(r.H, 1, height-r.Y)
	return r
}

// Pad grows the rectangle outward by pad pixels on every side, clamped
// to the given image size.
func (r Rect) Pad(pad, width, height int) Rect {
	r.X = maxInt(0, r.X-pad)
	r.Y = maxInt(0, r.Y-pad)
	r.W = minInt(width-r.X, r.W+2*pad)
	r.H = minInt(height-r.Y, r.H+2*pad)
	return r
}

// Bounds converts the rectangle to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() image.Point {
	return image.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Area returns the rectangle's area in square pixels.
func (r Rect) Area() int {
	return r.W * r.H
}

// Aspect returns width/height.
func (r Rect) Aspect() float64 {
	if r.H == 0 {
		return 0
	}
	return float64(r.W) / float64(r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
