package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os/exec"
	"strings"
	"time"
)

// Device bridge errors.
var (
	ErrADBNotFound = errors.New("adb not found; install Android platform tools or pass --adb")
	ErrNoDevice    = errors.New("no authorized device connected")
)

const (
	devicesTimeout = 10 * time.Second
	captureTimeout = 15 * time.Second
)

// ResolveADB locates the adb executable. An explicit path wins;
// otherwise PATH is searched.
func ResolveADB(explicit string) (string, error) {
	if explicit != "" {
		if _, err := exec.LookPath(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrADBNotFound, explicit)
		}
		return explicit, nil
	}
	path, err := exec.LookPath("adb")
	if err != nil {
		return "", ErrADBNotFound
	}
	return path, nil
}

// Devices lists the serials of connected, authorized devices.
func Devices(ctx context.Context, adb string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, devicesTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, adb, "devices").Output()
	if err != nil {
		return nil, fmt.Errorf("adb devices failed: %w", err)
	}
	return parseDevices(string(out)), nil
}

// parseDevices extracts serials from `adb devices` output. Only lines
// ending in the "device" state count; unauthorized and offline entries
// are skipped.
func parseDevices(out string) []string {
	var serials []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "\tdevice") {
			continue
		}
		serial := strings.TrimSpace(strings.SplitN(line, "\t", 2)[0])
		if serial != "" {
			serials = append(serials, serial)
		}
	}
	return serials
}

// CaptureDevice grabs a screenshot from a device over the adb bridge.
//
// With an empty serial the first connected device is used. The raw PNG
// from `screencap -p` is decoded before returning so callers always
// get a raster image, matching the display capture paths.
func CaptureDevice(ctx context.Context, adb, serial string) (image.Image, error) {
	if serial == "" {
		serials, err := Devices(ctx, adb)
		if err != nil {
			return nil, err
		}
		if len(serials) == 0 {
			return nil, ErrNoDevice
		}
		serial = serials[0]
	}

	ctx, cancel := context.WithTimeout(ctx, captureTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, adb, "-s", serial, "exec-out", "screencap", "-p")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("device screenshot failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("device screenshot produced no data (%s)", strings.TrimSpace(stderr.String()))
	}

	img, _, err := image.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to decode device screenshot: %w", err)
	}
	return img, nil
}
