//go:build windows

package capture

import (
	"fmt"
	"image"
	"strings"
	"syscall"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	dwmapi               = syscall.NewLazyDLL("dwmapi.dll")
	procEnumWindows      = user32.NewProc("EnumWindows")
	procIsWindowVisible  = user32.NewProc("IsWindowVisible")
	procGetWindowTextW   = user32.NewProc("GetWindowTextW")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procClientToScreen   = user32.NewProc("ClientToScreen")
	procSetProcessDPI    = user32.NewProc("SetProcessDPIAware")
	procDwmGetWindowAttr = dwmapi.NewProc("DwmGetWindowAttribute")
)

const dwmwaExtendedFrameBounds = 9

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winPoint struct {
	X, Y int32
}

// EnableDPIAwareness opts the process into per-pixel coordinates so
// window rectangles aren't scaled by the system DPI setting.
func EnableDPIAwareness() {
	procSetProcessDPI.Call()
}

// FindWindow returns the screen rectangle of the first visible window
// whose title contains the given string (case-insensitive).
//
// The rectangle prefers the DWM extended frame bounds, which exclude
// the drop shadow that GetWindowRect includes on modern Windows. With
// clientOnly the client area is returned instead, converted to screen
// coordinates.
func FindWindow(title string, clientOnly bool) (image.Rectangle, error) {
	hwnd, err := findWindowHandle(title)
	if err != nil {
		return image.Rectangle{}, err
	}

	if clientOnly {
		return clientRect(hwnd)
	}

	var r winRect
	ret, _, _ := procDwmGetWindowAttr.Call(
		hwnd,
		dwmwaExtendedFrameBounds,
		uintptr(unsafe.Pointer(&r)),
		unsafe.Sizeof(r),
	)
	if ret != 0 {
		// DWM unavailable, fall back to the plain window rect.
		if ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
			return image.Rectangle{}, fmt.Errorf("GetWindowRect failed for window %q", title)
		}
	}
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}

func findWindowHandle(title string) (uintptr, error) {
	want := strings.ToLower(title)
	var found uintptr

	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
			return 1 // continue enumeration
		}
		var buf [256]uint16
		n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
		if n == 0 {
			return 1
		}
		text := syscall.UTF16ToString(buf[:n])
		if strings.Contains(strings.ToLower(text), want) {
			found = hwnd
			return 0 // stop enumeration
		}
		return 1
	})

	procEnumWindows.Call(cb, 0)
	if found == 0 {
		return 0, fmt.Errorf("%w: %q", ErrWindowNotFound, title)
	}
	return found, nil
}

func clientRect(hwnd uintptr) (image.Rectangle, error) {
	var r winRect
	if ok, _, _ := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
		return image.Rectangle{}, fmt.Errorf("GetClientRect failed")
	}

	origin := winPoint{}
	if ok, _, _ := procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&origin))); ok == 0 {
		return image.Rectangle{}, fmt.Errorf("ClientToScreen failed")
	}

	return image.Rect(
		int(origin.X),
		int(origin.Y),
		int(origin.X)+int(r.Right-r.Left),
		int(origin.Y)+int(r.Bottom-r.Top),
	), nil
}
