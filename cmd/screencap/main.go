// Command screencap captures screenshots from displays, windows, or
// adb-connected devices and writes them with timestamped names.
package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pzhao/sudokucap/internal/capture"
	"github.com/pzhao/sudokucap/internal/config"
	"github.com/pzhao/sudokucap/internal/imaging"
)

type options struct {
	outputDir  string
	all        bool
	monitor    int
	window     string
	clientOnly bool
	device     string
	adbPath    string
	delay      int
	format     string
	quality    int
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "screencap",
		Short:         "Capture screenshots from displays, windows, or devices",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceRequested := cmd.Flags().Changed("device")
			monitorRequested := cmd.Flags().Changed("monitor")
			return run(cfg, opts, deviceRequested, monitorRequested)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", cfg.OutputDir, "Directory for captured images")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Capture every active display")
	cmd.Flags().IntVar(&opts.monitor, "monitor", 0, "Capture one display (1 = primary)")
	cmd.Flags().StringVar(&opts.window, "window", "", "Capture the first window whose title contains this text")
	cmd.Flags().BoolVar(&opts.clientOnly, "client-only", false, "Capture the window client area without borders")
	cmd.Flags().StringVar(&opts.device, "device", "", "Capture from an adb device (optional serial)")
	cmd.Flags().Lookup("device").NoOptDefVal = "auto"
	cmd.Flags().StringVar(&opts.adbPath, "adb", cfg.ADBPath, "Path to the adb executable")
	cmd.Flags().IntVar(&opts.delay, "delay", 0, "Seconds to wait before capturing")
	cmd.Flags().StringVarP(&opts.format, "format", "f", cfg.Format, "Output format: png, jpg, or jpeg")
	cmd.Flags().IntVar(&opts.quality, "quality", cfg.JPEGQuality, "JPEG quality 1-100")

	return cmd
}

func run(cfg *config.Config, opts *options, deviceRequested, monitorRequested bool) error {
	if opts.quality < 1 || opts.quality > 100 {
		return fmt.Errorf("quality %d out of range 1-100", opts.quality)
	}
	if monitorRequested && opts.monitor < 1 {
		return fmt.Errorf("monitor index %d out of range (1 = primary)", opts.monitor)
	}

	if opts.delay > 0 {
		log.Printf("waiting %d seconds before capture", opts.delay)
		time.Sleep(time.Duration(opts.delay) * time.Second)
	}

	capture.EnableDPIAwareness()
	now := time.Now()

	switch {
	case opts.all:
		return captureAll(opts, now)
	case monitorRequested:
		img, err := capture.CaptureDisplay(opts.monitor)
		if err != nil {
			return err
		}
		return saveShot(img, opts, now, opts.monitor)
	case deviceRequested:
		serial := opts.device
		if serial == "auto" {
			serial = ""
		}
		img, err := captureDevice(opts.adbPath, serial)
		if err != nil {
			return err
		}
		return saveShot(img, opts, now, 0)
	case opts.window != "":
		img, err := captureWindow(opts.window, opts.clientOnly)
		if err != nil {
			return err
		}
		return saveShot(img, opts, now, 0)
	default:
		return captureDefault(cfg, opts, now)
	}
}

// captureDefault tries the configured window title first and falls
// back to the primary display. Both failures are reported when the
// chain comes up empty.
func captureDefault(cfg *config.Config, opts *options, now time.Time) error {
	img, winErr := captureWindow(cfg.WindowTitle, opts.clientOnly)
	if winErr == nil {
		return saveShot(img, opts, now, 0)
	}
	log.Printf("window capture failed: %v; falling back to primary display", winErr)

	img, dispErr := capture.CaptureDisplay(1)
	if dispErr == nil {
		return saveShot(img, opts, now, 0)
	}
	return fmt.Errorf("all capture methods failed: window: %v; display: %v", winErr, dispErr)
}

func captureAll(opts *options, now time.Time) error {
	shots, err := capture.CaptureAll()
	if err != nil {
		return err
	}
	monitorSuffix := len(shots) > 1
	for _, s := range shots {
		monitor := 0
		if monitorSuffix {
			monitor = s.Display
		}
		if err := saveShot(s.Image, opts, now, monitor); err != nil {
			return err
		}
	}
	return nil
}

func captureWindow(title string, clientOnly bool) (image.Image, error) {
	rect, err := capture.FindWindow(title, clientOnly)
	if err != nil {
		return nil, err
	}
	return capture.CaptureRect(rect)
}

func captureDevice(adbPath, serial string) (image.Image, error) {
	ctx := context.Background()
	adb, err := capture.ResolveADB(adbPath)
	if err != nil {
		return nil, err
	}
	return capture.CaptureDevice(ctx, adb, serial)
}

func saveShot(img image.Image, opts *options, t time.Time, monitor int) error {
	path := imaging.ScreenshotPath(opts.outputDir, opts.format, t, monitor)
	if err := imaging.Save(img, path, opts.quality); err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
