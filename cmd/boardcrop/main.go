// Command boardcrop locates the puzzle board in a screenshot and
// writes the cropped board image.
package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pzhao/sudokucap/internal/board"
	"github.com/pzhao/sudokucap/internal/config"
	"github.com/pzhao/sudokucap/internal/imaging"
)

type options struct {
	input     string
	outputDir string
	boardRect string
	debug     bool
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
		Use:           "boardcrop",
		Short:         "Detect and crop the puzzle board from a screenshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Screenshot to crop (default: latest in output dir)")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", cfg.OutputDir, "Directory for the cropped board image")
	cmd.Flags().StringVar(&opts.boardRect, "board", "", "Manual board rectangle as x,y,w,h (skips detection)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Also write an overlay image showing detection candidates")

	return cmd
}

func run(cfg *config.Config, opts *options) error {
	input := opts.input
	if input == "" {
		latest, err := imaging.LatestScreenshot(opts.outputDir)
		if err != nil {
			return fmt.Errorf("no input given and %w", err)
		}
		input = latest
		log.Printf("using latest screenshot %s", input)
	}

	img, err := imaging.Load(input)
	if err != nil {
		return err
	}
	bounds := img.Bounds()

	rect, rejected, err := resolveRect(img, cfg, opts)
	if opts.debug {
		writeOverlay(img, rect, rejected, opts.outputDir, input)
	}
	if err != nil {
		return err
	}

	log.Printf("board at %s in %dx%d image", rect, bounds.Dx(), bounds.Dy())

	cropped := imaging.Crop(img, rect.Bounds())
	out := imaging.BoardPath(opts.outputDir, input)
	if err := imaging.Save(cropped, out, cfg.JPEGQuality); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// resolveRect picks the board rectangle: a manual --board value is
// parsed and clamped, otherwise the detector runs with the configured
// thresholds.
func resolveRect(img image.Image, cfg *config.Config, opts *options) (board.Rect, []board.Rect, error) {
	if opts.boardRect != "" {
		r, err := board.ParseRect(opts.boardRect)
		if err != nil {
			return board.Rect{}, nil, err
		}
		b := img.Bounds()
		return r.ClampTo(b.Dx(), b.Dy()), nil, nil
	}

	rect, rejected, err := board.DetectCandidates(img, cfg.Detection)
	if errors.Is(err, board.ErrNoBoard) {
		return rect, rejected, fmt.Errorf("%w; pass --board x,y,w,h to crop manually", err)
	}
	return rect, rejected, err
}

func writeOverlay(img image.Image, winner board.Rect, rejected []board.Rect, dir, input string) {
	overlay := board.Overlay(img, winner, rejected)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	path := filepath.Join(dir, "debug_"+stem+".png")
	if err := imaging.Save(overlay, path, 100); err != nil {
		log.Printf("failed to write debug overlay: %v", err)
		return
	}
	log.Printf("debug overlay written to %s", path)
}
