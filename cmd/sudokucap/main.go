// Command sudokucap runs the full pipeline: capture a screenshot,
// crop the board, read the digits, and solve the puzzle.
//
// Capture and cropping run as the sibling screencap and boardcrop
// binaries so each stage can also be used on its own.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pzhao/sudokucap/internal/config"
	"github.com/pzhao/sudokucap/internal/grid"
	"github.com/pzhao/sudokucap/internal/imaging"
	"github.com/pzhao/sudokucap/internal/ocr"
	"github.com/pzhao/sudokucap/internal/sudoku"
)

const stageTimeout = 60 * time.Second

type options struct {
	outputDir   string
	delay       int
	format      string
	quality     int
	skipCapture bool
	margin      int
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
		Use:           "sudokucap",
		Short:         "Capture, crop, read, and solve a Sudoku board",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", cfg.OutputDir, "Directory for intermediate images")
	cmd.Flags().IntVar(&opts.delay, "delay", 0, "Seconds to wait before capturing")
	cmd.Flags().StringVar(&opts.format, "format", cfg.Format, "Screenshot format: png, jpg, or jpeg")
	cmd.Flags().IntVar(&opts.quality, "quality", cfg.JPEGQuality, "JPEG quality 1-100")
	cmd.Flags().BoolVar(&opts.skipCapture, "skip-capture", false, "Reuse the latest screenshot instead of capturing")
	cmd.Flags().IntVar(&opts.margin, "margin", cfg.TileMargin, "Pixels trimmed from each cell edge before OCR")

	return cmd
}

func run(cfg *config.Config, opts *options) error {
	ctx := context.Background()

	if !opts.skipCapture {
		args := []string{
			"--output", opts.outputDir,
			"--format", opts.format,
			"--quality", strconv.Itoa(opts.quality),
		}
		if opts.delay > 0 {
			args = append(args, "--delay", strconv.Itoa(opts.delay))
		}
		if _, err := runStage(ctx, "screencap", args); err != nil {
			return err
		}
	}

	boardPath, err := runStage(ctx, "boardcrop", []string{"--output", opts.outputDir})
	if err != nil {
		return err
	}

	return solveBoard(cfg, opts, boardPath)
}

// solveBoard reads the cropped board image, rectifies the grid,
// recognizes the digits, and prints the solved puzzle.
func solveBoard(cfg *config.Config, opts *options, boardPath string) error {
	img, err := imaging.Load(boardPath)
	if err != nil {
		return err
	}

	quad, err := grid.LocateQuad(img, cfg.Detection)
	if err != nil {
		return err
	}
	square, err := grid.Rectify(img, quad)
	if err != nil {
		return err
	}

	engine, err := ocr.NewTesseract(cfg.OCRLanguage)
	if err != nil {
		return err
	}
	defer engine.Close()

	puzzle, err := ocr.ReadGrid(engine, square, opts.margin)
	if err != nil {
		return err
	}

	log.Printf("recognized %d givens", puzzle.Count())
	fmt.Println("Puzzle:")
	fmt.Println(puzzle.String())

	if !sudoku.Consistent(&puzzle) {
		return fmt.Errorf("recognized givens conflict with each other; check the board crop")
	}
	if !sudoku.Solve(&puzzle) {
		return fmt.Errorf("puzzle has no solution; some digits were likely misread")
	}

	fmt.Println("Solution:")
	fmt.Println(puzzle.String())
	return nil
}

// runStage executes a sibling binary, streaming its stderr through and
// returning the last line of its stdout (each stage prints the path it
// wrote).
func runStage(ctx context.Context, name string, args []string) (string, error) {
	bin, err := findSibling(name)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()

	log.Printf("running %s %s", bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%s produced no output path", name)
	}
	lines := strings.Split(out, "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}

// findSibling locates a stage binary next to this executable, falling
// back to PATH.
func findSibling(name string) (string, error) {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("cannot find %s next to this executable or on PATH", name)
}
