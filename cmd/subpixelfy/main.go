// Command subpixelfy turns an image into an enlarged, low-resolution
// looking rendition with LCD subpixel colouring.
//
//	subpixelfy -s 10 -c vertical photo.jpg
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/32bitkid/subpixel"
	"github.com/32bitkid/subpixel/screen"
)

var errUsage = errors.New("provide one input file")

type cli struct {
	input   string
	output  string
	verbose bool
	help    bool
	config  subpixel.Config
}

func parseArgs(args []string, stderr io.Writer) (*cli, error) {
	var (
		c          = &cli{config: subpixel.DefaultConfig()}
		cfg        = &c.config
		mode       = cfg.Mode.String()
		kernel     = cfg.Kernel.String()
		edge       = cfg.Edge.String()
		comparison = cfg.Comparison.String()
		crop       bool
	)

	s := getopt.New()
	s.SetParameters("file")
	s.FlagLong(&cfg.Scale, "scale", 's', "Block size in pixels (-s 10 makes a 400x400 image look like 40x40)", "n")
	s.FlagLong(&cfg.DarkThreshold, "threshold", 't', "Mean intensity below which neighbouring blocks count as dark", "0-255")
	s.FlagLong(&cfg.NeutralThreshold, "neutral", 'n', "Mean intensity at or above which blocks stay white", "0-255")
	s.FlagLong(&mode, "mode", 'm', "Colouring: rotation or chroma", "mode")
	s.FlagLong(&kernel, "kernel", 'k', "Shrink kernel: hamming, box, linear, lanczos, catmullrom, bilinear, nearest", "kernel")
	s.FlagLong(&edge, "edge", 'e', "Partial trailing blocks: clip or drop", "policy")
	s.FlagLong(&comparison, "compare", 'c', "Comparison output: none, vertical or horizontal", "layout")
	s.FlagLong(&c.output, "out", 'o', "Output path (default <file>_subpixelfied.<ext>)", "path")
	s.FlagLong(&cfg.Widen, "widen", 'w', "Triple the width so each pixel spans three subpixels")
	s.FlagLong(&crop, "crop", 'C', "Crop to the columns holding black pixels")
	s.FlagLong(&cfg.ForegroundLevel, "crop-level", 0, "Intensity at or below which a pixel counts as black", "0-255")
	s.FlagLong(&cfg.Blur, "blur", 'b', "Gaussian blur sigma applied before downsampling", "sigma")
	s.FlagLong(&cfg.Bleed, "bleed", 0, "Columns blended across block seams", "n")
	s.FlagLong(&cfg.WarmShift, "warm", 0, "Chroma shift toward warm in chroma mode", "0-127")
	s.FlagLong(&cfg.Dampen, "dampen", 0, "Luma factor for blocks right of dark areas in chroma mode", "0-1")
	s.FlagLong(&cfg.Workers, "workers", 'j', "Rows coloured concurrently", "n")
	s.FlagLong(&cfg.AntialiasOnly, "antialias-only", 'a', "Only run the shrink/grow pass")
	s.FlagLong(&cfg.Quality, "quality", 'q', "JPEG quality", "1-100")
	s.FlagLong(&c.verbose, "verbose", 'v', "Log progress to stderr")
	s.FlagLong(&c.help, "help", 'h', "Display help")

	if err := s.Getopt(args, func(getopt.Option) bool { return true }); err != nil {
		s.PrintUsage(stderr)
		return nil, err
	}
	if c.help {
		s.PrintUsage(stderr)
		return c, nil
	}
	if s.NArgs() != 1 {
		s.PrintUsage(stderr)
		return nil, errUsage
	}
	c.input = s.Arg(0)
	cfg.Crop = crop

	var err error
	if cfg.Mode, err = screen.ParseMode(mode); err != nil {
		return nil, err
	}
	if cfg.Kernel, err = screen.ParseKernel(kernel); err != nil {
		return nil, err
	}
	if cfg.Edge, err = screen.ParseEdgePolicy(edge); err != nil {
		return nil, err
	}
	if cfg.Comparison, err = subpixel.ParseComparison(comparison); err != nil {
		return nil, err
	}
	return c, cfg.Validate()
}

func main() {
	c, err := parseArgs(os.Args, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if c.help {
		return
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	subpixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	outs, err := subpixel.Run(c.input, c.output, c.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(outs.Result)
	if outs.Comparison != "" {
		fmt.Println(outs.Comparison)
	}
}
