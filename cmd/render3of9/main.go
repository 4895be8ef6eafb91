// Command render3of9 renders Code 39 barcodes to image and PDF files.
//
//	render3of9 [flags] value [value...]
//	render3of9 -in values.txt -outdir out/ -format pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"time"

	threeofnine "github.com/ericlevine/threeofnine"
)

type config struct {
	in       string
	charset  string
	out      string
	outDir   string
	format   string
	engine   string
	width    int
	height   int
	dpi      int
	align    threeofnine.Alignment
	verify   bool
	watch    bool
	debounce time.Duration
	args     []string
	values   []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "render3of9: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, verbose, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	threeofnine.SetLogger(logger)
	defer threeofnine.SetLogger(nil)

	if err := renderAll(cfg, stdout, stderr, logger); err != nil {
		return err
	}
	if !cfg.watch {
		return nil
	}
	return watch(ctx, cfg.in, cfg.debounce, logger, func() error {
		values, err := readValues(cfg.in, cfg.charset)
		if err != nil {
			return err
		}
		cfg.values = append(slices.Clip(cfg.args), values...)
		return renderAll(cfg, stdout, stderr, logger)
	})
}

func parseFlags(args []string, stderr io.Writer) (*config, bool, error) {
	cfg := &config{}
	var align string
	var verbose bool

	fs := flag.NewFlagSet("render3of9", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "read values from `file`, one per line")
	fs.StringVar(&cfg.charset, "charset", "", "character set of -in (guessed when empty)")
	fs.StringVar(&cfg.out, "out", "", "output `file` for a single value")
	fs.StringVar(&cfg.outDir, "outdir", ".", "output `directory` for batches")
	fs.StringVar(&cfg.format, "format", "png", "output format: png, bmp, tiff or pdf")
	fs.StringVar(&cfg.engine, "engine", "raster", "drawing engine: raster, gg or symbol")
	fs.IntVar(&cfg.width, "width", 0, "image width in pixels (0 fits the symbol)")
	fs.IntVar(&cfg.height, "height", 0, "image height in pixels (0 is half an inch)")
	fs.IntVar(&cfg.dpi, "dpi", threeofnine.BaseDPI, "device resolution")
	fs.StringVar(&align, "align", "left", "horizontal alignment: left, center or right")
	fs.BoolVar(&cfg.verify, "verify", false, "scan every output and fail when it does not read back")
	fs.BoolVar(&cfg.watch, "watch", false, "re-render whenever -in changes")
	fs.DurationVar(&cfg.debounce, "debounce", 300*time.Millisecond, "delay before re-rendering in -watch mode")
	fs.BoolVar(&verbose, "v", false, "log debug output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: render3of9 [flags] value [value...]\n\n")
		fmt.Fprintf(stderr, "Render Code 39 barcodes to PNG, BMP, TIFF or PDF.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	var err error
	if cfg.align, err = threeofnine.ParseAlignment(align); err != nil {
		return nil, false, err
	}
	if _, ok := encoders[cfg.format]; !ok {
		return nil, false, fmt.Errorf("unknown format %q", cfg.format)
	}
	if _, ok := engines[cfg.engine]; !ok {
		return nil, false, fmt.Errorf("unknown engine %q", cfg.engine)
	}
	if cfg.dpi <= 0 {
		return nil, false, fmt.Errorf("dpi must be positive, got %d", cfg.dpi)
	}
	if cfg.width < 0 || cfg.height < 0 {
		return nil, false, fmt.Errorf("negative size %dx%d", cfg.width, cfg.height)
	}
	if cfg.watch && cfg.in == "" {
		return nil, false, errors.New("-watch needs -in")
	}

	cfg.args = fs.Args()
	cfg.values = slices.Clip(cfg.args)
	if cfg.in != "" {
		values, err := readValues(cfg.in, cfg.charset)
		if err != nil {
			return nil, false, err
		}
		cfg.values = append(cfg.values, values...)
	}
	if len(cfg.values) == 0 {
		fs.Usage()
		return nil, false, errors.New("no values to render")
	}
	if cfg.out != "" && len(cfg.values) > 1 {
		return nil, false, errors.New("-out takes a single value; use -outdir for batches")
	}
	return cfg, verbose, nil
}
