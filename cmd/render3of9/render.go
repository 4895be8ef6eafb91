package main

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/boombuler/barcode"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/charset"
	"github.com/ericlevine/threeofnine/oned"
	"github.com/ericlevine/threeofnine/surface"
)

// job is one value laid out on one page or image.
type job struct {
	value  string
	params threeofnine.Params
	width  int
	height int
	align  threeofnine.Alignment
	dpi    int
}

func newJob(cfg *config, value string) job {
	p := threeofnine.ParamsForDPI(cfg.dpi)
	j := job{value: value, params: p, width: cfg.width, height: cfg.height, align: cfg.align, dpi: cfg.dpi}
	if j.width == 0 {
		j.width = oned.SymbolLength(utf8.RuneCountInString(value), p) + 2*p.QuietZone
	}
	if j.height == 0 {
		j.height = max(cfg.dpi/2, 1)
	}
	return j
}

func (j job) rect() image.Rectangle {
	return image.Rect(0, 0, j.width, j.height)
}

// engines draw a job into an image.
var engines = map[string]func(job) (image.Image, error){
	"raster": drawRaster,
	"gg":     drawCanvas,
	"symbol": drawSymbol,
}

func drawRaster(j job) (image.Image, error) {
	r := surface.NewWhiteRaster(j.width, j.height, color.Black)
	oned.RenderWithParams(j.rect(), j.value, j.align, j.params, r)
	return r.Image(), nil
}

func drawCanvas(j job) (image.Image, error) {
	dc := gg.NewContext(j.width, j.height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	c := surface.NewCanvas(dc, color.Black)
	oned.RenderWithParams(j.rect(), j.value, j.align, j.params, c)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("gg: %w", err)
	}
	return dc.Image(), nil
}

// drawSymbol ignores the alignment: barcode.Scale centers the symbol.
func drawSymbol(j job) (image.Image, error) {
	sym, err := oned.Encode(j.value, j.params)
	if err != nil {
		return nil, err
	}
	width := max(j.width, sym.Bounds().Dx())
	return barcode.Scale(sym, width, j.height)
}

// encoders write a job in one output format.
var encoders = map[string]func(io.Writer, job, func(job) (image.Image, error)) error{
	"png":  encodeImage(png.Encode),
	"bmp":  encodeImage(bmp.Encode),
	"tiff": encodeImage(func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }),
	"pdf":  encodePDF,
}

func encodeImage(enc func(io.Writer, image.Image) error) func(io.Writer, job, func(job) (image.Image, error)) error {
	return func(w io.Writer, j job, draw func(job) (image.Image, error)) error {
		img, err := draw(j)
		if err != nil {
			return err
		}
		return enc(w, img)
	}
}

// encodePDF draws vector bars on a single page the size of the job at its
// resolution. The engine is not used.
func encodePDF(w io.Writer, j job, _ func(job) (image.Image, error)) error {
	scale := surface.PointsPerPixel(j.dpi)
	pageW, pageH := float64(j.width)*scale, float64(j.height)*scale
	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: pageW, URy: pageH}, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	oned.RenderWithParams(j.rect(), j.value, j.align, j.params, surface.NewPDF(page, j.dpi, pageH, color.Black))
	return page.Close()
}

// renderAll renders every value, printing each written path to stdout and
// each failure to stderr. It fails when any value failed.
func renderAll(cfg *config, stdout, stderr io.Writer, logger *slog.Logger) error {
	failed := 0
	for _, value := range cfg.values {
		path, err := renderValue(cfg, value)
		if err != nil {
			fmt.Fprintf(stderr, "%q: %v\n", value, err)
			failed++
			continue
		}
		logger.Debug("wrote barcode", slog.String("value", value), slog.String("path", path))
		fmt.Fprintln(stdout, path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d values failed", failed, len(cfg.values))
	}
	return nil
}

func renderValue(cfg *config, value string) (string, error) {
	path := cfg.out
	if path == "" {
		var err error
		if path, err = outputPath(cfg.outDir, value, cfg.format); err != nil {
			return "", err
		}
	}
	return path, renderOne(cfg, value, path)
}

func renderOne(cfg *config, value, path string) error {
	j := newJob(cfg, value)
	draw := engines[cfg.engine]

	var buf bytes.Buffer
	if err := encoders[cfg.format](&buf, j, draw); err != nil {
		return err
	}
	if cfg.verify {
		// PDF output is checked through a raster twin.
		check := draw
		if cfg.format == "pdf" {
			check = drawRaster
		}
		if err := verify(j, check); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func verify(j job, draw func(job) (image.Image, error)) error {
	img, err := draw(j)
	if err != nil {
		return err
	}
	result, err := oned.Verify(img)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if want := expectedText(j.value); result.Text != want {
		return fmt.Errorf("verify: read %q, want %q", result.Text, want)
	}
	return nil
}

// expectedText is what a scanner should read back: the encodable
// characters of value, upper-cased.
func expectedText(value string) string {
	var b strings.Builder
	for _, r := range value {
		if _, ok := oned.Lookup(r); ok {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// outputPath names the file for value inside dir. Characters that are
// awkward in file names become '_', and the result never escapes dir.
func outputPath(dir, value, format string) (string, error) {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', '%', '$', '+', '*', ':':
			return '_'
		}
		return r
	}, value)
	if name == "" || strings.Trim(name, ".") == "" {
		name = "empty"
	}
	return securejoin.SecureJoin(dir, name+"."+format)
}

// readValues reads one value per non-blank line of path.
func readValues(path, cs string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := charset.Decode(data, cs)
	if err != nil {
		return nil, err
	}
	var values []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); strings.TrimSpace(line) != "" {
			values = append(values, line)
		}
	}
	return values, sc.Err()
}
