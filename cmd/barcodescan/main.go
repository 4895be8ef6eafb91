// Command barcodescan reads Code 39 symbols from image files.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/oned"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: barcodescan <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Decode Code 39 barcodes in PNG, JPEG, GIF, BMP or TIFF files.\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(scanAll(flag.Args(), os.Stdout, os.Stderr))
}

// scanAll prints one line per decoded file and returns the exit code: 1 when
// any file could not be read or held no symbol.
func scanAll(paths []string, stdout, stderr io.Writer) int {
	exitCode := 0
	for _, path := range paths {
		result, err := scanFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			exitCode = 1
			continue
		}
		if len(paths) > 1 {
			fmt.Fprintf(stdout, "%s: ", path)
		}
		dir := ""
		if result.Reversed {
			dir = " (reversed)"
		}
		fmt.Fprintf(stdout, "[%s] %s%s\n", result.SymbologyIdentifier, result.Text, dir)
	}
	return exitCode
}

func scanFile(path string) (*threeofnine.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return oned.Verify(img)
}
