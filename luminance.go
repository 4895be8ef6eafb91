package threeofnine

import "github.com/ericlevine/threeofnine/bitutil"

// LuminanceSource exposes an image as 8-bit greyscale rows.
type LuminanceSource interface {
	// Row returns row y, reusing row when it is large enough.
	Row(y int, row []byte) []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// Binarizer turns luminance into black and white bits.
type Binarizer interface {
	// BlackRow returns row y, reusing row when it is large enough.
	BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error)

	// BlackMatrix returns the whole image.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}
