// Package threeofnine renders Code 3-of-9 (Code 39) barcode symbols into a
// caller-supplied rectangle on any drawing surface.
//
// The symbology itself lives in the oned package; this package holds the
// types shared by the encoder, the surfaces, and the verification scanner.
package threeofnine

import (
	"fmt"
	"strings"

	"github.com/ericlevine/threeofnine/bitutil"
)

// Alignment places a symbol horizontally inside its target rectangle.
// Values above AlignRight lay out as AlignRight and negative values as
// AlignLeft.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment accepts "left", "center" (or "middle") and "right",
// ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center", "middle":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// ResultPoint is a point of interest found while scanning a symbol.
type ResultPoint struct {
	X, Y float64
}

// Result is a decoded symbol.
type Result struct {
	// Text is the payload without the start/stop characters.
	Text string

	// Points marks the horizontal center of the start and stop
	// characters on the scanned row.
	Points []ResultPoint

	// Reversed is set when the symbol was read right to left.
	Reversed bool

	// SymbologyIdentifier is the AIM identifier, "]A0" for plain Code 39.
	SymbologyIdentifier string
}

// BinaryBitmap is a black/white view of an image, produced lazily by its
// Binarizer.
type BinaryBitmap struct {
	binarizer Binarizer
	matrix    *bitutil.BitMatrix
}

// NewBinaryBitmap wraps a Binarizer.
func NewBinaryBitmap(binarizer Binarizer) *BinaryBitmap {
	return &BinaryBitmap{binarizer: binarizer}
}

// Width returns the width of the bitmap.
func (b *BinaryBitmap) Width() int { return b.binarizer.Width() }

// Height returns the height of the bitmap.
func (b *BinaryBitmap) Height() int { return b.binarizer.Height() }

// BlackRow returns row y as black (set) and white (unset) bits.
func (b *BinaryBitmap) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	return b.binarizer.BlackRow(y, row)
}

// BlackMatrix returns the whole bitmap, computing it at most once.
func (b *BinaryBitmap) BlackMatrix() (*bitutil.BitMatrix, error) {
	if b.matrix != nil {
		return b.matrix, nil
	}
	m, err := b.binarizer.BlackMatrix()
	if err != nil {
		return nil, err
	}
	b.matrix = m
	return m, nil
}
