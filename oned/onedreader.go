package oned

import (
	"image"

	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/binarizer"
	"github.com/ericlevine/threeofnine/bitutil"
)

// RowDecoder decodes a single binarized row.
type RowDecoder interface {
	DecodeRow(rowNumber int, row *bitutil.BitArray, opts *threeofnine.DecodeOptions) (*threeofnine.Result, error)
}

// DecodeOneD scans bitmap from the middle row outward and returns the first
// row decoder finds a symbol on. Each row is tried left to right and then
// reversed; a symbol read in reverse has Reversed set and its points mapped
// back to image coordinates.
func DecodeOneD(bitmap *threeofnine.BinaryBitmap, decoder RowDecoder, opts *threeofnine.DecodeOptions) (*threeofnine.Result, error) {
	width, height := bitmap.Width(), bitmap.Height()
	row := bitutil.NewBitArray(width)

	tryHarder := opts != nil && opts.TryHarder
	rowStep, maxLines := max(height>>5, 1), 15
	if tryHarder {
		rowStep, maxLines = max(height>>8, 1), height
	}

	middle := height / 2
	for x := 0; x < maxLines; x++ {
		offset := rowStep * ((x + 1) / 2)
		y := middle + offset
		if x&1 == 1 {
			y = middle - offset
		}
		if y < 0 || y >= height {
			break
		}

		var err error
		row, err = bitmap.BlackRow(y, row)
		if err != nil {
			continue
		}

		for attempt := 0; attempt < 2; attempt++ {
			if attempt == 1 {
				row.Reverse()
			}
			result, err := decoder.DecodeRow(y, row, opts)
			if err != nil {
				continue
			}
			if attempt == 1 {
				result.Reversed = true
				for i := range result.Points {
					result.Points[i].X = float64(width) - result.Points[i].X - 1
				}
			}
			return result, nil
		}
	}
	return nil, threeofnine.ErrNotFound
}

// RecordPattern fills counters with the lengths of successive runs in row
// starting at start. It fails unless every counter is filled, allowing the
// last run to end at the row's edge.
func RecordPattern(row *bitutil.BitArray, start int, counters []int) error {
	n := len(counters)
	for i := range counters {
		counters[i] = 0
	}
	end := row.Size()
	if start >= end {
		return threeofnine.ErrNotFound
	}
	white := !row.Get(start)
	pos := 0
	i := start
	for ; i < end; i++ {
		if row.Get(i) != white {
			counters[pos]++
			continue
		}
		pos++
		if pos == n {
			break
		}
		counters[pos] = 1
		white = !white
	}
	if pos != n && !(pos == n-1 && i == end) {
		return threeofnine.ErrNotFound
	}
	return nil
}

// Verify scans img for a Code 39 symbol, checking every row. It is meant
// for reading back rendered output, not for camera captures.
func Verify(img image.Image) (*threeofnine.Result, error) {
	source := threeofnine.NewImageLuminanceSource(img)
	bitmap := threeofnine.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))
	return DecodeOneD(bitmap, NewCode39Reader(), &threeofnine.DecodeOptions{TryHarder: true})
}
