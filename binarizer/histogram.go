// Package binarizer converts greyscale images to black and white for the
// verification scanner.
package binarizer

import (
	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/bitutil"
)

const (
	luminanceBits    = 5
	luminanceShift   = 8 - luminanceBits
	luminanceBuckets = 1 << luminanceBits
)

// GlobalHistogram picks one black point per row (or per image) from a
// histogram of luminance values. It suits rendered symbols, which have
// uniform lighting and two well separated peaks.
type GlobalHistogram struct {
	source threeofnine.LuminanceSource
	line   []byte
}

// NewGlobalHistogram creates a binarizer reading from source.
func NewGlobalHistogram(source threeofnine.LuminanceSource) *GlobalHistogram {
	return &GlobalHistogram{source: source}
}

// Width returns the image width.
func (g *GlobalHistogram) Width() int { return g.source.Width() }

// Height returns the image height.
func (g *GlobalHistogram) Height() int { return g.source.Height() }

// BlackRow binarizes row y. Each pixel is sharpened against its neighbours
// before the threshold is applied, so single-pixel bars survive.
func (g *GlobalHistogram) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := g.source.Width()
	if row == nil || row.Size() < width {
		row = bitutil.NewBitArray(width)
	} else {
		row.Clear()
	}

	g.line = g.source.Row(y, g.line)
	if g.line == nil {
		return nil, threeofnine.ErrNotFound
	}
	var buckets [luminanceBuckets]int
	for _, l := range g.line[:width] {
		buckets[l>>luminanceShift]++
	}
	black, err := blackPoint(buckets[:])
	if err != nil {
		return nil, err
	}

	lum := g.line
	if width < 3 {
		for x := 0; x < width; x++ {
			if int(lum[x]) < black {
				row.Set(x)
			}
		}
		return row, nil
	}
	left, center := int(lum[0]), int(lum[1])
	for x := 1; x < width-1; x++ {
		right := int(lum[x+1])
		if (center*4-left-right)/2 < black {
			row.Set(x)
		}
		left, center = center, right
	}
	return row, nil
}

// BlackMatrix binarizes the whole image with one black point estimated from
// four sample rows.
func (g *GlobalHistogram) BlackMatrix() (*bitutil.BitMatrix, error) {
	width, height := g.source.Width(), g.source.Height()

	var buckets [luminanceBuckets]int
	for i := 1; i < 5; i++ {
		g.line = g.source.Row(height*i/5, g.line)
		for x := width / 5; x < width*4/5; x++ {
			buckets[g.line[x]>>luminanceShift]++
		}
	}
	black, err := blackPoint(buckets[:])
	if err != nil {
		return nil, err
	}

	m := bitutil.NewBitMatrix(width, height)
	for y := 0; y < height; y++ {
		g.line = g.source.Row(y, g.line)
		for x := 0; x < width; x++ {
			if int(g.line[x]) < black {
				m.Set(x, y)
			}
		}
	}
	return m, nil
}

// blackPoint finds the two tallest, well separated peaks of the histogram
// and returns the deepest valley between them, favouring the darker side.
func blackPoint(buckets []int) (int, error) {
	n := len(buckets)
	tallest, firstPeak := 0, 0
	for x, c := range buckets {
		if c > buckets[firstPeak] {
			firstPeak = x
		}
		tallest = max(tallest, c)
	}

	secondPeak, secondScore := 0, 0
	for x, c := range buckets {
		d := x - firstPeak
		if score := c * d * d; score > secondScore {
			secondPeak, secondScore = x, score
		}
	}
	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}
	if secondPeak-firstPeak <= n/16 {
		return 0, threeofnine.ErrNotFound
	}

	valley, valleyScore := secondPeak-1, -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		d := x - firstPeak
		if score := d * d * (secondPeak - x) * (tallest - buckets[x]); score > valleyScore {
			valley, valleyScore = x, score
		}
	}
	return valley << luminanceShift, nil
}
