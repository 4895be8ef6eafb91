package oned

import (
	"fmt"
	"math"

	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/bitutil"
)

// Code39Reader reads one Code 39 symbol from a binarized row.
// It does not interpret check digits or the full-ASCII extension.
type Code39Reader struct{}

// NewCode39Reader creates a reader.
func NewCode39Reader() *Code39Reader {
	return &Code39Reader{}
}

// DecodeRow decodes the first symbol on row. The symbol needs a blank
// margin of at least half a character before the start '*' and after the
// stop '*' (or must end at the row's edge). An empty payload is valid.
func (r *Code39Reader) DecodeRow(rowNumber int, row *bitutil.BitArray, _ *threeofnine.DecodeOptions) (*threeofnine.Result, error) {
	counters := make([]int, PatternElements)

	start, err := findStartPattern(row, counters)
	if err != nil {
		return nil, err
	}
	next := row.NextSet(start[1])
	end := row.Size()

	var text []byte
	var lastStart int
	for {
		if err := RecordPattern(row, next, counters); err != nil {
			return nil, err
		}
		pattern, ok := toNarrowWidePattern(counters)
		if !ok {
			return nil, threeofnine.ErrNotFound
		}
		ch, ok := patternToChar(pattern)
		if !ok {
			return nil, fmt.Errorf("pattern %s at x=%d: %w", pattern, next, threeofnine.ErrFormat)
		}
		text = append(text, ch)
		lastStart = next
		for _, c := range counters {
			next += c
		}
		next = row.NextSet(next)
		if ch == StartStop {
			break
		}
	}
	text = text[:len(text)-1]

	lastSize := 0
	for _, c := range counters {
		lastSize += c
	}
	trailing := next - lastStart - lastSize
	if next != end && trailing*2 < lastSize {
		return nil, threeofnine.ErrNotFound
	}

	left := float64(start[1]+start[0]) / 2
	right := float64(lastStart) + float64(lastSize)/2
	return &threeofnine.Result{
		Text: string(text),
		Points: []threeofnine.ResultPoint{
			{X: left, Y: float64(rowNumber)},
			{X: right, Y: float64(rowNumber)},
		},
		SymbologyIdentifier: "]A0",
	}, nil
}

// findStartPattern slides a nine-element window along row until it holds the
// '*' pattern preceded by enough white space, and returns its [start, end).
func findStartPattern(row *bitutil.BitArray, counters []int) ([2]int, error) {
	width := row.Size()
	offset := row.NextSet(0)

	n := len(counters)
	for i := range counters {
		counters[i] = 0
	}
	pos := 0
	patternStart := offset
	white := false
	for i := offset; i < width; i++ {
		if row.Get(i) != white {
			counters[pos]++
			continue
		}
		if pos == n-1 {
			if p, ok := toNarrowWidePattern(counters); ok && p == code39StartStopEncoding {
				whiteStart := max(patternStart-(i-patternStart)/2, 0)
				if row.IsRange(whiteStart, patternStart, false) {
					return [2]int{patternStart, i}, nil
				}
			}
			patternStart += counters[0] + counters[1]
			copy(counters, counters[2:pos+1])
			counters[pos-1] = 0
			counters[pos] = 0
			pos--
		} else {
			pos++
		}
		counters[pos] = 1
		white = !white
	}
	return [2]int{}, threeofnine.ErrNotFound
}

// toNarrowWidePattern classifies nine run lengths as narrow or wide. It
// raises the narrow threshold until exactly three runs are wide, and rejects
// the window when one wide run dominates the others.
func toNarrowWidePattern(counters []int) (Pattern, bool) {
	maxNarrow := 0
	for {
		threshold := math.MaxInt
		for _, c := range counters {
			if c < threshold && c > maxNarrow {
				threshold = c
			}
		}
		maxNarrow = threshold

		wide, wideTotal := 0, 0
		var pattern Pattern
		for i, c := range counters {
			if c > maxNarrow {
				pattern |= 1 << uint(len(counters)-1-i)
				wide++
				wideTotal += c
			}
		}
		if wide == 3 {
			for _, c := range counters {
				if c > maxNarrow && c*2 >= wideTotal {
					return 0, false
				}
			}
			return pattern, true
		}
		if wide < 3 {
			return 0, false
		}
	}
}
