package oned

import (
	"errors"
	"image"
	"image/color"
	"testing"

	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/bitutil"
	"github.com/ericlevine/threeofnine/surface"
)

// rowOf lays out patterns with default parameters between quiet zones of
// the given width, one narrow gap between characters.
func rowOf(quiet int, patterns ...Pattern) *bitutil.BitArray {
	p := threeofnine.DefaultParams()
	var bars []bool
	for i, pat := range patterns {
		if i > 0 {
			bars = append(bars, false)
		}
		for e := 0; e < PatternElements; e++ {
			for n := elementWidth(pat.Wide(e), p); n > 0; n-- {
				bars = append(bars, e%2 == 0)
			}
		}
	}
	row := bitutil.NewBitArray(len(bars) + 2*quiet)
	for i, b := range bars {
		if b {
			row.Set(quiet + i)
		}
	}
	return row
}

func patternsOf(t *testing.T, s string) []Pattern {
	t.Helper()
	var out []Pattern
	for _, r := range s {
		p, ok := Lookup(r)
		if !ok {
			t.Fatalf("Lookup(%q) not found", r)
		}
		out = append(out, p)
	}
	return out
}

func TestCode39RoundTrip(t *testing.T) {
	tests := []string{
		"HELLO",
		"WORLD",
		"12345",
		"TEST-123",
		"A B.C",
		"$/+%",
		"",
	}
	reader := NewCode39Reader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			sym, err := Encode(tc, threeofnine.DefaultParams())
			if err != nil {
				t.Fatalf("encode error: %v", err)
			}
			result, err := reader.DecodeRow(0, sym.Bars(), nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.SymbologyIdentifier != "]A0" {
				t.Errorf("symbology identifier = %q", result.SymbologyIdentifier)
			}
			if len(result.Points) != 2 || result.Points[0].X >= result.Points[1].X {
				t.Errorf("unexpected points %v", result.Points)
			}
		})
	}
}

func TestCode39ReaderInvalidPattern(t *testing.T) {
	row := rowOf(10, code39StartStopEncoding, 0x1A0, code39StartStopEncoding)
	_, err := NewCode39Reader().DecodeRow(0, row, nil)
	if !errors.Is(err, threeofnine.ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func TestCode39ReaderNeedsLeadingQuietZone(t *testing.T) {
	row := rowOf(10, patternsOf(t, "*AB*")...)
	// A stray bar three pixels before the start character.
	row.Set(7)
	_, err := NewCode39Reader().DecodeRow(0, row, nil)
	if !errors.Is(err, threeofnine.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCode39ReaderNeedsTrailingQuietZone(t *testing.T) {
	row := rowOf(10, patternsOf(t, "*AB*")...)
	// A stray bar two pixels after the stop character.
	end := row.Size() - 10
	row.Set(end + 2)
	_, err := NewCode39Reader().DecodeRow(0, row, nil)
	if !errors.Is(err, threeofnine.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCode39ReaderBlankRow(t *testing.T) {
	_, err := NewCode39Reader().DecodeRow(0, bitutil.NewBitArray(200), nil)
	if !errors.Is(err, threeofnine.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecordPattern(t *testing.T) {
	row := bitutil.BitArrayFromString("..XX.XXX..X")
	counters := make([]int, 4)
	if err := RecordPattern(row, 2, counters); err != nil {
		t.Fatal(err)
	}
	want := []int{2, 1, 3, 2}
	for i := range want {
		if counters[i] != want[i] {
			t.Fatalf("counters = %v, want %v", counters, want)
		}
	}

	// The last run may end at the edge of the row.
	counters = make([]int, 5)
	if err := RecordPattern(row, 2, counters); err != nil {
		t.Errorf("edge run: %v", err)
	}
	counters = make([]int, 6)
	if err := RecordPattern(row, 2, counters); !errors.Is(err, threeofnine.ErrNotFound) {
		t.Errorf("too few runs: err = %v", err)
	}
}

func renderImage(t *testing.T, value string, w, h int, align threeofnine.Alignment) *surface.Raster {
	t.Helper()
	raster := surface.NewWhiteRaster(w, h, color.Black)
	Render(image.Rect(0, 0, w, h), value, align, raster)
	return raster
}

func TestVerify(t *testing.T) {
	tests := []struct {
		value string
		align threeofnine.Alignment
	}{
		{"CODE39", threeofnine.AlignCenter},
		{"HELLO WORLD", threeofnine.AlignLeft},
		{"42", threeofnine.AlignRight},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			raster := renderImage(t, tc.value, 260, 30, tc.align)
			result, err := Verify(raster.Image())
			if err != nil {
				t.Fatalf("verify: %v", err)
			}
			if result.Text != tc.value {
				t.Errorf("got %q, want %q", result.Text, tc.value)
			}
			if result.Reversed {
				t.Error("symbol read reversed")
			}
		})
	}
}

func TestVerifyMirrored(t *testing.T) {
	raster := renderImage(t, "MIRROR", 200, 10, threeofnine.AlignCenter)
	src := raster.Image()
	b := src.Bounds()
	mirrored := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mirrored.Set(b.Max.X-1-x, y, src.At(x, y))
		}
	}
	result, err := Verify(mirrored)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if result.Text != "MIRROR" || !result.Reversed {
		t.Errorf("got %q reversed=%v, want MIRROR reversed", result.Text, result.Reversed)
	}
}

func TestVerifyBlankImage(t *testing.T) {
	raster := surface.NewWhiteRaster(100, 20, nil)
	if _, err := Verify(raster.Image()); !errors.Is(err, threeofnine.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
