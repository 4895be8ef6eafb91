package oned

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/boombuler/barcode"

	threeofnine "github.com/ericlevine/threeofnine"
	"github.com/ericlevine/threeofnine/bitutil"
	"github.com/ericlevine/threeofnine/surface"
)

// Symbol is a rendered Code 39 symbol one pixel high, quiet zones included.
// It implements barcode.Barcode, so barcode.Scale can stretch it to any
// size that is a whole multiple of its width.
type Symbol struct {
	bars    *bitutil.BitMatrix
	content string
	layout  Layout
}

var _ barcode.Barcode = (*Symbol)(nil)

// Encode renders value with the given parameters. Unlike Render it rejects
// values holding characters Code 39 cannot encode, and '*' inside the
// payload, with an error wrapping threeofnine.ErrWriter.
func Encode(value string, p threeofnine.Params) (*Symbol, error) {
	if p.NarrowBar < 1 || p.WideMultiple < 2 || p.Gap < 0 || p.QuietZone < 0 {
		return nil, fmt.Errorf("invalid parameters %+v: %w", p, threeofnine.ErrWriter)
	}
	for i, r := range value {
		if _, ok := Lookup(r); !ok || r == StartStop {
			return nil, fmt.Errorf("character %q at byte %d cannot be encoded: %w", r, i, threeofnine.ErrWriter)
		}
	}

	length := SymbolLength(utf8.RuneCountInString(value), p)
	width := length + 2*p.QuietZone
	bars := bitutil.NewBitMatrix(width, 1)
	layout := RenderWithParams(image.Rect(0, 0, width, 1), value, threeofnine.AlignLeft, p, surface.NewMatrix(bars))
	return &Symbol{bars: bars, content: strings.ToUpper(value), layout: layout}, nil
}

// Bars returns the symbol's single row of bars.
func (s *Symbol) Bars() *bitutil.BitArray { return s.bars.Row(0, nil) }

// Layout returns where the bars sit inside the symbol.
func (s *Symbol) Layout() Layout { return s.layout }

func (s *Symbol) Content() string { return s.content }

func (s *Symbol) Metadata() barcode.Metadata {
	return barcode.Metadata{CodeKind: barcode.TypeCode39, Dimensions: 1}
}

func (s *Symbol) ColorModel() color.Model { return color.Gray16Model }

func (s *Symbol) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.bars.Width(), 1)
}

func (s *Symbol) At(x, y int) color.Color {
	if x >= 0 && x < s.bars.Width() && s.bars.Get(x, 0) {
		return color.Black
	}
	return color.White
}
