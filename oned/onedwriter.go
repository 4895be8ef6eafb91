// Package oned implements the Code 39 (3-of-9) linear symbology: the
// character table, symbol layout inside a target rectangle, rasterization
// onto a threeofnine.Surface, and a row scanner that reads symbols back.
package oned

import (
	"image"
	"log/slog"
	"strconv"
	"unicode/utf8"

	threeofnine "github.com/ericlevine/threeofnine"
)

// Layout is the planned placement of a symbol in its target rectangle.
type Layout struct {
	// StartX is the x coordinate of the first bar.
	StartX int

	// TopY is the y coordinate of the top of every bar.
	TopY int

	// QuietZone is the blank space between the rectangle's left edge and
	// StartX. It is negative for a right-aligned symbol wider than its
	// rectangle.
	QuietZone int

	// Length is the symbol width excluding quiet zones.
	Length int
}

// SymbolLength returns the width of a symbol carrying c payload characters:
//
//	L = (C + 2)(3N + 6)X + (C + 1)I
//
// Each of the C+2 characters (payload plus start and stop) has three wide
// and six narrow elements, and C+1 gaps separate them.
func SymbolLength(c int, p threeofnine.Params) int {
	n, x, i := p.WideMultiple, p.NarrowBar, p.Gap
	return (c+2)*(3*n+6)*x + (c+1)*i
}

// Plan places a symbol of valueLength payload characters inside r.
//
// Left alignment starts one minimum quiet zone in. Center alignment uses
// half the spare width when that exceeds the minimum quiet zone, and falls
// back to left alignment otherwise. Right alignment leaves exactly one
// minimum quiet zone after the symbol, even when that puts StartX left of
// r. Values above AlignRight align right and negative values align left.
// Symbols wider than r are never clipped or scaled.
func Plan(valueLength int, r image.Rectangle, align threeofnine.Alignment, p threeofnine.Params) Layout {
	length := SymbolLength(valueLength, p)
	qz := p.QuietZone
	switch {
	case align == threeofnine.AlignCenter:
		if natural := (r.Dx() - length) / 2; natural > qz {
			qz = natural
		}
	case align >= threeofnine.AlignRight:
		qz = r.Dx() - (length + p.QuietZone)
	}
	return Layout{
		StartX:    r.Min.X + qz,
		TopY:      r.Min.Y,
		QuietZone: qz,
		Length:    length,
	}
}

// Render draws value as a Code 39 symbol in r using the default 100 DPI
// parameters. A nil surface plans and walks the symbol without drawing.
func Render(r image.Rectangle, value string, align threeofnine.Alignment, s threeofnine.Surface) {
	RenderWithParams(r, value, align, threeofnine.DefaultParams(), s)
}

// RenderWithParams is Render with explicit parameters. It returns the
// planned layout.
//
// The surface's paint state is saved before drawing and restored on return.
// Bars are filled with the surface's current pen color and span the full
// height of r.
func RenderWithParams(r image.Rectangle, value string, align threeofnine.Alignment, p threeofnine.Params, s threeofnine.Surface) Layout {
	layout := Plan(utf8.RuneCountInString(value), r, align, p)
	threeofnine.Logger().Debug("code39 layout",
		slog.Int("startX", layout.StartX),
		slog.Int("quietZone", layout.QuietZone),
		slog.Int("length", layout.Length),
		slog.String("align", align.String()))

	if s != nil {
		s.SaveState()
		defer s.RestoreState()
		s.SetFillColor(s.PenColor())
	}
	Rasterize(value, layout.StartX, layout.TopY, r.Dy(), p, s)
	return layout
}

// Rasterize walks "*" + value + "*" left to right from x, filling one
// rectangle per bar on s (when s is not nil), and returns the cursor after
// the trailing gap.
//
// Characters Code 39 cannot encode are logged and skipped; they take no
// width and no gap, so the symbol comes out narrower than Plan assumed.
func Rasterize(value string, x, top, height int, p threeofnine.Params, s threeofnine.Surface) int {
	// index counts runes of value; the leading '*' is -1.
	index := -1
	for _, r := range wrap(value) {
		pattern, ok := Lookup(r)
		if !ok {
			threeofnine.Logger().Warn("skipping character Code 39 cannot encode",
				slog.String("char", strconv.QuoteRune(r)),
				slog.Int("index", index))
			index++
			continue
		}
		for i := 0; i < PatternElements; i++ {
			w := elementWidth(pattern.Wide(i), p)
			if i%2 == 0 && s != nil {
				s.FillRect(x, top, w, height)
			}
			x += w
		}
		x += p.Gap
		index++
	}
	return x
}

func wrap(value string) string {
	return string(StartStop) + value + string(StartStop)
}
