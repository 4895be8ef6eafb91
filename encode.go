package threeofnine

import "image/color"

// Params holds the typographic constants of a rendered symbol, in device
// pixels. The zero value is not usable; start from DefaultParams.
type Params struct {
	// NarrowBar is the width of a narrow bar or space (X).
	NarrowBar int

	// WideMultiple is the width of a wide element in narrow bars (N).
	WideMultiple int

	// Gap is the inter-character gap (I).
	Gap int

	// QuietZone is the minimum blank margin on each side of the symbol.
	QuietZone int
}

// BaseDPI is the resolution the default constants are chosen for.
const BaseDPI = 100

// DefaultParams returns the constants for a 100 DPI surface: 1px narrow
// bars, wide bars twice as wide, a 1px gap, and a 10px quiet zone.
func DefaultParams() Params {
	return Params{NarrowBar: 1, WideMultiple: 2, Gap: 1, QuietZone: 10}
}

// ParamsForDPI scales the default constants to a surface of the given
// resolution. The narrow bar never drops below one pixel and the quiet zone
// never below ten.
func ParamsForDPI(dpi int) Params {
	p := DefaultParams()
	p.NarrowBar = max(dpi/BaseDPI, 1)
	p.Gap = p.NarrowBar
	p.QuietZone = max(p.NarrowBar*10, 10)
	return p
}

// WideBar returns the pixel width of a wide element.
func (p Params) WideBar() int {
	return p.NarrowBar * p.WideMultiple
}

// Surface is a drawing target for rendered bars. Implementations keep a
// paint state that SaveState and RestoreState push and pop; the renderer
// fills with whatever the current pen color is.
//
// A Surface is owned by the caller and is not retained after a render call
// returns.
type Surface interface {
	SaveState()
	RestoreState()
	PenColor() color.Color
	SetFillColor(c color.Color)
	FillRect(x, y, width, height int)
}
