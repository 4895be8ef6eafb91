package surface

import (
	"image/color"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// ContentBuilder is the part of a PDF content stream builder the PDF surface
// draws with. *builder.Builder from seehuhn.de/go/pdf satisfies it, as does
// the Page returned by document.WriteSinglePage.
type ContentBuilder interface {
	PushGraphicsState()
	PopGraphicsState()
	SetFillColor(c pdfcolor.Color)
	Rectangle(x, y, width, height float64)
	Fill()
}

// PDF draws bars into a PDF content stream. Coordinates are device pixels
// at the given resolution with y growing downward; they are converted to
// PDF points with y growing upward from the bottom of the page.
type PDF struct {
	b          ContentBuilder
	scale      float64
	pageHeight float64
	st         stateStack
}

// NewPDF draws onto b. pageHeight is the page's height in points.
func NewPDF(b ContentBuilder, dpi int, pageHeight float64, pen color.Color) *PDF {
	if dpi <= 0 {
		dpi = 72
	}
	return &PDF{
		b:          b,
		scale:      PointsPerPixel(dpi),
		pageHeight: pageHeight,
		st:         newStateStack(pen),
	}
}

// PointsPerPixel returns the size of one device pixel in PDF points.
func PointsPerPixel(dpi int) float64 {
	return 72 / float64(dpi)
}

func (p *PDF) SaveState() {
	p.b.PushGraphicsState()
	p.st.push()
}

func (p *PDF) RestoreState() {
	if p.st.pop() {
		p.b.PopGraphicsState()
	}
}

func (p *PDF) PenColor() color.Color { return p.st.cur.pen }

// SetPenColor changes the pen the next render fills with.
func (p *PDF) SetPenColor(c color.Color) { p.st.cur.pen = c }

func (p *PDF) SetFillColor(c color.Color) {
	p.st.cur.fill = c
	p.b.SetFillColor(toDeviceRGB(c))
}

func (p *PDF) FillRect(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s := p.scale
	p.b.Rectangle(float64(x)*s, p.pageHeight-float64(y+height)*s, float64(width)*s, float64(height)*s)
	p.b.Fill()
}

func toDeviceRGB(c color.Color) pdfcolor.Color {
	r, g, b, _ := c.RGBA()
	return pdfcolor.DeviceRGB(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}
