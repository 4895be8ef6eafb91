package surface

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// opLog records content stream operators as text.
type opLog struct {
	ops []string
}

func (l *opLog) PushGraphicsState() { l.ops = append(l.ops, "q") }
func (l *opLog) PopGraphicsState()  { l.ops = append(l.ops, "Q") }
func (l *opLog) SetFillColor(c pdfcolor.Color) {
	l.ops = append(l.ops, fmt.Sprintf("fill %v", c == pdfcolor.DeviceRGB(0, 0, 0)))
}
func (l *opLog) Rectangle(x, y, w, h float64) {
	l.ops = append(l.ops, fmt.Sprintf("re %g %g %g %g", x, y, w, h))
}
func (l *opLog) Fill() { l.ops = append(l.ops, "f") }

func TestPDFFillRect(t *testing.T) {
	log := &opLog{}
	p := NewPDF(log, 144, 100, nil)

	p.SaveState()
	p.SetFillColor(p.PenColor())
	p.FillRect(10, 20, 4, 40)
	p.FillRect(10, 20, 0, 40)
	p.RestoreState()

	assert.Equal(t, []string{
		"q",
		"fill true",
		"re 5 70 2 20",
		"f",
		"Q",
	}, log.ops)
}

func TestPDFUnmatchedRestore(t *testing.T) {
	log := &opLog{}
	p := NewPDF(log, 72, 792, color.White)
	p.RestoreState()
	assert.Empty(t, log.ops)
	assert.Equal(t, color.White, p.PenColor())
}

func TestPointsPerPixel(t *testing.T) {
	assert.InDelta(t, 0.72, PointsPerPixel(100), 1e-9)
	assert.InDelta(t, 1.0, PointsPerPixel(72), 1e-9)
	assert.InDelta(t, 0.24, PointsPerPixel(300), 1e-9)
}
