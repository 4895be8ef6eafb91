package surface

import (
	"image"
	"image/color"
)

// Fill is one recorded FillRect call.
type Fill struct {
	Rect  image.Rectangle
	Color color.Color
}

// Recorder is a Surface that draws nothing and remembers every fill.
type Recorder struct {
	Fills []Fill

	// Saves and Restores count SaveState and RestoreState calls.
	Saves, Restores int

	st stateStack
}

// NewRecorder returns a Recorder whose pen is pen, or black when pen is nil.
func NewRecorder(pen color.Color) *Recorder {
	return &Recorder{st: newStateStack(pen)}
}

func (r *Recorder) SaveState() {
	r.Saves++
	r.st.push()
}

func (r *Recorder) RestoreState() {
	r.Restores++
	r.st.pop()
}

func (r *Recorder) PenColor() color.Color { return r.st.cur.pen }

// SetPenColor changes the pen the next render fills with.
func (r *Recorder) SetPenColor(c color.Color) { r.st.cur.pen = c }

func (r *Recorder) SetFillColor(c color.Color) { r.st.cur.fill = c }

// FillColor returns the current fill color.
func (r *Recorder) FillColor() color.Color { return r.st.cur.fill }

func (r *Recorder) FillRect(x, y, width, height int) {
	r.Fills = append(r.Fills, Fill{
		Rect:  image.Rect(x, y, x+width, y+height),
		Color: r.st.cur.fill,
	})
}

// Balanced reports whether every SaveState has been matched by a
// RestoreState.
func (r *Recorder) Balanced() bool {
	return r.Saves == r.Restores && r.st.depth() == 0
}

// Rects returns the recorded rectangles in call order.
func (r *Recorder) Rects() []image.Rectangle {
	rects := make([]image.Rectangle, len(r.Fills))
	for i, f := range r.Fills {
		rects[i] = f.Rect
	}
	return rects
}

// Reset forgets all fills and counters but keeps the current colors.
func (r *Recorder) Reset() {
	r.Fills = nil
	r.Saves, r.Restores = 0, 0
	r.st.saved = nil
}
