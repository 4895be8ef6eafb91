package surface

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas draws bars on a gg.Context. Each SaveState pushes the context's
// graphics state as well as the surface's colors.
type Canvas struct {
	dc  *gg.Context
	st  stateStack
	err error
}

// NewCanvas draws onto dc with the given pen (black when nil).
func NewCanvas(dc *gg.Context, pen color.Color) *Canvas {
	c := &Canvas{dc: dc, st: newStateStack(pen)}
	dc.SetColor(c.st.cur.fill)
	return c
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Err returns the first error reported by a fill.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) SaveState() {
	c.dc.Push()
	c.st.push()
}

func (c *Canvas) RestoreState() {
	if !c.st.pop() {
		return
	}
	c.dc.Pop()
	c.dc.SetColor(c.st.cur.fill)
}

func (c *Canvas) PenColor() color.Color { return c.st.cur.pen }

// SetPenColor changes the pen the next render fills with.
func (c *Canvas) SetPenColor(col color.Color) { c.st.cur.pen = col }

func (c *Canvas) SetFillColor(col color.Color) {
	c.st.cur.fill = col
	c.dc.SetColor(col)
}

func (c *Canvas) FillRect(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err
	}
}
