package surface

import (
	"image/color"

	"github.com/ericlevine/threeofnine/bitutil"
)

// Matrix marks bars as set bits in a BitMatrix. Only dark fills mark
// anything; a light fill leaves the matrix as it is.
type Matrix struct {
	m  *bitutil.BitMatrix
	st stateStack
}

// NewMatrix draws onto m with a black pen.
func NewMatrix(m *bitutil.BitMatrix) *Matrix {
	return &Matrix{m: m, st: newStateStack(color.Black)}
}

// BitMatrix returns the matrix being drawn on.
func (m *Matrix) BitMatrix() *bitutil.BitMatrix { return m.m }

func (m *Matrix) SaveState()    { m.st.push() }
func (m *Matrix) RestoreState() { m.st.pop() }

func (m *Matrix) PenColor() color.Color { return m.st.cur.pen }

func (m *Matrix) SetFillColor(c color.Color) { m.st.cur.fill = c }

func (m *Matrix) FillRect(x, y, width, height int) {
	if !isDark(m.st.cur.fill) {
		return
	}
	m.m.FillRect(x, y, width, height)
}
