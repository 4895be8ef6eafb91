package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericlevine/threeofnine/bitutil"
)

func TestMatrixMarksDarkFills(t *testing.T) {
	m := NewMatrix(bitutil.NewBitMatrix(8, 2))
	m.SetFillColor(m.PenColor())
	m.FillRect(1, 0, 2, 2)
	m.FillRect(6, -1, 5, 5)

	m.SetFillColor(color.White)
	m.FillRect(0, 0, 8, 2)
	m.SetFillColor(color.Transparent)
	m.FillRect(0, 0, 8, 2)

	assert.Equal(t, ".XX...XX\n.XX...XX\n", m.BitMatrix().String())
}

func TestMatrixRestoresFill(t *testing.T) {
	m := NewMatrix(bitutil.NewBitMatrix(4, 1))
	m.SetFillColor(color.White)
	m.SaveState()
	m.SetFillColor(color.Black)
	m.RestoreState()
	m.FillRect(0, 0, 4, 1)

	assert.Equal(t, "....\n", m.BitMatrix().String())
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		c    color.Color
		want bool
	}{
		{color.Black, true},
		{color.White, false},
		{color.Transparent, false},
		{color.Gray{Y: 0x40}, true},
		{color.Gray{Y: 0xc0}, false},
		{color.RGBA{R: 0x10, G: 0x10, B: 0x80, A: 0xff}, true},
		{color.NRGBA{A: 0x20}, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, isDark(tc.c), "%#v", tc.c)
	}
}
