package surface

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func luma(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func TestCanvasFillRect(t *testing.T) {
	dc := gg.NewContext(20, 10)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	c := NewCanvas(dc, nil)
	c.SaveState()
	c.SetFillColor(c.PenColor())
	c.FillRect(5, 0, 3, 10)
	c.FillRect(12, 0, 0, 10)
	c.RestoreState()
	require.NoError(t, c.Err())

	img := dc.Image()
	assert.Less(t, luma(img.At(6, 5)), uint8(0x40))
	assert.Greater(t, luma(img.At(1, 5)), uint8(0xc0))
	assert.Greater(t, luma(img.At(12, 5)), uint8(0xc0))
}

func TestCanvasStateStack(t *testing.T) {
	dc := gg.NewContext(4, 4)
	defer dc.Close()

	red := color.RGBA{R: 0xff, A: 0xff}
	c := NewCanvas(dc, red)
	assert.Same(t, dc, c.Context())

	c.SaveState()
	c.SetPenColor(color.Black)
	c.SetFillColor(color.White)
	c.RestoreState()
	c.RestoreState()

	assert.Equal(t, red, c.PenColor())
	assert.Equal(t, red, c.st.cur.fill)
}
