package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRecordsFills(t *testing.T) {
	r := NewRecorder(nil)
	assert.Equal(t, color.Black, r.PenColor())

	r.FillRect(1, 2, 3, 4)
	r.SetFillColor(color.White)
	r.FillRect(0, 0, 1, 1)

	require.Len(t, r.Fills, 2)
	assert.Equal(t, Fill{Rect: image.Rect(1, 2, 4, 6), Color: color.Black}, r.Fills[0])
	assert.Equal(t, Fill{Rect: image.Rect(0, 0, 1, 1), Color: color.White}, r.Fills[1])
	assert.Equal(t, []image.Rectangle{image.Rect(1, 2, 4, 6), image.Rect(0, 0, 1, 1)}, r.Rects())
}

func TestRecorderStateStack(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	r := NewRecorder(red)
	assert.True(t, r.Balanced())

	r.SaveState()
	r.SetFillColor(color.White)
	r.SetPenColor(color.Black)
	r.SaveState()
	r.SetFillColor(color.Black)
	assert.False(t, r.Balanced())

	r.RestoreState()
	assert.Equal(t, color.White, r.FillColor())
	r.RestoreState()
	assert.Equal(t, red, r.FillColor())
	assert.Equal(t, red, r.PenColor())
	assert.True(t, r.Balanced())
}

func TestRecorderUnmatchedRestore(t *testing.T) {
	r := NewRecorder(nil)
	r.SetFillColor(color.White)
	r.RestoreState()
	assert.Equal(t, color.White, r.FillColor(), "restore without save must not change state")
	assert.False(t, r.Balanced())

	r.Reset()
	assert.True(t, r.Balanced())
	assert.Empty(t, r.Fills)
}
