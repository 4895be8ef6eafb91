package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Raster fills rectangles on a draw.Image. Fills outside the image are
// clipped.
type Raster struct {
	img draw.Image
	st  stateStack
}

// NewRaster draws onto img with the given pen (black when nil).
func NewRaster(img draw.Image, pen color.Color) *Raster {
	return &Raster{img: img, st: newStateStack(pen)}
}

// NewWhiteRaster allocates a white RGBA image of the given size.
func NewWhiteRaster(width, height int, pen color.Color) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return NewRaster(img, pen)
}

// Image returns the image being drawn on.
func (r *Raster) Image() draw.Image { return r.img }

func (r *Raster) SaveState()    { r.st.push() }
func (r *Raster) RestoreState() { r.st.pop() }

func (r *Raster) PenColor() color.Color { return r.st.cur.pen }

// SetPenColor changes the pen the next render fills with.
func (r *Raster) SetPenColor(c color.Color) { r.st.cur.pen = c }

func (r *Raster) SetFillColor(c color.Color) { r.st.cur.fill = c }

func (r *Raster) FillRect(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	rect := image.Rect(x, y, x+width, y+height)
	draw.Draw(r.img, rect, image.NewUniform(r.st.cur.fill), image.Point{}, draw.Src)
}
