package threeofnine

import (
	"image"
	"image/color"

	"github.com/ericlevine/threeofnine/bitutil"
)

// ImageLuminanceSource holds the greyscale conversion of an image.Image.
type ImageLuminanceSource struct {
	pix    []byte
	width  int
	height int
}

// NewImageLuminanceSource converts img to greyscale once, up front.
// Fully transparent pixels count as white, so a symbol rendered onto a
// cleared RGBA canvas scans like one rendered onto paper.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h)

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], g.Pix[off:off+w])
		}
		return &ImageLuminanceSource{pix: pix, width: w, height: h}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			if _, _, _, a := c.RGBA(); a == 0 {
				pix[y*w+x] = 0xff
				continue
			}
			pix[y*w+x] = color.GrayModel.Convert(c).(color.Gray).Y
		}
	}
	return &ImageLuminanceSource{pix: pix, width: w, height: h}
}

// Row returns row y, or nil when y is out of range.
func (s *ImageLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if len(row) < s.width {
		row = make([]byte, s.width)
	}
	copy(row, s.pix[y*s.width:(y+1)*s.width])
	return row
}

// Width returns the width of the image.
func (s *ImageLuminanceSource) Width() int { return s.width }

// Height returns the height of the image.
func (s *ImageLuminanceSource) Height() int { return s.height }

// BitMatrixToImage converts a BitMatrix to greyscale, set bits black.
func BitMatrixToImage(m *bitutil.BitMatrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}
