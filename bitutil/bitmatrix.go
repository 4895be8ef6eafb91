package bitutil

import "strings"

// BitMatrix is a 2D grid of bits stored as one BitArray per row.
// x is the column, y the row; the origin is the top-left corner.
type BitMatrix struct {
	width  int
	height int
	rows   []*BitArray
}

// NewBitMatrix creates a cleared width×height matrix.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rows := make([]*BitArray, height)
	for y := range rows {
		rows[y] = NewBitArray(width)
	}
	return &BitMatrix{width: width, height: height, rows: rows}
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Get reports whether the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool { return bm.rows[y].Get(x) }

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) { bm.rows[y].Set(x) }

// Clear unsets every bit.
func (bm *BitMatrix) Clear() {
	for _, r := range bm.rows {
		r.Clear()
	}
}

// SetRegion sets every bit of the rectangle at (left, top) with the given
// size. The rectangle must lie inside the matrix.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	if top+height > bm.height || left+width > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < top+height; y++ {
		bm.rows[y].SetRange(left, left+width)
	}
}

// FillRect is SetRegion clipped to the matrix bounds. Rectangles entirely
// outside the matrix are ignored.
func (bm *BitMatrix) FillRect(x, y, width, height int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, bm.width), min(y+height, bm.height)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	bm.SetRegion(x0, y0, x1-x0, y1-y0)
}

// Row copies row y into row, allocating a new BitArray when row is nil or
// too small.
func (bm *BitMatrix) Row(y int, row *BitArray) *BitArray {
	src := bm.rows[y]
	if row == nil || row.Size() < bm.width {
		return src.Clone()
	}
	row.Clear()
	copy(row.words, src.words)
	return row
}

// String renders the matrix with "X" for set and "." for unset bits, one
// line per row.
func (bm *BitMatrix) String() string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for _, r := range bm.rows {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
