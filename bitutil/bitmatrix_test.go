package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrix(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
	bm.Clear()
	if bm.Get(3, 5) {
		t.Error("bit (3,5) should be unset after Clear")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrix(8, 8)
	bm.SetRegion(2, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := x >= 2 && x < 6 && y >= 2 && y < 6
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixFillRectClips(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       string
	}{
		{"inside", 1, 0, 2, 2, ".XX.\n.XX.\n"},
		{"overflow right", 3, 0, 5, 1, "...X\n....\n"},
		{"overflow left", -2, 1, 3, 4, "....\nX...\n"},
		{"outside", 10, 0, 2, 2, "....\n....\n"},
		{"left of origin", -5, 0, 2, 2, "....\n....\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bm := NewBitMatrix(4, 2)
			bm.FillRect(tc.x, tc.y, tc.w, tc.h)
			if got := bm.String(); got != tc.want {
				t.Errorf("got\n%swant\n%s", got, tc.want)
			}
		})
	}
}

func TestBitMatrixRow(t *testing.T) {
	bm := NewBitMatrix(8, 4)
	bm.Set(3, 2)
	bm.Set(5, 2)
	row := bm.Row(2, nil)
	if !row.Get(3) || !row.Get(5) {
		t.Error("row should have bits 3 and 5 set")
	}
	if row.Get(4) {
		t.Error("row bit 4 should not be set")
	}

	// reused row must not keep stale bits
	row.Set(0)
	row = bm.Row(1, row)
	if row.Get(0) || row.Get(3) {
		t.Error("reused row should reflect row 1 only")
	}
}

func TestNewBitMatrixPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero width")
		}
	}()
	NewBitMatrix(0, 3)
}
