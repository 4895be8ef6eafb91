// Package bitutil provides the 1-bit rows and matrices used as raster
// targets for rendered symbols and as input to the verification scanner.
package bitutil

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// BitArray is a fixed-size row of bits packed into uint64 words.
type BitArray struct {
	words []uint64
	size  int
}

// NewBitArray creates a cleared BitArray holding size bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{words: make([]uint64, wordCount(size)), size: size}
}

// BitArrayFromString parses a row written with 'X' for set bits and any
// other byte ('.', ' ', '0') for unset bits.
func BitArrayFromString(s string) *BitArray {
	ba := NewBitArray(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 'X' {
			ba.Set(i)
		}
	}
	return ba
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int { return ba.size }

// Get reports whether bit i is set.
func (ba *BitArray) Get(i int) bool {
	return ba.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Unset clears bit i.
func (ba *BitArray) Unset(i int) {
	ba.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Clear unsets every bit.
func (ba *BitArray) Clear() {
	clear(ba.words)
}

// SetRange sets the bits in [start, end).
func (ba *BitArray) SetRange(start, end int) {
	if end < start || start < 0 || end > ba.size {
		panic("bitarray: invalid range")
	}
	for start < end {
		w := start / wordBits
		lo := uint(start % wordBits)
		hi := uint(wordBits)
		if end-w*wordBits < wordBits {
			hi = uint(end - w*wordBits)
		}
		ba.words[w] |= rangeMask(lo, hi)
		start = (w + 1) * wordBits
	}
}

// IsRange reports whether every bit in [start, end) equals value.
func (ba *BitArray) IsRange(start, end int, value bool) bool {
	if end < start || start < 0 || end > ba.size {
		panic("bitarray: invalid range")
	}
	for start < end {
		w := start / wordBits
		lo := uint(start % wordBits)
		hi := uint(wordBits)
		if end-w*wordBits < wordBits {
			hi = uint(end - w*wordBits)
		}
		mask := rangeMask(lo, hi)
		got := ba.words[w] & mask
		if value && got != mask || !value && got != 0 {
			return false
		}
		start = (w + 1) * wordBits
	}
	return true
}

// NextSet returns the index of the first set bit at or after from, or Size
// when there is none.
func (ba *BitArray) NextSet(from int) int {
	return ba.next(from, 0)
}

// NextUnset returns the index of the first unset bit at or after from, or
// Size when there is none.
func (ba *BitArray) NextUnset(from int) int {
	return ba.next(from, ^uint64(0))
}

func (ba *BitArray) next(from int, invert uint64) int {
	if from >= ba.size {
		return ba.size
	}
	w := from / wordBits
	cur := (ba.words[w] ^ invert) &^ (1<<uint(from%wordBits) - 1)
	for cur == 0 {
		w++
		if w == len(ba.words) {
			return ba.size
		}
		cur = ba.words[w] ^ invert
	}
	return min(w*wordBits+bits.TrailingZeros64(cur), ba.size)
}

// Reverse mirrors the row in place, so bit i moves to Size-1-i.
func (ba *BitArray) Reverse() {
	out := make([]uint64, len(ba.words))
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			j := ba.size - 1 - i
			out[j/wordBits] |= 1 << uint(j%wordBits)
		}
	}
	ba.words = out
}

// Clone returns an independent copy.
func (ba *BitArray) Clone() *BitArray {
	return &BitArray{words: append([]uint64(nil), ba.words...), size: ba.size}
}

// String renders the row with 'X' for set and '.' for unset bits.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Runs returns the lengths of consecutive runs of equal bits, starting with
// the run that contains bit 0.
func (ba *BitArray) Runs() []int {
	if ba.size == 0 {
		return nil
	}
	var runs []int
	pos := 0
	set := ba.Get(0)
	for pos < ba.size {
		var end int
		if set {
			end = ba.NextUnset(pos)
		} else {
			end = ba.NextSet(pos)
		}
		runs = append(runs, end-pos)
		pos = end
		set = !set
	}
	return runs
}

func rangeMask(lo, hi uint) uint64 {
	if hi-lo == wordBits {
		return ^uint64(0)
	}
	return (1<<(hi-lo) - 1) << lo
}

func wordCount(size int) int {
	return (size + wordBits - 1) / wordBits
}
