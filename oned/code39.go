package oned

import (
	"unicode"

	threeofnine "github.com/ericlevine/threeofnine"
)

// Code39Alphabet lists the payload characters Code 39 can encode, in
// table order. The start/stop character '*' is not part of the payload.
const Code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// StartStop frames every symbol.
const StartStop = '*'

// Pattern is the bar/space layout of one Code 39 character: nine elements,
// bar first, alternating with spaces. Bit 8-i is set when element i is wide.
type Pattern uint16

// PatternElements is the number of elements in every Pattern.
const PatternElements = 9

var code39Encodings = [len(Code39Alphabet)]Pattern{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39StartStopEncoding Pattern = 0x094

// code39Table is filled once at init and never written again.
var code39Table map[rune]Pattern

func init() {
	code39Table = make(map[rune]Pattern, len(Code39Alphabet)+1)
	for i, r := range Code39Alphabet {
		code39Table[r] = code39Encodings[i]
	}
	code39Table[StartStop] = code39StartStopEncoding
}

// Lookup returns the pattern for r. Letters match in either case. Any
// character outside the alphabet and '*', including every non-ASCII rune,
// reports false.
func Lookup(r rune) (Pattern, bool) {
	if r > unicode.MaxASCII {
		return 0, false
	}
	p, ok := code39Table[unicode.ToUpper(r)]
	return p, ok
}

// Wide reports whether element i (0-8) is wide.
func (p Pattern) Wide(i int) bool {
	return p&(1<<uint(PatternElements-1-i)) != 0
}

// Width returns the pixel width of the nine elements under p.
func (p Pattern) Width(params threeofnine.Params) int {
	w := 0
	for i := 0; i < PatternElements; i++ {
		w += elementWidth(p.Wide(i), params)
	}
	return w
}

func elementWidth(wide bool, p threeofnine.Params) int {
	if wide {
		return p.WideBar()
	}
	return p.NarrowBar
}

// String renders the pattern as nine '0'/'1' digits, 1 for wide.
func (p Pattern) String() string {
	var b [PatternElements]byte
	for i := range b {
		b[i] = '0'
		if p.Wide(i) {
			b[i] = '1'
		}
	}
	return string(b[:])
}

// patternToChar maps a decoded 9-bit pattern back to its character.
func patternToChar(p Pattern) (byte, bool) {
	if p == code39StartStopEncoding {
		return StartStop, true
	}
	for i, e := range code39Encodings {
		if e == p {
			return Code39Alphabet[i], true
		}
	}
	return 0, false
}
