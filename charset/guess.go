package charset

import "unicode/utf8"

// Names returned by Guess.
const (
	UTF8      = "UTF-8"
	ShiftJIS  = "Shift_JIS"
	ISO8859_1 = "ISO-8859-1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Guess names the most likely encoding of data among UTF-8, Shift_JIS and
// ISO-8859-1. Plain ASCII, a byte order mark, or any valid multibyte UTF-8
// sequence all count as UTF-8. Otherwise runs of three or more Shift_JIS
// double-byte or half-width katakana characters win over Latin-1, and
// anything that is not well formed Shift_JIS is Latin-1.
func Guess(data []byte) string {
	if utf8.Valid(data) {
		return UTF8
	}
	if len(data) >= 3 && string(data[:3]) == string(utf8BOM) {
		return UTF8
	}

	latin1 := true
	for _, b := range data {
		if b >= 0x80 && b < 0xA0 {
			latin1 = false
			break
		}
	}
	sjis, longestRun := scanShiftJIS(data)
	switch {
	case sjis && longestRun >= 3:
		return ShiftJIS
	case sjis && !latin1:
		return ShiftJIS
	}
	return ISO8859_1
}

// scanShiftJIS reports whether data is well formed Shift_JIS and the length
// of its longest run of katakana or double-byte characters.
func scanShiftJIS(data []byte) (ok bool, longestRun int) {
	kana, double := 0, 0
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b == 0x80 || b == 0xA0 || b > 0xEF:
			return false, 0
		case b > 0xA0 && b < 0xE0:
			kana++
			double = 0
			longestRun = max(longestRun, kana)
		case b > 0x7F:
			if i+1 >= len(data) {
				return false, 0
			}
			i++
			if t := data[i]; t < 0x40 || t == 0x7F || t > 0xFC {
				return false, 0
			}
			double++
			kana = 0
			longestRun = max(longestRun, double)
		default:
			kana, double = 0, 0
		}
	}
	return true, longestRun
}
