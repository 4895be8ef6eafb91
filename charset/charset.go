// Package charset turns the bytes of an input file into the text that gets
// encoded as a barcode.
package charset

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// aliases maps Java-style names still common in barcode tooling to their
// IANA names.
var aliases = map[string]string{
	"sjis":      ShiftJIS,
	"iso8859_1": ISO8859_1,
	"utf8":      UTF8,
	"cp1252":    "windows-1252",
	"euc_cn":    "GB2312",
}

// Lookup returns the encoding registered under name, accepting IANA names,
// their aliases, and a few Java-style spellings.
func Lookup(name string) (encoding.Encoding, error) {
	if alias, ok := aliases[strings.ToLower(name)]; ok {
		name = alias
	}
	switch strings.ToUpper(name) {
	case "UTF-8":
		return unicode.UTF8, nil
	case "ISO-8859-1", "LATIN1":
		return charmap.ISO8859_1, nil
	case "SHIFT_JIS":
		return japanese.ShiftJIS, nil
	case "GB18030", "GBK", "GB2312":
		return simplifiedchinese.GB18030, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}
	return enc, nil
}

// Decode converts data to a string. An empty name guesses the encoding
// with Guess. A leading UTF-8 byte order mark is dropped.
func Decode(data []byte, name string) (string, error) {
	if name == "" {
		name = Guess(data)
	}
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}
