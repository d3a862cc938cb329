// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package text decodes the game's proprietary single-byte text encoding
// into UTF-8 and converts TCT files to plain text files.
package text

import (
	"fmt"
	"strings"
)

// The encoding shifts the printable ASCII range up by 10 and keeps a small
// set of extra slots for German glyphs. Byte 10 is the line break. The
// shifted range ends at 136; byte 137 is not part of the codepage.
const (
	shiftedLo   = 11
	shiftedHi   = 136
	shiftOffset = 10
	lineBreak   = 10
)

// bom is prepended to every decoded file so legacy Windows editors pick up
// the encoding.
const bom = "\uFEFF"

// specials maps the byte values outside the shifted range that still carry
// a glyph.
var specials = map[byte]rune{
	139: 'ü',
	142: 'ä',
	152: 'Ä',
	158: 'ö',
	163: 'Ö',
	164: 'Ü',
	183: 'ô',
	235: 'ß',
}

// IllegalCharError reports a byte value outside the supported codepage.
type IllegalCharError struct {
	Byte byte
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("illegal character %d", e.Byte)
}

// Decode converts one proprietary-encoded buffer into a BOM-prefixed UTF-8
// string with platform line endings. The first unsupported byte aborts the
// decode with an IllegalCharError; no partial output is returned.
func Decode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data) + len(bom))
	b.WriteString(bom)

	for _, c := range data {
		switch {
		case c == lineBreak:
			b.WriteString(lineEnding)
		case c >= shiftedLo && c <= shiftedHi:
			b.WriteRune(rune(c - shiftOffset))
		default:
			r, ok := specials[c]
			if !ok {
				return "", &IllegalCharError{Byte: c}
			}
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
