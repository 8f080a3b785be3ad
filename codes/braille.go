package codes

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
)

// brailleTable maps A-Z to the Unicode braille patterns block (U+2800).
var brailleTable = map[byte]rune{
	'A': '⠁', 'B': '⠃', 'C': '⠉', 'D': '⠙', 'E': '⠑',
	'F': '⠋', 'G': '⠛', 'H': '⠓', 'I': '⠊', 'J': '⠚',
	'K': '⠅', 'L': '⠇', 'M': '⠍', 'N': '⠝', 'O': '⠕',
	'P': '⠏', 'Q': '⠟', 'R': '⠗', 'S': '⠎', 'T': '⠞',
	'U': '⠥', 'V': '⠧', 'W': '⠺', 'X': '⠭', 'Y': '⠽',
	'Z': '⠵',
}

var brailleInverse = func() map[rune]byte {
	m := make(map[rune]byte, len(brailleTable))
	for c, r := range brailleTable {
		m[r] = c
	}
	return m
}()

// BrailleEncode maps letters into the braille patterns block; word breaks
// become the blank pattern U+2800.
func BrailleEncode(text string) (string, error) {
	words := alphabet.NormalizeWords(text)
	var b strings.Builder
	for wi, w := range words {
		if wi > 0 {
			b.WriteRune('⠀')
		}
		for i := 0; i < len(w); i++ {
			b.WriteRune(brailleTable[w[i]])
		}
	}
	return b.String(), nil
}

// BrailleDecode maps patterns back to letters. The blank pattern becomes a
// space; code points outside the expected set are dropped.
func BrailleDecode(text string) (string, error) {
	var b strings.Builder
	for _, r := range text {
		if r == '⠀' {
			b.WriteByte(' ')
			continue
		}
		if c, ok := brailleInverse[r]; ok {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
