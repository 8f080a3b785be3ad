// Package codes implements the keyless encodings: morse, NATO, navajo,
// A1Z26, tap code, T9, braille, the base-N schemes, percent-encoding and
// alt codes. Decoding is lossy by policy: units with no table entry are
// silently dropped.
package codes

import (
	"strings"

	"github.com/cryptarch/cryptarch/alphabet"
)

// MorseTable maps A-Z and 0-9 to their international morse codes. It is
// exported because the morbit and pollux ciphers fractionate morse.
var MorseTable = map[byte]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
}

var morseInverse = func() map[string]byte {
	m := make(map[string]byte, len(MorseTable))
	for c, code := range MorseTable {
		m[code] = c
	}
	return m
}()

// MorseLetters encodes a single normalized word as morse codes joined by
// one space.
func MorseLetters(word string) string {
	codes := make([]string, 0, len(word))
	for i := 0; i < len(word); i++ {
		if code, ok := MorseTable[word[i]]; ok {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " ")
}

// MorseEncode emits one space between letter codes and three spaces
// between words.
func MorseEncode(text string) (string, error) {
	words := alphabet.NormalizeWords(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, MorseLetters(w))
	}
	return strings.Join(out, "   "), nil
}

// MorseDecode splits on the three-space word separator, then on single
// spaces; codes outside the table are dropped.
func MorseDecode(text string) (string, error) {
	var words []string
	for _, w := range strings.Split(text, "   ") {
		var b strings.Builder
		for _, code := range strings.Fields(w) {
			if c, ok := morseInverse[code]; ok {
				b.WriteByte(c)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
	}
	return strings.Join(words, " "), nil
}
