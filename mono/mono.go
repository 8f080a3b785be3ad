// Package mono implements the monoalphabetic and byte-level substitution
// ciphers: caesar, rot13, rot47, atbash, albam, atbah, keyboard shift,
// affine, multiplicative and xor.
package mono

import (
	"github.com/cryptarch/cryptarch/alphabet"
)

// shift maps every letter of already-normalized text through x+k mod 26.
func shift(text string, k int) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = alphabet.Letter(alphabet.Index(text[i]) + k)
	}
	return string(out)
}

// CaesarEncrypt applies the classical fixed shift of 3.
func CaesarEncrypt(text string) string {
	return shift(alphabet.Normalize(text), 3)
}

// CaesarDecrypt inverts CaesarEncrypt.
func CaesarDecrypt(text string) string {
	return shift(alphabet.Normalize(text), -3)
}

// Rot13 shifts by 13. Applying it twice restores the input.
func Rot13(text string) string {
	return shift(alphabet.Normalize(text), 13)
}

// Rot47 shifts printable ASCII '!' through '~' by 47 with wraparound.
// It deliberately skips normalization: digits and punctuation are part of
// its alphabet, and anything outside the range passes through unchanged.
// Self-inverse.
func Rot47(text string) string {
	out := []byte(text)
	for i, c := range out {
		if c >= '!' && c <= '~' {
			out[i] = '!' + (c-'!'+47)%94
		}
	}
	return string(out)
}

// Atbash maps each letter to its mirror, A<->Z. Self-inverse.
func Atbash(text string) string {
	s := alphabet.Normalize(text)
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = alphabet.Letter(alphabet.Size - 1 - alphabet.Index(s[i]))
	}
	return string(out)
}

// Albam swaps the two halves of the alphabet, A<->N, B<->O and so on.
// Numerically the same mapping as rot13 but defined as a direct pairing.
// Self-inverse.
func Albam(text string) string {
	s := alphabet.Normalize(text)
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = alphabet.Letter(alphabet.Index(s[i]) + 13)
	}
	return string(out)
}

// atbahPairs is the fixed atbah pairing: letters pair up within each third
// of the alphabet (A<->I around E, J<->R around N, S<->Z), with E and N
// mapping to themselves. Self-inverse.
var atbahPairs = func() [26]byte {
	var m [26]byte
	pair := func(a, b byte) {
		m[a-'A'] = b
		m[b-'A'] = a
	}
	for i := 0; i < 4; i++ {
		pair(byte('A'+i), byte('I'-i)) // A-I B-H C-G D-F
		pair(byte('J'+i), byte('R'-i)) // J-R K-Q L-P M-O
		pair(byte('S'+i), byte('Z'-i)) // S-Z T-Y U-X V-W
	}
	m['E'-'A'] = 'E'
	m['N'-'A'] = 'N'
	return m
}()

// Atbah applies the fixed non-sequential atbah pairing table.
func Atbah(text string) string {
	s := alphabet.Normalize(text)
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = atbahPairs[alphabet.Index(s[i])]
	}
	return string(out)
}
